package textmesh

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gogpu/textmesh/atlas"
	"github.com/gogpu/textmesh/tessellate"
)

// TextMesh synthesizes the geometry of one text object: per-atlas
// textured quad meshes plus an optional combined solid outline mesh.
//
// A TextMesh is exclusively owned by its text object and not safe for
// concurrent use.
type TextMesh struct {
	config     Config
	placements []GlyphPlacement

	hash  uint64
	built bool

	meshes  map[int]*MeshBuffer
	profile *ProfileMesh

	generation uint64
}

// NewTextMesh creates a synthesizer with the given configuration.
func NewTextMesh(config Config) (*TextMesh, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &TextMesh{
		config: config,
		meshes: make(map[int]*MeshBuffer),
	}, nil
}

// SetPlacements replaces the ordered placement list. Geometry is not
// rebuilt until the next Build.
func (t *TextMesh) SetPlacements(placements []GlyphPlacement) {
	t.placements = append(t.placements[:0], placements...)
}

// Chars returns the distinct codepoints of the current placement list.
func (t *TextMesh) Chars() []rune {
	seen := make(map[rune]struct{}, len(t.placements))
	var chars []rune
	for _, p := range t.placements {
		if _, ok := seen[p.Char]; ok {
			continue
		}
		seen[p.Char] = struct{}{}
		chars = append(chars, p.Char)
	}
	return chars
}

// SyncMissing forwards every placed character without an atlas entry
// to the set. Characters that still fail stay unplaced and are skipped
// from geometry until the font data changes.
func (t *TextMesh) SyncMissing(set *atlas.Set) {
	var missing []rune
	for _, r := range t.Chars() {
		if _, ok := set.Placement(r); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		set.Request(missing)
	}
}

// Build synthesizes the meshes from the current placements.
//
// If the placement content hash is unchanged and the meshes already
// exist, Build is a no-op and the generation counter does not advance.
// Placements without a resolved atlas UV are skipped this pass; they
// appear once the atlas catches up on a later tick. A build that
// produced no geometry is retried every tick for that reason.
func (t *TextMesh) Build(set *atlas.Set) {
	h := t.contentHash()
	if t.built && h == t.hash && (len(t.meshes) > 0 || len(t.placements) == 0) {
		if t.config.Profile == ProfileNone || t.profile != nil {
			return
		}
		// ClearProfile dropped the outline mesh; rebuild only that.
		t.profile = t.buildProfile(set)
		t.generation++
		return
	}

	t.hash = h
	t.meshes = t.buildQuads(set)
	if t.config.Profile != ProfileNone {
		t.profile = t.buildProfile(set)
	} else {
		t.profile = nil
	}
	t.built = true
	t.generation++
}

// ClearProfile discards the combined outline mesh so the next Build
// recreates it. The per-atlas quad meshes are untouched.
func (t *TextMesh) ClearProfile() {
	t.profile = nil
}

// Generation returns a counter that advances on every actual rebuild.
// An unchanged value across Build calls means the cached geometry was
// reused.
func (t *TextMesh) Generation() uint64 {
	return t.generation
}

// Mesh returns the quad mesh for one atlas texture index.
func (t *TextMesh) Mesh(atlasIndex int) (*MeshBuffer, bool) {
	m, ok := t.meshes[atlasIndex]
	return m, ok
}

// Meshes returns the quad meshes keyed by atlas texture index.
func (t *TextMesh) Meshes() map[int]*MeshBuffer {
	return t.meshes
}

// Profile returns the combined outline mesh, nil when the profile mode
// is None or the mesh was cleared and not yet rebuilt.
func (t *TextMesh) Profile() *ProfileMesh {
	return t.profile
}

// buildQuads appends one quad per resolvable placement into the mesh
// buffer of its atlas texture.
func (t *TextMesh) buildQuads(set *atlas.Set) map[int]*MeshBuffer {
	meshes := make(map[int]*MeshBuffer)
	scale := t.config.FontScale

	for _, p := range t.placements {
		metrics, ok := set.Metrics(p.Char)
		if !ok {
			continue
		}
		place, ok := set.Placement(p.Char)
		if !ok {
			continue
		}
		uv, _ := set.GlyphRect(p.Char)

		mesh, ok := meshes[place.AtlasIndex]
		if !ok {
			mesh = newMeshBuffer()
			meshes[place.AtlasIndex] = mesh
		}

		// The offset positions the glyph box relative to the cursor and
		// is not subject to the glyph scale.
		minX := p.Rect.MinX + metrics.Offset.X
		minY := p.Rect.MinY + metrics.Offset.Y
		mesh.appendQuad(
			[2]float32{float32(minX), float32(minY)},
			[2]float32{float32(minX + metrics.Size.X*scale), float32(minY + metrics.Size.Y*scale)},
			[2]float32{float32(uv.MinX), float32(uv.MinY)},
			[2]float32{float32(uv.MaxX), float32(uv.MaxY)},
			p.Color,
		)
	}
	return meshes
}

// buildProfile tessellates every placement's outline and concatenates
// the results into one mesh with a shared index buffer. A glyph that
// fails tessellation contributes nothing; its siblings are unaffected.
func (t *TextMesh) buildProfile(set *atlas.Set) *ProfileMesh {
	profile := newProfileMesh(t.config.Profile)
	scale := t.config.FontScale

	for _, p := range t.placements {
		metrics, ok := set.Metrics(p.Char)
		if !ok {
			continue
		}
		outline := set.Outline(p.Char)
		if outline.IsEmpty() {
			continue
		}

		mesh, err := tessellate.TessellateQuality(outline, set.UnitsPerEm(), t.config.Quality)
		if err != nil {
			Logger().Warn("textmesh: glyph tessellation failed",
				"codepoint", string(p.Char), "error", err)
			continue
		}

		base := uint32(len(profile.Positions))
		for _, v := range mesh.Vertices {
			x := p.Rect.MinX + metrics.Offset.X + v.X*scale
			y := p.Rect.MinY + metrics.Offset.Y + v.Y*scale
			profile.Positions = append(profile.Positions, [3]float32{float32(x), float32(y), 0})
			profile.Normals = append(profile.Normals, [3]float32{0, 0, 1})
		}
		for _, idx := range mesh.Indices {
			profile.Indices = append(profile.Indices, base+idx)
		}
	}

	profile.dirty = true
	return profile
}

// contentHash is an FNV-1a hash over character, destination rect, and
// color of every placement, in order.
func (t *TextMesh) contentHash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, p := range t.placements {
		binary.LittleEndian.PutUint32(buf[:4], uint32(p.Char))
		h.Write(buf[:4])
		for _, f := range [4]float64{p.Rect.MinX, p.Rect.MinY, p.Rect.MaxX, p.Rect.MaxY} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
			h.Write(buf[:])
		}
		for _, f := range [4]float32{p.Color.R, p.Color.G, p.Color.B, p.Color.A} {
			binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(f))
			h.Write(buf[:4])
		}
	}
	return h.Sum64()
}
