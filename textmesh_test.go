package textmesh

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textmesh/atlas"
	"github.com/gogpu/textmesh/font"
)

func loadTestSet(t *testing.T) *atlas.Set {
	t.Helper()
	face, err := font.Load(goregular.TTF)
	if err != nil {
		t.Fatalf("font.Load() failed: %v", err)
	}
	return atlas.DefaultSet(face)
}

// layoutString advances a cursor left to right, one placement per
// character, inserting a fixed gap after each. Returns the placements
// and the final cursor offset.
func layoutString(t *testing.T, set *atlas.Set, text string, gap float64) ([]GlyphPlacement, float64) {
	t.Helper()
	var placements []GlyphPlacement
	cursor := 0.0
	for _, r := range text {
		m, ok := set.Metrics(r)
		if !ok {
			t.Fatalf("Metrics(%q) missing", r)
		}
		placements = append(placements, GlyphPlacement{
			Char:  r,
			Rect:  font.RectFromCorners(font.Point{X: cursor}, font.Point{X: cursor + m.Advance.X, Y: 1}),
			Color: White,
		})
		cursor += m.Advance.X + gap
	}
	return placements, cursor
}

func totalQuads(tm *TextMesh) int {
	n := 0
	for _, m := range tm.Meshes() {
		n += m.QuadCount()
	}
	return n
}

func TestBuildThreeQuads(t *testing.T) {
	set := loadTestSet(t)

	const gap = 0.02
	placements, cursor := layoutString(t, set, "A A", gap)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	// Both A glyphs plus the space; the space still has a valid
	// zero-area placement.
	if got := totalQuads(tm); got != 3 {
		t.Errorf("quad count = %d, want 3", got)
	}

	// Final cursor must match direct summation of advances and gaps.
	var want float64
	for _, r := range "A A" {
		m, _ := set.Metrics(r)
		want += m.Advance.X + gap
	}
	if math.Abs(cursor-want) > 1e-12 {
		t.Errorf("cursor = %v, want %v", cursor, want)
	}

	// The second A sits one advance-plus-gap pair further right than
	// the first.
	mesh, ok := tm.Mesh(0)
	if !ok {
		t.Fatal("mesh for atlas 0 missing")
	}
	mA, _ := set.Metrics('A')
	mSpace, _ := set.Metrics(' ')
	shift := mA.Advance.X + gap + mSpace.Advance.X + gap
	got := float64(mesh.Positions[8][0] - mesh.Positions[0][0])
	if math.Abs(got-shift) > 1e-5 {
		t.Errorf("second A offset = %v, want %v", got, shift)
	}
}

func TestBuildCacheSkip(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "Hi", 0)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	gen := tm.Generation()
	if gen == 0 {
		t.Fatal("generation should advance on first build")
	}

	// Unchanged placements: rebuild is a no-op.
	tm.Build(set)
	if tm.Generation() != gen {
		t.Errorf("generation advanced on unchanged placements: %d -> %d", gen, tm.Generation())
	}
	tm.SetPlacements(placements)
	tm.Build(set)
	if tm.Generation() != gen {
		t.Error("generation advanced after SetPlacements with identical content")
	}

	// Changed content rebuilds.
	moved := append([]GlyphPlacement(nil), placements...)
	moved[0].Rect.MinX += 1
	tm.SetPlacements(moved)
	tm.Build(set)
	if tm.Generation() != gen+1 {
		t.Errorf("generation = %d after content change, want %d", tm.Generation(), gen+1)
	}
}

func TestBuildSkipsMissingGlyph(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "A", 0)
	placements = append(placements, GlyphPlacement{Char: '￾', Color: White})

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	if got := totalQuads(tm); got != 1 {
		t.Errorf("quad count = %d, want 1 (missing glyph skipped)", got)
	}
}

func TestBuildDeferredPlacement(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "AB", 0)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)

	// Build without syncing: nothing is in the atlas yet, so geometry
	// is empty but defined.
	tm.Build(set)
	if got := totalQuads(tm); got != 0 {
		t.Errorf("quad count before sync = %d, want 0", got)
	}

	// A later tick resolves the glyphs. The placement list is
	// unchanged, but the empty build must not be reused.
	tm.SyncMissing(set)
	tm.Build(set)
	if got := totalQuads(tm); got != 2 {
		t.Errorf("quad count after atlas caught up = %d, want 2", got)
	}

	// With geometry present and content unchanged, the next tick skips.
	gen := tm.Generation()
	tm.Build(set)
	if tm.Generation() != gen {
		t.Errorf("generation advanced on unchanged resolved placements: %d -> %d",
			gen, tm.Generation())
	}
}

func TestQuadWinding(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "A", 0)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	// Every quad triangle winds counter-clockwise, matching the
	// profile mesh, so hosts with backface culling draw both.
	mesh, ok := tm.Mesh(0)
	if !ok {
		t.Fatal("mesh for atlas 0 missing")
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Positions[mesh.Indices[i]]
		b := mesh.Positions[mesh.Indices[i+1]]
		c := mesh.Positions[mesh.Indices[i+2]]
		cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		if cross <= 0 {
			t.Fatalf("triangle %d winds clockwise (cross = %v)", i/3, cross)
		}
	}
}

func TestProfileMesh(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "A A", 0.02)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	profile := tm.Profile()
	if profile == nil {
		t.Fatal("default config should build a profile mesh")
	}
	if profile.Mode != ProfileDepthOnly {
		t.Errorf("profile mode = %v, want DepthOnly", profile.Mode)
	}
	if profile.TriangleCount() == 0 {
		t.Fatal("profile mesh should not be empty")
	}
	if len(profile.Normals) != len(profile.Positions) {
		t.Fatalf("normals count %d != positions count %d",
			len(profile.Normals), len(profile.Positions))
	}
	for _, n := range profile.Normals {
		if n != [3]float32{0, 0, 1} {
			t.Fatalf("normal = %v, want +Z", n)
		}
	}
	for _, idx := range profile.Indices {
		if int(idx) >= len(profile.Positions) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(profile.Positions))
		}
	}
}

func TestProfileNone(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "A", 0)

	config := DefaultConfig()
	config.Profile = ProfileNone
	tm, err := NewTextMesh(config)
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	if tm.Profile() != nil {
		t.Error("ProfileNone should not build a profile mesh")
	}
	if got := totalQuads(tm); got != 1 {
		t.Errorf("quad count = %d, want 1", got)
	}
}

func TestClearProfile(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "AB", 0)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	mesh, _ := tm.Mesh(0)
	gen := tm.Generation()

	tm.ClearProfile()
	if tm.Profile() != nil {
		t.Fatal("ClearProfile should discard the profile mesh")
	}
	tm.Build(set)

	if tm.Profile() == nil {
		t.Fatal("Build should recreate the cleared profile mesh")
	}
	if tm.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", tm.Generation(), gen+1)
	}
	// Quad meshes are untouched by a profile-only rebuild.
	if after, _ := tm.Mesh(0); after != mesh {
		t.Error("quad mesh was rebuilt by a profile-only pass")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero scale", func(c *Config) { c.FontScale = 0 }, true},
		{"negative scale", func(c *Config) { c.FontScale = -1 }, true},
		{"bad profile", func(c *Config) { c.Profile = ProfileMode(99) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFontScale(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "A", 0)

	config := DefaultConfig()
	config.FontScale = 2
	tm, err := NewTextMesh(config)
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	mesh, ok := tm.Mesh(0)
	if !ok {
		t.Fatal("mesh for atlas 0 missing")
	}
	m, _ := set.Metrics('A')

	// The scale doubles the glyph box but leaves the cursor-relative
	// offset alone.
	wantMinX := placements[0].Rect.MinX + m.Offset.X
	wantWidth := m.Size.X * 2
	gotMinX := float64(mesh.Positions[0][0])
	gotWidth := float64(mesh.Positions[1][0] - mesh.Positions[0][0])
	if math.Abs(gotMinX-wantMinX) > 1e-5 {
		t.Errorf("quad min x = %v, want %v", gotMinX, wantMinX)
	}
	if math.Abs(gotWidth-wantWidth) > 1e-5 {
		t.Errorf("quad width = %v, want %v", gotWidth, wantWidth)
	}
}

func TestMeshBufferDirty(t *testing.T) {
	set := loadTestSet(t)
	placements, _ := layoutString(t, set, "A", 0)

	tm, err := NewTextMesh(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTextMesh() failed: %v", err)
	}
	tm.SetPlacements(placements)
	tm.SyncMissing(set)
	tm.Build(set)

	mesh, _ := tm.Mesh(0)
	if !mesh.Dirty() {
		t.Error("mesh should be dirty after build")
	}
	mesh.MarkClean()
	if mesh.Dirty() {
		t.Error("mesh should be clean after MarkClean")
	}
}
