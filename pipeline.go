package textmesh

import (
	"errors"

	"github.com/gogpu/textmesh/atlas"
)

// FontID identifies a font registered with a Pipeline.
type FontID uint32

// TextID identifies a text object registered with a Pipeline.
type TextID uint32

// Sentinel errors for the textmesh package.
var (
	// ErrUnknownFont is returned when a FontID is not registered.
	ErrUnknownFont = errors.New("textmesh: unknown font id")

	// ErrUnknownText is returned when a TextID is not registered.
	ErrUnknownText = errors.New("textmesh: unknown text id")
)

// Pipeline owns the fonts and text objects of a text renderer and runs
// the per-tick synthesis stages. All state is plain owned structs
// referenced by explicit IDs.
//
// A Pipeline is single-threaded; Update must not be called concurrently
// with any other method.
type Pipeline struct {
	config Config

	fonts map[FontID]*atlas.Set
	texts map[TextID]*textEntry

	nextFont FontID
	nextText TextID
}

// textEntry pairs a text object's mesh state with its font.
type textEntry struct {
	mesh *TextMesh
	font FontID
}

// NewPipeline creates an empty pipeline.
func NewPipeline(config Config) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		config: config,
		fonts:  make(map[FontID]*atlas.Set),
		texts:  make(map[TextID]*textEntry),
	}, nil
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() Config {
	return p.config
}

// AddFont registers a glyph source and returns its ID. The pipeline
// creates and owns the font's atlas set.
func (p *Pipeline) AddFont(source atlas.GlyphSource) (FontID, error) {
	set, err := atlas.NewSet(source, atlas.DefaultConfig())
	if err != nil {
		return 0, err
	}
	id := p.nextFont
	p.nextFont++
	p.fonts[id] = set
	return id, nil
}

// RemoveFont drops a font and every text object using it.
func (p *Pipeline) RemoveFont(id FontID) {
	delete(p.fonts, id)
	for tid, entry := range p.texts {
		if entry.font == id {
			delete(p.texts, tid)
		}
	}
}

// FontSet returns the atlas set of a registered font.
func (p *Pipeline) FontSet(id FontID) (*atlas.Set, bool) {
	set, ok := p.fonts[id]
	return set, ok
}

// AddText registers a text object with its initial placements.
func (p *Pipeline) AddText(font FontID, placements []GlyphPlacement) (TextID, error) {
	if _, ok := p.fonts[font]; !ok {
		return 0, ErrUnknownFont
	}
	mesh, err := NewTextMesh(p.config)
	if err != nil {
		return 0, err
	}
	mesh.SetPlacements(placements)

	id := p.nextText
	p.nextText++
	p.texts[id] = &textEntry{mesh: mesh, font: font}
	return id, nil
}

// RemoveText drops a text object.
func (p *Pipeline) RemoveText(id TextID) {
	delete(p.texts, id)
}

// SetPlacements replaces the placement list of a text object.
func (p *Pipeline) SetPlacements(id TextID, placements []GlyphPlacement) error {
	entry, ok := p.texts[id]
	if !ok {
		return ErrUnknownText
	}
	entry.mesh.SetPlacements(placements)
	return nil
}

// Text returns the mesh state of a registered text object.
func (p *Pipeline) Text(id TextID) (*TextMesh, bool) {
	entry, ok := p.texts[id]
	if !ok {
		return nil, false
	}
	return entry.mesh, true
}

// Update runs one pipeline tick in two stages. Stage 1 drains pending
// codepoints of every text object into its font's atlas set; stage 2
// rebuilds the text meshes against whatever atlas state now exists.
// Placements whose glyphs are not in an atlas yet appear on a later
// tick; glyphs that failed generation stay skipped.
func (p *Pipeline) Update() {
	for _, entry := range p.texts {
		if set, ok := p.fonts[entry.font]; ok {
			entry.mesh.SyncMissing(set)
		}
	}
	for _, entry := range p.texts {
		if set, ok := p.fonts[entry.font]; ok {
			entry.mesh.Build(set)
		}
	}
}
