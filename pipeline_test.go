package textmesh

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textmesh/font"
)

func loadTestFace(t *testing.T) *font.Face {
	t.Helper()
	face, err := font.Load(goregular.TTF)
	if err != nil {
		t.Fatalf("font.Load() failed: %v", err)
	}
	return face
}

func TestPipelineUpdate(t *testing.T) {
	pipe, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline() failed: %v", err)
	}

	fontID, err := pipe.AddFont(loadTestFace(t))
	if err != nil {
		t.Fatalf("AddFont() failed: %v", err)
	}
	set, ok := pipe.FontSet(fontID)
	if !ok {
		t.Fatal("FontSet() should find the registered font")
	}

	placements, _ := layoutString(t, set, "Hello", 0)
	textID, err := pipe.AddText(fontID, placements)
	if err != nil {
		t.Fatalf("AddText() failed: %v", err)
	}

	// One tick drains glyph requests and builds the mesh.
	pipe.Update()

	tm, ok := pipe.Text(textID)
	if !ok {
		t.Fatal("Text() should find the registered text")
	}
	if got := totalQuads(tm); got != 5 {
		t.Errorf("quad count = %d, want 5", got)
	}
	if tm.Profile() == nil {
		t.Error("default config should build a profile mesh")
	}

	// A second tick with no changes reuses everything.
	gen := tm.Generation()
	pipe.Update()
	if tm.Generation() != gen {
		t.Errorf("generation advanced on an idle tick: %d -> %d", gen, tm.Generation())
	}
}

func TestPipelineSharedFont(t *testing.T) {
	pipe, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline() failed: %v", err)
	}
	fontID, err := pipe.AddFont(loadTestFace(t))
	if err != nil {
		t.Fatalf("AddFont() failed: %v", err)
	}
	set, _ := pipe.FontSet(fontID)

	pa, _ := layoutString(t, set, "AB", 0)
	pb, _ := layoutString(t, set, "BC", 0)
	ta, err := pipe.AddText(fontID, pa)
	if err != nil {
		t.Fatalf("AddText() failed: %v", err)
	}
	tb, err := pipe.AddText(fontID, pb)
	if err != nil {
		t.Fatalf("AddText() failed: %v", err)
	}

	pipe.Update()

	for _, id := range []TextID{ta, tb} {
		tm, _ := pipe.Text(id)
		if got := totalQuads(tm); got != 2 {
			t.Errorf("text %d quad count = %d, want 2", id, got)
		}
	}
	// Both texts share one atlas set; 'B' was placed once.
	if set.AtlasCount() != 1 {
		t.Errorf("AtlasCount() = %d, want 1", set.AtlasCount())
	}
}

func TestPipelineUnknownIDs(t *testing.T) {
	pipe, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline() failed: %v", err)
	}

	if _, err := pipe.AddText(FontID(42), nil); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("AddText with unknown font = %v, want ErrUnknownFont", err)
	}
	if err := pipe.SetPlacements(TextID(42), nil); !errors.Is(err, ErrUnknownText) {
		t.Errorf("SetPlacements with unknown text = %v, want ErrUnknownText", err)
	}
	if _, ok := pipe.Text(TextID(42)); ok {
		t.Error("Text with unknown id should report false")
	}
}

func TestPipelineRemove(t *testing.T) {
	pipe, err := NewPipeline(DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline() failed: %v", err)
	}
	fontID, _ := pipe.AddFont(loadTestFace(t))
	set, _ := pipe.FontSet(fontID)
	placements, _ := layoutString(t, set, "A", 0)
	textID, _ := pipe.AddText(fontID, placements)

	pipe.RemoveText(textID)
	if _, ok := pipe.Text(textID); ok {
		t.Error("removed text should be gone")
	}

	textID, _ = pipe.AddText(fontID, placements)
	pipe.RemoveFont(fontID)
	if _, ok := pipe.FontSet(fontID); ok {
		t.Error("removed font should be gone")
	}
	if _, ok := pipe.Text(textID); ok {
		t.Error("texts of a removed font should be gone")
	}

	// Update on an empty pipeline is a no-op.
	pipe.Update()
}

func TestPipelineInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.FontScale = 0
	if _, err := NewPipeline(config); err == nil {
		t.Error("NewPipeline with invalid config should fail")
	}
}
