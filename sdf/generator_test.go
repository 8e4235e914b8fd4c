package sdf

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textmesh/font"
)

// squareOutline returns a counter-clockwise square contour.
// The contour is implicitly closed.
func squareOutline(lo, hi float64) *font.GlyphOutline {
	o := &font.GlyphOutline{}
	o.MoveTo(font.Point{X: lo, Y: lo})
	o.LineTo(font.Point{X: hi, Y: lo})
	o.LineTo(font.Point{X: hi, Y: hi})
	o.LineTo(font.Point{X: lo, Y: hi})
	return o
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"min range", Config{Range: 1}, false},
		{"zero range", Config{Range: 0}, true},
		{"negative range", Config{Range: -3}, true},
		{"huge range", Config{Range: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSquare(t *testing.T) {
	gen := DefaultGenerator()

	// 500 font units at upem 1000 scale to 50 pixels of ink.
	img, err := gen.Generate(squareOutline(0, 500), 1000)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	wantSize := 50 + 2*gen.Config().Range
	if img.Width != wantSize || img.Height != wantSize {
		t.Fatalf("image size = %dx%d, want %dx%d", img.Width, img.Height, wantSize, wantSize)
	}

	center := img.Alpha(img.Width/2, img.Height/2)
	if center <= 128 {
		t.Errorf("center alpha = %d, want > 128 (inside)", center)
	}
	corner := img.Alpha(0, 0)
	if corner >= 128 {
		t.Errorf("corner alpha = %d, want < 128 (outside)", corner)
	}
	if center < corner {
		t.Error("distance should increase toward the glyph interior")
	}
}

func TestGenerateEmptyOutline(t *testing.T) {
	gen := DefaultGenerator()

	img, err := gen.Generate(&font.GlyphOutline{}, 1000)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if img.Width != 1 || img.Height != 1 {
		t.Errorf("placeholder size = %dx%d, want 1x1", img.Width, img.Height)
	}
	if img.Alpha(0, 0) != 0 {
		t.Errorf("placeholder alpha = %d, want 0 (fully transparent)", img.Alpha(0, 0))
	}
}

func TestGenerateZeroUnitsPerEm(t *testing.T) {
	gen := DefaultGenerator()

	_, err := gen.Generate(squareOutline(0, 500), 0)
	if !errors.Is(err, ErrDegenerateFont) {
		t.Errorf("Generate() error = %v, want ErrDegenerateFont", err)
	}
}

func TestGenerateHole(t *testing.T) {
	gen := DefaultGenerator()

	// Outer CCW square with a CW square hole, TrueType style.
	o := squareOutline(0, 1000)
	o.MoveTo(font.Point{X: 300, Y: 300})
	o.LineTo(font.Point{X: 300, Y: 700})
	o.LineTo(font.Point{X: 700, Y: 700})
	o.LineTo(font.Point{X: 700, Y: 300})

	img, err := gen.Generate(o, 1000)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	// The hole center maps to the image center and must read outside.
	holeCenter := img.Alpha(img.Width/2, img.Height/2)
	if holeCenter >= 128 {
		t.Errorf("hole center alpha = %d, want < 128 (outside)", holeCenter)
	}

	// A point inside the ring between outer edge and hole reads inside.
	pad := gen.Config().Range
	ring := img.Alpha(pad+10, img.Height/2)
	if ring <= 128 {
		t.Errorf("ring alpha = %d, want > 128 (inside)", ring)
	}
}

func TestGenerateRealGlyph(t *testing.T) {
	face, err := font.Load(goregular.TTF)
	if err != nil {
		t.Fatalf("font.Load() failed: %v", err)
	}

	gen := DefaultGenerator()
	img, err := gen.Generate(face.Outline('A'), face.UnitsPerEm())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if img.Width <= 2*gen.Config().Range || img.Height <= 2*gen.Config().Range {
		t.Fatalf("image size = %dx%d, want ink larger than padding", img.Width, img.Height)
	}

	inside, outside := false, false
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.Alpha(x, y) > 128 {
				inside = true
			} else if img.Alpha(x, y) < 128 {
				outside = true
			}
		}
	}
	if !inside || !outside {
		t.Errorf("glyph SDF should contain both interior and exterior pixels (inside=%v outside=%v)", inside, outside)
	}
}

// countingHandler records how many log records at or above warn level
// were emitted.
type countingHandler struct {
	warns *int
}

func (h countingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h countingHandler) Handle(_ context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		*h.warns++
	}
	return nil
}
func (h countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h countingHandler) WithGroup(string) slog.Handler      { return h }

func TestGenerateScaleWarning(t *testing.T) {
	warns := 0
	SetLogger(slog.New(countingHandler{warns: &warns}))
	defer SetLogger(nil)

	gen := DefaultGenerator()

	// upem 100000 yields scale 0.001, well below the expected window.
	// Generation still succeeds.
	if _, err := gen.Generate(squareOutline(0, 50000), 100000); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if warns == 0 {
		t.Error("expected a quality warning for an out-of-range scale")
	}
}

func TestDistanceToByte(t *testing.T) {
	if got := distanceToByte(0, 12); got != 128 {
		t.Errorf("distanceToByte(0) = %d, want 128", got)
	}
	if got := distanceToByte(100, 12); got != 255 {
		t.Errorf("distanceToByte(far inside) = %d, want 255", got)
	}
	if got := distanceToByte(-100, 12); got != 0 {
		t.Errorf("distanceToByte(far outside) = %d, want 0", got)
	}
}
