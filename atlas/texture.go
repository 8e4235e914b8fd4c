package atlas

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/textmesh/sdf"
)

// Texture is one square atlas texture on the host side. Pixel data is
// RGBA8, rows stored bottom-up like the SDF images blitted into it.
// The caller uploads Pix to the GPU when Dirty reports true and calls
// MarkClean afterwards.
type Texture struct {
	// Pix is the RGBA pixel data, 4 bytes per pixel, Size*Size pixels.
	Pix []byte

	// Size is the edge length in pixels. Textures are square.
	Size int

	// Format describes the pixel layout for GPU upload.
	Format gputypes.TextureFormat

	alloc *shelfAllocator
	dirty bool
}

func newTexture(size, padding int) *Texture {
	return &Texture{
		Pix:    make([]byte, size*size*4),
		Size:   size,
		Format: gputypes.TextureFormatRGBA8Unorm,
		alloc:  newShelfAllocator(size, size, padding),
	}
}

// blit copies an SDF image into the texture at (x, y) and marks the
// texture dirty. Both store rows bottom-up, so rows copy directly.
func (t *Texture) blit(img *sdf.Image, x, y int) {
	for row := 0; row < img.Height; row++ {
		src := img.Pix[row*img.Width*4 : (row+1)*img.Width*4]
		dstOff := ((y+row)*t.Size + x) * 4
		copy(t.Pix[dstOff:dstOff+len(src)], src)
	}
	t.dirty = true
}

// Dirty reports whether Pix changed since the last MarkClean.
func (t *Texture) Dirty() bool {
	return t.dirty
}

// MarkClean clears the dirty flag after the caller uploaded Pix.
func (t *Texture) MarkClean() {
	t.dirty = false
}

// Utilization returns the fraction of the texture area in use.
func (t *Texture) Utilization() float64 {
	return t.alloc.utilization()
}
