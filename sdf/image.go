package sdf

// Image is a fixed-size RGBA8 raster holding a signed distance field.
// The distance lives in the alpha channel (128 = on edge, above =
// inside, below = outside); RGB is white so the texture can be tinted
// by vertex color. Rows are stored bottom-up: row 0 is the bottom
// scanline, matching the Y-up outline convention.
type Image struct {
	// Pix is the RGBA pixel data, 4 bytes per pixel.
	Pix []byte

	// Width and Height of the raster in pixels.
	Width, Height int
}

// newImage allocates a white, fully transparent image.
func newImage(width, height int) *Image {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = 255
		pix[i+1] = 255
		pix[i+2] = 255
	}
	return &Image{Pix: pix, Width: width, Height: height}
}

// SetAlpha sets the distance value at (x, y). Row 0 is the bottom.
func (m *Image) SetAlpha(x, y int, a byte) {
	m.Pix[(y*m.Width+x)*4+3] = a
}

// Alpha returns the distance value at (x, y). Row 0 is the bottom.
func (m *Image) Alpha(x, y int) byte {
	return m.Pix[(y*m.Width+x)*4+3]
}

// MaxDim returns the larger of width and height.
func (m *Image) MaxDim() int {
	return max(m.Width, m.Height)
}
