package quarkgl

import "image"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
	// RenderSolidSmooth lights each vertex from its normal and interpolates.
	RenderSolidSmooth
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidFlat:
		return "flat"
	case RenderSolidVertexColor:
		return "vertex-color"
	case RenderSolidSmooth:
		return "smooth"
	}
	return "unknown"
}

// RGBATarget renders into an *image.RGBA, e.g. for PNG snapshots.
type RGBATarget struct {
	Img *image.RGBA
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = 0xFF
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	off := t.Img.PixOffset(b.Min.X+x, b.Min.Y+y)
	t.Img.Pix[off+0] = c.R
	t.Img.Pix[off+1] = c.G
	t.Img.Pix[off+2] = c.B
	t.Img.Pix[off+3] = 0xFF
}
