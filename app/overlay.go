package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"helixview/hal"
	"helixview/internal/buildinfo"
)

var (
	titleColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	infoColor  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

const lineHeight = 7

func (a *App) drawOverlay() {
	h := a.opts.Helix
	a.drawText(4, 4, "helix "+buildinfo.Short(), titleColor)
	a.drawText(4, 4+lineHeight, fmt.Sprintf("turns %.1f  r %.1f  h %.1f", h.Turns, h.Radius, h.Height), infoColor)
	a.drawText(4, 4+2*lineHeight, a.stage.Renderer().Mode.String(), infoColor)

	fps := fmt.Sprintf("%.0f fps", a.fps)
	_, w := tinyfont.LineWidth(&tinyfont.TomThumb, fps)
	a.drawText(a.fb.Width()-4-int(w), 4, fps, infoColor)
	a.drawText(4, a.fb.Height()-4-lineHeight, "q quit  w wire  t/T turns  +/- zoom", infoColor)
}

func (a *App) drawText(x, y int, s string, c color.RGBA) {
	d := fbDisplayer{fb: a.fb}
	tinyfont.WriteLine(d, &tinyfont.TomThumb, int16(x), int16(y+lineHeight-1), s, c)
}

// fbDisplayer lets tinyfont draw into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d fbDisplayer) Display() error { return nil }
