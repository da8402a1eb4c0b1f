package ili9341

import (
	"periph.io/x/devices/v3/ili9341/rgb565"
)

// Glyph cell size at scale 1, including one blank column of spacing.
const (
	GlyphWidth  = 6
	GlyphHeight = 8
)

// glyph returns the bitmap for ch. Characters outside printable ASCII are
// drawn blank.
func glyph(ch rune) *[5]byte {
	if ch < ' ' || ch > 0x7F {
		return &font[0]
	}
	return &font[ch-' ']
}

// DrawChar draws ch with its top-left corner at (x, y), every font pixel
// enlarged to a scale×scale block. The whole cell is first painted with bg.
// A scale below 1 draws nothing.
func (d *Dev) DrawChar(ch rune, x, y int, fg rgb565.Color, scale int, bg rgb565.Color) error {
	if scale < 1 {
		return nil
	}
	g := glyph(ch)
	if err := d.FillRectangle(x, y, GlyphWidth*scale, GlyphHeight*scale, bg); err != nil {
		return err
	}
	for col, bits := range g {
		for row := 0; row < GlyphHeight; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			var err error
			if scale == 1 {
				err = d.DrawPixel(x+col, y+row, fg)
			} else {
				err = d.FillRectangle(x+col*scale, y+row*scale, scale, scale, fg)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawText draws s on a single line starting at (x, y). Nothing wraps;
// characters past the right edge are clipped.
func (d *Dev) DrawText(s string, x, y int, fg rgb565.Color, scale int, bg rgb565.Color) error {
	if scale < 1 {
		return nil
	}
	for _, ch := range s {
		if err := d.DrawChar(ch, x, y, fg, scale, bg); err != nil {
			return err
		}
		x += GlyphWidth * scale
	}
	return nil
}
