package ili9341

import (
	"github.com/pkg/errors"

	"periph.io/x/devices/v3/ili9341/rgb565"
)

// Strict exposes the drawing primitives of a Dev with validation: instead of
// being clipped or ignored, bad arguments are reported as ErrOutOfBounds,
// ErrInvalidScale or ErrInvalidOrientation.
type Strict struct {
	d *Dev
}

// Strict returns the validating view of d.
func (d *Dev) Strict() *Strict {
	return &Strict{d: d}
}

// DrawPixel sets the pixel at (x, y), which must be on the panel.
func (s *Strict) DrawPixel(x, y int, c rgb565.Color) error {
	if err := s.checkPoint(x, y); err != nil {
		return err
	}
	return s.d.DrawPixel(x, y, c)
}

// FillRectangle fills the w×h rectangle at (x, y), which must lie entirely
// on the panel.
func (s *Strict) FillRectangle(x, y, w, h int, c rgb565.Color) error {
	if err := s.checkRect(x, y, w, h); err != nil {
		return err
	}
	return s.d.FillRectangle(x, y, w, h, c)
}

// DrawHLine draws a horizontal line that must lie entirely on the panel.
func (s *Strict) DrawHLine(x, y, w int, c rgb565.Color) error {
	if err := s.checkRect(x, y, w, 1); err != nil {
		return err
	}
	return s.d.DrawHLine(x, y, w, c)
}

// DrawVLine draws a vertical line that must lie entirely on the panel.
func (s *Strict) DrawVLine(x, y, h int, c rgb565.Color) error {
	if err := s.checkRect(x, y, 1, h); err != nil {
		return err
	}
	return s.d.DrawVLine(x, y, h, c)
}

// DrawChar draws a character whose whole cell must fit on the panel.
func (s *Strict) DrawChar(ch rune, x, y int, fg rgb565.Color, scale int, bg rgb565.Color) error {
	if scale < 1 {
		return errors.Wrapf(ErrInvalidScale, "scale %d", scale)
	}
	if err := s.checkRect(x, y, GlyphWidth*scale, GlyphHeight*scale); err != nil {
		return err
	}
	return s.d.DrawChar(ch, x, y, fg, scale, bg)
}

// DrawText draws a line of text that must fit on the panel. Nothing is drawn
// when it does not.
func (s *Strict) DrawText(str string, x, y int, fg rgb565.Color, scale int, bg rgb565.Color) error {
	if scale < 1 {
		return errors.Wrapf(ErrInvalidScale, "scale %d", scale)
	}
	n := len([]rune(str))
	if n == 0 {
		return nil
	}
	if err := s.checkRect(x, y, n*GlyphWidth*scale, GlyphHeight*scale); err != nil {
		return err
	}
	return s.d.DrawText(str, x, y, fg, scale, bg)
}

// SetOrientation fails for an unknown orientation.
func (s *Strict) SetOrientation(o Orientation) error {
	if !o.valid() {
		return errors.Wrapf(ErrInvalidOrientation, "%d", uint8(o))
	}
	return s.d.SetOrientation(o)
}

func (s *Strict) checkPoint(x, y int) error {
	if !s.d.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, s.d.width, s.d.height)
	}
	return nil
}

func (s *Strict) checkRect(x, y, w, h int) error {
	if w <= 0 || h <= 0 {
		return errors.Wrapf(ErrOutOfBounds, "empty %dx%d at (%d,%d)", w, h, x, y)
	}
	if !s.d.inBounds(x, y) || x+w > s.d.width || y+h > s.d.height {
		return errors.Wrapf(ErrOutOfBounds, "%dx%d at (%d,%d) outside %dx%d", w, h, x, y, s.d.width, s.d.height)
	}
	return nil
}
