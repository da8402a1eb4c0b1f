package ili9341

import (
	"periph.io/x/devices/v3/ili9341/rgb565"
)

// Drawing primitives clip against the active geometry instead of failing:
// an origin off the panel draws nothing and an extent running past the edge
// is shortened to fit. Use Strict for validating variants.

// DrawPixel sets the pixel at (x, y).
func (d *Dev) DrawPixel(x, y int, c rgb565.Color) error {
	if !d.inBounds(x, y) {
		return nil
	}
	if err := d.setAddressWindow(x, y, x, y); err != nil {
		return err
	}
	return d.burst(c, 1)
}

// FillRectangle fills the w×h rectangle whose top-left corner is (x, y).
func (d *Dev) FillRectangle(x, y, w, h int, c rgb565.Color) error {
	if !d.inBounds(x, y) || w <= 0 || h <= 0 {
		return nil
	}
	w = min(w, d.width-x)
	h = min(h, d.height-y)
	if err := d.setAddressWindow(x, y, x+w-1, y+h-1); err != nil {
		return err
	}
	return d.burst(c, w*h)
}

// FillScreen paints the whole panel.
func (d *Dev) FillScreen(c rgb565.Color) error {
	return d.FillRectangle(0, 0, d.width, d.height, c)
}

// DrawHLine draws a horizontal line of w pixels starting at (x, y).
func (d *Dev) DrawHLine(x, y, w int, c rgb565.Color) error {
	return d.FillRectangle(x, y, w, 1, c)
}

// DrawVLine draws a vertical line of h pixels starting at (x, y).
func (d *Dev) DrawVLine(x, y, h int, c rgb565.Color) error {
	return d.FillRectangle(x, y, 1, h, c)
}

// normalize returns the top-left corner and the absolute extents of the box
// spanned by two corners given in any order.
func normalize(x0, y0, x1, y1 int) (x, y, w, h int) {
	x, w = x0, x1-x0
	if w < 0 {
		x, w = x1, -w
	}
	y, h = y0, y1-y0
	if h < 0 {
		y, h = y1, -h
	}
	return x, y, w, h
}

// DrawRectangle draws the outline of the box between the corners (x0, y0)
// and (x1, y1), in any order.
//
// Each edge is |x1-x0| or |y1-y0| pixels long, which leaves the far corner
// uncovered; it is drawn separately, overlapping edges that reach it.
func (d *Dev) DrawRectangle(x0, y0, x1, y1 int, c rgb565.Color) error {
	x, y, w, h := normalize(x0, y0, x1, y1)
	steps := []func() error{
		func() error { return d.DrawHLine(x, y, w, c) },
		func() error { return d.DrawHLine(x, y+h, w, c) },
		func() error { return d.DrawVLine(x, y, h, c) },
		func() error { return d.DrawVLine(x+w, y, h, c) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	if w > 0 || h > 0 {
		return d.DrawPixel(x+w, y+h, c)
	}
	return nil
}

// FillRectangleCoords fills the box between the corners (x0, y0) and
// (x1, y1), in any order. The far edges are exclusive.
func (d *Dev) FillRectangleCoords(x0, y0, x1, y1 int, c rgb565.Color) error {
	x, y, w, h := normalize(x0, y0, x1, y1)
	return d.FillRectangle(x, y, w, h, c)
}

// DrawCircle draws the outline of the circle of radius r centered on
// (cx, cy) with the midpoint algorithm. Pixels off the panel are skipped.
func (d *Dev) DrawCircle(cx, cy, r int, c rgb565.Color) error {
	if r <= 0 {
		return nil
	}
	x, y := r-1, 0
	dx, dy := 1, 1
	e := dx - r<<1

	for x >= y {
		points := [8][2]int{
			{cx + x, cy + y}, {cx + y, cy + x},
			{cx - y, cy + x}, {cx - x, cy + y},
			{cx - x, cy - y}, {cx - y, cy - x},
			{cx + y, cy - x}, {cx + x, cy - y},
		}
		for _, p := range points {
			if err := d.DrawPixel(p[0], p[1], c); err != nil {
				return err
			}
		}

		// Both adjustments may apply in the same step.
		if e <= 0 {
			y++
			e += dy
			dy += 2
		}
		if e > 0 {
			x--
			dx += 2
			e += dx - r<<1
		}
	}
	return nil
}

// FillCircle fills the circle of radius r centered on (cx, cy).
//
// Each step emits four horizontal spans. Spans near the diagonal overlap
// and are written more than once.
// TODO: track the last emitted row to skip duplicate spans.
func (d *Dev) FillCircle(cx, cy, r int, c rgb565.Color) error {
	if r < 0 {
		return nil
	}
	x, y := r, 0
	xChange, yChange := 1-r<<1, 0
	radiusError := 0

	for x >= y {
		spans := [4][3]int{
			{cx - x, cx + x, cy + y},
			{cx - x, cx + x, cy - y},
			{cx - y, cx + y, cy + x},
			{cx - y, cx + y, cy - x},
		}
		for _, s := range spans {
			if err := d.fillSpan(s[0], s[1], s[2], c); err != nil {
				return err
			}
		}

		y++
		radiusError += yChange
		yChange += 2
		if radiusError<<1+xChange > 0 {
			x--
			radiusError += xChange
			xChange += 2
		}
	}
	return nil
}

// fillSpan draws row y from x0 to x1 inclusive, keeping only the pixels on
// the panel.
func (d *Dev) fillSpan(x0, x1, y int, c rgb565.Color) error {
	if y < 0 || y >= d.height {
		return nil
	}
	x0 = max(x0, 0)
	x1 = min(x1, d.width-1)
	if x0 > x1 {
		return nil
	}
	return d.DrawHLine(x0, y, x1-x0+1, c)
}
