package ili9341

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"periph.io/x/devices/v3/ili9341/rgb565"
)

// FrameSize is the length of a raw full-panel frame: PanelWidth×PanelHeight
// pixels, two bytes each, high byte first.
const FrameSize = PanelWidth * PanelHeight * 2

// DrawImage sets orientation o and streams raw, a full-panel frame, to the
// display. An unknown orientation is ignored.
func (d *Dev) DrawImage(raw []byte, o Orientation) error {
	if len(raw) != FrameSize {
		return errors.Wrapf(ErrImageSize, "got %d bytes, want %d", len(raw), FrameSize)
	}
	if !o.valid() {
		return nil
	}
	if err := d.SetOrientation(o); err != nil {
		return err
	}
	if err := d.setAddressWindow(0, 0, d.width-1, d.height-1); err != nil {
		return err
	}
	if err := d.blit(raw); err != nil {
		return err
	}
	d.log.With(zap.Stringer("orientation", o), zap.Int("bytes", len(raw))).Debug("image")
	return nil
}

// Write streams a raw full-panel frame in the active orientation.
// It implements io.Writer.
func (d *Dev) Write(pixels []byte) (int, error) {
	if err := d.DrawImage(pixels, d.orientation); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// blit sends pixels as one data transaction, in burstSize chunks.
func (d *Dev) blit(pixels []byte) error {
	return d.transaction(dataMode, func() error {
		return d.chunk(pixels)
	})
}

func (d *Dev) chunk(pixels []byte) error {
	for len(pixels) > 0 {
		n := min(len(pixels), d.burstSize)
		if err := d.transmit(pixels[:n]); err != nil {
			return err
		}
		pixels = pixels[n:]
	}
	return nil
}

// Draw streams src into the dst rectangle of the display, src point sp
// landing on dst.Min. dst is clipped to the panel first.
//
// It implements display.Drawer.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}

	// Fast path: an RGB565 source covering the whole clipped area is sent
	// row by row without conversion.
	if img, ok := src.(*rgb565.Image); ok {
		sr := r.Sub(dst.Min).Add(sp)
		if sr.In(img.Rect) {
			return d.drawRows(r, img, sr.Min)
		}
	}

	buf := rgb565.NewImage(r)
	draw.Draw(buf, dst, src, sp, draw.Src)
	return d.drawRows(r, buf, r.Min)
}

// drawRows targets window r and streams the matching area of img, starting
// at origin.
func (d *Dev) drawRows(r image.Rectangle, img *rgb565.Image, origin image.Point) error {
	if err := d.setAddressWindow(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1); err != nil {
		return err
	}
	w := 2 * r.Dx()
	return d.transaction(dataMode, func() error {
		for y := 0; y < r.Dy(); y++ {
			i := img.PixOffset(origin.X, origin.Y+y)
			if err := d.chunk(img.Pix[i : i+w]); err != nil {
				return err
			}
		}
		return nil
	})
}
