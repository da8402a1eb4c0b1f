package ili9341

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/ili9341/rgb565"
	"periph.io/x/devices/v3/ili9341/transport"
)

// Native panel dimensions, in the vertical orientation.
const (
	PanelWidth  = 240
	PanelHeight = 320
)

// DefaultBurstSize is the number of bytes handed to the transport per bulk
// transmit when Opts.BurstSize is zero.
const DefaultBurstSize = 1024

var (
	ErrHalted             = errors.New("ili9341: halted")
	ErrImageSize          = errors.New("ili9341: invalid image size")
	ErrOutOfBounds        = errors.New("ili9341: out of bounds")
	ErrInvalidScale       = errors.New("ili9341: invalid scale")
	ErrInvalidOrientation = errors.New("ili9341: invalid orientation")
	ErrInvalidOpts        = errors.New("ili9341: invalid options")
)

// Orientation selects the memory access direction of the controller and with
// it the active width and height.
type Orientation uint8

const (
	VerticalNormal    Orientation = iota // 240x320
	HorizontalNormal                     // 320x240
	VerticalFlipped                      // 240x320, rotated 180°
	HorizontalFlipped                    // 320x240, rotated 180°
)

type orientationMode struct {
	name   string
	madctl byte
	w, h   int
}

var orientations = [...]orientationMode{
	VerticalNormal:    {"vertical", madctlMX | madctlBGR, PanelWidth, PanelHeight},
	HorizontalNormal:  {"horizontal", madctlMV | madctlBGR, PanelHeight, PanelWidth},
	VerticalFlipped:   {"vertical-flipped", madctlMY | madctlBGR, PanelWidth, PanelHeight},
	HorizontalFlipped: {"horizontal-flipped", madctlMX | madctlMY | madctlMV | madctlBGR, PanelHeight, PanelWidth},
}

func (o Orientation) valid() bool {
	return int(o) < len(orientations)
}

func (o Orientation) String() string {
	if !o.valid() {
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
	return orientations[o].name
}

// ParseOrientation returns the Orientation named s, as printed by String.
func ParseOrientation(s string) (Orientation, error) {
	for i, m := range orientations {
		if m.name == s {
			return Orientation(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidOrientation, "%q", s)
}

// Opts is the configuration for the ILI9341 display.
type Opts struct {
	// Orientation applied at the end of initialization (default: VerticalNormal).
	Orientation Orientation

	// BurstSize is the chunk size, in bytes, of bulk pixel transfers
	// (default: DefaultBurstSize, must be even).
	BurstSize int

	// Frequency of the SPI bus, only used by NewSPI (default: 10MHz).
	Frequency physic.Frequency

	// Optional hardware reset pin
	RST gpio.PinOut

	Logger *zap.Logger
}

// Dev is the device handle for the ILI9341 display.
//
// Every drawing method streams straight to the controller; nothing is
// buffered. Dev is not safe for concurrent use.
type Dev struct {
	port  transport.Port
	rst   gpio.PinOut
	log   *zap.Logger
	sleep func(time.Duration)

	// Display geometry, always one of the two panel layouts
	orientation   Orientation
	width, height int

	burstSize int
	scratch   []byte // burst buffer, burstSize bytes
	one       [1]byte

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new ILI9341 device connected via SPI.
//
// dc is the data/command pin. cs is the chip-select pin; it may be nil when
// the line is tied low, in which case bursts are not framed by chip-select.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, dc, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	t, err := transport.NewSPI(p, dc, cs, &transport.SPIOpts{
		Frequency: opts.Frequency,
		Mode:      spi.Mode0,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// New creates a new ILI9341 device on an already connected transport and
// runs the power-up sequence.
func New(p transport.Port, opts *Opts) (*Dev, error) {
	d, err := newDev(p, opts)
	if err != nil {
		return nil, err
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(p transport.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if p == nil {
		return nil, errors.Wrap(ErrInvalidOpts, "transport is required")
	}
	if !opts.Orientation.valid() {
		return nil, errors.Wrapf(ErrInvalidOpts, "orientation %d", opts.Orientation)
	}
	burst := opts.BurstSize
	if burst == 0 {
		burst = DefaultBurstSize
	}
	if burst < 2 || burst%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidOpts, "burst size %d must be even and at least 2", burst)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := orientations[opts.Orientation]
	return &Dev{
		port:        p,
		rst:         opts.RST,
		log:         log,
		sleep:       time.Sleep,
		orientation: opts.Orientation,
		width:       m.w,
		height:      m.h,
		burstSize:   burst,
		scratch:     make([]byte, burst),
	}, nil
}

// init resets the controller and replays the power-up script.
func (d *Dev) init() error {
	if err := d.reset(); err != nil {
		return err
	}

	for _, step := range initScript {
		if err := d.writeCommand(step.cmd); err != nil {
			return err
		}
		if err := d.writeParameters(step.args...); err != nil {
			return err
		}
		if step.delay > 0 {
			d.sleep(step.delay)
		}
	}

	if err := d.SetOrientation(d.orientation); err != nil {
		return err
	}

	d.log.With(
		zap.Stringer("orientation", d.orientation),
		zap.Int("burst", d.burstSize),
	).Debug("initialized")
	return nil
}

// reset pulses the hardware reset line, if there is one.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return errors.Wrap(err, "ili9341: failed to pull RST low")
	}
	d.sleep(200 * time.Millisecond)

	if err := d.port.Select(); err != nil {
		return errors.Wrap(err, "ili9341: select")
	}
	d.sleep(200 * time.Millisecond)

	if err := d.rst.Out(gpio.High); err != nil {
		return errors.Wrap(err, "ili9341: failed to pull RST high")
	}
	return errors.Wrap(d.port.Deselect(), "ili9341: deselect")
}

// SetOrientation programs the memory access control register and switches
// the active geometry. An unknown orientation is ignored.
func (d *Dev) SetOrientation(o Orientation) error {
	if !o.valid() {
		return nil
	}
	m := orientations[o]
	if err := d.writeCommand(memoryAccessControl); err != nil {
		return err
	}
	if err := d.writeParameter(m.madctl); err != nil {
		return err
	}
	d.orientation = o
	d.width, d.height = m.w, m.h

	d.log.With(
		zap.Stringer("orientation", o),
		zap.Int("width", m.w),
		zap.Int("height", m.h),
	).Debug("orientation")
	return nil
}

// Orientation returns the active orientation.
func (d *Dev) Orientation() Orientation {
	return d.orientation
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the bounds of the display in the active orientation.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	cmd := byte(inversionOff)
	if invert {
		cmd = inversionOn
	}
	return d.writeCommand(cmd)
}

// SetScrollArea defines the vertical scrolling area as everything between a
// fixed top and a fixed bottom band, in panel rows.
func (d *Dev) SetScrollArea(top, bottom int) error {
	if top < 0 || bottom < 0 || top+bottom > PanelHeight {
		return errors.Wrapf(ErrOutOfBounds, "scroll area top=%d bottom=%d", top, bottom)
	}
	scroll := PanelHeight - top - bottom
	if err := d.writeCommand(verticalScrollDefinition); err != nil {
		return err
	}
	return d.writeParameters(
		byte(top>>8), byte(top),
		byte(scroll>>8), byte(scroll),
		byte(bottom>>8), byte(bottom),
	)
}

// SetScroll sets the panel row shown at the top of the scrolling area.
func (d *Dev) SetScroll(line int) error {
	if line < 0 || line >= PanelHeight {
		return errors.Wrapf(ErrOutOfBounds, "scroll line %d", line)
	}
	if err := d.writeCommand(verticalScrollStart); err != nil {
		return err
	}
	return d.writeParameters(byte(line>>8), byte(line))
}

// StopScroll returns the display to normal mode.
func (d *Dev) StopScroll() error {
	return d.writeCommand(normalDisplayMode)
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt, every operation that touches the device fails with
// ErrHalted.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.writeCommand(displayOff); err != nil {
		return err
	}
	if err := d.writeCommand(sleepIn); err != nil {
		return err
	}
	d.halted = true
	d.log.Debug("halted")
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9341.Dev{%dx%d}", d.width, d.height)
}

// inBounds reports whether (x, y) is on the panel.
func (d *Dev) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < d.width && y < d.height
}
