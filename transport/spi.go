package transport

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPIOpts is the configuration of an SPI port.
type SPIOpts struct {
	// Frequency of the bus (default: 10MHz, the ILI9341 write cycle limit).
	Frequency physic.Frequency
	// Mode of the bus (default: spi.Mode0).
	Mode spi.Mode

	Logger *zap.Logger
}

// SPI is a Port over a periph.io SPI connection plus two GPIO lines.
type SPI struct {
	c  conn.Conn
	dc gpio.PinOut
	cs gpio.PinOut // nil when chip-select is tied low or handled by the bus
}

// NewSPI connects to p and returns a Port driving dc and cs.
//
// cs may be nil. In that case Select and Deselect are no-ops and the caller is
// responsible for keeping the controller selected.
func NewSPI(p spi.Port, dc, cs gpio.PinOut, opts *SPIOpts) (*SPI, error) {
	if opts == nil {
		opts = &SPIOpts{}
	}
	if dc == nil {
		return nil, errors.New("transport: dc pin is required")
	}
	freq := opts.Frequency
	if freq == 0 {
		freq = 10 * physic.MegaHertz
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c, err := p.Connect(freq, opts.Mode, 8)
	if err != nil {
		return nil, errors.Wrap(err, "transport: spi connect")
	}

	s := &SPI{c: c, dc: dc, cs: cs}
	if cs != nil {
		// Idle deselected.
		if err := cs.Out(gpio.High); err != nil {
			return nil, errors.Wrap(err, "transport: cs idle")
		}
	}

	log.With(
		zap.String("conn", c.String()),
		zap.String("freq", freq.String()),
		zap.Stringer("dc", dc),
	).Debug("spi connected")

	return s, nil
}

// Select pulls chip-select low.
func (s *SPI) Select() error {
	if s.cs == nil {
		return nil
	}
	return s.cs.Out(gpio.Low)
}

// Deselect pulls chip-select high.
func (s *SPI) Deselect() error {
	if s.cs == nil {
		return nil
	}
	return s.cs.Out(gpio.High)
}

// CommandMode pulls the data/command line low.
func (s *SPI) CommandMode() error {
	return s.dc.Out(gpio.Low)
}

// DataMode pulls the data/command line high.
func (s *SPI) DataMode() error {
	return s.dc.Out(gpio.High)
}

// Transmit writes p to the bus, discarding anything read back.
func (s *SPI) Transmit(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return s.c.Tx(p, nil)
}

func (s *SPI) String() string {
	return fmt.Sprintf("transport.SPI{%s, dc=%s}", s.c, s.dc)
}
