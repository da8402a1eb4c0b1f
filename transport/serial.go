package transport

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"go.uber.org/zap"
)

// Frame opcodes understood by the USB-to-SPI bridge firmware.
const (
	frameSelect   = 'S'
	frameDeselect = 'U'
	frameCommand  = 'C'
	frameData     = 'D'
	frameTransmit = 'T'
)

// maxFramePayload is the largest payload a single transmit frame can carry.
const maxFramePayload = 0xFFFF

// SerialOpts is the configuration of a serial bridge.
type SerialOpts struct {
	// Name is matched as a substring against the available serial ports,
	// e.g. "ttyACM0" or "usbmodem".
	Name string
	// BaudRate of the link (default: 921600).
	BaudRate int
}

// Serial is a Port tunnelled through a USB serial bridge that owns the real
// SPI bus and GPIO lines.
//
// Each primitive is sent as a frame: a one-byte opcode, and for transmits a
// big-endian 16-bit length followed by the payload.
type Serial struct {
	rw  io.ReadWriteCloser
	log *zap.Logger
	hdr [3]byte
}

// OpenSerial finds the first serial port whose name contains opts.Name and
// opens it.
func OpenSerial(opts *SerialOpts, log *zap.Logger) (*Serial, error) {
	if opts == nil || opts.Name == "" {
		return nil, errors.New("transport: serial port name is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	baud := opts.BaudRate
	if baud == 0 {
		baud = 921600
	}

	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, errors.Wrap(err, "transport: list serial ports")
	}

	var matched string
	for _, name := range ports {
		if strings.Contains(name, opts.Name) {
			matched = name
			break
		}
	}
	if matched == "" {
		return nil, errors.Errorf("transport: serial port %q not found", opts.Name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "transport: open %s", matched)
	}

	log.With(zap.String("port", matched), zap.Int("baud", baud)).Debug("serial bridge opened")

	return newSerial(port, log), nil
}

func newSerial(rw io.ReadWriteCloser, log *zap.Logger) *Serial {
	if log == nil {
		log = zap.NewNop()
	}
	return &Serial{rw: rw, log: log}
}

// Select asks the bridge to assert chip-select.
func (s *Serial) Select() error {
	return s.op(frameSelect)
}

// Deselect asks the bridge to release chip-select.
func (s *Serial) Deselect() error {
	return s.op(frameDeselect)
}

// CommandMode asks the bridge to drive the data/command line low.
func (s *Serial) CommandMode() error {
	return s.op(frameCommand)
}

// DataMode asks the bridge to drive the data/command line high.
func (s *Serial) DataMode() error {
	return s.op(frameData)
}

// Transmit forwards p to the bridge, split into frames of at most 64KiB.
func (s *Serial) Transmit(p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if n > maxFramePayload {
			n = maxFramePayload
		}
		s.hdr[0] = frameTransmit
		binary.BigEndian.PutUint16(s.hdr[1:], uint16(n))
		if err := s.write(s.hdr[:]); err != nil {
			return err
		}
		if err := s.write(p[:n]); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Close closes the underlying serial port.
func (s *Serial) Close() error {
	if s.rw == nil {
		return ErrClosed
	}
	err := s.rw.Close()
	s.rw = nil
	s.log.Debug("serial bridge closed")
	return err
}

func (s *Serial) op(code byte) error {
	s.hdr[0] = code
	return s.write(s.hdr[:1])
}

func (s *Serial) write(p []byte) error {
	if s.rw == nil {
		return ErrClosed
	}
	if _, err := s.rw.Write(p); err != nil {
		return errors.Wrap(err, "transport: serial write")
	}
	return nil
}
