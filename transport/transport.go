// Package transport carries bytes between a display driver and a 4-wire serial
// display controller.
//
// A controller on such a link sees four things: a chip-select line, a
// data/command line, and the serial clock and data lines. Port exposes exactly
// those as primitives so the driver can decide how to frame commands,
// parameters and pixel bursts.
package transport

import (
	"github.com/pkg/errors"
)

// Port is the link to a display controller.
//
// Every call blocks until the underlying transfer completes. Implementations
// are not safe for concurrent use.
type Port interface {
	// Select asserts chip-select.
	Select() error
	// Deselect releases chip-select.
	Deselect() error
	// CommandMode drives the data/command line to command.
	CommandMode() error
	// DataMode drives the data/command line to data.
	DataMode() error
	// Transmit sends p while the device is selected.
	Transmit(p []byte) error
}

// ErrClosed is returned by ports used after Close.
var ErrClosed = errors.New("transport: closed")
