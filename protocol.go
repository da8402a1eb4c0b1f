package ili9341

import (
	"time"

	"github.com/pkg/errors"
)

// Controller commands (ILI9341 datasheet, section 8).
const (
	softwareReset            = 0x01
	sleepIn                  = 0x10
	sleepOut                 = 0x11
	normalDisplayMode        = 0x13
	inversionOff             = 0x20
	inversionOn              = 0x21
	gammaSet                 = 0x26
	displayOff               = 0x28
	displayOn                = 0x29
	columnAddressSet         = 0x2A
	pageAddressSet           = 0x2B
	memoryWrite              = 0x2C
	verticalScrollDefinition = 0x33
	memoryAccessControl      = 0x36
	verticalScrollStart      = 0x37
	pixelFormatSet           = 0x3A
	frameRateControl         = 0xB1
	displayFunctionControl   = 0xB6
	powerControl1            = 0xC0
	powerControl2            = 0xC1
	vcomControl1             = 0xC5
	vcomControl2             = 0xC7
	powerControlA            = 0xCB
	powerControlB            = 0xCF
	positiveGammaCorrection  = 0xE0
	negativeGammaCorrection  = 0xE1
	driverTimingControlA     = 0xE8
	driverTimingControlB     = 0xEA
	powerOnSequenceControl   = 0xED
	enable3Gamma             = 0xF2
	pumpRatioControl         = 0xF7
)

// Memory access control bits.
const (
	madctlMY  = 0x80 // row address order
	madctlMX  = 0x40 // column address order
	madctlMV  = 0x20 // row/column exchange
	madctlBGR = 0x08 // BGR panel
)

// initStep is one command of the power-up script.
type initStep struct {
	cmd   byte
	args  []byte
	delay time.Duration
}

// initScript is the vendor power-up sequence. The two delays are required by
// the controller after software reset and after leaving sleep.
var initScript = []initStep{
	{cmd: softwareReset, delay: 1000 * time.Millisecond},
	{cmd: powerControlA, args: []byte{0x39, 0x2C, 0x00, 0x34, 0x02}},
	{cmd: powerControlB, args: []byte{0x00, 0xC1, 0x30}},
	{cmd: driverTimingControlA, args: []byte{0x85, 0x00, 0x78}},
	{cmd: driverTimingControlB, args: []byte{0x00, 0x00}},
	{cmd: powerOnSequenceControl, args: []byte{0x64, 0x03, 0x12, 0x81}},
	{cmd: pumpRatioControl, args: []byte{0x20}},
	{cmd: powerControl1, args: []byte{0x23}}, // VRH[5:0]
	{cmd: powerControl2, args: []byte{0x10}}, // SAP[2:0], BT[3:0]
	{cmd: vcomControl1, args: []byte{0x3E, 0x28}},
	{cmd: vcomControl2, args: []byte{0x86}},
	{cmd: memoryAccessControl, args: []byte{0x48}},
	{cmd: pixelFormatSet, args: []byte{0x55}}, // 16 bits per pixel
	{cmd: frameRateControl, args: []byte{0x00, 0x18}},
	{cmd: displayFunctionControl, args: []byte{0x08, 0x82, 0x27}},
	{cmd: enable3Gamma, args: []byte{0x00}},
	{cmd: gammaSet, args: []byte{0x01}},
	{cmd: positiveGammaCorrection, args: []byte{
		0x0F, 0x31, 0x2B, 0x0C, 0x0E, 0x08, 0x4E, 0xF1, 0x37, 0x07, 0x10, 0x03, 0x0E, 0x09, 0x00,
	}},
	{cmd: negativeGammaCorrection, args: []byte{
		0x00, 0x0E, 0x14, 0x03, 0x11, 0x07, 0x31, 0xC1, 0x48, 0x08, 0x0F, 0x0C, 0x31, 0x36, 0x0F,
	}},
	{cmd: sleepOut, delay: 120 * time.Millisecond},
	{cmd: displayOn},
}

type lineMode bool

const (
	commandMode lineMode = false
	dataMode    lineMode = true
)

// transaction selects the device, drives the data/command line and runs fn.
// Chip-select is released afterwards whatever fn returns.
func (d *Dev) transaction(mode lineMode, fn func() error) (err error) {
	if d.halted {
		return ErrHalted
	}
	if err := d.port.Select(); err != nil {
		return errors.Wrap(err, "ili9341: select")
	}
	defer func() {
		if derr := d.port.Deselect(); derr != nil && err == nil {
			err = errors.Wrap(derr, "ili9341: deselect")
		}
	}()

	if mode == dataMode {
		err = d.port.DataMode()
	} else {
		err = d.port.CommandMode()
	}
	if err != nil {
		return errors.Wrap(err, "ili9341: data/command line")
	}
	return fn()
}

// transmit sends p inside a transaction.
func (d *Dev) transmit(p []byte) error {
	return errors.Wrap(d.port.Transmit(p), "ili9341: transmit")
}

// writeCommand sends a single command byte in its own transaction.
func (d *Dev) writeCommand(cmd byte) error {
	return d.transaction(commandMode, func() error {
		d.one[0] = cmd
		return d.transmit(d.one[:])
	})
}

// writeParameter sends a single parameter byte in its own transaction.
func (d *Dev) writeParameter(b byte) error {
	return d.transaction(dataMode, func() error {
		d.one[0] = b
		return d.transmit(d.one[:])
	})
}

// writeParameters sends each byte with writeParameter.
func (d *Dev) writeParameters(params ...byte) error {
	for _, b := range params {
		if err := d.writeParameter(b); err != nil {
			return err
		}
	}
	return nil
}

// setAddressWindow targets the inclusive rectangle (x1,y1)-(x2,y2) and starts
// a memory write. The caller must have clipped the coordinates already; the
// controller then expects exactly (x2-x1+1)*(y2-y1+1) pixels.
func (d *Dev) setAddressWindow(x1, y1, x2, y2 int) error {
	if err := d.writeCommand(columnAddressSet); err != nil {
		return err
	}
	if err := d.writeParameters(byte(x1>>8), byte(x1), byte(x2>>8), byte(x2)); err != nil {
		return err
	}
	if err := d.writeCommand(pageAddressSet); err != nil {
		return err
	}
	if err := d.writeParameters(byte(y1>>8), byte(y1), byte(y2>>8), byte(y2)); err != nil {
		return err
	}
	return d.writeCommand(memoryWrite)
}
