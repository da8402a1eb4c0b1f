// Package ili9341 controls an ILI9341 240×320 TFT display.
//
// The ILI9341 is a 16-bit color (RGB565) LCD controller driven over a 4-wire
// serial interface: clock, data, chip-select and a data/command line. This
// driver streams every operation straight to the controller; it keeps no
// framebuffer.
//
// # Display Characteristics
//
// - 240×320 pixels, 65K colors (5-6-5 bits per pixel)
// - Four orientations, swapping width and height when horizontal
// - Hardware vertical scrolling
// - Display inversion
//
// # Hardware Connection
//
// Connect the ILI9341 module to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → GPIO (or GND if always selected)
//	RESET       → Optional: GPIO for hardware reset
//	LED         → 3.3V
//
// Chip-select is driven as a GPIO rather than by the SPI controller so that a
// whole burst of pixel data is framed by a single select.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9341"
//		"periph.io/x/devices/v3/ili9341/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		dc := gpioreg.ByName("GPIO25")
//		cs := gpioreg.ByName("GPIO8")
//
//		dev, _ := ili9341.NewSPI(spiBus, dc, cs, &ili9341.Opts{
//			Orientation: ili9341.HorizontalNormal,
//			RST:         gpioreg.ByName("GPIO24"),
//		})
//		defer dev.Halt()
//
//		dev.FillScreen(rgb565.Black)
//		dev.FillCircle(160, 120, 50, rgb565.Orange)
//		dev.DrawText("Hello", 10, 10, rgb565.White, 2, rgb565.Black)
//	}
//
// # Clipping
//
// The drawing primitives never fail on geometry. A shape whose origin is off
// the panel draws nothing, and one running past the right or bottom edge is
// shortened to fit. Text is not wrapped. Dev.Strict returns a view of the same
// primitives that reports such arguments as ErrOutOfBounds or ErrInvalidScale
// instead.
//
// Transport failures are always returned.
//
// # Images
//
// DrawImage and Write take a raw frame of FrameSize bytes: row-major,
// big-endian RGB565 pixels. rgb565.Encode produces one from any image.Image.
// Draw accepts any image.Image for a sub-rectangle of the panel and implements
// display.Drawer.
//
// # Transports
//
// NewSPI talks to the panel through periph.io. New accepts any transport.Port,
// such as the USB serial bridge in package transport or a transport.Recorder
// for dry runs.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
package ili9341
