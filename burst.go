package ili9341

import (
	"periph.io/x/devices/v3/ili9341/rgb565"
)

// burst sends count pixels of color c as one data transaction.
//
// The burst buffer holds min(count*2, burstSize) bytes of the repeating color.
// It is sent whole as many times as it fits into count*2 bytes, followed by
// the remainder. Chip-select stays asserted for the entire burst.
func (d *Dev) burst(c rgb565.Color, count int) error {
	if count <= 0 {
		return nil
	}

	total := count * 2
	size := min(total, d.burstSize)
	buf := d.scratch[:size]
	hi, lo := c.Bytes()
	for i := 0; i < size; i += 2 {
		buf[i] = hi
		buf[i+1] = lo
	}

	blocks := total / size
	remainder := total % size

	return d.transaction(dataMode, func() error {
		for i := 0; i < blocks; i++ {
			if err := d.transmit(buf); err != nil {
				return err
			}
		}
		if remainder == 0 {
			return nil
		}
		return d.transmit(buf[:remainder])
	})
}
