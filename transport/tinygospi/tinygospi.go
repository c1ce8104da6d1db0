// Package tinygospi runs driver transactions on a TinyGo SPI bus. On a
// microcontroller machine.SPI satisfies drivers.SPI and the chip select is a
// machine.Pin's Set method.
package tinygospi

import (
	"tinygo.org/x/drivers"
)

// Pin drives the chip select line.
type Pin func(level bool)

// Device is one chip on a shared bus.
type Device struct {
	bus          drivers.SPI
	cs           Pin
	csActiveHigh bool
	tx           []byte
}

// New returns a device selected by cs, active low unless activeHigh is set.
// The line is driven inactive straight away.
func New(bus drivers.SPI, cs Pin, activeHigh bool) *Device {
	d := &Device{bus: bus, cs: cs, csActiveHigh: activeHigh}
	d.selectChip(false)
	return d
}

func (d *Device) selectChip(on bool) {
	if d.cs != nil {
		d.cs(on == d.csActiveHigh)
	}
}

// Transaction implements driver.Transport. Chip select stays asserted across
// all buffers and is released even when the bus fails.
func (d *Device) Transaction(bufs ...[]byte) error {
	d.selectChip(true)
	defer d.selectChip(false)
	for _, b := range bufs {
		d.tx = append(d.tx[:0], b...)
		if err := d.bus.Tx(d.tx, b); err != nil {
			return err
		}
	}
	return nil
}
