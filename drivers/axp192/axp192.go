// Package axp192 provides a TinyGo driver for the X-Powers AXP192 power
// management IC: three DC-DC converters, LDO2/LDO3, a linear Li-ion charger,
// a 12/13/24-bit ADC block, five GPIOs and the power key (PEK).
//
// Design notes (datasheet references):
// • I2C, 7-bit address 0x34, 8-bit registers; reads auto-increment, ADC results MSB first.
// • Writes carry at most MaxWritePayload data bytes after the register byte.
// • Setters validate and encode before any bus activity; invalid input never
//   produces a partial write.
// • Shared control registers are read-modify-written; composite setters
//   (charge control, PEK, backup charger) compose one byte and write it once.
// • No register cache: every getter reads the chip.
//
// Concurrency: methods are not safe for concurrent use from multiple goroutines.
// Exactly one transaction is in flight per Device. To share a bus with other
// drivers or to bound transaction time, hand New a drvshim adaptor.
package axp192

import "tinygo.org/x/drivers"

// Device represents an AXP192 instance on an I²C bus.
type Device struct {
	bus drivers.I2C

	// Fixed buffers to avoid per-call heap allocations.
	w [1 + MaxWritePayload]byte
	r [4]byte
}

// New constructs a Device. It does not touch the bus.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus}
}

// Bus returns the transport the Device was built with.
func (d *Device) Bus() drivers.I2C { return d.bus }
