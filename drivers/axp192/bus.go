package axp192

// Register transactions. The AXP192 auto-increments on multi-byte reads, so a
// wide ADC or coulomb value is one write-then-read with a longer buffer.

// ReadRegisters fills buf starting at reg with a single write-then-read.
// An empty buf is a no-op.
func (d *Device) ReadRegisters(reg byte, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	d.w[0] = reg
	if err := d.bus.Tx(Address, d.w[:1], buf); err != nil {
		return &BusError{Op: "read", Reg: reg, Err: err}
	}
	return nil
}

// WriteRegisters issues a single write of reg followed by data.
// Payloads longer than MaxWritePayload never reach the bus.
func (d *Device) WriteRegisters(reg byte, data []byte) error {
	if len(data) > MaxWritePayload {
		return &PayloadTooLargeError{Len: len(data)}
	}
	d.w[0] = reg
	n := copy(d.w[1:], data)
	if err := d.bus.Tx(Address, d.w[:1+n], nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

func (d *Device) readByte(reg byte) (byte, error) {
	if err := d.ReadRegisters(reg, d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) writeByte(reg, v byte) error {
	d.w[0] = reg
	d.w[1] = v
	if err := d.bus.Tx(Address, d.w[:2], nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// readN reads n (<= len(d.r)) consecutive registers into the device buffer.
func (d *Device) readN(reg byte, n int) ([]byte, error) {
	buf := d.r[:n]
	if err := d.ReadRegisters(reg, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Generic read-modify-write for 8-bit registers. Bits outside mask are written
// back exactly as read.
func (d *Device) modify(reg, mask, value byte) error {
	cur, err := d.readByte(reg)
	if err != nil {
		return err
	}
	return d.writeByte(reg, (cur&^mask)|(value&mask))
}

// ---------------- Register map access ----------------

// ReadField reads f's register and returns the field value.
func (d *Device) ReadField(f Field) (byte, error) {
	v, err := d.readByte(f.Reg)
	if err != nil {
		return 0, err
	}
	return f.Get(v), nil
}

// WriteField stores v into f. Full-byte fields are written directly; narrower
// fields are read-modify-written so sibling fields keep their value.
func (d *Device) WriteField(f Field, v byte) error {
	if f.Access != ReadWrite {
		return ErrNotSupported
	}
	if v > f.Max() {
		return &FieldRangeError{Field: f.Name, Value: v}
	}
	if f.Full() {
		return d.writeByte(f.Reg, v)
	}
	return d.modify(f.Reg, f.mask(), v<<f.Offset)
}

func (d *Device) readFlag(f Field) (bool, error) {
	v, err := d.ReadField(f)
	return v != 0, err
}

func (d *Device) writeFlag(f Field, on bool) error {
	var v byte
	if on {
		v = 1
	}
	return d.WriteField(f, v)
}
