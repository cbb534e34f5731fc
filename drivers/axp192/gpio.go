package axp192

// Pin selects one of the chip's GPIOs.
type Pin uint8

const (
	GPIO0 Pin = iota
	GPIO1
	GPIO2
	GPIO3
	GPIO4
)

// PinMode is a pin function. Not every pin supports every mode.
type PinMode uint8

const (
	PinOpenDrain PinMode = iota // NMOS open-drain output
	PinInput                        // digital input
	PinLDO                          // low-noise LDO (GPIO0)
	PinPWM                          // PWM output (GPIO1, GPIO2)
	PinADC                          // ADC input (GPIO0..GPIO3)
	PinLow                          // driven low (GPIO0..GPIO2)
	PinFloating                     // floating (GPIO0..GPIO2)
	PinChargeControl                // external charge control (GPIO3, GPIO4)
)

const noMode = 0xFF

// Mode encodings per pin, indexed by PinMode; noMode marks unsupported.
var pinModeCodes = [...][8]byte{
	GPIO0: {0b000, 0b001, 0b010, noMode, 0b100, 0b101, 0b110, noMode},
	GPIO1: {0b000, 0b001, noMode, 0b010, 0b100, 0b101, 0b110, noMode},
	GPIO2: {0b000, 0b001, noMode, 0b010, 0b100, 0b101, 0b110, noMode},
	GPIO3: {0b01, 0b10, noMode, noMode, 0b11, noMode, noMode, 0b00},
	GPIO4: {0b01, 0b10, noMode, noMode, noMode, noMode, noMode, 0b00},
}

var pinModeFields = [...]Field{
	GPIO0: FieldGPIO0Mode,
	GPIO1: FieldGPIO1Mode,
	GPIO2: FieldGPIO2Mode,
	GPIO3: FieldGPIO3Mode,
	GPIO4: FieldGPIO4Mode,
}

func pinModeCode(p Pin, m PinMode) (byte, bool) {
	if int(p) >= len(pinModeCodes) || int(m) >= len(pinModeCodes[p]) {
		return 0, false
	}
	c := pinModeCodes[p][m]
	return c, c != noMode
}

// SetPinMode selects the function of p. Unsupported combinations return
// ErrNotSupported without touching the bus. GPIO3/GPIO4 also get their shared
// function-enable bit set in the same write.
func (d *Device) SetPinMode(p Pin, m PinMode) error {
	code, ok := pinModeCode(p, m)
	if !ok {
		return ErrNotSupported
	}
	f := pinModeFields[p]
	if p == GPIO3 || p == GPIO4 {
		v := FieldGPIO34Enable.Put(0, 1)
		v = f.Put(v, code)
		return d.modify(f.Reg, f.mask()|FieldGPIO34Enable.mask(), v)
	}
	return d.WriteField(f, code)
}

// PinMode reads back the function of p.
func (d *Device) PinMode(p Pin) (PinMode, error) {
	if int(p) >= len(pinModeFields) {
		return 0, ErrNotSupported
	}
	code, err := d.ReadField(pinModeFields[p])
	if err != nil {
		return 0, err
	}
	for m, c := range pinModeCodes[p] {
		if c == code {
			return PinMode(m), nil
		}
	}
	// GPIO0..2 encode floating as 0b11x.
	if p <= GPIO2 && code == 0b111 {
		return PinFloating, nil
	}
	return 0, ErrNotSupported
}

func pinLevelBit(p Pin) (out, in Field, bit uint8, ok bool) {
	switch {
	case p <= GPIO2:
		return FieldGPIO012Out, FieldGPIO012In, uint8(p), true
	case p <= GPIO4:
		return FieldGPIO34Out, FieldGPIO34In, uint8(p - GPIO3), true
	default:
		return Field{}, Field{}, 0, false
	}
}

// SetPinOutput sets the output latch of p (high releases the open drain).
func (d *Device) SetPinOutput(p Pin, high bool) error {
	out, _, bit, ok := pinLevelBit(p)
	if !ok {
		return ErrNotSupported
	}
	mask := byte(1) << (out.Offset + bit)
	var v byte
	if high {
		v = mask
	}
	return d.modify(out.Reg, mask, v)
}

// PinInput reads the input level of p.
func (d *Device) PinInput(p Pin) (bool, error) {
	_, in, bit, ok := pinLevelBit(p)
	if !ok {
		return false, ErrNotSupported
	}
	v, err := d.ReadField(in)
	if err != nil {
		return false, err
	}
	return v&(1<<bit) != 0, nil
}

// GPIOVoltage returns the ADC voltage of p in mV. GPIO4 has no ADC.
func (d *Device) GPIOVoltage(p Pin) (float32, error) {
	if p > GPIO3 {
		return 0, ErrNotSupported
	}
	return d.ADC(ADCGPIO0Voltage + ADCChannel(p))
}
