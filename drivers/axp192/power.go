package axp192

// ---------------- VBUS path (0x30) ----------------

// VBUSLimit selects the VBUS input current limit.
type VBUSLimit uint8

const (
	VBUSLimitNone VBUSLimit = iota
	VBUSLimit100mA
	VBUSLimit500mA
)

// SetVBUSHold programs the VHOLD regulation point (4000..4700 mV, 100 mV
// steps) and its enable in one read-modify-write.
func (d *Device) SetVBUSHold(enable bool, mV int32) error {
	code, err := rangeVHold.encode(mV)
	if err != nil {
		return err
	}
	v := FieldVHold.Put(0, code)
	if enable {
		v = FieldVHoldEnable.Put(v, 1)
	}
	return d.modify(regVBUSPath, FieldVHold.mask()|FieldVHoldEnable.mask(), v)
}

// VBUSHold reads back the VHOLD enable and voltage.
func (d *Device) VBUSHold() (enabled bool, mV int32, err error) {
	v, err := d.readByte(regVBUSPath)
	if err != nil {
		return false, 0, err
	}
	return FieldVHoldEnable.Get(v) != 0, rangeVHold.decode(FieldVHold.Get(v)), nil
}

func (d *Device) SetVBUSCurrentLimit(l VBUSLimit) error {
	var v byte
	switch l {
	case VBUSLimitNone:
	case VBUSLimit100mA:
		v = FieldVBUSLimitEnable.Put(v, 1)
		v = FieldVBUSLimit100.Put(v, 1)
	case VBUSLimit500mA:
		v = FieldVBUSLimitEnable.Put(v, 1)
	default:
		return ErrNotSupported
	}
	return d.modify(regVBUSPath, FieldVBUSLimitEnable.mask()|FieldVBUSLimit100.mask(), v)
}

// ---------------- Power off (0x31, 0x32) ----------------

// SetPowerOffVoltage sets VOFF, the battery voltage at which the chip shuts
// down (2600..3300 mV, 100 mV steps).
func (d *Device) SetPowerOffVoltage(mV int32) error {
	code, err := rangeVOFF.encode(mV)
	if err != nil {
		return err
	}
	return d.WriteField(FieldVOFF, code)
}

func (d *Device) PowerOffVoltage() (int32, error) {
	code, err := d.ReadField(FieldVOFF)
	if err != nil {
		return 0, err
	}
	return rangeVOFF.decode(code), nil
}

// PowerOff sets the shutdown bit. All outputs except LDO1 turn off; the
// device stops acknowledging until the power key or a supply wakes it.
func (d *Device) PowerOff() error { return d.writeFlag(FieldShutdown, true) }

func (d *Device) EnableBatteryDetection(on bool) error { return d.writeFlag(FieldBatDetect, on) }

// LEDMode drives the CHGLED pin.
type LEDMode uint8

const (
	LEDCharger LEDMode = iota // controlled by the charger
	LEDOff
	LEDBlink1Hz
	LEDBlink4Hz
	LEDOn
)

// SetChargeLED selects charger control or a fixed CHGLED pattern.
func (d *Device) SetChargeLED(m LEDMode) error {
	var v byte
	switch m {
	case LEDCharger:
	case LEDOff, LEDBlink1Hz, LEDBlink4Hz, LEDOn:
		v = FieldCHGLEDManual.Put(v, 1)
		v = FieldCHGLED.Put(v, byte(m-LEDOff))
	default:
		return ErrNotSupported
	}
	return d.modify(regShutdownLED, FieldCHGLED.mask()|FieldCHGLEDManual.mask(), v)
}

// ---------------- Power key (PEK, 0x36) ----------------

type PEKBoot uint8

const (
	PEKBoot128ms PEKBoot = iota
	PEKBoot512ms
	PEKBoot1s
	PEKBoot2s
)

type PEKLongPress uint8

const (
	PEKLong1000ms PEKLongPress = iota
	PEKLong1500ms
	PEKLong2000ms
	PEKLong2500ms
)

type PEKShutdown uint8

const (
	PEKShutdown4s PEKShutdown = iota
	PEKShutdown6s
	PEKShutdown8s
	PEKShutdown10s
)

// Milliseconds returns the press duration selected by each enum.

func (b PEKBoot) Milliseconds() uint32      { return [...]uint32{128, 512, 1000, 2000}[b&3] }
func (l PEKLongPress) Milliseconds() uint32 { return 1000 + 500*uint32(l&3) }
func (s PEKShutdown) Milliseconds() uint32  { return 4000 + 2000*uint32(s&3) }

// PEKConfig is the full PEK parameter register.
type PEKConfig struct {
	Boot           PEKBoot      `json:"boot"`
	LongPress      PEKLongPress `json:"long_press"`
	AutoShutdown   bool         `json:"auto_shutdown"` // power off after Shutdown hold time
	PWROKDelay64ms bool         `json:"pwrok_delay_64ms"`
	Shutdown       PEKShutdown  `json:"shutdown"`
}

func (c PEKConfig) encode() (byte, error) {
	if c.Boot > PEKBoot2s || c.LongPress > PEKLong2500ms || c.Shutdown > PEKShutdown10s {
		return 0, ErrNotSupported
	}
	v := FieldPEKBoot.Put(0, byte(c.Boot))
	v = FieldPEKLongPress.Put(v, byte(c.LongPress))
	if c.AutoShutdown {
		v = FieldPEKAutoOff.Put(v, 1)
	}
	if c.PWROKDelay64ms {
		v = FieldPEKPWROKDelay.Put(v, 1)
	}
	return FieldPEKShutdown.Put(v, byte(c.Shutdown)), nil
}

// ConfigurePowerKey writes all PEK timings in one transaction.
func (d *Device) ConfigurePowerKey(c PEKConfig) error {
	v, err := c.encode()
	if err != nil {
		return err
	}
	return d.writeByte(regPEK, v)
}

func (d *Device) ReadPowerKeyConfig() (PEKConfig, error) {
	v, err := d.readByte(regPEK)
	if err != nil {
		return PEKConfig{}, err
	}
	return PEKConfig{
		Boot:           PEKBoot(FieldPEKBoot.Get(v)),
		LongPress:      PEKLongPress(FieldPEKLongPress.Get(v)),
		AutoShutdown:   FieldPEKAutoOff.Get(v) != 0,
		PWROKDelay64ms: FieldPEKPWROKDelay.Get(v) != 0,
		Shutdown:       PEKShutdown(FieldPEKShutdown.Get(v)),
	}, nil
}
