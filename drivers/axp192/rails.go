package axp192

// Rail selects a regulated output.
type Rail uint8

const (
	DCDC1 Rail = iota
	DCDC2
	DCDC3
	LDO2
	LDO3
	EXTEN // external enable line; switch only, no voltage setting
)

func (r Rail) String() string {
	switch r {
	case DCDC1:
		return "dcdc1"
	case DCDC2:
		return "dcdc2"
	case DCDC3:
		return "dcdc3"
	case LDO2:
		return "ldo2"
	case LDO3:
		return "ldo3"
	case EXTEN:
		return "exten"
	default:
		return "unknown"
	}
}

// RailMask is the POWER_OUTPUT_CONTROL (0x12) byte.
type RailMask uint8

const (
	RailDCDC1 RailMask = 1 << 0
	RailDCDC3 RailMask = 1 << 1
	RailLDO2  RailMask = 1 << 2
	RailLDO3  RailMask = 1 << 3
	RailDCDC2 RailMask = 1 << 4
	RailEXTEN RailMask = 1 << 6
)

func (m RailMask) Has(flag RailMask) bool { return m&flag != 0 }

// DCDCMode selects PWM/PFM behaviour of a DC-DC converter.
type DCDCMode uint8

const (
	DCDCAuto DCDCMode = iota // PFM/PWM automatic switching
	DCDCPWM                  // fixed PWM
)

type railDef struct {
	enable  Field
	voltage Field // zero Width: no voltage control
	rng     linearRange
	mode    Field
}

var railDefs = [...]railDef{
	DCDC1: {enable: FieldDCDC1Enable, voltage: FieldDCDC1Voltage, rng: rangeDCDC13, mode: FieldDCDC1PWM},
	DCDC2: {enable: FieldDCDC2Enable, voltage: FieldDCDC2Voltage, rng: rangeDCDC2, mode: FieldDCDC2PWM},
	DCDC3: {enable: FieldDCDC3Enable, voltage: FieldDCDC3Voltage, rng: rangeDCDC13, mode: FieldDCDC3PWM},
	LDO2:  {enable: FieldLDO2Enable, voltage: FieldLDO2Voltage, rng: rangeLDO},
	LDO3:  {enable: FieldLDO3Enable, voltage: FieldLDO3Voltage, rng: rangeLDO},
	EXTEN: {enable: FieldEXTENEnable},
}

func lookupRail(r Rail) (railDef, bool) {
	if int(r) >= len(railDefs) {
		return railDef{}, false
	}
	return railDefs[r], true
}

// SetRailVoltage programs r to mV. The request must lie on the rail's range;
// values between steps are floored to the step below.
func (d *Device) SetRailVoltage(r Rail, mV int32) error {
	def, ok := lookupRail(r)
	if !ok || def.voltage.Width == 0 {
		return ErrNotSupported
	}
	code, err := def.rng.encode(mV)
	if err != nil {
		return err
	}
	return d.WriteField(def.voltage, code)
}

// RailVoltage reads back the programmed setting of r in mV.
func (d *Device) RailVoltage(r Rail) (int32, error) {
	def, ok := lookupRail(r)
	if !ok || def.voltage.Width == 0 {
		return 0, ErrNotSupported
	}
	code, err := d.ReadField(def.voltage)
	if err != nil {
		return 0, err
	}
	return def.rng.decode(code), nil
}

// EnableRail switches one output, preserving the other output enables.
func (d *Device) EnableRail(r Rail, on bool) error {
	def, ok := lookupRail(r)
	if !ok {
		return ErrNotSupported
	}
	return d.writeFlag(def.enable, on)
}

// RailEnabled reports the output enable bit of r.
func (d *Device) RailEnabled(r Rail) (bool, error) {
	def, ok := lookupRail(r)
	if !ok {
		return false, ErrNotSupported
	}
	return d.readFlag(def.enable)
}

// RailOutputs returns the whole output control byte.
func (d *Device) RailOutputs() (RailMask, error) {
	v, err := d.readByte(regPowerOutput)
	return RailMask(v), err
}

// SetRailOutputs writes the whole output control byte in one transaction.
// Bits 7 and 5 are reserved and written as zero.
func (d *Device) SetRailOutputs(m RailMask) error {
	const valid = RailDCDC1 | RailDCDC3 | RailLDO2 | RailLDO3 | RailDCDC2 | RailEXTEN
	return d.writeByte(regPowerOutput, byte(m&valid))
}

// SetDCDCMode selects automatic PFM/PWM or forced PWM for a DC-DC rail.
func (d *Device) SetDCDCMode(r Rail, m DCDCMode) error {
	def, ok := lookupRail(r)
	if !ok || def.mode.Width == 0 {
		return ErrNotSupported
	}
	return d.writeFlag(def.mode, m == DCDCPWM)
}

// DCDCMode reads the mode of a DC-DC rail.
func (d *Device) DCDCMode(r Rail) (DCDCMode, error) {
	def, ok := lookupRail(r)
	if !ok || def.mode.Width == 0 {
		return DCDCAuto, ErrNotSupported
	}
	pwm, err := d.readFlag(def.mode)
	if err != nil || !pwm {
		return DCDCAuto, err
	}
	return DCDCPWM, nil
}

// GPIO0 low-noise LDO. Takes effect once GPIO0 is in PinLDO mode.

func (d *Device) SetGPIO0LDOVoltage(mV int32) error {
	code, err := rangeLDO.encode(mV)
	if err != nil {
		return err
	}
	return d.WriteField(FieldGPIO0LDO, code)
}

func (d *Device) GPIO0LDOVoltage() (int32, error) {
	code, err := d.ReadField(FieldGPIO0LDO)
	if err != nil {
		return 0, err
	}
	return rangeLDO.decode(code), nil
}
