package axp192

// ChargeTarget is the constant-voltage target of the Li-ion charger.
type ChargeTarget uint8

const (
	Target4100mV ChargeTarget = iota
	Target4150mV
	Target4200mV
	Target4360mV
)

// MilliVolts returns the target voltage.
func (t ChargeTarget) MilliVolts() int32 {
	switch t {
	case Target4100mV:
		return 4100
	case Target4150mV:
		return 4150
	case Target4200mV:
		return 4200
	case Target4360mV:
		return 4360
	default:
		return 0
	}
}

// EndCurrent is the charge termination threshold as a fraction of the set current.
type EndCurrent uint8

const (
	EndCurrent10 EndCurrent = iota // 10 %
	EndCurrent15                   // 15 %
)

// ChargeConfig is the full CHARGE_CONTROL_1 (0x33) content.
type ChargeConfig struct {
	Enable     bool         `json:"enable"`
	Target     ChargeTarget `json:"target"`
	EndCurrent EndCurrent   `json:"end_current"`
	Current_mA int32        `json:"current_ma"`
}

func (c ChargeConfig) encode() (byte, error) {
	if c.Target > Target4360mV {
		return 0, ErrNotSupported
	}
	if c.EndCurrent > EndCurrent15 {
		return 0, ErrNotSupported
	}
	cur, err := encodeChargeCurrent(c.Current_mA)
	if err != nil {
		return 0, err
	}
	var v byte
	if c.Enable {
		v = FieldChargeEnable.Put(v, 1)
	}
	v = FieldChargeTarget.Put(v, byte(c.Target))
	v = FieldChargeEnd.Put(v, byte(c.EndCurrent))
	v = FieldChargeCurrent.Put(v, cur)
	return v, nil
}

// ConfigureCharging writes enable, target voltage, end current and charge
// current in a single transaction. No read is issued; nothing is written if any
// field is invalid.
func (d *Device) ConfigureCharging(c ChargeConfig) error {
	v, err := c.encode()
	if err != nil {
		return err
	}
	return d.writeByte(regChargeCtl1, v)
}

// ReadChargeConfig decodes CHARGE_CONTROL_1. Current_mA is the upper bound of
// the programmed bin.
func (d *Device) ReadChargeConfig() (ChargeConfig, error) {
	v, err := d.readByte(regChargeCtl1)
	if err != nil {
		return ChargeConfig{}, err
	}
	return ChargeConfig{
		Enable:     FieldChargeEnable.Get(v) != 0,
		Target:     ChargeTarget(FieldChargeTarget.Get(v)),
		EndCurrent: EndCurrent(FieldChargeEnd.Get(v)),
		Current_mA: decodeChargeCurrent(FieldChargeCurrent.Get(v)),
	}, nil
}

func (d *Device) EnableCharging(on bool) error { return d.writeFlag(FieldChargeEnable, on) }

// SetChargeCurrent selects the smallest setting that covers mA.
func (d *Device) SetChargeCurrent(mA int32) error {
	code, err := encodeChargeCurrent(mA)
	if err != nil {
		return err
	}
	return d.WriteField(FieldChargeCurrent, code)
}

// ChargeCurrent returns the programmed charge current setting.
func (d *Device) ChargeCurrent() (int32, error) {
	code, err := d.ReadField(FieldChargeCurrent)
	if err != nil {
		return 0, err
	}
	return decodeChargeCurrent(code), nil
}

// Charge timers (CHARGE_CONTROL_2).

type PrechargeTimeout uint8

const (
	Precharge30min PrechargeTimeout = iota
	Precharge40min
	Precharge50min
	Precharge60min
)

type CCTimeout uint8

const (
	CC7h CCTimeout = iota
	CC8h
	CC9h
	CC10h
)

func (d *Device) SetChargeTimers(pre PrechargeTimeout, cc CCTimeout) error {
	if pre > Precharge60min || cc > CC10h {
		return ErrNotSupported
	}
	mask := FieldPrechargeTime.mask() | FieldCCTime.mask()
	v := FieldPrechargeTime.Put(0, byte(pre))
	v = FieldCCTime.Put(v, byte(cc))
	return d.modify(regChargeCtl2, mask, v)
}

// Backup (RTC) battery charger.

type BackupVoltage uint8

const (
	Backup3100mV BackupVoltage = iota
	Backup3000mV
	Backup3000mVAlt // datasheet lists 3.0 V twice
	Backup2500mV
)

type BackupCurrent uint8

const (
	Backup50uA BackupCurrent = iota
	Backup100uA
	Backup200uA
	Backup400uA
)

type BackupConfig struct {
	Enable  bool          `json:"enable"`
	Voltage BackupVoltage `json:"voltage"`
	Current BackupCurrent `json:"current"`
}

// ConfigureBackupCharging writes the backup charger register in one
// transaction. Reserved bits 4:2 are written as zero.
func (d *Device) ConfigureBackupCharging(c BackupConfig) error {
	if c.Voltage > Backup2500mV || c.Current > Backup400uA {
		return ErrNotSupported
	}
	var v byte
	if c.Enable {
		v = FieldBackupEnable.Put(v, 1)
	}
	v = FieldBackupVoltage.Put(v, byte(c.Voltage))
	v = FieldBackupCurrent.Put(v, byte(c.Current))
	return d.writeByte(regBackupChg, v)
}

// ---------------- Battery temperature (TS pin) thresholds ----------------

// Threshold selects one of the four TS window limits.
type Threshold uint8

const (
	ChargeLow Threshold = iota // VLTF-charge: TS above this voltage is too cold to charge
	ChargeHigh                     // VHTF-charge
	DischargeLow                   // VLTF-discharge
	DischargeHigh                  // VHTF-discharge
)

var thresholdFields = [...]Field{
	ChargeLow:     FieldVLTFCharge,
	ChargeHigh:    FieldVHTFCharge,
	DischargeLow:  FieldVLTFDischarge,
	DischargeHigh: FieldVHTFDischarge,
}

// SetTempThreshold stores a TS pin threshold in mV (0..3264, 12.8 mV steps,
// rounded half up).
func (d *Device) SetTempThreshold(t Threshold, mV int32) error {
	if int(t) >= len(thresholdFields) {
		return ErrNotSupported
	}
	code, err := encodeTempThreshold(mV)
	if err != nil {
		return err
	}
	return d.WriteField(thresholdFields[t], code)
}

// TempThreshold reads a TS pin threshold back in mV.
func (d *Device) TempThreshold(t Threshold) (int32, error) {
	if int(t) >= len(thresholdFields) {
		return 0, ErrNotSupported
	}
	code, err := d.ReadField(thresholdFields[t])
	if err != nil {
		return 0, err
	}
	return decodeTempThreshold(code), nil
}

// ---------------- Status ----------------

// PowerStatus is the INPUT_POWER_STATUS (0x00) byte.
type PowerStatus uint8

const (
	StatusBootFromACINVBUS PowerStatus = 1 << 0
	StatusACINVBUSShorted  PowerStatus = 1 << 1
	StatusBatCharging      PowerStatus = 1 << 2 // battery current flows into the cell
	StatusVBUSAboveVHold   PowerStatus = 1 << 3
	StatusVBUSUsable       PowerStatus = 1 << 4
	StatusVBUSPresent      PowerStatus = 1 << 5
	StatusACINUsable       PowerStatus = 1 << 6
	StatusACINPresent      PowerStatus = 1 << 7
)

// ChargeStatus is the POWER_MODE_CHARGE_STATUS (0x01) byte.
type ChargeStatus uint8

const (
	ChargeCurrentLow    ChargeStatus = 1 << 2 // actual charge current below the setting
	ChargeBatActivating ChargeStatus = 1 << 3
	ChargeBatPresent    ChargeStatus = 1 << 5
	ChargeInProgress    ChargeStatus = 1 << 6
	ChargeOverTemp      ChargeStatus = 1 << 7
)

func (s PowerStatus) Has(flag PowerStatus) bool   { return s&flag != 0 }
func (s ChargeStatus) Has(flag ChargeStatus) bool { return s&flag != 0 }

func (d *Device) PowerStatus() (PowerStatus, error) {
	v, err := d.readByte(regPowerStatus)
	return PowerStatus(v), err
}

func (d *Device) ChargeStatus() (ChargeStatus, error) {
	v, err := d.readByte(regChargeStatus)
	return ChargeStatus(v), err
}
