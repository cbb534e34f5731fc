package axp192

// Profile is a caller-supplied set of settings applied in one call. Zero/nil
// fields are left untouched. It is the JSON document accepted by axpctl.
type Profile struct {
	DCDC1_mV int32 `json:"dcdc1_mv,omitempty"`
	DCDC2_mV int32 `json:"dcdc2_mv,omitempty"`
	DCDC3_mV int32 `json:"dcdc3_mv,omitempty"`
	LDO2_mV  int32 `json:"ldo2_mv,omitempty"`
	LDO3_mV  int32 `json:"ldo3_mv,omitempty"`
	GPIO0_mV int32 `json:"gpio0_ldo_mv,omitempty"`
	VOFF_mV  int32 `json:"voff_mv,omitempty"`

	Outputs    *RailMask     `json:"outputs,omitempty"`
	Charge     *ChargeConfig `json:"charge,omitempty"`
	Backup     *BackupConfig `json:"backup,omitempty"`
	PowerKey   *PEKConfig    `json:"power_key,omitempty"`
	ADCEnables *ADCEnable    `json:"adc_enables,omitempty"`
	ADCRate    *ADCRate      `json:"adc_rate,omitempty"`
}

type profileStep struct {
	set   bool
	apply func(*Device) error
}

func (p Profile) steps() []profileStep {
	return []profileStep{
		{p.DCDC1_mV != 0, func(d *Device) error { return d.SetRailVoltage(DCDC1, p.DCDC1_mV) }},
		{p.DCDC2_mV != 0, func(d *Device) error { return d.SetRailVoltage(DCDC2, p.DCDC2_mV) }},
		{p.DCDC3_mV != 0, func(d *Device) error { return d.SetRailVoltage(DCDC3, p.DCDC3_mV) }},
		{p.LDO2_mV != 0, func(d *Device) error { return d.SetRailVoltage(LDO2, p.LDO2_mV) }},
		{p.LDO3_mV != 0, func(d *Device) error { return d.SetRailVoltage(LDO3, p.LDO3_mV) }},
		{p.GPIO0_mV != 0, func(d *Device) error { return d.SetGPIO0LDOVoltage(p.GPIO0_mV) }},
		{p.VOFF_mV != 0, func(d *Device) error { return d.SetPowerOffVoltage(p.VOFF_mV) }},
		{p.Charge != nil, func(d *Device) error { return d.ConfigureCharging(*p.Charge) }},
		{p.Backup != nil, func(d *Device) error { return d.ConfigureBackupCharging(*p.Backup) }},
		{p.PowerKey != nil, func(d *Device) error { return d.ConfigurePowerKey(*p.PowerKey) }},
		{p.ADCRate != nil, func(d *Device) error { return d.SetADCSampleRate(*p.ADCRate) }},
		{p.ADCEnables != nil, func(d *Device) error { return d.SetADCEnables(*p.ADCEnables) }},
		// Outputs last so rails switch on at their new voltage.
		{p.Outputs != nil, func(d *Device) error { return d.SetRailOutputs(*p.Outputs) }},
	}
}

// Validate runs every encoder the profile needs without touching a bus.
func (p Profile) Validate() error {
	checks := []struct {
		mV  int32
		rng linearRange
	}{
		{p.DCDC1_mV, rangeDCDC13},
		{p.DCDC2_mV, rangeDCDC2},
		{p.DCDC3_mV, rangeDCDC13},
		{p.LDO2_mV, rangeLDO},
		{p.LDO3_mV, rangeLDO},
		{p.GPIO0_mV, rangeLDO},
		{p.VOFF_mV, rangeVOFF},
	}
	for _, c := range checks {
		if c.mV == 0 {
			continue
		}
		if _, err := c.rng.encode(c.mV); err != nil {
			return err
		}
	}
	if p.Charge != nil {
		if _, err := p.Charge.encode(); err != nil {
			return err
		}
	}
	if p.Backup != nil && (p.Backup.Voltage > Backup2500mV || p.Backup.Current > Backup400uA) {
		return ErrNotSupported
	}
	if p.PowerKey != nil {
		if _, err := p.PowerKey.encode(); err != nil {
			return err
		}
	}
	if p.ADCRate != nil && *p.ADCRate > ADCRate200Hz {
		return ErrNotSupported
	}
	return nil
}

// ApplyProfile validates p completely, then applies it in order. The first
// failure is returned unchanged and later steps are not attempted.
func (d *Device) ApplyProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, s := range p.steps() {
		if !s.set {
			continue
		}
		if err := s.apply(d); err != nil {
			return err
		}
	}
	return nil
}
