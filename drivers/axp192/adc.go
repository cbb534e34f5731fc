package axp192

// ADCChannel selects one converter result.
type ADCChannel uint8

const (
	ADCBatteryVoltage ADCChannel = iota
	ADCBatteryChargeCurrent
	ADCBatteryDischargeCurrent
	ADCBatteryPower
	ADCACINVoltage
	ADCACINCurrent
	ADCVBUSVoltage
	ADCVBUSCurrent
	ADCInternalTemp
	ADCAPSVoltage
	ADCTSVoltage
	ADCGPIO0Voltage
	ADCGPIO1Voltage
	ADCGPIO2Voltage
	ADCGPIO3Voltage
)

// ADCEnable covers both enable registers: bits 7:0 are ADC_ENABLE_1 (0x82),
// bits 15:8 are ADC_ENABLE_2 (0x83).
type ADCEnable uint16

const (
	ADCEnTS          ADCEnable = 1 << 0
	ADCEnAPSVoltage  ADCEnable = 1 << 1
	ADCEnVBUSCurrent ADCEnable = 1 << 2
	ADCEnVBUSVoltage ADCEnable = 1 << 3
	ADCEnACINCurrent ADCEnable = 1 << 4
	ADCEnACINVoltage ADCEnable = 1 << 5
	ADCEnBatCurrent  ADCEnable = 1 << 6
	ADCEnBatVoltage  ADCEnable = 1 << 7
	ADCEnGPIO3       ADCEnable = 1 << 8
	ADCEnGPIO2       ADCEnable = 1 << 9
	ADCEnGPIO1       ADCEnable = 1 << 10
	ADCEnGPIO0       ADCEnable = 1 << 11
	ADCEnInternTemp  ADCEnable = 1 << 15
)

func (e ADCEnable) Has(flag ADCEnable) bool { return e&flag != 0 }

// Bits of ADC_ENABLE_2 that are not reserved.
const adcEnable2Valid = 0x8F

// ADCRate is the conversion rate.
type ADCRate uint8

const (
	ADCRate25Hz ADCRate = iota
	ADCRate50Hz
	ADCRate100Hz
	ADCRate200Hz
)

func (r ADCRate) Hz() int32 {
	if r > ADCRate200Hz {
		return 0
	}
	return 25 << r
}

type adcDef struct {
	reg    byte
	bits   uint8
	scale  float32 // physical unit per code
	offset float32
	enable ADCEnable
}

// Scale factors: mV, mA, °C and µW per code.
var adcDefs = [...]adcDef{
	ADCBatteryVoltage:          {regBatVolt, 12, 1.1, 0, ADCEnBatVoltage},
	ADCBatteryChargeCurrent:    {regBatChgCurr, 13, 0.5, 0, ADCEnBatCurrent},
	ADCBatteryDischargeCurrent: {regBatDisCurr, 13, 0.5, 0, ADCEnBatCurrent},
	ADCBatteryPower:            {regBatPower, 24, 0.55, 0, ADCEnBatVoltage | ADCEnBatCurrent},
	ADCACINVoltage:             {regACINVolt, 12, 1.7, 0, ADCEnACINVoltage},
	ADCACINCurrent:             {regACINCurr, 12, 0.625, 0, ADCEnACINCurrent},
	ADCVBUSVoltage:             {regVBUSVolt, 12, 1.7, 0, ADCEnVBUSVoltage},
	ADCVBUSCurrent:             {regVBUSCurr, 12, 0.375, 0, ADCEnVBUSCurrent},
	ADCInternalTemp:            {regInternTemp, 12, 0.1, -144.7, ADCEnInternTemp},
	ADCAPSVoltage:              {regAPSVolt, 12, 1.4, 0, ADCEnAPSVoltage},
	ADCTSVoltage:               {regTSVolt, 12, 0.8, 0, ADCEnTS},
	ADCGPIO0Voltage:            {regGPIO0Volt, 12, 0.5, 0, ADCEnGPIO0},
	ADCGPIO1Voltage:            {regGPIO1Volt, 12, 0.5, 0, ADCEnGPIO1},
	ADCGPIO2Voltage:            {regGPIO2Volt, 12, 0.5, 0, ADCEnGPIO2},
	ADCGPIO3Voltage:            {regGPIO3Volt, 12, 0.5, 0, ADCEnGPIO3},
}

// EnableBit returns the enable flag(s) the channel depends on.
func (ch ADCChannel) EnableBit() ADCEnable {
	if int(ch) >= len(adcDefs) {
		return 0
	}
	return adcDefs[ch].enable
}

// ReadADC returns the raw code of ch.
func (d *Device) ReadADC(ch ADCChannel) (uint32, error) {
	if int(ch) >= len(adcDefs) {
		return 0, ErrNotSupported
	}
	def := adcDefs[ch]
	raw, err := d.readN(def.reg, adcBytes(def.bits))
	if err != nil {
		return 0, err
	}
	return adcCode(raw, def.bits), nil
}

// ADC returns ch scaled to its physical unit (mV, mA, °C or µW).
func (d *Device) ADC(ch ADCChannel) (float32, error) {
	code, err := d.ReadADC(ch)
	if err != nil {
		return 0, err
	}
	def := adcDefs[ch]
	return float32(code)*def.scale + def.offset, nil
}

func (d *Device) BatteryVoltage() (float32, error)      { return d.ADC(ADCBatteryVoltage) }
func (d *Device) BatteryPower() (float32, error)        { return d.ADC(ADCBatteryPower) }
func (d *Device) ACINVoltage() (float32, error)         { return d.ADC(ADCACINVoltage) }
func (d *Device) ACINCurrent() (float32, error)         { return d.ADC(ADCACINCurrent) }
func (d *Device) VBUSVoltage() (float32, error)         { return d.ADC(ADCVBUSVoltage) }
func (d *Device) VBUSCurrent() (float32, error)         { return d.ADC(ADCVBUSCurrent) }
func (d *Device) APSVoltage() (float32, error)          { return d.ADC(ADCAPSVoltage) }
func (d *Device) TSVoltage() (float32, error)           { return d.ADC(ADCTSVoltage) }
func (d *Device) InternalTemperature() (float32, error) { return d.ADC(ADCInternalTemp) }

func (d *Device) BatteryChargeCurrent() (float32, error) {
	return d.ADC(ADCBatteryChargeCurrent)
}

func (d *Device) BatteryDischargeCurrent() (float32, error) {
	return d.ADC(ADCBatteryDischargeCurrent)
}

// InternalDeciCelsius returns the die temperature in tenths of °C without
// floating point: code - 1447.
func (d *Device) InternalDeciCelsius() (int32, error) {
	code, err := d.ReadADC(ADCInternalTemp)
	if err != nil {
		return 0, err
	}
	return int32(code) - 1447, nil
}

// ---------------- ADC control ----------------

// SetADCEnables writes both enable registers with exactly the given channels.
// 0x83 is read first so a failed read leaves both registers untouched.
func (d *Device) SetADCEnables(e ADCEnable) error {
	hi, err := d.readByte(regADCEnable2)
	if err != nil {
		return err
	}
	if err := d.writeByte(regADCEnable1, byte(e)); err != nil {
		return err
	}
	return d.writeByte(regADCEnable2, (hi&^adcEnable2Valid)|(byte(e>>8)&adcEnable2Valid))
}

// UpdateADCEnables sets and clears individual channels, leaving the rest.
func (d *Device) UpdateADCEnables(set, clear ADCEnable) error {
	if lo := byte(set) | byte(clear); lo != 0 {
		if err := d.modify(regADCEnable1, lo, byte(set)); err != nil {
			return err
		}
	}
	if hi := (byte(set>>8) | byte(clear>>8)) & adcEnable2Valid; hi != 0 {
		return d.modify(regADCEnable2, hi, byte(set>>8))
	}
	return nil
}

// ADCEnables reads both enable registers.
func (d *Device) ADCEnables() (ADCEnable, error) {
	lo, err := d.readByte(regADCEnable1)
	if err != nil {
		return 0, err
	}
	hi, err := d.readByte(regADCEnable2)
	if err != nil {
		return 0, err
	}
	return ADCEnable(hi&adcEnable2Valid)<<8 | ADCEnable(lo), nil
}

func (d *Device) SetADCSampleRate(r ADCRate) error {
	if r > ADCRate200Hz {
		return ErrNotSupported
	}
	return d.WriteField(FieldADCRate, byte(r))
}

func (d *Device) ADCSampleRate() (ADCRate, error) {
	v, err := d.ReadField(FieldADCRate)
	return ADCRate(v), err
}

// ---------------- Coulomb counter ----------------

// CoulombControl is the COULOMB_COUNTER_CONTROL (0xB8) action.
type CoulombControl uint8

const (
	CoulombEnable CoulombControl = 1 << 7
	CoulombPause  CoulombControl = 1 << 6
	CoulombClear  CoulombControl = 1 << 5 // self-clearing
)

// SetCoulombCounter writes the control byte.
func (d *Device) SetCoulombCounter(c CoulombControl) error {
	return d.writeByte(regCoulombCtl, byte(c&(CoulombEnable|CoulombPause|CoulombClear)))
}

// CoulombCounter returns the raw 32-bit charge and discharge accumulators.
func (d *Device) CoulombCounter() (charge, discharge uint32, err error) {
	raw, err := d.readN(regCoulombChg, 4)
	if err != nil {
		return 0, 0, err
	}
	charge = be32(raw)
	raw, err = d.readN(regCoulombDis, 4)
	if err != nil {
		return 0, 0, err
	}
	return charge, be32(raw), nil
}

// CoulombMilliAmpHours returns the net charge since the last clear:
// 65536 * 0.5 mA * (charge - discharge) / 3600 / rate.
func (d *Device) CoulombMilliAmpHours() (float32, error) {
	charge, discharge, err := d.CoulombCounter()
	if err != nil {
		return 0, err
	}
	rate, err := d.ADCSampleRate()
	if err != nil {
		return 0, err
	}
	net := float64(int64(charge) - int64(discharge))
	return float32(65536 * 0.5 * net / 3600 / float64(rate.Hz())), nil
}
