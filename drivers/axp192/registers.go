// Package axp192 provides constants for register addresses and bitfields used
// in the operation of the AXP192 power management IC.
package axp192

const (
	// 7-bit I2C address (0110_100b). Fixed on this part.
	Address = 0x34

	// MaxWritePayload is the largest data payload accepted after the register byte.
	MaxWritePayload = 2

	// Status
	regPowerStatus  = 0x00 // R
	regChargeStatus = 0x01 // R

	// Outputs and voltages
	regPowerOutput = 0x12 // R/W (EXTEN, DCDC2, LDO3, LDO2, DCDC3, DCDC1)
	regDCDC2Volt   = 0x23 // R/W bits 5:0
	regDCDC1Volt   = 0x26 // R/W bits 6:0
	regDCDC3Volt   = 0x27 // R/W bits 6:0
	regLDO23Volt   = 0x28 // R/W LDO2 7:4, LDO3 3:0

	// Power path and shutdown
	regVBUSPath    = 0x30 // R/W
	regVOFF        = 0x31 // R/W bits 2:0
	regShutdownLED = 0x32 // R/W (shutdown, battery detect, CHGLED)

	// Charger
	regChargeCtl1 = 0x33 // R/W
	regChargeCtl2 = 0x34 // R/W
	regBackupChg  = 0x35 // R/W
	regPEK        = 0x36 // R/W
	regVLTFCharge = 0x38 // R/W
	regVHTFCharge = 0x39 // R/W
	regVLTFDisChg = 0x3C // R/W
	regVHTFDisChg = 0x3D // R/W
	regDCDCMode   = 0x80 // R/W
	regADCEnable1 = 0x82 // R/W
	regADCEnable2 = 0x83 // R/W
	regADCRate    = 0x84 // R/W (rate 7:6, TS config 5:0)
	regGPIO0Ctl   = 0x90 // R/W bits 2:0
	regGPIO0LDO   = 0x91 // R/W bits 7:4
	regGPIO1Ctl   = 0x92 // R/W bits 2:0
	regGPIO2Ctl   = 0x93 // R/W bits 2:0
	regGPIO012Lvl = 0x94 // R/W out 2:0, in 6:4
	regGPIO34Ctl  = 0x95 // R/W en 7, GPIO4 3:2, GPIO3 1:0
	regGPIO34Lvl  = 0x96 // R/W out 1:0, in 5:4
	regCoulombChg = 0xB0 // R, 4 bytes big-endian
	regCoulombDis = 0xB4 // R, 4 bytes big-endian
	regCoulombCtl = 0xB8 // R/W

	// ADC results (MSB first)
	regACINVolt   = 0x56
	regACINCurr   = 0x58
	regVBUSVolt   = 0x5A
	regVBUSCurr   = 0x5C
	regInternTemp = 0x5E
	regTSVolt     = 0x62
	regGPIO0Volt  = 0x64
	regGPIO1Volt  = 0x66
	regGPIO2Volt  = 0x68
	regGPIO3Volt  = 0x6A
	regBatPower   = 0x70 // 3 bytes
	regBatVolt    = 0x78
	regBatChgCurr = 0x7A
	regBatDisCurr = 0x7C
	regAPSVolt    = 0x7E
)

// Access describes whether a field may be written.
type Access uint8

const (
	ReadOnly Access = iota + 1
	ReadWrite
)

// Field names a bit range inside one register.
type Field struct {
	Reg    byte
	Name   string
	Offset uint8
	Width  uint8
	Access Access
}

func (f Field) mask() byte {
	if f.Width >= 8 {
		return 0xFF
	}
	return byte((1<<f.Width)-1) << f.Offset
}

// Full reports whether the field spans the whole register byte.
func (f Field) Full() bool { return f.Offset == 0 && f.Width >= 8 }

// Max is the largest value the field can hold.
func (f Field) Max() byte { return f.mask() >> f.Offset }

// Get extracts the field from a register byte.
func (f Field) Get(reg byte) byte { return (reg & f.mask()) >> f.Offset }

// Put returns reg with the field replaced by v. v is masked to the field width.
func (f Field) Put(reg, v byte) byte {
	m := f.mask()
	return (reg &^ m) | ((v << f.Offset) & m)
}

// Register map. One entry per named field; the semantic layer reads and writes
// through these rather than open-coded shifts.
var (
	FieldACINPresent     = Field{regPowerStatus, "acin_present", 7, 1, ReadOnly}
	FieldACINUsable      = Field{regPowerStatus, "acin_usable", 6, 1, ReadOnly}
	FieldVBUSPresent     = Field{regPowerStatus, "vbus_present", 5, 1, ReadOnly}
	FieldVBUSUsable      = Field{regPowerStatus, "vbus_usable", 4, 1, ReadOnly}
	FieldBatCharging     = Field{regPowerStatus, "bat_current_dir", 2, 1, ReadOnly}
	FieldOverTemp        = Field{regChargeStatus, "over_temp", 7, 1, ReadOnly}
	FieldCharging        = Field{regChargeStatus, "charging", 6, 1, ReadOnly}
	FieldBatPresent      = Field{regChargeStatus, "bat_present", 5, 1, ReadOnly}
	FieldEXTENEnable     = Field{regPowerOutput, "exten_en", 6, 1, ReadWrite}
	FieldDCDC2Enable     = Field{regPowerOutput, "dcdc2_en", 4, 1, ReadWrite}
	FieldLDO3Enable      = Field{regPowerOutput, "ldo3_en", 3, 1, ReadWrite}
	FieldLDO2Enable      = Field{regPowerOutput, "ldo2_en", 2, 1, ReadWrite}
	FieldDCDC3Enable     = Field{regPowerOutput, "dcdc3_en", 1, 1, ReadWrite}
	FieldDCDC1Enable     = Field{regPowerOutput, "dcdc1_en", 0, 1, ReadWrite}
	FieldDCDC2Voltage    = Field{regDCDC2Volt, "dcdc2_voltage", 0, 6, ReadWrite}
	FieldDCDC1Voltage    = Field{regDCDC1Volt, "dcdc1_voltage", 0, 7, ReadWrite}
	FieldDCDC3Voltage    = Field{regDCDC3Volt, "dcdc3_voltage", 0, 7, ReadWrite}
	FieldLDO2Voltage     = Field{regLDO23Volt, "ldo2_voltage", 4, 4, ReadWrite}
	FieldLDO3Voltage     = Field{regLDO23Volt, "ldo3_voltage", 0, 4, ReadWrite}
	FieldVBUSPathOff     = Field{regVBUSPath, "vbus_ipsout_off", 7, 1, ReadWrite}
	FieldVHoldEnable     = Field{regVBUSPath, "vhold_en", 6, 1, ReadWrite}
	FieldVHold           = Field{regVBUSPath, "vhold", 3, 3, ReadWrite}
	FieldVBUSLimitEnable = Field{regVBUSPath, "vbus_limit_en", 1, 1, ReadWrite}
	FieldVBUSLimit100    = Field{regVBUSPath, "vbus_limit_100ma", 0, 1, ReadWrite}
	FieldVOFF            = Field{regVOFF, "voff", 0, 3, ReadWrite}
	FieldShutdown        = Field{regShutdownLED, "shutdown", 7, 1, ReadWrite}
	FieldBatDetect       = Field{regShutdownLED, "bat_detect_en", 6, 1, ReadWrite}
	FieldCHGLED          = Field{regShutdownLED, "chgled", 4, 2, ReadWrite}
	FieldCHGLEDManual    = Field{regShutdownLED, "chgled_manual", 3, 1, ReadWrite}
	FieldChargeEnable    = Field{regChargeCtl1, "charge_en", 7, 1, ReadWrite}
	FieldChargeTarget    = Field{regChargeCtl1, "charge_target", 5, 2, ReadWrite}
	FieldChargeEnd       = Field{regChargeCtl1, "charge_end_current", 4, 1, ReadWrite}
	FieldChargeCurrent   = Field{regChargeCtl1, "charge_current", 0, 4, ReadWrite}
	FieldPrechargeTime   = Field{regChargeCtl2, "precharge_timeout", 6, 2, ReadWrite}
	FieldCCTime          = Field{regChargeCtl2, "cc_timeout", 0, 2, ReadWrite}
	FieldBackupEnable    = Field{regBackupChg, "backup_en", 7, 1, ReadWrite}
	FieldBackupVoltage   = Field{regBackupChg, "backup_voltage", 5, 2, ReadWrite}
	FieldBackupCurrent   = Field{regBackupChg, "backup_current", 0, 2, ReadWrite}
	FieldPEKBoot         = Field{regPEK, "pek_boot", 6, 2, ReadWrite}
	FieldPEKLongPress    = Field{regPEK, "pek_long_press", 4, 2, ReadWrite}
	FieldPEKAutoOff      = Field{regPEK, "pek_auto_shutdown", 3, 1, ReadWrite}
	FieldPEKPWROKDelay   = Field{regPEK, "pek_pwrok_delay", 2, 1, ReadWrite}
	FieldPEKShutdown     = Field{regPEK, "pek_shutdown", 0, 2, ReadWrite}
	FieldVLTFCharge      = Field{regVLTFCharge, "vltf_charge", 0, 8, ReadWrite}
	FieldVHTFCharge      = Field{regVHTFCharge, "vhtf_charge", 0, 8, ReadWrite}
	FieldVLTFDischarge   = Field{regVLTFDisChg, "vltf_discharge", 0, 8, ReadWrite}
	FieldVHTFDischarge   = Field{regVHTFDisChg, "vhtf_discharge", 0, 8, ReadWrite}
	FieldDCDC1PWM        = Field{regDCDCMode, "dcdc1_pwm", 3, 1, ReadWrite}
	FieldDCDC2PWM        = Field{regDCDCMode, "dcdc2_pwm", 2, 1, ReadWrite}
	FieldDCDC3PWM        = Field{regDCDCMode, "dcdc3_pwm", 1, 1, ReadWrite}
	FieldADCEnable1      = Field{regADCEnable1, "adc_enable1", 0, 8, ReadWrite}
	FieldADCTempEnable   = Field{regADCEnable2, "adc_temp_en", 7, 1, ReadWrite}
	FieldADCGPIOEnable   = Field{regADCEnable2, "adc_gpio_en", 0, 4, ReadWrite}
	FieldADCRate         = Field{regADCRate, "adc_rate", 6, 2, ReadWrite}
	FieldGPIO0Mode       = Field{regGPIO0Ctl, "gpio0_mode", 0, 3, ReadWrite}
	FieldGPIO0LDO        = Field{regGPIO0LDO, "gpio0_ldo_voltage", 4, 4, ReadWrite}
	FieldGPIO1Mode       = Field{regGPIO1Ctl, "gpio1_mode", 0, 3, ReadWrite}
	FieldGPIO2Mode       = Field{regGPIO2Ctl, "gpio2_mode", 0, 3, ReadWrite}
	FieldGPIO012Out      = Field{regGPIO012Lvl, "gpio012_out", 0, 3, ReadWrite}
	FieldGPIO012In       = Field{regGPIO012Lvl, "gpio012_in", 4, 3, ReadOnly}
	FieldGPIO34Enable    = Field{regGPIO34Ctl, "gpio34_en", 7, 1, ReadWrite}
	FieldGPIO4Mode       = Field{regGPIO34Ctl, "gpio4_mode", 2, 2, ReadWrite}
	FieldGPIO3Mode       = Field{regGPIO34Ctl, "gpio3_mode", 0, 2, ReadWrite}
	FieldGPIO34Out       = Field{regGPIO34Lvl, "gpio34_out", 0, 2, ReadWrite}
	FieldGPIO34In        = Field{regGPIO34Lvl, "gpio34_in", 4, 2, ReadOnly}
	FieldCoulombEnable   = Field{regCoulombCtl, "coulomb_en", 7, 1, ReadWrite}
	FieldCoulombPause    = Field{regCoulombCtl, "coulomb_pause", 6, 1, ReadWrite}
	FieldCoulombClear    = Field{regCoulombCtl, "coulomb_clear", 5, 1, ReadWrite}
)

var fieldTable = [...]Field{
	FieldACINPresent, FieldACINUsable, FieldVBUSPresent, FieldVBUSUsable, FieldBatCharging,
	FieldOverTemp, FieldCharging, FieldBatPresent,
	FieldEXTENEnable, FieldDCDC2Enable, FieldLDO3Enable, FieldLDO2Enable, FieldDCDC3Enable, FieldDCDC1Enable,
	FieldDCDC2Voltage, FieldDCDC1Voltage, FieldDCDC3Voltage, FieldLDO2Voltage, FieldLDO3Voltage,
	FieldVBUSPathOff, FieldVHoldEnable, FieldVHold, FieldVBUSLimitEnable, FieldVBUSLimit100,
	FieldVOFF, FieldShutdown, FieldBatDetect, FieldCHGLED, FieldCHGLEDManual,
	FieldChargeEnable, FieldChargeTarget, FieldChargeEnd, FieldChargeCurrent,
	FieldPrechargeTime, FieldCCTime,
	FieldBackupEnable, FieldBackupVoltage, FieldBackupCurrent,
	FieldPEKBoot, FieldPEKLongPress, FieldPEKAutoOff, FieldPEKPWROKDelay, FieldPEKShutdown,
	FieldVLTFCharge, FieldVHTFCharge, FieldVLTFDischarge, FieldVHTFDischarge,
	FieldDCDC1PWM, FieldDCDC2PWM, FieldDCDC3PWM,
	FieldADCEnable1, FieldADCTempEnable, FieldADCGPIOEnable, FieldADCRate,
	FieldGPIO0Mode, FieldGPIO0LDO, FieldGPIO1Mode, FieldGPIO2Mode, FieldGPIO012Out, FieldGPIO012In,
	FieldGPIO34Enable, FieldGPIO4Mode, FieldGPIO3Mode, FieldGPIO34Out, FieldGPIO34In,
	FieldCoulombEnable, FieldCoulombPause, FieldCoulombClear,
}

// Fields returns the register map in declaration order.
func Fields() []Field { return fieldTable[:] }

// FieldByName looks a field up by its register-map name.
func FieldByName(name string) (Field, bool) {
	for _, f := range fieldTable {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
