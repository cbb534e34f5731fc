package axp192

import "axp192-go/x/mathx"

// ---------------- Linear voltage quantisation ----------------

// linearRange maps millivolts onto a width-bit setting:
//
//	setting = floor((mV - Min)/Step)
//	mV      = Min + setting*Step
type linearRange struct {
	Min, Max, Step int32
	Width          uint8
}

var (
	rangeDCDC13 = linearRange{Min: 700, Max: 3500, Step: 25, Width: 7}
	rangeDCDC2  = linearRange{Min: 700, Max: 2275, Step: 25, Width: 6}
	rangeLDO    = linearRange{Min: 1800, Max: 3300, Step: 100, Width: 4} // LDO2, LDO3, GPIO0 LDO
	rangeVHold  = linearRange{Min: 4000, Max: 4700, Step: 100, Width: 3}
	rangeVOFF   = linearRange{Min: 2600, Max: 3300, Step: 100, Width: 3}
)

func (r linearRange) encode(mV int32) (byte, error) {
	if !mathx.Between(mV, r.Min, r.Max) {
		return 0, &InvalidVoltageError{MilliVolts: mV}
	}
	setting := mathx.FloorDiv(mV-r.Min, r.Step)
	return byte(setting) & byte((1<<r.Width)-1), nil
}

func (r linearRange) decode(setting byte) int32 {
	return r.Min + int32(setting)*r.Step
}

// ---------------- TS pin temperature thresholds ----------------

// 12.8 mV per code over an 8-bit field.
const tempThresholdMax_mV = 3264

// encodeTempThreshold returns round(mV/12.8) using (mV*10 + 64)/128.
func encodeTempThreshold(mV int32) (byte, error) {
	if !mathx.Between(mV, 0, tempThresholdMax_mV) {
		return 0, &InvalidThresholdError{MilliVolts: mV}
	}
	return byte(mathx.RoundDiv(mV*10, 128)), nil
}

func decodeTempThreshold(code byte) int32 {
	return int32(code) * 128 / 10
}

// ---------------- Charge current ----------------

// chargeCurrentBins holds the inclusive upper bound of each 4-bit setting.
// The steps are not uniform; index == register code.
var chargeCurrentBins = [16]int32{
	100, 190, 280, 360, 450, 550, 630, 700,
	780, 880, 960, 1000, 1080, 1160, 1240, 1320,
}

func encodeChargeCurrent(mA int32) (byte, error) {
	if mA < 0 {
		return 0, &InvalidCurrentError{MilliAmps: mA}
	}
	for code, hi := range chargeCurrentBins {
		if mA <= hi {
			return byte(code), nil
		}
	}
	return 0, &InvalidCurrentError{MilliAmps: mA}
}

func decodeChargeCurrent(code byte) int32 {
	return chargeCurrentBins[code&0x0F]
}

// ---------------- Split-register ADC values ----------------

// adcCode reassembles a value spread over consecutive registers, MSB first.
//
//	12-bit: raw[0]<<4 | raw[1][3:0]
//	13-bit: raw[0]<<5 | raw[1][4:0]
//	24-bit: raw[0]<<16 | raw[1]<<8 | raw[2]
func adcCode(raw []byte, bits uint8) uint32 {
	switch bits {
	case 12:
		return uint32(raw[0])<<4 | uint32(raw[1]&0x0F)
	case 13:
		return uint32(raw[0])<<5 | uint32(raw[1]&0x1F)
	case 24:
		return uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])
	default:
		return 0
	}
}

// adcBytes is the number of registers a bits-wide result occupies.
func adcBytes(bits uint8) int {
	if bits > 16 {
		return 3
	}
	return 2
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
