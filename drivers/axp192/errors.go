package axp192

import (
	"errors"

	"axp192-go/x/conv"
)

var (
	// Sentinel errors (TinyGo-safe; no fmt). Typed errors below match these via errors.Is.
	ErrBus              = errors.New("axp192: bus error")
	ErrPayloadTooLarge  = errors.New("axp192: write payload too large")
	ErrInvalidVoltage   = errors.New("axp192: invalid voltage")
	ErrInvalidCurrent   = errors.New("axp192: invalid current")
	ErrInvalidThreshold = errors.New("axp192: invalid threshold")
	ErrFieldRange       = errors.New("axp192: value does not fit field")
	ErrNotSupported     = errors.New("axp192: not supported")
)

// BusError wraps a transport failure with the register it targeted.
type BusError struct {
	Op  string // "read" or "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, "axp192: "...)
	b = append(b, e.Op...)
	b = append(b, " reg "...)
	b = conv.AppendHex8(b, e.Reg)
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

func (e *BusError) Unwrap() error        { return e.Err }
func (e *BusError) Is(target error) bool { return target == ErrBus }

// PayloadTooLargeError reports a write longer than MaxWritePayload.
type PayloadTooLargeError struct{ Len int }

func (e *PayloadTooLargeError) Error() string {
	return withInt(ErrPayloadTooLarge.Error()+": ", int64(e.Len), " bytes")
}
func (e *PayloadTooLargeError) Is(target error) bool { return target == ErrPayloadTooLarge }

// InvalidVoltageError carries the rejected request in millivolts.
type InvalidVoltageError struct{ MilliVolts int32 }

func (e *InvalidVoltageError) Error() string {
	return withInt(ErrInvalidVoltage.Error()+": ", int64(e.MilliVolts), " mV")
}
func (e *InvalidVoltageError) Is(target error) bool { return target == ErrInvalidVoltage }

// InvalidCurrentError carries the rejected request in milliamps.
type InvalidCurrentError struct{ MilliAmps int32 }

func (e *InvalidCurrentError) Error() string {
	return withInt(ErrInvalidCurrent.Error()+": ", int64(e.MilliAmps), " mA")
}
func (e *InvalidCurrentError) Is(target error) bool { return target == ErrInvalidCurrent }

// InvalidThresholdError carries the rejected TS threshold in millivolts.
type InvalidThresholdError struct{ MilliVolts int32 }

func (e *InvalidThresholdError) Error() string {
	return withInt(ErrInvalidThreshold.Error()+": ", int64(e.MilliVolts), " mV")
}
func (e *InvalidThresholdError) Is(target error) bool { return target == ErrInvalidThreshold }

// FieldRangeError is returned by WriteField when v is wider than the field.
type FieldRangeError struct {
	Field string
	Value byte
}

func (e *FieldRangeError) Error() string {
	return withInt(ErrFieldRange.Error()+": "+e.Field+"=", int64(e.Value), "")
}
func (e *FieldRangeError) Is(target error) bool { return target == ErrFieldRange }

func withInt(prefix string, n int64, suffix string) string {
	b := make([]byte, 0, len(prefix)+len(suffix)+20)
	b = append(b, prefix...)
	b = conv.AppendInt(b, n)
	b = append(b, suffix...)
	return string(b)
}
