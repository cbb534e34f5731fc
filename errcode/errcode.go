package errcode

import (
	"errors"

	"axp192-go/drivers/axp192"
	"axp192-go/drvshim"
)

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK             Code = "ok"
	Busy           Code = "busy"
	Unsupported    Code = "unsupported"
	InvalidParams  Code = "invalid_params"
	InvalidPayload Code = "invalid_payload"
	HALNotReady    Code = "hal_not_ready"

	UnknownBus   Code = "unknown_bus"
	UnknownField Code = "unknown_field"
	BusError     Code = "bus_error"
	Timeout      Code = "timeout"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	} else if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap attaches op and the mapped code to a driver error. nil stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: MapDriverErr(err), Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps axp192 and drvshim errors to a Code.
func MapDriverErr(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, drvshim.ErrTimeout):
		return Timeout
	case errors.Is(err, drvshim.ErrClosed):
		return HALNotReady
	case errors.Is(err, axp192.ErrInvalidVoltage),
		errors.Is(err, axp192.ErrInvalidCurrent),
		errors.Is(err, axp192.ErrInvalidThreshold),
		errors.Is(err, axp192.ErrFieldRange):
		return InvalidParams
	case errors.Is(err, axp192.ErrPayloadTooLarge):
		return InvalidPayload
	case errors.Is(err, axp192.ErrNotSupported):
		return Unsupported
	case errors.Is(err, axp192.ErrBus):
		return BusError
	}
	return Of(err)
}

// ExitStatus is the process exit status axpctl uses for c.
func ExitStatus(c Code) int {
	switch c {
	case OK:
		return 0
	case InvalidParams, InvalidPayload, Unsupported, UnknownField:
		return 2
	case BusError, Timeout, Busy, UnknownBus, HALNotReady:
		return 3
	default:
		return 1
	}
}
