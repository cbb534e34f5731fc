package errcode

import (
	"errors"
	"testing"

	"axp192-go/drivers/axp192"
	"axp192-go/drvshim"
)

func TestMapDriverErr(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{&axp192.InvalidVoltageError{MilliVolts: 3350}, InvalidParams},
		{&axp192.InvalidCurrentError{MilliAmps: 1321}, InvalidParams},
		{&axp192.InvalidThresholdError{MilliVolts: 3265}, InvalidParams},
		{&axp192.FieldRangeError{Field: "voff", Value: 9}, InvalidParams},
		{&axp192.PayloadTooLargeError{Len: 3}, InvalidPayload},
		{axp192.ErrNotSupported, Unsupported},
		{&axp192.BusError{Op: "read", Reg: 0x26, Err: errors.New("nack")}, BusError},
		{&axp192.BusError{Op: "write", Reg: 0x12, Err: drvshim.ErrTimeout}, Timeout},
		{&axp192.BusError{Op: "read", Reg: 0x00, Err: drvshim.ErrClosed}, HALNotReady},
		{UnknownBus, UnknownBus},
		{errors.New("boom"), Error},
	}
	for _, tc := range cases {
		if got := MapDriverErr(tc.err); got != tc.want {
			t.Fatalf("MapDriverErr(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap("rail set", nil) != nil {
		t.Fatal("Wrap(nil) != nil")
	}
	cause := &axp192.InvalidVoltageError{MilliVolts: 3350}
	err := Wrap("rail set", cause)
	if Of(err) != InvalidParams {
		t.Fatalf("Of = %q", Of(err))
	}
	if !errors.Is(err, axp192.ErrInvalidVoltage) {
		t.Fatal("cause lost")
	}
	if got, want := err.Error(), "rail set: invalid_params: axp192: invalid voltage: 3350 mV"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestExitStatus(t *testing.T) {
	if ExitStatus(OK) != 0 || ExitStatus(InvalidParams) != 2 || ExitStatus(BusError) != 3 || ExitStatus(Error) != 1 {
		t.Fatal("exit status mapping")
	}
}
