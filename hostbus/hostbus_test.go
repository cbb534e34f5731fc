package hostbus

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"

	"axp192-go/drivers/axp192"
)

func TestBus_DriverOverPlayback(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: axp192.Address, W: []byte{0x26}, R: []byte{0x80}},
			{Addr: axp192.Address, W: []byte{0x26, 0x80 | 104}},
			{Addr: axp192.Address, W: []byte{0x26}, R: []byte{0x80 | 104}},
		},
		DontPanic: true,
	}
	core, logs := observer.New(zapcore.DebugLevel)
	b := New(pb, zap.New(core))
	dev := axp192.New(b)

	if err := dev.SetRailVoltage(axp192.DCDC1, 3300); err != nil {
		t.Fatal(err)
	}
	mV, err := dev.RailVoltage(axp192.DCDC1)
	if err != nil || mV != 3300 {
		t.Fatalf("RailVoltage = %d, %v", mV, err)
	}
	if err := pb.Close(); err != nil {
		t.Fatalf("playback not consumed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close on wrapped bus: %v", err)
	}

	entries := logs.FilterMessage("i2c tx").All()
	if len(entries) != 3 {
		t.Fatalf("logged %d transactions, want 3", len(entries))
	}
	ctx := entries[1].ContextMap()
	if ctx["reg"] != uint8(0x26) || ctx["w_len"] != int64(2) || ctx["r_len"] != int64(0) {
		t.Fatalf("write entry fields = %v", ctx)
	}
}

// failBus is an i2c.Bus whose transactions always fail.
type failBus struct{ err error }

func (f failBus) String() string                    { return "fail" }
func (f failBus) Tx(addr uint16, w, r []byte) error { return f.err }
func (f failBus) SetSpeed(physic.Frequency) error   { return nil }

var _ i2c.Bus = failBus{}

func TestBus_ErrorLoggedAndReturned(t *testing.T) {
	nack := errors.New("remote I/O error")
	core, logs := observer.New(zapcore.DebugLevel)
	dev := axp192.New(New(failBus{nack}, zap.New(core)))

	_, err := dev.PowerStatus()
	if !errors.Is(err, nack) || !errors.Is(err, axp192.ErrBus) {
		t.Fatalf("err = %v", err)
	}
	entries := logs.FilterField(zap.Error(nack)).All()
	if len(entries) != 1 {
		t.Fatalf("error entries = %d, want 1", len(entries))
	}
}

func TestBus_QuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b := New(failBus{}, zap.New(core))
	if err := b.Tx(axp192.Address, []byte{0x00}, make([]byte, 1)); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 0 {
		t.Fatalf("logged %d entries at info level", logs.Len())
	}
	if New(failBus{}, nil).String() != "fail" {
		t.Fatal("String")
	}
}
