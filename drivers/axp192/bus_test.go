package axp192

import (
	"errors"
	"testing"
)

func TestReadRegisters_SingleTransaction(t *testing.T) {
	bus := newFake(map[byte]byte{0x78: 0xAB, 0x79: 0x0C, 0x7A: 0x55})
	d := New(bus)

	buf := make([]byte, 3)
	if err := d.ReadRegisters(0x78, buf); err != nil {
		t.Fatalf("ReadRegisters: %v", err)
	}
	if buf[0] != 0xAB || buf[1] != 0x0C || buf[2] != 0x55 {
		t.Fatalf("buf = % X", buf)
	}
	expectTxs(t, bus, rd(0x78, 3))
}

func TestReadRegisters_EmptyIsNoop(t *testing.T) {
	bus := newFake(nil)
	if err := New(bus).ReadRegisters(0x00, nil); err != nil {
		t.Fatalf("ReadRegisters(nil): %v", err)
	}
	expectNoTx(t, bus)
}

func TestWriteRegisters_Framing(t *testing.T) {
	bus := newFake(nil)
	d := New(bus)

	if err := d.WriteRegisters(0x26, []byte{0x68}); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteRegisters(0xB0, []byte{0x01, 0x02}); err != nil {
		t.Fatal(err)
	}
	expectTxs(t, bus, wr(0x26, 0x68), wr(0xB0, 0x01, 0x02))
}

func TestWriteRegisters_PayloadTooLarge(t *testing.T) {
	bus := newFake(nil)
	err := New(bus).WriteRegisters(0x12, []byte{1, 2, 3})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
	var pe *PayloadTooLargeError
	if !errors.As(err, &pe) || pe.Len != 3 {
		t.Fatalf("err = %#v, want Len 3", err)
	}
	expectNoTx(t, bus)
}

func TestBusError_Wrapping(t *testing.T) {
	nack := errors.New("nack")
	bus := newFake(nil)
	bus.fail = nack
	d := New(bus)

	_, err := d.RailVoltage(DCDC1)
	if !errors.Is(err, ErrBus) || !errors.Is(err, nack) {
		t.Fatalf("err = %v, want ErrBus wrapping nack", err)
	}
	var be *BusError
	if !errors.As(err, &be) || be.Op != "read" || be.Reg != 0x26 {
		t.Fatalf("err = %#v", err)
	}
	if got, want := err.Error(), "axp192: read reg 0x26: nack"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	err = d.SetRailOutputs(RailDCDC1)
	if !errors.As(err, &be) || be.Op != "write" || be.Reg != 0x12 {
		t.Fatalf("write err = %#v", err)
	}
}

// A failed read aborts the read-modify-write before anything is written.
func TestModify_ReadFailureSkipsWrite(t *testing.T) {
	bus := newFake(nil)
	bus.fail = errors.New("arbitration lost")
	d := New(bus)

	if err := d.EnableRail(LDO2, true); !errors.Is(err, ErrBus) {
		t.Fatalf("err = %v", err)
	}
	expectTxs(t, bus, rd(0x12, 1))
}

func TestModify_PreservesOtherBits(t *testing.T) {
	bus := newFake(map[byte]byte{0x12: 0b1010_0000})
	d := New(bus)

	if err := d.EnableRail(DCDC1, true); err != nil {
		t.Fatal(err)
	}
	expectTxs(t, bus, rd(0x12, 1), wr(0x12, 0b1010_0001))

	bus.reset()
	if err := d.EnableRail(DCDC1, false); err != nil {
		t.Fatal(err)
	}
	expectTxs(t, bus, rd(0x12, 1), wr(0x12, 0b1010_0000))
}
