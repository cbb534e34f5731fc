package axp192

import (
	"errors"
	"testing"
)

func TestSetPinMode(t *testing.T) {
	cases := []struct {
		pin  Pin
		mode PinMode
		reg  byte
		pre  byte
		want byte
	}{
		{GPIO0, PinLDO, 0x90, 0xF8, 0xFA},
		{GPIO1, PinPWM, 0x92, 0x00, 0x02},
		{GPIO2, PinADC, 0x93, 0x07, 0x04},
		{GPIO3, PinInput, 0x95, 0x00, 0x82},
		{GPIO4, PinOpenDrain, 0x95, 0x03, 0x87},
		{GPIO4, PinChargeControl, 0x95, 0x8F, 0x83},
	}
	for _, tc := range cases {
		bus := newFake(map[byte]byte{tc.reg: tc.pre})
		d := New(bus)
		if err := d.SetPinMode(tc.pin, tc.mode); err != nil {
			t.Fatalf("SetPinMode(%d, %d): %v", tc.pin, tc.mode, err)
		}
		if got := bus.regs[tc.reg]; got != tc.want {
			t.Fatalf("SetPinMode(%d, %d): reg %#x = %#08b, want %#08b", tc.pin, tc.mode, tc.reg, got, tc.want)
		}
		m, err := d.PinMode(tc.pin)
		if err != nil || m != tc.mode {
			t.Fatalf("PinMode(%d) = %d, %v; want %d", tc.pin, m, err, tc.mode)
		}
	}
}

func TestSetPinMode_Unsupported(t *testing.T) {
	bus := newFake(nil)
	d := New(bus)

	bad := []struct {
		pin  Pin
		mode PinMode
	}{
		{GPIO0, PinPWM},
		{GPIO1, PinLDO},
		{GPIO3, PinPWM},
		{GPIO4, PinADC},
		{GPIO0, PinChargeControl},
		{Pin(7), PinInput},
		{GPIO0, PinMode(12)},
	}
	for _, tc := range bad {
		if err := d.SetPinMode(tc.pin, tc.mode); !errors.Is(err, ErrNotSupported) {
			t.Fatalf("SetPinMode(%d, %d) = %v, want ErrNotSupported", tc.pin, tc.mode, err)
		}
	}
	if _, err := d.GPIOVoltage(GPIO4); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("GPIOVoltage(GPIO4) = %v", err)
	}
	expectNoTx(t, bus)
}

func TestPinMode_FloatingAlias(t *testing.T) {
	bus := newFake(map[byte]byte{0x92: 0b111})
	m, err := New(bus).PinMode(GPIO1)
	if err != nil || m != PinFloating {
		t.Fatalf("PinMode = %d, %v", m, err)
	}
}

func TestPinLevels(t *testing.T) {
	bus := newFake(map[byte]byte{0x94: 0b0101_0001, 0x96: 0b0010_0000})
	d := New(bus)

	if err := d.SetPinOutput(GPIO1, true); err != nil {
		t.Fatal(err)
	}
	if bus.regs[0x94] != 0b0101_0011 {
		t.Fatalf("GPIO012 = %#08b", bus.regs[0x94])
	}
	if err := d.SetPinOutput(GPIO4, true); err != nil {
		t.Fatal(err)
	}
	if bus.regs[0x96] != 0b0010_0010 {
		t.Fatalf("GPIO34 = %#08b", bus.regs[0x96])
	}

	levels := map[Pin]bool{GPIO0: true, GPIO1: false, GPIO2: true, GPIO3: false, GPIO4: true}
	for p, want := range levels {
		got, err := d.PinInput(p)
		if err != nil || got != want {
			t.Fatalf("PinInput(%d) = %v, %v; want %v", p, got, err, want)
		}
	}
	if err := d.SetPinOutput(Pin(5), true); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("Pin(5): %v", err)
	}
}
