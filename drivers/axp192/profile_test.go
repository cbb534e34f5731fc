package axp192

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestApplyProfile_Order(t *testing.T) {
	bus := newFake(nil)
	d := New(bus)

	p := Profile{
		DCDC1_mV: 3300,
		LDO2_mV:  3300,
		Charge:   &ChargeConfig{Enable: true, Target: Target4200mV, Current_mA: 100},
		Outputs:  ptr(RailDCDC1 | RailLDO2),
	}
	if err := d.ApplyProfile(p); err != nil {
		t.Fatal(err)
	}
	expectTxs(t, bus,
		rd(0x26, 1), wr(0x26, 104),
		rd(0x28, 1), wr(0x28, 0xF0),
		wr(0x33, 0xC0),
		wr(0x12, 0x05),
	)
}

func TestApplyProfile_ValidatesFirst(t *testing.T) {
	bad := []Profile{
		{DCDC1_mV: 3300, LDO3_mV: 3400},
		{DCDC2_mV: 2300},
		{VOFF_mV: 2500},
		{DCDC3_mV: 1200, Charge: &ChargeConfig{Current_mA: 2000}},
		{PowerKey: &PEKConfig{Boot: 9}},
		{Backup: &BackupConfig{Voltage: 4}},
		{ADCRate: ptr(ADCRate(5))},
	}
	for i, p := range bad {
		bus := newFake(nil)
		if err := New(bus).ApplyProfile(p); err == nil {
			t.Fatalf("profile %d: expected error", i)
		}
		expectNoTx(t, bus)
	}

	err := Profile{GPIO0_mV: 1000}.Validate()
	var ive *InvalidVoltageError
	if !errors.As(err, &ive) || ive.MilliVolts != 1000 {
		t.Fatalf("Validate = %v", err)
	}
}

func TestApplyProfile_StopsAtBusError(t *testing.T) {
	bus := newFake(nil)
	bus.fail = errors.New("nack")
	err := New(bus).ApplyProfile(Profile{DCDC1_mV: 3300, DCDC3_mV: 3300})
	if !errors.Is(err, ErrBus) {
		t.Fatalf("err = %v", err)
	}
	expectTxs(t, bus, rd(0x26, 1))
}

func TestProfile_JSON(t *testing.T) {
	const doc = `{
		"dcdc1_mv": 3350,
		"ldo2_mv": 3300,
		"outputs": 5,
		"charge": {"enable": true, "target": 2, "end_current": 0, "current_ma": 100},
		"adc_enables": 32960
	}`
	var p Profile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatal(err)
	}
	want := Profile{
		DCDC1_mV:   3350,
		LDO2_mV:    3300,
		Outputs:    ptr(RailDCDC1 | RailLDO2),
		Charge:     &ChargeConfig{Enable: true, Target: Target4200mV, Current_mA: 100},
		ADCEnables: ptr(ADCEnBatVoltage | ADCEnBatCurrent | ADCEnInternTemp),
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
}
