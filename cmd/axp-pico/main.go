//go:build rp2040 || rp2350

// Firmware for a Pico wired to an AXP192 on i2c0: applies the board power
// profile once, then prints a status heartbeat every second.
package main

import (
	"context"
	"machine"
	"time"

	"axp192-go/drivers/axp192"
	"axp192-go/drvshim"
	"axp192-go/x/conv"
)

func ptr[T any](v T) *T { return &v }

// Board power plan: 3.3 V logic on DCDC1, 1.8 V peripherals on LDO2/LDO3.
var boardProfile = axp192.Profile{
	DCDC1_mV: 3300,
	LDO2_mV:  1800,
	LDO3_mV:  1800,
	VOFF_mV:  3000,
	Charge: &axp192.ChargeConfig{
		Enable:     true,
		Target:     axp192.Target4200mV,
		EndCurrent: axp192.EndCurrent10,
		Current_mA: 280,
	},
	ADCEnables: ptr(axp192.ADCEnBatVoltage | axp192.ADCEnBatCurrent | axp192.ADCEnVBUSVoltage | axp192.ADCEnInternTemp),
	Outputs:    ptr(axp192.RailDCDC1 | axp192.RailLDO2 | axp192.RailLDO3),
}

// tiny helpers (no fmt)
func printKV(buf []byte, key string, v int64, unit string) []byte {
	buf = append(buf[:0], key...)
	buf = append(buf, '=')
	buf = conv.AppendInt(buf, v)
	buf = append(buf, unit...)
	print(string(buf), " ")
	return buf
}

func fail(op string, err error) {
	println("[axp]", op, "failed:", err.Error())
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	hw := machine.I2C0
	_ = hw.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})

	// One worker owns i2c0 so other drivers can share it later.
	w := drvshim.NewWorker(hw, 8)
	w.Start(context.Background())
	dev := axp192.New(drvshim.NewI2CFromWorker(w).WithTimeout(50))

	if err := dev.ApplyProfile(boardProfile); err != nil {
		fail("profile", err)
	} else {
		println("[axp] profile applied")
	}

	// Periodic stats.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	var buf [48]byte
	for range tick.C {
		mV, err := dev.BatteryVoltage()
		if err != nil {
			fail("battery voltage", err)
			continue
		}
		dc, err := dev.InternalDeciCelsius()
		if err != nil {
			fail("temperature", err)
			continue
		}
		cs, err := dev.ChargeStatus()
		if err != nil {
			fail("charge status", err)
			continue
		}
		b := printKV(buf[:], "bat", int64(mV), "mV")
		b = printKV(b, "die", int64(dc), "dC")
		charging := int64(0)
		if cs.Has(axp192.ChargeInProgress) {
			charging = 1
		}
		printKV(b, "charging", charging, "")
		println()
	}
}
