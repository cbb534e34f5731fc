package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"axp192-go/drivers/axp192"
	"axp192-go/errcode"
	"axp192-go/hostbus"
)

func usageErr(op, msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: op, Msg: msg}
}

func parseRail(s string) (axp192.Rail, error) {
	for r := axp192.DCDC1; r <= axp192.EXTEN; r++ {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, usageErr("rail", "unknown rail "+strconv.Quote(s))
}

func parseInt32(op, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, usageErr(op, "not a number: "+strconv.Quote(s))
	}
	return int32(v), nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// ---------------- buses ----------------

func (a *axpctl) buses(c *cli.Context) error {
	if err := hostbus.Init(); err != nil {
		return errcode.Wrap("buses", err)
	}
	for _, n := range hostbus.Names() {
		fmt.Fprintln(c.App.Writer, n)
	}
	return nil
}

// ---------------- status ----------------

func (a *axpctl) status(c *cli.Context) error {
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	ps, err := dev.PowerStatus()
	if err != nil {
		return errcode.Wrap("status", err)
	}
	cs, err := dev.ChargeStatus()
	if err != nil {
		return errcode.Wrap("status", err)
	}
	w := c.App.Writer
	fmt.Fprintf(w, "acin:     present=%v usable=%v\n", ps.Has(axp192.StatusACINPresent), ps.Has(axp192.StatusACINUsable))
	fmt.Fprintf(w, "vbus:     present=%v usable=%v\n", ps.Has(axp192.StatusVBUSPresent), ps.Has(axp192.StatusVBUSUsable))
	fmt.Fprintf(w, "battery:  present=%v charging=%v over_temp=%v\n",
		cs.Has(axp192.ChargeBatPresent), cs.Has(axp192.ChargeInProgress), cs.Has(axp192.ChargeOverTemp))

	outputs, err := dev.RailOutputs()
	if err != nil {
		return errcode.Wrap("status", err)
	}
	for r := axp192.DCDC1; r <= axp192.EXTEN; r++ {
		on := outputs.Has(railBit(r))
		if r == axp192.EXTEN {
			fmt.Fprintf(w, "%-8s  %s\n", r, onOff(on))
			continue
		}
		mV, err := dev.RailVoltage(r)
		if err != nil {
			return errcode.Wrap("status", err)
		}
		fmt.Fprintf(w, "%-8s  %-3s %5d mV\n", r, onOff(on), mV)
	}

	dc, err := dev.InternalDeciCelsius()
	if err != nil {
		return errcode.Wrap("status", err)
	}
	fmt.Fprintf(w, "die temp: %.1f °C\n", float32(dc)/10)
	return nil
}

func railBit(r axp192.Rail) axp192.RailMask {
	switch r {
	case axp192.DCDC1:
		return axp192.RailDCDC1
	case axp192.DCDC2:
		return axp192.RailDCDC2
	case axp192.DCDC3:
		return axp192.RailDCDC3
	case axp192.LDO2:
		return axp192.RailLDO2
	case axp192.LDO3:
		return axp192.RailLDO3
	case axp192.EXTEN:
		return axp192.RailEXTEN
	}
	return 0
}

// ---------------- adc ----------------

var adcChannels = []struct {
	name string
	ch   axp192.ADCChannel
	unit string
}{
	{"battery_voltage", axp192.ADCBatteryVoltage, "mV"},
	{"battery_charge_current", axp192.ADCBatteryChargeCurrent, "mA"},
	{"battery_discharge_current", axp192.ADCBatteryDischargeCurrent, "mA"},
	{"battery_power", axp192.ADCBatteryPower, "uW"},
	{"acin_voltage", axp192.ADCACINVoltage, "mV"},
	{"acin_current", axp192.ADCACINCurrent, "mA"},
	{"vbus_voltage", axp192.ADCVBUSVoltage, "mV"},
	{"vbus_current", axp192.ADCVBUSCurrent, "mA"},
	{"internal_temp", axp192.ADCInternalTemp, "C"},
	{"aps_voltage", axp192.ADCAPSVoltage, "mV"},
	{"ts_voltage", axp192.ADCTSVoltage, "mV"},
	{"gpio0_voltage", axp192.ADCGPIO0Voltage, "mV"},
	{"gpio1_voltage", axp192.ADCGPIO1Voltage, "mV"},
	{"gpio2_voltage", axp192.ADCGPIO2Voltage, "mV"},
	{"gpio3_voltage", axp192.ADCGPIO3Voltage, "mV"},
}

func (a *axpctl) adc(c *cli.Context) error {
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	if c.Bool("enable-all") {
		var all axp192.ADCEnable
		for _, e := range adcChannels {
			all |= e.ch.EnableBit()
		}
		if err := dev.SetADCEnables(all); err != nil {
			return errcode.Wrap("adc enable", err)
		}
	}
	enabled, err := dev.ADCEnables()
	if err != nil {
		return errcode.Wrap("adc", err)
	}
	for _, e := range adcChannels {
		if enabled&e.ch.EnableBit() != e.ch.EnableBit() {
			fmt.Fprintf(c.App.Writer, "%-26s disabled\n", e.name)
			continue
		}
		v, err := dev.ADC(e.ch)
		if err != nil {
			return errcode.Wrap("adc "+e.name, err)
		}
		fmt.Fprintf(c.App.Writer, "%-26s %10.1f %s\n", e.name, v, e.unit)
	}
	return nil
}

// ---------------- rail ----------------

func (a *axpctl) railGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageErr("rail get", "expected RAIL")
	}
	r, err := parseRail(c.Args().Get(0))
	if err != nil {
		return err
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	on, err := dev.RailEnabled(r)
	if err != nil {
		return errcode.Wrap("rail get", err)
	}
	if r == axp192.EXTEN {
		fmt.Fprintf(c.App.Writer, "%s %s\n", r, onOff(on))
		return nil
	}
	mV, err := dev.RailVoltage(r)
	if err != nil {
		return errcode.Wrap("rail get", err)
	}
	fmt.Fprintf(c.App.Writer, "%s %s %d mV\n", r, onOff(on), mV)
	return nil
}

func (a *axpctl) railSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return usageErr("rail set", "expected RAIL MILLIVOLTS")
	}
	r, err := parseRail(c.Args().Get(0))
	if err != nil {
		return err
	}
	mV, err := parseInt32("rail set", c.Args().Get(1))
	if err != nil {
		return err
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	if err := dev.SetRailVoltage(r, mV); err != nil {
		return errcode.Wrap("rail set", err)
	}
	a.log.Info("rail voltage set", zap.Stringer("rail", r), zap.Int32("mv", mV))
	return nil
}

func (a *axpctl) railSwitch(on bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return usageErr("rail "+onOff(on), "expected RAIL")
		}
		r, err := parseRail(c.Args().Get(0))
		if err != nil {
			return err
		}
		dev, err := a.device(c)
		if err != nil {
			return err
		}
		if err := dev.EnableRail(r, on); err != nil {
			return errcode.Wrap("rail "+onOff(on), err)
		}
		a.log.Info("rail switched", zap.Stringer("rail", r), zap.Bool("on", on))
		return nil
	}
}

// ---------------- charge ----------------

func (a *axpctl) chargeShow(c *cli.Context) error {
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	cfg, err := dev.ReadChargeConfig()
	if err != nil {
		return errcode.Wrap("charge show", err)
	}
	end := 10
	if cfg.EndCurrent == axp192.EndCurrent15 {
		end = 15
	}
	fmt.Fprintf(c.App.Writer, "enabled=%v target=%d mV end=%d%% current=%d mA\n",
		cfg.Enable, cfg.Target.MilliVolts(), end, cfg.Current_mA)
	return nil
}

func (a *axpctl) chargeSet(c *cli.Context) error {
	cfg := axp192.ChargeConfig{Enable: c.Bool("enable"), Current_mA: int32(c.Int("current-ma"))}
	switch c.Int("target-mv") {
	case 4100:
		cfg.Target = axp192.Target4100mV
	case 4150:
		cfg.Target = axp192.Target4150mV
	case 4200:
		cfg.Target = axp192.Target4200mV
	case 4360:
		cfg.Target = axp192.Target4360mV
	default:
		return usageErr("charge set", "target-mv must be 4100, 4150, 4200 or 4360")
	}
	switch c.Int("end-percent") {
	case 10:
		cfg.EndCurrent = axp192.EndCurrent10
	case 15:
		cfg.EndCurrent = axp192.EndCurrent15
	default:
		return usageErr("charge set", "end-percent must be 10 or 15")
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	if err := dev.ConfigureCharging(cfg); err != nil {
		return errcode.Wrap("charge set", err)
	}
	a.log.Info("charger configured", zap.Bool("enable", cfg.Enable), zap.Int32("current_ma", cfg.Current_mA))
	return nil
}

// ---------------- pek / coulomb ----------------

func (a *axpctl) pekShow(c *cli.Context) error {
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	p, err := dev.ReadPowerKeyConfig()
	if err != nil {
		return errcode.Wrap("pek", err)
	}
	fmt.Fprintf(c.App.Writer, "boot=%d ms long_press=%d ms shutdown=%d ms auto_shutdown=%v pwrok_delay_64ms=%v\n",
		p.Boot.Milliseconds(), p.LongPress.Milliseconds(), p.Shutdown.Milliseconds(), p.AutoShutdown, p.PWROKDelay64ms)
	return nil
}

func (a *axpctl) coulomb(c *cli.Context) error {
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	chg, dis, err := dev.CoulombCounter()
	if err != nil {
		return errcode.Wrap("coulomb", err)
	}
	mAh, err := dev.CoulombMilliAmpHours()
	if err != nil {
		return errcode.Wrap("coulomb", err)
	}
	fmt.Fprintf(c.App.Writer, "charge=%d discharge=%d net=%.2f mAh\n", chg, dis, mAh)
	return nil
}

// ---------------- profile ----------------

func loadProfile(path string) (axp192.Profile, error) {
	var p axp192.Profile
	f, err := os.Open(path)
	if err != nil {
		return p, &errcode.E{C: errcode.InvalidParams, Op: "profile", Err: err}
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, &errcode.E{C: errcode.InvalidPayload, Op: "profile", Err: err}
	}
	return p, nil
}

func (a *axpctl) profileApply(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageErr("profile apply", "expected FILE")
	}
	p, err := loadProfile(c.Args().Get(0))
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return errcode.Wrap("profile", err)
	}
	if c.Bool("dry-run") {
		fmt.Fprintln(c.App.Writer, "profile ok")
		return nil
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	if err := dev.ApplyProfile(p); err != nil {
		return errcode.Wrap("profile apply", err)
	}
	a.log.Info("profile applied", zap.String("file", c.Args().Get(0)))
	return nil
}

// ---------------- field ----------------

func (a *axpctl) fieldList(c *cli.Context) error {
	for _, f := range axp192.Fields() {
		access := "rw"
		if f.Access == axp192.ReadOnly {
			access = "ro"
		}
		hi := f.Offset + f.Width - 1
		fmt.Fprintf(c.App.Writer, "%-20s 0x%02X [%d:%d] %s\n", f.Name, f.Reg, hi, f.Offset, access)
	}
	return nil
}

func lookupField(op, name string) (axp192.Field, error) {
	f, ok := axp192.FieldByName(name)
	if !ok {
		return f, &errcode.E{C: errcode.UnknownField, Op: op, Msg: strconv.Quote(name)}
	}
	return f, nil
}

func (a *axpctl) fieldRead(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageErr("field read", "expected NAME")
	}
	f, err := lookupField("field read", c.Args().Get(0))
	if err != nil {
		return err
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	v, err := dev.ReadField(f)
	if err != nil {
		return errcode.Wrap("field read", err)
	}
	fmt.Fprintf(c.App.Writer, "%s = %d (0x%02X)\n", f.Name, v, v)
	return nil
}

func (a *axpctl) fieldWrite(c *cli.Context) error {
	if c.NArg() != 2 {
		return usageErr("field write", "expected NAME VALUE")
	}
	f, err := lookupField("field write", c.Args().Get(0))
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(c.Args().Get(1), 0, 8)
	if err != nil {
		return usageErr("field write", "value must be 0..255")
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	if err := dev.WriteField(f, byte(v)); err != nil {
		return errcode.Wrap("field write", err)
	}
	a.log.Info("field written", zap.String("field", f.Name), zap.Uint64("value", v))
	return nil
}

// ---------------- poweroff ----------------

func (a *axpctl) powerOff(c *cli.Context) error {
	if !c.Bool("yes") {
		return usageErr("poweroff", "refusing without --yes")
	}
	dev, err := a.device(c)
	if err != nil {
		return err
	}
	a.log.Warn("powering off")
	return errcode.Wrap("poweroff", dev.PowerOff())
}
