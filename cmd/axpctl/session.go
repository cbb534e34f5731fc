package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"axp192-go/drivers/axp192"
	"axp192-go/drvshim"
	"axp192-go/errcode"
	"axp192-go/hostbus"
	"axp192-go/x/mathx"
)

const maxTimeoutMS = 5000

// opener yields the raw bus and its release function.
type opener func(c *cli.Context, log *zap.Logger) (drivers.I2C, func() error, error)

type axpctl struct {
	log  *zap.Logger
	open opener // nil: hostbus

	dev     *axp192.Device
	closers []func() error
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

func (a *axpctl) before(c *cli.Context) error {
	l, err := newLogger(c.Bool(flagDebug))
	if err != nil {
		return err
	}
	a.log = l.Named("axpctl")
	return nil
}

func (a *axpctl) after(c *cli.Context) error {
	var err error
	// Release in reverse order of acquisition.
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	a.dev = nil
	return err
}

func openHost(c *cli.Context, log *zap.Logger) (drivers.I2C, func() error, error) {
	speed := physic.Frequency(c.Int(flagSpeedKHz)) * physic.KiloHertz
	b, err := hostbus.Open(c.String(flagBus), speed, log)
	if err != nil {
		return nil, nil, &errcode.E{C: errcode.UnknownBus, Op: "open bus", Err: err}
	}
	return b, b.Close, nil
}

// device opens the bus on first use so that commands which never touch the
// chip work without hardware.
func (a *axpctl) device(c *cli.Context) (*axp192.Device, error) {
	if a.dev != nil {
		return a.dev, nil
	}
	open := a.open
	if open == nil {
		open = openHost
	}
	raw, closeBus, err := open(c, a.log)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeBus)

	bus := drvshim.NewI2C(raw)
	if c.Bool(flagWorker) {
		w := drvshim.NewWorker(raw, 8)
		ctx, cancel := context.WithCancel(c.Context)
		w.Start(ctx)
		a.closers = append(a.closers, func() error {
			w.Close() // waits for the job on the bus, if any
			cancel()
			return nil
		})
		ms := mathx.Clamp(c.Int(flagTimeoutMS), 0, maxTimeoutMS)
		bus = drvshim.NewI2CFromWorker(w).WithTimeout(ms)
		a.log.Debug("bus worker started", zap.Duration("queue_timeout", time.Duration(ms)*time.Millisecond))
	}
	a.dev = axp192.New(bus)
	return a.dev, nil
}
