// Package hostbus opens a Linux I²C bus through periph.io and presents it as
// a drivers.I2C for the axp192 driver, logging every transaction at debug
// level.
package hostbus

import (
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"
)

// DefaultSpeed is the AXP192's standard-mode ceiling.
const DefaultSpeed = 400 * physic.KiloHertz

// Bus is a periph I²C bus with transaction logging.
type Bus struct {
	bus    i2c.Bus
	closer func() error
	log    *zap.Logger
}

// Compile-time check.
var _ drivers.I2C = (*Bus)(nil)

// Open initialises the periph host drivers and opens the named bus ("" picks
// the first one). A zero speed keeps the kernel default.
func Open(name string, speed physic.Frequency, logger *zap.Logger) (*Bus, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := Init(); err != nil {
		return nil, err
	}
	bc, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	if speed > 0 {
		if err := bc.SetSpeed(speed); err != nil {
			// Some adapters have a fixed clock.
			logger.Warn("set bus speed", zap.String("bus", bc.String()), zap.Stringer("speed", speed), zap.Error(err))
		}
	}
	b := New(bc, logger)
	b.closer = bc.Close
	b.log.Debug("bus opened", zap.String("bus", bc.String()))
	return b, nil
}

// New wraps an already open periph bus. Close does not close it.
func New(bus i2c.Bus, logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{bus: bus, log: logger}
}

// Tx runs one periph transaction.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	err := b.bus.Tx(addr, w, r)
	if ce := b.log.Check(zap.DebugLevel, "i2c tx"); ce != nil {
		fields := []zap.Field{
			zap.Uint16("addr", addr),
			zap.Int("w_len", len(w)),
			zap.Int("r_len", len(r)),
		}
		if len(w) > 0 {
			fields = append(fields, zap.Uint8("reg", w[0]))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		} else if len(r) > 0 {
			fields = append(fields, zap.Binary("r", r))
		}
		ce.Write(fields...)
	}
	return err
}

func (b *Bus) String() string { return b.bus.String() }

// Close releases a bus obtained from Open.
func (b *Bus) Close() error {
	if b.closer == nil {
		return nil
	}
	closer := b.closer
	b.closer = nil
	return closer()
}

// Names lists the registered I²C buses. Call Init first.
func Names() []string {
	var out []string
	for _, ref := range i2creg.All() {
		out = append(out, ref.Name)
	}
	return out
}

// Init loads the periph host drivers. Safe to call more than once.
func Init() error {
	_, err := host.Init()
	return err
}
