package drvshim

import (
	"errors"

	"tinygo.org/x/drivers"
)

var (
	ErrTimeout = errors.New("timeout")
	ErrClosed  = errors.New("drvshim: bus worker stopped")
)

// Owner exposes a single atomic transaction on a shared bus.
// timeoutMS bounds the wait for the bus to become free; 0 => wait
// indefinitely. A transaction that has started is always waited for.
type Owner interface {
	Tx(addr uint16, w, r []byte, timeoutMS int) error
}

// I2C adapts either a raw drivers.I2C (blocking, caller's goroutine) or an
// Owner (job handed to the bus worker) to the tinygo driver Tx shape.
type I2C struct {
	o         Owner       // optional
	raw       drivers.I2C // optional
	timeoutMS int
}

// Compile-time check.
var _ drivers.I2C = I2C{}

// NewI2C wraps bus directly. Tx blocks the caller for the duration of the
// transfer and there is no timeout.
func NewI2C(bus drivers.I2C) I2C {
	return I2C{raw: bus}
}

// NewI2CFromWorker submits every Tx to w and parks the caller until the job
// completes. There is no timeout unless WithTimeout sets one.
func NewI2CFromWorker(w Owner) I2C {
	return I2C{o: w}
}

// WithTimeout bounds how long a worker-backed Tx waits for its turn on the
// bus. A job that times out never reaches the bus. It has no effect on a raw
// bus.
func (s I2C) WithTimeout(ms int) I2C {
	if ms > 0 {
		s.timeoutMS = ms
	}
	return s
}

// Tx delegates to the available backend.
func (s I2C) Tx(addr uint16, w, r []byte) error {
	if s.raw != nil {
		return s.raw.Tx(addr, w, r)
	}
	if s.o == nil {
		return ErrClosed
	}
	return s.o.Tx(addr, w, r, s.timeoutMS)
}
