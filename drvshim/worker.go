package drvshim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"tinygo.org/x/drivers"
)

// job states; a job moves out of jobQueued exactly once.
const (
	jobQueued int32 = iota
	jobTaken
	jobAbandoned
)

// request posted to the bus worker. Once taken, the caller waits for done,
// so the worker can use the caller's buffers.
type i2cReq struct {
	addr  uint16
	w, r  []byte
	state atomic.Int32
	done  chan error // buffered(1)
}

// Worker owns one bus and runs its transactions one at a time on a single
// goroutine. Callers on any goroutine submit jobs through Tx.
type Worker struct {
	bus     drivers.I2C
	reqs    chan *i2cReq
	quit    chan struct{}
	stopped chan struct{}
	started atomic.Bool
	once    sync.Once
}

// Compile-time check.
var _ Owner = (*Worker)(nil)

// NewWorker creates a worker for bus with room for queue pending jobs.
// Nothing runs until Start.
func NewWorker(bus drivers.I2C, queue int) *Worker {
	if queue <= 0 {
		queue = 16
	}
	return &Worker{
		bus:     bus,
		reqs:    make(chan *i2cReq, queue),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start launches the worker goroutine. It stops when ctx is done or Close is
// called; queued and later jobs then fail with ErrClosed. Only the first call
// has an effect.
func (o *Worker) Start(ctx context.Context) {
	if o.started.CompareAndSwap(false, true) {
		go o.loop(ctx)
	}
}

// Close stops the worker and, if it was started, waits until the job on the
// bus (if any) has finished. After Close returns the worker no longer touches
// the bus. Safe to call more than once.
func (o *Worker) Close() {
	o.stop()
	if o.started.Load() {
		<-o.stopped
	}
}

func (o *Worker) stop() {
	o.once.Do(func() { close(o.quit) })
}

func (o *Worker) loop(ctx context.Context) {
	defer close(o.stopped)
	defer o.stop()
	for {
		select {
		case req := <-o.reqs:
			if !req.state.CompareAndSwap(jobQueued, jobTaken) {
				continue // caller gave up before we got here
			}
			req.done <- o.bus.Tx(req.addr, req.w, req.r)
		case <-o.quit:
			o.drain()
			return
		case <-ctx.Done():
			o.drain()
			return
		}
	}
}

func (o *Worker) drain() {
	for {
		select {
		case req := <-o.reqs:
			if req.state.CompareAndSwap(jobQueued, jobAbandoned) {
				req.done <- ErrClosed
			}
		default:
			return
		}
	}
}

// Tx queues the job and waits for it. timeoutMS bounds only the wait for the
// worker to take the job: ErrTimeout and ErrClosed mean the transaction never
// reached the bus. Once taken, Tx waits for the bus result however long it
// takes.
func (o *Worker) Tx(addr uint16, w, r []byte, timeoutMS int) error {
	select {
	case <-o.quit:
		return ErrClosed
	default:
	}

	req := &i2cReq{addr: addr, w: w, r: r, done: make(chan error, 1)}

	var deadline <-chan time.Time
	if timeoutMS > 0 {
		t := time.NewTimer(time.Duration(timeoutMS) * time.Millisecond)
		defer t.Stop()
		deadline = t.C
	}

	select {
	case o.reqs <- req:
	case <-o.quit:
		return ErrClosed
	case <-deadline:
		return ErrTimeout
	}

	select {
	case err := <-req.done:
		return err
	case <-o.quit:
		return o.giveUp(req, ErrClosed)
	case <-deadline:
		return o.giveUp(req, ErrTimeout)
	}
}

// giveUp abandons a queued job. If the worker already took it, the bus
// result is returned instead.
func (o *Worker) giveUp(req *i2cReq, err error) error {
	if req.state.CompareAndSwap(jobQueued, jobAbandoned) {
		return err
	}
	return <-req.done
}
