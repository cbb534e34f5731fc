package drvshim_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"axp192-go/drivers/axp192"
	"axp192-go/drvshim"
	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*chip)(nil)

// chip is a minimal AXP192 register file that fails the test on overlap.
type chip struct {
	mu      sync.Mutex
	busy    atomic.Bool
	overlap atomic.Bool
	regs    [256]byte
	entered atomic.Int32
	gate    chan struct{} // when non-nil, Tx waits for it
}

func (c *chip) Tx(addr uint16, w, r []byte) error {
	if !c.busy.CompareAndSwap(false, true) {
		c.overlap.Store(true)
	}
	defer c.busy.Store(false)
	c.entered.Add(1)
	if c.gate != nil {
		<-c.gate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	reg := w[0]
	for i, b := range w[1:] {
		c.regs[reg+byte(i)] = b
	}
	for i := range r {
		r[i] = c.regs[reg+byte(i)]
	}
	return nil
}

func TestSharedWorker_ConcurrentDevices(t *testing.T) {
	hw := &chip{}
	hw.regs[0x26] = 104 // DCDC1 3300 mV
	hw.regs[0x28] = 0xF0

	w := drvshim.NewWorker(hw, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dev := axp192.New(drvshim.NewI2CFromWorker(w).WithTimeout(1000))
			for i := 0; i < 25; i++ {
				mV, err := dev.RailVoltage(axp192.DCDC1)
				if err != nil || mV != 3300 {
					t.Errorf("DCDC1 = %d, %v", mV, err)
					return
				}
				mV, err = dev.RailVoltage(axp192.LDO2)
				if err != nil || mV != 3300 {
					t.Errorf("LDO2 = %d, %v", mV, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if hw.overlap.Load() {
		t.Fatal("transactions overlapped on the bus")
	}
}

func TestDeviceWrite_TimeoutLeavesChipUntouched(t *testing.T) {
	hw := &chip{gate: make(chan struct{})}
	hw.regs[0x12] = 0x01

	w := drvshim.NewWorker(hw, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// Another user holds the bus.
	busy := make(chan error, 1)
	go func() { busy <- w.Tx(axp192.Address, []byte{0x00}, nil, 0) }()
	deadline := time.Now().Add(time.Second)
	for hw.entered.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("bus never became busy")
		}
		time.Sleep(100 * time.Microsecond)
	}

	dev := axp192.New(drvshim.NewI2CFromWorker(w).WithTimeout(5))
	err := dev.SetRailOutputs(axp192.RailDCDC1 | axp192.RailLDO2)
	if !errors.Is(err, drvshim.ErrTimeout) {
		t.Fatalf("SetRailOutputs err = %v, want ErrTimeout", err)
	}

	close(hw.gate)
	if err := <-busy; err != nil {
		t.Fatal(err)
	}
	got, err := axp192.New(drvshim.NewI2CFromWorker(w)).RailOutputs()
	if err != nil {
		t.Fatal(err)
	}
	if got != axp192.RailDCDC1 {
		t.Fatalf("0x12 = %#02x after timed-out write, want 0x01", byte(got))
	}
	if n := hw.entered.Load(); n != 2 {
		t.Fatalf("bus transactions = %d, want 2", n)
	}
}
