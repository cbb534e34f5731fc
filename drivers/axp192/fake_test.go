package axp192

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeBus)(nil)

// tx is one recorded bus transaction.
type tx struct {
	Addr uint16
	W    []byte
	R    int // bytes read
}

// fakeBus is a 256-register AXP192 stand-in. Reads and writes auto-increment.
type fakeBus struct {
	mu   sync.Mutex
	regs [256]byte
	log  []tx
	fail error // returned by every Tx when set

	failReg map[byte]error // returned for transactions starting at a register
}

func newFake(preset map[byte]byte) *fakeBus {
	f := &fakeBus{}
	for r, v := range preset {
		f.regs[r] = v
	}
	return f
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.log = append(f.log, tx{Addr: addr, W: append([]byte(nil), w...), R: len(r)})
	if f.fail != nil {
		return f.fail
	}
	if addr != Address {
		return errors.New("nack")
	}
	if len(w) == 0 {
		return errors.New("no register byte")
	}
	reg := w[0]
	if err := f.failReg[reg]; err != nil {
		return err
	}
	for i, b := range w[1:] {
		f.regs[reg+byte(i)] = b
	}
	for i := range r {
		r[i] = f.regs[reg+byte(i)]
	}
	return nil
}

func (f *fakeBus) txs() []tx {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tx(nil), f.log...)
}

func (f *fakeBus) reset() {
	f.mu.Lock()
	f.log = nil
	f.mu.Unlock()
}

// Helpers to build expected logs.
func rd(reg byte, n int) tx        { return tx{Addr: Address, W: []byte{reg}, R: n} }
func wr(reg byte, data ...byte) tx { return tx{Addr: Address, W: append([]byte{reg}, data...)} }

func expectTxs(t *testing.T, f *fakeBus, want ...tx) {
	t.Helper()
	if diff := cmp.Diff(want, f.txs()); diff != "" {
		t.Fatalf("bus transactions mismatch (-want +got):\n%s", diff)
	}
}

func expectNoTx(t *testing.T, f *fakeBus) {
	t.Helper()
	if got := f.txs(); len(got) != 0 {
		t.Fatalf("expected no bus activity, got %+v", got)
	}
}
