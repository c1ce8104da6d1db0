package tinygospi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tmc5130/driver"
	"tmc5130/reg"
	"tmc5130/transport/fake"
)

// chipBus is a drivers.SPI feeding a simulated chip one frame per select.
type chipBus struct {
	chip  *fake.Chip
	frame []byte
	rx    [][]byte
	fail  error
}

func (b *chipBus) Tx(w, r []byte) error {
	if b.fail != nil {
		return b.fail
	}
	b.frame = append(b.frame, w...)
	b.rx = append(b.rx, r)
	if len(b.frame) == 5 {
		if err := b.chip.Transaction(b.frame); err != nil {
			return err
		}
		n := 0
		for _, buf := range b.rx {
			n += copy(buf, b.frame[n:])
		}
		b.frame, b.rx = b.frame[:0], b.rx[:0]
	}
	return nil
}

func (b *chipBus) Transfer(w byte) (byte, error) {
	r := []byte{0}
	err := b.Tx([]byte{w}, r)
	return r[0], err
}

func TestTransactionAgainstChip(t *testing.T) {
	var levels []bool
	chip := fake.NewChip()
	bus := &chipBus{chip: chip}
	dev := New(bus, func(l bool) { levels = append(levels, l) }, false)
	d := driver.New(dev)

	if _, err := driver.WriteRegister(d, reg.TPowerDown(10)); err != nil {
		t.Fatal(err)
	}
	chip.Regs.Set(reg.MsCnt(512))
	_, cnt, err := driver.ReadRegister[reg.MsCnt](d)
	if err != nil {
		t.Fatal(err)
	}
	if cnt != 512 {
		t.Errorf("MSCNT = %d, want 512", cnt)
	}
	if got := reg.Get[reg.TPowerDown](chip.Regs); got != 10 {
		t.Errorf("TPOWERDOWN = %d", got)
	}

	want := []bool{true, false, true, false, true, false, true}
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Errorf("chip select levels (-want +got):\n%s", diff)
	}
}

func TestActiveHighSelect(t *testing.T) {
	var levels []bool
	dev := New(&chipBus{chip: fake.NewChip()}, func(l bool) { levels = append(levels, l) }, true)
	if err := dev.Transaction([]byte{0}, make([]byte, 4)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{false, true, false}, levels); diff != "" {
		t.Errorf("levels (-want +got):\n%s", diff)
	}
}

func TestBusErrorReleasesSelect(t *testing.T) {
	var levels []bool
	boom := errors.New("bus")
	dev := New(&chipBus{fail: boom}, func(l bool) { levels = append(levels, l) }, false)
	if err := dev.Transaction([]byte{0}); err != boom {
		t.Errorf("err = %v", err)
	}
	if levels[len(levels)-1] != true {
		t.Error("chip select left asserted")
	}
}
