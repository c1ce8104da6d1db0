package driver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tmc5130/reg"
	"tmc5130/transport/fake"
)

func states(addrs ...reg.Address) []reg.State {
	out := make([]reg.State, len(addrs))
	for i, a := range addrs {
		out[i] = reg.DefaultState(a)
	}
	return out
}

func TestBulkEmpty(t *testing.T) {
	s := &fake.Script{}
	status, err := New(s).BulkRegisterAction(nil)
	if err != nil || status != 0 {
		t.Errorf("status=%s err=%v, want 0 and nil", status, err)
	}
	if s.Attempts() != 0 {
		t.Errorf("%d transactions issued, want none", s.Attempts())
	}
}

func TestBulkSingleRead(t *testing.T) {
	s := &fake.Script{Replies: [][5]byte{
		fake.Reply(0x01, 0x11111111),
		fake.Reply(0x02, 0x00000041),
	}}
	st := reg.DefaultState(reg.AddrGConf)
	status, err := New(s).BulkRegisterAction([]Action{Read(&st)})
	if err != nil {
		t.Fatal(err)
	}
	want := []wire{{0x00, 0}, {0x00, 0}}
	if diff := cmp.Diff(want, sent(s.Log)); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
	if st.Word() != 0x41 || status != 0x02 {
		t.Errorf("GCONF=%#x status=%s, want 0x41 from the second transaction", st.Word(), status)
	}
}

func TestBulkTransactionCount(t *testing.T) {
	tests := []struct {
		name    string
		pattern string // r or w per action
		want    int
	}{
		{"single write", "w", 1},
		{"writes", "www", 3},
		{"ends in write", "rrw", 3},
		{"ends in read", "wwr", 4},
		{"alternating", "rwrw", 4},
		{"reads", "rrrr", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fake.Script{}
			var actions []Action
			held := states(make([]reg.Address, len(tt.pattern))...)
			for i, c := range tt.pattern {
				if c == 'r' {
					actions = append(actions, Read(&held[i]))
				} else {
					actions = append(actions, Write(reg.StateOf(reg.VMax(i))))
				}
			}
			if _, err := New(s).BulkRegisterAction(actions); err != nil {
				t.Fatal(err)
			}
			if s.Attempts() != tt.want {
				t.Errorf("%d transactions, want %d", s.Attempts(), tt.want)
			}
		})
	}
}

func TestBulkPipelinedAgainstChip(t *testing.T) {
	chip := fake.NewChip()
	chip.Regs.Set(reg.XActual(1000))
	chip.Regs.Set(reg.DrvStatus(0x80000000))
	d := New(chip)

	var x, drv, chop reg.State = reg.DefaultState(reg.AddrXActual),
		reg.DefaultState(reg.AddrDrvStatus), reg.DefaultState(reg.AddrChopConf)
	actions := []Action{
		Read(&x),
		Write(reg.StateOf(reg.ChopConf(0x000100C3))),
		Read(&drv),
		Read(&chop),
	}
	if _, err := d.BulkRegisterAction(actions); err != nil {
		t.Fatal(err)
	}

	want := []wire{
		{0x21, 0},
		{0xEC, 0x000100C3},
		{0x6F, 0},
		{0x6C, 0},
		{0x6C, 0},
	}
	if diff := cmp.Diff(want, sent(chip.Log)); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
	if x.Word() != 1000 {
		t.Errorf("XACTUAL = %d, want 1000", x.Word())
	}
	if drv.Word() != 0x80000000 {
		t.Errorf("DRV_STATUS = %#x", drv.Word())
	}
	if chop.Word() != 0x000100C3 {
		t.Errorf("CHOPCONF = %#x, want the word written earlier in the batch", chop.Word())
	}
}

func TestBulkScriptedReplies(t *testing.T) {
	s := &fake.Script{Replies: [][5]byte{
		fake.Reply(0x01, 0x11111111),
		fake.Reply(0x02, 0x22222222),
		fake.Reply(0x03, 0x00000041),
		fake.Reply(0x04, 0x00001234),
	}}
	held := states(reg.AddrGConf, reg.AddrXActual)
	actions := []Action{
		Write(reg.StateOf(reg.VMax(1))),
		Read(&held[0]),
		Read(&held[1]),
	}
	status, err := New(s).BulkRegisterAction(actions)
	if err != nil {
		t.Fatal(err)
	}
	want := []wire{
		{0xA7, 1},
		{0x00, 0},
		{0x21, 0},
		{0x21, 0},
	}
	if diff := cmp.Diff(want, sent(s.Log)); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
	if held[0].Word() != 0x00000041 {
		t.Errorf("GCONF = %#x, want the third reply", held[0].Word())
	}
	if held[1].Word() != 0x00001234 {
		t.Errorf("XACTUAL = %#x, want the fourth reply", held[1].Word())
	}
	if status != 0x04 {
		t.Errorf("status = %s, want 0x04 from the last transaction", status)
	}
}

func TestBulkTrailingReadIsReadFramed(t *testing.T) {
	chip := fake.NewChip()
	chip.Regs.Set(reg.XActual(42))
	st := reg.DefaultState(reg.AddrXActual)
	if _, err := New(chip).BulkRegisterAction([]Action{Read(&st)}); err != nil {
		t.Fatal(err)
	}
	for i, tr := range chip.Log {
		if tr.IsWrite() {
			t.Errorf("transaction %d has the write bit set", i)
		}
	}
	if got := reg.Get[reg.XActual](chip.Regs); got != 42 {
		t.Errorf("XACTUAL on chip = %d, want it untouched", got)
	}
}

func TestBulkStatusIsLastTransaction(t *testing.T) {
	tests := []struct {
		pattern string
		want    Status
	}{
		{"w", 0xA1},
		{"ww", 0xA2},
		{"wr", 0xA3},
		{"rr", 0xA3},
	}
	for _, tt := range tests {
		s := &fake.Script{Replies: [][5]byte{
			fake.Reply(0xA1, 0), fake.Reply(0xA2, 0), fake.Reply(0xA3, 0),
		}}
		held := states(reg.AddrGConf, reg.AddrGConf)
		var actions []Action
		for i, c := range tt.pattern {
			if c == 'r' {
				actions = append(actions, Read(&held[i]))
			} else {
				actions = append(actions, Write(reg.StateOf(reg.VMax(1))))
			}
		}
		status, err := New(s).BulkRegisterAction(actions)
		if err != nil {
			t.Fatal(err)
		}
		if status != tt.want {
			t.Errorf("%s: status = %s, want %s", tt.pattern, status, tt.want)
		}
	}
}

func TestBulkAbortsOnError(t *testing.T) {
	for k := 1; k <= 4; k++ {
		chip := fake.NewChip()
		chip.FailAt = k
		chip.Regs.Set(reg.XActual(7))
		st := states(reg.AddrXActual, reg.AddrXActual, reg.AddrXActual)
		actions := []Action{Read(&st[0]), Read(&st[1]), Read(&st[2])}

		_, err := New(chip).BulkRegisterAction(actions)
		if !errors.Is(err, fake.ErrInjected) {
			t.Fatalf("k=%d: err = %v, want ErrInjected", k, err)
		}
		if chip.Attempts() != k {
			t.Errorf("k=%d: %d transactions attempted, want no more after the failure", k, chip.Attempts())
		}
		// transaction i>1 resolves read i-1; the rest keep their default
		for i := range st {
			resolved := i+2 < k
			if got := st[i].Word() == 7; got != resolved {
				t.Errorf("k=%d: read %d resolved=%v, want %v", k, i, got, resolved)
			}
		}
	}
}

func TestRefreshAndFlush(t *testing.T) {
	chip := fake.NewChip()
	chip.Regs.Set(xactual(-5))
	chip.Regs.Set(reg.TStep(300))
	d := New(chip)

	m := reg.NewMap()
	if _, err := d.Refresh(m, reg.AddrXActual, reg.AddrTStep); err != nil {
		t.Fatal(err)
	}
	if reg.Get[reg.XActual](m).Value() != -5 || reg.Get[reg.TStep](m) != 300 {
		t.Errorf("map after refresh: %v %v", m.State(reg.AddrXActual), m.State(reg.AddrTStep))
	}
	if chip.Attempts() != 3 {
		t.Errorf("refresh took %d transactions, want 3", chip.Attempts())
	}

	reg.Modify(m, func(c *reg.ChopConf) { c.SetToff(5) })
	m.Set(reg.VMax(20000))
	if _, err := d.Flush(m, reg.AddrChopConf, reg.AddrVMax); err != nil {
		t.Fatal(err)
	}
	if reg.Get[reg.ChopConf](chip.Regs).Toff() != 5 || reg.Get[reg.VMax](chip.Regs) != 20000 {
		t.Error("flush did not reach the chip")
	}
}

func TestRefreshAll(t *testing.T) {
	chip := fake.NewChip()
	chip.Regs.Set(reg.PwmScale(0x00120034))
	m := reg.NewMap()
	if _, err := New(chip).Refresh(m); err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, a := range reg.All {
		if a.Readable() {
			n++
		}
	}
	if chip.Attempts() != n+1 {
		t.Errorf("%d transactions for %d readable registers", chip.Attempts(), n)
	}
	if reg.Get[reg.PwmScale](m) != 0x00120034 {
		t.Error("PWM_SCALE not refreshed")
	}
}

func TestRefreshLeavesMapOnError(t *testing.T) {
	chip := fake.NewChip()
	chip.Regs.Set(reg.XActual(9))
	chip.FailAt = 2
	m := reg.NewMap()
	if _, err := New(chip).Refresh(m, reg.AddrXActual); err == nil {
		t.Fatal("expected error")
	}
	if reg.Get[reg.XActual](m) != 0 {
		t.Error("map changed after a failed refresh")
	}
}

func TestSyncUnknownAddress(t *testing.T) {
	chip := fake.NewChip()
	d := New(chip)
	m := reg.NewMap()
	if _, err := d.Refresh(m, reg.AddrGConf, reg.Address(0x07)); !errors.Is(err, reg.ErrUnknownAddress) {
		t.Errorf("Refresh: err = %v, want ErrUnknownAddress", err)
	}
	if _, err := d.Flush(m, reg.Address(0x07)); !errors.Is(err, reg.ErrUnknownAddress) {
		t.Errorf("Flush: err = %v, want ErrUnknownAddress", err)
	}
	if chip.Attempts() != 0 {
		t.Errorf("%d transactions issued, want none", chip.Attempts())
	}
}
