package driver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tmc5130/reg"
	"tmc5130/transport/fake"
)

type wire struct {
	Addr byte
	Word uint32
}

// sent reduces a transfer log to the address bytes and words sent.
func sent(log []fake.Transfer) []wire {
	out := make([]wire, len(log))
	for i, t := range log {
		out[i] = wire{t.Addr(), t.Word()}
	}
	return out
}

func xactual(v int32) reg.XActual {
	var x reg.XActual
	x.SetValue(v)
	return x
}

func TestWriteRegisterFraming(t *testing.T) {
	s := &fake.Script{Replies: [][5]byte{fake.Reply(0x09, 0)}}
	d := New(s)

	var c reg.ChopConf
	c.SetToff(3)
	c.SetHstrt(4)
	c.SetHend(1)
	c.SetTbl(2)
	status, err := WriteRegister(d, c)
	if err != nil {
		t.Fatal(err)
	}
	if status != 0x09 {
		t.Errorf("status = %s, want 0x09", status)
	}
	want := []wire{{0xEC, 0x000100C3}}
	if diff := cmp.Diff(want, sent(s.Log)); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
	if b := s.Log[0].Sent; b != [5]byte{0xEC, 0x00, 0x01, 0x00, 0xC3} {
		t.Errorf("bytes on the wire = % x", b)
	}
}

func TestReadRegisterTwoTransactions(t *testing.T) {
	s := &fake.Script{Replies: [][5]byte{
		fake.Reply(0x01, 0xFFFFFFFF),
		fake.Reply(0x08, 0x80000000),
	}}
	d := New(s)

	status, drv, err := ReadRegister[reg.DrvStatus](d)
	if err != nil {
		t.Fatal(err)
	}
	want := []wire{{0x6F, 0}, {0x6F, 0}}
	if diff := cmp.Diff(want, sent(s.Log)); diff != "" {
		t.Errorf("transactions (-want +got):\n%s", diff)
	}
	if status != 0x08 {
		t.Errorf("status = %s, want the second transaction's 0x08", status)
	}
	if !drv.Stst() || uint32(drv) != 0x80000000 {
		t.Errorf("DRV_STATUS = %#x, want the second reply", uint32(drv))
	}
}

func TestReadWriteAgainstChip(t *testing.T) {
	chip := fake.NewChip()
	d := New(chip)

	var ih reg.IHoldIRun
	ih.SetIhold(10)
	ih.SetIrun(31)
	ih.SetIholdDelay(6)
	if _, err := WriteRegister(d, ih); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteRegister(d, xactual(-51200)); err != nil {
		t.Fatal(err)
	}
	chip.Regs.Set(reg.DrvStatus(0x80000000 | 17))

	_, x, err := ReadRegister[reg.XActual](d)
	if err != nil {
		t.Fatal(err)
	}
	if x.Value() != -51200 {
		t.Errorf("XACTUAL = %d, want -51200", x.Value())
	}
	_, drv, err := ReadRegister[reg.DrvStatus](d)
	if err != nil {
		t.Fatal(err)
	}
	if drv.SgResult() != 17 || !drv.Stst() {
		t.Errorf("DRV_STATUS sg_result=%d stst=%v", drv.SgResult(), drv.Stst())
	}
	if got := reg.Get[reg.IHoldIRun](chip.Regs); got != ih {
		t.Errorf("chip IHOLD_IRUN = %#x, want %#x", uint32(got), uint32(ih))
	}
}

func TestReadStateUnknownAddress(t *testing.T) {
	s := &fake.Script{}
	d := New(s)
	_, st, err := d.ReadState(reg.Address(0x07))
	if err != nil {
		t.Fatal(err)
	}
	if st.Addr() != 0x07 || len(s.Log) != 2 {
		t.Errorf("state %v after %d transactions", st, len(s.Log))
	}
}

func TestTransportErrorReturnedUnchanged(t *testing.T) {
	boom := errors.New("bus fault")
	s := &fake.Script{FailAt: 2, Err: boom}
	d := New(s)
	if _, _, err := ReadRegister[reg.GConf](d); err != boom {
		t.Errorf("err = %v, want the transport's error", err)
	}
	if s.Attempts() != 2 {
		t.Errorf("attempts = %d, want 2", s.Attempts())
	}

	s = &fake.Script{FailAt: 1, Err: boom}
	if _, err := New(s).WriteState(reg.StateOf(reg.VMax(5))); err != boom {
		t.Errorf("write err = %v, want the transport's error", err)
	}
}

func TestStatusString(t *testing.T) {
	if got := Status(0x0A).String(); got != "0x0a" {
		t.Errorf("String = %q", got)
	}
	if Status(0x81).Byte() != 0x81 {
		t.Error("Byte mismatch")
	}
}
