package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tmc5130/driver"
	"tmc5130/preset"
	"tmc5130/reg"
	"tmc5130/transport/fake"
)

func testSession() (*session, *fake.Chip, *bytes.Buffer) {
	chip := fake.NewChip()
	var out bytes.Buffer
	return newSession(driver.New(chip), &out), chip, &out
}

func TestReadCommand(t *testing.T) {
	s, chip, out := testSession()
	chip.Regs.Set(reg.ChopConf(0x000100C3))
	if err := s.run([]string{"read", "chopconf", "0x6f"}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "CHOPCONF=0x000100c3 {toff=3 hstrt=4 hend=1 ") {
		t.Errorf("output:\n%s", got)
	}
	if !strings.Contains(got, "DRV_STATUS=") {
		t.Errorf("address lookup failed:\n%s", got)
	}
	if chip.Attempts() != 4 {
		t.Errorf("%d transactions, want 2 per read", chip.Attempts())
	}

	if err := s.run([]string{"read", "IHOLD_IRUN"}); err == nil {
		t.Error("read of write-only register accepted")
	}
	if err := s.run([]string{"read", "NOPE"}); !errors.Is(err, reg.ErrUnknownAddress) {
		t.Errorf("err = %v", err)
	}
}

func TestWriteCommand(t *testing.T) {
	s, chip, _ := testSession()
	if err := s.run([]string{"write", "CHOPCONF", "0x000100C3"}); err != nil {
		t.Fatal(err)
	}
	if got := reg.Get[reg.ChopConf](chip.Regs); got != 0x000100C3 {
		t.Errorf("CHOPCONF = %#x", uint32(got))
	}

	// readable register: fields change on top of the chip's word
	if err := s.run([]string{"write", "chopconf", "toff=5"}); err != nil {
		t.Fatal(err)
	}
	if got := reg.Get[reg.ChopConf](chip.Regs); got != 0x000100C5 {
		t.Errorf("CHOPCONF = %#x, want 0x000100c5", uint32(got))
	}

	// write-only register: fields change on top of the last written word
	if err := s.run([]string{"write", "IHOLD_IRUN", "irun=31"}); err != nil {
		t.Fatal(err)
	}
	if err := s.run([]string{"write", "IHOLD_IRUN", "ihold=10"}); err != nil {
		t.Fatal(err)
	}
	if got := reg.Get[reg.IHoldIRun](chip.Regs); got != 0x00001F0A {
		t.Errorf("IHOLD_IRUN = %#x, want 0x00001f0a", uint32(got))
	}

	if err := s.run([]string{"write", "DRV_STATUS", "1"}); !errors.Is(err, preset.ErrNotWritable) {
		t.Errorf("err = %v, want ErrNotWritable", err)
	}
	if err := s.run([]string{"write", "CHOPCONF", "bogus=1"}); !errors.Is(err, reg.ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
	if err := s.run([]string{"write", "CHOPCONF"}); err == nil {
		t.Error("write without value accepted")
	}
}

func TestDumpAndApply(t *testing.T) {
	s, chip, out := testSession()
	chip.Regs.Set(reg.ChopConf(0x000100C3))
	path := filepath.Join(t.TempDir(), "dump.toml")
	before := chip.Attempts()
	if err := s.run([]string{"dump", path}); err != nil {
		t.Fatal(err)
	}
	readable := 0
	for _, a := range reg.All {
		if a.Readable() {
			readable++
		}
	}
	if n := chip.Attempts() - before; n != readable+1 {
		t.Errorf("dump took %d transactions, want %d", n, readable+1)
	}
	if !strings.Contains(out.String(), "CHOPCONF=0x000100c3") {
		t.Errorf("dump output:\n%s", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	other, chip2, _ := testSession()
	if err := other.run([]string{"apply", path}); err != nil {
		t.Fatal(err)
	}
	if got := reg.Get[reg.ChopConf](chip2.Regs); got != 0x000100C3 {
		t.Errorf("applied CHOPCONF = %#x", uint32(got))
	}
	if got := reg.Get[reg.ChopConf](other.m); got != 0x000100C3 {
		t.Errorf("session map CHOPCONF = %#x after apply", uint32(got))
	}
}

func TestShell(t *testing.T) {
	s, chip, out := testSession()
	in := strings.NewReader("write XTARGET 0x100\nbogus\nread 'XTARGET'\nquit\nread XTARGET\n")
	if err := s.shell(in); err != nil {
		t.Fatal(err)
	}
	if got := reg.Get[reg.XTarget](chip.Regs); got != 0x100 {
		t.Errorf("XTARGET = %#x", uint32(got))
	}
	text := out.String()
	if !strings.Contains(text, `error: unknown command "bogus"`) {
		t.Errorf("shell output:\n%s", text)
	}
	if strings.Count(text, "XTARGET=0x00000100") != 2 {
		t.Errorf("want one write and one read line before quit:\n%s", text)
	}
}

func TestList(t *testing.T) {
	s, _, out := testSession()
	if err := s.run([]string{"list"}); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != reg.Count {
		t.Errorf("%d lines, want %d", lines, reg.Count)
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, _, err := openBackend("carrier-pigeon"); err == nil {
		t.Error("unknown backend accepted")
	}
	tr, closer, err := openBackend("sim")
	if err != nil || tr == nil {
		t.Fatalf("sim backend: %v", err)
	}
	closer()
}
