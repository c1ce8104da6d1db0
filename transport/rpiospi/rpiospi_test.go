package rpiospi

import (
	"testing"

	"tmc5130/driver"
	"tmc5130/reg"
	"tmc5130/transport/fake"
)

func TestTransactionSplitsExchange(t *testing.T) {
	var exchanged [][]byte
	dev := newDevice(DefaultConfig(), func(b []byte) {
		exchanged = append(exchanged, append([]byte(nil), b...))
		for i := range b {
			b[i] = byte(0xA0 + i)
		}
	}, nil)

	addr, data := []byte{0x6C}, []byte{0, 1, 0, 0xC3}
	if err := dev.Transaction(addr, data); err != nil {
		t.Fatal(err)
	}
	if len(exchanged) != 1 || len(exchanged[0]) != 5 {
		t.Fatalf("exchanges = %x, want one 5-byte exchange", exchanged)
	}
	if addr[0] != 0xA0 || data[0] != 0xA1 || data[3] != 0xA4 {
		t.Errorf("received %x %x", addr, data)
	}
}

func TestDriverOverExchange(t *testing.T) {
	chip := fake.NewChip()
	dev := newDevice(DefaultConfig(), func(b []byte) {
		if err := chip.Transaction(b); err != nil {
			t.Error(err)
		}
	}, nil)
	d := driver.New(dev)

	var g reg.GConf
	g.SetEnSpreadCycle(true)
	if _, err := driver.WriteRegister(d, g); err != nil {
		t.Fatal(err)
	}
	_, got, err := driver.ReadRegister[reg.GConf](d)
	if err != nil {
		t.Fatal(err)
	}
	if !got.EnSpreadCycle() {
		t.Errorf("GCONF = %#x, want en_spread_cycle set", uint32(got))
	}
}

func TestClosed(t *testing.T) {
	ended := 0
	dev := newDevice(DefaultConfig(), func([]byte) {}, func() { ended++ })
	dev.Close()
	dev.Close()
	if ended != 1 {
		t.Errorf("end called %d times", ended)
	}
	if err := dev.Transaction(make([]byte, 5)); err == nil {
		t.Error("transaction on closed device succeeded")
	}
}

func TestSpiDev(t *testing.T) {
	if _, err := spiDev(3); err == nil {
		t.Error("SPI3 accepted")
	}
}
