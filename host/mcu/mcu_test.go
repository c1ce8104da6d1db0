package mcu_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tmc5130/host/mcu"
	"tmc5130/host/mcu/mcusim"
	"tmc5130/protocol"
)

func linkConfig() protocol.LinkConfig {
	return protocol.LinkConfig{Timeout: 50 * time.Millisecond, Retries: 1}
}

func TestIdentify(t *testing.T) {
	for _, compress := range []bool{false, true} {
		sim := mcusim.New(compress)
		m := mcu.New(sim, linkConfig())
		d, err := m.Identify()
		if err != nil {
			t.Fatalf("compress=%v: %v", compress, err)
		}
		if d.Version != "mcusim" {
			t.Errorf("compress=%v: version %q", compress, d.Version)
		}
		f, err := d.Command("spi_transfer")
		if err != nil {
			t.Fatal(err)
		}
		if f.ID != 6 || len(f.Params) != 2 || f.Params[1].Kind != mcu.Bytes {
			t.Errorf("spi_transfer format = %+v", f)
		}
		chunks := 0
		for _, c := range sim.Calls {
			if c.Name == "identify" {
				chunks++
			}
		}
		if want := sim.DictionarySize()/mcu.DefaultChunkSize + 1; chunks != want {
			t.Errorf("compress=%v: %d identify calls, want %d", compress, chunks, want)
		}
	}
}

func TestSendBeforeIdentify(t *testing.T) {
	m := mcu.New(mcusim.New(false), linkConfig())
	if err := m.Send("allocate_oids", 1); err == nil {
		t.Error("Send worked without a dictionary")
	}
}

func TestSendAndCall(t *testing.T) {
	sim := mcusim.New(false)
	m := mcu.New(sim, linkConfig())
	if _, err := m.Identify(); err != nil {
		t.Fatal(err)
	}
	if err := m.Send("allocate_oids", uint8(1)); err != nil {
		t.Fatal(err)
	}
	if err := m.Send("no_such_command"); !errors.Is(err, mcu.ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
	if err := m.Send("finalize_config", uint32(0)); err != nil {
		t.Fatal(err)
	}

	cmd, resp, err := m.Lookup("get_config", "config")
	if err != nil {
		t.Fatal(err)
	}
	vals, err := m.Call(cmd, resp, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]interface{}{int64(1), int64(0), int64(0), int64(0)}, vals); diff != "" {
		t.Errorf("config response (-want +got):\n%s", diff)
	}
	last := sim.Calls[len(sim.Calls)-2]
	if last.Name != "finalize_config" {
		t.Errorf("calls = %+v", sim.Calls)
	}
}

func TestCallSPI(t *testing.T) {
	sim := mcusim.New(false)
	sim.SPI = func(oid uint8, tx []byte) ([]byte, error) {
		rx := make([]byte, len(tx))
		for i, b := range tx {
			rx[i] = ^b
		}
		return rx, nil
	}
	m := mcu.New(sim, linkConfig())
	if _, err := m.Identify(); err != nil {
		t.Fatal(err)
	}
	cmd, resp, err := m.Lookup("spi_transfer", "spi_transfer_response")
	if err != nil {
		t.Fatal(err)
	}
	vals, err := m.Call(cmd, resp, func(v []interface{}) bool { return v[0].(int64) == 3 }, uint8(3), []byte{0x00, 0xF0})
	if err != nil {
		t.Fatal(err)
	}
	if got := vals[1].([]byte); !bytes.Equal(got, []byte{0xFF, 0x0F}) {
		t.Errorf("response = % x", got)
	}

	sim.DropSPI = true
	if _, err := m.Call(cmd, resp, nil, uint8(3), []byte{0}); !errors.Is(err, protocol.ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}
