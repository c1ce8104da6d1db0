// Package mcusim is an in-memory Klipper MCU for tests. It speaks the framed
// protocol over Read and Write, serves its dictionary through identify and
// forwards SPI transfers to a callback.
package mcusim

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"fmt"
	"io"

	"tmc5130/host/mcu"
	"tmc5130/protocol"
)

var commands = map[string]int{
	"identify offset=%u count=%c":                   1,
	"allocate_oids count=%c":                        2,
	"config_spi oid=%c pin=%u cs_active_high=%c":    3,
	"spi_set_bus oid=%c spi_bus=%u mode=%u rate=%u": 4,
	"finalize_config crc=%u":                        5,
	"spi_transfer oid=%c data=%*s":                  6,
	"get_config":                                    7,
}

var responses = map[string]int{
	"identify_response offset=%u data=%.*s":                    0,
	"spi_transfer_response oid=%c response=%*s":                8,
	"config is_config=%c crc=%u is_shutdown=%c move_count=%hu": 9,
}

// Call records one command the simulator executed.
type Call struct {
	Name string
	Args []interface{}
}

// MCU is the simulator. It is not safe for concurrent use.
type MCU struct {
	// SPI answers spi_transfer. A nil SPI echoes zeros.
	SPI func(oid uint8, tx []byte) ([]byte, error)
	// Calls lists executed commands in order.
	Calls []Call
	// DropSPI makes spi_transfer commands go unanswered.
	DropSPI bool

	dict  []byte
	fmts  map[int]mcu.Format
	resp  map[string]mcu.Format
	scan  *protocol.Scanner
	out   bytes.Buffer
	next  uint8
	oids  int
	final bool
}

// New returns a simulator. With compress set the dictionary is served zlib
// compressed, as Klipper firmware does.
func New(compress bool) *MCU {
	raw, err := json.Marshal(map[string]interface{}{
		"version":        "mcusim",
		"build_versions": "go",
		"config":         map[string]interface{}{"CLOCK_FREQ": 12000000, "MCU": "sim"},
		"commands":       commands,
		"responses":      responses,
	})
	if err != nil {
		panic(err)
	}
	if compress {
		var b bytes.Buffer
		zw := zlib.NewWriter(&b)
		zw.Write(raw)
		zw.Close()
		raw = b.Bytes()
	}
	m := &MCU{
		dict: raw,
		fmts: make(map[int]mcu.Format),
		resp: make(map[string]mcu.Format),
		scan: protocol.NewScanner(),
		next: protocol.DestBit,
	}
	for s, id := range commands {
		f, err := mcu.ParseFormat(id, s)
		if err != nil {
			panic(err)
		}
		m.fmts[id] = f
	}
	for s, id := range responses {
		f, err := mcu.ParseFormat(id, s)
		if err != nil {
			panic(err)
		}
		m.resp[f.Name] = f
	}
	return m
}

// DictionarySize returns the length of the served dictionary.
func (m *MCU) DictionarySize() int { return len(m.dict) }

// OIDCount returns the count given to allocate_oids.
func (m *MCU) OIDCount() int { return m.oids }

// Finalized reports whether finalize_config was received.
func (m *MCU) Finalized() bool { return m.final }

func (m *MCU) Read(p []byte) (int, error) {
	if m.out.Len() == 0 {
		return 0, io.EOF
	}
	return m.out.Read(p)
}

func (m *MCU) Write(p []byte) (int, error) {
	m.scan.Write(p)
	for {
		msg, ok := m.scan.Next()
		if !ok {
			return len(p), nil
		}
		if msg.Seq == protocol.DestBit && m.next != protocol.DestBit {
			m.next = protocol.DestBit
		}
		if msg.Seq != m.next {
			m.frame(nil)
			continue
		}
		m.next = protocol.NextSeq(m.next)
		m.frame(nil)
		if err := m.dispatch(msg.Payload); err != nil {
			return len(p), err
		}
	}
}

func (m *MCU) dispatch(payload []byte) error {
	r := protocol.NewReader(payload)
	for r.Len() > 0 {
		id, err := r.Uint()
		if err != nil {
			return err
		}
		f, ok := m.fmts[int(id)]
		if !ok {
			return fmt.Errorf("mcusim: unknown command id %d", id)
		}
		args, err := f.Decode(r)
		if err != nil {
			return err
		}
		m.Calls = append(m.Calls, Call{Name: f.Name, Args: args})
		if err := m.handle(f.Name, args); err != nil {
			return err
		}
	}
	return nil
}

func (m *MCU) handle(name string, args []interface{}) error {
	switch name {
	case "identify":
		off, n := int(args[0].(int64)), int(args[1].(int64))
		if off > len(m.dict) {
			off = len(m.dict)
		}
		end := off + n
		if end > len(m.dict) {
			end = len(m.dict)
		}
		return m.respond("identify_response", off, m.dict[off:end])
	case "allocate_oids":
		m.oids = int(args[0].(int64))
	case "finalize_config":
		m.final = true
	case "get_config":
		return m.respond("config", m.final, 0, false, 0)
	case "spi_transfer":
		if m.DropSPI {
			return nil
		}
		oid, tx := uint8(args[0].(int64)), args[1].([]byte)
		rx := make([]byte, len(tx))
		if m.SPI != nil {
			var err error
			if rx, err = m.SPI(oid, tx); err != nil {
				return err
			}
		}
		return m.respond("spi_transfer_response", oid, rx)
	}
	return nil
}

func (m *MCU) respond(name string, args ...interface{}) error {
	payload, err := m.resp[name].Encode(args...)
	if err != nil {
		return err
	}
	m.frame(payload)
	return nil
}

func (m *MCU) frame(payload []byte) {
	b, err := protocol.AppendFrame(nil, m.next, payload)
	if err != nil {
		panic(err)
	}
	m.out.Write(b)
}
