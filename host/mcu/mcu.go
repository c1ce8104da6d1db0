// Package mcu talks to a Klipper compatible microcontroller: it retrieves the
// data dictionary and runs commands by name.
package mcu

import (
	"bytes"
	"fmt"
	"io"

	logger "github.com/d2r2/go-logger"

	"tmc5130/protocol"
)

var lg = logger.NewPackageLogger("mcu", logger.InfoLevel)

// Fixed IDs of the identify exchange, the only messages usable before the
// dictionary is known.
const (
	IdentifyResponseID = 0
	IdentifyID         = 1
)

var (
	identify         = Format{ID: IdentifyID, Name: "identify", Params: []Param{{Name: "offset"}, {Name: "count"}}}
	identifyResponse = Format{ID: IdentifyResponseID, Name: "identify_response", Params: []Param{{Name: "offset"}, {Name: "data", Kind: Bytes}}}
)

// DefaultChunkSize is the identify chunk length requested per round trip.
const DefaultChunkSize = 40

// MCU is a connection to one microcontroller.
type MCU struct {
	link      *protocol.Link
	dict      *Dictionary
	chunkSize uint8
}

// New wraps a byte stream to the MCU, usually a serial port.
func New(rw io.ReadWriter, cfg protocol.LinkConfig) *MCU {
	return &MCU{link: protocol.NewLink(rw, cfg), chunkSize: DefaultChunkSize}
}

// Dictionary returns the dictionary loaded by Identify, or nil.
func (m *MCU) Dictionary() *Dictionary { return m.dict }

// Identify retrieves and parses the data dictionary.
func (m *MCU) Identify() (*Dictionary, error) {
	var raw bytes.Buffer
	for {
		chunk, err := m.identifyChunk(uint32(raw.Len()))
		if err != nil {
			return nil, fmt.Errorf("identify at offset %d: %w", raw.Len(), err)
		}
		raw.Write(chunk)
		if len(chunk) < int(m.chunkSize) {
			break
		}
	}
	lg.Debugf("dictionary: %d bytes", raw.Len())
	d, err := ParseDictionary(raw.Bytes())
	if err != nil {
		return nil, err
	}
	m.dict = d
	lg.Infof("identified MCU: %s", d.Summary())
	return d, nil
}

func (m *MCU) identifyChunk(offset uint32) ([]byte, error) {
	vals, err := m.Call(identify, identifyResponse, nil, offset, m.chunkSize)
	if err != nil {
		return nil, err
	}
	if got := vals[0].(int64); got != int64(offset) {
		return nil, fmt.Errorf("offset mismatch: expected %d, got %d", offset, got)
	}
	return vals[1].([]byte), nil
}

// Send runs the named command without waiting for a response.
func (m *MCU) Send(name string, args ...interface{}) error {
	f, err := m.command(name)
	if err != nil {
		return err
	}
	payload, err := f.Encode(args...)
	if err != nil {
		return err
	}
	return m.link.Send(payload)
}

// Lookup resolves a command and a response by name.
func (m *MCU) Lookup(command, response string) (Format, Format, error) {
	cmd, err := m.command(command)
	if err != nil {
		return Format{}, Format{}, err
	}
	resp, err := m.dict.Response(response)
	if err != nil {
		return Format{}, Format{}, err
	}
	return cmd, resp, nil
}

// Call sends cmd with args and waits for a resp message for which match
// reports true. A nil match takes the first resp message.
func (m *MCU) Call(cmd, resp Format, match func([]interface{}) bool, args ...interface{}) ([]interface{}, error) {
	payload, err := cmd.Encode(args...)
	if err != nil {
		return nil, err
	}
	if err := m.link.Send(payload); err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	var vals []interface{}
	_, err = m.link.Receive(func(msg protocol.Message) bool {
		r := protocol.NewReader(msg.Payload)
		id, err := r.Uint()
		if err != nil || int(id) != resp.ID {
			return false
		}
		v, err := resp.Decode(r)
		if err != nil {
			lg.Warnf("%s: %v", resp.Name, err)
			return false
		}
		if match != nil && !match(v) {
			return false
		}
		vals = v
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("%s: waiting for %s: %w", cmd.Name, resp.Name, err)
	}
	return vals, nil
}

func (m *MCU) command(name string) (Format, error) {
	if m.dict == nil {
		return Format{}, fmt.Errorf("dictionary not loaded")
	}
	return m.dict.Command(name)
}
