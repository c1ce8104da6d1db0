package mcu

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Dictionary is the data dictionary an MCU reports through identify.
type Dictionary struct {
	Version       string                                `json:"version"`
	BuildVersions string                                `json:"build_versions"`
	Config        map[string]interface{}                `json:"config"`
	Commands      map[string]int                        `json:"commands"`
	Responses     map[string]int                        `json:"responses"`
	Enumerations  map[string]map[string]json.RawMessage `json:"enumerations,omitempty"`

	commands  map[string]Format
	responses map[string]Format
	byID      map[int]Format
}

// ParseDictionary decodes dictionary data, inflating it first when it is
// zlib compressed.
func ParseDictionary(data []byte) (*Dictionary, error) {
	if len(data) >= 2 && data[0] == 0x78 {
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("inflate dictionary: %w", err)
		}
		inflated, err := io.ReadAll(zr)
		zr.Close()
		if err != nil {
			return nil, fmt.Errorf("inflate dictionary: %w", err)
		}
		data = inflated
	}
	d := &Dictionary{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dictionary: %w", err)
	}
	if err := d.index(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) index() error {
	d.commands = make(map[string]Format, len(d.Commands))
	d.responses = make(map[string]Format, len(d.Responses))
	d.byID = make(map[int]Format, len(d.Responses))
	for s, id := range d.Commands {
		f, err := ParseFormat(id, s)
		if err != nil {
			return err
		}
		d.commands[f.Name] = f
	}
	for s, id := range d.Responses {
		f, err := ParseFormat(id, s)
		if err != nil {
			return err
		}
		d.responses[f.Name] = f
		d.byID[id] = f
	}
	return nil
}

// Command returns the format of the named command.
func (d *Dictionary) Command(name string) (Format, error) {
	f, ok := d.commands[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return f, nil
}

// Response returns the format of the named response.
func (d *Dictionary) Response(name string) (Format, error) {
	f, ok := d.responses[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: response %s", ErrUnknownCommand, name)
	}
	return f, nil
}

// ResponseByID returns the response format with the given ID.
func (d *Dictionary) ResponseByID(id int) (Format, bool) {
	f, ok := d.byID[id]
	return f, ok
}

// Summary is a short human readable description of the dictionary.
func (d *Dictionary) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "version %s", d.Version)
	if d.BuildVersions != "" {
		fmt.Fprintf(&b, " (%s)", d.BuildVersions)
	}
	fmt.Fprintf(&b, ", %d commands, %d responses", len(d.Commands), len(d.Responses))
	if len(d.Enumerations) > 0 {
		fmt.Fprintf(&b, ", %d enumerations", len(d.Enumerations))
	}
	return b.String()
}
