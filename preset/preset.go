// Package preset loads and saves register presets. A preset lists registers
// by datasheet name, each with a raw word, named fields, or both; fields are
// applied on top of the word, or on top of the reset value when no word is
// given. Files are JSON or TOML, chosen by extension.
package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"tmc5130/driver"
	"tmc5130/reg"
)

var ErrNotWritable = errors.New("register is not writable")

// Format is a preset file encoding.
type Format int

const (
	JSON Format = iota
	TOML
)

// FormatOf picks the format from a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("preset %s: unknown file type, want .json or .toml", path)
}

// Word is a register word. It decodes from a number or a string such as
// "0x000100c3" and encodes as a hex string.
type Word uint32

func (w *Word) UnmarshalText(b []byte) error {
	v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 0, 32)
	if err != nil {
		return fmt.Errorf("bad register word %q: %w", b, err)
	}
	*w = Word(v)
	return nil
}

func (w *Word) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	return w.UnmarshalText(b)
}

func (w Word) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("0x%08x", uint32(w))), nil
}

// Entry sets one register.
type Entry struct {
	Register string           `json:"register" toml:"register"`
	Value    *Word            `json:"value,omitempty" toml:"value,omitempty"`
	Fields   map[string]int64 `json:"fields,omitempty" toml:"fields,omitempty"`
}

type Preset struct {
	Name      string  `json:"name,omitempty" toml:"name,omitempty"`
	Registers []Entry `json:"registers" toml:"registers"`
}

// Load reads a preset file.
func Load(path string) (*Preset, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes preset data.
func Parse(data []byte, f Format) (*Preset, error) {
	p := &Preset{}
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(p); err != nil {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), p)
		if err != nil {
			return nil, err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("unknown keys %v", undec)
		}
	default:
		return nil, fmt.Errorf("unknown preset format %d", f)
	}
	return p, nil
}

// Encode writes p in format f.
func (p *Preset) Encode(f Format) ([]byte, error) {
	var b bytes.Buffer
	switch f {
	case JSON:
		enc := json.NewEncoder(&b)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return nil, err
		}
	case TOML:
		if err := toml.NewEncoder(&b).Encode(p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown preset format %d", f)
	}
	return b.Bytes(), nil
}

// Save writes p to path in the format its extension names.
func (p *Preset) Save(path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := p.Encode(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// States resolves every entry to the register state it writes, in order.
func (p *Preset) States() ([]reg.State, error) {
	out := make([]reg.State, 0, len(p.Registers))
	for i, e := range p.Registers {
		s, err := e.State()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// State resolves e.
func (e Entry) State() (reg.State, error) {
	addr, err := reg.LookupName(e.Register)
	if err != nil {
		return reg.State{}, err
	}
	if !addr.Writable() {
		return reg.State{}, fmt.Errorf("%w: %s", ErrNotWritable, addr)
	}
	d, _ := reg.Describe(addr)
	word := d.Default
	if e.Value != nil {
		word = uint32(*e.Value)
	}
	word, err = d.Encode(word, e.Fields)
	if err != nil {
		return reg.State{}, err
	}
	return reg.FromAddrAndData(addr, word), nil
}

// Apply writes the preset to the chip as one bulk sequence. Nothing is sent
// when an entry does not resolve.
func (p *Preset) Apply(d *driver.Driver) (driver.Status, error) {
	states, err := p.States()
	if err != nil {
		return 0, err
	}
	actions := make([]driver.Action, len(states))
	for i, s := range states {
		actions[i] = driver.Write(s)
	}
	return d.BulkRegisterAction(actions)
}

// live holds readable and writable registers that track motion or latch
// events. Writing a captured copy back moves the position counters or clears
// flags, so they are left out of a default capture.
var live = map[reg.Address]bool{
	reg.AddrGStat:     true,
	reg.AddrXActual:   true,
	reg.AddrRampStat:  true,
	reg.AddrXEnc:      true,
	reg.AddrEncStatus: true,
}

// Capture builds a preset holding the raw words of the writable registers at
// addrs in m. With no addrs every register that is both readable and
// writable is captured, except position counters and write-1-to-clear flags.
func Capture(name string, m *reg.Map, addrs ...reg.Address) *Preset {
	if len(addrs) == 0 {
		for _, a := range reg.All {
			if a.Readable() && a.Writable() && !live[a] {
				addrs = append(addrs, a)
			}
		}
	}
	p := &Preset{Name: name}
	for _, a := range addrs {
		if !a.Writable() {
			continue
		}
		w := Word(m.State(a).Word())
		p.Registers = append(p.Registers, Entry{Register: a.String(), Value: &w})
	}
	return p
}
