package mcu

import (
	"fmt"
	"strings"

	"tmc5130/protocol"
)

// ParamKind is the wire type of a command parameter.
type ParamKind int

const (
	// Int covers %c, %u, %i, %hu and %hi.
	Int ParamKind = iota
	// Bytes covers %s, %*s and %.*s.
	Bytes
)

type Param struct {
	Name   string
	Kind   ParamKind
	Signed bool
}

// Format is a parsed command or response from the MCU dictionary, such as
// "spi_transfer oid=%c data=%*s".
type Format struct {
	ID     int
	Name   string
	Params []Param
}

// ParseFormat parses a dictionary format string.
func ParseFormat(id int, s string) (Format, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Format{}, fmt.Errorf("empty format")
	}
	f := Format{ID: id, Name: parts[0]}
	for _, p := range parts[1:] {
		name, typ, ok := strings.Cut(p, "=")
		if !ok {
			return Format{}, fmt.Errorf("format %q: malformed parameter %q", s, p)
		}
		param := Param{Name: name}
		switch typ {
		case "%c", "%u", "%hu":
		case "%i", "%hi":
			param.Signed = true
		case "%s", "%*s", "%.*s":
			param.Kind = Bytes
		default:
			return Format{}, fmt.Errorf("format %q: unsupported type %q", s, typ)
		}
		f.Params = append(f.Params, param)
	}
	return f, nil
}

// Encode builds a payload calling the command with args, one per parameter.
// Integer parameters take any integer type, byte parameters []byte or string.
func (f Format) Encode(args ...interface{}) ([]byte, error) {
	if len(args) != len(f.Params) {
		return nil, fmt.Errorf("%s: %d arguments, want %d", f.Name, len(args), len(f.Params))
	}
	out := protocol.AppendVLQUint(nil, uint32(f.ID))
	for i, p := range f.Params {
		if p.Kind == Bytes {
			switch v := args[i].(type) {
			case []byte:
				out = protocol.AppendVLQBytes(out, v)
			case string:
				out = protocol.AppendVLQBytes(out, []byte(v))
			default:
				return nil, fmt.Errorf("%s: %s wants bytes, got %T", f.Name, p.Name, args[i])
			}
			continue
		}
		v, ok := toInt32(args[i])
		if !ok {
			return nil, fmt.Errorf("%s: %s wants an integer, got %T", f.Name, p.Name, args[i])
		}
		out = protocol.AppendVLQInt(out, v)
	}
	return out, nil
}

// Decode reads the parameters following the command ID. Integers decode to
// int64, byte strings to []byte.
func (f Format) Decode(r *protocol.Reader) ([]interface{}, error) {
	vals := make([]interface{}, len(f.Params))
	for i, p := range f.Params {
		if p.Kind == Bytes {
			b, err := r.Bytes()
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", f.Name, p.Name, err)
			}
			vals[i] = append([]byte(nil), b...)
			continue
		}
		v, err := r.Int()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", f.Name, p.Name, err)
		}
		if p.Signed {
			vals[i] = int64(v)
		} else {
			vals[i] = int64(uint32(v))
		}
	}
	return vals, nil
}

func toInt32(v interface{}) (int32, bool) {
	switch n := v.(type) {
	case int:
		return int32(n), true
	case int8:
		return int32(n), true
	case int16:
		return int32(n), true
	case int32:
		return n, true
	case int64:
		return int32(n), true
	case uint:
		return int32(n), true
	case uint8:
		return int32(n), true
	case uint16:
		return int32(n), true
	case uint32:
		return int32(n), true
	case uint64:
		return int32(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
