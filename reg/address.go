package reg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAddress    = errors.New("reg: unknown register address")
	ErrUnexpectedAddress = errors.New("reg: unexpected register address")
)

// Address is the 7-bit register address. Bit 7 is the wire direction flag and
// never part of an address.
type Address uint8

// Access is the access mode of a register.
type Access uint8

const (
	ReadOnly Access = iota + 1
	WriteOnly
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "R"
	case WriteOnly:
		return "W"
	case ReadWrite:
		return "RW"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// Descriptor is the catalog entry of one register.
type Descriptor struct {
	Addr    Address
	Name    string
	Access  Access
	Default uint32 // reset value documented for the chip, 0 if none
	Fields  []Field
}

// Field returns the named field.
func (d *Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Decode splits word into the register's fields, in declaration order.
func (d *Descriptor) Decode(word uint32) []FieldValue {
	out := make([]FieldValue, len(d.Fields))
	for i, f := range d.Fields {
		out[i] = FieldValue{Field: f, Value: f.Extract(word)}
	}
	return out
}

// Encode sets the named fields on top of base. Bits not covered by a named
// field keep their value from base.
func (d *Descriptor) Encode(base uint32, values map[string]int64) (uint32, error) {
	word := base
	for name, v := range values {
		f, ok := d.Field(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, d.Name, name)
		}
		if f.ReadOnly {
			return 0, fmt.Errorf("%w: %s.%s", ErrReadOnlyField, d.Name, f.Name)
		}
		word = f.Insert(word, v)
	}
	return word, nil
}

// index maps an address to its slot in catalog, -1 when unknown.
var index [256]int16

func init() {
	for i := range index {
		index[i] = -1
	}
	for i, d := range catalog {
		index[d.Addr] = int16(i)
	}
}

// ParseAddress validates b as a catalog address.
func ParseAddress(b uint8) (Address, error) {
	if index[b] < 0 {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownAddress, b)
	}
	return Address(b), nil
}

// LookupName finds a register by its datasheet name, ignoring case.
func LookupName(name string) (Address, error) {
	for _, d := range catalog {
		if strings.EqualFold(d.Name, name) {
			return d.Addr, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAddress, name)
}

// Describe returns the catalog entry for a.
func Describe(a Address) (*Descriptor, bool) {
	i := index[a]
	if i < 0 {
		return nil, false
	}
	return &catalog[i], true
}

// Valid reports whether a is in the catalog.
func (a Address) Valid() bool { return index[a] >= 0 }

// Readable reports whether a read request may be sent to a.
func (a Address) Readable() bool {
	d, ok := Describe(a)
	return ok && d.Access != WriteOnly
}

// Writable reports whether a write request may be sent to a.
func (a Address) Writable() bool {
	d, ok := Describe(a)
	return ok && d.Access != ReadOnly
}

func (a Address) String() string {
	if d, ok := Describe(a); ok {
		return d.Name
	}
	return fmt.Sprintf("Address(0x%02x)", uint8(a))
}
