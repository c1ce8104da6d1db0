package reg

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField  = errors.New("reg: unknown field")
	ErrReadOnlyField = errors.New("reg: read-only field")
)

// Field is a named bit range inside a register word.
type Field struct {
	Name     string
	Offset   uint
	Width    uint
	Signed   bool
	ReadOnly bool
}

// FieldValue is a field decoded from a word.
type FieldValue struct {
	Field
	Value int64
}

func (fv FieldValue) String() string {
	return fmt.Sprintf("%s=%d", fv.Name, fv.Value)
}

// Mask returns the field's bits in place.
func (f Field) Mask() uint32 { return mask(f.Width) << f.Offset }

// Extract returns the field's value from word, sign-extended for signed fields.
func (f Field) Extract(word uint32) int64 {
	v := bits(word, f.Offset, f.Width)
	if f.Signed {
		return int64(signExtend(v, f.Width))
	}
	return int64(v)
}

// Insert returns word with the field set to v. Bits of v beyond the field
// width are dropped.
func (f Field) Insert(word uint32, v int64) uint32 {
	return withBits(word, f.Offset, f.Width, uint32(v))
}

func mask(width uint) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<width - 1
}

func bits(word uint32, offset, width uint) uint32 {
	return (word >> offset) & mask(width)
}

func withBits(word uint32, offset, width uint, v uint32) uint32 {
	m := mask(width) << offset
	return word&^m | (v<<offset)&m
}

func signExtend(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

func boolBit(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
