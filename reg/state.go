package reg

import (
	"fmt"
	"strings"
)

// State holds the word of one register, tagged with its address. The register
// type is a function of the address, so the tag and the value cannot disagree.
type State struct {
	addr Address
	word uint32
}

// FromAddrAndData builds the state of the register at addr from its raw word.
func FromAddrAndData(addr Address, word uint32) State {
	return State{addr: addr, word: word}
}

// DefaultState is the documented reset state of the register at addr.
func DefaultState(addr Address) State {
	s := State{addr: addr}
	if d, ok := Describe(addr); ok {
		s.word = d.Default
	}
	return s
}

// StateOf wraps a typed register value.
func StateOf(r Register) State {
	return State{addr: r.Addr(), word: r.Word()}
}

func (s State) Addr() Address { return s.addr }
func (s State) Word() uint32  { return s.word }

// Fields decodes the word with the register's field layout.
func (s State) Fields() []FieldValue {
	d, ok := Describe(s.addr)
	if !ok {
		return nil
	}
	return d.Decode(s.word)
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=0x%08x", s.addr, s.word)
	fields := s.Fields()
	for i, fv := range fields {
		if i == 0 {
			b.WriteString(" {")
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(fv.String())
	}
	if len(fields) > 0 {
		b.WriteByte('}')
	}
	return b.String()
}

// As returns the state as register type R. It fails with ErrUnexpectedAddress
// when s holds a different register.
func As[R AnyRegister](s State) (R, error) {
	if want := addrOf[R](); s.addr != want {
		return 0, fmt.Errorf("%w: state holds %s, not %s", ErrUnexpectedAddress, s.addr, want)
	}
	return R(s.word), nil
}

// Update applies fn to the state as register type R. It fails with
// ErrUnexpectedAddress, leaving s untouched, when s holds a different register.
func Update[R AnyRegister](s *State, fn func(*R)) error {
	r, err := As[R](*s)
	if err != nil {
		return err
	}
	fn(&r)
	s.word = uint32(r)
	return nil
}
