package reg

import "fmt"

// Map holds one State per catalog register, in catalog order. Slots are never
// added, removed or retagged.
type Map struct {
	states [Count]State
}

// NewMap returns a map holding every register's documented reset value.
func NewMap() *Map {
	m := &Map{}
	for i, a := range All {
		m.states[i] = DefaultState(a)
	}
	return m
}

func (m *Map) slot(a Address) *State {
	i := index[a]
	if i < 0 {
		panic(fmt.Sprintf("reg: %s is not in the register map", a))
	}
	return &m.states[i]
}

// State returns the state at addr. addr must be a catalog address.
func (m *Map) State(addr Address) State { return *m.slot(addr) }

// SetState overwrites the slot for s's address.
func (m *Map) SetState(s State) error {
	if !s.addr.Valid() {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownAddress, uint8(s.addr))
	}
	*m.slot(s.addr) = s
	return nil
}

// Set stores a typed register value.
func (m *Map) Set(r Register) {
	*m.slot(r.Addr()) = StateOf(r)
}

// States returns a copy of every slot in catalog order.
func (m *Map) States() []State {
	out := make([]State, Count)
	copy(out, m.states[:])
	return out
}

// Get returns register R from the map.
func Get[R AnyRegister](m *Map) R {
	r, err := As[R](*m.slot(addrOf[R]()))
	if err != nil {
		panic(err) // slots are tagged at construction
	}
	return r
}

// Modify applies fn to register R in the map.
func Modify[R AnyRegister](m *Map, fn func(*R)) {
	if err := Update(m.slot(addrOf[R]()), fn); err != nil {
		panic(err)
	}
}
