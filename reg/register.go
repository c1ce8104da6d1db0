package reg

// Register is implemented by every register type in the catalog.
type Register interface {
	Addr() Address
	Word() uint32
}

// AnyRegister is satisfied by the catalog's register types only.
type AnyRegister interface {
	~uint32
	Register
}

// ReadableRegister is a register that can be read back from the chip.
type ReadableRegister interface {
	AnyRegister
	readable()
}

// WritableRegister is a register that can be written to the chip.
type WritableRegister interface {
	AnyRegister
	writable()
}

// addrOf returns the address of register type R.
func addrOf[R AnyRegister]() Address {
	var r R
	return r.Addr()
}

// AddrOf returns the address of register type R.
func AddrOf[R AnyRegister]() Address { return addrOf[R]() }
