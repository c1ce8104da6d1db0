// Package driver implements the TMC5130 SPI register protocol.
//
// Every access is one transaction of two transfers: the address byte, then
// the 32-bit register word, big-endian. The byte clocked back during the
// address phase is the status of the previous access. A read request only
// arms the chip: the requested word comes back during the next transaction.
//
// A Driver owns its Transport. Transaction order is part of the protocol, so
// callers sharing a Driver between goroutines must serialize access themselves.
package driver

import (
	"encoding/binary"
	"fmt"

	logger "github.com/d2r2/go-logger"

	"tmc5130/reg"
)

var lg = logger.NewPackageLogger("driver", logger.InfoLevel)

// WriteBit marks the address byte of a write access.
const WriteBit = 0x80

// Transport executes transactions on the chip's SPI bus.
type Transport interface {
	// Transaction sends every buffer in order while chip select stays
	// asserted. Each buffer is overwritten with the bytes received while it
	// was sent.
	Transaction(bufs ...[]byte) error
}

// Status is the byte returned in the address phase of a transaction. It
// reports on the transaction before it and is passed through uninterpreted.
type Status uint8

func (s Status) Byte() uint8 { return uint8(s) }

func (s Status) String() string { return fmt.Sprintf("0x%02x", uint8(s)) }

// Driver issues register accesses over a Transport.
type Driver struct {
	t    Transport
	addr [1]byte
	data [4]byte
}

// New returns a driver that owns t.
func New(t Transport) *Driver {
	return &Driver{t: t}
}

func readFrame(a reg.Address) byte  { return byte(a) &^ WriteBit }
func writeFrame(a reg.Address) byte { return byte(a) | WriteBit }

// transact runs one transaction and returns the status and word clocked back.
// Transport errors are returned as they are.
func (d *Driver) transact(frame byte, word uint32) (Status, uint32, error) {
	d.addr[0] = frame
	binary.BigEndian.PutUint32(d.data[:], word)
	if err := d.t.Transaction(d.addr[:], d.data[:]); err != nil {
		lg.Debugf("transaction 0x%02x failed: %v", frame, err)
		return 0, 0, err
	}
	status, reply := Status(d.addr[0]), binary.BigEndian.Uint32(d.data[:])
	lg.Debugf("tx 0x%02x %08x -> status %s reply %08x", frame, word, status, reply)
	return status, reply, nil
}

// ReadState reads the register at a. It takes two identical read
// transactions: the first arms the chip, the second returns the word.
func (d *Driver) ReadState(a reg.Address) (Status, reg.State, error) {
	if _, _, err := d.transact(readFrame(a), 0); err != nil {
		return 0, reg.State{}, err
	}
	status, word, err := d.transact(readFrame(a), 0)
	if err != nil {
		return 0, reg.State{}, err
	}
	return status, reg.FromAddrAndData(a, word), nil
}

// WriteState writes s to its register in one transaction.
func (d *Driver) WriteState(s reg.State) (Status, error) {
	status, _, err := d.transact(writeFrame(s.Addr()), s.Word())
	return status, err
}

// ReadRegister reads register R.
func ReadRegister[R reg.ReadableRegister](d *Driver) (Status, R, error) {
	status, s, err := d.ReadState(reg.AddrOf[R]())
	if err != nil {
		return 0, 0, err
	}
	return status, R(s.Word()), nil
}

// WriteRegister writes r to its register.
func WriteRegister[R reg.WritableRegister](d *Driver, r R) (Status, error) {
	return d.WriteState(reg.StateOf(r))
}
