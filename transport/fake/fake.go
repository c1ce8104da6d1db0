// Package fake provides in-memory SPI transports for exercising the driver:
// a simulated TMC5130 (Chip) and a scripted recorder (Script).
package fake

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInjected is returned by a transport's failing transaction.
var ErrInjected = errors.New("fake: injected transport failure")

const writeBit = 0x80

// Transfer is one transaction as seen on the wire.
type Transfer struct {
	Sent     [5]byte
	Received [5]byte
}

// Addr returns the address byte sent, write bit included.
func (t Transfer) Addr() byte { return t.Sent[0] }

// IsWrite reports whether the write bit was set.
func (t Transfer) IsWrite() bool { return t.Sent[0]&writeBit != 0 }

// Word returns the data word sent.
func (t Transfer) Word() uint32 { return binary.BigEndian.Uint32(t.Sent[1:]) }

// Status returns the status byte received.
func (t Transfer) Status() byte { return t.Received[0] }

// Reply returns the data word received.
func (t Transfer) Reply() uint32 { return binary.BigEndian.Uint32(t.Received[1:]) }

func (t Transfer) String() string {
	return fmt.Sprintf("%02x:%08x -> %02x:%08x", t.Addr(), t.Word(), t.Status(), t.Reply())
}

// gather concatenates the transaction buffers into one 5-byte frame.
func gather(bufs [][]byte) ([5]byte, error) {
	var f [5]byte
	n := 0
	for _, b := range bufs {
		if n+len(b) > len(f) {
			return f, fmt.Errorf("fake: transaction longer than %d bytes", len(f))
		}
		n += copy(f[n:], b)
	}
	if n != len(f) {
		return f, fmt.Errorf("fake: transaction of %d bytes, want %d", n, len(f))
	}
	return f, nil
}

// scatter copies a received frame back into the transaction buffers.
func scatter(f [5]byte, bufs [][]byte) {
	n := 0
	for _, b := range bufs {
		n += copy(b, f[n:])
	}
}
