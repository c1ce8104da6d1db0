package fake

import (
	"encoding/binary"

	"tmc5130/reg"
)

// Chip simulates the register file and SPI behaviour of a TMC5130.
//
// A read request arms the word returned in the next transaction's data phase.
// A write stores the word and arms it as the next reply. The status byte is
// built from the current register contents the way SPI_STATUS is.
// The zero value is not usable; call NewChip.
type Chip struct {
	// Regs is the register file.
	Regs   *reg.Map
	// FailAt makes the transaction with that 1-based number fail with
	// ErrInjected without touching the chip. Zero disables it.
	FailAt int
	// Log holds every completed transaction.
	Log    []Transfer

	attempts int
	pending  uint32
}

// NewChip returns a chip in its power-on state.
func NewChip() *Chip {
	return &Chip{Regs: reg.NewMap()}
}

// Attempts returns how many transactions were started, failed ones included.
func (c *Chip) Attempts() int { return c.attempts }

// Transaction implements driver.Transport.
func (c *Chip) Transaction(bufs ...[]byte) error {
	c.attempts++
	if c.FailAt == c.attempts {
		return ErrInjected
	}
	sent, err := gather(bufs)
	if err != nil {
		return err
	}

	var recv [5]byte
	recv[0] = c.status()
	binary.BigEndian.PutUint32(recv[1:], c.pending)

	addr := reg.Address(sent[0] &^ writeBit)
	word := binary.BigEndian.Uint32(sent[1:])
	switch {
	case sent[0]&writeBit != 0:
		if err := c.write(addr, word); err != nil {
			return err
		}
		c.pending = word
	case addr.Readable():
		c.pending = c.Regs.State(addr).Word()
	default:
		c.pending = 0
	}

	scatter(recv, bufs)
	c.Log = append(c.Log, Transfer{Sent: sent, Received: recv})
	return nil
}

// write-1-to-clear registers
var clearOnWrite = map[reg.Address]bool{
	reg.AddrGStat:     true,
	reg.AddrRampStat:  true,
	reg.AddrEncStatus: true,
}

func (c *Chip) write(addr reg.Address, word uint32) error {
	if !addr.Writable() {
		return nil
	}
	if clearOnWrite[addr] {
		word = c.Regs.State(addr).Word() &^ word
	}
	return c.Regs.SetState(reg.FromAddrAndData(addr, word))
}

// status assembles SPI_STATUS from GSTAT, DRV_STATUS and RAMP_STAT.
func (c *Chip) status() byte {
	gstat := reg.Get[reg.GStat](c.Regs)
	drv := reg.Get[reg.DrvStatus](c.Regs)
	ramp := reg.Get[reg.RampStat](c.Regs)
	var s byte
	set := func(bit uint, on bool) {
		if on {
			s |= 1 << bit
		}
	}
	set(0, gstat.Reset())
	set(1, gstat.DrvErr())
	set(2, drv.Stallguard())
	set(3, drv.Stst())
	set(4, ramp.VelocityReached())
	set(5, ramp.PositionReached())
	set(6, ramp.StatusStopL())
	set(7, ramp.StatusStopR())
	return s
}
