package driver

import (
	"fmt"

	"tmc5130/reg"
)

// Refresh reads the registers at addrs in one bulk sequence and stores them
// in m. With no addrs every readable register is read. m is only updated when
// the whole sequence succeeds.
func (d *Driver) Refresh(m *reg.Map, addrs ...reg.Address) (Status, error) {
	if len(addrs) == 0 {
		for _, a := range reg.All {
			if a.Readable() {
				addrs = append(addrs, a)
			}
		}
	}
	if err := checkAddrs(addrs); err != nil {
		return 0, err
	}
	states := make([]reg.State, len(addrs))
	actions := make([]Action, len(addrs))
	for i, a := range addrs {
		states[i] = m.State(a)
		actions[i] = Read(&states[i])
	}
	status, err := d.BulkRegisterAction(actions)
	if err != nil {
		return 0, err
	}
	for _, s := range states {
		if err := m.SetState(s); err != nil {
			return status, err
		}
	}
	return status, nil
}

// Flush writes the registers at addrs from m in one bulk sequence.
func (d *Driver) Flush(m *reg.Map, addrs ...reg.Address) (Status, error) {
	if err := checkAddrs(addrs); err != nil {
		return 0, err
	}
	actions := make([]Action, len(addrs))
	for i, a := range addrs {
		actions[i] = Write(m.State(a))
	}
	return d.BulkRegisterAction(actions)
}

func checkAddrs(addrs []reg.Address) error {
	for _, a := range addrs {
		if !a.Valid() {
			return fmt.Errorf("%w: 0x%02x", reg.ErrUnknownAddress, uint8(a))
		}
	}
	return nil
}
