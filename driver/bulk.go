package driver

import "tmc5130/reg"

// Action is one step of a bulk sequence.
type Action struct {
	state *reg.State
	write bool
}

// Read returns an action that reads the register at s's address into s.
func Read(s *reg.State) Action { return Action{state: s} }

// Write returns an action that writes s.
func Write(s reg.State) Action { return Action{state: &s, write: true} }

// IsWrite reports whether the action writes.
func (a Action) IsWrite() bool { return a.write }

// State returns the action's state. For a read it is the caller's state.
func (a Action) State() *reg.State { return a.state }

func (a Action) frame() (byte, uint32) {
	if a.write {
		return writeFrame(a.state.Addr()), a.state.Word()
	}
	return readFrame(a.state.Addr()), 0
}

// resolve stores a word clocked back for the action if it is a read.
func (a Action) resolve(word uint32) {
	if !a.write {
		*a.state = reg.FromAddrAndData(a.state.Addr(), word)
	}
}

// BulkRegisterAction runs actions as one pipelined stream. Transaction i
// sends action i and carries back the word requested by action i-1, so a
// sequence of N actions costs N transactions, plus one trailing read when the
// last action is a read. A read's state is updated as soon as its word
// arrives.
//
// The returned status comes from the last transaction sent. A transport
// error stops the sequence at once; reads not yet resolved keep the state
// they had.
func (d *Driver) BulkRegisterAction(actions []Action) (Status, error) {
	var status Status
	for i, a := range actions {
		frame, word := a.frame()
		st, reply, err := d.transact(frame, word)
		if err != nil {
			return 0, err
		}
		status = st
		if i > 0 {
			actions[i-1].resolve(reply)
		}
	}

	n := len(actions)
	if n == 0 || actions[n-1].write {
		return status, nil
	}
	last := actions[n-1]
	frame, _ := last.frame()
	st, reply, err := d.transact(frame, 0)
	if err != nil {
		return 0, err
	}
	last.resolve(reply)
	return st, nil
}
