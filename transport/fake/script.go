package fake

// Script is a transport that answers each transaction with the next scripted
// reply and records what was sent. Once the replies run out it answers with
// zeros.
type Script struct {
	Replies [][5]byte
	// FailAt makes the transaction with that 1-based number fail with Err,
	// or ErrInjected when Err is nil.
	FailAt  int
	Err     error
	Log     []Transfer

	attempts int
}

// Reply builds a scripted reply from a status byte and data word.
func Reply(status byte, word uint32) [5]byte {
	return [5]byte{status, byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
}

// Attempts returns how many transactions were started.
func (s *Script) Attempts() int { return s.attempts }

// Transaction implements driver.Transport.
func (s *Script) Transaction(bufs ...[]byte) error {
	s.attempts++
	if s.FailAt == s.attempts {
		if s.Err != nil {
			return s.Err
		}
		return ErrInjected
	}
	sent, err := gather(bufs)
	if err != nil {
		return err
	}
	var recv [5]byte
	if i := len(s.Log); i < len(s.Replies) {
		recv = s.Replies[i]
	}
	scatter(recv, bufs)
	s.Log = append(s.Log, Transfer{Sent: sent, Received: recv})
	return nil
}
