package protocol

import (
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrTimeout = errors.New("timeout")

// LinkConfig tunes a Link.
type LinkConfig struct {
	// Timeout bounds the wait for an ack or a response.
	Timeout time.Duration
	// Retries is how many times a frame is resent after a nak.
	Retries int
}

// DefaultLinkConfig returns the settings used against Klipper MCUs.
func DefaultLinkConfig() LinkConfig {
	return LinkConfig{
		Timeout: 2 * time.Second,
		Retries: 3,
	}
}

// Link is a synchronous host connection to an MCU. It sends one frame at a
// time and waits for the MCU to acknowledge it with the next sequence number.
// Frames received while waiting are kept until Receive claims them.
// A Link is not safe for concurrent use.
type Link struct {
	rw      io.ReadWriter
	cfg     LinkConfig
	seq     uint8
	scan    *Scanner
	rbuf    [256]byte
	wbuf    []byte
	pending []Message
}

// NewLink starts a link at the initial sequence number, which an MCU takes
// as a host reset.
func NewLink(rw io.ReadWriter, cfg LinkConfig) *Link {
	return &Link{rw: rw, cfg: cfg, seq: DestBit, scan: NewScanner()}
}

// Seq returns the sequence number of the next frame to send.
func (l *Link) Seq() uint8 { return l.seq }

// Send writes payload as one frame and waits for its ack. A nak makes the
// frame go out again under the sequence number the MCU asked for.
func (l *Link) Send(payload []byte) error {
	deadline := time.Now().Add(l.cfg.Timeout)
	for attempt := 0; attempt <= l.cfg.Retries; attempt++ {
		frame, err := AppendFrame(l.wbuf[:0], l.seq, payload)
		if err != nil {
			return err
		}
		l.wbuf = frame
		if _, err := l.rw.Write(frame); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		want := NextSeq(l.seq)
		got, err := l.waitAck(deadline)
		if err != nil {
			return fmt.Errorf("waiting for ack 0x%02x: %w", want, err)
		}
		if got == want {
			l.seq = want
			return nil
		}
		lg.Warnf("nak: got seq 0x%02x, want 0x%02x", got, want)
		l.seq = got
	}
	return fmt.Errorf("frame not acknowledged after %d attempts", l.cfg.Retries+1)
}

// waitAck returns the sequence number of the next ack, queueing other frames.
func (l *Link) waitAck(deadline time.Time) (uint8, error) {
	for {
		m, err := l.next(deadline)
		if err != nil {
			return 0, err
		}
		if m.IsAck() {
			return m.Seq, nil
		}
		l.pending = append(l.pending, m)
	}
}

// Receive returns the first frame for which match reports true, waiting up
// to the link timeout. Frames that do not match stay queued.
func (l *Link) Receive(match func(Message) bool) (Message, error) {
	deadline := time.Now().Add(l.cfg.Timeout)
	for i, m := range l.pending {
		if match(m) {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return m, nil
		}
	}
	for {
		m, err := l.next(deadline)
		if err != nil {
			return Message{}, err
		}
		if m.IsAck() {
			continue
		}
		if match(m) {
			return m, nil
		}
		l.pending = append(l.pending, m)
	}
}

// Drain discards queued frames.
func (l *Link) Drain() int {
	n := len(l.pending)
	l.pending = l.pending[:0]
	return n
}

// next reads until a frame is available. Reads returning io.EOF are taken as
// a serial read timeout with no data.
func (l *Link) next(deadline time.Time) (Message, error) {
	for {
		if m, ok := l.scan.Next(); ok {
			return m, nil
		}
		if !time.Now().Before(deadline) {
			return Message{}, ErrTimeout
		}
		n, err := l.rw.Read(l.rbuf[:])
		if n > 0 {
			l.scan.Write(l.rbuf[:n])
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return Message{}, fmt.Errorf("read: %w", err)
		}
	}
}
