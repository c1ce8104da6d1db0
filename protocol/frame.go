package protocol

import (
	"errors"
	"fmt"
)

var ErrBadFrame = errors.New("bad frame")

// Message is one decoded frame. An empty payload is an ack or nak.
type Message struct {
	Seq     uint8
	Payload []byte
}

func (m Message) IsAck() bool { return len(m.Payload) == 0 }

// AppendFrame appends a complete frame carrying payload to dst.
func AppendFrame(dst []byte, seq uint8, payload []byte) ([]byte, error) {
	if len(payload) > PayloadMax {
		return dst, fmt.Errorf("%w: payload of %d bytes, max %d", ErrBadFrame, len(payload), PayloadMax)
	}
	start := len(dst)
	dst = append(dst, byte(len(payload)+FrameMin), seq&SeqMask|DestBit)
	dst = append(dst, payload...)
	crc := CRC16(dst[start:])
	return append(dst, byte(crc>>8), byte(crc), SyncByte), nil
}

// Scanner splits a byte stream into frames. After a corrupt frame it
// discards input up to the next sync byte.
type Scanner struct {
	buf    []byte
	synced bool
	// Dropped counts bytes discarded while resynchronizing.
	Dropped int
}

func NewScanner() *Scanner { return &Scanner{synced: true} }

// Write buffers p. It never fails.
func (s *Scanner) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Buffered returns the number of bytes not yet consumed.
func (s *Scanner) Buffered() int { return len(s.buf) }

// Next returns the next complete frame, if one is buffered.
func (s *Scanner) Next() (Message, bool) {
	for len(s.buf) > 0 {
		if !s.synced {
			i := 0
			for i < len(s.buf) && s.buf[i] != SyncByte {
				i++
			}
			if i == len(s.buf) {
				s.drop(i)
				return Message{}, false
			}
			s.drop(i + 1)
			s.synced = true
			continue
		}
		if s.buf[0] == SyncByte {
			s.buf = s.buf[1:]
			continue
		}
		if len(s.buf) < FrameMin {
			break
		}
		n := int(s.buf[0])
		if n < FrameMin || n > FrameMax || s.buf[1]&^SeqMask != DestBit {
			s.resync("bad header % x", s.buf[:2])
			continue
		}
		if len(s.buf) < n {
			break
		}
		if s.buf[n-1] != SyncByte {
			s.resync("missing sync byte")
			continue
		}
		if crc := CRC16(s.buf[:n-TrailerSize]); s.buf[n-3] != byte(crc>>8) || s.buf[n-2] != byte(crc) {
			s.resync("crc mismatch")
			continue
		}
		m := Message{
			Seq:     s.buf[1],
			Payload: append([]byte(nil), s.buf[HeaderSize:n-TrailerSize]...),
		}
		s.buf = s.buf[n:]
		return m, true
	}
	return Message{}, false
}

func (s *Scanner) drop(n int) {
	s.Dropped += n
	s.buf = s.buf[n:]
}

func (s *Scanner) resync(format string, args ...interface{}) {
	lg.Warnf("resync: "+format, args...)
	s.synced = false
}
