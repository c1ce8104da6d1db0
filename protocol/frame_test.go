package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestAppendFrame(t *testing.T) {
	frame, err := AppendFrame(nil, 0x10, []byte{1, 0, 40})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{8, 0x10, 1, 0, 40, 0x5E, 0x9F, SyncByte}
	if !bytes.Equal(frame, want) {
		t.Errorf("frame = % x, want % x", frame, want)
	}

	ack, _ := AppendFrame(nil, 0x11, nil)
	if !bytes.Equal(ack, []byte{5, 0x11, 0x8F, 0x08, SyncByte}) {
		t.Errorf("ack = % x", ack)
	}

	if _, err := AppendFrame(nil, 0x10, make([]byte, PayloadMax+1)); !errors.Is(err, ErrBadFrame) {
		t.Errorf("oversized payload: err = %v, want ErrBadFrame", err)
	}
}

func TestNextSeq(t *testing.T) {
	if NextSeq(0x10) != 0x11 || NextSeq(0x1F) != 0x10 {
		t.Errorf("NextSeq wraps wrong: %02x %02x", NextSeq(0x10), NextSeq(0x1F))
	}
}

func TestScannerSplitsStream(t *testing.T) {
	a, _ := AppendFrame(nil, 0x11, []byte{0x07, 0x01})
	b, _ := AppendFrame(nil, 0x12, nil)
	stream := append(append([]byte{SyncByte}, a...), b...)

	s := NewScanner()
	// byte at a time
	var got []Message
	for _, c := range stream {
		s.Write([]byte{c})
		for {
			m, ok := s.Next()
			if !ok {
				break
			}
			got = append(got, m)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0].Seq != 0x11 || !bytes.Equal(got[0].Payload, []byte{0x07, 0x01}) {
		t.Errorf("first = %+v", got[0])
	}
	if !got[1].IsAck() || got[1].Seq != 0x12 {
		t.Errorf("second = %+v, want ack 0x12", got[1])
	}
}

func TestScannerResyncsAfterCorruption(t *testing.T) {
	good, _ := AppendFrame(nil, 0x13, []byte{0x2A})
	bad := append([]byte(nil), good...)
	bad[2] ^= 0xFF

	s := NewScanner()
	s.Write(bad)
	s.Write([]byte{0x01, 0x02, SyncByte})
	s.Write(good)

	m, ok := s.Next()
	if !ok {
		t.Fatal("no frame after corruption")
	}
	if m.Seq != 0x13 || !bytes.Equal(m.Payload, []byte{0x2A}) {
		t.Errorf("frame = %+v", m)
	}
	if s.Dropped == 0 {
		t.Error("corrupt bytes not counted as dropped")
	}
	if s.Buffered() != 0 {
		t.Errorf("%d bytes left buffered", s.Buffered())
	}
}

func TestScannerWaitsForFullFrame(t *testing.T) {
	f, _ := AppendFrame(nil, 0x10, []byte{1, 2, 3})
	s := NewScanner()
	s.Write(f[:4])
	if _, ok := s.Next(); ok {
		t.Fatal("frame returned before it was complete")
	}
	s.Write(f[4:])
	if _, ok := s.Next(); !ok {
		t.Fatal("complete frame not returned")
	}
}
