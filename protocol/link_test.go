package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

// mcuPort acks every frame in sequence and runs respond on its payload.
type mcuPort struct {
	scan    *Scanner
	out     bytes.Buffer
	next    uint8
	respond func(payload []byte) [][]byte
	// acks to swallow before answering
	mute int
	// naks to send before accepting a frame
	naks int
	frames []Message
}

func newMCUPort() *mcuPort { return &mcuPort{scan: NewScanner(), next: DestBit} }

func (p *mcuPort) Write(b []byte) (int, error) {
	p.scan.Write(b)
	for {
		m, ok := p.scan.Next()
		if !ok {
			return len(b), nil
		}
		p.frames = append(p.frames, m)
		if p.mute > 0 {
			p.mute--
			continue
		}
		if p.naks > 0 || m.Seq != p.next {
			if p.naks > 0 {
				p.naks--
			}
			ack, _ := AppendFrame(nil, p.next, nil)
			p.out.Write(ack)
			continue
		}
		p.next = NextSeq(p.next)
		var resp [][]byte
		if p.respond != nil {
			resp = p.respond(m.Payload)
		}
		for _, r := range resp {
			f, _ := AppendFrame(nil, p.next, r)
			p.out.Write(f)
		}
		ack, _ := AppendFrame(nil, p.next, nil)
		p.out.Write(ack)
	}
}

func (p *mcuPort) Read(b []byte) (int, error) {
	if p.out.Len() == 0 {
		return 0, io.EOF
	}
	return p.out.Read(b)
}

func testConfig() LinkConfig {
	return LinkConfig{Timeout: 50 * time.Millisecond, Retries: 2}
}

func TestLinkSendAdvancesSequence(t *testing.T) {
	port := newMCUPort()
	l := NewLink(port, testConfig())
	for i := 0; i < 18; i++ {
		if err := l.Send([]byte{0x05}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	if l.Seq() != 0x12 {
		t.Errorf("seq = 0x%02x after 18 frames, want 0x12", l.Seq())
	}
	if port.frames[16].Seq != 0x10 {
		t.Errorf("frame 16 seq = 0x%02x, want wrap to 0x10", port.frames[16].Seq)
	}
}

func TestLinkReceive(t *testing.T) {
	port := newMCUPort()
	port.respond = func(p []byte) [][]byte {
		return [][]byte{{0x09, p[0]}, {0x00, p[0]}}
	}
	l := NewLink(port, testConfig())
	if err := l.Send([]byte{0x2A}); err != nil {
		t.Fatal(err)
	}
	m, err := l.Receive(func(m Message) bool { return m.Payload[0] == 0x00 })
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(m.Payload, []byte{0x00, 0x2A}) {
		t.Errorf("payload = % x", m.Payload)
	}
	if n := l.Drain(); n != 1 {
		t.Errorf("drained %d, want the unmatched response", n)
	}
}

func TestLinkTimeout(t *testing.T) {
	port := newMCUPort()
	port.mute = 10
	l := NewLink(port, testConfig())
	if err := l.Send([]byte{0x01}); !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
	if _, err := l.Receive(func(Message) bool { return true }); !errors.Is(err, ErrTimeout) {
		t.Errorf("receive err = %v, want ErrTimeout", err)
	}
}

func TestLinkRetransmitsOnNak(t *testing.T) {
	port := newMCUPort()
	port.naks = 1
	l := NewLink(port, testConfig())
	if err := l.Send([]byte{0x01}); err != nil {
		t.Fatal(err)
	}
	if len(port.frames) != 2 {
		t.Errorf("%d frames sent, want a retransmit", len(port.frames))
	}

	port.naks = 5
	if err := l.Send([]byte{0x01}); err == nil {
		t.Error("expected failure after retries ran out")
	}
}

func TestLinkAdoptsMCUSequence(t *testing.T) {
	port := newMCUPort()
	port.next = 0x15
	l := NewLink(port, testConfig())
	if err := l.Send([]byte{0x01}); err != nil {
		t.Fatal(err)
	}
	if l.Seq() != 0x16 {
		t.Errorf("seq = 0x%02x, want 0x16", l.Seq())
	}
}
