package protocol

import "errors"

var (
	ErrInvalidVLQ     = errors.New("invalid VLQ encoding")
	ErrBufferTooSmall = errors.New("buffer too small for VLQ")
)

// AppendVLQInt appends v in Klipper's variable length encoding, most
// significant group first. Values in [-32, 96) take one byte.
func AppendVLQInt(dst []byte, v int32) []byte {
	if !(-(1<<26) <= v && v < (3<<26)) {
		dst = append(dst, byte((v>>28)&0x7F)|0x80)
	}
	if !(-(1<<19) <= v && v < (3<<19)) {
		dst = append(dst, byte((v>>21)&0x7F)|0x80)
	}
	if !(-(1<<12) <= v && v < (3<<12)) {
		dst = append(dst, byte((v>>14)&0x7F)|0x80)
	}
	if !(-(1<<5) <= v && v < (3<<5)) {
		dst = append(dst, byte((v>>7)&0x7F)|0x80)
	}
	return append(dst, byte(v&0x7F))
}

func AppendVLQUint(dst []byte, v uint32) []byte {
	return AppendVLQInt(dst, int32(v))
}

// AppendVLQBytes appends b with a VLQ length prefix.
func AppendVLQBytes(dst []byte, b []byte) []byte {
	dst = AppendVLQUint(dst, uint32(len(b)))
	return append(dst, b...)
}

// Reader decodes VLQ arguments from a payload.
type Reader struct {
	data []byte
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.data) }

func (r *Reader) Int() (int32, error) {
	if len(r.data) == 0 {
		return 0, ErrBufferTooSmall
	}
	c := uint32(r.data[0])
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	n := 1
	for c&0x80 != 0 {
		if n == 5 {
			return 0, ErrInvalidVLQ
		}
		if n == len(r.data) {
			return 0, ErrBufferTooSmall
		}
		c = uint32(r.data[n])
		v = v<<7 | c&0x7F
		n++
	}
	r.data = r.data[n:]
	return int32(v), nil
}

func (r *Reader) Uint() (uint32, error) {
	v, err := r.Int()
	return uint32(v), err
}

// Bytes reads a length-prefixed byte string. The result aliases the payload.
func (r *Reader) Bytes() ([]byte, error) {
	saved := r.data
	n, err := r.Uint()
	if err != nil {
		return nil, err
	}
	if uint32(len(r.data)) < n {
		r.data = saved
		return nil, ErrBufferTooSmall
	}
	b := r.data[:n:n]
	r.data = r.data[n:]
	return b, nil
}
