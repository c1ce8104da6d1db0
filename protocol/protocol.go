// Package protocol implements the host side of the Klipper serial protocol:
// VLQ argument encoding, CRC16 framed messages and a synchronous link that
// sends a frame and waits for its acknowledgement.
package protocol

import logger "github.com/d2r2/go-logger"

var lg = logger.NewPackageLogger("protocol", logger.InfoLevel)

// Frame layout: length, sequence, payload, crc hi, crc lo, sync.
const (
	HeaderSize  = 2
	TrailerSize = 3
	FrameMin    = HeaderSize + TrailerSize
	FrameMax    = 64
	PayloadMax  = FrameMax - FrameMin

	SyncByte = 0x7E
	DestBit  = 0x10
	SeqMask  = 0x0F
)

// NextSeq returns the sequence byte that follows seq.
func NextSeq(seq uint8) uint8 {
	return (seq+1)&SeqMask | DestBit
}
