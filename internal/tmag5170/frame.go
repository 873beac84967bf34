package tmag5170

import (
	"encoding/binary"

	"tmag5170-ng/internal/crc4"
)

// Frame layout (MSB first):
//
//	byte 0: register address | read flag (bit 7); 0x80 for the special read
//	byte 1: data high / 0 / packed nibbles
//	byte 2: data low  / 0 / packed nibbles
//	byte 3: command (bits 7..4) | CRC-4 (bits 3..0)
const (
	FrameLen = 4

	addrMask    = 0x7F
	readFlag    = 0x80
	specialAddr = 0x80
	cmdShift    = 4
)

// Frame is one SPI exchange. The transport overwrites it in place.
type Frame [FrameLen]byte

// Command is the 4-bit command field of byte 3.
type Command byte

const (
	CmdNone Command = 0x0
	// CmdConvStart starts a conversion when TRIGGER_MODE selects SPI commands.
	CmdConvStart Command = 0x1
)

func writeFrame(reg Register, value uint16, cmd Command) Frame {
	var f Frame
	f[0] = reg.Addr()
	binary.BigEndian.PutUint16(f[1:3], value)
	f[3] = byte(cmd) << cmdShift
	return f
}

func readFrame(reg Register, cmd Command) Frame {
	var f Frame
	f[0] = reg.Addr() | readFlag
	f[3] = byte(cmd) << cmdShift
	return f
}

func specialFrame(cmd Command) Frame {
	var f Frame
	f[0] = specialAddr
	f[3] = byte(cmd) << cmdShift
	return f
}

// Command returns the high nibble of byte 3.
func (f Frame) Command() Command { return Command(f[3] >> cmdShift) }

// CRC returns the low nibble of byte 3.
func (f Frame) CRC() byte { return f[3] & crc4.Mask }

// Value decodes bytes 1..2 as a big-endian register value.
func (f Frame) Value() uint16 { return binary.BigEndian.Uint16(f[1:3]) }

// Pair decodes the two 12-bit results packed by the special read.
func (f Frame) Pair() (first, second uint16) {
	first = uint16(f[1])<<4 | uint16(f[2]&0x0F)
	second = uint16(f[0])<<4 | uint16(f[2]>>4)
	return first, second
}

// seal computes the CRC over the frame with a zero CRC nibble and stores it.
func (f *Frame) seal(c *crc4.CRC) {
	f[3] &^= crc4.Mask
	c.Reset()
	c.Update(f[:])
	f[3] |= c.Finish()
}

// check extracts the device CRC, zeroes it in place and recomputes.
func (f *Frame) check(c *crc4.CRC) (got, want byte, ok bool) {
	got = f.CRC()
	f[3] &^= crc4.Mask
	c.Reset()
	c.Update(f[:])
	want = c.Finish()
	return got, want, got == want
}
