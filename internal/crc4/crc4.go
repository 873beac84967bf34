// Package crc4 implements the 4-bit CRC carried in the low nibble of every
// TMAG5170 SPI frame.
//
// Parameters: width=4, poly=0x3 (x^4+x+1), init=0xF, no reflection,
// xorout=0x0. The register is kept left-aligned in a byte so a single
// 256-entry table can process whole bytes.
package crc4

const (
	Poly   = 0x03
	Init   = 0x0F
	XorOut = 0x00

	// Mask selects the CRC nibble of a frame's last byte.
	Mask = 0x0F
)

// CRC is a resettable CRC-4 accumulator. The zero value is not ready for
// use; call Reset (or use New) first.
type CRC struct {
	reg byte
}

func New() *CRC {
	c := &CRC{}
	c.Reset()
	return c
}

// Reset loads the initial register value.
func (c *CRC) Reset() {
	c.reg = Init << 4
}

// Update feeds p into the checksum, MSB first. It may be called any number
// of times between Reset and Finish.
func (c *CRC) Update(p []byte) {
	reg := c.reg
	for _, b := range p {
		reg = crc4Table[reg^b]
	}
	c.reg = reg
}

// Finish returns the 4-bit remainder. It does not reset the accumulator.
func (c *CRC) Finish() byte {
	return (c.reg>>4 ^ XorOut) & Mask
}

// Checksum computes the CRC-4 of p in one call.
func Checksum(p []byte) byte {
	var c CRC
	c.Reset()
	c.Update(p)
	return c.Finish()
}

var crc4Table = func() [256]byte {
	var table [256]byte
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for bit := 0; bit < 8; bit++ {
			if (crc & 0x80) != 0 {
				crc = (crc << 1) ^ (Poly << 4)
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()
