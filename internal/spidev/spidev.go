// Package spidev provides a full-duplex SPI transport on top of the Linux
// spidev character device.
package spidev

import "fmt"

const (
	modeCPHA = 0x01
	modeCPOL = 0x02
	modeNoCS = 0x40

	// spidev's default bufsiz.
	maxTransfer = 4096
)

type Config struct {
	// Mode is the SPI mode number 0..3 (CPOL<<1 | CPHA).
	Mode uint8
	// SpeedHz is the maximum clock rate.
	SpeedHz uint32
	// BitsPerWord defaults to 8.
	BitsPerWord uint8
	// NoCS stops the kernel from driving its chip-select, for use with a
	// GPIO chip-select.
	NoCS bool
}

func (c Config) withDefaults() Config {
	if c.SpeedHz == 0 {
		c.SpeedHz = 1_000_000
	}
	if c.BitsPerWord == 0 {
		c.BitsPerWord = 8
	}
	return c
}

func (c Config) validate() error {
	if c.Mode > 3 {
		return fmt.Errorf("spidev: invalid mode %d", c.Mode)
	}
	return nil
}

// modeBits is the value written with SPI_IOC_WR_MODE.
func (c Config) modeBits() uint8 {
	m := c.Mode & (modeCPOL | modeCPHA)
	if c.NoCS {
		m |= modeNoCS
	}
	return m
}

// KernelCS satisfies a chip-select interface when the spidev driver
// asserts the hardware CS around each transfer itself.
type KernelCS struct{}

func (KernelCS) High() error { return nil }
func (KernelCS) Low() error  { return nil }
