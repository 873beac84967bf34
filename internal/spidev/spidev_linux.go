//go:build linux

package spidev

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Minimal Linux SPI implementation backed by /dev/spidevB.C.
//
// Each Tx is one SPI_IOC_MESSAGE(1) ioctl, so the kernel keeps its own CS
// asserted for exactly one transfer (unless NoCS is set and an external
// GPIO chip-select is used).

const (
	spiIocWrMode        = 0x40016B01
	spiIocWrBitsPerWord = 0x40016B03
	spiIocWrMaxSpeedHz  = 0x40046B04
	spiIocMessage1      = 0x40206B00
)

// spi_ioc_transfer from <linux/spi/spidev.h>.
type iocTransfer struct {
	txBuf       uint64
	rxBuf       uint64
	len         uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	txNbits     uint8
	rxNbits     uint8
	wordDelay   uint8
	pad         uint8
}

// Conn is an opened spidev node.
//
// Conn is not safe for concurrent transfers.
type Conn struct {
	f    *os.File
	path string
	cfg  Config
}

func Open(path string, cfg Config) (*Conn, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	c := &Conn{f: f, path: path, cfg: cfg}

	mode := cfg.modeBits()
	if err := c.ioctl(spiIocWrMode, unsafe.Pointer(&mode)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("spidev: set mode 0x%02X on %s: %w", mode, path, err)
	}
	bits := cfg.BitsPerWord
	if err := c.ioctl(spiIocWrBitsPerWord, unsafe.Pointer(&bits)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("spidev: set bits per word %d on %s: %w", bits, path, err)
	}
	speed := cfg.SpeedHz
	if err := c.ioctl(spiIocWrMaxSpeedHz, unsafe.Pointer(&speed)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("spidev: set speed %d Hz on %s: %w", speed, path, err)
	}
	return c, nil
}

func (c *Conn) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

func (c *Conn) Close() error {
	if c == nil || c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}

// Tx clocks buf out and overwrites it with the bytes clocked in.
func (c *Conn) Tx(buf []byte) error {
	if c == nil || c.f == nil {
		return errors.New("spidev: conn is closed")
	}
	if len(buf) == 0 {
		return nil
	}
	if len(buf) > maxTransfer {
		return fmt.Errorf("spidev: transfer of %d bytes exceeds %d", len(buf), maxTransfer)
	}

	p := uint64(uintptr(unsafe.Pointer(&buf[0])))
	tr := iocTransfer{
		txBuf:       p,
		rxBuf:       p,
		len:         uint32(len(buf)),
		speedHz:     c.cfg.SpeedHz,
		bitsPerWord: c.cfg.BitsPerWord,
	}
	err := c.ioctl(spiIocMessage1, unsafe.Pointer(&tr))
	runtime.KeepAlive(buf)
	return err
}

func (c *Conn) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, c.f.Fd(), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
