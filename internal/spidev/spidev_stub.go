//go:build !linux

package spidev

import "fmt"

type Conn struct{}

func Open(path string, cfg Config) (*Conn, error) {
	return nil, fmt.Errorf("spidev: unsupported OS (need linux)")
}

func (c *Conn) Path() string        { return "" }
func (c *Conn) Close() error        { return nil }
func (c *Conn) Tx(buf []byte) error { return fmt.Errorf("spidev: unsupported OS") }
