//go:build !linux

package gpio

import (
	"context"
	"fmt"
)

type Output struct{}

func OpenChipSelect(pin int, consumer string) (*Output, error) {
	return nil, fmt.Errorf("gpio: unsupported OS (need linux)")
}

func (o *Output) High() error  { return fmt.Errorf("gpio: unsupported OS") }
func (o *Output) Low() error   { return fmt.Errorf("gpio: unsupported OS") }
func (o *Output) Close() error { return nil }

type Alert struct{}

func OpenAlert(pin int, consumer string) (*Alert, error) {
	return nil, fmt.Errorf("gpio: unsupported OS (need linux)")
}

func (a *Alert) Wait(ctx context.Context) error { return fmt.Errorf("gpio: unsupported OS") }
func (a *Alert) Close() error                   { return nil }
