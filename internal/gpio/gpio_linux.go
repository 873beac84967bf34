//go:build linux

package gpio

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"
)

var errClosed = errors.New("gpio: line closed")

// requestLine finds the BCM pin by name on the first chip that has it and
// requests it with opts.
func requestLine(pin int, opts ...gpiocdev.LineReqOption) (*gpiocdev.Chip, *gpiocdev.Line, error) {
	if pin <= 0 {
		return nil, nil, fmt.Errorf("gpio: invalid pin %d", pin)
	}
	lineName := LineName(pin)

	for _, chipPath := range chipCandidates("/dev") {
		chip, err := gpiocdev.NewChip(chipPath)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset, opts...)
		if err != nil {
			_ = chip.Close()
			continue
		}
		return chip, line, nil
	}
	return nil, nil, fmt.Errorf("gpio: line %q not found (or busy)", lineName)
}

// Output is a push-pull output line, used as the active-low chip-select.
type Output struct {
	mu   sync.Mutex
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// OpenChipSelect requests pin as an output, initially high (deasserted).
func OpenChipSelect(pin int, consumer string) (*Output, error) {
	chip, line, err := requestLine(pin, gpiocdev.AsOutput(1), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, err
	}
	return &Output{chip: chip, line: line}, nil
}

func (o *Output) High() error { return o.set(1) }
func (o *Output) Low() error  { return o.set(0) }

func (o *Output) set(v int) error {
	if o == nil {
		return errClosed
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.line == nil {
		return errClosed
	}
	return o.line.SetValue(v)
}

// Close leaves the line deasserted and releases it.
func (o *Output) Close() error {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.line == nil {
		return nil
	}
	_ = o.line.SetValue(1)
	err := o.line.Close()
	o.line = nil
	if o.chip != nil {
		_ = o.chip.Close()
		o.chip = nil
	}
	return err
}

// Alert watches the open-drain ALERT output for falling edges.
type Alert struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line

	events    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// OpenAlert requests pin as a pulled-up input with falling-edge detection.
func OpenAlert(pin int, consumer string) (*Alert, error) {
	a := newAlert()
	chip, line, err := requestLine(pin,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(a.handle),
		gpiocdev.WithConsumer(consumer),
	)
	if err != nil {
		return nil, err
	}
	a.chip = chip
	a.line = line
	return a, nil
}

func newAlert() *Alert {
	return &Alert{events: make(chan struct{}, 1), done: make(chan struct{})}
}

// handle coalesces edges that arrive before the consumer calls Wait.
func (a *Alert) handle(evt gpiocdev.LineEvent) {
	if evt.Type != gpiocdev.LineEventFallingEdge {
		return
	}
	a.notify()
}

func (a *Alert) notify() {
	select {
	case a.events <- struct{}{}:
	default:
	}
}

// Wait blocks until the next ALERT assertion, ctx is done, or the line is
// closed.
func (a *Alert) Wait(ctx context.Context) error {
	select {
	case <-a.events:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-a.done:
		return errClosed
	}
}

func (a *Alert) Close() error {
	if a == nil {
		return nil
	}
	var err error
	a.closeOnce.Do(func() {
		close(a.done)
		if a.line != nil {
			err = a.line.Close()
		}
		if a.chip != nil {
			_ = a.chip.Close()
		}
	})
	return err
}
