// Package monitor samples a TMAG5170 continuously, paced by its ALERT line
// or by a fixed interval, and keeps a snapshot of the latest result.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"tmag5170-ng/internal/tmag5170"
)

var nowFn = time.Now

const (
	ModeSpecial   = "special"
	ModeRegisters = "registers"
)

// Sensor is the subset of *tmag5170.Device the service uses.
type Sensor interface {
	Apply(s tmag5170.Settings) error
	SetThreshold(reg tmag5170.Register, high, low int8) error
	ConvStart() error
	ReadAngleMagnitudeFast() (first, second uint16, err error)
	ReadMagnetic() (x, y, z int16, err error)
	ReadTemperature() (int16, error)
	ReadSettings() (tmag5170.Settings, error)
}

// AlertWaiter blocks until the sensor signals a completed conversion.
type AlertWaiter interface {
	Wait(ctx context.Context) error
}

type Threshold struct {
	High, Low int8
}

type Config struct {
	Mode      string
	Interval  time.Duration
	MaxRateHz float64
	ConvStart bool

	// VerifySettings reads the configuration registers back after Start
	// writes them.
	VerifySettings bool

	Settings   tmag5170.Settings
	Thresholds map[tmag5170.Register]Threshold

	// OnSample, if set, is called from the sampling goroutine.
	OnSample func(Sample)
}

// Sample is one raw reading. In special mode First/Second hold the packed
// channel pair; in registers mode X/Y/Z/Temp hold the result registers.
type Sample struct {
	Time time.Time `json:"time"`
	Mode string    `json:"mode"`

	First  uint16 `json:"first,omitempty"`
	Second uint16 `json:"second,omitempty"`

	X    int16 `json:"x,omitempty"`
	Y    int16 `json:"y,omitempty"`
	Z    int16 `json:"z,omitempty"`
	Temp int16 `json:"temp,omitempty"`
}

type Snapshot struct {
	Running bool `json:"running"`

	Samples         uint64 `json:"samples"`
	CRCErrors       uint64 `json:"crc_errors"`
	TransportErrors uint64 `json:"transport_errors"`

	Last         Sample    `json:"last"`
	LastUpdateAt time.Time `json:"last_update_utc,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
}

type Service struct {
	cfg     Config
	dev     Sensor
	alert   AlertWaiter
	limiter *rate.Limiter

	mu   sync.RWMutex
	snap Snapshot

	wg       sync.WaitGroup
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// New builds a service. alert may be nil, in which case samples are taken
// every cfg.Interval.
func New(cfg Config, dev Sensor, alert AlertWaiter) *Service {
	if cfg.Mode == "" {
		cfg.Mode = ModeSpecial
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}
	limit := rate.Inf
	if cfg.MaxRateHz > 0 {
		limit = rate.Limit(cfg.MaxRateHz)
	}
	return &Service{
		cfg:     cfg,
		dev:     dev,
		alert:   alert,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (s *Service) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Start writes the configuration registers and thresholds, then samples in
// the background until ctx is done or Close is called.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.dev == nil {
		return fmt.Errorf("monitor: sensor is nil")
	}
	if s.cancel != nil {
		return fmt.Errorf("monitor: already started")
	}
	switch s.cfg.Mode {
	case ModeSpecial, ModeRegisters:
	default:
		return fmt.Errorf("monitor: unknown mode %q", s.cfg.Mode)
	}

	if err := s.dev.Apply(s.cfg.Settings); err != nil {
		s.record(Sample{}, err)
		return fmt.Errorf("monitor: apply settings failed: %w", err)
	}
	for reg, th := range s.cfg.Thresholds {
		if err := s.dev.SetThreshold(reg, th.High, th.Low); err != nil {
			s.record(Sample{}, err)
			return fmt.Errorf("monitor: set %s failed: %w", reg, err)
		}
	}

	if s.cfg.VerifySettings {
		got, err := s.dev.ReadSettings()
		if err != nil {
			s.record(Sample{}, err)
			return fmt.Errorf("monitor: settings readback failed: %w", err)
		}
		if got != s.cfg.Settings {
			err := fmt.Errorf("monitor: settings readback mismatch: wrote %+v read %+v", s.cfg.Settings, got)
			s.record(Sample{}, err)
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.setState(func(sn *Snapshot) { sn.Running = true })

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.setState(func(sn *Snapshot) { sn.Running = false })
		s.run(ctx)
	}()
	return nil
}

func (s *Service) Close() {
	if s == nil {
		return
	}
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
	s.wg.Wait()
}

func (s *Service) run(ctx context.Context) {
	var tick <-chan time.Time
	if s.alert == nil {
		t := time.NewTicker(s.cfg.Interval)
		defer t.Stop()
		tick = t.C
	}

	for {
		if s.alert != nil {
			if err := s.alert.Wait(ctx); err != nil {
				if ctx.Err() == nil {
					s.record(Sample{}, fmt.Errorf("monitor: alert wait failed: %w", err))
				}
				return
			}
		} else {
			select {
			case <-ctx.Done():
				return
			case <-tick:
			}
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return
		}

		sample, err := s.sampleOnce()
		s.record(sample, err)
		if err == nil && s.cfg.OnSample != nil {
			s.cfg.OnSample(sample)
		}
	}
}

func (s *Service) sampleOnce() (Sample, error) {
	if s.cfg.ConvStart {
		if err := s.dev.ConvStart(); err != nil {
			return Sample{}, err
		}
	}

	sm := Sample{Time: nowFn().UTC(), Mode: s.cfg.Mode}
	switch s.cfg.Mode {
	case ModeRegisters:
		x, y, z, err := s.dev.ReadMagnetic()
		if err != nil {
			return Sample{}, err
		}
		temp, err := s.dev.ReadTemperature()
		if err != nil {
			return Sample{}, err
		}
		sm.X, sm.Y, sm.Z, sm.Temp = x, y, z, temp
	default:
		first, second, err := s.dev.ReadAngleMagnitudeFast()
		if err != nil {
			return Sample{}, err
		}
		sm.First, sm.Second = first, second
	}
	return sm, nil
}

// record classifies err as an integrity or bus fault; neither is retried.
func (s *Service) record(sample Sample, err error) {
	s.setState(func(sn *Snapshot) {
		if err == nil {
			sn.Samples++
			sn.Last = sample
			sn.LastError = ""
			return
		}
		switch {
		case errors.Is(err, tmag5170.ErrCRC):
			sn.CRCErrors++
		case tmag5170.IsTransport(err):
			sn.TransportErrors++
		}
		sn.LastError = err.Error()
	})
}

func (s *Service) setState(update func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update(&s.snap)
	s.snap.LastUpdateAt = nowFn().UTC()
}
