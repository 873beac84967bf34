package main

import (
	"fmt"
	"log"

	"tmag5170-ng/internal/config"
	"tmag5170-ng/internal/gpio"
	"tmag5170-ng/internal/monitor"
	"tmag5170-ng/internal/spidev"
	"tmag5170-ng/internal/tmag5170"
)

const gpioConsumer = "tmag5170-ng"

type hardware struct {
	dev   *tmag5170.Device
	bus   *spidev.Conn
	cs    *gpio.Output
	alert *gpio.Alert
}

// openHardware opens the SPI bus plus the optional GPIO chip-select and
// ALERT lines. Anything opened before a failure is closed again.
func openHardware(cfg config.Config) (_ *hardware, err error) {
	hw := &hardware{}
	defer func() {
		if err != nil {
			hw.Close()
		}
	}()

	gpioCS := cfg.ChipSelect.Pin > 0
	hw.bus, err = spidev.Open(cfg.SPI.Device, spidev.Config{
		Mode:    cfg.SPI.Mode,
		SpeedHz: cfg.SPI.SpeedHz,
		NoCS:    gpioCS,
	})
	if err != nil {
		return nil, err
	}

	var cs tmag5170.ChipSelect = spidev.KernelCS{}
	if gpioCS {
		hw.cs, err = gpio.OpenChipSelect(cfg.ChipSelect.Pin, gpioConsumer)
		if err != nil {
			return nil, fmt.Errorf("chip select: %w", err)
		}
		cs = hw.cs
	}

	if cfg.Alert.Enable {
		hw.alert, err = gpio.OpenAlert(cfg.Alert.Pin, gpioConsumer)
		if err != nil {
			return nil, fmt.Errorf("alert: %w", err)
		}
	}

	hw.dev, err = tmag5170.New(hw.bus, cs)
	if err != nil {
		return nil, err
	}
	return hw, nil
}

// alertWaiter returns nil when ALERT is disabled so the monitor falls back
// to interval pacing.
func (hw *hardware) alertWaiter() monitor.AlertWaiter {
	if hw.alert == nil {
		return nil
	}
	return hw.alert
}

func (hw *hardware) Close() {
	if hw == nil {
		return
	}
	if hw.alert != nil {
		if err := hw.alert.Close(); err != nil {
			log.Printf("alert close failed: %v", err)
		}
		hw.alert = nil
	}
	if hw.cs != nil {
		if err := hw.cs.Close(); err != nil {
			log.Printf("chip select close failed: %v", err)
		}
		hw.cs = nil
	}
	if hw.bus != nil {
		if err := hw.bus.Close(); err != nil {
			log.Printf("spi close failed: %v", err)
		}
		hw.bus = nil
	}
}
