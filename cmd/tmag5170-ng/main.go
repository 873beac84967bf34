package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tmag5170-ng/internal/config"
	"tmag5170-ng/internal/monitor"
	"tmag5170-ng/internal/tmag5170"
)

func main() {
	var (
		configPath string
		dump       bool
		statsEvery time.Duration
	)
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.BoolVar(&dump, "dump", false, "Read every register once and exit")
	flag.DurationVar(&statsEvery, "stats", 10*time.Second, "Interval between monitor summaries (0 disables)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	hw, err := openHardware(cfg)
	if err != nil {
		log.Fatalf("sensor init failed: %v", err)
	}
	defer hw.Close()

	if dump {
		if err := dumpRegisters(os.Stdout, hw.dev); err != nil {
			hw.Close()
			log.Fatalf("register dump failed: %v", err)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("tmag5170-ng starting")
	log.Printf("spi device=%s speed_hz=%d mode=%d cs_pin=%d alert=%t",
		cfg.SPI.Device, cfg.SPI.SpeedHz, cfg.SPI.Mode, cfg.ChipSelect.Pin, cfg.Alert.Enable)

	mcfg := monitorConfig(cfg)
	mcfg.OnSample = func(s monitor.Sample) { log.Print(formatSample(s)) }

	svc := monitor.New(mcfg, hw.dev, hw.alertWaiter())
	if err := startMonitor(ctx, svc, hw.Close); err != nil {
		log.Fatalf("monitor start failed: %v", err)
	}
	defer svc.Close()
	log.Printf("monitor mode=%s interval=%s max_rate_hz=%g", mcfg.Mode, mcfg.Interval, mcfg.MaxRateHz)

	if statsEvery > 0 {
		go func() {
			t := time.NewTicker(statsEvery)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					log.Print(formatSnapshot(svc.Snapshot()))
				}
			}
		}()
	}

	<-ctx.Done()
	log.Printf("tmag5170-ng stopping")
	svc.Close()
	log.Print(formatSnapshot(svc.Snapshot()))
}

// startMonitor runs closeHW when Start fails, since log.Fatalf skips defers.
func startMonitor(ctx context.Context, svc *monitor.Service, closeHW func()) error {
	if err := svc.Start(ctx); err != nil {
		closeHW()
		return err
	}
	return nil
}

func monitorConfig(cfg config.Config) monitor.Config {
	th := map[tmag5170.Register]monitor.Threshold{}
	for reg, t := range cfg.Sensor.Thresholds.ThresholdRegisters() {
		th[reg] = monitor.Threshold{High: t.High, Low: t.Low}
	}
	return monitor.Config{
		Mode:           cfg.Monitor.Mode,
		Interval:       cfg.Monitor.Interval,
		MaxRateHz:      cfg.Monitor.MaxRateHz,
		ConvStart:      cfg.Monitor.ConvStart,
		VerifySettings: cfg.Monitor.VerifySettings,
		Settings:       cfg.Settings,
		Thresholds:     th,
	}
}
