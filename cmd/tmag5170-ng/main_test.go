package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tmag5170-ng/internal/config"
	"tmag5170-ng/internal/monitor"
	"tmag5170-ng/internal/tmag5170"
)

type fakeRegs struct {
	values map[tmag5170.Register]uint16
	fail   map[tmag5170.Register]error
	cmds   []tmag5170.Command
}

func (f *fakeRegs) ReadRegister(reg tmag5170.Register, cmd tmag5170.Command) (uint16, error) {
	f.cmds = append(f.cmds, cmd)
	if err := f.fail[reg]; err != nil {
		return 0, err
	}
	return f.values[reg], nil
}

func TestDumpRegisters_AllInAddressOrder(t *testing.T) {
	regs := &fakeRegs{values: map[tmag5170.Register]uint16{
		tmag5170.RegDeviceConfig: 0x512D,
		tmag5170.RegTempResult:   0x07D0,
	}}
	var buf bytes.Buffer
	if err := dumpRegisters(&buf, regs); err != nil {
		t.Fatalf("dumpRegisters: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(tmag5170.Registers()) {
		t.Fatalf("lines=%d want %d", len(lines), len(tmag5170.Registers()))
	}
	if !strings.HasPrefix(lines[0], "DEVICE_CONFIG") || !strings.HasSuffix(lines[0], "(0x00): 0x512D") {
		t.Fatalf("line[0]=%q", lines[0])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "MAGNITUDE_RESULT") {
		t.Fatalf("last line=%q", lines[len(lines)-1])
	}
	if !strings.Contains(buf.String(), "TEMP_RESULT      (0x0C): 0x07D0") {
		t.Fatalf("missing temp line in:\n%s", buf.String())
	}
	for _, c := range regs.cmds {
		if c != tmag5170.CmdNone {
			t.Fatalf("dump issued command %d", c)
		}
	}
}

func TestDumpRegisters_ContinuesAfterFailure(t *testing.T) {
	crcErr := &tmag5170.CRCError{Op: "read", Reg: tmag5170.RegSensorConfig, Got: 0x1, Want: 0x2}
	regs := &fakeRegs{fail: map[tmag5170.Register]error{
		tmag5170.RegSensorConfig: crcErr,
		tmag5170.RegSysStatus:    errors.New("later failure"),
	}}
	var buf bytes.Buffer
	err := dumpRegisters(&buf, regs)
	if !errors.Is(err, tmag5170.ErrCRC) {
		t.Fatalf("err=%v want first failure (crc)", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != len(tmag5170.Registers()) {
		t.Fatalf("lines=%d want %d", got, len(tmag5170.Registers()))
	}
	if !strings.Contains(buf.String(), "SENSOR_CONFIG    (0x01): error: tmag5170: read SENSOR_CONFIG: crc mismatch") {
		t.Fatalf("missing error line in:\n%s", buf.String())
	}
}

func TestFormatSample(t *testing.T) {
	got := formatSample(monitor.Sample{Mode: monitor.ModeSpecial, First: 0xCD2, Second: 0xABE})
	if got != "sample first=0xCD2 second=0xABE" {
		t.Fatalf("special=%q", got)
	}
	got = formatSample(monitor.Sample{Mode: monitor.ModeRegisters, X: -1, Y: 2, Z: 3, Temp: 4})
	if got != "sample x=-1 y=2 z=3 temp=4" {
		t.Fatalf("registers=%q", got)
	}
}

func TestFormatSnapshot(t *testing.T) {
	got := formatSnapshot(monitor.Snapshot{Running: true, Samples: 7, CRCErrors: 1})
	if got != "monitor running=true samples=7 crc_errors=1 transport_errors=0" {
		t.Fatalf("got=%q", got)
	}
	got = formatSnapshot(monitor.Snapshot{TransportErrors: 2, LastError: "bus gone"})
	if !strings.HasSuffix(got, `transport_errors=2 last_error="bus gone"`) {
		t.Fatalf("got=%q", got)
	}
}

func TestMonitorConfig_FromLoadedConfig(t *testing.T) {
	cfg := config.Config{
		Monitor: config.MonitorConfig{
			Mode:      config.MonitorModeRegisters,
			Interval:  250 * time.Millisecond,
			MaxRateHz: 5,
			ConvStart: true,
		},
		Sensor: config.SensorConfig{
			Thresholds: config.ThresholdsConfig{T: &config.Threshold{High: 100, Low: -40}},
		},
		Settings: tmag5170.Settings{Device: tmag5170.DeviceConfig(0x512D)},
	}
	m := monitorConfig(cfg)
	if m.Mode != monitor.ModeRegisters || m.Interval != 250*time.Millisecond || m.MaxRateHz != 5 || !m.ConvStart {
		t.Fatalf("monitor config=%+v", m)
	}
	if m.Settings.Device.Uint16() != 0x512D {
		t.Fatalf("device=0x%04X", m.Settings.Device.Uint16())
	}
	if len(m.Thresholds) != 1 || m.Thresholds[tmag5170.RegTThrxConfig] != (monitor.Threshold{High: 100, Low: -40}) {
		t.Fatalf("thresholds=%v", m.Thresholds)
	}
}

func TestStartMonitor_ClosesHardwareOnFailure(t *testing.T) {
	closed := 0
	svc := monitor.New(monitor.Config{}, nil, nil)
	if err := startMonitor(context.Background(), svc, func() { closed++ }); err == nil {
		t.Fatalf("expected start error with nil sensor")
	}
	if closed != 1 {
		t.Fatalf("closed=%d want 1", closed)
	}
}

func TestOpenHardware_MissingDevice(t *testing.T) {
	cfg := config.Config{SPI: config.SPIConfig{Device: filepath.Join(t.TempDir(), "spidev9.9")}}
	hw, err := openHardware(cfg)
	if err == nil {
		hw.Close()
		t.Fatalf("expected error for missing spidev")
	}
	if hw != nil {
		t.Fatalf("expected nil hardware on error")
	}
}

func TestHardware_AlertWaiterNilWhenDisabled(t *testing.T) {
	hw := &hardware{}
	if w := hw.alertWaiter(); w != nil {
		t.Fatalf("expected untyped nil waiter, got %T", w)
	}
	hw.Close()
}
