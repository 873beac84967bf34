package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tmag5170-ng/internal/tmag5170"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_RequiresDevice(t *testing.T) {
	path := writeTempConfig(t, "spi: {}\n")
	_, err := Load(path)
	requireErrEq(t, err, "spi.device is required")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, "spi:\n  device: /dev/spidev0.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SPI.SpeedHz != 1_000_000 {
		t.Fatalf("speed_hz=%d want 1000000", cfg.SPI.SpeedHz)
	}
	if cfg.Monitor.Mode != MonitorModeSpecial {
		t.Fatalf("monitor.mode=%q want special", cfg.Monitor.Mode)
	}
	if cfg.Monitor.Interval != 100*time.Millisecond {
		t.Fatalf("monitor.interval=%s want 100ms", cfg.Monitor.Interval)
	}
	if cfg.Monitor.MaxRateHz != 0 {
		t.Fatalf("monitor.max_rate_hz=%v want 0 (uncapped) without alert", cfg.Monitor.MaxRateHz)
	}
	// Special read needs DATA_TYPE=AM.
	if cfg.Settings.System.DataType() != tmag5170.DataAM {
		t.Fatalf("data_type=%v want am", cfg.Settings.System.DataType())
	}
	if cfg.Settings.Device.Uint16() != 0 || cfg.Settings.Sensor.Uint16() != 0 || cfg.Settings.Alert.Uint16() != 0 {
		t.Fatalf("expected power-on defaults, got %+v", cfg.Settings)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name  string
		extra string
		want  string
	}{
		{
			name:  "speed too high",
			extra: "spi:\n  device: /dev/spidev0.0\n  speed_hz: 20000000\n",
			want:  "spi.speed_hz must be <= 10000000",
		},
		{
			name:  "bad spi mode",
			extra: "spi:\n  device: /dev/spidev0.0\n  mode: 4\n",
			want:  "spi.mode must be 0..3",
		},
		{
			name:  "negative cs pin",
			extra: "spi:\n  device: /dev/spidev0.0\nchip_select:\n  pin: -1\n",
			want:  "chip_select.pin must be >= 0",
		},
		{
			name:  "alert without pin",
			extra: "spi:\n  device: /dev/spidev0.0\nalert:\n  enable: true\n",
			want:  "alert.pin is required when alert.enable is true",
		},
		{
			name:  "bad monitor mode",
			extra: "spi:\n  device: /dev/spidev0.0\nmonitor:\n  mode: burst\n",
			want:  `monitor.mode must be "special" or "registers"`,
		},
		{
			name:  "negative rate",
			extra: "spi:\n  device: /dev/spidev0.0\nmonitor:\n  max_rate_hz: -1\n",
			want:  "monitor.max_rate_hz must be >= 0",
		},
		{
			name:  "unknown enum value",
			extra: "spi:\n  device: /dev/spidev0.0\nsensor:\n  device:\n    conv_avg: 64x\n",
			want:  `sensor.device.conv_avg: "64x" is not a valid value`,
		},
		{
			name:  "first bad field wins",
			extra: "spi:\n  device: /dev/spidev0.0\nsensor:\n  sensor:\n    x_range: huge\n  alert:\n    thrx_count: '9'\n",
			want:  `sensor.sensor.x_range: "huge" is not a valid value`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tc.extra))
			requireErrEq(t, err, tc.want)
		})
	}
}

func TestLoad_FullSensorSettings(t *testing.T) {
	path := writeTempConfig(t, `
spi:
  device: /dev/spidev0.0
  speed_hz: 1000000
chip_select:
  pin: 8
alert:
  enable: true
  pin: 25
sensor:
  device:
    conv_avg: 32x
    mag_tempco: ndbfe
    operating_mode: active
    t_en: true
    t_rate: once_per_conv_set
    t_comp_en: true
  sensor:
    angle_en: xy
    sleep_time: 500ms
    mag_ch_en: xyz
    x_range: wide
    y_range: wide
    z_range: wide
  system:
    diag_sel: all_in_sequence
    trigger_mode: spi
    data_type: am
  alert:
    alert_latch: not_latched
    alert_mode: interrupt
    rslt_alrt: true
  thresholds:
    z:
      high: 20
      low: -20
monitor:
  mode: registers
  interval: 250ms
  max_rate_hz: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := cfg.Settings.Device.Uint16(); got != 0x512D {
		t.Fatalf("device config=0x%04X want 0x512D", got)
	}
	wantSensor := tmag5170.SensorConfig(0).
		WithAngleEn(tmag5170.AngleXY).
		WithSleepTime(tmag5170.Sleep500ms).
		WithMagChEn(tmag5170.ChXYZ).
		WithXRange(tmag5170.RangeWide).
		WithYRange(tmag5170.RangeWide).
		WithZRange(tmag5170.RangeWide)
	if cfg.Settings.Sensor != wantSensor {
		t.Fatalf("sensor config=0x%04X want 0x%04X", cfg.Settings.Sensor.Uint16(), wantSensor.Uint16())
	}
	if got := cfg.Settings.System.Uint16(); got != 0x21C0 {
		t.Fatalf("system config=0x%04X want 0x21C0", got)
	}
	if got := cfg.Settings.Alert.Uint16(); got != 0x0100 {
		t.Fatalf("alert config=0x%04X want 0x0100", got)
	}

	th := cfg.Sensor.Thresholds.ThresholdRegisters()
	if len(th) != 1 || th[tmag5170.RegZThrxConfig] != (Threshold{High: 20, Low: -20}) {
		t.Fatalf("thresholds=%v", th)
	}

	if cfg.ChipSelect.Pin != 8 || !cfg.Alert.Enable || cfg.Alert.Pin != 25 {
		t.Fatalf("pins=%+v %+v", cfg.ChipSelect, cfg.Alert)
	}
	if cfg.Monitor.Mode != MonitorModeRegisters || cfg.Monitor.Interval != 250*time.Millisecond || cfg.Monitor.MaxRateHz != 5 {
		t.Fatalf("monitor=%+v", cfg.Monitor)
	}
}

func TestLoad_RegistersModeKeepsDefaultDataType(t *testing.T) {
	path := writeTempConfig(t, "spi:\n  device: /dev/spidev0.0\nmonitor:\n  mode: registers\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Settings.System.DataType() != tmag5170.DataDefault {
		t.Fatalf("data_type=%v want default", cfg.Settings.System.DataType())
	}
}

func TestLoad_ShortIntervalNotCapped(t *testing.T) {
	path := writeTempConfig(t, "spi:\n  device: /dev/spidev0.0\nmonitor:\n  interval: 10ms\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Monitor.Interval != 10*time.Millisecond {
		t.Fatalf("monitor.interval=%s want 10ms", cfg.Monitor.Interval)
	}
	if cfg.Monitor.MaxRateHz != 0 {
		t.Fatalf("monitor.max_rate_hz=%v want 0 so the interval is honored", cfg.Monitor.MaxRateHz)
	}
}

func TestLoad_AlertDefaultsRateCap(t *testing.T) {
	path := writeTempConfig(t, "spi:\n  device: /dev/spidev0.0\nalert:\n  enable: true\n  pin: 25\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Monitor.MaxRateHz != 10 {
		t.Fatalf("monitor.max_rate_hz=%v want 10 with alert", cfg.Monitor.MaxRateHz)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
