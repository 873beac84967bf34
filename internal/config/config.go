package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tmag5170-ng/internal/tmag5170"
)

type Config struct {
	SPI        SPIConfig        `yaml:"spi"`
	ChipSelect ChipSelectConfig `yaml:"chip_select"`
	Alert      AlertPinConfig   `yaml:"alert"`
	Sensor     SensorConfig     `yaml:"sensor"`
	Monitor    MonitorConfig    `yaml:"monitor"`

	// Settings is resolved from Sensor by Load.
	Settings tmag5170.Settings `yaml:"-"`
}

type SPIConfig struct {
	Device  string `yaml:"device"`
	SpeedHz uint32 `yaml:"speed_hz"`
	Mode    uint8  `yaml:"mode"`
}

// ChipSelectConfig selects a GPIO chip-select. Pin 0 leaves chip-select to
// the spidev driver.
type ChipSelectConfig struct {
	// Pin is BCM GPIO numbering.
	Pin int `yaml:"pin"`
}

type AlertPinConfig struct {
	Enable bool `yaml:"enable"`
	Pin    int  `yaml:"pin"`
}

// SensorConfig holds the register settings by field name. Empty strings
// leave a field at its power-on default.
type SensorConfig struct {
	Device     DeviceSettings   `yaml:"device"`
	Sensor     SensorSettings   `yaml:"sensor"`
	System     SystemSettings   `yaml:"system"`
	Alert      AlertSettings    `yaml:"alert"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

type DeviceSettings struct {
	ConvAvg       string `yaml:"conv_avg"`
	MagTempco     string `yaml:"mag_tempco"`
	OperatingMode string `yaml:"operating_mode"`
	TEn           bool   `yaml:"t_en"`
	TRate         string `yaml:"t_rate"`
	TLimitCheckEn bool   `yaml:"t_limit_check_en"`
	TCompEn       bool   `yaml:"t_comp_en"`
}

type SensorSettings struct {
	AngleEn   string `yaml:"angle_en"`
	SleepTime string `yaml:"sleep_time"`
	MagChEn   string `yaml:"mag_ch_en"`
	XRange    string `yaml:"x_range"`
	YRange    string `yaml:"y_range"`
	ZRange    string `yaml:"z_range"`
}

type SystemSettings struct {
	DiagSel     string `yaml:"diag_sel"`
	TriggerMode string `yaml:"trigger_mode"`
	DataType    string `yaml:"data_type"`
	DiagEn      bool   `yaml:"diag_en"`
	XLimitCheck bool   `yaml:"x_limit_check"`
	YLimitCheck bool   `yaml:"y_limit_check"`
	ZLimitCheck bool   `yaml:"z_limit_check"`
}

type AlertSettings struct {
	AlertLatch string `yaml:"alert_latch"`
	AlertMode  string `yaml:"alert_mode"`
	StatusAlrt bool   `yaml:"status_alrt"`
	RsltAlrt   bool   `yaml:"rslt_alrt"`
	ThrxCount  string `yaml:"thrx_count"`
	TThrxAlrt  bool   `yaml:"t_thrx_alrt"`
	XThrxAlrt  bool   `yaml:"x_thrx_alrt"`
	YThrxAlrt  bool   `yaml:"y_thrx_alrt"`
	ZThrxAlrt  bool   `yaml:"z_thrx_alrt"`
}

// Threshold limits are raw register codes.
type Threshold struct {
	High int8 `yaml:"high"`
	Low  int8 `yaml:"low"`
}

type ThresholdsConfig struct {
	X *Threshold `yaml:"x"`
	Y *Threshold `yaml:"y"`
	Z *Threshold `yaml:"z"`
	T *Threshold `yaml:"t"`
}

const (
	MonitorModeSpecial   = "special"
	MonitorModeRegisters = "registers"
)

type MonitorConfig struct {
	// Mode is "special" (one dual-channel read per sample) or "registers"
	// (X/Y/Z/TEMP result registers).
	Mode string `yaml:"mode"`

	// Interval paces sampling when alert is disabled.
	Interval time.Duration `yaml:"interval"`

	// MaxRateHz caps sampling. 0 means no cap, except with ALERT enabled
	// where it defaults to 10.
	MaxRateHz float64 `yaml:"max_rate_hz"`

	ConvStart      bool `yaml:"conv_start"`
	VerifySettings bool `yaml:"verify_settings"`
}

const maxSpeedHz = 10_000_000

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	cfg.SPI.Device = strings.TrimSpace(cfg.SPI.Device)
	if cfg.SPI.Device == "" {
		return Config{}, fmt.Errorf("spi.device is required")
	}
	if cfg.SPI.SpeedHz == 0 {
		cfg.SPI.SpeedHz = 1_000_000
	}
	if cfg.SPI.SpeedHz > maxSpeedHz {
		return Config{}, fmt.Errorf("spi.speed_hz must be <= %d", maxSpeedHz)
	}
	if cfg.SPI.Mode > 3 {
		return Config{}, fmt.Errorf("spi.mode must be 0..3")
	}

	if cfg.ChipSelect.Pin < 0 {
		return Config{}, fmt.Errorf("chip_select.pin must be >= 0")
	}
	if cfg.Alert.Enable && cfg.Alert.Pin <= 0 {
		return Config{}, fmt.Errorf("alert.pin is required when alert.enable is true")
	}

	cfg.Monitor.Mode = strings.ToLower(strings.TrimSpace(cfg.Monitor.Mode))
	if cfg.Monitor.Mode == "" {
		cfg.Monitor.Mode = MonitorModeSpecial
	}
	switch cfg.Monitor.Mode {
	case MonitorModeSpecial, MonitorModeRegisters:
	default:
		return Config{}, fmt.Errorf("monitor.mode must be %q or %q", MonitorModeSpecial, MonitorModeRegisters)
	}
	if cfg.Monitor.Interval <= 0 {
		cfg.Monitor.Interval = 100 * time.Millisecond
	}
	if cfg.Monitor.MaxRateHz < 0 {
		return Config{}, fmt.Errorf("monitor.max_rate_hz must be >= 0")
	}
	// Interval pacing is not capped unless asked; ALERT can fire at the
	// conversion rate.
	if cfg.Monitor.MaxRateHz == 0 && cfg.Alert.Enable {
		cfg.Monitor.MaxRateHz = 10
	}

	// The special read only carries angle/magnitude with DATA_TYPE=AM.
	if cfg.Monitor.Mode == MonitorModeSpecial && cfg.Sensor.System.DataType == "" {
		cfg.Sensor.System.DataType = "am"
	}

	settings, err := cfg.Sensor.Settings()
	if err != nil {
		return Config{}, err
	}
	cfg.Settings = settings

	return cfg, nil
}

// Settings resolves the named fields into register values.
func (s SensorConfig) Settings() (tmag5170.Settings, error) {
	var p parser

	dev := tmag5170.DeviceConfig(0).
		WithConvAvg(parseField(&p, "sensor.device.conv_avg", s.Device.ConvAvg, tmag5170.ParseConvAvg)).
		WithMagTempco(parseField(&p, "sensor.device.mag_tempco", s.Device.MagTempco, tmag5170.ParseMagTempco)).
		WithOperatingMode(parseField(&p, "sensor.device.operating_mode", s.Device.OperatingMode, tmag5170.ParseOperatingMode)).
		WithTEn(s.Device.TEn).
		WithTRate(parseField(&p, "sensor.device.t_rate", s.Device.TRate, tmag5170.ParseTRate)).
		WithTLimitCheckEn(s.Device.TLimitCheckEn).
		WithTCompEn(s.Device.TCompEn)

	sen := tmag5170.SensorConfig(0).
		WithAngleEn(parseField(&p, "sensor.sensor.angle_en", s.Sensor.AngleEn, tmag5170.ParseAngleEn)).
		WithSleepTime(parseField(&p, "sensor.sensor.sleep_time", s.Sensor.SleepTime, tmag5170.ParseSleepTime)).
		WithMagChEn(parseField(&p, "sensor.sensor.mag_ch_en", s.Sensor.MagChEn, tmag5170.ParseMagChEn)).
		WithXRange(parseField(&p, "sensor.sensor.x_range", s.Sensor.XRange, tmag5170.ParseRange)).
		WithYRange(parseField(&p, "sensor.sensor.y_range", s.Sensor.YRange, tmag5170.ParseRange)).
		WithZRange(parseField(&p, "sensor.sensor.z_range", s.Sensor.ZRange, tmag5170.ParseRange))

	sys := tmag5170.SystemConfig(0).
		WithDiagSel(parseField(&p, "sensor.system.diag_sel", s.System.DiagSel, tmag5170.ParseDiagSel)).
		WithTriggerMode(parseField(&p, "sensor.system.trigger_mode", s.System.TriggerMode, tmag5170.ParseTriggerMode)).
		WithDataType(parseField(&p, "sensor.system.data_type", s.System.DataType, tmag5170.ParseDataType)).
		WithDiagEn(s.System.DiagEn).
		WithXLimitCheck(s.System.XLimitCheck).
		WithYLimitCheck(s.System.YLimitCheck).
		WithZLimitCheck(s.System.ZLimitCheck)

	alrt := tmag5170.AlertConfig(0).
		WithAlertLatch(parseField(&p, "sensor.alert.alert_latch", s.Alert.AlertLatch, tmag5170.ParseAlertLatch)).
		WithAlertMode(parseField(&p, "sensor.alert.alert_mode", s.Alert.AlertMode, tmag5170.ParseAlertMode)).
		WithStatusAlrt(s.Alert.StatusAlrt).
		WithRsltAlrt(s.Alert.RsltAlrt).
		WithThrxCount(parseField(&p, "sensor.alert.thrx_count", s.Alert.ThrxCount, tmag5170.ParseThrxCount)).
		WithTThrxAlrt(s.Alert.TThrxAlrt).
		WithXThrxAlrt(s.Alert.XThrxAlrt).
		WithYThrxAlrt(s.Alert.YThrxAlrt).
		WithZThrxAlrt(s.Alert.ZThrxAlrt)

	if p.err != nil {
		return tmag5170.Settings{}, p.err
	}
	return tmag5170.Settings{Device: dev, Sensor: sen, System: sys, Alert: alrt}, nil
}

// ThresholdRegisters returns the configured limits keyed by register.
func (t ThresholdsConfig) ThresholdRegisters() map[tmag5170.Register]Threshold {
	out := map[tmag5170.Register]Threshold{}
	for reg, th := range map[tmag5170.Register]*Threshold{
		tmag5170.RegXThrxConfig: t.X,
		tmag5170.RegYThrxConfig: t.Y,
		tmag5170.RegZThrxConfig: t.Z,
		tmag5170.RegTThrxConfig: t.T,
	} {
		if th != nil {
			out[reg] = *th
		}
	}
	return out
}

// parser keeps the first field error so Settings can chain builders.
type parser struct {
	err error
}

func parseField[T any](p *parser, key, s string, parse func(string) (T, error)) T {
	var zero T
	if s == "" || p.err != nil {
		return zero
	}
	v, err := parse(s)
	if err != nil {
		p.err = fmt.Errorf("%s: %q is not a valid value", key, s)
		return zero
	}
	return v
}
