package tmag5170

import (
	"fmt"
	"strings"
)

// Register is a 7-bit TMAG5170 register address.
type Register byte

const (
	RegDeviceConfig    Register = 0x00
	RegSensorConfig    Register = 0x01
	RegSystemConfig    Register = 0x02
	RegAlertConfig     Register = 0x03
	RegXThrxConfig     Register = 0x04
	RegYThrxConfig     Register = 0x05
	RegZThrxConfig     Register = 0x06
	RegTThrxConfig     Register = 0x07
	RegConvStatus      Register = 0x08
	RegXChResult       Register = 0x09
	RegYChResult       Register = 0x0A
	RegZChResult       Register = 0x0B
	RegTempResult      Register = 0x0C
	RegAFEStatus       Register = 0x0D
	RegSysStatus       Register = 0x0E
	RegTestConfig      Register = 0x0F
	RegOscMonitor      Register = 0x10
	RegMagGainConfig   Register = 0x11
	RegAngleResult     Register = 0x13
	RegMagnitudeResult Register = 0x14
)

// 0x12 is unused by the device.
var registerNames = map[Register]string{
	RegDeviceConfig:    "DEVICE_CONFIG",
	RegSensorConfig:    "SENSOR_CONFIG",
	RegSystemConfig:    "SYSTEM_CONFIG",
	RegAlertConfig:     "ALERT_CONFIG",
	RegXThrxConfig:     "X_THRX_CONFIG",
	RegYThrxConfig:     "Y_THRX_CONFIG",
	RegZThrxConfig:     "Z_THRX_CONFIG",
	RegTThrxConfig:     "T_THRX_CONFIG",
	RegConvStatus:      "CONV_STATUS",
	RegXChResult:       "X_CH_RESULT",
	RegYChResult:       "Y_CH_RESULT",
	RegZChResult:       "Z_CH_RESULT",
	RegTempResult:      "TEMP_RESULT",
	RegAFEStatus:       "AFE_STATUS",
	RegSysStatus:       "SYS_STATUS",
	RegTestConfig:      "TEST_CONFIG",
	RegOscMonitor:      "OSC_MONITOR",
	RegMagGainConfig:   "MAG_GAIN_CONFIG",
	RegAngleResult:     "ANGLE_RESULT",
	RegMagnitudeResult: "MAGNITUDE_RESULT",
}

// Addr returns the address as placed in byte 0 of a frame (read flag clear).
func (r Register) Addr() byte { return byte(r) & addrMask }

func (r Register) Valid() bool {
	_, ok := registerNames[r]
	return ok
}

func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Register(0x%02X)", byte(r))
}

// Registers lists every defined register in address order.
func Registers() []Register {
	out := make([]Register, 0, len(registerNames))
	for a := 0; a <= int(addrMask); a++ {
		if r := Register(a); r.Valid() {
			out = append(out, r)
		}
	}
	return out
}

// RegisterFromAddr maps a wire address back to a Register, rejecting
// unused codes.
func RegisterFromAddr(addr byte) (Register, error) {
	r := Register(addr)
	if !r.Valid() {
		return 0, fmt.Errorf("tmag5170: unknown register address 0x%02X", addr)
	}
	return r, nil
}

// ParseRegister accepts the datasheet name (case-insensitive), e.g.
// "x_ch_result" or "X_CH_RESULT".
func ParseRegister(name string) (Register, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for r, n := range registerNames {
		if n == want {
			return r, nil
		}
	}
	return 0, fmt.Errorf("tmag5170: unknown register %q", name)
}

func (r Register) isThreshold() bool {
	switch r {
	case RegXThrxConfig, RegYThrxConfig, RegZThrxConfig, RegTThrxConfig:
		return true
	}
	return false
}
