package tmag5170

import (
	"strings"
	"testing"
)

func TestRegisterAddresses(t *testing.T) {
	want := map[string]byte{
		"DEVICE_CONFIG":    0x00,
		"SENSOR_CONFIG":    0x01,
		"SYSTEM_CONFIG":    0x02,
		"ALERT_CONFIG":     0x03,
		"X_THRX_CONFIG":    0x04,
		"Y_THRX_CONFIG":    0x05,
		"Z_THRX_CONFIG":    0x06,
		"T_THRX_CONFIG":    0x07,
		"CONV_STATUS":      0x08,
		"X_CH_RESULT":      0x09,
		"Y_CH_RESULT":      0x0A,
		"Z_CH_RESULT":      0x0B,
		"TEMP_RESULT":      0x0C,
		"AFE_STATUS":       0x0D,
		"SYS_STATUS":       0x0E,
		"TEST_CONFIG":      0x0F,
		"OSC_MONITOR":      0x10,
		"MAG_GAIN_CONFIG":  0x11,
		"ANGLE_RESULT":     0x13,
		"MAGNITUDE_RESULT": 0x14,
	}
	regs := Registers()
	if len(regs) != len(want) {
		t.Fatalf("Registers()=%d entries want %d", len(regs), len(want))
	}
	for _, r := range regs {
		addr, ok := want[r.String()]
		if !ok {
			t.Fatalf("unexpected register %s", r)
		}
		if r.Addr() != addr {
			t.Fatalf("%s addr=0x%02X want 0x%02X", r, r.Addr(), addr)
		}
	}
	for i := 1; i < len(regs); i++ {
		if regs[i-1] >= regs[i] {
			t.Fatalf("Registers() not in address order: %v", regs)
		}
	}
}

func TestRegisterFromAddr(t *testing.T) {
	r, err := RegisterFromAddr(0x14)
	if err != nil || r != RegMagnitudeResult {
		t.Fatalf("RegisterFromAddr(0x14)=%v,%v", r, err)
	}
	for _, addr := range []byte{0x12, 0x15, 0x7F, 0x80} {
		if _, err := RegisterFromAddr(addr); err == nil {
			t.Fatalf("RegisterFromAddr(0x%02X) expected error", addr)
		}
	}
}

func TestParseRegister(t *testing.T) {
	r, err := ParseRegister(" x_ch_result ")
	if err != nil || r != RegXChResult {
		t.Fatalf("ParseRegister=%v,%v", r, err)
	}
	_, err = ParseRegister("RESERVED")
	if err == nil || !strings.Contains(err.Error(), "unknown register") {
		t.Fatalf("err=%v want unknown register", err)
	}
}

func TestRegisterString_Unknown(t *testing.T) {
	if got := Register(0x12).String(); got != "Register(0x12)" {
		t.Fatalf("String()=%q", got)
	}
}
