// Package tmag5170 drives the TMAG5170 3D Hall-effect sensor over its
// 32-bit SPI frame protocol.
//
// Every operation is one blocking transfer bracketed by chip-select. Values
// are returned raw; unit conversion is left to callers.
package tmag5170

import (
	"fmt"

	"tmag5170-ng/internal/crc4"
)

// Transport performs one full-duplex transfer, overwriting buf with the
// bytes clocked in.
type Transport interface {
	Tx(buf []byte) error
}

// ChipSelect drives the nCS line. Errors are ignored by the driver.
type ChipSelect interface {
	High() error
	Low() error
}

// Device owns its transport and chip-select for its whole lifetime.
// It is not safe for concurrent use; if the bus is shared with other
// devices, hold a bus lock around each call.
type Device struct {
	bus Transport
	cs  ChipSelect
	crc crc4.CRC
}

func New(bus Transport, cs ChipSelect) (*Device, error) {
	if bus == nil {
		return nil, fmt.Errorf("tmag5170: bus is nil")
	}
	if cs == nil {
		return nil, fmt.Errorf("tmag5170: chip select is nil")
	}
	return &Device{bus: bus, cs: cs}, nil
}

// transfer seals f, clocks it through the bus and verifies the response CRC.
// On success f holds the response with its CRC nibble cleared.
func (d *Device) transfer(op string, reg Register, f *Frame) error {
	f.seal(&d.crc)

	_ = d.cs.Low()
	err := d.bus.Tx(f[:])
	_ = d.cs.High()
	if err != nil {
		return &TransportError{Op: op, Reg: reg, Err: err}
	}

	if got, want, ok := f.check(&d.crc); !ok {
		return &CRCError{Op: op, Reg: reg, Got: got, Want: want}
	}
	return nil
}

// WriteRegister writes value to reg. The response payload is discarded.
func (d *Device) WriteRegister(reg Register, value uint16, cmd Command) error {
	f := writeFrame(reg, value, cmd)
	return d.transfer(opWrite, reg, &f)
}

// ReadRegister reads reg as an unsigned 16-bit value.
func (d *Device) ReadRegister(reg Register, cmd Command) (uint16, error) {
	f := readFrame(reg, cmd)
	if err := d.transfer(opRead, reg, &f); err != nil {
		return 0, err
	}
	return f.Value(), nil
}

// ReadSpecial performs the address-less dual read and returns the two
// packed 12-bit channels. Which quantity each channel carries depends on
// SYSTEM_CONFIG.DATA_TYPE.
func (d *Device) ReadSpecial(cmd Command) (first, second uint16, err error) {
	f := specialFrame(cmd)
	if err = d.transfer(opSpecial, 0, &f); err != nil {
		return 0, 0, err
	}
	first, second = f.Pair()
	return first, second, nil
}

func (d *Device) readSigned(reg Register) (int16, error) {
	v, err := d.ReadRegister(reg, CmdNone)
	return int16(v), err
}

// ReadMagnetic returns the raw X, Y and Z channel results.
func (d *Device) ReadMagnetic() (x, y, z int16, err error) {
	if x, err = d.readSigned(RegXChResult); err != nil {
		return 0, 0, 0, err
	}
	if y, err = d.readSigned(RegYChResult); err != nil {
		return 0, 0, 0, err
	}
	if z, err = d.readSigned(RegZChResult); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

// ReadAngleMagnitude reads ANGLE_RESULT and MAGNITUDE_RESULT with two
// register reads.
func (d *Device) ReadAngleMagnitude() (angle, magnitude int16, err error) {
	if angle, err = d.readSigned(RegAngleResult); err != nil {
		return 0, 0, err
	}
	if magnitude, err = d.readSigned(RegMagnitudeResult); err != nil {
		return 0, 0, err
	}
	return angle, magnitude, nil
}

// ReadAngleMagnitudeFast uses the special read. The caller is responsible
// for configuring DATA_TYPE=AM so the channels mean angle and magnitude.
func (d *Device) ReadAngleMagnitudeFast() (first, second uint16, err error) {
	return d.ReadSpecial(CmdNone)
}

func (d *Device) ReadTemperature() (int16, error) { return d.readSigned(RegTempResult) }
func (d *Device) ReadConvStatus() (int16, error)  { return d.readSigned(RegConvStatus) }
func (d *Device) ReadAFEStatus() (int16, error)   { return d.readSigned(RegAFEStatus) }
func (d *Device) ReadSysStatus() (int16, error)   { return d.readSigned(RegSysStatus) }
func (d *Device) ReadTestConfig() (int16, error)  { return d.readSigned(RegTestConfig) }

// ConvStart triggers a conversion by issuing the start command on a read
// of DEVICE_CONFIG, which leaves the register contents untouched.
func (d *Device) ConvStart() error {
	_, err := d.ReadRegister(RegDeviceConfig, CmdConvStart)
	return err
}

// ApplyDeviceConfigAndStart writes DEVICE_CONFIG and triggers a conversion
// in the same frame.
func (d *Device) ApplyDeviceConfigAndStart(cfg DeviceConfig) error {
	return d.WriteRegister(RegDeviceConfig, cfg.Uint16(), CmdConvStart)
}

func (d *Device) ApplyDeviceConfig(cfg DeviceConfig) error {
	return d.WriteRegister(RegDeviceConfig, cfg.Uint16(), CmdNone)
}

func (d *Device) ApplySensorConfig(cfg SensorConfig) error {
	return d.WriteRegister(RegSensorConfig, cfg.Uint16(), CmdNone)
}

func (d *Device) ApplySystemConfig(cfg SystemConfig) error {
	return d.WriteRegister(RegSystemConfig, cfg.Uint16(), CmdNone)
}

func (d *Device) ApplyAlertConfig(cfg AlertConfig) error {
	return d.WriteRegister(RegAlertConfig, cfg.Uint16(), CmdNone)
}

// Settings groups the four configuration registers written at bring-up.
type Settings struct {
	Device DeviceConfig
	Sensor SensorConfig
	System SystemConfig
	Alert  AlertConfig
}

// Apply writes all four configuration registers. DEVICE_CONFIG goes last
// because it selects the operating mode.
func (d *Device) Apply(s Settings) error {
	if err := d.ApplySensorConfig(s.Sensor); err != nil {
		return err
	}
	if err := d.ApplySystemConfig(s.System); err != nil {
		return err
	}
	if err := d.ApplyAlertConfig(s.Alert); err != nil {
		return err
	}
	return d.ApplyDeviceConfig(s.Device)
}

// ReadSettings reads back the four configuration registers. A value holding
// reserved bits or codes is reported as an error.
func (d *Device) ReadSettings() (Settings, error) {
	var s Settings
	var raw [4]uint16
	for i, reg := range []Register{RegDeviceConfig, RegSensorConfig, RegSystemConfig, RegAlertConfig} {
		v, err := d.ReadRegister(reg, CmdNone)
		if err != nil {
			return Settings{}, err
		}
		raw[i] = v
	}
	var err error
	if s.Device, err = DecodeDeviceConfig(raw[0]); err != nil {
		return Settings{}, err
	}
	if s.Sensor, err = DecodeSensorConfig(raw[1]); err != nil {
		return Settings{}, err
	}
	if s.System, err = DecodeSystemConfig(raw[2]); err != nil {
		return Settings{}, err
	}
	if s.Alert, err = DecodeAlertConfig(raw[3]); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SetThreshold programs one of the *_THRX_CONFIG registers: the upper limit
// goes in the high byte and the lower limit in the low byte.
func (d *Device) SetThreshold(reg Register, high, low int8) error {
	if !reg.isThreshold() {
		return fmt.Errorf("tmag5170: %s is not a threshold register", reg)
	}
	v := uint16(uint8(high))<<8 | uint16(uint8(low))
	return d.WriteRegister(reg, v, CmdNone)
}
