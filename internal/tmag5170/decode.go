package tmag5170

import "fmt"

// Decode* validate a value read back from the device: reserved bits must be
// clear and every enumerated field must hold a defined code. The
// *FromUint16 conversions skip these checks.

func DecodeDeviceConfig(v uint16) (DeviceConfig, error) {
	c := DeviceConfig(v)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

func DecodeSensorConfig(v uint16) (SensorConfig, error) {
	c := SensorConfig(v)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

func DecodeSystemConfig(v uint16) (SystemConfig, error) {
	c := SystemConfig(v)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

func DecodeAlertConfig(v uint16) (AlertConfig, error) {
	c := AlertConfig(v)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

func (c DeviceConfig) Validate() error {
	v := uint16(c)
	return firstErr(
		checkReserved(RegDeviceConfig, v,
			fieldConvAvg, fieldMagTempco, fieldOperatingMode,
			fieldTEn, fieldTRate, fieldTLimitCheckEn, fieldTCompEn),
		checkEnum("conv_avg", convAvgNames, c.ConvAvg()),
		checkEnum("mag_tempco", magTempcoNames, c.MagTempco()),
		checkEnum("operating_mode", operatingModeNames, c.OperatingMode()),
	)
}

// Every SENSOR_CONFIG bit belongs to a field.
func (c SensorConfig) Validate() error {
	return firstErr(
		checkEnum("sleep_time", sleepTimeNames, c.SleepTime()),
		checkEnum("x_range", rangeNames, c.XRange()),
		checkEnum("y_range", rangeNames, c.YRange()),
		checkEnum("z_range", rangeNames, c.ZRange()),
	)
}

func (c SystemConfig) Validate() error {
	return firstErr(
		checkReserved(RegSystemConfig, uint16(c),
			fieldDiagSel, fieldTriggerMode, fieldDataType, fieldDiagEn,
			fieldZLimitCheck, fieldYLimitCheck, fieldXLimitCheck),
		checkEnum("trigger_mode", triggerModeNames, c.TriggerMode()),
	)
}

func (c AlertConfig) Validate() error {
	return checkReserved(RegAlertConfig, uint16(c),
		fieldAlertLatch, fieldAlertMode, fieldStatusAlrt, fieldRsltAlrt,
		fieldThrxCount, fieldTThrxAlrt, fieldZThrxAlrt, fieldYThrxAlrt, fieldXThrxAlrt)
}

func checkReserved(reg Register, v uint16, fields ...field) error {
	var used uint16
	for _, f := range fields {
		used |= f.mask()
	}
	if extra := v &^ used; extra != 0 {
		return fmt.Errorf("tmag5170: %s: reserved bits 0x%04X set", reg, extra)
	}
	return nil
}

func checkEnum[T ~uint8](kind string, names map[string]T, v T) error {
	for _, x := range names {
		if x == v {
			return nil
		}
	}
	return fmt.Errorf("tmag5170: reserved %s code 0x%X", kind, uint8(v))
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
