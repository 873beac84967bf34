package tmag5170

// DeviceConfig is the DEVICE_CONFIG register value. The zero value is the
// power-on default; each With* method returns a copy with one field changed.
type DeviceConfig uint16

var (
	fieldConvAvg       = field{shift: 12, width: 3}
	fieldMagTempco     = field{shift: 8, width: 2}
	fieldOperatingMode = field{shift: 4, width: 3}
	fieldTEn           = field{shift: 3, width: 1}
	fieldTRate         = field{shift: 2, width: 1}
	fieldTLimitCheckEn = field{shift: 1, width: 1}
	fieldTCompEn       = field{shift: 0, width: 1}
)

// ConvAvg selects additional sampling per conversion.
type ConvAvg uint8

const (
	ConvAvg1x  ConvAvg = 0x0
	ConvAvg2x  ConvAvg = 0x1
	ConvAvg4x  ConvAvg = 0x2
	ConvAvg8x  ConvAvg = 0x3
	ConvAvg16x ConvAvg = 0x4
	ConvAvg32x ConvAvg = 0x5
)

var convAvgNames = map[string]ConvAvg{
	"1x": ConvAvg1x, "2x": ConvAvg2x, "4x": ConvAvg4x,
	"8x": ConvAvg8x, "16x": ConvAvg16x, "32x": ConvAvg32x,
}

func ParseConvAvg(s string) (ConvAvg, error) { return parseEnum("conv_avg", convAvgNames, s) }
func (v ConvAvg) String() string             { return enumString("ConvAvg", convAvgNames, v) }

// MagTempco is the temperature coefficient of the sense magnet.
type MagTempco uint8

const (
	MagTempcoNone    MagTempco = 0x0 // 0%, current-sensor applications
	MagTempcoNdBFe   MagTempco = 0x1 // 0.12%/°C
	MagTempcoCeramic MagTempco = 0x3 // 0.2%/°C
)

var magTempcoNames = map[string]MagTempco{
	"none": MagTempcoNone, "ndbfe": MagTempcoNdBFe, "ceramic": MagTempcoCeramic,
}

func ParseMagTempco(s string) (MagTempco, error) { return parseEnum("mag_tempco", magTempcoNames, s) }
func (v MagTempco) String() string               { return enumString("MagTempco", magTempcoNames, v) }

type OperatingMode uint8

const (
	ModeConfiguration  OperatingMode = 0x0
	ModeStandby        OperatingMode = 0x1
	ModeActive         OperatingMode = 0x2
	ModeActiveTrigger  OperatingMode = 0x3
	ModeWakeupAndSleep OperatingMode = 0x4
	ModeSleep          OperatingMode = 0x5
	ModeDeepSleep      OperatingMode = 0x6
)

var operatingModeNames = map[string]OperatingMode{
	"configuration":    ModeConfiguration,
	"standby":          ModeStandby,
	"active":           ModeActive,
	"active_trigger":   ModeActiveTrigger,
	"wakeup_and_sleep": ModeWakeupAndSleep,
	"sleep":            ModeSleep,
	"deep_sleep":       ModeDeepSleep,
}

func ParseOperatingMode(s string) (OperatingMode, error) {
	return parseEnum("operating_mode", operatingModeNames, s)
}
func (v OperatingMode) String() string { return enumString("OperatingMode", operatingModeNames, v) }

// TRate is the temperature conversion rate, linked to CONV_AVG.
type TRate uint8

const (
	TRateSameAsSensors  TRate = 0x0
	TRateOncePerConvSet TRate = 0x1
)

var tRateNames = map[string]TRate{
	"same_rate":         TRateSameAsSensors,
	"once_per_conv_set": TRateOncePerConvSet,
}

func ParseTRate(s string) (TRate, error) { return parseEnum("t_rate", tRateNames, s) }
func (v TRate) String() string           { return enumString("TRate", tRateNames, v) }

// DeviceConfigFromUint16 accepts any raw value, including reserved bits.
// DecodeDeviceConfig rejects them.
func DeviceConfigFromUint16(v uint16) DeviceConfig { return DeviceConfig(v) }

func (c DeviceConfig) Uint16() uint16 { return uint16(c) }

func (c DeviceConfig) with(f field, v uint16) DeviceConfig {
	return DeviceConfig(f.set(uint16(c), v))
}

func (c DeviceConfig) WithConvAvg(v ConvAvg) DeviceConfig {
	return c.with(fieldConvAvg, uint16(v))
}

func (c DeviceConfig) WithMagTempco(v MagTempco) DeviceConfig {
	return c.with(fieldMagTempco, uint16(v))
}

func (c DeviceConfig) WithOperatingMode(v OperatingMode) DeviceConfig {
	return c.with(fieldOperatingMode, uint16(v))
}

// WithTEn enables the temperature channel.
func (c DeviceConfig) WithTEn(on bool) DeviceConfig {
	return c.with(fieldTEn, b2u(on))
}

func (c DeviceConfig) WithTRate(v TRate) DeviceConfig {
	return c.with(fieldTRate, uint16(v))
}

// WithTLimitCheckEn enables the temperature limit check.
func (c DeviceConfig) WithTLimitCheckEn(on bool) DeviceConfig {
	return c.with(fieldTLimitCheckEn, b2u(on))
}

// WithTCompEn uses the on-chip temperature sensor to compensate the
// magnetic channels.
func (c DeviceConfig) WithTCompEn(on bool) DeviceConfig {
	return c.with(fieldTCompEn, b2u(on))
}

func (c DeviceConfig) ConvAvg() ConvAvg { return ConvAvg(fieldConvAvg.get(uint16(c))) }
func (c DeviceConfig) MagTempco() MagTempco {
	return MagTempco(fieldMagTempco.get(uint16(c)))
}
func (c DeviceConfig) OperatingMode() OperatingMode {
	return OperatingMode(fieldOperatingMode.get(uint16(c)))
}
func (c DeviceConfig) TEn() bool           { return fieldTEn.get(uint16(c)) != 0 }
func (c DeviceConfig) TRate() TRate        { return TRate(fieldTRate.get(uint16(c))) }
func (c DeviceConfig) TLimitCheckEn() bool { return fieldTLimitCheckEn.get(uint16(c)) != 0 }
func (c DeviceConfig) TCompEn() bool       { return fieldTCompEn.get(uint16(c)) != 0 }
