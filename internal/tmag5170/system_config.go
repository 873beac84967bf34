package tmag5170

// SystemConfig is the SYSTEM_CONFIG register value.
type SystemConfig uint16

var (
	fieldDiagSel     = field{shift: 12, width: 2}
	fieldTriggerMode = field{shift: 9, width: 2}
	fieldDataType    = field{shift: 6, width: 3}
	fieldDiagEn      = field{shift: 5, width: 1}
	fieldZLimitCheck = field{shift: 2, width: 1}
	fieldYLimitCheck = field{shift: 1, width: 1}
	fieldXLimitCheck = field{shift: 0, width: 1}
)

type DiagSel uint8

const (
	DiagAll               DiagSel = 0x0
	DiagEnabled           DiagSel = 0x1
	DiagAllInSequence     DiagSel = 0x2
	DiagEnabledInSequence DiagSel = 0x3
)

var diagSelNames = map[string]DiagSel{
	"all":                 DiagAll,
	"enabled":             DiagEnabled,
	"all_in_sequence":     DiagAllInSequence,
	"enabled_in_sequence": DiagEnabledInSequence,
}

func ParseDiagSel(s string) (DiagSel, error) { return parseEnum("diag_sel", diagSelNames, s) }
func (v DiagSel) String() string             { return enumString("DiagSel", diagSelNames, v) }

// TriggerMode selects what starts a conversion in trigger mode.
type TriggerMode uint8

const (
	TriggerSPI   TriggerMode = 0x0 // command bits in the SPI frame
	TriggerCS    TriggerMode = 0x1 // nCS sync pulse
	TriggerAlert TriggerMode = 0x2 // ALERT sync pulse
)

var triggerModeNames = map[string]TriggerMode{
	"spi": TriggerSPI, "cs": TriggerCS, "alert": TriggerAlert,
}

func ParseTriggerMode(s string) (TriggerMode, error) {
	return parseEnum("trigger_mode", triggerModeNames, s)
}
func (v TriggerMode) String() string { return enumString("TriggerMode", triggerModeNames, v) }

// DataType selects what the special read returns.
type DataType uint8

const (
	DataDefault DataType = 0x0 // 32-bit register access
	DataXY      DataType = 0x1
	DataXZ      DataType = 0x2
	DataZY      DataType = 0x3
	DataXT      DataType = 0x4
	DataYT      DataType = 0x5
	DataZT      DataType = 0x6
	DataAM      DataType = 0x7 // angle + magnitude
)

var dataTypeNames = map[string]DataType{
	"default": DataDefault, "xy": DataXY, "xz": DataXZ, "zy": DataZY,
	"xt": DataXT, "yt": DataYT, "zt": DataZT, "am": DataAM,
}

func ParseDataType(s string) (DataType, error) { return parseEnum("data_type", dataTypeNames, s) }
func (v DataType) String() string              { return enumString("DataType", dataTypeNames, v) }

func SystemConfigFromUint16(v uint16) SystemConfig { return SystemConfig(v) }

func (c SystemConfig) Uint16() uint16 { return uint16(c) }

func (c SystemConfig) with(f field, v uint16) SystemConfig {
	return SystemConfig(f.set(uint16(c), v))
}

func (c SystemConfig) WithDiagSel(v DiagSel) SystemConfig {
	return c.with(fieldDiagSel, uint16(v))
}

func (c SystemConfig) WithTriggerMode(v TriggerMode) SystemConfig {
	return c.with(fieldTriggerMode, uint16(v))
}

func (c SystemConfig) WithDataType(v DataType) SystemConfig {
	return c.with(fieldDataType, uint16(v))
}

// WithDiagEn enables the AFE diagnostic tests.
func (c SystemConfig) WithDiagEn(on bool) SystemConfig { return c.with(fieldDiagEn, b2u(on)) }

// Magnetic limit checks per axis.
func (c SystemConfig) WithXLimitCheck(on bool) SystemConfig {
	return c.with(fieldXLimitCheck, b2u(on))
}
func (c SystemConfig) WithYLimitCheck(on bool) SystemConfig {
	return c.with(fieldYLimitCheck, b2u(on))
}
func (c SystemConfig) WithZLimitCheck(on bool) SystemConfig {
	return c.with(fieldZLimitCheck, b2u(on))
}

func (c SystemConfig) DiagSel() DiagSel { return DiagSel(fieldDiagSel.get(uint16(c))) }
func (c SystemConfig) TriggerMode() TriggerMode {
	return TriggerMode(fieldTriggerMode.get(uint16(c)))
}
func (c SystemConfig) DataType() DataType { return DataType(fieldDataType.get(uint16(c))) }
func (c SystemConfig) DiagEn() bool       { return fieldDiagEn.get(uint16(c)) != 0 }
func (c SystemConfig) XLimitCheck() bool  { return fieldXLimitCheck.get(uint16(c)) != 0 }
func (c SystemConfig) YLimitCheck() bool  { return fieldYLimitCheck.get(uint16(c)) != 0 }
func (c SystemConfig) ZLimitCheck() bool  { return fieldZLimitCheck.get(uint16(c)) != 0 }
