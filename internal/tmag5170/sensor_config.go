package tmag5170

// SensorConfig is the SENSOR_CONFIG register value.
type SensorConfig uint16

var (
	fieldAngleEn   = field{shift: 14, width: 2}
	fieldSleepTime = field{shift: 10, width: 4}
	fieldMagChEn   = field{shift: 6, width: 4}
	fieldZRange    = field{shift: 4, width: 2}
	fieldYRange    = field{shift: 2, width: 2}
	fieldXRange    = field{shift: 0, width: 2}
)

// AngleEn selects the axis pair used for the angle calculation.
type AngleEn uint8

const (
	AngleNone AngleEn = 0x0
	AngleXY   AngleEn = 0x1
	AngleYZ   AngleEn = 0x2
	AngleZX   AngleEn = 0x3
)

var angleEnNames = map[string]AngleEn{
	"none": AngleNone, "xy": AngleXY, "yz": AngleYZ, "zx": AngleZX,
}

func ParseAngleEn(s string) (AngleEn, error) { return parseEnum("angle_en", angleEnNames, s) }
func (v AngleEn) String() string             { return enumString("AngleEn", angleEnNames, v) }

// SleepTime is the low-power time between conversions in wake-up and sleep
// mode.
type SleepTime uint8

const (
	Sleep1ms    SleepTime = 0x0
	Sleep5ms    SleepTime = 0x1
	Sleep10ms   SleepTime = 0x2
	Sleep15ms   SleepTime = 0x3
	Sleep20ms   SleepTime = 0x4
	Sleep30ms   SleepTime = 0x5
	Sleep50ms   SleepTime = 0x6
	Sleep100ms  SleepTime = 0x7
	Sleep500ms  SleepTime = 0x8
	Sleep1000ms SleepTime = 0x9
)

var sleepTimeNames = map[string]SleepTime{
	"1ms": Sleep1ms, "5ms": Sleep5ms, "10ms": Sleep10ms, "15ms": Sleep15ms,
	"20ms": Sleep20ms, "30ms": Sleep30ms, "50ms": Sleep50ms, "100ms": Sleep100ms,
	"500ms": Sleep500ms, "1000ms": Sleep1000ms,
}

func ParseSleepTime(s string) (SleepTime, error) { return parseEnum("sleep_time", sleepTimeNames, s) }
func (v SleepTime) String() string               { return enumString("SleepTime", sleepTimeNames, v) }

// MagChEn selects the magnetic channels and their sequence.
type MagChEn uint8

const (
	ChOff    MagChEn = 0x0
	ChX      MagChEn = 0x1
	ChY      MagChEn = 0x2
	ChXY     MagChEn = 0x3
	ChZ      MagChEn = 0x4
	ChZX     MagChEn = 0x5
	ChYZ     MagChEn = 0x6
	ChXYZ    MagChEn = 0x7
	ChXYX    MagChEn = 0x8
	ChYXY    MagChEn = 0x9
	ChYZY    MagChEn = 0xA
	ChZYZ    MagChEn = 0xB
	ChZXZ    MagChEn = 0xC
	ChXZX    MagChEn = 0xD
	ChXYZYX  MagChEn = 0xE
	ChXYZZYX MagChEn = 0xF
)

var magChEnNames = map[string]MagChEn{
	"off": ChOff, "x": ChX, "y": ChY, "xy": ChXY, "z": ChZ, "zx": ChZX,
	"yz": ChYZ, "xyz": ChXYZ, "xyx": ChXYX, "yxy": ChYXY, "yzy": ChYZY,
	"zyz": ChZYZ, "zxz": ChZXZ, "xzx": ChXZX, "xyzyx": ChXYZYX, "xyzzyx": ChXYZZYX,
}

func ParseMagChEn(s string) (MagChEn, error) { return parseEnum("mag_ch_en", magChEnNames, s) }
func (v MagChEn) String() string             { return enumString("MagChEn", magChEnNames, v) }

// Range selects the full-scale range of one axis. Limits differ between
// the A1 and A2 variants.
type Range uint8

const (
	RangeDefault Range = 0x0 // ±50 mT (A1) / ±200 mT (A2)
	RangeNarrow  Range = 0x1 // ±25 mT (A1) / ±133 mT (A2)
	RangeWide    Range = 0x2 // ±100 mT (A1) / ±300 mT (A2)
)

var rangeNames = map[string]Range{
	"default": RangeDefault, "narrow": RangeNarrow, "wide": RangeWide,
}

func ParseRange(s string) (Range, error) { return parseEnum("range", rangeNames, s) }
func (v Range) String() string           { return enumString("Range", rangeNames, v) }

func SensorConfigFromUint16(v uint16) SensorConfig { return SensorConfig(v) }

func (c SensorConfig) Uint16() uint16 { return uint16(c) }

func (c SensorConfig) with(f field, v uint16) SensorConfig {
	return SensorConfig(f.set(uint16(c), v))
}

func (c SensorConfig) WithAngleEn(v AngleEn) SensorConfig {
	return c.with(fieldAngleEn, uint16(v))
}

func (c SensorConfig) WithSleepTime(v SleepTime) SensorConfig {
	return c.with(fieldSleepTime, uint16(v))
}

func (c SensorConfig) WithMagChEn(v MagChEn) SensorConfig {
	return c.with(fieldMagChEn, uint16(v))
}

func (c SensorConfig) WithXRange(v Range) SensorConfig { return c.with(fieldXRange, uint16(v)) }
func (c SensorConfig) WithYRange(v Range) SensorConfig { return c.with(fieldYRange, uint16(v)) }
func (c SensorConfig) WithZRange(v Range) SensorConfig { return c.with(fieldZRange, uint16(v)) }

func (c SensorConfig) AngleEn() AngleEn     { return AngleEn(fieldAngleEn.get(uint16(c))) }
func (c SensorConfig) SleepTime() SleepTime { return SleepTime(fieldSleepTime.get(uint16(c))) }
func (c SensorConfig) MagChEn() MagChEn     { return MagChEn(fieldMagChEn.get(uint16(c))) }
func (c SensorConfig) XRange() Range        { return Range(fieldXRange.get(uint16(c))) }
func (c SensorConfig) YRange() Range        { return Range(fieldYRange.get(uint16(c))) }
func (c SensorConfig) ZRange() Range        { return Range(fieldZRange.get(uint16(c))) }
