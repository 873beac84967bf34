package tmag5170

// AlertConfig is the ALERT_CONFIG register value.
type AlertConfig uint16

var (
	fieldAlertLatch = field{shift: 13, width: 1}
	fieldAlertMode  = field{shift: 12, width: 1}
	fieldStatusAlrt = field{shift: 11, width: 1}
	fieldRsltAlrt   = field{shift: 8, width: 1}
	fieldThrxCount  = field{shift: 4, width: 2}
	fieldTThrxAlrt  = field{shift: 3, width: 1}
	fieldZThrxAlrt  = field{shift: 2, width: 1}
	fieldYThrxAlrt  = field{shift: 1, width: 1}
	fieldXThrxAlrt  = field{shift: 0, width: 1}
)

type AlertLatch uint8

const (
	// AlertNotLatched asserts ALERT only while its source is present.
	AlertNotLatched AlertLatch = 0x0
	// AlertLatched holds ALERT until the matching status or result
	// register is read.
	AlertLatched AlertLatch = 0x1
)

var alertLatchNames = map[string]AlertLatch{
	"not_latched": AlertNotLatched, "latched": AlertLatched,
}

func ParseAlertLatch(s string) (AlertLatch, error) {
	return parseEnum("alert_latch", alertLatchNames, s)
}
func (v AlertLatch) String() string { return enumString("AlertLatch", alertLatchNames, v) }

type AlertMode uint8

const (
	AlertInterrupt AlertMode = 0x0
	// AlertComparator implements a Hall switch from the *_THRX_ALRT settings
	// and overrides the interrupt function.
	AlertComparator AlertMode = 0x1
)

var alertModeNames = map[string]AlertMode{
	"interrupt": AlertInterrupt, "comparator": AlertComparator,
}

func ParseAlertMode(s string) (AlertMode, error) { return parseEnum("alert_mode", alertModeNames, s) }
func (v AlertMode) String() string               { return enumString("AlertMode", alertModeNames, v) }

// ThrxCount is the number of conversions beyond a threshold before ALERT.
type ThrxCount uint8

const (
	Thrx1 ThrxCount = 0x0
	Thrx2 ThrxCount = 0x1
	Thrx3 ThrxCount = 0x2
	Thrx4 ThrxCount = 0x3
)

var thrxCountNames = map[string]ThrxCount{
	"1": Thrx1, "2": Thrx2, "3": Thrx3, "4": Thrx4,
}

func ParseThrxCount(s string) (ThrxCount, error) { return parseEnum("thrx_count", thrxCountNames, s) }
func (v ThrxCount) String() string               { return enumString("ThrxCount", thrxCountNames, v) }

func AlertConfigFromUint16(v uint16) AlertConfig { return AlertConfig(v) }

func (c AlertConfig) Uint16() uint16 { return uint16(c) }

func (c AlertConfig) with(f field, v uint16) AlertConfig {
	return AlertConfig(f.set(uint16(c), v))
}

func (c AlertConfig) WithAlertLatch(v AlertLatch) AlertConfig {
	return c.with(fieldAlertLatch, uint16(v))
}

func (c AlertConfig) WithAlertMode(v AlertMode) AlertConfig {
	return c.with(fieldAlertMode, uint16(v))
}

// WithStatusAlrt raises ALERT on AFE_STATUS/SYS_STATUS faults.
func (c AlertConfig) WithStatusAlrt(on bool) AlertConfig {
	return c.with(fieldStatusAlrt, b2u(on))
}

// WithRsltAlrt raises ALERT when a conversion set completes.
func (c AlertConfig) WithRsltAlrt(on bool) AlertConfig {
	return c.with(fieldRsltAlrt, b2u(on))
}

func (c AlertConfig) WithThrxCount(v ThrxCount) AlertConfig {
	return c.with(fieldThrxCount, uint16(v))
}

func (c AlertConfig) WithTThrxAlrt(on bool) AlertConfig { return c.with(fieldTThrxAlrt, b2u(on)) }
func (c AlertConfig) WithXThrxAlrt(on bool) AlertConfig { return c.with(fieldXThrxAlrt, b2u(on)) }
func (c AlertConfig) WithYThrxAlrt(on bool) AlertConfig { return c.with(fieldYThrxAlrt, b2u(on)) }
func (c AlertConfig) WithZThrxAlrt(on bool) AlertConfig { return c.with(fieldZThrxAlrt, b2u(on)) }

func (c AlertConfig) AlertLatch() AlertLatch { return AlertLatch(fieldAlertLatch.get(uint16(c))) }
func (c AlertConfig) AlertMode() AlertMode   { return AlertMode(fieldAlertMode.get(uint16(c))) }
func (c AlertConfig) StatusAlrt() bool       { return fieldStatusAlrt.get(uint16(c)) != 0 }
func (c AlertConfig) RsltAlrt() bool         { return fieldRsltAlrt.get(uint16(c)) != 0 }
func (c AlertConfig) ThrxCount() ThrxCount   { return ThrxCount(fieldThrxCount.get(uint16(c))) }
func (c AlertConfig) TThrxAlrt() bool        { return fieldTThrxAlrt.get(uint16(c)) != 0 }
func (c AlertConfig) XThrxAlrt() bool        { return fieldXThrxAlrt.get(uint16(c)) != 0 }
func (c AlertConfig) YThrxAlrt() bool        { return fieldYThrxAlrt.get(uint16(c)) != 0 }
func (c AlertConfig) ZThrxAlrt() bool        { return fieldZThrxAlrt.get(uint16(c)) != 0 }
