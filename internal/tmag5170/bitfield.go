package tmag5170

import (
	"fmt"
	"strings"
)

// field is a width-bit slice of a 16-bit configuration register.
type field struct {
	shift uint
	width uint
}

func (f field) mask() uint16 { return (uint16(1)<<f.width - 1) << f.shift }

// set replaces the field in reg, leaving all other bits unchanged.
func (f field) set(reg, v uint16) uint16 {
	return reg&^f.mask() | (v<<f.shift)&f.mask()
}

func (f field) get(reg uint16) uint16 { return (reg & f.mask()) >> f.shift }

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// Field enums parse from the lower-case names used in YAML config.

func parseEnum[T ~uint8](kind string, names map[string]T, s string) (T, error) {
	v, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("tmag5170: unknown %s %q", kind, s)
	}
	return v, nil
}

func enumString[T ~uint8](kind string, names map[string]T, v T) string {
	for n, x := range names {
		if x == v {
			return n
		}
	}
	return fmt.Sprintf("%s(0x%X)", kind, uint8(v))
}
