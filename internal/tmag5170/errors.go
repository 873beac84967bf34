package tmag5170

import (
	"errors"
	"fmt"
)

// ErrCRC reports that the CRC nibble returned by the device did not match
// the one recomputed over the response. Match it with errors.Is.
var ErrCRC = errors.New("tmag5170: crc mismatch")

const (
	opRead    = "read"
	opWrite   = "write"
	opSpecial = "special read"
)

// TransportError wraps a failed bus transfer. The device state after a
// failed write is unknown.
type TransportError struct {
	Op  string
	Reg Register
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tmag5170: %s: transfer failed: %v", where(e.Op, e.Reg), e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// CRCError carries the mismatching nibbles; it matches ErrCRC.
type CRCError struct {
	Op   string
	Reg  Register
	Got  byte // from the device
	Want byte // recomputed locally
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("tmag5170: %s: crc mismatch got=0x%X want=0x%X", where(e.Op, e.Reg), e.Got, e.Want)
}

func (e *CRCError) Is(target error) bool { return target == ErrCRC }

// IsTransport reports whether err came from the underlying bus rather than
// from a data-integrity check.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func where(op string, reg Register) string {
	if op == opSpecial {
		return op
	}
	return op + " " + reg.String()
}
