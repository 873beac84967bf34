package main

import (
	"fmt"
	"io"
	"strings"

	"tmag5170-ng/internal/monitor"
	"tmag5170-ng/internal/tmag5170"
)

type registerReader interface {
	ReadRegister(reg tmag5170.Register, cmd tmag5170.Command) (uint16, error)
}

// dumpRegisters reads every register once, in address order. A failed read
// is printed in place and the dump continues; the first failure is returned.
func dumpRegisters(w io.Writer, r registerReader) error {
	var firstErr error
	for _, reg := range tmag5170.Registers() {
		v, err := r.ReadRegister(reg, tmag5170.CmdNone)
		if err != nil {
			fmt.Fprintf(w, "%-16s (0x%02X): error: %v\n", reg, reg.Addr(), err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(w, "%-16s (0x%02X): 0x%04X\n", reg, reg.Addr(), v)
	}
	return firstErr
}

func formatSample(s monitor.Sample) string {
	if s.Mode == monitor.ModeRegisters {
		return fmt.Sprintf("sample x=%d y=%d z=%d temp=%d", s.X, s.Y, s.Z, s.Temp)
	}
	return fmt.Sprintf("sample first=0x%03X second=0x%03X", s.First, s.Second)
}

func formatSnapshot(s monitor.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "monitor running=%t samples=%d crc_errors=%d transport_errors=%d",
		s.Running, s.Samples, s.CRCErrors, s.TransportErrors)
	if s.LastError != "" {
		fmt.Fprintf(&b, " last_error=%q", s.LastError)
	}
	return b.String()
}
