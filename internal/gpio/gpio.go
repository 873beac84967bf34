// Package gpio drives the sensor's chip-select and watches its ALERT pin
// through the Linux GPIO character device.
package gpio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LineName maps a BCM pin number to the line name exposed on Raspberry Pi
// kernels ("GPIO8").
func LineName(pin int) string {
	return fmt.Sprintf("GPIO%d", pin)
}

// chipCandidates lists gpiochip nodes to probe, most likely first. Pi 5
// kernels can expose the header on gpiochip0 or gpiochip4.
func chipCandidates(devDir string) []string {
	out := []string{filepath.Join(devDir, "gpiochip0"), filepath.Join(devDir, "gpiochip4")}
	seen := map[string]bool{out[0]: true, out[1]: true}
	entries, _ := os.ReadDir(devDir)
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "gpiochip") {
			continue
		}
		p := filepath.Join(devDir, name)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
