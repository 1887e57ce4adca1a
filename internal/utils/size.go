package utils

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

const (
	sizeUnitStep     = 1024.0
	sizeOverflowUnit = "PB"
	sizeFormat       = "%.1f %s"
)

// FormatSize renders a byte count with one fractional digit in the first unit
// whose value stays below 1024, falling through to PB.
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	value := float64(bytes)
	for _, unit := range sizeUnits {
		if value < sizeUnitStep {
			return fmt.Sprintf(sizeFormat, value, unit)
		}
		value /= sizeUnitStep
	}
	return fmt.Sprintf(sizeFormat, value, sizeOverflowUnit)
}
