// Package util holds small formatting helpers shared by the client layers.
package util

import (
	"strconv"
)

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with binary units, e.g. "5.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + sizeUnits[unit]
}
