package exporter

import (
	"math"
	"strconv"
	"time"
)

// FormatNumber formats a float with the shortest representation that
// round-trips, without trailing zeros (2, 0.71, 2.5).
func FormatNumber(f float64) string {
	if f == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatElapsed formats a duration as seconds rounded to two decimals
func FormatElapsed(d time.Duration) string {
	return FormatNumber(math.Round(d.Seconds()*100) / 100)
}

// formatInt formats an int value for report output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
