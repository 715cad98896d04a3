// Package timefmt formats durations expressed in minutes for chart axes
// and labels.
package timefmt

import (
	"math"
	"strconv"
)

// Minutes renders a number of minutes as a short human-readable string:
//
//	0.5  -> "30s"
//	45   -> "45m"
//	90   -> "1h 30m"
//	120  -> "2h"
//
// Values under a minute are shown in rounded seconds, values under an hour
// in rounded minutes, anything larger as whole hours plus the rounded
// remainder. Rounding never carries into the next unit: 0.995 is "60s"
// and 119.7 is "1h 60m".
func Minutes(minutes float64) string {
	if minutes < 1 {
		return strconv.FormatInt(roundHalfUp(minutes*60), 10) + "s"
	}
	if minutes < 60 {
		return strconv.FormatInt(roundHalfUp(minutes), 10) + "m"
	}

	hours := int64(math.Floor(minutes / 60))
	mins := roundHalfUp(math.Mod(minutes, 60))
	if mins > 0 {
		return strconv.FormatInt(hours, 10) + "h " + strconv.FormatInt(mins, 10) + "m"
	}
	return strconv.FormatInt(hours, 10) + "h"
}

// Value adapts Minutes to formatter callbacks that receive an untyped value,
// such as chart axis tick formatters. Non-numeric values render empty.
func Value(v any) string {
	switch n := v.(type) {
	case float64:
		return Minutes(n)
	case float32:
		return Minutes(float64(n))
	case int:
		return Minutes(float64(n))
	case int64:
		return Minutes(float64(n))
	default:
		return ""
	}
}

// roundHalfUp rounds x to the nearest integer with .5 going toward
// positive infinity.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
