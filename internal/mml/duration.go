package mml

import "math"

// NoteDuration converts a length denominator (4 = quarter, 1 = whole) at
// the given tempo into milliseconds. A beat is a quarter note. Dotting
// extends the base duration by half. Rounding never drops below 1 ms so a
// note can't vanish entirely.
func NoteDuration(tempo, length int, dotted bool) int {
	ms := 240000.0 / (float64(tempo) * float64(length))
	if dotted {
		ms *= 1.5
	}
	d := int(math.Round(ms))
	if d < 1 {
		d = 1
	}
	return d
}
