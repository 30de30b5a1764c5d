package mml

import "math"

// NoteFrequency returns the equal-tempered frequency in integral Hz for a
// semitone (0 = C .. 11 = B) within an octave, with A4 = 440 Hz as the
// reference. Octave bounds are enforced by the Interpreter, not here.
func NoteFrequency(semitone, octave int) int {
	n := (octave-4)*12 + semitone - 9 // semitones above A4
	return int(math.Round(440 * math.Pow(2, float64(n)/12)))
}
