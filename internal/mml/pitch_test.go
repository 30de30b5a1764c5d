package mml

import "testing"

func TestPitchReferenceA4(t *testing.T) {
	if got := NoteFrequency(9, 4); got != 440 {
		t.Fatalf("A4 = %d Hz, want 440", got)
	}
}

func TestPitchKnownFrequencies(t *testing.T) {
	cases := []struct {
		name     string
		semitone int
		octave   int
		want     int
	}{
		{"C1", 0, 1, 33},
		{"A3", 9, 3, 220},
		{"B3", 11, 3, 247},
		{"C4", 0, 4, 262},
		{"D4", 2, 4, 294},
		{"E4", 4, 4, 330},
		{"F4", 5, 4, 349},
		{"G4", 7, 4, 392},
		{"B4", 11, 4, 494},
		{"C5", 0, 5, 523},
		{"A5", 9, 5, 880},
		{"C8", 0, 8, 4186},
		{"B8", 11, 8, 7902},
	}
	for _, tc := range cases {
		if got := NoteFrequency(tc.semitone, tc.octave); got != tc.want {
			t.Fatalf("%s = %d Hz, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPitchMonotonicLadder(t *testing.T) {
	prev := 0
	for octave := 1; octave <= 8; octave++ {
		for semitone := 0; semitone < 12; semitone++ {
			got := NoteFrequency(semitone, octave)
			if got <= prev {
				t.Fatalf("pitch ladder not increasing at octave %d semitone %d: %d after %d",
					octave, semitone, got, prev)
			}
			prev = got
		}
	}
}
