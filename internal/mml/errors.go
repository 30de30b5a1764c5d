package mml

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOctave        = errors.New("octave out of range")
	ErrInvalidLength        = errors.New("invalid note length")
	ErrInvalidTempo         = errors.New("invalid tempo")
	ErrInvalidNoteNumber    = errors.New("note number out of range")
	ErrTieMismatch          = errors.New("tied notes differ in pitch")
	ErrTrackIndexOutOfRange = errors.New("track index out of range")
)

// SyntaxError reports a character the scanner does not recognize, with its
// byte offset in the track source. Anything outside the MML alphabet is
// almost always a typo in the score, so it aborts interpretation instead of
// being skipped.
type SyntaxError struct {
	Pos  int
	Char byte
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}
