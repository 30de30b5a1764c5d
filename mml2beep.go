// Package mml2beep converts Music Macro Language scores into flat
// sequences of [frequency, duration] pairs for single-tone devices such as
// PC speakers, piezo buzzers and tone-generation APIs.
package mml2beep

import (
	intmml "github.com/cbegin/mml2beep-go/internal/mml"
)

// Event is one playback step: hold FrequencyHz for DurationMs. A frequency
// of 0 means silence.
type Event = intmml.Event

// SyntaxError reports an unrecognized character and its byte offset.
type SyntaxError = intmml.SyntaxError

var (
	ErrInvalidOctave        = intmml.ErrInvalidOctave
	ErrInvalidLength        = intmml.ErrInvalidLength
	ErrInvalidTempo         = intmml.ErrInvalidTempo
	ErrInvalidNoteNumber    = intmml.ErrInvalidNoteNumber
	ErrTieMismatch          = intmml.ErrTieMismatch
	ErrTrackIndexOutOfRange = intmml.ErrTrackIndexOutOfRange
)

// Parse interprets every track in the score. Tracks are separated by ','
// and each is interpreted independently with fresh state.
func Parse(score string) ([][]Event, error) {
	in := intmml.NewInterpreter(intmml.DefaultConfig())
	texts := intmml.SplitTracks(score)
	tracks := make([][]Event, 0, len(texts))
	for _, text := range texts {
		events, err := in.Run(text)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, events)
	}
	return tracks, nil
}

// ParseTrack interprets a single track selected by 1-based index.
func ParseTrack(score string, track int) ([]Event, error) {
	text, err := intmml.SelectTrack(score, track)
	if err != nil {
		return nil, err
	}
	return intmml.NewInterpreter(intmml.DefaultConfig()).Run(text)
}
