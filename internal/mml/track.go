package mml

import (
	"fmt"
	"strings"
)

// SplitTracks divides a full score into per-track command text. A leading
// "MML@" marker (any case) is stripped, everything after the first ';' is
// ignored, and ',' separates tracks. Newlines are ordinary whitespace here;
// scores wrap lines freely inside a single track.
func SplitTracks(src string) []string {
	if len(src) >= 4 && strings.EqualFold(src[:4], "MML@") {
		src = src[4:]
	}
	if i := strings.IndexByte(src, ';'); i >= 0 {
		src = src[:i]
	}
	return strings.Split(src, ",")
}

// SelectTrack returns the text of the 1-based track index.
func SelectTrack(src string, index int) (string, error) {
	tracks := SplitTracks(src)
	if index < 1 || index > len(tracks) {
		return "", fmt.Errorf("%w: %d of %d", ErrTrackIndexOutOfRange, index, len(tracks))
	}
	return tracks[index-1], nil
}
