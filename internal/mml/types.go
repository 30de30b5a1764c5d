package mml

type CommandKind int

const (
	CmdNote CommandKind = iota + 1
	CmdRest
	CmdNoteNumber
	CmdSetOctave
	CmdShiftOctave
	CmdSetLength
	CmdSetTempo
	CmdSetVolume
)

// Command is one syntactic MML command as produced by the Scanner. Numeric
// payloads live in Value; HasValue distinguishes "no digits given" (use the
// current default) from an explicit value.
type Command struct {
	Kind       CommandKind
	Pos        int  // byte offset within the track source
	Letter     byte // note letter 'a'..'g', CmdNote only
	Accidental int  // +1 sharp, -1 flat, 0 natural
	Value      int
	HasValue   bool
	Dotted     bool
	Tied       bool
}

// Event is one playback step: hold FrequencyHz for DurationMs. A frequency
// of 0 is silence (a rest, or a delay on the target device).
type Event struct {
	FrequencyHz int
	DurationMs  int
}

// State is the performance state carried across commands while one track is
// interpreted. Each track gets a fresh instance.
type State struct {
	Octave int
	Length int
	Dotted bool
	Tempo  int
}

type Config struct {
	DefaultOctave int
	DefaultLength int
	DefaultTempo  int
	MinOctave     int
	MaxOctave     int
	MinNoteNumber int
	MaxNoteNumber int
}

func DefaultConfig() Config {
	return Config{
		DefaultOctave: 4,
		DefaultLength: 4,
		DefaultTempo:  120,
		MinOctave:     1,
		MaxOctave:     8,
		MinNoteNumber: 1,
		MaxNoteNumber: 96,
	}
}
