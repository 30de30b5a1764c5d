package mml

import "fmt"

// Interpreter converts one track's command stream into playback events. The
// scan is a single forward pass; the only lookback is the pending slot used
// to merge tied notes, so emitted events are never rewritten.
type Interpreter struct {
	cfg Config
}

func NewInterpreter(cfg Config) *Interpreter { return &Interpreter{cfg: cfg} }

// Run interprets one track's text with fresh performance state.
func (in *Interpreter) Run(src string) ([]Event, error) {
	st := State{
		Octave: in.cfg.DefaultOctave,
		Length: in.cfg.DefaultLength,
		Tempo:  in.cfg.DefaultTempo,
	}
	events := make([]Event, 0, 64)
	var pending Event
	havePending := false
	tieOpen := false
	sc := NewScanner(src)
	for {
		cmd, ok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch cmd.Kind {
		case CmdNote, CmdRest, CmdNoteNumber:
			evt, err := in.makeEvent(cmd, st)
			if err != nil {
				return nil, err
			}
			if tieOpen {
				if evt.FrequencyHz != pending.FrequencyHz {
					return nil, fmt.Errorf("%w at offset %d: %d Hz after %d Hz",
						ErrTieMismatch, cmd.Pos, evt.FrequencyHz, pending.FrequencyHz)
				}
				pending.DurationMs += evt.DurationMs
			} else {
				if havePending {
					events = append(events, pending)
				}
				pending = evt
				havePending = true
			}
			tieOpen = cmd.Tied
		case CmdSetOctave:
			n := in.cfg.DefaultOctave
			if cmd.HasValue {
				n = cmd.Value
			}
			if n < in.cfg.MinOctave || n > in.cfg.MaxOctave {
				return nil, fmt.Errorf("%w: o%d at offset %d", ErrInvalidOctave, n, cmd.Pos)
			}
			st.Octave = n
		case CmdShiftOctave:
			n := st.Octave + cmd.Value
			if n < in.cfg.MinOctave || n > in.cfg.MaxOctave {
				return nil, fmt.Errorf("%w: shift to %d at offset %d", ErrInvalidOctave, n, cmd.Pos)
			}
			st.Octave = n
		case CmdSetLength:
			switch {
			case !cmd.HasValue:
				st.Length = in.cfg.DefaultLength
			case cmd.Value <= 0:
				return nil, fmt.Errorf("%w: l%d at offset %d", ErrInvalidLength, cmd.Value, cmd.Pos)
			default:
				st.Length = cmd.Value
			}
			// A dot on the l command sticks: later notes without an explicit
			// length inherit the dotted duration.
			st.Dotted = cmd.Dotted
		case CmdSetTempo:
			bpm := in.cfg.DefaultTempo
			if cmd.HasValue {
				bpm = cmd.Value
			}
			if bpm <= 0 {
				return nil, fmt.Errorf("%w: t%d at offset %d", ErrInvalidTempo, bpm, cmd.Pos)
			}
			st.Tempo = bpm
		case CmdSetVolume:
			// Parsed for well-formedness only; the target device has no
			// volume control.
		}
	}
	if tieOpen {
		return nil, fmt.Errorf("%w: tie left open at end of track", ErrTieMismatch)
	}
	if havePending {
		events = append(events, pending)
	}
	return events, nil
}

func (in *Interpreter) makeEvent(cmd Command, st State) (Event, error) {
	switch cmd.Kind {
	case CmdRest:
		length, dotted := effectiveLength(cmd, st)
		if length <= 0 {
			return Event{}, fmt.Errorf("%w: %d at offset %d", ErrInvalidLength, length, cmd.Pos)
		}
		return Event{DurationMs: NoteDuration(st.Tempo, length, dotted)}, nil
	case CmdNoteNumber:
		// n<number> is an absolute pitch (1 = C1); it always takes the
		// running default length.
		if cmd.Value < in.cfg.MinNoteNumber || cmd.Value > in.cfg.MaxNoteNumber {
			return Event{}, fmt.Errorf("%w: n%d at offset %d", ErrInvalidNoteNumber, cmd.Value, cmd.Pos)
		}
		semitone := (cmd.Value - 1) % 12
		octave := (cmd.Value-1)/12 + 1
		return Event{
			FrequencyHz: NoteFrequency(semitone, octave),
			DurationMs:  NoteDuration(st.Tempo, st.Length, st.Dotted),
		}, nil
	default:
		semitone := noteOffsets[cmd.Letter] + cmd.Accidental
		octave := st.Octave
		// c- and b+ wrap into the neighbouring octave.
		if semitone < 0 {
			semitone += 12
			octave--
		} else if semitone >= 12 {
			semitone -= 12
			octave++
		}
		if octave < in.cfg.MinOctave || octave > in.cfg.MaxOctave {
			return Event{}, fmt.Errorf("%w: octave %d at offset %d", ErrInvalidOctave, octave, cmd.Pos)
		}
		length, dotted := effectiveLength(cmd, st)
		if length <= 0 {
			return Event{}, fmt.Errorf("%w: %d at offset %d", ErrInvalidLength, length, cmd.Pos)
		}
		return Event{
			FrequencyHz: NoteFrequency(semitone, octave),
			DurationMs:  NoteDuration(st.Tempo, length, dotted),
		}, nil
	}
}

// effectiveLength resolves a note or rest's length against the defaults: an
// explicit length replaces both the default denominator and its dottedness.
func effectiveLength(cmd Command, st State) (int, bool) {
	if cmd.HasValue {
		return cmd.Value, cmd.Dotted
	}
	return st.Length, st.Dotted || cmd.Dotted
}
