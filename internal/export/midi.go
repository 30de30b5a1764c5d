package export

import (
	"fmt"
	"io"
	"math"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	intmml "github.com/cbegin/mml2beep-go/internal/mml"
)

const (
	midiTempoBPM = 120
	midiVelocity = 100
)

// WriteMIDI serializes events as a single-track standard MIDI file at a
// fixed 120 BPM. Each audible event's frequency is mapped back to the
// nearest MIDI key; silent events become delta time before the next note.
func WriteMIDI(w io.Writer, events []intmml.Event) error {
	ticks := smf.MetricTicks(480)
	s := smf.New()
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(midiTempoBPM))
	delta := uint32(0)
	for _, e := range events {
		d := ticks.Ticks(midiTempoBPM, time.Duration(e.DurationMs)*time.Millisecond)
		if e.FrequencyHz == 0 {
			delta += d
			continue
		}
		key, err := frequencyToKey(e.FrequencyHz)
		if err != nil {
			return err
		}
		tr.Add(delta, midi.NoteOn(0, key, midiVelocity))
		tr.Add(d, midi.NoteOff(0, key))
		delta = 0
	}
	tr.Close(delta)
	if err := s.Add(tr); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

// frequencyToKey inverts equal temperament: key 69 = A4 = 440 Hz.
func frequencyToKey(hz int) (uint8, error) {
	key := int(math.Round(69 + 12*math.Log2(float64(hz)/440)))
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("frequency %d Hz outside the MIDI key range", hz)
	}
	return uint8(key), nil
}
