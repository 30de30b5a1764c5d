package tone

import (
	"math"

	intmml "github.com/cbegin/mml2beep-go/internal/mml"
)

// Generator renders an event list as an interleaved stereo square-wave
// sample stream, one event after another, the way a buzzer would play it.
// Frequency 0 renders as silence for the event's duration. Once the last
// event has played out the generator emits silence and reports Finished.
type Generator struct {
	sampleRate float64
	gain       float64
	events     []intmml.Event
	idx        int
	frameInEvt int
	evtFrames  int
	phase      float64
	done       bool
}

func NewGenerator(events []intmml.Event, sampleRate int) *Generator {
	g := &Generator{
		sampleRate: float64(sampleRate),
		gain:       0.25,
		events:     events,
	}
	g.loadEvent()
	return g
}

func (g *Generator) Finished() bool { return g.done }

// Process fills dst with interleaved stereo frames.
func (g *Generator) Process(dst []float32) {
	frames := len(dst) / 2
	for f := 0; f < frames; f++ {
		var s float32
		if !g.done {
			evt := g.events[g.idx]
			if evt.FrequencyHz > 0 {
				if g.phase < 0.5 {
					s = float32(g.gain)
				} else {
					s = float32(-g.gain)
				}
				g.phase += float64(evt.FrequencyHz) / g.sampleRate
				if g.phase >= 1 {
					g.phase -= 1
				}
			}
			g.frameInEvt++
			if g.frameInEvt >= g.evtFrames {
				g.idx++
				g.loadEvent()
			}
		}
		dst[f*2] = s
		dst[f*2+1] = s
	}
}

// loadEvent positions the generator at the start of the current event,
// skipping zero-duration entries. Resetting the phase gives every note a
// clean attack edge.
func (g *Generator) loadEvent() {
	for g.idx < len(g.events) {
		ms := g.events[g.idx].DurationMs
		frames := int(math.Round(float64(ms) * g.sampleRate / 1000))
		if frames > 0 {
			g.frameInEvt = 0
			g.evtFrames = frames
			g.phase = 0
			return
		}
		g.idx++
	}
	g.done = true
}

// RenderSamples renders the whole event list offline at sampleRate,
// returning interleaved stereo float32 frames.
func RenderSamples(events []intmml.Event, sampleRate int) []float32 {
	totalMs := 0
	for _, e := range events {
		totalMs += e.DurationMs
	}
	frames := int(math.Round(float64(totalMs) * float64(sampleRate) / 1000))
	out := make([]float32, frames*2)
	NewGenerator(events, sampleRate).Process(out)
	return out
}
