package export

import (
	"encoding/json"
	"io"

	intmml "github.com/cbegin/mml2beep-go/internal/mml"
)

// WriteJSON serializes events as a JSON array of [frequencyHz, durationMs]
// pairs, the beep file format.
func WriteJSON(w io.Writer, events []intmml.Event) error {
	return json.NewEncoder(w).Encode(pairs(events))
}

func pairs(events []intmml.Event) [][2]int {
	out := make([][2]int, len(events))
	for i, e := range events {
		out[i] = [2]int{e.FrequencyHz, e.DurationMs}
	}
	return out
}
