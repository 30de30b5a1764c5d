package export

import (
	"io"

	"gopkg.in/yaml.v3"

	intmml "github.com/cbegin/mml2beep-go/internal/mml"
)

// WriteYAML serializes events as a YAML sequence of [frequencyHz,
// durationMs] pairs.
func WriteYAML(w io.Writer, events []intmml.Event) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(pairs(events)); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
