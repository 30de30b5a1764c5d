package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbegin/mml2beep-go"
	"github.com/cbegin/mml2beep-go/internal/export"
	"github.com/cbegin/mml2beep-go/internal/tone"
)

func main() {
	var (
		track      = flag.Int("track", 1, "1-based track to convert")
		format     = flag.String("format", "", "output format: json|yaml|midi|wav (default inferred from the output extension)")
		sampleRate = flag.Int("sample-rate", 48000, "sample rate for wav output")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] score.mml out.json\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatal(err)
	}
	events, err := mml2beep.ParseTrack(string(data), *track)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}

	switch resolveFormat(*format, outPath) {
	case "json":
		err = export.WriteJSON(out, events)
	case "yaml":
		err = export.WriteYAML(out, events)
	case "midi":
		err = export.WriteMIDI(out, events)
	case "wav":
		samples := tone.RenderSamples(events, *sampleRate)
		_, err = out.Write(tone.EncodeWAVFloat32LE(samples, *sampleRate, 2))
	default:
		err = fmt.Errorf("invalid -format %q (expected json|yaml|midi|wav)", *format)
	}
	if err != nil {
		out.Close()
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

func resolveFormat(format, outPath string) string {
	if format != "" {
		return strings.ToLower(strings.TrimSpace(format))
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".mid", ".midi":
		return "midi"
	case ".wav":
		return "wav"
	default:
		return "json"
	}
}
