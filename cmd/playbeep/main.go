package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/cbegin/mml2beep-go"
	"github.com/cbegin/mml2beep-go/internal/tone"
)

const defaultMML = "t120 l4 o4 c d e f g a b >c"

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		track      = flag.Int("track", 1, "1-based track to play")
		mmlPath    = flag.String("file", "", "path to an MML file")
		mmlInline  = flag.String("mml", "", "inline MML string")
	)
	flag.Parse()

	mmlText, err := resolveMMLInput(*mmlPath, *mmlInline)
	if err != nil {
		log.Fatal(err)
	}
	events, err := mml2beep.ParseTrack(mmlText, *track)
	if err != nil {
		log.Fatal(err)
	}

	ctx := ebitaudio.NewContext(*sampleRate)
	gen := tone.NewGenerator(events, *sampleRate)
	pl, err := ctx.NewPlayerF32(tone.NewReader(gen))
	if err != nil {
		log.Fatal(err)
	}
	pl.Play()
	for pl.IsPlaying() {
		time.Sleep(20 * time.Millisecond)
	}
	if err := pl.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("playback completed")
}

func resolveMMLInput(path string, inline string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return defaultMML, nil
}
