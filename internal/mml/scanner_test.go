package mml

import (
	"errors"
	"testing"
)

func scanAll(t *testing.T, src string) []Command {
	t.Helper()
	sc := NewScanner(src)
	var cmds []Command
	for {
		cmd, ok, err := sc.Next()
		if err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if !ok {
			return cmds
		}
		cmds = append(cmds, cmd)
	}
}

func TestScanNoteWithAccidentalLengthDotTie(t *testing.T) {
	cmds := scanAll(t, "c+8.&")
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	c := cmds[0]
	if c.Kind != CmdNote || c.Letter != 'c' || c.Accidental != 1 {
		t.Fatalf("unexpected note command: %+v", c)
	}
	if !c.HasValue || c.Value != 8 || !c.Dotted || !c.Tied {
		t.Fatalf("expected length 8 dotted tied, got %+v", c)
	}
}

func TestScanSharpAliasAndFlat(t *testing.T) {
	cmds := scanAll(t, "f#g-")
	if cmds[0].Accidental != 1 {
		t.Fatalf("expected '#' to read as sharp, got %+v", cmds[0])
	}
	if cmds[1].Accidental != -1 {
		t.Fatalf("expected '-' to read as flat, got %+v", cmds[1])
	}
}

func TestScanUppercaseAndWhitespace(t *testing.T) {
	cmds := scanAll(t, " C D\r\nE\t")
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	for i, want := range []byte{'c', 'd', 'e'} {
		if cmds[i].Kind != CmdNote || cmds[i].Letter != want {
			t.Fatalf("command %d: expected note %q, got %+v", i, want, cmds[i])
		}
	}
}

func TestScanSyntaxErrorCarriesPosition(t *testing.T) {
	sc := NewScanner("c d ? e")
	for i := 0; i < 2; i++ {
		if _, _, err := sc.Next(); err != nil {
			t.Fatalf("unexpected error before bad character: %v", err)
		}
	}
	_, _, err := sc.Next()
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if syn.Pos != 4 || syn.Char != '?' {
		t.Fatalf("expected '?' at offset 4, got %q at %d", syn.Char, syn.Pos)
	}
}

func TestScanDetachedTieRejected(t *testing.T) {
	sc := NewScanner("c &c")
	if _, _, err := sc.Next(); err != nil {
		t.Fatalf("unexpected error on note: %v", err)
	}
	_, _, err := sc.Next()
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected SyntaxError for detached '&', got %v", err)
	}
	if syn.Char != '&' {
		t.Fatalf("expected offending '&', got %q", syn.Char)
	}
}

func TestScanCommandsWithOptionalDigits(t *testing.T) {
	cmds := scanAll(t, "o l8. t v12 o5 > <")
	if cmds[0].Kind != CmdSetOctave || cmds[0].HasValue {
		t.Fatalf("expected bare o without value, got %+v", cmds[0])
	}
	if cmds[1].Kind != CmdSetLength || cmds[1].Value != 8 || !cmds[1].Dotted {
		t.Fatalf("expected l8. command, got %+v", cmds[1])
	}
	if cmds[2].Kind != CmdSetTempo || cmds[2].HasValue {
		t.Fatalf("expected bare t without value, got %+v", cmds[2])
	}
	if cmds[3].Kind != CmdSetVolume || cmds[3].Value != 12 {
		t.Fatalf("expected v12 command, got %+v", cmds[3])
	}
	if cmds[4].Kind != CmdSetOctave || cmds[4].Value != 5 {
		t.Fatalf("expected o5 command, got %+v", cmds[4])
	}
	if cmds[5].Kind != CmdShiftOctave || cmds[5].Value != 1 {
		t.Fatalf("expected '>' to shift up, got %+v", cmds[5])
	}
	if cmds[6].Kind != CmdShiftOctave || cmds[6].Value != -1 {
		t.Fatalf("expected '<' to shift down, got %+v", cmds[6])
	}
}

func TestScanNoteNumberRequiresDigits(t *testing.T) {
	cmds := scanAll(t, "n60")
	if len(cmds) != 1 || cmds[0].Kind != CmdNoteNumber || cmds[0].Value != 60 {
		t.Fatalf("expected n60 command, got %+v", cmds)
	}
	_, _, err := NewScanner("n c").Next()
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected SyntaxError for bare n, got %v", err)
	}
}

func TestScanRestWithLength(t *testing.T) {
	cmds := scanAll(t, "r2. r")
	if cmds[0].Kind != CmdRest || cmds[0].Value != 2 || !cmds[0].Dotted {
		t.Fatalf("expected r2. command, got %+v", cmds[0])
	}
	if cmds[1].Kind != CmdRest || cmds[1].HasValue {
		t.Fatalf("expected bare rest, got %+v", cmds[1])
	}
}
