package mml

var noteOffsets = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// Scanner walks one track's text and yields syntactic commands one at a
// time. It is restartable via NewScanner and does no interpretation: numeric
// range checks belong to the Interpreter.
type Scanner struct {
	src string
	pos int
}

func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next yields the next command. ok is false once the input is exhausted.
func (s *Scanner) Next() (cmd Command, ok bool, err error) {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return Command{}, false, nil
	}
	start := s.pos
	ch := lower(s.src[s.pos])
	switch {
	case isNote(ch):
		return s.scanNote(start, ch)
	case ch == 'r':
		s.pos++
		cmd = Command{Kind: CmdRest, Pos: start}
		s.scanLength(&cmd)
		return cmd, true, nil
	case ch == 'n':
		s.pos++
		v, has := s.scanNumber()
		if !has {
			return Command{}, false, &SyntaxError{Pos: start, Char: s.src[start]}
		}
		return Command{Kind: CmdNoteNumber, Pos: start, Value: v, HasValue: true}, true, nil
	case ch == 'o':
		s.pos++
		cmd = Command{Kind: CmdSetOctave, Pos: start}
		cmd.Value, cmd.HasValue = s.scanNumber()
		return cmd, true, nil
	case ch == '>':
		s.pos++
		return Command{Kind: CmdShiftOctave, Pos: start, Value: 1, HasValue: true}, true, nil
	case ch == '<':
		s.pos++
		return Command{Kind: CmdShiftOctave, Pos: start, Value: -1, HasValue: true}, true, nil
	case ch == 'l':
		s.pos++
		cmd = Command{Kind: CmdSetLength, Pos: start}
		s.scanLength(&cmd)
		return cmd, true, nil
	case ch == 't':
		s.pos++
		cmd = Command{Kind: CmdSetTempo, Pos: start}
		cmd.Value, cmd.HasValue = s.scanNumber()
		return cmd, true, nil
	case ch == 'v':
		s.pos++
		cmd = Command{Kind: CmdSetVolume, Pos: start}
		cmd.Value, cmd.HasValue = s.scanNumber()
		return cmd, true, nil
	default:
		return Command{}, false, &SyntaxError{Pos: start, Char: s.src[start]}
	}
}

func (s *Scanner) scanNote(start int, letter byte) (Command, bool, error) {
	s.pos++
	cmd := Command{Kind: CmdNote, Pos: start, Letter: letter}
	// An accidental must immediately follow the note letter.
	if s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '+', '#':
			cmd.Accidental = 1
			s.pos++
		case '-':
			cmd.Accidental = -1
			s.pos++
		}
	}
	s.scanLength(&cmd)
	if s.pos < len(s.src) && s.src[s.pos] == '&' {
		cmd.Tied = true
		s.pos++
	}
	return cmd, true, nil
}

// scanLength reads an optional length denominator and an optional trailing
// dot into cmd.
func (s *Scanner) scanLength(cmd *Command) {
	cmd.Value, cmd.HasValue = s.scanNumber()
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		cmd.Dotted = true
		s.pos++
	}
}

func (s *Scanner) scanNumber() (int, bool) {
	i := s.pos
	v := 0
	for i < len(s.src) && s.src[i] >= '0' && s.src[i] <= '9' {
		v = v*10 + int(s.src[i]-'0')
		i++
	}
	if i == s.pos {
		return 0, false
	}
	s.pos = i
	return v, true
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\r' || b == '\t' }
func isNote(b byte) bool  { _, ok := noteOffsets[b]; return ok }
