package tokenfile

import (
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/yndnr/enigma-go/pkg/enigma"
)

// Read opens path and parses its tokens. Errors opening the file are
// returned wrapped; parse errors are *enigma.Error with kind MalformedToken.
func Read(path string) ([]enigma.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse splits data into whitespace-delimited integer tokens. source names
// the data in positions. A token with any character other than an ASCII
// digit is malformed.
func Parse(source string, data []byte) ([]enigma.Token, error) {
	s := scanner{source: source, data: data, line: 1, col: 1}
	var tokens []enigma.Token

	for {
		s.skipSpace()
		if s.pos >= len(s.data) {
			return tokens, nil
		}
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

type scanner struct {
	source string
	data   []byte
	pos    int
	line   int
	col    int
}

func (s *scanner) advance() rune {
	r, size := utf8.DecodeRune(s.data[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.data[s.pos:])
	return r
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.data) && unicode.IsSpace(s.peek()) {
		s.advance()
	}
}

// next reads one token starting at the current, non-space position.
func (s *scanner) next() (enigma.Token, error) {
	start := enigma.Position{Source: s.source, Offset: s.pos, Line: s.line, Column: s.col}
	begin := s.pos
	digits := true

	for s.pos < len(s.data) && !unicode.IsSpace(s.peek()) {
		if r := s.advance(); r < '0' || r > '9' {
			digits = false
		}
	}
	text := string(s.data[begin:s.pos])

	malformed := &enigma.Error{
		Kind:  enigma.MalformedToken,
		Rotor: -1,
		Text:  text,
		Pos:   start,
	}
	if !digits {
		return enigma.Token{}, malformed
	}
	// Values beyond int range are still numbers; clamp them so the core
	// reports them as out of range rather than malformed.
	v, err := strconv.Atoi(text)
	if err != nil {
		v = int(^uint(0) >> 1)
	}
	return enigma.Token{Value: v, Text: text, Pos: start}, nil
}
