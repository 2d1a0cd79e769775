package terminal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Script is an IO that answers reads from a fixed list of tokens and records
// everything printed. Once the tokens run out every read fails with
// ErrInputClosed.
type Script struct {
	inputs []string
	out    strings.Builder
}

// NewScript creates a scripted IO that replays inputs in order
func NewScript(inputs ...string) *Script {
	return &Script{inputs: inputs}
}

func (s *Script) Print(text string) {
	s.out.WriteString(text)
}

func (s *Script) ReadChar() (rune, error) {
	tok, err := s.next()
	if err != nil {
		return 0, err
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r, nil
}

func (s *Script) ReadInt() (int, error) {
	tok, err := s.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("scripted input %q is not a number: %w", tok, err)
	}
	return n, nil
}

func (s *Script) ReadLine() (string, error) {
	return s.next()
}

// Output returns everything printed so far
func (s *Script) Output() string {
	return s.out.String()
}

// Remaining returns the number of unread inputs
func (s *Script) Remaining() int {
	return len(s.inputs)
}

func (s *Script) next() (string, error) {
	if len(s.inputs) == 0 {
		return "", ErrInputClosed
	}
	tok := s.inputs[0]
	s.inputs = s.inputs[1:]
	return tok, nil
}
