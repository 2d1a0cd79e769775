// Package terminal provides the text input/output collaborator the game
// engine talks to. Console reads from a real terminal; Script replays fixed
// input for tests; Discard swallows everything for automated play.
package terminal

import (
	"errors"
)

// ErrInputClosed is returned by read operations once the input stream ends.
var ErrInputClosed = errors.New("input closed")

// IO is the blocking, synchronous text interface used by rounds and sessions.
type IO interface {
	// Print writes text verbatim. No newline is added.
	Print(text string)
	// ReadChar blocks until a character is available and returns it.
	ReadChar() (rune, error)
	// ReadInt blocks until an integer is available and returns it.
	ReadInt() (int, error)
	// ReadLine returns the next non-empty line with surrounding space trimmed.
	ReadLine() (string, error)
}

// Discard is an IO that drops all output and has no input.
type Discard struct{}

func (Discard) Print(string)              {}
func (Discard) ReadChar() (rune, error)   { return 0, ErrInputClosed }
func (Discard) ReadInt() (int, error)     { return 0, ErrInputClosed }
func (Discard) ReadLine() (string, error) { return "", ErrInputClosed }
