package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Console reads whitespace separated tokens from an input stream and writes
// prompts to an output stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console over the given streams, typically os.Stdin
// and os.Stdout.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Print writes text verbatim
func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
}

// ReadChar returns the first character of the next token. The rest of the
// token is discarded, so typing "yes" reads as 'y'.
func (c *Console) ReadChar() (rune, error) {
	tok, err := c.token()
	if err != nil {
		return 0, err
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return r, nil
}

// ReadInt reads the next token as a base-10 integer, asking again until one
// parses.
func (c *Console) ReadInt() (int, error) {
	for {
		tok, err := c.token()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err == nil {
			return n, nil
		}
		c.Print("Please enter a whole number: ")
	}
}

// ReadLine returns the next non-blank line
func (c *Console) ReadLine() (string, error) {
	for {
		line, err := c.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", c.readErr(err)
		}
	}
}

func (c *Console) token() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if sb.Len() > 0 && errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", c.readErr(err)
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
	}
}

func (c *Console) readErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return fmt.Errorf("read input: %w", err)
}
