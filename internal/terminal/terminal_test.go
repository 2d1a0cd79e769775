package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReadChar(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  y\nhit s"), &out)

	r, err := c.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'y', r)

	r, err = c.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'h', r, "only the first rune of a token is used")

	r, err = c.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 's', r)

	_, err = c.ReadChar()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConsoleReadIntReprompts(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("ten 10\n-5"), &out)

	n, err := c.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "Please enter a whole number: ", out.String())

	n, err = c.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, -5, n)

	_, err = c.ReadInt()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConsoleReadLine(t *testing.T) {
	c := NewConsole(strings.NewReader("\n  Ada Lovelace \n"), &bytes.Buffer{})
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConsolePrintIsVerbatim(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)
	c.Print("a")
	c.Print("b\n")
	assert.Equal(t, "ab\n", out.String())
}

func TestScript(t *testing.T) {
	s := NewScript("y", "25", "Bob", "x")
	s.Print("hello")

	r, err := s.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'y', r)

	n, err := s.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Bob", line)

	_, err = s.ReadInt()
	assert.Error(t, err)
	assert.Zero(t, s.Remaining())

	_, err = s.ReadChar()
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "hello", s.Output())
}

func TestDiscard(t *testing.T) {
	var io IO = Discard{}
	io.Print("ignored")
	_, err := io.ReadChar()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestBannerWithoutColor(t *testing.T) {
	profile := ConfigureColor(&bytes.Buffer{}, false)
	assert.Equal(t, termenv.Ascii, profile)
	assert.Contains(t, Banner("Blackjack"), "Blackjack")
	assert.Equal(t, "+5", Profit("+5", 5))
}
