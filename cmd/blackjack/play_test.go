package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/terminal"
)

func TestPromptPlayerAsksForMissingValues(t *testing.T) {
	io := terminal.NewScript("  Alice  ", "0", "150")

	name, balance, err := promptPlayer(io, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, 150, balance)
	assert.Contains(t, io.Output(), "Enter your name: ")
	assert.Contains(t, io.Output(), "Balance must be positive.\n")
}

func TestPromptPlayerSkipsKnownValues(t *testing.T) {
	io := terminal.NewScript()

	name, balance, err := promptPlayer(io, "Bob", 50)
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)
	assert.Equal(t, 50, balance)
	assert.Empty(t, io.Output())
}

func TestPromptPlayerInputClosed(t *testing.T) {
	_, _, err := promptPlayer(terminal.NewScript(), "", 0)
	assert.ErrorIs(t, err, terminal.ErrInputClosed)
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, 5, pick(5, 10))
	assert.Equal(t, 10, pick(0, 10))
	assert.Equal(t, "chart", firstNonEmpty(" ", "chart"))
	assert.Equal(t, "", firstNonEmpty())
	assert.Equal(t, 1, sign(0.5))
	assert.Equal(t, 0.0, pct(3, 0))
}
