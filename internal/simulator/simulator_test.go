package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	return Config{
		Sessions: 8,
		Rounds:   50,
		Balance:  100,
		Bet:      5,
		Bot:      "chart",
		Seed:     12345,
		Workers:  4,
		Clock:    quartz.NewMock(t),
		Logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
	}
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"no sessions", func(c *Config) { c.Sessions = 0 }, "sessions"},
		{"no rounds", func(c *Config) { c.Rounds = 0 }, "rounds"},
		{"no balance", func(c *Config) { c.Balance = -1 }, "balance"},
		{"no bet", func(c *Config) { c.Bet = 0 }, "bet"},
		{"unknown bot", func(c *Config) { c.Bot = "oracle" }, "unknown bot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestRunAggregatesSessions(t *testing.T) {
	sim, err := New(testConfig(t))
	require.NoError(t, err)

	res, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, res.Stats.Validate())

	assert.Equal(t, int64(12345), res.Seed)
	assert.Equal(t, 8, res.Stats.Sessions)
	assert.Positive(t, res.Stats.Rounds)
	assert.LessOrEqual(t, res.Stats.Rounds, 8*50)
	assert.Zero(t, res.Elapsed, "mock clock does not advance")
}

func TestRunIsDeterministic(t *testing.T) {
	for _, botName := range []string{"chart", "stand17", "rand"} {
		t.Run(botName, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Bot = botName

			a, err := New(cfg)
			require.NoError(t, err)
			first, err := a.Run(context.Background())
			require.NoError(t, err)

			cfg.Workers = 1
			b, err := New(cfg)
			require.NoError(t, err)
			second, err := b.Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, first.Stats.Values, second.Stats.Values)
			assert.Equal(t, first.Stats.Rounds, second.Stats.Rounds)
		})
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	sim, err := New(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
