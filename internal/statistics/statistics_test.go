package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func report(start int, rounds ...game.RoundResult) game.Report {
	final := start
	for _, r := range rounds {
		final += r.Net()
	}
	return game.Report{StartingBalance: start, FinalBalance: final, Rounds: rounds}
}

func win(bet int) game.RoundResult {
	return game.RoundResult{Bet: bet, Outcome: game.OutcomeWin, Reason: game.ReasonShowdown}
}

func lose(bet int) game.RoundResult {
	return game.RoundResult{Bet: bet, Outcome: game.OutcomeLose, Reason: game.ReasonPlayerBust}
}

func push(bet int) game.RoundResult {
	return game.RoundResult{Bet: bet, Outcome: game.OutcomePush, Reason: game.ReasonShowdown}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.WinRate())
	assert.Zero(t, stats.HouseEdge())
	assert.Error(t, stats.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	stats := &Statistics{}
	stats.Add(report(100, win(10), win(10), lose(10)))
	stats.Add(report(100, lose(10), push(10)))
	stats.Add(report(20, lose(20)))

	require.NoError(t, stats.Validate())
	assert.Equal(t, 3, stats.Sessions)
	assert.Equal(t, 6, stats.Rounds)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 3, stats.Losses)
	assert.Equal(t, 1, stats.Pushes)
	assert.Equal(t, 2, stats.PlayerBusts)
	assert.Equal(t, 70, stats.Wagered)
	assert.Equal(t, 1, stats.Ruined)

	// profits: 10, -10, -20
	assert.InDelta(t, -20.0/3.0, stats.Mean(), 1e-9)
	assert.Equal(t, -10.0, stats.Median())
	assert.InDelta(t, 2.0/6.0, stats.WinRate(), 1e-9)
	assert.InDelta(t, 20.0/70.0, stats.HouseEdge(), 1e-9)

	mean := stats.Mean()
	want := ((10-mean)*(10-mean) + (-10-mean)*(-10-mean) + (-20-mean)*(-20-mean)) / 2
	assert.InDelta(t, want, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(want), stats.StdDev(), 1e-9)

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, mean)
	assert.Greater(t, hi, mean)
}

func TestStatisticsPercentile(t *testing.T) {
	stats := &Statistics{}
	for _, p := range []int{-30, -10, 0, 10, 30} {
		if p >= 0 {
			stats.Add(report(100, win(p)))
		} else {
			stats.Add(report(100, lose(-p)))
		}
	}

	assert.Equal(t, -30.0, stats.Percentile(0))
	assert.Equal(t, 0.0, stats.Percentile(0.5))
	assert.Equal(t, 30.0, stats.Percentile(1))
	assert.Equal(t, -20.0, stats.Percentile(0.125))
}

func TestValidateDetectsLedgerMismatch(t *testing.T) {
	stats := &Statistics{}
	r := report(100, win(10))
	r.FinalBalance = 130
	stats.Add(r)
	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")
}

func TestSummary(t *testing.T) {
	stats := &Statistics{}
	stats.Add(report(100, win(10), lose(10), push(10)))
	stats.Add(report(50, win(25)))

	s := stats.Summary()
	assert.Equal(t, 2, s.Sessions)
	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 55, s.Wagered)
	assert.InDelta(t, 12.5, s.MeanProfit, 1e-9)
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.Less(t, s.CI95[0], s.CI95[1])
}
