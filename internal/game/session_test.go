package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/terminal"
)

func TestSessionDeclineImmediately(t *testing.T) {
	e, script := newTestEngine(t, "As5dKh6c", 100, "n")

	report, err := NewSession(e).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Rounds)
	assert.Equal(t, 0, report.Profit())

	out := script.Output()
	assert.Contains(t, out, "Play a round? (y/n): ")
	assert.Contains(t, out, "GAME OVER\nStarting balance: 100\nFinal balance: 100\nProfit: 0\n")
}

func TestSessionPlaysUntilDeclined(t *testing.T) {
	e, script := newTestEngine(t, "As5dKh6c", 100, "x", "Y", "20", "y", "30", "N")

	report, err := NewSession(e).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Rounds, 2)
	assert.Equal(t, 1, report.Rounds[0].Number)
	assert.Equal(t, 2, report.Rounds[1].Number)
	assert.Equal(t, 150, report.FinalBalance)
	assert.Equal(t, 50, report.Profit())

	out := script.Output()
	assert.Contains(t, out, "Invalid choice. Enter y or n.\n")
	assert.Contains(t, out, "Your balance: 100\n")
	assert.Contains(t, out, "Your balance: 120\n")
	assert.Contains(t, out, "Profit: 50\n")
	assert.Contains(t, out, "Rounds played: 2 (won 2, lost 0, pushed 0)\n")
	assert.Zero(t, script.Remaining())
}

func TestSessionEndsWhenBankrollIsGone(t *testing.T) {
	// Dealer natural every round
	e, script := newTestEngine(t, "9sAd9hKc", 10, "y", "10")

	report, err := NewSession(e).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Rounds, 1)
	assert.Equal(t, 0, report.FinalBalance)
	assert.Equal(t, -10, report.Profit())
	assert.Contains(t, script.Output(), "Final balance: 0\nProfit: -10\n")
}

func TestSessionClearsHandsBetweenRounds(t *testing.T) {
	e, _ := newTestEngine(t, "TsTd8h7c", 100, "y", "10", "s", "y", "10", "s", "n")

	report, err := NewSession(e).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Rounds, 2)
	assert.Len(t, report.Rounds[1].PlayerCards, 2)
	assert.Equal(t, 18, report.Rounds[1].PlayerValue)
	assert.Equal(t, 120, report.FinalBalance)
}

func TestSessionStopsOnClosedInput(t *testing.T) {
	e, script := newTestEngine(t, "TsTd8h7c", 100, "y", "10")

	report, err := NewSession(e).Run(context.Background())
	assert.ErrorIs(t, err, terminal.ErrInputClosed)
	assert.Empty(t, report.Rounds)
	assert.Equal(t, 100, report.FinalBalance)
	assert.Contains(t, script.Output(), "GAME OVER\n", "summary is still printed")
}

func TestSessionHonoursCancellation(t *testing.T) {
	e, _ := newTestEngine(t, "TsTd8h7c", 100, "y", "10", "s")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewSession(e).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Rounds)
}

func TestSessionAutomated(t *testing.T) {
	e := NewEngine(Config{
		Shoe:    deck.NewStackedShoe(deck.MustParseCards("TsTd8h7c")...),
		Player:  NewPlayer("Bot", 100),
		Decider: standDecider{},
		Bettor:  fixedBettor(10),
		Logger:  quietLogger(),
	})

	report, err := NewSession(e, WithAutoConfirm(), WithMaxRounds(5)).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Rounds, 5)
	assert.Equal(t, 150, report.FinalBalance)

	tally := report.Tally()
	assert.Equal(t, 5, tally.Wins)
	assert.Equal(t, 50, tally.Wagered)
}

func TestReportTally(t *testing.T) {
	r := Report{
		StartingBalance: 100,
		FinalBalance:    90,
		Rounds: []RoundResult{
			{Bet: 10, Outcome: OutcomeWin, Reason: ReasonNatural, PlayerNatural: true},
			{Bet: 10, Outcome: OutcomeLose, Reason: ReasonPlayerBust},
			{Bet: 10, Outcome: OutcomeWin, Reason: ReasonDealerBust},
			{Bet: 10, Outcome: OutcomePush, Reason: ReasonShowdown},
			{Bet: 20, Outcome: OutcomeLose, Reason: ReasonShowdown},
		},
	}

	assert.Equal(t, Tally{
		Wins:        2,
		Losses:      2,
		Pushes:      1,
		Naturals:    1,
		PlayerBusts: 1,
		DealerBusts: 1,
		Wagered:     60,
	}, r.Tally())
	assert.Equal(t, -10, r.Profit())
}
