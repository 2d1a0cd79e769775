package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// Outcome is the result of a round from the player's side
type Outcome int

const (
	OutcomePush Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	return [...]string{"push", "win", "lose"}[o]
}

// Reason records which step of the round decided the outcome
type Reason int

const (
	ReasonShowdown Reason = iota
	ReasonNatural
	ReasonPlayerBust
	ReasonDealerBust
)

func (r Reason) String() string {
	return [...]string{"showdown", "natural", "player_bust", "dealer_bust"}[r]
}

// RoundResult describes a finished round
type RoundResult struct {
	Number        int
	Bet           int
	Outcome       Outcome
	Reason        Reason
	PlayerNatural bool
	DealerNatural bool
	PlayerValue   int
	DealerValue   int
	PlayerCards   []deck.Card
	DealerCards   []deck.Card
	BalanceAfter  int
	StartedAt     time.Time
	EndedAt       time.Time
}

// Net returns the change in the player's balance caused by the round
func (r RoundResult) Net() int {
	switch r.Outcome {
	case OutcomeWin:
		return r.Bet
	case OutcomeLose:
		return -r.Bet
	default:
		return 0
	}
}

// Duration returns how long the round took
func (r RoundResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Report summarises a whole session
type Report struct {
	Player          string
	StartingBalance int
	FinalBalance    int
	Rounds          []RoundResult
}

// Profit returns final minus starting balance; negative for a losing session
func (r Report) Profit() int {
	return r.FinalBalance - r.StartingBalance
}

// Tally counts round outcomes
type Tally struct {
	Wins        int
	Losses      int
	Pushes      int
	Naturals    int
	PlayerBusts int
	DealerBusts int
	Wagered     int
}

// Tally counts the outcomes of every round in the report
func (r Report) Tally() Tally {
	var t Tally
	for _, round := range r.Rounds {
		t.Wagered += round.Bet
		switch round.Outcome {
		case OutcomeWin:
			t.Wins++
		case OutcomeLose:
			t.Losses++
		default:
			t.Pushes++
		}
		if round.PlayerNatural {
			t.Naturals++
		}
		switch round.Reason {
		case ReasonPlayerBust:
			t.PlayerBusts++
		case ReasonDealerBust:
			t.DealerBusts++
		}
	}
	return t
}
