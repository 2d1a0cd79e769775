package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/terminal"
)

// ErrNoBankroll is returned when a round is started for a player with nothing
// left to wager.
var ErrNoBankroll = errors.New("player has no bankroll")

const separator = "=========================================================\n"

// Config wires the collaborators of an Engine. Shoe and Player are required;
// every other field has a default.
type Config struct {
	IO      terminal.IO
	Shoe    Shoe
	Player  *Player
	Dealer  *Dealer
	Decider Decider
	Bettor  Bettor
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Engine runs single rounds of blackjack between a player and the dealer.
type Engine struct {
	io      terminal.IO
	shoe    Shoe
	player  *Player
	dealer  *Dealer
	decider Decider
	bettor  Bettor
	clock   quartz.Clock
	logger  *log.Logger
}

// NewEngine creates an engine. When no Decider or Bettor is supplied the
// player is prompted through cfg.IO.
func NewEngine(cfg Config) *Engine {
	if cfg.Shoe == nil {
		panic("shoe is required for engine creation")
	}
	if cfg.Player == nil {
		panic("player is required for engine creation")
	}
	if cfg.IO == nil {
		cfg.IO = terminal.Discard{}
	}
	if cfg.Dealer == nil {
		cfg.Dealer = NewDealer()
	}
	if cfg.Decider == nil {
		cfg.Decider = NewPromptDecider(cfg.IO)
	}
	if cfg.Bettor == nil {
		cfg.Bettor = NewPromptBettor(cfg.IO)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Engine{
		io:      cfg.IO,
		shoe:    cfg.Shoe,
		player:  cfg.Player,
		dealer:  cfg.Dealer,
		decider: cfg.Decider,
		bettor:  cfg.Bettor,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
	}
}

// Player returns the seated player
func (e *Engine) Player() *Player { return e.player }

// Dealer returns the house
func (e *Engine) Dealer() *Dealer { return e.dealer }

// PlayRound plays one round: bet, initial deal, natural check, player turn,
// dealer turn and showdown. The hands are dealt from the shoe as it stands;
// clearing hands and reshuffling is the caller's job.
//
// Errors are only returned when the shoe runs out or the terminal fails. Any
// wager placed before the failure is returned to the player.
func (e *Engine) PlayRound(number int) (RoundResult, error) {
	if e.player.Balance() <= 0 {
		return RoundResult{}, ErrNoBankroll
	}

	logger := e.logger.With("round", number)
	res := RoundResult{Number: number, StartedAt: e.clock.Now()}

	if err := e.collectBet(); err != nil {
		return res, fmt.Errorf("collect bet: %w", err)
	}
	res.Bet = e.player.Bet()
	logger.Debug("Bet placed", "bet", res.Bet, "balance", e.player.Balance())

	if err := e.dealInitial(); err != nil {
		e.player.Push()
		return res, fmt.Errorf("initial deal: %w", err)
	}
	e.showInitial()
	logger.Debug("Initial deal", "player", e.player.HandString(), "dealer_up", e.dealer.FirstCard())

	res.PlayerNatural = e.player.IsNaturalBlackjack()
	res.DealerNatural = e.dealer.IsNaturalBlackjack()
	if res.PlayerNatural || res.DealerNatural {
		e.resolveNatural(&res)
		logger.Info("Round settled", "outcome", res.Outcome, "reason", res.Reason, "balance", res.BalanceAfter)
		return res, nil
	}

	bust, err := e.playerTurn(logger)
	if err != nil {
		e.player.Push()
		return res, fmt.Errorf("player turn: %w", err)
	}
	if bust {
		e.io.Print("BUST! You lose.\n")
		e.settle(&res, OutcomeLose, ReasonPlayerBust)
		logger.Info("Round settled", "outcome", res.Outcome, "reason", res.Reason, "balance", res.BalanceAfter)
		return res, nil
	}

	if err := e.dealerTurn(); err != nil {
		e.player.Push()
		return res, fmt.Errorf("dealer turn: %w", err)
	}
	logger.Debug("Dealer played out", "dealer", e.dealer.HandString(), "value", e.dealer.Value())

	if e.dealer.IsBust() {
		e.io.Print(separator)
		e.io.Print("Dealer BUST! You win.\n")
		e.settle(&res, OutcomeWin, ReasonDealerBust)
	} else {
		e.showdown(&res)
	}
	logger.Info("Round settled", "outcome", res.Outcome, "reason", res.Reason, "balance", res.BalanceAfter)
	return res, nil
}

func (e *Engine) collectBet() error {
	for {
		amount, err := e.bettor.Bet(e.player)
		if err != nil {
			return err
		}
		if e.player.PlaceBet(amount) {
			return nil
		}
		e.io.Print("Invalid bet. Try again.\n")
	}
}

// dealInitial deals player, dealer, player, dealer
func (e *Engine) dealInitial() error {
	for range 2 {
		if err := e.player.Hit(e.shoe); err != nil {
			return err
		}
		if err := e.dealer.Hit(e.shoe); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) showInitial() {
	e.io.Print(separator)
	e.io.Print("INITIAL DEAL\n")
	e.io.Print(handLine(e.player))
	e.io.Print(fmt.Sprintf("%s hand: %s, [hidden card] (value: ?)\n", e.dealer.Name(), e.dealer.FirstCard()))
}

func (e *Engine) resolveNatural(res *RoundResult) {
	e.io.Print(separator)
	e.io.Print("BLACKJACK!\n")
	e.io.Print(handLine(e.dealer))

	// Naturals pay even money, the same as any other win.
	switch {
	case res.PlayerNatural && res.DealerNatural:
		e.io.Print("Both have blackjack -> PUSH.\n")
		e.settle(res, OutcomePush, ReasonNatural)
	case res.PlayerNatural:
		e.io.Print("You have blackjack -> YOU WIN.\n")
		e.settle(res, OutcomeWin, ReasonNatural)
	default:
		e.io.Print("Dealer has blackjack -> YOU LOSE.\n")
		e.settle(res, OutcomeLose, ReasonNatural)
	}
}

// playerTurn asks for actions until the player stands, reaches 21 or busts.
func (e *Engine) playerTurn(logger *log.Logger) (bool, error) {
	upCard, _ := e.dealer.UpCard()
	for {
		action, err := e.decider.Decide(e.player, upCard)
		if err != nil {
			return false, err
		}
		if action == Stand {
			logger.Debug("Player stands", "value", e.player.Value())
			return false, nil
		}

		if err := e.player.Hit(e.shoe); err != nil {
			return false, err
		}
		logger.Debug("Player hits", "hand", e.player.HandString(), "value", e.player.Value())

		e.io.Print(separator)
		e.io.Print(handLine(e.player))

		if e.player.IsBust() {
			return true, nil
		}
		if e.player.Value() == Blackjack {
			e.io.Print("You have 21, standing.\n")
			return false, nil
		}
	}
}

func (e *Engine) dealerTurn() error {
	e.io.Print(separator)
	e.io.Print("DEALER TURN\n")
	e.io.Print(handLine(e.dealer))

	if err := e.dealer.PlayOut(e.shoe); err != nil {
		return err
	}

	e.io.Print(handLine(e.dealer))
	return nil
}

func (e *Engine) showdown(res *RoundResult) {
	playerValue := e.player.Value()
	dealerValue := e.dealer.Value()

	e.io.Print(separator)
	e.io.Print("FINAL VALUES\n")
	e.io.Print(fmt.Sprintf("%s: %d\n", e.player.Name(), playerValue))
	e.io.Print(fmt.Sprintf("%s: %d\n", e.dealer.Name(), dealerValue))

	switch {
	case playerValue > dealerValue:
		e.io.Print(fmt.Sprintf("%s wins\n", e.player.Name()))
		e.settle(res, OutcomeWin, ReasonShowdown)
	case dealerValue > playerValue:
		e.io.Print(fmt.Sprintf("%s wins\n", e.dealer.Name()))
		e.settle(res, OutcomeLose, ReasonShowdown)
	default:
		e.io.Print("Push\n")
		e.settle(res, OutcomePush, ReasonShowdown)
	}
}

// settle applies the outcome to the wallet and completes the result
func (e *Engine) settle(res *RoundResult, outcome Outcome, reason Reason) {
	switch outcome {
	case OutcomeWin:
		e.player.Win()
	case OutcomeLose:
		e.player.Lose()
	default:
		e.player.Push()
	}

	res.Outcome = outcome
	res.Reason = reason
	res.PlayerValue = e.player.Value()
	res.DealerValue = e.dealer.Value()
	res.PlayerCards = e.player.Hand().Cards()
	res.DealerCards = e.dealer.Hand().Cards()
	res.BalanceAfter = e.player.Balance()
	res.EndedAt = e.clock.Now()

	e.io.Print(fmt.Sprintf("New balance: %d\n", res.BalanceAfter))
}

func handLine(p Participant) string {
	return fmt.Sprintf("%s hand: %s (value: %d)\n", p.Name(), p.HandString(), p.Value())
}
