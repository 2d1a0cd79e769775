package game

import (
	"context"
	"fmt"
)

// SessionOption configures a Session
type SessionOption func(*Session)

// WithMaxRounds stops the session after n rounds. Zero means no limit.
func WithMaxRounds(n int) SessionOption {
	return func(s *Session) { s.maxRounds = n }
}

// WithAutoConfirm skips the "play a round?" prompt, for automated play
func WithAutoConfirm() SessionOption {
	return func(s *Session) { s.autoConfirm = true }
}

// Session repeats rounds while the player has money and wants to keep
// playing, then prints a summary.
type Session struct {
	engine      *Engine
	maxRounds   int
	autoConfirm bool
}

// NewSession creates a session driving the given engine
func NewSession(engine *Engine, opts ...SessionOption) *Session {
	s := &Session{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays rounds until the bankroll is gone, the player declines, the
// round limit is reached or ctx is cancelled. The summary is printed and the
// report returned in every case; err is non-nil when the session stopped
// because of cancellation, an exhausted shoe or failed input.
func (s *Session) Run(ctx context.Context) (Report, error) {
	e := s.engine
	player := e.player
	report := Report{
		Player:          player.Name(),
		StartingBalance: player.Balance(),
	}
	e.logger.Info("Session started", "player", report.Player, "balance", report.StartingBalance)

	var runErr error
	for player.Balance() > 0 {
		if s.maxRounds > 0 && len(report.Rounds) >= s.maxRounds {
			break
		}
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		play, err := s.confirm()
		if err != nil {
			runErr = err
			break
		}
		if !play {
			break
		}

		s.prepareRound()
		number := len(report.Rounds) + 1
		res, err := e.PlayRound(number)
		if err != nil {
			runErr = fmt.Errorf("round %d: %w", number, err)
			break
		}
		report.Rounds = append(report.Rounds, res)
	}

	report.FinalBalance = player.Balance()
	s.printSummary(report)

	if runErr != nil {
		e.logger.Warn("Session stopped", "rounds", len(report.Rounds), "error", runErr)
	} else {
		e.logger.Info("Session finished", "rounds", len(report.Rounds), "profit", report.Profit())
	}
	return report, runErr
}

func (s *Session) confirm() (bool, error) {
	if s.autoConfirm {
		return true, nil
	}

	io := s.engine.io
	for {
		io.Print(separator)
		io.Print("Play a round? (y/n): ")
		c, err := io.ReadChar()
		if err != nil {
			return false, err
		}

		switch c {
		case 'y', 'Y':
			return true, nil
		case 'n', 'N':
			return false, nil
		}
		io.Print("Invalid choice. Enter y or n.\n")
	}
}

// prepareRound clears both hands and brings a fresh, shuffled shoe
func (s *Session) prepareRound() {
	e := s.engine
	e.player.ResetHand()
	e.dealer.ResetHand()
	e.shoe.Reset()
	e.shoe.Shuffle()

	e.io.Print(separator)
	e.io.Print(fmt.Sprintf("Your balance: %d\n", e.player.Balance()))
}

func (s *Session) printSummary(r Report) {
	t := r.Tally()
	io := s.engine.io
	io.Print(separator)
	io.Print("GAME OVER\n")
	io.Print(fmt.Sprintf("Starting balance: %d\n", r.StartingBalance))
	io.Print(fmt.Sprintf("Final balance: %d\n", r.FinalBalance))
	io.Print(fmt.Sprintf("Profit: %d\n", r.Profit()))
	io.Print(fmt.Sprintf("Rounds played: %d (won %d, lost %d, pushed %d)\n",
		len(r.Rounds), t.Wins, t.Losses, t.Pushes))
}
