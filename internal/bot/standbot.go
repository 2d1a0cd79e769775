package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// StandBot mimics the dealer: it hits below a fixed total and stands at or
// above it, ignoring the dealer's card.
type StandBot struct {
	threshold int
	logger    *log.Logger
}

// NewStandBot creates a StandBot that stands on threshold or more
func NewStandBot(threshold int, logger *log.Logger) *StandBot {
	return &StandBot{threshold: threshold, logger: logger}
}

func (s *StandBot) Decide(player *game.Player, _ deck.Card) (game.Action, error) {
	action := game.Stand
	if player.Value() < s.threshold {
		action = game.Hit
	}
	s.logger.Debug("stand-bot decision", "value", player.Value(), "action", action)
	return action, nil
}
