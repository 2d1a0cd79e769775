package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// RandBot hits or stands with equal probability
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Decide(player *game.Player, _ deck.Card) (game.Action, error) {
	action := game.Stand
	if r.rng.IntN(2) == 1 {
		action = game.Hit
	}
	r.logger.Debug("rand-bot decision", "value", player.Value(), "action", action)
	return action, nil
}
