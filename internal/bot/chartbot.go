package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// ChartBot plays the hit/stand part of basic strategy. Doubling and
// splitting are not offered by the table, so those cells fall back to the
// hit/stand choice.
type ChartBot struct {
	logger *log.Logger
}

// NewChartBot creates a new ChartBot instance
func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: logger}
}

func (c *ChartBot) Decide(player *game.Player, upCard deck.Card) (game.Action, error) {
	hand := player.Hand()
	action := chartAction(hand.Value(), hand.IsSoft(), upCard.Rank.Points())
	c.logger.Debug("chart-bot decision",
		"value", hand.Value(),
		"soft", hand.IsSoft(),
		"upcard", upCard.String(),
		"action", action)
	return action, nil
}

// chartAction looks up the action for a player total against the dealer's
// up card, where an ace up counts 11.
func chartAction(total int, soft bool, up int) game.Action {
	if soft {
		switch {
		case total >= 19:
			return game.Stand
		case total == 18:
			if up >= 9 {
				return game.Hit
			}
			return game.Stand
		default:
			return game.Hit
		}
	}

	switch {
	case total >= 17:
		return game.Stand
	case total >= 13:
		if up <= 6 {
			return game.Stand
		}
		return game.Hit
	case total == 12:
		if up >= 4 && up <= 6 {
			return game.Stand
		}
		return game.Hit
	default:
		return game.Hit
	}
}
