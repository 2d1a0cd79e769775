// Package bot provides automated blackjack players used by the simulator.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// Factory creates a fresh decider for one session
type Factory func(rng *rand.Rand, logger *log.Logger) game.Decider

var registry = map[string]Factory{
	"stand17": func(_ *rand.Rand, logger *log.Logger) game.Decider {
		return NewStandBot(game.DealerStandValue, logger)
	},
	"chart": func(_ *rand.Rand, logger *log.Logger) game.Decider {
		return NewChartBot(logger)
	},
	"rand": func(rng *rand.Rand, logger *log.Logger) game.Decider {
		return NewRandBot(rng, logger)
	},
}

// Lookup returns the factory registered under name
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot %q (available: %v)", name, Names())
	}
	return f, nil
}

// Names returns the registered bot names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FlatBet wagers the same amount every round, or the whole bankroll when it
// has dropped below that amount.
type FlatBet int

func (f FlatBet) Bet(player *game.Player) (int, error) {
	return min(int(f), player.Balance()), nil
}
