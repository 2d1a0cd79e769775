package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/terminal"
)

// quietLogger returns a logger that drops everything
func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestEngine builds an engine that deals cards in the given order and
// reads answers from the script.
func newTestEngine(t *testing.T, cards string, balance int, inputs ...string) (*Engine, *terminal.Script) {
	t.Helper()
	script := terminal.NewScript(inputs...)
	e := NewEngine(Config{
		IO:     script,
		Shoe:   deck.NewStackedShoe(deck.MustParseCards(cards)...),
		Player: NewPlayer("Ana", balance),
		Clock:  quartz.NewMock(t),
		Logger: quietLogger(),
	})
	return e, script
}

// fixedBettor always wagers the same amount
type fixedBettor int

func (b fixedBettor) Bet(*Player) (int, error) { return int(b), nil }

// standDecider stands immediately
type standDecider struct{}

func (standDecider) Decide(*Player, deck.Card) (Action, error) { return Stand, nil }
