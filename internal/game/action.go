package game

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/terminal"
)

// Action is a player decision during their turn
type Action int

const (
	Stand Action = iota
	Hit
)

func (a Action) String() string {
	return [...]string{"stand", "hit"}[a]
}

// Decider chooses the player's next action given their hand and the
// dealer's face-up card.
type Decider interface {
	Decide(player *Player, upCard deck.Card) (Action, error)
}

// Bettor chooses the wager for a round. The engine asks again whenever the
// wallet rejects the amount.
type Bettor interface {
	Bet(player *Player) (int, error)
}

// promptDecider asks the person at the terminal for hit or stand
type promptDecider struct {
	io terminal.IO
}

// NewPromptDecider returns a Decider that reads h/H or s/S from the terminal
// and asks again on anything else.
func NewPromptDecider(io terminal.IO) Decider {
	return promptDecider{io: io}
}

func (p promptDecider) Decide(_ *Player, _ deck.Card) (Action, error) {
	for {
		p.io.Print(separator)
		p.io.Print("Choose (h)it or (s)tand: ")
		c, err := p.io.ReadChar()
		if err != nil {
			return Stand, err
		}

		switch c {
		case 'h', 'H':
			return Hit, nil
		case 's', 'S':
			return Stand, nil
		}
		p.io.Print("Invalid choice.\n")
	}
}

type promptBettor struct {
	io terminal.IO
}

// NewPromptBettor returns a Bettor that reads the wager from the terminal
func NewPromptBettor(io terminal.IO) Bettor {
	return promptBettor{io: io}
}

func (p promptBettor) Bet(_ *Player) (int, error) {
	p.io.Print("Your bet: ")
	return p.io.ReadInt()
}
