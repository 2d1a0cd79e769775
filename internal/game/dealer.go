package game

import (
	"github.com/lox/blackjack/internal/deck"
)

const (
	// DealerName is the display name of the house
	DealerName = "Dealer"

	// DealerStandValue is the total at which the dealer stops drawing. The
	// dealer stands on every 17, soft or hard.
	DealerStandValue = 17
)

// Dealer plays the house hand with a fixed drawing policy
type Dealer struct {
	seat
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{}
}

// Name returns DealerName
func (d *Dealer) Name() string {
	return DealerName
}

// UpCard returns the dealer's face-up card
func (d *Dealer) UpCard() (deck.Card, bool) {
	if len(d.hand.cards) == 0 {
		return deck.Card{}, false
	}
	return d.hand.cards[0], true
}

// PlayOut draws until the hand reaches DealerStandValue or busts
func (d *Dealer) PlayOut(shoe Shoe) error {
	for d.Value() < DealerStandValue && !d.IsBust() {
		if err := d.Hit(shoe); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Participant = (*Player)(nil)
	_ Participant = (*Dealer)(nil)
)
