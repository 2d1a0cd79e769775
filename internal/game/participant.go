package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// Shoe is the card source a round deals from. *deck.Shoe satisfies it.
type Shoe interface {
	Reset()
	Shuffle()
	IsEmpty() bool
	Draw() (deck.Card, error)
}

// Participant is anyone seated at the table holding a hand.
type Participant interface {
	Name() string
	Hand() *Hand
	Hit(shoe Shoe) error
	Value() int
	IsBust() bool
	IsNaturalBlackjack() bool
	HandString() string
	FirstCard() string
	ResetHand()
}

// seat holds the hand behaviour shared by the player and the dealer
type seat struct {
	hand Hand
}

// Hit draws one card from the shoe into the hand
func (s *seat) Hit(shoe Shoe) error {
	c, err := shoe.Draw()
	if err != nil {
		return err
	}
	s.hand.AddCard(c)
	return nil
}

func (s *seat) Hand() *Hand              { return &s.hand }
func (s *seat) Value() int               { return s.hand.Value() }
func (s *seat) IsBust() bool             { return s.hand.IsBust() }
func (s *seat) IsNaturalBlackjack() bool { return s.hand.IsNaturalBlackjack() }
func (s *seat) HandString() string       { return s.hand.String() }
func (s *seat) FirstCard() string        { return s.hand.FirstCard() }
func (s *seat) ResetHand()               { s.hand.Clear() }
