package deck

import (
	"errors"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/blackjack/internal/randutil"
)

// ErrExhaustedShoe is returned when drawing from a shoe with no cards left.
var ErrExhaustedShoe = errors.New("shoe is exhausted")

// Size is the number of cards in a full shoe.
const Size = 52

// Shoe holds the cards participants draw from. Cards are drawn from the end
// of the slice, so the most recently added card is the top of the shoe.
type Shoe struct {
	cards   []Card
	rng     *rand.Rand
	stacked []Card
}

// NewShoe creates a full, unshuffled 52-card shoe. A nil rng is replaced by
// an entropy-seeded generator.
func NewShoe(rng *rand.Rand) *Shoe {
	if rng == nil {
		rng = randutil.New(randutil.Seed(0))
	}
	s := &Shoe{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	s.Reset()
	return s
}

// NewStackedShoe creates a shoe that always deals cards in the given order:
// the first argument is drawn first. Reset restores the sequence and Shuffle
// leaves it untouched, which makes rounds fully scripted.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := slices.Clone(cards)
	slices.Reverse(stacked)
	s := &Shoe{stacked: stacked}
	s.Reset()
	return s
}

// Reset refills the shoe with one of every card in canonical order
// (suits Spades, Diamonds, Clubs, Hearts; ranks Two through Ace).
func (s *Shoe) Reset() {
	s.cards = s.cards[:0]
	if s.stacked != nil {
		s.cards = append(s.cards, s.stacked...)
		return
	}

	for suit := Spades; suit <= Hearts; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			s.cards = append(s.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle permutes the remaining cards uniformly at random.
func (s *Shoe) Shuffle() {
	if s.stacked != nil {
		return
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrExhaustedShoe
	}
	top := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return top, nil
}

// Len returns the number of cards left in the shoe
func (s *Shoe) Len() int {
	return len(s.cards)
}

// IsEmpty returns true if the shoe has no cards left
func (s *Shoe) IsEmpty() bool {
	return len(s.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first.
func (s *Shoe) Cards() []Card {
	return slices.Clone(s.cards)
}
