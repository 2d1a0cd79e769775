package game

import (
	"slices"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Blackjack is the best possible hand value.
const Blackjack = 21

// Hand is the ordered set of cards held by one participant.
type Hand struct {
	cards []deck.Card
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Value returns the blackjack value of the hand. Aces start at 11 and are
// lowered to 1, one at a time, while the total is over 21.
func (h *Hand) Value() int {
	total, _ := h.count()
	return total
}

// IsSoft reports whether an ace is still counted as 11
func (h *Hand) IsSoft() bool {
	_, soft := h.count()
	return soft > 0
}

func (h *Hand) count() (total, softAces int) {
	for _, c := range h.cards {
		total += c.Rank.Points()
		if c.IsAce() {
			softAces++
		}
	}
	for total > Blackjack && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

// IsBust returns true if the hand is over 21
func (h *Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// IsNaturalBlackjack returns true for a two card 21
func (h *Hand) IsNaturalBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == Blackjack
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// String returns the cards as a comma separated list, e.g. "A Spades, 9 Hearts"
func (h *Hand) String() string {
	names := make([]string, len(h.cards))
	for i, c := range h.cards {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// FirstCard returns the display name of the first card dealt, or "" for an
// empty hand.
func (h *Hand) FirstCard() string {
	if len(h.cards) == 0 {
		return ""
	}
	return h.cards[0].String()
}

// Clear empties the hand
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}
