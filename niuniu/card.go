// Package niuniu evaluates five-card Niu Niu hands.
//
// A hand is valid when some three cards (the triple) sum to a multiple of
// ten. The remaining two cards (the pair) give the score: their sum mod 10,
// with 0 counted as 10 ("Niu Niu"). Cards valued 3 and 6 are interchangeable,
// so every combination of 3↔6 substitutions is searched.
package niuniu

import "strconv"

const (
	// HandSize is the number of cards in a Niu Niu hand.
	HandSize = 5

	// MinValue and MaxValue bound a card's point value. Face cards count as 10.
	MinValue = 1
	MaxValue = 10

	// MaxScore is the best possible score, reported for a "Niu Niu" hand.
	MaxScore = 10
)

// Card is a point value with an independent display label.
type Card struct {
	Value int
	Label string
}

// NewCard creates a card. An empty label defaults to the decimal value.
func NewCard(value int, label string) Card {
	if label == "" {
		label = strconv.Itoa(value)
	}
	return Card{Value: value, Label: label}
}

// String returns the card's label.
func (c Card) String() string {
	if c.Label == "" {
		return strconv.Itoa(c.Value)
	}
	return c.Label
}

// Swappable reports whether the card takes part in the 3↔6 substitution.
func (c Card) Swappable() bool {
	return c.Value == 3 || c.Value == 6
}

// Hand is an ordered set of five cards. Positions are significant: results
// refer to cards by index.
type Hand [HandSize]Card

// NewHand validates cards and copies them into a Hand.
func NewHand(cards []Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, &InvalidInputError{Reason: ErrWrongHandSize, Count: len(cards), Position: -1}
	}
	for i, c := range cards {
		if c.Value < MinValue || c.Value > MaxValue {
			return h, &InvalidInputError{Reason: ErrValueOutOfRange, Count: len(cards), Position: i, Value: c.Value}
		}
		h[i] = c
	}
	return h, nil
}

// HandFromValues builds a hand from bare point values, labelling each card
// with its value.
func HandFromValues(values ...int) (Hand, error) {
	cards := make([]Card, len(values))
	for i, v := range values {
		cards[i] = NewCard(v, "")
	}
	return NewHand(cards)
}

// MustHand is like HandFromValues but panics on invalid input. Intended for
// tests and static tables.
func MustHand(values ...int) Hand {
	h, err := HandFromValues(values...)
	if err != nil {
		panic(err)
	}
	return h
}

// Values returns the hand's point values as a Variant with no substitutions.
func (h Hand) Values() Variant {
	var v Variant
	for i, c := range h {
		v[i] = c.Value
	}
	return v
}

// Cards returns the hand as a slice.
func (h Hand) Cards() []Card {
	out := make([]Card, HandSize)
	copy(out, h[:])
	return out
}
