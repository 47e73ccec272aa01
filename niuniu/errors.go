package niuniu

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongHandSize is reported when a hand does not contain exactly five cards.
	ErrWrongHandSize = errors.New("wrong hand size")

	// ErrValueOutOfRange is reported when a card value is outside MinValue..MaxValue.
	ErrValueOutOfRange = errors.New("card value out of range")
)

// InvalidInputError describes a hand the evaluator refuses to score.
// It unwraps to ErrWrongHandSize or ErrValueOutOfRange.
type InvalidInputError struct {
	Reason   error
	Count    int
	Position int // -1 when the error is not about a single card
	Value    int
}

func (e *InvalidInputError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrWrongHandSize):
		return fmt.Sprintf("invalid hand: expected %d cards, got %d", HandSize, e.Count)
	case errors.Is(e.Reason, ErrValueOutOfRange):
		return fmt.Sprintf("invalid hand: card %d has value %d, want %d-%d", e.Position+1, e.Value, MinValue, MaxValue)
	default:
		return fmt.Sprintf("invalid hand: %v", e.Reason)
	}
}

func (e *InvalidInputError) Unwrap() error {
	return e.Reason
}
