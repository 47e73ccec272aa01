package deck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/niuniu/niuniu"
)

// ParseError reports a token that is not a card.
type ParseError struct {
	Token    string
	Position int
}

func (e *ParseError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid card %q (use 1-10, A, J, Q or K)", e.Token)
	}
	return fmt.Sprintf("card %d: invalid card %q (use 1-10, A, J, Q or K)", e.Position+1, e.Token)
}

var faceValues = map[string]int{
	"A": 1,
	"J": 10,
	"Q": 10,
	"K": 10,
	"T": 10,
}

// ParseToken parses one card token. Face letters are case-insensitive:
// K, Q, J and T count 10, A counts 1. Numbers must be 1-10.
func ParseToken(token string) (niuniu.Card, error) {
	label := strings.ToUpper(strings.TrimSpace(token))
	if v, ok := faceValues[label]; ok {
		return niuniu.NewCard(v, label), nil
	}

	v, err := strconv.Atoi(label)
	if err != nil || v < niuniu.MinValue || v > niuniu.MaxValue {
		return niuniu.Card{}, &ParseError{Token: token, Position: -1}
	}
	return niuniu.NewCard(v, label), nil
}

// ParseCards parses whitespace or comma separated card tokens. It does not
// check the number of cards.
func ParseCards(s string) ([]niuniu.Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	cards := make([]niuniu.Card, 0, len(fields))
	for i, tok := range fields {
		c, err := ParseToken(tok)
		if err != nil {
			return nil, &ParseError{Token: tok, Position: i}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseHand parses exactly five card tokens into a validated hand.
func ParseHand(s string) (niuniu.Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return niuniu.Hand{}, err
	}
	return niuniu.NewHand(cards)
}

// ParseTokens parses pre-split tokens, as given on a command line.
func ParseTokens(tokens []string) (niuniu.Hand, error) {
	return ParseHand(strings.Join(tokens, " "))
}

// ParseEach parses exactly one card per element, as sent in a JSON array.
// Elements are not re-split, so the element count is the card count.
func ParseEach(tokens []string) (niuniu.Hand, error) {
	if len(tokens) != niuniu.HandSize {
		return niuniu.Hand{}, &niuniu.InvalidInputError{
			Reason:   niuniu.ErrWrongHandSize,
			Count:    len(tokens),
			Position: -1,
		}
	}

	cards := make([]niuniu.Card, len(tokens))
	for i, tok := range tokens {
		c, err := ParseToken(tok)
		if err != nil {
			return niuniu.Hand{}, &ParseError{Token: tok, Position: i}
		}
		cards[i] = c
	}
	return niuniu.NewHand(cards)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) niuniu.Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}
