package niuniu

// RankChange records a 3↔6 substitution made by the winning variant.
type RankChange struct {
	Position int `json:"position"`
	From     int `json:"from"`
	To       int `json:"to"`
}

// Result is the outcome of evaluating a hand.
//
// When HasNiu is false every other field is zero. Otherwise Score is in
// 1..10, and Triple and Pair partition the positions 0..4.
type Result struct {
	HasNiu   bool         `json:"hasNiu"`
	Score    int          `json:"score"`
	IsDouble bool         `json:"isDouble"`
	Triple   []int        `json:"triple,omitempty"`
	Pair     []int        `json:"pair,omitempty"`
	Variant  *Variant     `json:"variant,omitempty"`
	Swapped  bool         `json:"swapped"`
	Changes  []RankChange `json:"changes,omitempty"`
}

// IsNiuNiu reports whether the result is the maximum score.
func (r Result) IsNiuNiu() bool {
	return r.HasNiu && r.Score == MaxScore
}

// TripleValues returns the winning variant's values at the triple positions.
func (r Result) TripleValues() []int {
	return r.valuesAt(r.Triple)
}

// PairValues returns the winning variant's values at the pair positions.
func (r Result) PairValues() []int {
	return r.valuesAt(r.Pair)
}

func (r Result) valuesAt(positions []int) []int {
	if r.Variant == nil {
		return nil
	}
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = r.Variant[p]
	}
	return out
}

// Evaluate validates cards and returns the best Niu Niu result. A hand with
// no valid split is not an error; it yields a Result with HasNiu false.
func Evaluate(cards []Card) (Result, error) {
	h, err := NewHand(cards)
	if err != nil {
		return Result{}, err
	}
	return EvaluateHand(h), nil
}

// EvaluateHand returns the best result for an already validated hand.
// Every split of every variant is considered; on equal candidates the
// first in enumeration order (variants, then splits) wins.
func EvaluateHand(h Hand) Result {
	var sel Selector
	for _, v := range Variants(h) {
		for _, c := range SearchSplits(v) {
			sel.Offer(c)
		}
	}
	return sel.Result(h)
}
