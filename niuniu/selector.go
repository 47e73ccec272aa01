package niuniu

// Better reports whether candidate a should replace the current best b.
//
// A double pair beats any non-double pair regardless of score. Between candidates of the same kind the higher score
// wins. Equal candidates return false so that the first one found is kept.
func Better(a, b Candidate) bool {
	if a.Double != b.Double {
		return a.Double
	}
	return a.Score > b.Score
}

// Selector keeps the best candidate offered so far.
// The zero value is ready to use and holds no result.
type Selector struct {
	best Candidate
	set  bool
}

// Offer considers c and reports whether it became the new best.
func (s *Selector) Offer(c Candidate) bool {
	if s.set && !Better(c, s.best) {
		return false
	}
	s.best = c
	s.set = true
	return true
}

// Best returns the best candidate and whether any candidate was offered.
func (s *Selector) Best() (Candidate, bool) {
	return s.best, s.set
}

// Result shapes the selected candidate into a Result for hand h, the hand
// the candidate's variant was derived from.
func (s *Selector) Result(h Hand) Result {
	if !s.set {
		return Result{}
	}

	c := s.best
	variant := c.Variant
	r := Result{
		HasNiu:   true,
		Score:    c.Score,
		IsDouble: c.Double,
		Triple:   append([]int(nil), c.Split.Triple[:]...),
		Pair:     append([]int(nil), c.Split.Pair[:]...),
		Variant:  &variant,
	}
	for i, card := range h {
		if variant[i] != card.Value {
			r.Changes = append(r.Changes, RankChange{Position: i, From: card.Value, To: variant[i]})
		}
	}
	r.Swapped = len(r.Changes) > 0
	return r
}
