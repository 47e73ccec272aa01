package niuniu

// SplitCount is C(5,3), the number of ways to choose the triple.
const SplitCount = 10

// Split partitions the five positions into a triple and a pair.
type Split struct {
	Triple [3]int
	Pair   [2]int
}

// splits holds every Split in lexicographic order of the triple indices:
// (0,1,2), (0,1,3), (0,1,4), (0,2,3), ... (2,3,4). This order decides ties.
var splits = buildSplits()

func buildSplits() [SplitCount]Split {
	var out [SplitCount]Split
	n := 0
	for a := 0; a < HandSize; a++ {
		for b := a + 1; b < HandSize; b++ {
			for c := b + 1; c < HandSize; c++ {
				inTriple := 1<<a | 1<<b | 1<<c
				s := Split{Triple: [3]int{a, b, c}}
				p := 0
				for i := 0; i < HandSize; i++ {
					if inTriple&(1<<i) == 0 {
						s.Pair[p] = i
						p++
					}
				}
				out[n] = s
				n++
			}
		}
	}
	return out
}

// Splits returns all ten splits in enumeration order.
func Splits() []Split {
	out := make([]Split, SplitCount)
	copy(out, splits[:])
	return out
}

// Candidate is a valid split of one variant together with its score.
type Candidate struct {
	Variant Variant
	Split   Split
	Score   int
	Double  bool
}

// Score scores one split of a variant. ok is false when the triple does not
// sum to a multiple of ten.
func Score(v Variant, s Split) (c Candidate, ok bool) {
	if v.Sum(s.Triple[:]...)%10 != 0 {
		return Candidate{}, false
	}
	score := v.Sum(s.Pair[:]...) % 10
	if score == 0 {
		score = MaxScore
	}
	return Candidate{
		Variant: v,
		Split:   s,
		Score:   score,
		Double:  v[s.Pair[0]] == v[s.Pair[1]],
	}, true
}

// SearchSplits returns every valid split of v in enumeration order. The
// result is empty when no triple sums to a multiple of ten.
func SearchSplits(v Variant) []Candidate {
	var out []Candidate
	for _, s := range splits {
		if c, ok := Score(v, s); ok {
			out = append(out, c)
		}
	}
	return out
}
