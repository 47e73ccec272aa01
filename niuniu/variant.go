package niuniu

import "math/bits"

// Variant is one concrete assignment of values to the five positions of a
// hand. Variants are comparable and de-duplicated by value.
type Variant [HandSize]int

// swapped returns the substitute for a swappable value.
func swapped(v int) int {
	switch v {
	case 3:
		return 6
	case 6:
		return 3
	default:
		return v
	}
}

// Sum returns the total of the values at the given positions.
func (v Variant) Sum(positions ...int) int {
	total := 0
	for _, p := range positions {
		total += v[p]
	}
	return total
}

// Variants returns every distinct value assignment reachable by swapping any
// subset of the hand's 3s and 6s. The unmodified hand is always first; the
// rest follow in ascending order of the swap mask, where bit i of the mask
// selects the i-th swappable position from the right. The rightmost 3 or 6
// therefore flips fastest.
func Variants(h Hand) []Variant {
	var swappable [HandSize]int
	k := 0
	for i, c := range h {
		if c.Swappable() {
			swappable[k] = i
			k++
		}
	}

	base := h.Values()
	total := 1 << k
	out := make([]Variant, 0, total)
	seen := make(map[Variant]struct{}, total)

	for mask := 0; mask < total; mask++ {
		v := base
		for m := uint(mask); m != 0; m &= m - 1 {
			pos := swappable[k-1-bits.TrailingZeros(m)]
			v[pos] = swapped(v[pos])
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
