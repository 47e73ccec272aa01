package display

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lox/niuniu/niuniu"
)

// FormatHand joins card labels with spaces.
func FormatHand(h niuniu.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FormatValues renders values as "[a b c]".
func FormatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// RenderResult describes the outcome for hand h as multi-line text.
func RenderResult(h niuniu.Hand, r niuniu.Result) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\n", HeaderStyle.Render("hand"), HandStyle.Render(FormatHand(h)))
	if r.HasNiu && r.Swapped {
		fmt.Fprintf(w, "%s\t%s\n", HeaderStyle.Render("used (3↔6)"), SwapStyle.Render(FormatValues(r.Variant[:])))
		for _, c := range r.Changes {
			fmt.Fprintf(w, "\t%s\n", InfoStyle.Render(fmt.Sprintf("card %d: %d → %d", c.Position+1, c.From, c.To)))
		}
	}

	if !r.HasNiu {
		fmt.Fprintf(w, "%s\t%s\n", HeaderStyle.Render("result"), ErrorStyle.Render("No Niu"))
		_ = w.Flush()
		return b.String()
	}

	triple, pair := r.TripleValues(), r.PairValues()
	fmt.Fprintf(w, "%s\t%s  sum %d\n", HeaderStyle.Render("group of 3"), FormatValues(triple), sum(triple))
	fmt.Fprintf(w, "%s\t%s  sum %d\n", HeaderStyle.Render("pair"), FormatValues(pair), sum(pair))
	if r.IsDouble {
		fmt.Fprintf(w, "%s\t%s\n", HeaderStyle.Render("double"), DoubleStyle.Render(fmt.Sprintf("%d = %d, 2× earning", pair[0], pair[1])))
	}

	score := strconv.Itoa(r.Score)
	if r.IsNiuNiu() {
		score += " (Niu Niu!)"
	}
	fmt.Fprintf(w, "%s\t%s\n", HeaderStyle.Render("score"), SuccessStyle.Render(score))

	_ = w.Flush()
	return b.String()
}

// Summary is a one-line description used in logs and the interactive view.
func Summary(r niuniu.Result) string {
	if !r.HasNiu {
		return "No Niu"
	}
	var parts []string
	if r.IsNiuNiu() {
		parts = append(parts, "Niu Niu")
	} else {
		parts = append(parts, fmt.Sprintf("Niu %d", r.Score))
	}
	if r.IsDouble {
		parts = append(parts, "double")
	}
	if r.Swapped {
		parts = append(parts, "3↔6 swap")
	}
	return strings.Join(parts, ", ")
}
