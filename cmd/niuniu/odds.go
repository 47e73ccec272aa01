package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lox/niuniu/internal/display"
	"github.com/lox/niuniu/internal/simulate"
	"github.com/lox/niuniu/niuniu"
)

// OddsCmd runs a Monte Carlo estimate of the outcome distribution
type OddsCmd struct {
	Iterations int    `short:"i" help:"Number of hands to deal (overrides config)"`
	Workers    int    `short:"w" help:"Number of worker goroutines (overrides config)"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) options(rt *Runtime) simulate.Options {
	opts := simulate.Options{
		Iterations: rt.Config.Simulate.Iterations,
		Workers:    rt.Config.Simulate.Workers,
		Seed:       rt.Config.Simulate.Seed,
	}
	if c.Iterations > 0 {
		opts.Iterations = c.Iterations
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	switch {
	case c.Seed != nil:
		opts.Seed = *c.Seed
	case opts.Seed == 0:
		opts.Seed = time.Now().UnixNano()
	}
	return opts
}

func (c *OddsCmd) Run(rt *Runtime) error {
	opts := c.options(rt)
	rt.Logger.Info("Dealing hands", "iterations", opts.Iterations, "workers", opts.Workers, "seed", opts.Seed)

	ctx, cancel := setupSignalHandler(rt.Logger)
	defer cancel()

	start := time.Now()
	stats, err := simulate.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return renderOdds(rt.Out, stats, opts.Seed, time.Since(start))
}

func scoreLabel(score int) string {
	if score == niuniu.MaxScore {
		return "Niu Niu"
	}
	return fmt.Sprintf("Niu %d", score)
}

func renderOdds(out io.Writer, stats simulate.Stats, seed int64, elapsed time.Duration) error {
	var b strings.Builder
	b.WriteString(display.TitleStyle.Render(" Niu Niu odds "))
	b.WriteString("\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		display.HeaderStyle.Render("Outcome"),
		display.HeaderStyle.Render("Hands"),
		display.HeaderStyle.Render("Percent"))

	row := func(label string, n int) {
		fmt.Fprintf(w, "%s\t%d\t%6.2f%%\n", label, n, stats.Percent(n))
	}
	row("No Niu", stats.NoNiu)
	for score := 1; score <= niuniu.MaxScore; score++ {
		row(scoreLabel(score), stats.ByScore[score])
	}
	fmt.Fprintln(w, "\t\t")
	row("Double", stats.Doubles)
	row("Used 3↔6", stats.Swapped)
	if err := w.Flush(); err != nil {
		return err
	}

	b.WriteString("\n")
	b.WriteString(display.InfoStyle.Render(
		fmt.Sprintf("%d hands in %v (seed %d)", stats.Iterations, elapsed.Round(time.Millisecond), seed)))
	b.WriteString("\n")

	_, err := io.WriteString(out, b.String())
	return err
}
