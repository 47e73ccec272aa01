// Package simulate estimates how often each Niu Niu outcome is dealt.
package simulate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/niuniu/internal/deck"
	"github.com/lox/niuniu/niuniu"
)

// checkEvery is how many deals a worker plays between context checks.
const checkEvery = 1024

// Options controls a simulation run
type Options struct {
	Iterations int
	Workers    int
	Seed       int64
}

// Stats counts outcomes over a number of dealt hands
type Stats struct {
	Iterations int
	NoNiu      int
	ByScore    [niuniu.MaxScore + 1]int // index 1..10; 0 unused
	Doubles    int
	Swapped    int
}

// Add merges other into s
func (s *Stats) Add(other Stats) {
	s.Iterations += other.Iterations
	s.NoNiu += other.NoNiu
	s.Doubles += other.Doubles
	s.Swapped += other.Swapped
	for i := range s.ByScore {
		s.ByScore[i] += other.ByScore[i]
	}
}

// Record counts one result
func (s *Stats) Record(r niuniu.Result) {
	s.Iterations++
	if !r.HasNiu {
		s.NoNiu++
		return
	}
	s.ByScore[r.Score]++
	if r.IsDouble {
		s.Doubles++
	}
	if r.Swapped {
		s.Swapped++
	}
}

// Percent returns n as a percentage of all iterations
func (s Stats) Percent(n int) float64 {
	if s.Iterations == 0 {
		return 0
	}
	return float64(n) / float64(s.Iterations) * 100
}

// Run deals opts.Iterations random hands across opts.Workers goroutines.
// Each worker draws from its own deck seeded from opts.Seed, so the totals
// are reproducible for a given seed and worker count.
func Run(ctx context.Context, opts Options) (Stats, error) {
	if opts.Iterations < 1 {
		return Stats{}, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > opts.Iterations {
		workers = opts.Iterations
	}

	master := deck.NewRand(opts.Seed)
	perWorker := opts.Iterations / workers
	remainder := opts.Iterations % workers

	results := make([]Stats, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		seed := master.Int64()

		g.Go(func() error {
			stats, err := runWorker(ctx, n, seed)
			if err != nil {
				return err
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var total Stats
	for _, r := range results {
		total.Add(r)
	}
	return total, nil
}

func runWorker(ctx context.Context, n int, seed int64) (Stats, error) {
	var stats Stats
	d := deck.NewDeck(deck.NewRand(seed))

	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Stats{}, err
			}
		}

		d.Reset()
		h, err := niuniu.NewHand(deck.NiuCards(d.DealN(niuniu.HandSize)))
		if err != nil {
			return Stats{}, fmt.Errorf("dealt an invalid hand: %w", err)
		}
		stats.Record(niuniu.EvaluateHand(h))
	}
	return stats, nil
}
