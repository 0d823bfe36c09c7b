package validate

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/vovakirdan/cavern/internal/level"
)

// Options configures a batch validation run.
type Options struct {
	Workers  int             // Defaults to GOMAXPROCS
	Params   level.GenParams // Generator tuning under test
	Envelope Envelope        // Jump envelope for reachability
}

// DefaultOptions returns batch options matching the shipped game.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Params:   level.DefaultGenParams(),
		Envelope: DefaultEnvelope(),
	}
}

// SeedReport holds the findings for one failing seed.
type SeedReport struct {
	Seed     uint32
	Findings []Finding
}

// Result summarizes a batch run. Reports contains only failing seeds,
// ordered by seed.
type Result struct {
	Checked int
	Failed  int
	Reports []SeedReport
}

// Run validates every seed in [from, to], sharding generation and
// checking across workers. Each seed is independent, so the only
// synchronization is job distribution and report collection. The
// context cancels an in-flight run early; the partial result is
// returned along with the context error.
func Run(ctx context.Context, from, to uint32, opts Options) (*Result, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	jobs := make(chan uint32, opts.Workers*2)
	reports := make(chan SeedReport, opts.Workers*2)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				g, start := level.GenerateWithParams(seed, opts.Params)
				findings := CheckLevel(seed, g, start, opts.Envelope)
				reports <- SeedReport{Seed: seed, Findings: findings}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for seed := from; seed <= to; seed++ {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
			if seed == to {
				// Guard against uint32 wraparound when to is MaxUint32.
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(reports)
	}()

	result := &Result{}
	for report := range reports {
		result.Checked++
		if len(report.Findings) > 0 {
			result.Failed++
			result.Reports = append(result.Reports, report)
		}
	}

	sort.Slice(result.Reports, func(i, j int) bool {
		return result.Reports[i].Seed < result.Reports[j].Seed
	})

	return result, ctx.Err()
}
