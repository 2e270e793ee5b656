// Package experiment runs batches of searches across every requested
// algorithm × heuristic × initial state combination and aggregates
// their statistics. Individual runs are self-contained, so the batch
// fans out across a bounded worker group.
package experiment

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/heuristic"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/search"
)

var Log = logrus.New()

// Config selects which combinations a batch covers.
type Config struct {
	Algorithms []search.Order
	Heuristics []string
	MaxSteps   int
	Workers    int
}

// Run is the record of one search over one initial state.
type Run struct {
	ID        string
	Algorithm search.Order
	Heuristic string
	Start     puzzle.State
	Result    search.Result
}

// RunAll executes every algorithm × heuristic combination over every
// state. Runs share nothing, so they execute concurrently up to
// cfg.Workers at a time; any malformed or unsolvable state aborts the
// batch with the underlying error.
func RunAll(states []puzzle.State, cfg Config) ([]Run, error) {
	if cfg.MaxSteps <= 0 {
		return nil, fmt.Errorf("max steps must be positive, got %d", cfg.MaxSteps)
	}
	if len(cfg.Algorithms) == 0 || len(cfg.Heuristics) == 0 {
		return nil, fmt.Errorf("nothing to run: %d algorithms, %d heuristics",
			len(cfg.Algorithms), len(cfg.Heuristics))
	}

	heuristics := make([]heuristic.Func, len(cfg.Heuristics))
	for i, name := range cfg.Heuristics {
		f, err := heuristic.ByName(name)
		if err != nil {
			return nil, err
		}
		heuristics[i] = f
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runs := make([]Run, len(cfg.Algorithms)*len(cfg.Heuristics)*len(states))

	var g errgroup.Group
	g.SetLimit(workers)

	i := 0
	for _, order := range cfg.Algorithms {
		for hi, name := range cfg.Heuristics {
			for _, start := range states {
				slot, h := i, heuristics[hi]
				g.Go(func() error {
					result, err := search.Solve(start, h, order, cfg.MaxSteps)
					if err != nil {
						return fmt.Errorf("%s/%s: %w", order, name, err)
					}
					runs[slot] = Run{
						ID:        uuid.NewString(),
						Algorithm: order,
						Heuristic: name,
						Start:     start,
						Result:    result,
					}
					return nil
				})
				i++
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	Log.WithFields(logrus.Fields{
		"runs":    len(runs),
		"states":  len(states),
		"workers": workers,
	}).Info("experiment batch finished")
	return runs, nil
}

// Summary aggregates all runs sharing one algorithm × heuristic
// configuration. Path length is averaged over solved runs only; node
// and time statistics cover every run, solved or not.
type Summary struct {
	Algorithm    search.Order
	Heuristic    string
	Runs         int
	SolvedCount  int
	AvgPathLen   float64
	AvgExpanded  float64
	AvgGenerated float64
	AvgElapsed   time.Duration
}

// Summarize groups runs by configuration, in first-seen order.
func Summarize(runs []Run) []Summary {
	type bucket struct {
		pathTotal int
		summary   Summary
		elapsed   time.Duration
		expanded  int
		generated int
	}

	byConfig := make(map[string]*bucket)
	order := make([]*bucket, 0)

	for _, run := range runs {
		key := run.Algorithm.String() + "/" + run.Heuristic
		b, ok := byConfig[key]
		if !ok {
			b = &bucket{summary: Summary{
				Algorithm: run.Algorithm,
				Heuristic: run.Heuristic,
			}}
			byConfig[key] = b
			order = append(order, b)
		}
		b.summary.Runs++
		if run.Result.Solved {
			b.summary.SolvedCount++
			b.pathTotal += len(run.Result.Path)
		}
		b.expanded += run.Result.NodesExpanded
		b.generated += run.Result.NodesGenerated
		b.elapsed += run.Result.Elapsed
	}

	summaries := make([]Summary, 0, len(order))
	for _, b := range order {
		s := b.summary
		if s.SolvedCount > 0 {
			s.AvgPathLen = float64(b.pathTotal) / float64(s.SolvedCount)
		}
		s.AvgExpanded = float64(b.expanded) / float64(s.Runs)
		s.AvgGenerated = float64(b.generated) / float64(s.Runs)
		s.AvgElapsed = b.elapsed / time.Duration(s.Runs)
		summaries = append(summaries, s)
	}
	return summaries
}
