// Package search drives informed graph search over sliding-tile
// states. Best-First and A* share a single engine and differ only in
// the frontier ordering policy.
package search

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/heuristic"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"
)

var Log = logrus.New()

// Order selects the frontier ordering key.
type Order int8

const (
	// ByHeuristic orders by h alone (greedy Best-First).
	ByHeuristic Order = iota
	// ByCostPlusHeuristic orders by g+h (A*).
	ByCostPlusHeuristic
)

func (o Order) String() string {
	switch o {
	case ByHeuristic:
		return "best-first"
	case ByCostPlusHeuristic:
		return "astar"
	}
	return "?"
}

// ParseOrder resolves an algorithm's CLI name.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "best-first":
		return ByHeuristic, nil
	case "astar":
		return ByCostPlusHeuristic, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

func (o Order) key(g, h int) int {
	if o == ByCostPlusHeuristic {
		return g + h
	}
	return h
}

// Outcome is the terminal condition a search ended in. Exhausted and
// StepLimitReached are resource bounds, not failures: the statistics
// in the result are still meaningful.
type Outcome int8

const (
	Solved Outcome = iota
	Exhausted
	StepLimitReached
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case StepLimitReached:
		return "step limit reached"
	}
	return "?"
}

// Result records the outcome and statistics of one search run.
type Result struct {
	Solved         bool
	Outcome        Outcome
	Path           []puzzle.Direction
	NodesExpanded  int
	NodesGenerated int
	Elapsed        time.Duration
}

/*
 * Solve runs one search from start. The ordering policy is the only
 * thing distinguishing Best-First from A*: the frontier key is h or
 * g+h respectively, while the visited set, the statistics and the
 * path reconstruction are shared. Best-First still tracks g per node
 * so path length and statistics come out right even though g never
 * influences its ordering.
 *
 * maxSteps bounds the number of expansions and is the sole guard
 * against unbounded growth on large state spaces.
 *
 * Unsolvable starts are rejected up front via the parity check; a
 * search over an impossible space is never started.
 */
func Solve(start puzzle.State, h heuristic.Func, order Order, maxSteps int) (Result, error) {
	if maxSteps <= 0 {
		return Result{}, fmt.Errorf("max steps must be positive, got %d", maxSteps)
	}
	if !start.IsSolvable() {
		return Result{}, fmt.Errorf("%w:\n%s", puzzle.ErrUnsolvable, start)
	}

	began := time.Now()

	var (
		nodes   arena
		open    frontier
		visited = make(map[string]int) // state key -> best g expanded
		seq     int
		steps   int
	)
	expanded, generated := 0, 1 // the start node counts as generated

	rootH := h(start)
	rootID := nodes.add(node{state: start, parent: -1, h: rootH})
	open.push(rootID, order.key(0, rootH), seq)
	seq++

	for open.Len() > 0 && steps < maxSteps {
		id := open.pop().id
		cur := nodes.nodes[id]

		if cur.state.IsGoal() {
			result := Result{
				Solved:         true,
				Outcome:        Solved,
				Path:           nodes.path(id),
				NodesExpanded:  expanded,
				NodesGenerated: generated,
				Elapsed:        time.Since(began),
			}
			logResult(order, result)
			return result, nil
		}

		key := cur.state.Key()
		if best, seen := visited[key]; seen && best <= cur.g {
			continue
		}
		visited[key] = cur.g
		expanded++

		for _, n := range cur.state.Neighbors() {
			childH := h(n.State)
			childID := nodes.add(node{
				state:  n.State,
				move:   n.Move,
				parent: id,
				depth:  cur.depth + 1,
				g:      cur.g + 1,
				h:      childH,
			})
			open.push(childID, order.key(cur.g+1, childH), seq)
			seq++
			generated++
		}

		steps++
	}

	outcome := Exhausted
	if steps >= maxSteps {
		outcome = StepLimitReached
	}
	result := Result{
		Solved:         false,
		Outcome:        outcome,
		NodesExpanded:  expanded,
		NodesGenerated: generated,
		Elapsed:        time.Since(began),
	}
	logResult(order, result)
	return result, nil
}

func logResult(order Order, r Result) {
	Log.WithFields(logrus.Fields{
		"algorithm": order.String(),
		"outcome":   r.Outcome.String(),
		"pathLen":   len(r.Path),
		"expanded":  r.NodesExpanded,
		"generated": r.NodesGenerated,
		"elapsed":   r.Elapsed,
	}).Debug("search finished")
}
