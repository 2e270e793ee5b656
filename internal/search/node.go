package search

import "github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"

// node is one entry in the search arena. Parent links are arena
// indices rather than pointers; the whole tree is released in one
// piece when the search returns.
type node struct {
	state  puzzle.State
	move   puzzle.Direction // move that produced this state; meaningless at the root
	parent int              // arena index, -1 for the root
	depth  int
	g, h   int
}

// arena owns every node generated during a single search.
type arena struct {
	nodes []node
}

func (a *arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// path walks the parent chain from id back to the root and returns the
// move sequence in start-to-goal order.
func (a *arena) path(id int) []puzzle.Direction {
	moves := make([]puzzle.Direction, 0, a.nodes[id].depth)
	for id >= 0 {
		n := &a.nodes[id]
		if n.parent >= 0 {
			moves = append(moves, n.move)
		}
		id = n.parent
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
