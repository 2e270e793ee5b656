// Package heuristic scores sliding-tile states by estimated distance
// to the goal. Every function here is admissible: it never
// overestimates the true number of remaining moves, which is what
// makes A* optimal when driven by it.
package heuristic

import (
	"fmt"

	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"
)

// Func estimates the remaining moves from s to the goal. Pure, no side
// effects, result is always >= 0.
type Func func(s puzzle.State) int

// Misplaced counts tiles (blank excluded) that are not in their goal
// position.
func Misplaced(s puzzle.State) int {
	count := 0
	n := s.Size() * s.Size()
	for i := range n {
		if t := s.Tile(i); t != 0 && t != i+1 {
			count++
		}
	}
	return count
}

// Manhattan sums |row - goalRow| + |col - goalCol| over all tiles,
// blank excluded. Tile t belongs at index t-1.
func Manhattan(s puzzle.State) int {
	size := s.Size()
	total := 0
	for i := range size * size {
		t := s.Tile(i)
		if t == 0 {
			continue
		}
		goal := t - 1
		total += absDiff(i/size, goal/size) + absDiff(i%size, goal%size)
	}
	return total
}

/*
 * LinearConflict is Manhattan plus 2 per linear conflict. Two tiles
 * conflict when both sit in their goal row (or column) but in reversed
 * relative order: each such pair forces one tile to step out of the
 * line and back, two moves Manhattan cannot see. Rows and columns are
 * counted independently; the bound stays admissible.
 */
func LinearConflict(s puzzle.State) int {
	size := s.Size()
	conflicts := 0

	for row := range size {
		for i := range size {
			a := s.Tile(row*size + i)
			if a == 0 || (a-1)/size != row {
				continue
			}
			for j := i + 1; j < size; j++ {
				b := s.Tile(row*size + j)
				if b == 0 || (b-1)/size != row {
					continue
				}
				if (a-1)%size > (b-1)%size {
					conflicts++
				}
			}
		}
	}

	for col := range size {
		for i := range size {
			a := s.Tile(i*size + col)
			if a == 0 || (a-1)%size != col {
				continue
			}
			for j := i + 1; j < size; j++ {
				b := s.Tile(j*size + col)
				if b == 0 || (b-1)%size != col {
					continue
				}
				if (a-1)/size > (b-1)/size {
					conflicts++
				}
			}
		}
	}

	return Manhattan(s) + 2*conflicts
}

var byName = map[string]Func{
	"misplaced":       Misplaced,
	"manhattan":       Manhattan,
	"linear_conflict": LinearConflict,
}

// Names lists the recognized heuristic names in increasing order of
// informedness.
func Names() []string {
	return []string{"misplaced", "manhattan", "linear_conflict"}
}

// ByName resolves a heuristic from its CLI name.
func ByName(name string) (Func, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
	return f, nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
