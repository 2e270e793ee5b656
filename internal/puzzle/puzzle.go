package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var (
	ErrInvalidState = errors.New("invalid puzzle state")
	ErrUnsolvable   = errors.New("puzzle state is not solvable")
)

// Direction is the direction the blank moves when a tile slides into it.
type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

/*
 * State is an immutable sliding-tile board. Tiles hold a permutation
 * of 0..n²-1 where 0 is the blank; applying a move always produces a
 * fresh State and never touches the receiver, so the search engine can
 * retain any number of historical states for its closed set and path
 * reconstruction.
 */
type State struct {
	tiles []int
	size  int
	blank int
}

// New validates tiles and builds a State. The slice is copied, never
// aliased. Tiles must be a permutation of 0..n²-1 for n = 3 or 4.
func New(tiles []int) (State, error) {
	var size int
	switch len(tiles) {
	case 9:
		size = 3
	case 16:
		size = 4
	default:
		return State{}, fmt.Errorf(
			"%w: want 9 or 16 tiles, got %d", ErrInvalidState, len(tiles),
		)
	}

	seen := make([]bool, len(tiles))
	blank := -1
	for i, t := range tiles {
		if t < 0 || t >= len(tiles) {
			return State{}, fmt.Errorf(
				"%w: tile value %d out of range 0..%d",
				ErrInvalidState, t, len(tiles)-1,
			)
		}
		if seen[t] {
			return State{}, fmt.Errorf(
				"%w: duplicate tile value %d", ErrInvalidState, t,
			)
		}
		seen[t] = true
		if t == 0 {
			blank = i
		}
	}

	s := State{
		tiles: make([]int, len(tiles)),
		size:  size,
		blank: blank,
	}
	copy(s.tiles, tiles)
	return s, nil
}

// Parse builds a State from a space-separated tile list,
// e.g. "1 2 3 4 5 6 7 0 8".
func Parse(text string) (State, error) {
	fields := strings.Fields(text)
	tiles := make([]int, 0, len(fields))
	for _, f := range fields {
		t, err := strconv.Atoi(f)
		if err != nil {
			return State{}, fmt.Errorf(
				"%w: bad tile %q: %v", ErrInvalidState, f, err,
			)
		}
		tiles = append(tiles, t)
	}
	return New(tiles)
}

// MustParse is Parse for fixtures known to be well-formed.
func MustParse(text string) State {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Goal returns the solved board for the given grid size: tiles in
// ascending order with the blank last.
func Goal(size int) State {
	tiles := make([]int, size*size)
	for i := range tiles[:len(tiles)-1] {
		tiles[i] = i + 1
	}
	s, _ := New(tiles)
	return s
}

func (s State) Size() int { return s.size }

// Tiles returns a copy of the tile sequence.
func (s State) Tiles() []int {
	tiles := make([]int, len(s.tiles))
	copy(tiles, s.tiles)
	return tiles
}

// Tile returns the value at index i in row-major order.
func (s State) Tile(i int) int { return s.tiles[i] }

// BlankPosition returns the blank's (row, col).
func (s State) BlankPosition() (row, col int) {
	return s.blank / s.size, s.blank % s.size
}

// Key is a compact value identity usable as a map key. Two states are
// the same iff their keys are equal.
func (s State) Key() string {
	b := make([]byte, len(s.tiles))
	for i, t := range s.tiles {
		b[i] = byte(t)
	}
	return string(b)
}

func (s State) Equal(other State) bool {
	if s.size != other.size {
		return false
	}
	for i, t := range s.tiles {
		if other.tiles[i] != t {
			return false
		}
	}
	return true
}

func (s State) String() string {
	var b strings.Builder
	for row := range s.size {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range s.size {
			if col > 0 {
				b.WriteByte(' ')
			}
			if t := s.tiles[row*s.size+col]; t == 0 {
				b.WriteByte('b')
			} else {
				b.WriteString(strconv.Itoa(t))
			}
		}
	}
	return b.String()
}

// IsGoal reports whether tiles are in ascending order with the blank last.
func (s State) IsGoal() bool {
	n := len(s.tiles)
	for i, t := range s.tiles[:n-1] {
		if t != i+1 {
			return false
		}
	}
	return s.tiles[n-1] == 0
}

/*
 * IsSolvable applies the inversion parity rule. An inversion is a pair
 * of tiles (blank excluded) in reverse order relative to the goal.
 *
 *  - odd grid width: solvable iff the inversion count is even
 *  - even grid width: solvable iff inversion count plus the blank's
 *    row distance from the bottom row is even
 */
func (s State) IsSolvable() bool {
	inversions := 0
	for i, a := range s.tiles {
		if a == 0 {
			continue
		}
		for _, b := range s.tiles[i+1:] {
			if b != 0 && a > b {
				inversions++
			}
		}
	}
	if s.size%2 == 1 {
		return inversions%2 == 0
	}
	blankRow, _ := s.BlankPosition()
	return (inversions+s.size-1-blankRow)%2 == 0
}

// LegalMoves lists the directions the blank can move from this state,
// in Up, Down, Left, Right order.
func (s State) LegalMoves() []Direction {
	row, col := s.BlankPosition()
	moves := make([]Direction, 0, 4)
	if row > 0 {
		moves = append(moves, Up)
	}
	if row < s.size-1 {
		moves = append(moves, Down)
	}
	if col > 0 {
		moves = append(moves, Left)
	}
	if col < s.size-1 {
		moves = append(moves, Right)
	}
	return moves
}

// Apply slides the blank in direction d, returning the resulting state.
// The receiver is left untouched.
func (s State) Apply(d Direction) (State, error) {
	row, col := s.BlankPosition()
	var swap int
	switch d {
	case Up:
		if row == 0 {
			return State{}, fmt.Errorf("illegal move %s from row %d", d, row)
		}
		swap = s.blank - s.size
	case Down:
		if row == s.size-1 {
			return State{}, fmt.Errorf("illegal move %s from row %d", d, row)
		}
		swap = s.blank + s.size
	case Left:
		if col == 0 {
			return State{}, fmt.Errorf("illegal move %s from col %d", d, col)
		}
		swap = s.blank - 1
	default:
		if col == s.size-1 {
			return State{}, fmt.Errorf("illegal move %s from col %d", d, col)
		}
		swap = s.blank + 1
	}

	tiles := make([]int, len(s.tiles))
	copy(tiles, s.tiles)
	tiles[s.blank], tiles[swap] = tiles[swap], tiles[s.blank]
	return State{tiles: tiles, size: s.size, blank: swap}, nil
}

// Neighbor is a legal move paired with the state it produces.
type Neighbor struct {
	Move  Direction
	State State
}

// Neighbors generates every state reachable in one move, freshly
// computed on each call. Up to 4 entries, fewer at edges and corners.
func (s State) Neighbors() []Neighbor {
	moves := s.LegalMoves()
	neighbors := make([]Neighbor, 0, len(moves))
	for _, move := range moves {
		next, err := s.Apply(move)
		if err != nil {
			// LegalMoves and Apply agree on bounds; this cannot happen.
			Log.WithFields(logrus.Fields{
				"move": move, "state": s.Key(),
			}).Panic("legal move rejected")
		}
		neighbors = append(neighbors, Neighbor{Move: move, State: next})
	}
	return neighbors
}
