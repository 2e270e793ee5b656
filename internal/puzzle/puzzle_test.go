package puzzle

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestNewRejectsMalformedStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tiles []int
	}{
		{name: "empty", tiles: []int{}},
		{name: "too short", tiles: []int{1, 2, 3, 4, 5, 6, 7, 0}},
		{name: "length between sizes", tiles: []int{1, 2, 3, 4, 5, 6, 7, 8, 0, 9, 10, 11}},
		{name: "duplicate value", tiles: []int{1, 2, 3, 4, 5, 6, 7, 8, 8}},
		{name: "missing blank", tiles: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "two blanks", tiles: []int{0, 2, 3, 4, 5, 6, 7, 8, 0}},
		{name: "negative value", tiles: []int{-1, 2, 3, 4, 5, 6, 7, 8, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.tiles)
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse("4 5 6 1 8 0 7 3 2")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 1, 8, 0, 7, 3, 2}, s.Tiles())
	assert.Equal(t, 3, s.Size())

	_, err = Parse("4 5 6 1 8 x 7 3 2")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStringRendersBlankAsB(t *testing.T) {
	t.Parallel()

	s := MustParse("1 2 3 4 5 6 7 0 8")
	assert.Equal(t, "1 2 3\n4 5 6\n7 b 8", s.String())
}

func TestGoal(t *testing.T) {
	t.Parallel()

	assert.True(t, Goal(3).IsGoal())
	assert.True(t, Goal(4).IsGoal())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, Goal(3).Tiles())

	assert.False(t, MustParse("1 2 3 4 5 6 7 0 8").IsGoal())
	assert.False(t, MustParse("0 2 3 4 5 6 7 8 1").IsGoal())
}

func TestLegalMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state string
		want  []Direction
	}{
		{
			name:  "blank in center",
			state: "1 2 3 4 0 5 6 7 8",
			want:  []Direction{Up, Down, Left, Right},
		},
		{
			name:  "blank in top-left corner",
			state: "0 1 2 3 4 5 6 7 8",
			want:  []Direction{Down, Right},
		},
		{
			name:  "blank in bottom-right corner",
			state: "1 2 3 4 5 6 7 8 0",
			want:  []Direction{Up, Left},
		},
		{
			name:  "blank on bottom edge",
			state: "1 2 3 4 5 6 7 0 8",
			want:  []Direction{Up, Left, Right},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, MustParse(test.state).LegalMoves())
		})
	}
}

func TestApplyProducesIndependentState(t *testing.T) {
	t.Parallel()

	s := MustParse("1 2 3 4 0 5 6 7 8")
	before := s.Tiles()

	moved, err := s.Apply(Up)
	require.NoError(t, err)

	assert.Equal(t, before, s.Tiles(), "original must never mutate")
	assert.Equal(t, []int{1, 0, 3, 4, 2, 5, 6, 7, 8}, moved.Tiles())
	assert.False(t, moved.Equal(s))
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	t.Parallel()

	s := MustParse("0 1 2 3 4 5 6 7 8")
	_, err := s.Apply(Up)
	assert.Error(t, err)
	_, err = s.Apply(Left)
	assert.Error(t, err)
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state string
		count int
	}{
		{name: "center", state: "1 2 3 4 0 5 6 7 8", count: 4},
		{name: "edge", state: "1 0 2 3 4 5 6 7 8", count: 3},
		{name: "corner", state: "0 1 2 3 4 5 6 7 8", count: 2},
		{name: "15-puzzle center", state: "1 2 3 4 5 0 6 7 8 9 10 11 12 13 14 15", count: 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			neighbors := MustParse(test.state).Neighbors()
			assert.Len(t, neighbors, test.count)
		})
	}
}

func TestNeighborsIdempotent(t *testing.T) {
	t.Parallel()

	s := MustParse("1 2 3 4 0 5 6 7 8")
	first := s.Neighbors()
	second := s.Neighbors()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Move, second[i].Move)
		assert.True(t, first[i].State.Equal(second[i].State))
	}
}

func TestKeyIdentity(t *testing.T) {
	t.Parallel()

	a := MustParse("1 2 3 4 0 5 6 7 8")
	b := MustParse("1 2 3 4 0 5 6 7 8")
	c := MustParse("1 2 3 0 4 5 6 7 8")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestIsSolvable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    string
		solvable bool
	}{
		{name: "goal", state: "1 2 3 4 5 6 7 8 0", solvable: true},
		{name: "one move from goal", state: "1 2 3 4 5 6 7 0 8", solvable: true},
		{name: "odd inversions", state: "8 1 2 0 4 3 7 6 5", solvable: false},
		{name: "fifteen inversions", state: "4 5 0 6 1 8 7 3 2", solvable: false},
		{name: "hard but solvable", state: "8 6 7 2 5 4 3 0 1", solvable: true},
		{name: "15-puzzle goal", state: "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0", solvable: true},
		{
			// swapping two adjacent tiles flips permutation parity
			name:     "15-puzzle swapped pair",
			state:    "2 1 3 4 5 6 7 8 9 10 11 12 13 14 15 0",
			solvable: false,
		},
		{
			// blank one row up keeps the same reachable class
			name:     "15-puzzle blank moved up",
			state:    "1 2 3 4 5 6 7 8 9 10 11 0 13 14 15 12",
			solvable: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.solvable, MustParse(test.state).IsSolvable())
		})
	}
}

/*
 * The parity check must split the 8-puzzle state space exactly in
 * half: 9!/2 solvable, 9!/2 not.
 */
func TestSolvabilityPartitionsStateSpace(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tiles := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	solvable := 0
	total := 0

	var permute func(k int)
	permute = func(k int) {
		if k == 1 {
			total++
			s, err := New(tiles)
			require.NoError(t, err)
			if s.IsSolvable() {
				solvable++
			}
			return
		}
		for i := range k - 1 {
			permute(k - 1)
			if k%2 == 0 {
				tiles[i], tiles[k-1] = tiles[k-1], tiles[i]
			} else {
				tiles[0], tiles[k-1] = tiles[k-1], tiles[0]
			}
		}
		permute(k - 1)
	}
	permute(9)

	assert.Equal(t, 362880, total)
	assert.Equal(t, 181440, solvable)
}
