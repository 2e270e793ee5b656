package puzzle

import (
	"fmt"
	"math/rand/v2"
)

/*
 * Random solvable state generation, used by the experiment driver to
 * top up a states file and by the generate command. We shuffle the
 * goal configuration until the result passes the parity check and has
 * not been produced before.
 */

// GenerateSolvable returns n distinct solvable states of the given
// grid size (3 or 4), drawn from the supplied source.
func GenerateSolvable(n, size int, r *rand.Rand) ([]State, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of states must be positive, got %d", n)
	}
	if size != 3 && size != 4 {
		return nil, fmt.Errorf("unsupported grid size %d", size)
	}

	tiles := Goal(size).Tiles()
	seen := make(map[string]bool, n)
	states := make([]State, 0, n)

	for len(states) < n {
		r.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
		s, err := New(tiles)
		if err != nil {
			return nil, err
		}
		if !s.IsSolvable() || seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		states = append(states, s)
	}
	return states, nil
}
