package experiment

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/heuristic"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/search"
)

// Scenario is a YAML experiment description: where the initial states
// live, how many to run, and which configurations to cover.
type Scenario struct {
	StatesFile string   `yaml:"states_file"`
	Size       int      `yaml:"size"`
	Count      int      `yaml:"count"`
	MaxSteps   int      `yaml:"max_steps"`
	Workers    int      `yaml:"workers"`
	Algorithms []string `yaml:"algorithms"`
	Heuristics []string `yaml:"heuristics"`
}

// LoadScenario reads and validates a scenario file, filling defaults:
// 3×3 grid, 5 states, 100000 steps, every algorithm and heuristic.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Size == 0 {
		sc.Size = 3
	}
	if sc.Count == 0 {
		sc.Count = 5
	}
	if sc.MaxSteps == 0 {
		sc.MaxSteps = 100000
	}
	if len(sc.Algorithms) == 0 {
		sc.Algorithms = []string{"best-first", "astar"}
	}
	if len(sc.Heuristics) == 0 {
		sc.Heuristics = heuristic.Names()
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Size != 3 && sc.Size != 4 {
		return fmt.Errorf("unsupported grid size %d", sc.Size)
	}
	if sc.Count <= 0 {
		return fmt.Errorf("state count must be positive, got %d", sc.Count)
	}
	if sc.StatesFile == "" {
		return errors.New("states_file is required")
	}
	for _, name := range sc.Algorithms {
		if _, err := search.ParseOrder(name); err != nil {
			return err
		}
	}
	for _, name := range sc.Heuristics {
		if _, err := heuristic.ByName(name); err != nil {
			return err
		}
	}
	return nil
}

// Config translates the scenario into a runner configuration.
func (sc *Scenario) Config() Config {
	orders := make([]search.Order, len(sc.Algorithms))
	for i, name := range sc.Algorithms {
		orders[i], _ = search.ParseOrder(name)
	}
	return Config{
		Algorithms: orders,
		Heuristics: sc.Heuristics,
		MaxSteps:   sc.MaxSteps,
		Workers:    sc.Workers,
	}
}

/*
 * LoadStates reads initial states from a plain text file, one
 * space-separated state per line; blank lines and lines starting with
 * '#' are skipped, as are lines for a different grid size. When the
 * file holds fewer than count states the difference is made up with
 * freshly generated random solvable states, which are also appended
 * to the file so later runs see the same inputs.
 */
func LoadStates(path string, size, count int, r *rand.Rand) ([]puzzle.State, error) {
	states := make([]puzzle.State, 0, count)

	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// an absent file just means we generate everything
	case err != nil:
		return nil, fmt.Errorf("read states: %w", err)
	default:
		defer f.Close()
		scanner := bufio.NewScanner(f)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if len(strings.Fields(line)) != size*size {
				continue
			}
			s, err := puzzle.Parse(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			states = append(states, s)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read states: %w", err)
		}
	}

	if len(states) >= count {
		return states[:count], nil
	}

	needed := count - len(states)
	Log.WithFields(logrus.Fields{
		"file":   path,
		"have":   len(states),
		"needed": needed,
		"size":   size,
	}).Info("topping up states with random solvable puzzles")

	generated, err := puzzle.GenerateSolvable(needed, size, r)
	if err != nil {
		return nil, err
	}
	if err := appendStates(path, generated); err != nil {
		return nil, err
	}
	return append(states, generated...), nil
}

func appendStates(path string, states []puzzle.State) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append states: %w", err)
	}
	defer f.Close()
	for _, s := range states {
		if _, err := fmt.Fprintln(f, formatLine(s)); err != nil {
			return fmt.Errorf("append states: %w", err)
		}
	}
	return nil
}

func formatLine(s puzzle.State) string {
	tiles := s.Tiles()
	fields := make([]string, len(tiles))
	for i, t := range tiles {
		fields[i] = strconv.Itoa(t)
	}
	return strings.Join(fields, " ")
}
