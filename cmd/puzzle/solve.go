package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/heuristic"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/puzzle"
	"github.com/rafaelipuente/8puzzle-15puzzle-solver/internal/search"
)

var (
	solveAlgorithm string
	solveHeuristic string
	solveMaxSteps  int
)

var solveCmd = &cobra.Command{
	Use:   "solve <tiles>",
	Short: "Solve a single puzzle instance",
	Long: `Solve a single puzzle instance given as space-separated tiles with
0 for the blank, e.g.

  puzzle solve 1 2 3 4 5 6 7 0 8 --algorithm astar --heuristic manhattan`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(
		&solveAlgorithm, "algorithm", "a", "astar", "best-first or astar",
	)
	solveCmd.Flags().StringVarP(
		&solveHeuristic, "heuristic", "H", "manhattan",
		strings.Join(heuristic.Names(), ", "),
	)
	solveCmd.Flags().IntVarP(
		&solveMaxSteps, "max-steps", "m", 100000, "expansion limit",
	)
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	start, err := puzzle.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	order, err := search.ParseOrder(solveAlgorithm)
	if err != nil {
		return err
	}
	h, err := heuristic.ByName(solveHeuristic)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"algorithm": order.String(),
		"heuristic": solveHeuristic,
		"maxSteps":  solveMaxSteps,
	}).Info("solving")

	result, err := search.Solve(start, h, order, solveMaxSteps)
	if err != nil {
		return err
	}

	fmt.Printf("outcome:   %s\n", result.Outcome)
	if result.Solved {
		moves := make([]string, len(result.Path))
		for i, d := range result.Path {
			moves[i] = d.String()
		}
		fmt.Printf("moves:     %d (%s)\n", len(moves), strings.Join(moves, " "))
	}
	fmt.Printf("expanded:  %d\n", result.NodesExpanded)
	fmt.Printf("generated: %d\n", result.NodesGenerated)
	fmt.Printf("elapsed:   %s\n", result.Elapsed)
	return nil
}
