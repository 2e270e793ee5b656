package experiment

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	styleSolved  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	styleFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

// RenderRuns tabulates every individual run.
func RenderRuns(runs []Run) string {
	var b strings.Builder

	b.WriteString(styleHeading.Render("Runs"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-12s %-16s %-32s %-20s %8s %10s %10s %12s\n",
		"algorithm", "heuristic", "state", "outcome",
		"moves", "expanded", "generated", "elapsed")

	for _, run := range runs {
		// pad before styling; ANSI escapes confuse width padding
		outcome := fmt.Sprintf("%-20s", run.Result.Outcome)
		if run.Result.Solved {
			outcome = styleSolved.Render(outcome)
		} else {
			outcome = styleFailed.Render(outcome)
		}
		moves := "-"
		if run.Result.Solved {
			moves = fmt.Sprintf("%d", len(run.Result.Path))
		}
		fmt.Fprintf(&b, "%-12s %-16s %-32s %s %8s %10d %10d %12s\n",
			run.Algorithm, run.Heuristic, formatLine(run.Start),
			outcome, moves,
			run.Result.NodesExpanded, run.Result.NodesGenerated,
			run.Result.Elapsed.Round(time.Microsecond))
	}
	return b.String()
}

// RenderSummary tabulates per-configuration averages.
func RenderSummary(summaries []Summary) string {
	var b strings.Builder

	b.WriteString(styleHeading.Render("Summary (averaged per configuration)"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-12s %-16s %6s %8s %10s %12s %12s %12s\n",
		"algorithm", "heuristic", "runs", "solved",
		"avg moves", "avg expand", "avg gen", "avg elapsed")

	for _, s := range summaries {
		fmt.Fprintf(&b, "%-12s %-16s %6d %8d %10.1f %12.1f %12.1f %12s\n",
			s.Algorithm, s.Heuristic, s.Runs, s.SolvedCount,
			s.AvgPathLen, s.AvgExpanded, s.AvgGenerated,
			s.AvgElapsed.Round(time.Microsecond))
	}
	return b.String()
}
