// Package observability provides Prometheus metrics and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/match-engine/internal/skills"
	"github.com/jonathan/match-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of one scored pair.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateID))
	sb.WriteString(fmt.Sprintf("Position:  %s\n", result.PositionID))
	sb.WriteString(fmt.Sprintf("Overall:   %.3f\n", result.OverallScore))
	sb.WriteString("\n")

	for _, cs := range result.DetailedScores.Ordered() {
		sb.WriteString(fmt.Sprintf("  %-12s %.2f\n", cs.Criterion, cs.Score))
	}

	if len(result.Insights) > 0 {
		sb.WriteString("\nInsights:\n")
		count := min(len(result.Insights), maxItemsToShow)
		for i := 0; i < count; i++ {
			ins := result.Insights[i]
			marker := "•"
			switch ins.Category {
			case types.CategoryStrength:
				marker = "✓"
			case types.CategoryWeakness, types.CategoryRisk:
				marker = "⚠"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", marker, ins.Message))
		}
		if len(result.Insights) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Insights)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchList outputs ranked match results with scores.
func (p *Printer) PrintMatchList(title string, results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total pairs scored: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s / %s\n", i+1, r.CandidateID, r.PositionID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f", r.OverallScore))
		sb.WriteString(fmt.Sprintf("  (skills %.2f, exp %.2f)\n", r.DetailedScores.Skills, r.DetailedScores.Experience))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more pairs", len(results)-maxItemsToShow))
	}

	p.printBox(title, sb.String())
}

// PrintGapAnalysis outputs the skill coverage breakdown for one pair.
func (p *Printer) PrintGapAnalysis(gap skills.GapAnalysis) {
	var sb strings.Builder

	writeSkillList := func(label string, names []string) {
		if len(names) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s:\n", label))
		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeSkillList("Matched", gap.Matched)
	writeSkillList("Missing", gap.Missing)
	writeSkillList("Additional", gap.Additional)

	if sb.Len() == 0 {
		sb.WriteString("No skills on either side\n")
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUsageStats outputs per-strategy ensemble statistics, sorted by name.
func (p *Printer) PrintUsageStats(stats map[string]types.StrategyUsage) {
	if len(stats) == 0 {
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		u := stats[name]
		sb.WriteString(fmt.Sprintf("%s\n", name))
		sb.WriteString(fmt.Sprintf("  calls: %d  errors: %d  avg: %.1fms\n", u.Calls, u.Errors, u.AverageLatencyMS()))
		if i < len(names)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRATEGY USAGE", sb.String())
}

// PrintHealth outputs the smoke-test outcome per strategy.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHealth(health map[string]types.StrategyHealth) {
	if len(health) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO STRATEGIES REGISTERED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	names := make([]string, 0, len(health))
	for name := range health {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		h := health[name]
		if h.Healthy {
			sb.WriteString(fmt.Sprintf("✅ %s (%dms)\n", name, h.LatencyMS))
		} else {
			msg := h.Error
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n", name))
			sb.WriteString(fmt.Sprintf("  %s\n", msg))
		}
		if i < len(names)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRATEGY HEALTH", strings.TrimSuffix(sb.String(), "\n"))
}
