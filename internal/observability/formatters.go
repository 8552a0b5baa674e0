// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/novonex/skill-align/internal/alignment"
	"github.com/novonex/skill-align/internal/simulation"
	"github.com/novonex/skill-align/internal/types"
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

// PrintAlignmentReport outputs the alignment score with its gap breakdown.
func (p *Printer) PrintAlignmentReport(score int, statuses []alignment.SkillStatus, counts alignment.Counts) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Alignment: %d%%\n", score))
	sb.WriteString(fmt.Sprintf("Met: %d   Partial: %d   Gaps: %d\n", counts.Met, counts.Partial, counts.Gap))

	if len(statuses) > 0 {
		sb.WriteString("\n")
		count := min(len(statuses), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := statuses[i]
			sb.WriteString(fmt.Sprintf("  %-7s %s (%s / need %s)\n",
				string(s.Status),
				s.Requirement.Name,
				s.UserLevel.Label(),
				s.Requirement.RequiredLevel.Label(),
			))
		}
		if len(statuses) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(statuses)-maxItemsToShow))
		}
	}

	p.printBox("ALIGNMENT REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSimulationOutcome outputs the what-if projection versus the baseline.
func (p *Printer) PrintSimulationOutcome(outcome *simulation.Outcome, applied []types.SimulationAction) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current:   %d%%\n", outcome.Current))
	sb.WriteString(fmt.Sprintf("Projected: %d%%\n", outcome.Projected))
	sign := ""
	if outcome.Delta > 0 {
		sign = "+"
	}
	sb.WriteString(fmt.Sprintf("Delta:     %s%d%%\n", sign, outcome.Delta))

	if len(applied) > 0 {
		sb.WriteString("\nApplied actions:\n")
		count := min(len(applied), maxItemsToShow)
		for i := 0; i < count; i++ {
			a := applied[i]
			sb.WriteString(fmt.Sprintf("  • %s (+%d %s)\n", a.Title, a.LevelIncrease, a.SkillID))
		}
		if len(applied) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(applied)-maxItemsToShow))
		}
	}

	p.printBox("WHAT-IF SIMULATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuizResult outputs the graded quiz outcome for one skill.
func (p *Printer) PrintQuizResult(skillName string, score, total int, level types.SkillLevel) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill:    %s\n", skillName))
	sb.WriteString(fmt.Sprintf("Score:    %d / %d\n", score, total))
	sb.WriteString(fmt.Sprintf("Assessed: %s", level.Label()))

	p.printBox("QUIZ RESULT", sb.String())
}

// PrintDSAProgress outputs a role's DSA topic list with each topic's
// progress state.
func (p *Printer) PrintDSAProgress(role types.Role, progress types.DSAProgress) {
	state := make(map[string]string, len(progress.Completed)+len(progress.InProgress))
	for _, id := range progress.Completed {
		state[id] = "done"
	}
	for _, id := range progress.InProgress {
		state[id] = "in progress"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role: %s\n\n", role.Name))
	for _, topic := range role.DSATopics {
		status, ok := state[topic.ID]
		if !ok {
			status = "not started"
		}
		required := ""
		if topic.Required {
			required = " *"
		}
		sb.WriteString(fmt.Sprintf("  %-22s %-8s %s%s\n", topic.Name, topic.Difficulty, status, required))
	}
	sb.WriteString(fmt.Sprintf("\nCompleted: %d / %d", len(progress.Completed), len(role.DSATopics)))

	p.printBox("DSA PROGRESS", sb.String())
}

// PrintAnalysis outputs a human-readable summary of a company analysis.
func (p *Printer) PrintAnalysis(company, role string, analysis *types.CompanyAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", role))
	if analysis.CompanyProfile.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", analysis.CompanyProfile.Industry))
	}

	if len(analysis.RequiredSkills.Core) > 0 {
		sb.WriteString("\nCore skills:\n")
		count := min(len(analysis.RequiredSkills.Core), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := analysis.RequiredSkills.Core[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", entry.Name, entry.Level.Label()))
		}
		if len(analysis.RequiredSkills.Core) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.RequiredSkills.Core)-maxItemsToShow))
		}
	}

	if len(analysis.Guidance.FocusAreas) > 0 {
		sb.WriteString("\nFocus areas:\n")
		count := min(len(analysis.Guidance.FocusAreas), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Guidance.FocusAreas[i]))
		}
		if len(analysis.Guidance.FocusAreas) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Guidance.FocusAreas)-3))
		}
	}

	p.printBox("COMPANY ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStep outputs a progress line for long-running operations.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(message string) {
	fmt.Fprintf(p.out, "→ %s\n", message)
}
