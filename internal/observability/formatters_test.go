package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/novonex/skill-align/internal/alignment"
	"github.com/novonex/skill-align/internal/simulation"
	"github.com/novonex/skill-align/internal/types"
)

func TestPrintAlignmentReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	statuses := []alignment.SkillStatus{
		{
			Requirement: types.SkillRequirement{SkillID: "python", Name: "Python", RequiredLevel: 3},
			UserLevel:   2,
			Status:      alignment.StatusPartial,
		},
		{
			Requirement: types.SkillRequirement{SkillID: "git", Name: "Git", RequiredLevel: 2},
			UserLevel:   3,
			Status:      alignment.StatusMet,
		},
	}
	counts := alignment.Counts{Met: 1, Partial: 1}

	p.PrintAlignmentReport(62, statuses, counts)

	out := buf.String()
	assert.Contains(t, out, "ALIGNMENT REPORT")
	assert.Contains(t, out, "Alignment: 62%")
	assert.Contains(t, out, "Met: 1")
	assert.Contains(t, out, "Python")
}

func TestPrintAlignmentReport_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	statuses := make([]alignment.SkillStatus, 8)
	for i := range statuses {
		statuses[i] = alignment.SkillStatus{
			Requirement: types.SkillRequirement{SkillID: "s", Name: "Skill", RequiredLevel: 2},
			Status:      alignment.StatusGap,
		}
	}

	p.PrintAlignmentReport(0, statuses, alignment.Counts{Gap: 8})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintSimulationOutcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outcome := &simulation.Outcome{Current: 44, Projected: 69, Delta: 25}
	applied := []types.SimulationAction{
		{ID: "dsa-problems", Title: "Complete 50 DSA Problems", SkillID: "dsa", LevelIncrease: 2},
	}

	p.PrintSimulationOutcome(outcome, applied)

	out := buf.String()
	assert.Contains(t, out, "WHAT-IF SIMULATION")
	assert.Contains(t, out, "Current:   44%")
	assert.Contains(t, out, "Projected: 69%")
	assert.Contains(t, out, "+25%")
	assert.Contains(t, out, "Complete 50 DSA Problems")
}

func TestPrintSimulationOutcome_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSimulationOutcome(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintQuizResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuizResult("Python", 4, 5, 3)

	out := buf.String()
	assert.Contains(t, out, "QUIZ RESULT")
	assert.Contains(t, out, "4 / 5")
	assert.Contains(t, out, "Advanced")
}

func TestPrintDSAProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	role := types.Role{
		Name: "Backend Intern",
		DSATopics: []types.DSATopic{
			{ID: "arrays", Name: "Arrays & Strings", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "trees", Name: "Trees & BST", Difficulty: types.DifficultyMedium, Required: true},
			{ID: "dp", Name: "Dynamic Programming", Difficulty: types.DifficultyHard},
		},
	}
	progress := types.DSAProgress{
		Completed:  []string{"arrays"},
		InProgress: []string{"trees"},
	}

	p.PrintDSAProgress(role, progress)

	out := buf.String()
	assert.Contains(t, out, "DSA PROGRESS")
	assert.Contains(t, out, "Backend Intern")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "in progress")
	assert.Contains(t, out, "not started")
	assert.Contains(t, out, "Completed: 1 / 3")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.CompanyAnalysis{
		CompanyProfile: types.CompanyProfile{Industry: "Fintech"},
		RequiredSkills: types.TieredSkills{
			Core: []types.RequiredSkillEntry{{Name: "Go", Level: 3}},
		},
		Guidance: types.PreparationGuidance{FocusAreas: []string{"System design"}},
	}

	p.PrintAnalysis("Acme", "Backend Engineer", analysis)

	out := buf.String()
	assert.Contains(t, out, "COMPANY ANALYSIS")
	assert.Contains(t, out, "Fintech")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "System design")
}
