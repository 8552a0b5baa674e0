// Package simulation recomputes alignment under hypothetical skill
// improvements. Every simulation is a pure function of the baseline and
// the full toggle-set; nothing is applied incrementally, so toggling
// actions in any order, or off and on again, always reproduces the same
// projected score.
package simulation

import (
	"github.com/novonex/skill-align/internal/alignment"
	"github.com/novonex/skill-align/internal/types"
)

// Outcome is the result of one what-if simulation
type Outcome struct {
	Current   int               `json:"current"`
	Projected int               `json:"projected"`
	Delta     int               `json:"delta"`
	Skills    []types.UserSkill `json:"skills"`
}

// ApplyActions folds the active actions into a hypothetical skill set.
// Increases targeting the same skill sum before clamping at level 4, so the
// fold is commutative over the toggle-set. Actions targeting a skill absent
// from the baseline synthesize a new entry. The baseline is never mutated.
func ApplyActions(baseline []types.UserSkill, actions []types.SimulationAction, active map[string]bool) []types.UserSkill {
	increase := make(map[string]int)
	targets := make([]string, 0, len(actions)) // first-appearance order
	for _, action := range actions {
		if !active[action.ID] {
			continue
		}
		if _, seen := increase[action.SkillID]; !seen {
			targets = append(targets, action.SkillID)
		}
		increase[action.SkillID] += action.LevelIncrease
	}

	out := make([]types.UserSkill, len(baseline))
	for i, skill := range baseline {
		out[i] = skill
		if inc, ok := increase[skill.SkillID]; ok {
			out[i].Level = types.ClampLevel(int(skill.Level) + inc)
			delete(increase, skill.SkillID)
		}
	}

	// Remaining increases target skills the user does not have yet.
	// Synthesized entries follow action order so output is stable; the id
	// stands in for the display name until the caller knows a better one.
	for _, skillID := range targets {
		inc, ok := increase[skillID]
		if !ok {
			continue
		}
		out = append(out, types.UserSkill{
			SkillID:  skillID,
			Name:     skillID,
			Level:    types.ClampLevel(inc),
			Category: types.CategoryTechnical,
		})
	}
	return out
}

// Simulate recomputes alignment from the baseline under the active
// toggle-set and reports the current score, the projected score, and their
// delta, along with the hypothetical skill set that produced it.
func Simulate(
	baseline []types.UserSkill,
	actions []types.SimulationAction,
	active map[string]bool,
	requirements []types.SkillRequirement,
) Outcome {
	current := alignment.Score(baseline, requirements)
	skills := ApplyActions(baseline, actions, active)
	projected := alignment.Score(skills, requirements)

	// Give synthesized skills the requirement's display name when one
	// targets them.
	reqNames := make(map[string]string, len(requirements))
	for _, req := range requirements {
		reqNames[req.SkillID] = req.Name
	}
	for i := len(baseline); i < len(skills); i++ {
		if name, ok := reqNames[skills[i].SkillID]; ok && name != "" {
			skills[i].Name = name
		}
	}

	return Outcome{
		Current:   current,
		Projected: projected,
		Delta:     projected - current,
		Skills:    skills,
	}
}
