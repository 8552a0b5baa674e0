// Package alignment reduces a set of skill comparisons to a single 0-100
// alignment score and classifies each requirement as met, partial, or gap.
// All functions are pure over their inputs.
package alignment

import (
	"math"

	"github.com/novonex/skill-align/internal/types"
)

// Score computes the alignment percentage of the user's skills against a
// role's requirements. Each requirement contributes min(userLevel/required, 1)
// so over-qualification never inflates beyond full credit; the mean across
// all requirements is scaled to 0-100 and rounded half up. An empty
// requirement set scores 0.
func Score(userSkills []types.UserSkill, requirements []types.SkillRequirement) int {
	if len(requirements) == 0 {
		return 0
	}

	byID := make(map[string]types.SkillLevel, len(userSkills))
	for _, s := range userSkills {
		if s.Level > byID[s.SkillID] {
			byID[s.SkillID] = types.ClampLevel(int(s.Level))
		}
	}

	total := 0.0
	for _, req := range requirements {
		total += ratio(byID[req.SkillID], req.RequiredLevel)
	}

	mean := total / float64(len(requirements))
	return int(math.Floor(mean*100 + 0.5))
}

// ratio is the per-skill score: user level over required level, capped at 1.
func ratio(userLevel, requiredLevel types.SkillLevel) float64 {
	if requiredLevel <= 0 {
		// Requirements with no expectation are absent from the set; a zero
		// required level cannot divide.
		return 0
	}
	r := float64(userLevel) / float64(requiredLevel)
	if r > 1 {
		return 1
	}
	return r
}
