package alignment

import "github.com/novonex/skill-align/internal/types"

// Status is the three-way classification of one skill versus its requirement
type Status string

// Gap statuses. Exactly one holds for every requirement.
const (
	StatusMet     Status = "met"
	StatusPartial Status = "partial"
	StatusGap     Status = "gap"
)

// Classify returns the gap status for a single requirement:
// met if the user level meets or exceeds the required level, partial if the
// user has any proficiency below the requirement, gap if none at all.
func Classify(userLevel, requiredLevel types.SkillLevel) Status {
	switch {
	case userLevel >= requiredLevel:
		return StatusMet
	case userLevel > 0:
		return StatusPartial
	default:
		return StatusGap
	}
}

// Counts aggregates gap statuses for dashboard summaries
type Counts struct {
	Met     int `json:"met"`
	Partial int `json:"partial"`
	Gap     int `json:"gap"`
}

// SkillStatus pairs one requirement with the user's resolved level and its
// classification, for per-skill badges.
type SkillStatus struct {
	Requirement types.SkillRequirement `json:"requirement"`
	UserLevel   types.SkillLevel       `json:"userLevel"`
	Status      Status                 `json:"status"`
}

// Summarize classifies every requirement against the resolved user skills
// and returns the per-skill statuses along with aggregate counts. The
// statuses partition the requirement list: met + partial + gap always equals
// the number of requirements.
func Summarize(userSkills []types.UserSkill, requirements []types.SkillRequirement) ([]SkillStatus, Counts) {
	byID := make(map[string]types.SkillLevel, len(userSkills))
	for _, s := range userSkills {
		if s.Level > byID[s.SkillID] {
			byID[s.SkillID] = types.ClampLevel(int(s.Level))
		}
	}

	statuses := make([]SkillStatus, len(requirements))
	var counts Counts
	for i, req := range requirements {
		level := byID[req.SkillID]
		status := Classify(level, req.RequiredLevel)
		statuses[i] = SkillStatus{Requirement: req, UserLevel: level, Status: status}
		switch status {
		case StatusMet:
			counts.Met++
		case StatusPartial:
			counts.Partial++
		case StatusGap:
			counts.Gap++
		}
	}
	return statuses, counts
}
