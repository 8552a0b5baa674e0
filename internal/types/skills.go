// Package types provides type definitions for structured data used throughout the skill-align system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillLevel represents an ordinal proficiency level for a single skill.
// 0 = none, 1 = basics, 2 = problem-solving, 3 = framework/advanced, 4 = real-world/expert.
type SkillLevel int

// Skill level bounds
const (
	LevelNone SkillLevel = 0
	LevelMax  SkillLevel = 4
)

// levelLabels maps each level to its display label
var levelLabels = [...]string{"None", "Beginner", "Intermediate", "Advanced", "Expert"}

// ClampLevel clamps an arbitrary integer into the valid [0,4] skill level range.
// Out-of-range levels are clamped at the point of assignment, never propagated.
func ClampLevel(level int) SkillLevel {
	if level < int(LevelNone) {
		return LevelNone
	}
	if level > int(LevelMax) {
		return LevelMax
	}
	return SkillLevel(level)
}

// Label returns the display label for a skill level.
// Levels outside [0,4] are clamped first.
func (l SkillLevel) Label() string {
	return levelLabels[ClampLevel(int(l))]
}

// SkillItem is a single skill inside a domain vault.
// Identity is the ID, unique within its owning domain.
type SkillItem struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// SkillDomain groups related skills into a named track
// (e.g. Software Development, DSA, Cloud & DevOps).
// Skill order is meaningful for display only, never for scoring.
type SkillDomain struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Skills      []SkillItem `json:"skills"`
}

// SkillCategory classifies a skill or requirement for grouping on dashboards
type SkillCategory string

// Skill categories
const (
	CategoryTechnical SkillCategory = "technical"
	CategoryDSA       SkillCategory = "dsa"
	CategoryTools     SkillCategory = "tools"
	CategorySoft      SkillCategory = "soft"
)

// UserSkill is the flat, role-scoped view of one skill's level,
// used when scoring against a specific role's requirements.
type UserSkill struct {
	SkillID  string        `json:"skillId"`
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category"`
}

// SkillRequirement is one skill a role expects, with the minimum level.
// RequiredLevel is always in [1,4]; a requirement with no expectation is
// simply absent from the set.
type SkillRequirement struct {
	SkillID       string        `json:"skillId"`
	Name          string        `json:"name"`
	RequiredLevel SkillLevel    `json:"requiredLevel"`
	Category      SkillCategory `json:"category"`
}
