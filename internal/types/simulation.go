package types

// Impact tags how much a simulation action is expected to move the score
type Impact string

// Action impact tiers
const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// SimulationAction is one hypothetical skill-improving action
// (e.g. "Complete 50 DSA problems") that raises a single skill's level.
type SimulationAction struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SkillID       string `json:"skillId"`
	LevelIncrease int    `json:"levelIncrease"`
	Impact        Impact `json:"impact"`
}
