package catalog

import "github.com/novonex/skill-align/internal/types"

// Actions returns the full simulation action catalog
func Actions() []types.SimulationAction {
	out := make([]types.SimulationAction, len(actions))
	copy(out, actions)
	return out
}

// ActionsForRole filters the catalog to actions targeting a skill the role
// actually requires. Actions for unrelated skills never influence a
// simulation for that role.
func ActionsForRole(role types.Role) []types.SimulationAction {
	required := make(map[string]bool, len(role.RequiredSkills))
	for _, req := range role.RequiredSkills {
		required[req.SkillID] = true
	}

	relevant := make([]types.SimulationAction, 0, len(actions))
	for _, a := range actions {
		if required[a.SkillID] {
			relevant = append(relevant, a)
		}
	}
	return relevant
}

var actions = []types.SimulationAction{
	{
		ID:            "dsa-problems",
		Title:         "Complete 50 DSA Problems",
		Description:   "Solve problems on arrays, hashmaps, and trees",
		SkillID:       "dsa",
		LevelIncrease: 2,
		Impact:        types.ImpactHigh,
	},
	{
		ID:            "api-project",
		Title:         "Build a REST API Project",
		Description:   "Create a full CRUD API with authentication",
		SkillID:       "apis",
		LevelIncrease: 2,
		Impact:        types.ImpactHigh,
	},
	{
		ID:            "sql-practice",
		Title:         "Complete SQL Course",
		Description:   "Master complex queries and database design",
		SkillID:       "sql",
		LevelIncrease: 2,
		Impact:        types.ImpactMedium,
	},
	{
		ID:            "github-activity",
		Title:         "Contribute to Open Source",
		Description:   "Make 10+ contributions to open source projects",
		SkillID:       "git",
		LevelIncrease: 1,
		Impact:        types.ImpactLow,
	},
	{
		ID:            "python-advanced",
		Title:         "Advanced Python Course",
		Description:   "Learn OOP, decorators, and async programming",
		SkillID:       "python",
		LevelIncrease: 1,
		Impact:        types.ImpactMedium,
	},
	{
		ID:            "react-project",
		Title:         "Build a React Dashboard",
		Description:   "Create a full-featured React application",
		SkillID:       "react",
		LevelIncrease: 2,
		Impact:        types.ImpactHigh,
	},
}
