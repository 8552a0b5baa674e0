package catalog

import "github.com/novonex/skill-align/internal/types"

// DemoProfile returns a populated profile document used for demo mode and
// as a realistic fixture in tests.
func DemoProfile() types.ProfileDocument {
	return types.ProfileDocument{
		UserSkills: []types.UserSkill{
			{SkillID: "python", Name: "Python", Level: 2, Category: types.CategoryTechnical},
			{SkillID: "sql", Name: "SQL/Databases", Level: 1, Category: types.CategoryTechnical},
			{SkillID: "apis", Name: "REST APIs", Level: 1, Category: types.CategoryTechnical},
			{SkillID: "dsa", Name: "DSA", Level: 1, Category: types.CategoryDSA},
			{SkillID: "git", Name: "Git", Level: 3, Category: types.CategoryTools},
			{SkillID: "javascript", Name: "JavaScript", Level: 2, Category: types.CategoryTechnical},
			{SkillID: "react", Name: "React", Level: 1, Category: types.CategoryTechnical},
		},
		UserDomains: DefaultDomains(),
		DSAProgress: types.DSAProgress{
			Completed:  []string{"arrays"},
			InProgress: []string{"hashmaps"},
			NotStarted: []string{"trees", "graphs", "dp", "recursion"},
		},
		SelectedCompany: "faang",
		SelectedRole:    "backend",
	}
}
