package catalog

import "github.com/novonex/skill-align/internal/types"

// CompanyTypes returns the coarse company classifications a user can target
func CompanyTypes() []types.CompanyType {
	out := make([]types.CompanyType, len(companyTypes))
	copy(out, companyTypes)
	return out
}

var companyTypes = []types.CompanyType{
	{ID: "faang", Name: "FAANG-like", Description: "Google, Meta, Amazon, Apple, etc."},
	{ID: "product", Name: "Product Company", Description: "Atlassian, Notion, Stripe, etc."},
	{ID: "startup", Name: "Startup", Description: "Early-stage, fast-paced environment"},
	{ID: "fintech", Name: "FinTech", Description: "Razorpay, Zerodha, PayTM, etc."},
}

// Roles returns the built-in role requirement sets
func Roles() []types.Role {
	out := make([]types.Role, len(roles))
	for i, r := range roles {
		out[i] = r
		out[i].RequiredSkills = make([]types.SkillRequirement, len(r.RequiredSkills))
		copy(out[i].RequiredSkills, r.RequiredSkills)
		out[i].DSATopics = make([]types.DSATopic, len(r.DSATopics))
		copy(out[i].DSATopics, r.DSATopics)
	}
	return out
}

// RoleByID looks up a built-in role. The second return reports whether the
// role exists.
func RoleByID(id string) (types.Role, bool) {
	for _, r := range Roles() {
		if r.ID == id {
			return r, true
		}
	}
	return types.Role{}, false
}

var roles = []types.Role{
	{
		ID:          "backend",
		Name:        "Backend Intern",
		Description: "Server-side development, APIs, databases",
		RequiredSkills: []types.SkillRequirement{
			{SkillID: "python", Name: "Python", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "sql", Name: "SQL/Databases", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "apis", Name: "REST APIs", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "dsa", Name: "DSA", RequiredLevel: 3, Category: types.CategoryDSA},
			{SkillID: "git", Name: "Git", RequiredLevel: 2, Category: types.CategoryTools},
			{SkillID: "linux", Name: "Linux/CLI", RequiredLevel: 2, Category: types.CategoryTools},
		},
		DSATopics: []types.DSATopic{
			{ID: "arrays", Name: "Arrays & Strings", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "hashmaps", Name: "Hash Maps", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "trees", Name: "Trees & BST", Difficulty: types.DifficultyMedium, Required: true},
			{ID: "graphs", Name: "Graphs", Difficulty: types.DifficultyMedium, Required: true},
			{ID: "dp", Name: "Dynamic Programming", Difficulty: types.DifficultyHard, Required: false},
			{ID: "recursion", Name: "Recursion", Difficulty: types.DifficultyMedium, Required: true},
		},
	},
	{
		ID:          "frontend",
		Name:        "Frontend Intern",
		Description: "UI/UX development, React, modern web",
		RequiredSkills: []types.SkillRequirement{
			{SkillID: "javascript", Name: "JavaScript", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "react", Name: "React", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "css", Name: "CSS/Tailwind", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "typescript", Name: "TypeScript", RequiredLevel: 2, Category: types.CategoryTechnical},
			{SkillID: "git", Name: "Git", RequiredLevel: 2, Category: types.CategoryTools},
			{SkillID: "dsa", Name: "DSA", RequiredLevel: 2, Category: types.CategoryDSA},
		},
		DSATopics: []types.DSATopic{
			{ID: "arrays", Name: "Arrays & Strings", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "hashmaps", Name: "Hash Maps", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "recursion", Name: "Recursion", Difficulty: types.DifficultyMedium, Required: true},
			{ID: "trees", Name: "Trees & BST", Difficulty: types.DifficultyMedium, Required: false},
		},
	},
	{
		ID:          "ml",
		Name:        "ML Intern",
		Description: "Machine learning, data science, AI",
		RequiredSkills: []types.SkillRequirement{
			{SkillID: "python", Name: "Python", RequiredLevel: 4, Category: types.CategoryTechnical},
			{SkillID: "ml", Name: "Machine Learning", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "math", Name: "Math/Statistics", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "pandas", Name: "Pandas/NumPy", RequiredLevel: 3, Category: types.CategoryTechnical},
			{SkillID: "sql", Name: "SQL", RequiredLevel: 2, Category: types.CategoryTechnical},
			{SkillID: "dsa", Name: "DSA", RequiredLevel: 2, Category: types.CategoryDSA},
		},
		DSATopics: []types.DSATopic{
			{ID: "arrays", Name: "Arrays & Strings", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "hashmaps", Name: "Hash Maps", Difficulty: types.DifficultyEasy, Required: true},
			{ID: "recursion", Name: "Recursion", Difficulty: types.DifficultyMedium, Required: true},
		},
	},
}
