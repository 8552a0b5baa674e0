package profile

import (
	"testing"

	"github.com/novonex/skill-align/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "nodejs", Canonicalize("Node.js"))
	assert.Equal(t, "c", Canonicalize("C++"))
	assert.Equal(t, "sql databases", Canonicalize("  SQL/Databases "))
	assert.Equal(t, "git github", Canonicalize("Git & GitHub"))
	assert.Equal(t, "ci cd pipelines", Canonicalize("CI/CD Pipelines"))
	assert.Equal(t, "", Canonicalize("  "))
}

func TestResolve_WholeWordAcrossSeparators(t *testing.T) {
	r := NewResolver([]types.UserSkill{
		{SkillID: "databases", Name: "SQL/Databases", Level: 3},
	}, nil)
	r.Policy = MatchWholeWord

	assert.Equal(t, types.SkillLevel(3), r.Resolve("SQL", "sql"))
}

func TestResolve_ExactIDMatch(t *testing.T) {
	r := NewResolver([]types.UserSkill{
		{SkillID: "python", Name: "Python", Level: 3},
	}, nil)

	assert.Equal(t, types.SkillLevel(3), r.Resolve("Python", "python"))
}

func TestResolve_NameMatchCaseInsensitive(t *testing.T) {
	r := NewResolver([]types.UserSkill{
		{SkillID: "js", Name: "JavaScript", Level: 2},
	}, nil)

	assert.Equal(t, types.SkillLevel(2), r.Resolve("javascript", "javascript"))
}

func TestResolve_FallsBackToVault(t *testing.T) {
	domains := []types.SkillDomain{
		{
			ID: "sde",
			Skills: []types.SkillItem{
				{ID: "react", Name: "React", Level: 3},
			},
		},
	}
	r := NewResolver(nil, domains)

	assert.Equal(t, types.SkillLevel(3), r.Resolve("React", "react"))
}

func TestResolve_VaultOverridesZeroFlatLevel(t *testing.T) {
	flat := []types.UserSkill{
		{SkillID: "sql", Name: "SQL", Level: 0},
	}
	domains := []types.SkillDomain{
		{
			ID: "sde",
			Skills: []types.SkillItem{
				{ID: "sql", Name: "SQL", Level: 2},
			},
		},
	}
	r := NewResolver(flat, domains)

	assert.Equal(t, types.SkillLevel(2), r.Resolve("SQL", "sql"))
}

func TestResolve_VaultTakesMaxAcrossDomains(t *testing.T) {
	domains := []types.SkillDomain{
		{ID: "sde", Skills: []types.SkillItem{{ID: "sql", Name: "SQL", Level: 1}}},
		{ID: "datascience", Skills: []types.SkillItem{{ID: "sql-analytics", Name: "SQL for Analytics", Level: 3}}},
	}
	r := NewResolver(nil, domains)

	// "SQL" is contained in "SQL for Analytics", so the containment policy
	// picks up both and keeps the maximum.
	assert.Equal(t, types.SkillLevel(3), r.Resolve("SQL", "sql"))
}

func TestResolve_UnknownSkillIsZero(t *testing.T) {
	r := NewResolver([]types.UserSkill{
		{SkillID: "python", Name: "Python", Level: 4},
	}, nil)

	assert.Equal(t, types.LevelNone, r.Resolve("Rust", "rust"))
}

func TestResolve_ContainmentFalsePositiveIsDocumentedBehavior(t *testing.T) {
	// "Java" is a substring of "JavaScript": the containment policy matches
	// it. The stricter policies exist for callers that want to avoid this.
	flat := []types.UserSkill{
		{SkillID: "javascript", Name: "JavaScript", Level: 3},
	}

	loose := NewResolver(flat, nil)
	assert.Equal(t, types.SkillLevel(3), loose.Resolve("Java", "java"))

	strict := &Resolver{Skills: flat, Policy: MatchExact}
	assert.Equal(t, types.LevelNone, strict.Resolve("Java", "java"))

	word := &Resolver{Skills: flat, Policy: MatchWholeWord}
	assert.Equal(t, types.LevelNone, word.Resolve("Java", "java"))
}

func TestResolve_WholeWordPolicy(t *testing.T) {
	flat := []types.UserSkill{
		{SkillID: "sql", Name: "SQL", Level: 2},
	}
	r := &Resolver{Skills: flat, Policy: MatchWholeWord}

	assert.Equal(t, types.SkillLevel(2), r.Resolve("SQL for Analytics", "sql-analytics"))
}

func TestResolveRequirements(t *testing.T) {
	r := NewResolver([]types.UserSkill{
		{SkillID: "python", Name: "Python", Level: 2},
	}, nil)

	reqs := []types.SkillRequirement{
		{SkillID: "python", Name: "Python", RequiredLevel: 3, Category: types.CategoryTechnical},
		{SkillID: "linux", Name: "Linux/CLI", RequiredLevel: 2, Category: types.CategoryTools},
	}

	resolved := r.ResolveRequirements(reqs)
	assert.Len(t, resolved, 2)
	assert.Equal(t, types.SkillLevel(2), resolved[0].Level)
	assert.Equal(t, types.LevelNone, resolved[1].Level)
	assert.Equal(t, types.CategoryTools, resolved[1].Category)
}
