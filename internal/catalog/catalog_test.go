package catalog

import (
	"testing"

	"github.com/novonex/skill-align/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDomains_SeededAtZero(t *testing.T) {
	domains := DefaultDomains()
	require.Len(t, domains, 8)

	for _, domain := range domains {
		assert.NotEmpty(t, domain.ID)
		assert.NotEmpty(t, domain.Skills, "domain %s has no skills", domain.ID)
		seen := make(map[string]bool)
		for _, skill := range domain.Skills {
			assert.Equal(t, types.LevelNone, skill.Level)
			assert.False(t, seen[skill.ID], "duplicate skill id %s in domain %s", skill.ID, domain.ID)
			seen[skill.ID] = true
		}
	}
}

func TestDefaultDomains_ReturnsCopy(t *testing.T) {
	first := DefaultDomains()
	first[0].Skills[0].Level = 4

	second := DefaultDomains()
	assert.Equal(t, types.LevelNone, second[0].Skills[0].Level)
}

func TestRoles_RequiredLevelsInRange(t *testing.T) {
	for _, role := range Roles() {
		require.NotEmpty(t, role.RequiredSkills, "role %s has no requirements", role.ID)
		for _, req := range role.RequiredSkills {
			assert.GreaterOrEqual(t, int(req.RequiredLevel), 1)
			assert.LessOrEqual(t, int(req.RequiredLevel), 4)
		}
	}
}

func TestRoleByID(t *testing.T) {
	role, ok := RoleByID("backend")
	require.True(t, ok)
	assert.Equal(t, "Backend Intern", role.Name)
	assert.Len(t, role.RequiredSkills, 6)

	_, ok = RoleByID("designer")
	assert.False(t, ok)
}

func TestActionsForRole_FiltersToRequiredSkills(t *testing.T) {
	role, ok := RoleByID("backend")
	require.True(t, ok)

	relevant := ActionsForRole(role)
	require.NotEmpty(t, relevant)
	for _, action := range relevant {
		assert.NotEqual(t, "react", action.SkillID,
			"react is not required by the backend role")
		assert.Positive(t, action.LevelIncrease)
	}

	// Backend requires dsa, apis, sql, git, python: five of the six catalog
	// actions apply; only the react one is filtered out.
	assert.Len(t, relevant, 5)
}

func TestDemoProfile_DSAPartitionDisjoint(t *testing.T) {
	demo := DemoProfile()
	seen := make(map[string]int)
	for _, id := range demo.DSAProgress.Completed {
		seen[id]++
	}
	for _, id := range demo.DSAProgress.InProgress {
		seen[id]++
	}
	for _, id := range demo.DSAProgress.NotStarted {
		seen[id]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "topic %s appears in more than one set", id)
	}
}
