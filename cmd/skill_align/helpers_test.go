package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/novonex/skill-align/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadProfileFile(t *testing.T) {
	path := writeTempProfile(t, `{
		"userSkills": [
			{"skillId": "sql", "name": "SQL", "level": 2, "category": "technical"}
		],
		"selectedRole": "backend"
	}`)

	doc, err := readProfileFile(path)
	require.NoError(t, err)
	require.Len(t, doc.UserSkills, 1)
	assert.Equal(t, "sql", doc.UserSkills[0].SkillID)
	assert.Equal(t, "backend", doc.SelectedRole)
}

func TestReadProfileFile_SchemaViolation(t *testing.T) {
	// Valid JSON that fails schema validation must be rejected before decode.
	path := writeTempProfile(t, `{"userSkills": "not-an-array"}`)

	_, err := readProfileFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile file")
}

func TestLoadProfileDocument_FromFile(t *testing.T) {
	path := writeTempProfile(t, `{
		"userSkills": [
			{"skillId": "python", "name": "Python", "level": 3, "category": "technical"}
		]
	}`)

	doc, err := loadProfileDocument(context.Background(), config.Config{}, path, false)
	require.NoError(t, err)
	require.Len(t, doc.UserSkills, 1)
	assert.Equal(t, "python", doc.UserSkills[0].SkillID)
}

func TestLoadProfileDocument_RejectsInvalidFile(t *testing.T) {
	path := writeTempProfile(t, `{
		"userSkills": [
			{"skillId": "python", "name": "Python", "level": 99, "category": "technical"}
		]
	}`)

	_, err := loadProfileDocument(context.Background(), config.Config{}, path, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile file")
}

func TestLoadProfileDocument_Demo(t *testing.T) {
	doc, err := loadProfileDocument(context.Background(), config.Config{}, "", true)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.UserSkills)
}

func TestLoadProfileDocument_NoSource(t *testing.T) {
	_, err := loadProfileDocument(context.Background(), config.Config{}, "", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no profile source")
}

func TestLoadProfileDocument_ProfileIDNeedsDatabase(t *testing.T) {
	cfg := config.Config{ProfileID: "0d2f6f0e-9a1b-4c6d-8e2f-1a2b3c4d5e6f"}
	_, err := loadProfileDocument(context.Background(), cfg, "", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database URL")
}

func TestRequirementsForRole(t *testing.T) {
	role, reqs, err := requirementsForRole("backend")
	require.NoError(t, err)
	assert.Equal(t, "backend", role.ID)
	assert.Len(t, reqs, 6)

	_, _, err = requirementsForRole("astronaut")
	assert.Error(t, err)

	_, _, err = requirementsForRole("")
	assert.Error(t, err)
}
