package main

import (
	"os/exec"
	"testing"

	"github.com/novonex/skill-align/internal/catalog"
	"github.com/novonex/skill-align/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHasTopic(t *testing.T) {
	role, ok := catalog.RoleByID("backend")
	require.True(t, ok)

	assert.True(t, roleHasTopic(role, "arrays"))
	assert.False(t, roleHasTopic(role, "bitmask"))
}

func TestDSARoleFor(t *testing.T) {
	old := dsaRole
	dsaRole = ""
	t.Cleanup(func() { dsaRole = old })

	role, err := dsaRoleFor(&types.ProfileDocument{SelectedRole: "frontend"})
	require.NoError(t, err)
	assert.Equal(t, "frontend", role.ID)

	_, err = dsaRoleFor(&types.ProfileDocument{})
	assert.ErrorContains(t, err, "--role is required")

	dsaRole = "astronaut"
	_, err = dsaRoleFor(&types.ProfileDocument{})
	assert.ErrorContains(t, err, "unknown role")
}

func TestDSACommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing topic",
			args:        []string{"dsa", "start", "--profile-id", "fd5fd6f1-7e29-4f3e-9de5-4f8a3f7c9a10"},
			errorString: `required flag(s) "topic" not set`,
		},
		{
			name:        "Missing profile id",
			args:        []string{"dsa", "show"},
			errorString: "--profile-id is required",
		},
		{
			name:        "Invalid profile id",
			args:        []string{"dsa", "complete", "--topic", "arrays", "--profile-id", "not-a-uuid"},
			errorString: "invalid profile id",
		},
		{
			name:        "Missing database URL",
			args:        []string{"dsa", "show", "--profile-id", "fd5fd6f1-7e29-4f3e-9de5-4f8a3f7c9a10"},
			errorString: "a database URL is required",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			// Strip DATABASE_URL so the validation path is deterministic.
			cmd.Env = []string{"PATH=/usr/bin:/bin"}
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
