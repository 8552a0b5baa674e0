package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileSetLevelCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing profile id",
			args:        []string{"profile", "set-level", "--domain", "sde", "--skill", "python", "--level", "3"},
			errorString: "--profile-id is required",
		},
		{
			name: "Level out of range",
			args: []string{
				"profile", "set-level", "--domain", "sde", "--skill", "python", "--level", "9",
				"--profile-id", "fd5fd6f1-7e29-4f3e-9de5-4f8a3f7c9a10",
			},
			errorString: "level must be between 0 and 4",
		},
		{
			name: "Missing database URL",
			args: []string{
				"profile", "set-level", "--domain", "sde", "--skill", "python", "--level", "3",
				"--profile-id", "fd5fd6f1-7e29-4f3e-9de5-4f8a3f7c9a10",
			},
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
