package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing target",
			args:        []string{"analyze"},
			errorString: "either --company and --role",
		},
		{
			name:        "Company without role",
			args:        []string{"analyze", "--company", "Stripe"},
			errorString: "either --company and --role",
		},
		{
			name:        "Company and posting URL are exclusive",
			args:        []string{"analyze", "--company", "Stripe", "--role", "Backend Engineer", "--posting-url", "https://example.com/job"},
			errorString: "mutually exclusive",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			// Strip service credentials so validation is deterministic.
			cmd.Env = []string{"PATH=/usr/bin:/bin"}
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestAnalyzeCommand_MissingAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze", "--company", "Stripe", "--role", "Backend Engineer")
	cmd.Env = []string{"PATH=/usr/bin:/bin"}
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "GEMINI_API_KEY")
}
