package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateCommand_NoActionsIsZeroDelta(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "simulate", "--demo", "--role", "backend", "--json")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), `"delta": 0`)
}

func TestSimulateCommand_ActionRaisesProjectedScore(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "simulate", "--demo", "--role", "backend", "--actions", "dsa-problems", "--json")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), `"current": 44`)
	assert.NotContains(t, string(output), `"delta": 0`)
}

func TestSimulateCommand_RequiresRole(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "simulate", "--demo")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--role is required")
}
