package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/novonex/skill-align/internal/radar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadarCommand_ProjectsRoleRequirements(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "radar", "--demo", "--role", "backend", "--radius", "100")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)

	var chart radar.Chart
	require.NoError(t, json.Unmarshal(output, &chart))

	assert.Equal(t, float64(100), chart.Radius)
	assert.Len(t, chart.Points, 6) // one spoke per backend requirement
	assert.Len(t, chart.Spokes, 6)
	assert.Equal(t, []float64{25, 50, 75, 100}, chart.GridCircles)
}

func TestRadarCommand_RequiresProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "radar", "--role", "backend")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no profile source")
}
