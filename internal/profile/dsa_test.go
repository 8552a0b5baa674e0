package profile

import (
	"testing"

	"github.com/novonex/skill-align/internal/types"
	"github.com/stretchr/testify/assert"
)

func assertDisjoint(t *testing.T, progress types.DSAProgress) {
	t.Helper()
	seen := make(map[string]int)
	for _, id := range progress.Completed {
		seen[id]++
	}
	for _, id := range progress.InProgress {
		seen[id]++
	}
	for _, id := range progress.NotStarted {
		seen[id]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "topic %s appears %d times", id, count)
	}
}

func TestCompleteDSATopic_MovesFromInProgress(t *testing.T) {
	progress := types.DSAProgress{
		Completed:  []string{"arrays"},
		InProgress: []string{"hashmaps"},
		NotStarted: []string{"trees"},
	}

	next := CompleteDSATopic(progress, "hashmaps")
	assert.ElementsMatch(t, []string{"arrays", "hashmaps"}, next.Completed)
	assert.Empty(t, next.InProgress)
	assert.Equal(t, []string{"trees"}, next.NotStarted)
	assertDisjoint(t, next)

	// Input snapshot is untouched.
	assert.Equal(t, []string{"hashmaps"}, progress.InProgress)
}

func TestStartDSATopic_MovesFromNotStarted(t *testing.T) {
	progress := types.DSAProgress{
		NotStarted: []string{"trees", "graphs"},
	}

	next := StartDSATopic(progress, "trees")
	assert.Equal(t, []string{"trees"}, next.InProgress)
	assert.Equal(t, []string{"graphs"}, next.NotStarted)
	assertDisjoint(t, next)
}

func TestCompleteDSATopic_Idempotent(t *testing.T) {
	progress := types.DSAProgress{Completed: []string{"arrays"}}

	next := CompleteDSATopic(progress, "arrays")
	assert.Equal(t, []string{"arrays"}, next.Completed)
	assertDisjoint(t, next)
}

func TestNormalizeDSAProgress_ResolvesOverlap(t *testing.T) {
	snapshot := types.DSAProgress{
		Completed:  []string{"arrays", "arrays"},
		InProgress: []string{"arrays", "hashmaps"},
		NotStarted: []string{"hashmaps", "trees"},
	}

	normalized := NormalizeDSAProgress(snapshot)
	assert.Equal(t, []string{"arrays"}, normalized.Completed)
	assert.Equal(t, []string{"hashmaps"}, normalized.InProgress)
	assert.Equal(t, []string{"trees"}, normalized.NotStarted)
	assertDisjoint(t, normalized)
}
