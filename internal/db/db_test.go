package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionConstants(t *testing.T) {
	sections := []string{
		SectionSkills,
		SectionDomains,
		SectionDSA,
		SectionSelections,
	}

	seen := make(map[string]bool)
	for _, section := range sections {
		assert.NotEmpty(t, section, "section constant should not be empty")
		assert.False(t, seen[section], "section constants should be distinct")
		seen[section] = true
	}
}

func TestAnalysisKey(t *testing.T) {
	assert.Equal(t, "acme-corp", analysisKey("Acme Corp"))
	assert.Equal(t, analysisKey("ACME corp"), analysisKey("acme   Corp!"))
	assert.Equal(t, "", analysisKey(""))
}
