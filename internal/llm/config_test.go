package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-1.5-flash", "gemini-pro"}, config.Models)
}

func TestWithModels(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModels("custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-flash", config.Models[0])

	assert.Equal(t, []string{"custom-model"}, custom.Models)
}

func TestWithModels_EmptyKeepsDefaults(t *testing.T) {
	config := DefaultConfig()
	same := config.WithModels()

	assert.Equal(t, config.Models, same.Models)
}
