package llm

// Config holds the model fallback chain for analysis generation. Models
// are tried in order; the first one that answers wins.
type Config struct {
	Models []string
}

// DefaultConfig returns the default Gemini fallback chain
func DefaultConfig() *Config {
	return &Config{
		Models: []string{
			"gemini-2.5-flash",
			"gemini-1.5-flash",
			"gemini-pro",
		},
	}
}

// WithModels returns a new Config using the given chain. An empty chain
// keeps the defaults.
func (c *Config) WithModels(models ...string) *Config {
	if len(models) == 0 {
		return c
	}
	out := &Config{Models: make([]string, len(models))}
	copy(out.Models, models)
	return out
}
