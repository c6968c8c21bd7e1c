// Package llm provides a thin client abstraction over the Gemini API for
// the semantic scoring strategy.
package llm

// ModelTier selects how much model capability a call needs.
type ModelTier string

const (
	// TierLite is for cheap structured calls such as pair scoring.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for calls that need the strongest model.
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard and
// then lite when the tier is unmapped. Returns "" when nothing is
// configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}

// WithModel returns a copy of the config with one tier remapped.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}
