// Package llm provides the client abstraction over generative model
// providers. Grading and question generation never probe for a provider at
// runtime; callers select an implementation by configuration.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: question generation, short extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: answer analysis.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning tasks.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents a model provider.
type Provider string

// Provider constants define supported providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and per-tier model selection.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back through
// standard then lite when the tier is unconfigured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
