// Package llm provides the generative model client used to draft job records.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for cheap, short generations
	TierLite ModelTier = "lite"
	// TierStandard is for structured job drafting
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Config holds the model configuration for drafting.
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
	// JSONOutput asks the provider for an application/json reply.
	JSONOutput bool
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-1.5-flash-8b",
			TierStandard: "gemini-1.5-flash",
		},
		Temperature:     0.1,
		MaxOutputTokens: 4096,
		JSONOutput:      true,
	}
}

// GetModel returns the model name for a given tier, falling back to the standard tier.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}

// WithModel returns a copy of c with model assigned to tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := *c
	next.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return &next
}
