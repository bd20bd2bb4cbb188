package domain

import "fmt"

// ProjectConfig is the optional .pipeshift.yaml configuration placed next to
// the pipeline definition. Everything has a working default; the file only
// overrides behavior at the edges — the core engine itself is not
// configurable at runtime.
type ProjectConfig struct {
	// ProtectedTokens extends the set of substrings that mark a credential
	// as production-scoped (protected variable in the target platform).
	ProtectedTokens []string `yaml:"protected_tokens,omitempty"`

	Lint    ServiceConfig `yaml:"lint,omitempty"`
	Advisor ServiceConfig `yaml:"advisor,omitempty"`

	// MaxInputBytes caps the size of pipeline text handed to the engine.
	MaxInputBytes int `yaml:"max_input_bytes,omitempty"`
}

// ServiceConfig points at one external collaborator.
type ServiceConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Token    string `yaml:"token,omitempty"`
}

// DefaultMaxInputBytes bounds scanner/extractor input. The core itself
// imposes no size cap; callers enforce this bound before handing text over.
const DefaultMaxInputBytes = 4 << 20 // 4 MiB

// DefaultProtectedTokens are the built-in production indicators.
var DefaultProtectedTokens = []string{"prod", "production", "deploy", "release", "live"}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

// Validate catches obviously broken user input before it is merged.
func (c ProjectConfig) Validate() error {
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must be >= 0, got %d", c.MaxInputBytes)
	}
	for _, t := range c.ProtectedTokens {
		if t == "" {
			return fmt.Errorf("protected_tokens must not contain empty strings")
		}
	}
	return nil
}

// EffectiveMaxInputBytes resolves the input cap, falling back to the default.
func (c ProjectConfig) EffectiveMaxInputBytes() int {
	if c.MaxInputBytes > 0 {
		return c.MaxInputBytes
	}
	return DefaultMaxInputBytes
}

// EffectiveProtectedTokens merges user tokens with the built-in set.
func (c ProjectConfig) EffectiveProtectedTokens() []string {
	if len(c.ProtectedTokens) == 0 {
		return DefaultProtectedTokens
	}
	merged := make([]string, 0, len(DefaultProtectedTokens)+len(c.ProtectedTokens))
	merged = append(merged, DefaultProtectedTokens...)
	merged = append(merged, c.ProtectedTokens...)
	return merged
}
