package llm

import (
	"fmt"
)

// Default models per backend family.
const (
	DefaultOllamaModel     = "llama3.2:latest"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultGeminiModel     = "gemini-2.5-pro"
	DefaultGeminiOAIModel  = "gemini-2.5-flash"
	DefaultClaudeModel     = "claude-3-5-haiku-latest"
)

// Backend endpoints.
const (
	// OllamaLocalURL is the loopback OpenAI-compatible endpoint exposed by
	// a local Ollama daemon.
	OllamaLocalURL = "http://localhost:11434/v1"

	// GeminiCompatURL is Gemini's OpenAI compatibility layer.
	GeminiCompatURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// ollamaPlaceholderKey satisfies OpenAI-compatible clients that insist on a
// bearer token; the local daemon ignores it.
const ollamaPlaceholderKey = "ollama"

// NewOllamaProvider returns a provider for a locally hosted model. The
// daemon enforces no credential, so the key is a fixed placeholder and the
// provider is never skipped for a missing credential.
func NewOllamaProvider(model string) *Provider {
	if model == "" {
		model = DefaultOllamaModel
	}
	return &Provider{
		Name:     "Ollama",
		Model:    model,
		APIKey:   ollamaPlaceholderKey,
		BaseURL:  OllamaLocalURL,
		Strategy: OpenAICompatStrategy{},
	}
}

// NewOpenAIProvider returns a provider for the hosted OpenAI API. An empty
// apiKey is valid and marks the provider as skippable.
func NewOpenAIProvider(apiKey, model string) *Provider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &Provider{
		Name:     "OpenAI",
		Model:    model,
		APIKey:   apiKey,
		Strategy: OpenAICompatStrategy{},
	}
}

// NewGeminiProvider returns a provider for Google Gemini, reachable through
// either its native SDK or its OpenAI compatibility layer. The kind tag
// selects the strategy and with it the display name, default model, and
// endpoint; an unsupported kind is a construction-time error.
func NewGeminiProvider(kind StrategyKind, apiKey, model string) (*Provider, error) {
	switch kind {
	case KindGeminiNative:
		if model == "" {
			model = DefaultGeminiModel
		}
		return &Provider{
			Name:     "Google Gemini (Native)",
			Model:    model,
			APIKey:   apiKey,
			Strategy: GeminiNativeStrategy{},
		}, nil

	case KindOpenAICompat:
		if model == "" {
			model = DefaultGeminiOAIModel
		}
		return &Provider{
			Name:     "Google Gemini (OpenAI API)",
			Model:    model,
			APIKey:   apiKey,
			BaseURL:  GeminiCompatURL,
			Strategy: OpenAICompatStrategy{},
		}, nil

	default:
		return nil, fmt.Errorf("gemini does not support strategy kind %q", kind)
	}
}

// NewClaudeProvider returns a provider for the Anthropic API.
func NewClaudeProvider(apiKey, model string) *Provider {
	if model == "" {
		model = DefaultClaudeModel
	}
	return &Provider{
		Name:     "Claude",
		Model:    model,
		APIKey:   apiKey,
		Strategy: ClaudeNativeStrategy{},
	}
}
