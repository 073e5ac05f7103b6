// Package llm provides LLM provider configuration and the communication
// strategies that drive each backend family.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client is an opaque backend handle. A strategy's NewClient produces it and
// only that same strategy's Summarize knows its concrete type.
type Client any

// Prompts holds the two fixed instruction strings for one summarization
// exchange: a system-level instruction and a prefix for the user message.
type Prompts struct {
	System     string
	UserPrefix string
}

// Strategy is the backend-family-specific half of a provider: how to build a
// network client and how to phrase and parse one summarization exchange.
// Strategies hold no per-provider state; all configuration comes from the
// Provider passed on each call.
type Strategy interface {
	// NewClient builds a network client configured from the provider's
	// credential and optional base URL.
	NewClient(ctx context.Context, p *Provider) (Client, error)

	// Summarize runs a single summarization exchange. Failures are folded
	// into the returned text rather than surfaced as errors, so that one
	// broken backend never aborts a multi-provider run.
	Summarize(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) string
}

// StrategyKind identifies a strategy family explicitly, so that construction
// code can branch on a tag instead of inspecting concrete types.
type StrategyKind string

const (
	KindOpenAICompat StrategyKind = "openai-compat"
	KindGeminiNative StrategyKind = "gemini-native"
	KindClaudeNative StrategyKind = "claude-native"
)

// Valid reports whether the kind names a known strategy family.
func (k StrategyKind) Valid() bool {
	switch k {
	case KindOpenAICompat, KindGeminiNative, KindClaudeNative:
		return true
	}
	return false
}

// errorText formats a backend failure as display text naming the provider.
func errorText(providerName string, err error) string {
	return fmt.Sprintf("An error occurred with %s: %v", providerName, err)
}

// nativeErrorText is errorText for vendor-native code paths. The marker
// distinguishes the native path from the OpenAI-compatible one when the same
// backend is reachable both ways.
func nativeErrorText(providerName string, err error) string {
	return fmt.Sprintf("An error occurred with %s (Native): %v", providerName, err)
}

// flattenPrompt joins prompt sections into a single blob for backends that
// have no separate system/user channel.
func flattenPrompt(sections ...string) string {
	return strings.Join(sections, "\n\n")
}
