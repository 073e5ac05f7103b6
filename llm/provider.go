package llm

import (
	"context"
)

// Provider is a named, configured backend instance. It is immutable after
// construction and holds no per-call state, so a single value is safe to
// reuse across sequential runs.
type Provider struct {
	// Name is the display label. It is human-facing only and never used
	// for dispatch.
	Name string

	// Model is the backend-specific model identifier.
	Model string

	// APIKey is the credential for the backend. Empty means "no credential
	// configured", which is a normal state: callers skip such providers
	// before any network activity. Local backends use a placeholder value.
	APIKey string

	// BaseURL overrides the strategy's default endpoint when non-empty.
	BaseURL string

	// Strategy is the bound communication strategy. The provider owns
	// exactly one and delegates all backend interaction to it.
	Strategy Strategy
}

// HasCredential reports whether a credential is configured.
func (p *Provider) HasCredential() bool {
	return p.APIKey != ""
}

// NewClient builds a client for this provider via its strategy.
func (p *Provider) NewClient(ctx context.Context) (Client, error) {
	return p.Strategy.NewClient(ctx, p)
}

// Summarize runs one summarization exchange via the bound strategy. The
// result is always display text: either the summary or an embedded error
// description naming this provider.
func (p *Provider) Summarize(ctx context.Context, client Client, content string, prompts Prompts) string {
	return p.Strategy.Summarize(ctx, p, client, content, prompts)
}

// --- Mock Strategy for Testing ---

// MockStrategy is a recording Strategy for tests.
type MockStrategy struct {
	response  string
	clientErr error

	newClientCalls int
	summarizeCalls int

	lastContent string
	lastPrompts Prompts

	// SummarizeFunc can be overridden for custom behavior.
	SummarizeFunc func(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) string
}

// NewMockStrategy creates a new mock strategy.
func NewMockStrategy() *MockStrategy {
	return &MockStrategy{}
}

// SetResponse sets the text Summarize returns.
func (m *MockStrategy) SetResponse(text string) {
	m.response = text
}

// SetClientError makes NewClient fail.
func (m *MockStrategy) SetClientError(err error) {
	m.clientErr = err
}

// NewClientCalls returns the number of NewClient calls made.
func (m *MockStrategy) NewClientCalls() int {
	return m.newClientCalls
}

// SummarizeCalls returns the number of Summarize calls made.
func (m *MockStrategy) SummarizeCalls() int {
	return m.summarizeCalls
}

// LastContent returns the content passed to the last Summarize call.
func (m *MockStrategy) LastContent() string {
	return m.lastContent
}

// LastPrompts returns the prompts passed to the last Summarize call.
func (m *MockStrategy) LastPrompts() Prompts {
	return m.lastPrompts
}

// NewClient implements the Strategy interface.
func (m *MockStrategy) NewClient(ctx context.Context, p *Provider) (Client, error) {
	m.newClientCalls++
	if m.clientErr != nil {
		return nil, m.clientErr
	}
	return struct{}{}, nil
}

// Summarize implements the Strategy interface.
func (m *MockStrategy) Summarize(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) string {
	m.summarizeCalls++
	m.lastContent = content
	m.lastPrompts = prompts

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, p, client, content, prompts)
	}
	return m.response
}
