package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestStrategyKind_Valid(t *testing.T) {
	tests := []struct {
		kind StrategyKind
		want bool
	}{
		{KindOpenAICompat, true},
		{KindGeminiNative, true},
		{KindClaudeNative, true},
		{StrategyKind("grpc"), false},
		{StrategyKind(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Valid(); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestFlattenPrompt(t *testing.T) {
	got := flattenPrompt("be helpful", "summarize this", "page text")

	if got != "be helpful\n\nsummarize this\n\npage text" {
		t.Errorf("unexpected flattened prompt: %q", got)
	}

	// Sections must appear in order.
	sys := strings.Index(got, "be helpful")
	prefix := strings.Index(got, "summarize this")
	content := strings.Index(got, "page text")
	if !(sys < prefix && prefix < content) {
		t.Errorf("sections out of order: %d %d %d", sys, prefix, content)
	}
}

func TestErrorText(t *testing.T) {
	got := errorText("OpenAI", errors.New("connection refused"))
	if got != "An error occurred with OpenAI: connection refused" {
		t.Errorf("unexpected error text: %q", got)
	}
}

func TestNativeErrorText(t *testing.T) {
	got := nativeErrorText("Google Gemini (Native)", errors.New("quota"))
	if !strings.Contains(got, "Google Gemini (Native)") {
		t.Errorf("error text does not name the provider: %q", got)
	}
	if !strings.Contains(got, "(Native)") {
		t.Errorf("error text is missing the native marker: %q", got)
	}
}
