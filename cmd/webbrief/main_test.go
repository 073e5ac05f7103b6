package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsandell/webbrief/credentials"
	"github.com/nsandell/webbrief/llm"
	"github.com/nsandell/webbrief/scrape"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://www.python.org", false},
		{"http", "http://localhost:8080/page", false},
		{"no scheme", "www.python.org", true},
		{"ftp scheme", "ftp://example.com", true},
		{"empty", "", true},
		{"scheme only prefix check", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// envOnlyStore builds a store backed solely by known env values, so tests
// never depend on credential files on the machine running them.
func envOnlyStore(t *testing.T) *credentials.Store {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("ANTHROPIC_API_KEY", "an-test")
	return &credentials.Store{}
}

func TestBuildProviders(t *testing.T) {
	all, err := buildProviders(envOnlyStore(t))
	require.NoError(t, err)
	require.Len(t, all, 5)

	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Ollama",
		"OpenAI",
		"Google Gemini (OpenAI API)",
		"Google Gemini (Native)",
		"Claude",
	}, names)

	// Both Gemini presets share one credential family.
	assert.Equal(t, "gm-test", all[2].APIKey)
	assert.Equal(t, "gm-test", all[3].APIKey)
	assert.Equal(t, "sk-test", all[1].APIKey)
	assert.Equal(t, "an-test", all[4].APIKey)
}

func TestSelectProviders(t *testing.T) {
	all, err := buildProviders(envOnlyStore(t))
	require.NoError(t, err)

	tests := []struct {
		choice    string
		wantNames []string
	}{
		{"all", []string{"Ollama", "OpenAI", "Google Gemini (OpenAI API)", "Google Gemini (Native)", "Claude"}},
		{"ollama", []string{"Ollama"}},
		{"openai", []string{"OpenAI"}},
		{"gemini-openai", []string{"Google Gemini (OpenAI API)"}},
		{"gemini-native", []string{"Google Gemini (Native)"}},
		{"claude", []string{"Claude"}},
		{"OLLAMA", []string{"Ollama"}},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			got, err := selectProviders(tt.choice, all)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestSelectProviders_Unknown(t *testing.T) {
	all, err := buildProviders(envOnlyStore(t))
	require.NoError(t, err)

	_, err = selectProviders("mistral", all)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mistral")
	assert.Contains(t, err.Error(), "gemini-native")
}

func TestNewFetcher(t *testing.T) {
	f, err := newFetcher("chrome", 0)
	require.NoError(t, err)
	assert.IsType(t, &scrape.ChromeFetcher{}, f)

	f, err = newFetcher("http", 0)
	require.NoError(t, err)
	assert.IsType(t, &scrape.HTTPFetcher{}, f)

	_, err = newFetcher("curl", 0)
	assert.Error(t, err)
}

func TestProviderStrategies(t *testing.T) {
	all, err := buildProviders(envOnlyStore(t))
	require.NoError(t, err)

	assert.IsType(t, llm.OpenAICompatStrategy{}, all[0].Strategy)
	assert.IsType(t, llm.OpenAICompatStrategy{}, all[2].Strategy)
	assert.IsType(t, llm.GeminiNativeStrategy{}, all[3].Strategy)
	assert.IsType(t, llm.ClaudeNativeStrategy{}, all[4].Strategy)
}
