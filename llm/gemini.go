package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiNativeStrategy talks to Gemini through the official Google SDK. The
// backend has no separate system/user channel, so the instructions and
// content are flattened into a single prompt.
type GeminiNativeStrategy struct{}

// NewClient implements the Strategy interface. The returned client is a
// generative-model handle already bound to the provider's model.
func (GeminiNativeStrategy) NewClient(ctx context.Context, p *Provider) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client.GenerativeModel(p.Model), nil
}

// Summarize implements the Strategy interface.
func (GeminiNativeStrategy) Summarize(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) string {
	model, ok := client.(*genai.GenerativeModel)
	if !ok {
		return nativeErrorText(p.Name, errors.New("client was not built by the Gemini native strategy"))
	}

	prompt := flattenPrompt(prompts.System, prompts.UserPrefix, content)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nativeErrorText(p.Name, err)
	}

	text := geminiResponseText(resp)
	if text == "" {
		return nativeErrorText(p.Name, errors.New("response contained no text"))
	}
	return text
}

// geminiResponseText concatenates the text parts of the first candidate.
func geminiResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text
}
