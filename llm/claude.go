package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claudeMaxTokens bounds the summary length. The Messages API requires an
// explicit budget on every request.
const claudeMaxTokens = 1024

// ClaudeNativeStrategy talks to Anthropic through the official SDK. Unlike
// the Gemini native path, the Messages API does carry a dedicated system
// channel, so the system instruction travels out-of-band of the user turn.
type ClaudeNativeStrategy struct{}

// NewClient implements the Strategy interface.
func (ClaudeNativeStrategy) NewClient(ctx context.Context, p *Provider) (Client, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(p.APIKey),
	}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &client, nil
}

// Summarize implements the Strategy interface.
func (ClaudeNativeStrategy) Summarize(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) string {
	c, ok := client.(*anthropic.Client)
	if !ok {
		return nativeErrorText(p.Name, errors.New("client was not built by the Claude native strategy"))
	}

	resp, err := c.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.Model),
		MaxTokens: claudeMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: prompts.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompts.UserPrefix + content)),
		},
	})
	if err != nil {
		return nativeErrorText(p.Name, err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nativeErrorText(p.Name, errors.New("response contained no text"))
	}
	return text
}
