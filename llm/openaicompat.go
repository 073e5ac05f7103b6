package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAICompatStrategy talks to any endpoint speaking the OpenAI
// chat-completions shape: OpenAI itself, local Ollama, or Gemini through its
// compatibility layer. The official SDK is used; a provider's BaseURL
// redirects it away from api.openai.com when set.
type OpenAICompatStrategy struct{}

// NewClient implements the Strategy interface.
func (OpenAICompatStrategy) NewClient(ctx context.Context, p *Provider) (Client, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(p.APIKey),
	}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}

	client := openai.NewClient(opts...)
	return &client, nil
}

// Summarize implements the Strategy interface. It sends one request with a
// system message and a user message (prefix + content, no separator) and
// returns the first choice's text.
func (OpenAICompatStrategy) Summarize(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) string {
	c, ok := client.(*openai.Client)
	if !ok {
		return errorText(p.Name, errors.New("client was not built by the OpenAI-compatible strategy"))
	}

	resp, err := c.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompts.System),
			openai.UserMessage(prompts.UserPrefix + content),
		},
	})
	if err != nil {
		return errorText(p.Name, err)
	}
	if len(resp.Choices) == 0 {
		return errorText(p.Name, errors.New("response contained no choices"))
	}

	return resp.Choices[0].Message.Content
}
