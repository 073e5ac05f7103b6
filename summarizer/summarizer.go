// Package summarizer orchestrates one webpage summarization per provider:
// fetch, summarize, render.
package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/nsandell/webbrief/llm"
	"github.com/nsandell/webbrief/logging"
)

// Fetcher retrieves the cleaned text content of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Renderer displays run outcomes. Implementations must not fail.
type Renderer interface {
	Summary(name, model, markdown string)
	Skip(providerName string)
	FetchError(providerName string, err error)
}

// Runner drives providers through the fetch-summarize-render flow. It holds
// no per-run state; one Runner serves any number of sequential runs.
type Runner struct {
	fetcher  Fetcher
	renderer Renderer
	log      *logging.Logger
}

// New creates a Runner.
func New(fetcher Fetcher, renderer Renderer, log *logging.Logger) *Runner {
	return &Runner{
		fetcher:  fetcher,
		renderer: renderer,
		log:      log,
	}
}

// Run summarizes one URL with one provider. Every outcome ends in exactly
// one renderer call; nothing here returns an error, because no per-provider
// failure may abort a multi-provider run.
func (r *Runner) Run(ctx context.Context, p *llm.Provider, url string) {
	if !p.HasCredential() {
		r.log.ProviderSkipped(p.Name)
		r.renderer.Skip(p.Name)
		return
	}

	r.log.ProviderStart(p.Name, p.Model, url)

	client, err := p.NewClient(ctx)
	if err != nil {
		// Construction failures degrade to visible text like any other
		// backend failure.
		r.renderer.Summary(p.Name, p.Model, clientError(p.Name, err))
		return
	}

	fetchStart := time.Now()
	content, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.log.FetchFailed(url, err)
		r.renderer.FetchError(p.Name, err)
		return
	}
	r.log.FetchComplete(url, len(content), time.Since(fetchStart))

	start := time.Now()
	body := p.Summarize(ctx, client, content, llm.Prompts{
		System:     SystemPrompt,
		UserPrefix: UserPromptPrefix,
	})
	r.log.SummarizeComplete(p.Name, time.Since(start))

	r.renderer.Summary(p.Name, p.Model, body)
}

// clientError mirrors the strategies' degraded error text for failures that
// happen before a strategy gets involved.
func clientError(providerName string, err error) string {
	return fmt.Sprintf("An error occurred with %s: %v", providerName, err)
}
