// Command webbrief fetches a webpage's rendered text and asks one or more
// LLM backends to summarize it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nsandell/webbrief/credentials"
	"github.com/nsandell/webbrief/llm"
	"github.com/nsandell/webbrief/logging"
	"github.com/nsandell/webbrief/render"
	"github.com/nsandell/webbrief/scrape"
	"github.com/nsandell/webbrief/summarizer"
)

const defaultURL = "https://www.anthropic.com"

var providerChoices = []string{"ollama", "openai", "gemini-openai", "gemini-native", "claude", "all"}

var (
	flagProvider string
	flagFetcher  string
	flagTimeout  time.Duration
	flagPlain    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "webbrief [url]",
	Short: "Summarize a webpage using LLM backends",
	Long: `webbrief fetches a webpage's rendered text content and asks one or more
LLM backends to summarize it. Backends without a configured API key are
skipped; a failing backend reports its error without stopping the others.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagProvider, "provider", "p", "all",
		"provider to use: "+strings.Join(providerChoices, ", "))
	rootCmd.Flags().StringVar(&flagFetcher, "fetcher", "chrome",
		"content fetcher: chrome (renders scripts) or http (static HTML)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 60*time.Second,
		"per-fetch timeout")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false,
		"plain text output without panels or markdown styling")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

// validateURL rejects URLs without an http or https scheme before any core
// logic runs.
func validateURL(raw string) error {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return fmt.Errorf("invalid URL %q: must start with http:// or https://", raw)
	}
	return nil
}

// buildProviders constructs every preset in display order. Construction is
// the only place backend defaults are decided.
func buildProviders(creds *credentials.Store) ([]*llm.Provider, error) {
	geminiKey := creds.APIKey("gemini")

	geminiOAI, err := llm.NewGeminiProvider(llm.KindOpenAICompat, geminiKey, "")
	if err != nil {
		return nil, err
	}
	geminiNative, err := llm.NewGeminiProvider(llm.KindGeminiNative, geminiKey, "")
	if err != nil {
		return nil, err
	}

	return []*llm.Provider{
		llm.NewOllamaProvider(""),
		llm.NewOpenAIProvider(creds.APIKey("openai"), ""),
		geminiOAI,
		geminiNative,
		llm.NewClaudeProvider(creds.APIKey("anthropic"), ""),
	}, nil
}

// selectProviders filters the preset list by the --provider flag value.
func selectProviders(choice string, all []*llm.Provider) ([]*llm.Provider, error) {
	switch strings.ToLower(choice) {
	case "all":
		return all, nil
	case "ollama":
		return all[0:1], nil
	case "openai":
		return all[1:2], nil
	case "gemini-openai":
		return all[2:3], nil
	case "gemini-native":
		return all[3:4], nil
	case "claude":
		return all[4:5], nil
	default:
		return nil, fmt.Errorf("unknown provider %q (choose one of: %s)",
			choice, strings.Join(providerChoices, ", "))
	}
}

// newFetcher maps the --fetcher flag to an implementation.
func newFetcher(kind string, timeout time.Duration) (summarizer.Fetcher, error) {
	switch strings.ToLower(kind) {
	case "chrome":
		return scrape.NewChromeFetcher(scrape.WithTimeout(timeout)), nil
	case "http":
		return scrape.NewHTTPFetcher(), nil
	default:
		return nil, fmt.Errorf("unknown fetcher %q (choose chrome or http)", kind)
	}
}

func run(cmd *cobra.Command, args []string) error {
	url := defaultURL
	if len(args) == 1 {
		url = args[0]
	}
	if err := validateURL(url); err != nil {
		return err
	}

	// Explicit configuration loading, once, up front.
	if err := credentials.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	creds, credPath, err := credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load credentials from %s: %w", credPath, err)
	}

	log := logging.New().WithRunID(uuid.NewString()[:8])
	if flagVerbose {
		log.SetLevel(logging.LevelDebug)
	}

	all, err := buildProviders(creds)
	if err != nil {
		return err
	}
	selected, err := selectProviders(flagProvider, all)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(flagFetcher, flagTimeout)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	warnIfDaemonDown(ctx, log, selected)

	var opts []render.Option
	if flagPlain {
		opts = append(opts, render.WithPlain())
	}
	console := render.NewConsole(os.Stdout, opts...)

	fmt.Printf("Summarizing %s with %d provider(s)\n\n", url, len(selected))

	runner := summarizer.New(fetcher, console, log)
	for _, p := range selected {
		runner.Run(ctx, p, url)
	}

	return nil
}

// warnIfDaemonDown gives an early heads-up when the local Ollama backend is
// selected but its daemon is unreachable. The run proceeds either way; the
// provider degrades to its usual error text.
func warnIfDaemonDown(ctx context.Context, log *logging.Logger, selected []*llm.Provider) {
	for _, p := range selected {
		if p.Name != "Ollama" {
			continue
		}
		if !llm.LocalDaemonUp(ctx) {
			log.Warn("local ollama daemon unreachable", map[string]interface{}{
				"endpoint": llm.OllamaLocalURL,
			})
		}
		return
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
