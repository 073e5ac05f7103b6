// Package render displays summarization outcomes as titled console panels.
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 100

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	summaryPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)

	errorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)

// Console renders panels to a writer. It is purely presentational: every
// method accepts strings and never fails, so rendering glitches can not
// disturb a run.
type Console struct {
	out   io.Writer
	width int
	plain bool

	mu sync.Mutex
	md *glamour.TermRenderer
}

// Option configures a Console.
type Option func(*Console)

// WithWidth sets the panel and word-wrap width.
func WithWidth(w int) Option {
	return func(c *Console) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithPlain disables markdown rendering and borders, emitting bare text.
// Useful for piped output and tests.
func WithPlain() Option {
	return func(c *Console) { c.plain = true }
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{out: out, width: defaultWidth}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Summary renders a successful (or degraded-to-error-text) summarization
// outcome, titled with the provider's name and model.
func (c *Console) Summary(name, model, markdown string) {
	title := fmt.Sprintf("%s (%s)", name, model)
	c.panel(summaryPanel, title, c.renderMarkdown(markdown))
}

// Skip reports that a provider was skipped for want of a credential.
func (c *Console) Skip(providerName string) {
	body := fmt.Sprintf("API key for %s not found. Skipping.", providerName)
	c.panel(errorPanel, "Error", body)
}

// FetchError reports a content-fetch failure; the provider's summarization
// was not attempted.
func (c *Console) FetchError(providerName string, err error) {
	body := fmt.Sprintf("Could not fetch content for %s: %v", providerName, err)
	c.panel(errorPanel, "Scraping Error", body)
}

// panel writes a titled, bordered block.
func (c *Console) panel(style lipgloss.Style, title, body string) {
	if c.plain {
		fmt.Fprintf(c.out, "== %s ==\n%s\n\n", title, strings.TrimRight(body, "\n"))
		return
	}

	fmt.Fprintln(c.out, titleStyle.Render(title))
	fmt.Fprintln(c.out, style.Width(c.width).Render(strings.TrimRight(body, "\n")))
	fmt.Fprintln(c.out)
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when the renderer is unavailable.
func (c *Console) renderMarkdown(text string) string {
	if c.plain {
		return text
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.md == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(c.width-4),
		)
		if err != nil {
			return text
		}
		c.md = r
	}

	out, err := c.md.Render(text)
	if err != nil {
		return text
	}
	return out
}
