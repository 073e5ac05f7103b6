// Package scrape fetches the rendered text content of webpages.
package scrape

import (
	"context"
	"strings"
)

// maxContentBytes caps extracted text so a pathological page cannot blow up
// the prompt sent to a backend (100KB).
const maxContentBytes = 100 * 1024

// Fetcher retrieves the cleaned text content of a page. Failures are
// reported as ordinary errors; callers decide how to present them.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// collapseWhitespace trims every line, splits runs of double spaces into
// separate lines, and drops blank lines.
func collapseWhitespace(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		for _, chunk := range strings.Split(strings.TrimSpace(line), "  ") {
			chunk = strings.TrimSpace(chunk)
			if chunk != "" {
				out = append(out, chunk)
			}
		}
	}
	return strings.Join(out, "\n")
}

// capContent truncates text at maxContentBytes.
func capContent(text string) string {
	if len(text) > maxContentBytes {
		return text[:maxContentBytes] + "\n[content truncated]"
	}
	return text
}
