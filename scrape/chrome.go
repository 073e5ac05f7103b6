package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeFetcher renders pages in headless Chrome, so script-generated
// content is present in the extracted text. Each fetch launches a fresh
// incognito browser and tears it down afterwards; nothing is shared between
// fetches.
type ChromeFetcher struct {
	timeout time.Duration
}

// ChromeOption configures a ChromeFetcher.
type ChromeOption func(*ChromeFetcher)

// WithTimeout bounds a single fetch, navigation and extraction included.
func WithTimeout(d time.Duration) ChromeOption {
	return func(f *ChromeFetcher) { f.timeout = d }
}

// NewChromeFetcher creates a ChromeFetcher. The default per-fetch timeout
// is 60 seconds.
func NewChromeFetcher(opts ...ChromeOption) *ChromeFetcher {
	f := &ChromeFetcher{timeout: 60 * time.Second}
	for _, o := range opts {
		o(f)
	}
	return f
}

// extractTextJS clones the body, removes non-content elements, and returns
// the rendered text. Running in-page keeps extraction consistent with what
// the browser actually laid out.
const extractTextJS = `
(function() {
	var clone = document.body.cloneNode(true);
	var tags = ["script", "style", "noscript", "svg"];
	for (var i = 0; i < tags.length; i++) {
		var elems = clone.querySelectorAll(tags[i]);
		for (var j = 0; j < elems.length; j++) {
			elems[j].remove();
		}
	}
	return clone.innerText || "";
})()
`

// Fetch implements the Fetcher interface.
func (f *ChromeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("incognito", true),
		chromedp.Flag("disable-gpu", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	opCtx, opCancel := context.WithTimeout(browserCtx, f.timeout)
	defer opCancel()

	var text string
	err := chromedp.Run(opCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(extractTextJS, &text),
	)
	if err != nil {
		return "", fmt.Errorf("chrome fetch of %s failed: %w", url, err)
	}

	return capContent(collapseWhitespace(text)), nil
}
