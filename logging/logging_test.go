package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newBufLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufLogger()

	l.Debug("hidden")
	l.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info message should be logged")
	}

	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message should be logged at debug level")
	}
}

func TestLogger_Component(t *testing.T) {
	l, buf := newBufLogger()

	l.WithComponent("scrape").Info("fetching")

	if !strings.Contains(buf.String(), "[scrape]") {
		t.Errorf("expected component tag, got %q", buf.String())
	}
}

func TestLogger_RunID(t *testing.T) {
	l, buf := newBufLogger()

	l.WithRunID("run-123").Info("provider_start")

	if !strings.Contains(buf.String(), "run=run-123") {
		t.Errorf("expected run id field, got %q", buf.String())
	}
}

func TestLogger_Fields(t *testing.T) {
	l, buf := newBufLogger()

	l.Info("provider_start", map[string]interface{}{"provider": "OpenAI"})

	if !strings.Contains(buf.String(), "provider=OpenAI") {
		t.Errorf("expected field output, got %q", buf.String())
	}
}

func TestLogger_DoesNotMutateCallerFields(t *testing.T) {
	l, buf := newBufLogger()

	fields := map[string]interface{}{"provider": "OpenAI"}
	l.WithRunID("run-123").Info("provider_start", fields)

	if !strings.Contains(buf.String(), "run=run-123") {
		t.Errorf("expected run id in output, got %q", buf.String())
	}
	if _, ok := fields["run"]; ok {
		t.Error("caller's field map must not be mutated")
	}
	if len(fields) != 1 {
		t.Errorf("caller's field map changed size: %v", fields)
	}
}

func TestLogger_EventHelpers(t *testing.T) {
	l, buf := newBufLogger()
	l.SetLevel(LevelDebug)

	l.ProviderStart("OpenAI", "gpt-4o-mini", "https://example.com")
	l.ProviderSkipped("Claude")
	l.FetchComplete("https://example.com", 2048, 120*time.Millisecond)
	l.FetchFailed("https://example.com", errors.New("timeout"))
	l.SummarizeComplete("OpenAI", time.Second)

	out := buf.String()
	for _, want := range []string{
		"provider_start",
		"provider_skipped",
		"fetch_complete",
		"fetch_failed",
		"summarize_complete",
		"reason=no credential",
		"error=timeout",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output", want)
		}
	}
}
