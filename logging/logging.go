// Package logging provides leveled console output for monitoring a
// summarization run. Results themselves go through the renderer; this is
// the operational side channel.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// levelPriority maps levels to numeric priority for filtering.
var levelPriority = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Logger writes leveled, key=value formatted lines.
type Logger struct {
	mu        sync.Mutex
	output    io.Writer
	minLevel  Level
	component string
	runID     string
}

// New creates a Logger writing to stderr at Info level. Stderr keeps log
// lines out of piped panel output.
func New() *Logger {
	return &Logger{
		output:   os.Stderr,
		minLevel: LevelInfo,
	}
}

// WithComponent returns a new logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		output:    l.output,
		minLevel:  l.minLevel,
		component: component,
		runID:     l.runID,
	}
}

// WithRunID returns a new logger tagged with a run identifier, so lines
// from one invocation can be grouped.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{
		output:    l.output,
		minLevel:  l.minLevel,
		component: l.component,
		runID:     runID,
	}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.minLevel = level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.log(LevelError, msg, fields...)
}

// formatFields formats a map of fields as key=value pairs.
func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	var parts []string
	for k, v := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return " " + strings.Join(parts, " ")
}

// log writes one line: LEVEL TIMESTAMP [component] message key=value ...
func (l *Logger) log(level Level, msg string, fields ...map[string]interface{}) {
	if levelPriority[level] < levelPriority[l.minLevel] {
		return
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	var fieldStr string
	if len(fields) > 0 && fields[0] != nil {
		f := fields[0]
		if l.runID != "" {
			// Copy before adding the run id; the caller's map is theirs.
			merged := make(map[string]interface{}, len(f)+1)
			for k, v := range f {
				merged[k] = v
			}
			merged["run"] = l.runID
			f = merged
		}
		fieldStr = formatFields(f)
	} else if l.runID != "" {
		fieldStr = formatFields(map[string]interface{}{"run": l.runID})
	}

	var line string
	if l.component != "" {
		line = fmt.Sprintf("%-5s %s [%s] %s%s\n", level, timestamp, l.component, msg, fieldStr)
	} else {
		line = fmt.Sprintf("%-5s %s %s%s\n", level, timestamp, msg, fieldStr)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write([]byte(line))
}

// --- Run event helpers ---

// ProviderStart logs the start of one provider's summarization.
func (l *Logger) ProviderStart(provider, model, url string) {
	l.Info("provider_start", map[string]interface{}{
		"provider": provider,
		"model":    model,
		"url":      url,
	})
}

// ProviderSkipped logs that a provider was skipped for want of a credential.
func (l *Logger) ProviderSkipped(provider string) {
	l.Info("provider_skipped", map[string]interface{}{
		"provider": provider,
		"reason":   "no credential",
	})
}

// FetchComplete logs a successful content fetch.
func (l *Logger) FetchComplete(url string, bytes int, duration time.Duration) {
	l.Debug("fetch_complete", map[string]interface{}{
		"url":      url,
		"bytes":    bytes,
		"duration": duration.String(),
	})
}

// FetchFailed logs a content-fetch failure.
func (l *Logger) FetchFailed(url string, err error) {
	l.Error("fetch_failed", map[string]interface{}{
		"url":   url,
		"error": err.Error(),
	})
}

// SummarizeComplete logs the completion of one provider's exchange.
func (l *Logger) SummarizeComplete(provider string, duration time.Duration) {
	l.Info("summarize_complete", map[string]interface{}{
		"provider": provider,
		"duration": duration.String(),
	})
}
