package llm

import (
	"context"

	ollama "github.com/ollama/ollama/api"
)

// LocalDaemonUp reports whether a local Ollama daemon is reachable. The
// endpoint comes from OLLAMA_HOST when set, otherwise the client default.
// This is a courtesy preflight: callers use it to warn early, not to gate
// the run, so a down daemon still degrades into the usual per-provider
// error text.
func LocalDaemonUp(ctx context.Context) bool {
	client, err := ollama.ClientFromEnvironment()
	if err != nil {
		return false
	}
	return client.Heartbeat(ctx) == nil
}
