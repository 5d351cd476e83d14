package llm

import "context"

// ChatProvider is the minimal conversational contract the agent layer
// depends on. Adapters return explicit errors; they never panic.
type ChatProvider interface {
	// ChatCompletion performs one non-streaming completion, suspending
	// until the full reply (or tool-call request) is available.
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
