// Package agent implements the conversational agent driving the chat
// client: a chat model with built-in conversation memory and a bounded
// tool-call loop over the tools discovered from an MCP server.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gymcoach/gymcoach/internal/infra/llm"
)

// defaultMaxSteps bounds the number of model round-trips per Run call so a
// tool-happy model cannot loop forever.
const defaultMaxSteps = 15

const defaultSystemPrompt = "You are a helpful fitness assistant. Use the " +
	"available tools to generate workout plans, give nutrition advice and " +
	"look up exercises. Answer in the user's language."

// ErrMaxSteps is returned when a single exchange exceeds the step budget
// without producing a final assistant reply.
var ErrMaxSteps = errors.New("agent: exchange exceeded maximum tool steps")

// ToolSource provides the callable tools for an exchange. The MCP bridge is
// the production implementation; tests supply fakes.
type ToolSource interface {
	// List returns the declarations of all available tools.
	List(ctx context.Context) ([]llm.ToolDecl, error)
	// Call invokes one tool and returns its result flattened to text.
	Call(ctx context.Context, name string, args json.RawMessage) (string, error)
}

// Agent is a memory-enabled conversational agent. It is not safe for
// concurrent use; the chat driver is strictly sequential.
type Agent struct {
	provider     llm.ChatProvider
	tools        ToolSource
	systemPrompt string
	maxSteps     int
	log          *slog.Logger

	history []llm.Message
	decls   []llm.ToolDecl // cached tool declarations, loaded on first Run
}

// Option configures an Agent.
type Option func(*Agent)

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) { a.systemPrompt = prompt }
}

// WithMaxSteps overrides the per-exchange step budget.
func WithMaxSteps(n int) Option {
	return func(a *Agent) { a.maxSteps = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) { a.log = l }
}

// New creates an Agent over the given provider and tool source.
func New(provider llm.ChatProvider, tools ToolSource, opts ...Option) *Agent {
	a := &Agent{
		provider:     provider,
		tools:        tools,
		systemPrompt: defaultSystemPrompt,
		maxSteps:     defaultMaxSteps,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run sends one user message, resolves any tool calls the model requests,
// and returns the final assistant reply. Conversation memory persists
// across calls. On error the exchange is rolled back so a failed turn does
// not poison later ones.
func (a *Agent) Run(ctx context.Context, input string) (string, error) {
	if err := a.loadTools(ctx); err != nil {
		return "", err
	}

	checkpoint := len(a.history)
	a.history = append(a.history, llm.Message{Role: llm.RoleUser, Content: input})

	reply, err := a.resolve(ctx)
	if err != nil {
		a.history = a.history[:checkpoint]
		return "", err
	}
	return reply, nil
}

// resolve loops model completions and tool invocations until the model
// produces a plain assistant reply or the step budget runs out.
func (a *Agent) resolve(ctx context.Context) (string, error) {
	for step := 0; step < a.maxSteps; step++ {
		resp, err := a.provider.ChatCompletion(ctx, llm.ChatRequest{
			Messages: a.messagesWithSystem(),
			Tools:    a.decls,
		})
		if err != nil {
			return "", err
		}

		if len(resp.ToolCalls) == 0 {
			a.history = append(a.history, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
			return resp.Content, nil
		}

		a.history = append(a.history, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		for _, call := range resp.ToolCalls {
			a.log.Info("calling tool", "tool", call.Name)
			out, callErr := a.tools.Call(ctx, call.Name, call.Arguments)
			if callErr != nil {
				// Tool failures go back to the model as text so it can
				// recover or apologize; they do not abort the exchange.
				out = fmt.Sprintf("tool %s failed: %v", call.Name, callErr)
				a.log.Error("tool call failed", "tool", call.Name, "error", callErr)
			}
			a.history = append(a.history, llm.Message{
				Role:       llm.RoleTool,
				Content:    out,
				ToolCallID: call.ID,
			})
		}
	}
	return "", ErrMaxSteps
}

// loadTools fetches and caches the tool declarations on first use.
func (a *Agent) loadTools(ctx context.Context) error {
	if a.decls != nil {
		return nil
	}
	decls, err := a.tools.List(ctx)
	if err != nil {
		return fmt.Errorf("agent: list tools: %w", err)
	}
	a.decls = decls
	return nil
}

// messagesWithSystem prepends the system prompt to the conversation.
func (a *Agent) messagesWithSystem() []llm.Message {
	msgs := make([]llm.Message, 0, len(a.history)+1)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: a.systemPrompt})
	return append(msgs, a.history...)
}

// ClearHistory discards the conversation memory.
func (a *Agent) ClearHistory() {
	a.history = nil
}

// HistoryLen reports the number of remembered turns. Used by the chat
// driver for status output.
func (a *Agent) HistoryLen() int {
	return len(a.history)
}
