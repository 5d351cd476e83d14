// Package llm defines the model-agnostic chat provider abstraction.
// All types here are shared between the provider interface and adapters.
package llm

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Roles for conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a model-requested invocation of a named tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage // JSON object, as emitted by the model
}

// Message represents a single turn in a conversation.
type Message struct {
	Role    string
	Content string
	// ToolCalls is set on assistant messages that request tool invocations.
	ToolCalls []ToolCall
	// ToolCallID links a tool-role message to the call it answers.
	ToolCallID string
}

// ToolDecl declares one callable tool to the model.
type ToolDecl struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// ChatRequest is the input for a non-streaming chat completion.
type ChatRequest struct {
	// Model overrides the provider default when non-empty.
	Model       string
	Messages    []Message
	Tools       []ToolDecl
	Temperature float32
	MaxTokens   int
}

// ChatResponse is the output from a non-streaming chat completion. A
// response carries either assistant text, tool calls to satisfy, or both.
type ChatResponse struct {
	Content    string
	ToolCalls  []ToolCall
	StopReason string // "stop" | "tool_calls" | "length"
}
