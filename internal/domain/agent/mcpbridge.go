package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gymcoach/gymcoach/internal/infra/llm"
)

// MCPToolSource adapts an MCP client session to the agent's ToolSource.
type MCPToolSource struct {
	session *mcp.ClientSession
}

// NewMCPToolSource wraps an established MCP client session.
func NewMCPToolSource(session *mcp.ClientSession) *MCPToolSource {
	return &MCPToolSource{session: session}
}

// List returns the server's tools as model-facing declarations. The MCP
// input schema travels through unchanged.
func (s *MCPToolSource) List(ctx context.Context) ([]llm.ToolDecl, error) {
	res, err := s.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("mcp list tools: %w", err)
	}
	decls := make([]llm.ToolDecl, 0, len(res.Tools))
	for _, t := range res.Tools {
		decls = append(decls, llm.ToolDecl{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return decls, nil
}

// Call invokes one tool over the session and flattens its content to text.
func (s *MCPToolSource) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	var arguments map[string]any
	if len(args) > 0 {
		if err := json.Unmarshal(args, &arguments); err != nil {
			return "", fmt.Errorf("mcp call %s: decode arguments: %w", name, err)
		}
	}

	res, err := s.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	if err != nil {
		return "", fmt.Errorf("mcp call %s: %w", name, err)
	}

	var b strings.Builder
	for _, content := range res.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			b.WriteString(text.Text)
		}
	}
	if b.Len() == 0 && res.StructuredContent != nil {
		raw, marshalErr := json.Marshal(res.StructuredContent)
		if marshalErr == nil {
			b.Write(raw)
		}
	}
	return b.String(), nil
}
