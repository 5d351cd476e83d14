// Package mcpserver wires the fitness tool operations onto an MCP server.
// The default transport is stdio (how the chat client launches it); the
// same server can also be mounted over streamable HTTP for remote clients.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gymcoach/gymcoach/internal/domain/fitness"
	"github.com/gymcoach/gymcoach/internal/version"
)

const serverName = "gym"

// echoPrefix wraps the echoed message per the resource contract.
const echoPrefix = "Resource echo: "

// Server exposes the fitness service over MCP.
type Server struct {
	mcp *mcp.Server
	svc *fitness.Service
	log *slog.Logger
}

// New creates the MCP server and registers the four tool operations and the
// echo resource. A nil logger falls back to slog.Default().
func New(svc *fitness.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version.Version}, nil),
		svc: svc,
		log: logger,
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "generateWorkoutPlan",
		Description: "Generate a workout plan based on fitness goal, level, preferences and schedule.",
	}, s.handleGenerateWorkoutPlan)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "customWorkoutPlan",
		Description: "Generate a custom workout plan with additional custom goals.",
	}, s.handleCustomWorkoutPlan)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "nutritionAdvice",
		Description: "Generate nutrition advice based on goal, weight and activity level.",
	}, s.handleNutritionAdvice)
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "exerciseDetail",
		Description: "Get details about a specific named exercise.",
	}, s.handleExerciseDetail)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "echo",
		URITemplate: "echo://{message}",
		MIMEType:    "text/plain",
	}, s.handleEcho)

	return s
}

// Run serves MCP over stdio until ctx is cancelled or the peer disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("starting MCP server", "transport", "stdio", "name", serverName)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// MCP returns the underlying server for transports managed elsewhere.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Tool handlers return the domain Result as the tool output. Validation and
// upstream failures travel inside the result body, not as protocol errors;
// the {error, status} shape is the tool contract.

func (s *Server) handleGenerateWorkoutPlan(ctx context.Context, _ *mcp.CallToolRequest, params fitness.WorkoutPlanParams) (*mcp.CallToolResult, any, error) {
	return toolResult(s.svc.GenerateWorkoutPlan(ctx, params))
}

func (s *Server) handleCustomWorkoutPlan(ctx context.Context, _ *mcp.CallToolRequest, params fitness.CustomWorkoutPlanParams) (*mcp.CallToolResult, any, error) {
	return toolResult(s.svc.CustomWorkoutPlan(ctx, params))
}

func (s *Server) handleNutritionAdvice(ctx context.Context, _ *mcp.CallToolRequest, params fitness.NutritionAdviceParams) (*mcp.CallToolResult, any, error) {
	return toolResult(s.svc.NutritionAdvice(ctx, params))
}

func (s *Server) handleExerciseDetail(ctx context.Context, _ *mcp.CallToolRequest, params fitness.ExerciseDetailParams) (*mcp.CallToolResult, any, error) {
	return toolResult(s.svc.ExerciseDetail(ctx, params))
}

// toolResult serializes a Result as both text and structured content so
// clients can consume either form.
func toolResult(res fitness.Result) (*mcp.CallToolResult, any, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		StructuredContent: res,
	}, nil, nil
}

// handleEcho serves the echo://{message} resource: the message is returned
// verbatim behind a fixed prefix.
func (s *Server) handleEcho(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	message := strings.TrimPrefix(uri, "echo://")
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     echoPrefix + message,
		}},
	}, nil
}
