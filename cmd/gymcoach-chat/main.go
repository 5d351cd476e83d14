// gymcoach-chat is the interactive chat client. Spawns the configured MCP tool
// server over stdio and drives a memory-enabled Groq agent against it.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gymcoach/gymcoach/internal/domain/agent"
	"github.com/gymcoach/gymcoach/internal/infra/config"
	"github.com/gymcoach/gymcoach/internal/infra/llm"
	"github.com/gymcoach/gymcoach/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("gymcoach-chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config", "gym.yaml", "Path to the MCP server config file")
	serverName := fs.String("server", "", "Name of the server entry to use (default: the only one)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}
	if *showHelp {
		printHelp(out)
		return 0
	}

	logger := slog.New(slog.NewTextHandler(errOut, nil))
	cfg := config.Load()
	if cfg.GroqAPIKey == "" {
		fmt.Fprintln(out, "Error initializing chat: GROQ_API_KEY environment variable not set") //nolint:errcheck
		return 1
	}

	servers, err := config.LoadServers(*configPath)
	if err != nil {
		fmt.Fprintf(out, "Error initializing chat: %v\n", err) //nolint:errcheck
		return 1
	}
	spec, err := config.PickServer(servers, *serverName)
	if err != nil {
		fmt.Fprintf(out, "Error initializing chat: %v\n", err) //nolint:errcheck
		return 1
	}

	fmt.Fprintln(out, "Initializing chat...") //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := connect(ctx, spec)
	if err != nil {
		fmt.Fprintf(out, "Error initializing chat: %v\n", err) //nolint:errcheck
		return 1
	}
	defer session.Close() //nolint:errcheck

	provider := llm.NewGroqProvider(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel)
	ag := agent.New(provider, agent.NewMCPToolSource(session), agent.WithLogger(logger))

	chatLoop(ctx, in, out, ag)
	return 0
}

// connect launches the tool server as a child process and establishes the
// MCP session over its stdio.
func connect(ctx context.Context, spec config.ServerSpec) (*mcp.ClientSession, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	cmd.Env = os.Environ()
	for k, v := range spec.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	cmd.Stderr = os.Stderr

	client := mcp.NewClient(&mcp.Implementation{Name: "gymcoach-chat", Version: version.Version}, nil)
	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", spec.Command, err)
	}
	return session, nil
}

// conversationalAgent is what the chat loop needs from the agent. The
// indirection keeps the loop testable without a model or a server.
type conversationalAgent interface {
	Run(ctx context.Context, input string) (string, error)
	ClearHistory()
}

// chatLoop reads lines until exit/quit or EOF. One failed exchange prints
// an error and the loop continues; the session survives.
func chatLoop(ctx context.Context, in io.Reader, out io.Writer, ag conversationalAgent) {
	banner := `
===== Interactive MCP Chat =====
Type 'exit' or 'quit' to end the conversation
Type 'clear' to clear conversation history
==================================`
	fmt.Fprintln(out, banner) //nolint:errcheck

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ") //nolint:errcheck
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Ending conversation...") //nolint:errcheck
			return
		case "clear":
			ag.ClearHistory()
			fmt.Fprintln(out, "Conversation history cleared.") //nolint:errcheck
			continue
		}

		response, err := ag.Run(ctx, input)
		if err != nil {
			fmt.Fprintf(out, "\nError: %v\n", err) //nolint:errcheck
			continue
		}
		fmt.Fprintf(out, "\nAssistant: %s\n", response) //nolint:errcheck
	}
}

func printHelp(out io.Writer) {
	helpText := `gymcoach-chat - interactive fitness chat client

Usage:
  gymcoach-chat [options]

Options:
  --version        Show version information
  --help           Show this help message
  --config PATH    MCP server config file (default: gym.yaml)
  --server NAME    Server entry to use when several are configured

Environment:
  GROQ_API_KEY   Groq API key (required)
  GROQ_MODEL     Chat model (default: qwen-qwq-32b)

Config file:
  servers:
    gym:
      command: ./gymcoach
      env:
        RAPID_APIKEY: your-key`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
