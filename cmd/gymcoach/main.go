// gymcoach is the fitness MCP tool server entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gymcoach/gymcoach/internal/domain/fitness"
	"github.com/gymcoach/gymcoach/internal/infra/config"
	"github.com/gymcoach/gymcoach/internal/infra/fitnessapi"
	"github.com/gymcoach/gymcoach/internal/mcpserver"
	"github.com/gymcoach/gymcoach/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("gymcoach", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	httpAddr := fs.String("http", "", "Serve MCP over HTTP on this address instead of stdio")

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

	// Stdout carries the stdio MCP transport, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(errOut, nil))

	cfg := config.Load()
	if cfg.RapidAPIKey == "" {
		logger.Warn("RAPID_APIKEY environment variable not set")
	}

	api := fitnessapi.NewClient(cfg.FitnessBaseURL, cfg.RapidAPIHost, cfg.RapidAPIKey,
		fitnessapi.WithLogger(logger))
	svc := fitness.NewService(api, logger)
	server := mcpserver.New(svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *httpAddr != "" {
		err = server.Serve(ctx, *httpAddr)
	} else {
		err = server.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		return 1
	}
	return 0
}

func printHelp(out io.Writer) {
	helpText := `gymcoach - fitness MCP tool server

Usage:
  gymcoach [options]

Options:
  --version      Show version information
  --help         Show this help message
  --http ADDR    Serve MCP over HTTP on ADDR (default: stdio)

Environment:
  RAPID_APIKEY          RapidAPI key for the workout planner API (required)
  RAPID_API_HOST        Override the upstream API host
  FITNESS_API_BASE_URL  Override the upstream API base URL

Examples:
  gymcoach
  gymcoach --http :8080`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
