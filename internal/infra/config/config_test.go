package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		envKeyRapidAPIKey, envKeyRapidAPIHost, envKeyFitnessBaseURL,
		envKeyGroqAPIKey, envKeyGroqBaseURL, envKeyGroqModel,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key) //nolint:errcheck
	}

	cfg := Load()

	if cfg.RapidAPIKey != "" {
		t.Errorf("RapidAPIKey = %q, want empty (no default credential)", cfg.RapidAPIKey)
	}
	if cfg.RapidAPIHost != defaultRapidAPIHost {
		t.Errorf("RapidAPIHost = %q, want %q", cfg.RapidAPIHost, defaultRapidAPIHost)
	}
	if cfg.FitnessBaseURL != defaultFitnessBaseURL {
		t.Errorf("FitnessBaseURL = %q, want %q", cfg.FitnessBaseURL, defaultFitnessBaseURL)
	}
	if cfg.GroqModel != defaultGroqModel {
		t.Errorf("GroqModel = %q, want %q", cfg.GroqModel, defaultGroqModel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(envKeyRapidAPIKey, "test-key")
	t.Setenv(envKeyFitnessBaseURL, "http://localhost:9999")
	t.Setenv(envKeyGroqModel, "llama-3.3-70b-versatile")

	cfg := Load()

	if cfg.RapidAPIKey != "test-key" {
		t.Errorf("RapidAPIKey = %q, want 'test-key'", cfg.RapidAPIKey)
	}
	if cfg.FitnessBaseURL != "http://localhost:9999" {
		t.Errorf("FitnessBaseURL = %q, want override", cfg.FitnessBaseURL)
	}
	if cfg.GroqModel != "llama-3.3-70b-versatile" {
		t.Errorf("GroqModel = %q, want override", cfg.GroqModel)
	}
}

func TestLoadServers_ParsesYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gym.yaml")
	content := `
servers:
  gym:
    command: ./gymcoach
    args: ["--log-level", "info"]
    env:
      RAPID_APIKEY: abc123
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	servers, err := LoadServers(path)
	if err != nil {
		t.Fatalf("LoadServers failed: %v", err)
	}

	spec, ok := servers["gym"]
	if !ok {
		t.Fatalf("expected server 'gym' in %v", servers)
	}
	if spec.Command != "./gymcoach" {
		t.Errorf("Command = %q, want './gymcoach'", spec.Command)
	}
	if len(spec.Args) != 2 || spec.Args[0] != "--log-level" {
		t.Errorf("Args = %v, want [--log-level info]", spec.Args)
	}
	if spec.Env["RAPID_APIKEY"] != "abc123" {
		t.Errorf("Env = %v, want RAPID_APIKEY=abc123", spec.Env)
	}
}

func TestLoadServers_EmptyFile_Error(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("servers: {}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadServers(path); err == nil {
		t.Error("expected error for config with no servers, got nil")
	}
}

func TestLoadServers_MissingCommand_Error(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("servers:\n  gym:\n    args: [\"-v\"]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadServers(path)
	if err == nil {
		t.Fatal("expected error for server without command, got nil")
	}
	if !strings.Contains(err.Error(), "no command") {
		t.Errorf("error = %v, should mention missing command", err)
	}
}

func TestPickServer(t *testing.T) {
	t.Parallel()

	servers := map[string]ServerSpec{
		"gym": {Command: "./gymcoach"},
	}

	spec, err := PickServer(servers, "")
	if err != nil {
		t.Fatalf("PickServer with single server failed: %v", err)
	}
	if spec.Command != "./gymcoach" {
		t.Errorf("Command = %q, want './gymcoach'", spec.Command)
	}

	if _, err := PickServer(servers, "nope"); err == nil {
		t.Error("expected error for unknown server name, got nil")
	}

	servers["other"] = ServerSpec{Command: "./other"}
	if _, err := PickServer(servers, ""); err == nil {
		t.Error("expected error for ambiguous empty name, got nil")
	}
}
