// Package config provides application-wide configuration loaded from env vars.
// All fields except the credentials have safe defaults so the binaries run
// locally with only RAPID_APIKEY / GROQ_API_KEY set.
package config

import "os"

// Config holds runtime configuration for gymcoach.
type Config struct {
	// Upstream fitness API (RapidAPI)
	RapidAPIKey    string // RAPID_APIKEY, required for live calls, no default
	RapidAPIHost   string // RAPID_API_HOST
	FitnessBaseURL string // FITNESS_API_BASE_URL

	// Groq chat model (OpenAI-compatible API)
	GroqAPIKey  string // GROQ_API_KEY, required by the chat client, no default
	GroqBaseURL string // GROQ_BASE_URL
	GroqModel   string // GROQ_MODEL
}

const (
	envKeyRapidAPIKey    = "RAPID_APIKEY"
	envKeyRapidAPIHost   = "RAPID_API_HOST"
	envKeyFitnessBaseURL = "FITNESS_API_BASE_URL"
	envKeyGroqAPIKey     = "GROQ_API_KEY"
	envKeyGroqBaseURL    = "GROQ_BASE_URL"
	envKeyGroqModel      = "GROQ_MODEL"
)

const (
	defaultRapidAPIHost   = "ai-workout-planner-exercise-fitness-nutrition-guide.p.rapidapi.com"
	defaultFitnessBaseURL = "https://" + defaultRapidAPIHost
	defaultGroqBaseURL    = "https://api.groq.com/openai/v1"
	defaultGroqModel      = "qwen-qwq-32b"
)

// Load reads configuration from environment variables, applying defaults for missing values.
func Load() Config {
	return Config{
		RapidAPIKey:    os.Getenv(envKeyRapidAPIKey),
		RapidAPIHost:   envOr(envKeyRapidAPIHost, defaultRapidAPIHost),
		FitnessBaseURL: envOr(envKeyFitnessBaseURL, defaultFitnessBaseURL),
		GroqAPIKey:     os.Getenv(envKeyGroqAPIKey),
		GroqBaseURL:    envOr(envKeyGroqBaseURL, defaultGroqBaseURL),
		GroqModel:      envOr(envKeyGroqModel, defaultGroqModel),
	}
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
