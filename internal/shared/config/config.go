package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"resume-builder/internal/shared/telemetry"
)

// MockAPIKey is the placeholder key that selects the mock generator.
const MockAPIKey = "mock-api-key"

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	OpenAIAPIURL    string
	AnthropicAPIKey string
	GoogleAPIKey    string
	LLMTimeout      time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
	ClientBaseURL   string
	ClientTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url.missing", map[string]any{"env": env})
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		DatabaseURL:     dbURL,
		Env:             env,
		LLMProvider:     normalizeProvider(getEnv("LLM_PROVIDER", "openai")),
		LLMModel:        getEnv("LLM_MODEL", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", MockAPIKey),
		OpenAIAPIURL:    strings.TrimRight(getEnv("OPENAI_API_URL", "https://api.openai.com/v1"), "/"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		LLMTimeout:      getSeconds("LLM_TIMEOUT_SECONDS", 120*time.Second),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 5),
		ClientBaseURL:   strings.TrimRight(getEnv("RESUME_API_BASE_URL", "http://localhost:8080/api/v1/resume"), "/"),
		ClientTimeout:   getSeconds("RESUME_CLIENT_TIMEOUT", 0),
	}
}

// ProviderAPIKey returns the API key for the configured LLM provider.
func (c Config) ProviderAPIKey() string {
	switch c.LLMProvider {
	case "anthropic":
		return c.AnthropicAPIKey
	case "gemini":
		return c.GoogleAPIKey
	default:
		return c.OpenAIAPIKey
	}
}

// UseMock reports whether generation should fall back to the mock generator.
func (c Config) UseMock() bool {
	key := strings.TrimSpace(c.ProviderAPIKey())
	return key == "" || key == MockAPIKey
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "value": raw})
		return def
	}
	return time.Duration(val) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	clean := strings.ToLower(strings.TrimSpace(raw))
	switch clean {
	case "", "openai":
		return "openai"
	case "anthropic", "claude":
		return "anthropic"
	case "gemini", "google":
		return "gemini"
	default:
		telemetry.Warn("config.invalid", map[string]any{"key": "LLM_PROVIDER", "value": raw})
		return clean
	}
}
