package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ProviderCredentials holds the five LLM credential slots.
type ProviderCredentials struct {
	OpenAI    string
	Anthropic string
	Gemini    string
	Groq      string
	Mistral   string
}

// ProviderModels holds the model used for each provider.
type ProviderModels struct {
	OpenAI    string
	Anthropic string
	Gemini    string
	Groq      string
	Mistral   string
}

// ProviderBaseURLs overrides the API endpoint for each provider.
// An empty Gemini URL keeps the genai SDK default.
type ProviderBaseURLs struct {
	OpenAI    string
	Anthropic string
	Gemini    string
	Groq      string
	Mistral   string
}

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// LLM providers
	Credentials ProviderCredentials
	Models      ProviderModels
	BaseURLs    ProviderBaseURLs

	// Remote call
	LLMTimeout        time.Duration // 0 = transport default
	LLMBreakerEnabled bool

	// Rate limiting for /api/ai (requests per minute per IP, 0 disables)
	AIRateLimitPerMin int

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),

		Credentials: ProviderCredentials{
			OpenAI:    getEnvTrimmed("OPENAI_API_KEY"),
			Anthropic: getEnvTrimmed("ANTHROPIC_API_KEY"),
			Gemini:    getEnvTrimmed("GEMINI_API_KEY"),
			Groq:      getEnvTrimmed("GROQ_API_KEY"),
			Mistral:   getEnvTrimmed("MISTRAL_API_KEY"),
		},
		Models: ProviderModels{
			OpenAI:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Anthropic: getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			Gemini:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Groq:      getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			Mistral:   getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		},
		BaseURLs: ProviderBaseURLs{
			OpenAI:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Anthropic: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1"),
			Gemini:    getEnv("GEMINI_BASE_URL", ""),
			Groq:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Mistral:   getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
		},

		LLMTimeout:        time.Duration(getEnvInt("LLM_TIMEOUT_SEC", 0)) * time.Second,
		LLMBreakerEnabled: getEnvBool("LLM_BREAKER_ENABLED", false),

		AIRateLimitPerMin: getEnvInt("AI_RATE_LIMIT_PER_MIN", 0),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvTrimmed treats whitespace-only values as unset.
func getEnvTrimmed(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
