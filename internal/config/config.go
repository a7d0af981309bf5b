package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port    string
	GinMode string

	LogLevel string

	// An empty key puts text generation in mock mode.
	GeminiAPIKey      string
	GeminiModel       string
	GenerationTimeout time.Duration

	GmailCredentialsFile string
	GmailTokenFile       string
	GmailSender          string

	CORSAllowedOrigins []string
}

// Load reads an optional .env file and then resolves every key from the
// environment, falling back to defaults.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GENERATION_TIMEOUT", "60s")
	v.SetDefault("GMAIL_CREDENTIALS_FILE", "credential.json")
	v.SetDefault("GMAIL_TOKEN_FILE", "token.json")
	v.SetDefault("GMAIL_SENDER", "me")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	apiKey := v.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = v.GetString("API_KEY")
	}

	return &Config{
		Port:                 v.GetString("PORT"),
		GinMode:              v.GetString("GIN_MODE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		GeminiAPIKey:         apiKey,
		GeminiModel:          v.GetString("GEMINI_MODEL"),
		GenerationTimeout:    v.GetDuration("GENERATION_TIMEOUT"),
		GmailCredentialsFile: v.GetString("GMAIL_CREDENTIALS_FILE"),
		GmailTokenFile:       v.GetString("GMAIL_TOKEN_FILE"),
		GmailSender:          v.GetString("GMAIL_SENDER"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
