// Package config loads service settings from the environment (after
// godotenv has merged any .env file in).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Audit backends.
const (
	BackendAirtable = "airtable"
	BackendPostgres = "postgres"
	BackendNone     = "none"
)

const defaultAirtableTable = "Table1"

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Audit   AuditConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type AuditConfig struct {
	Backend string

	AirtableURL    string
	AirtableBaseID string
	AirtableToken  string
	AirtableTable  string

	DatabaseURL string
}

type LoggingConfig struct {
	Level  logrus.Level
	Format string // text | json
}

func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	openAI := OpenAIConfig{
		APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Model:   strings.TrimSpace(os.Getenv("OPENAI_MODEL")),
		BaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
	}
	if openAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	auditCfg, err := loadAuditConfig()
	if err != nil {
		return nil, err
	}

	logging, err := loadLoggingConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		OpenAI:  openAI,
		Audit:   auditCfg,
		Logging: logging,
	}, nil
}

// Warnings lists settings that are allowed to be missing at startup but
// will make every audit write fail.
func (c *Config) Warnings() []string {
	var out []string
	if c.Audit.Backend == BackendAirtable {
		if c.Audit.AirtableBaseID == "" {
			out = append(out, "AIRTABLE_BASE_ID not set, audit writes will fail")
		}
		if c.Audit.AirtableToken == "" {
			out = append(out, "AIRTABLE_PAT not set, audit writes will fail")
		}
	}
	return out
}

func loadServerConfig() (ServerConfig, error) {
	port := getEnvOrDefault("PORT", "8080")

	var addr string
	switch {
	case strings.Contains(port, " "):
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	case strings.Contains(port, ":"):
		// ":8080" или "127.0.0.1:8080"
		addr = port
	default:
		addr = ":" + port
	}

	var origins []string
	for _, o := range strings.Split(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return ServerConfig{Addr: addr, AllowedOrigins: origins}, nil
}

func loadAuditConfig() (AuditConfig, error) {
	cfg := AuditConfig{
		Backend:        strings.ToLower(getEnvOrDefault("AUDIT_BACKEND", BackendAirtable)),
		AirtableURL:    getEnvOrDefault("AIRTABLE_API_URL", "https://api.airtable.com/v0"),
		AirtableBaseID: strings.TrimSpace(os.Getenv("AIRTABLE_BASE_ID")),
		AirtableToken:  strings.TrimSpace(os.Getenv("AIRTABLE_PAT")),
		AirtableTable:  getEnvOrDefault("AIRTABLE_TABLE_NAME", defaultAirtableTable),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	switch cfg.Backend {
	case BackendAirtable, BackendNone:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return AuditConfig{}, errors.New("DATABASE_URL is not set (required by AUDIT_BACKEND=postgres)")
		}
	default:
		return AuditConfig{}, fmt.Errorf("invalid AUDIT_BACKEND value: %q", cfg.Backend)
	}

	return cfg, nil
}

func loadLoggingConfig() (LoggingConfig, error) {
	level, err := logrus.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return LoggingConfig{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return LoggingConfig{}, fmt.Errorf("invalid LOG_FORMAT value: %q", format)
	}

	return LoggingConfig{Level: level, Format: format}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
