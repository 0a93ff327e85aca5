package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"AUDIT_BACKEND", "AIRTABLE_API_URL", "AIRTABLE_BASE_ID", "AIRTABLE_PAT", "AIRTABLE_TABLE_NAME",
		"DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, BackendAirtable, cfg.Audit.Backend)
	assert.Equal(t, "Table1", cfg.Audit.AirtableTable)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.Audit.AirtableURL)
	assert.Equal(t, logrus.InfoLevel, cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	assert.Len(t, cfg.Warnings(), 2)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("AIRTABLE_BASE_ID", "appXYZ")
	t.Setenv("AIRTABLE_PAT", "pat")
	t.Setenv("AIRTABLE_TABLE_NAME", "Diagnostics Log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "Diagnostics Log", cfg.Audit.AirtableTable)
	assert.Equal(t, logrus.DebugLevel, cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Warnings())
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing api key":      {},
		"bad port":             {"OPENAI_API_KEY": "k", "PORT": "80 80"},
		"unknown backend":      {"OPENAI_API_KEY": "k", "AUDIT_BACKEND": "sheets"},
		"postgres without dsn": {"OPENAI_API_KEY": "k", "AUDIT_BACKEND": "postgres"},
		"bad log level":        {"OPENAI_API_KEY": "k", "LOG_LEVEL": "loud"},
		"bad log format":       {"OPENAI_API_KEY": "k", "LOG_FORMAT": "xml"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_PostgresBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("AUDIT_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/diag?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Audit.Backend)
	assert.Empty(t, cfg.Warnings())
}
