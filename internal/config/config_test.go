package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/nmt/internal/assembler"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY", "DATABASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
exam:
  duration: 45m
  variant: shuffled
  assembly:
    single: 10
    short_slots: ["Параметр"]
pool:
  file: /srv/nmt/pool.yaml
server:
  cors:
    allowed_origins: ["https://school.example"]
llm:
  provider: openrouter
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.Exam.Duration)
	assert.Equal(t, assembler.VariantShuffled, cfg.Exam.Variant)
	assert.Equal(t, 10, cfg.Exam.Assembly.Single)
	assert.Equal(t, assembler.DefaultMatching, cfg.Exam.Assembly.Matching, "unset keys keep defaults")
	assert.Equal(t, []string{"Параметр"}, cfg.Exam.Assembly.ShortSlots)
	assert.Len(t, cfg.Exam.Assembly.MatchingQuota, 2)
	assert.Equal(t, "/srv/nmt/pool.yaml", cfg.Pool.File)
	assert.Equal(t, []string{"https://school.example"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "exam:\n  duration: 45m\n")
	t.Setenv("NMT_EXAM_DURATION", "20m")
	t.Setenv("NMT_REMOTE_URL", "http://nmt.local:8080")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Minute, cfg.Exam.Duration)
	assert.Equal(t, "http://nmt.local:8080", cfg.Remote.URL)
	assert.Equal(t, "sk-test", cfg.LLM.Anthropic.APIKey)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad variant", "exam:\n  variant: random\n"},
		{"zero duration", "exam:\n  duration: 0s\n"},
		{"negative count", "exam:\n  assembly:\n    short: -1\n"},
		{"unknown driver", "database:\n  driver: mysql\n"},
		{"pgx without dsn", "database:\n  driver: pgx\n"},
		{"malformed yaml", "exam: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit missing file")
}

func TestDatabaseDSN(t *testing.T) {
	cfg := Default()
	cfg.Database.DSN = "postgres://nmt@db/nmt"
	dsn, err := cfg.DatabaseDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://nmt@db/nmt", dsn)

	dbPath := filepath.Join(t.TempDir(), "x", "nmt.db")
	t.Setenv("NMT_DB", dbPath)
	dsn, err = Default().DatabaseDSN()
	require.NoError(t, err)
	assert.Equal(t, dbPath, dsn)
}
