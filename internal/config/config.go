// Package config loads nmt settings from an optional YAML file and NMT_*
// environment variables on top of the built-in NMT exam policy.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/nmt/internal/assembler"
	"github.com/abhisek/nmt/internal/llm"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/store"
	"github.com/abhisek/nmt/internal/timer"
)

// EnvPrefix prefixes every environment override, e.g. NMT_EXAM_DURATION.
const EnvPrefix = "NMT"

type Config struct {
	Exam     ExamConfig     `mapstructure:"exam"`
	Pool     PoolConfig     `mapstructure:"pool"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      llm.Config     `mapstructure:"llm"`
}

type ExamConfig struct {
	Duration time.Duration    `mapstructure:"duration"`
	MaxScore int              `mapstructure:"max_score"`
	Variant  string           `mapstructure:"variant"`
	Assembly assembler.Config `mapstructure:"assembly"`
}

type PoolConfig struct {
	// File is a JSON or YAML array of pool records.
	File string `mapstructure:"file"`
	// IncludeBank adds approved question-bank submissions to the pool.
	IncludeBank bool `mapstructure:"include_bank"`
}

// RemoteConfig points the terminal client at a back-office API. When URL is
// set the pool is fetched from it and attempts are posted to it.
type RemoteConfig struct {
	URL string `mapstructure:"url"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	// DSN defaults to the per-user SQLite file for the sqlite driver.
	DSN string `mapstructure:"dsn"`
}

type ServerConfig struct {
	Addr      string          `mapstructure:"addr"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig limits attempt submissions per client address.
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Default returns the NMT mathematics policy with local storage.
func Default() Config {
	return Config{
		Exam: ExamConfig{
			Duration: timer.DefaultDuration,
			MaxScore: scoring.MaxScore,
			Variant:  assembler.VariantBalanced,
			Assembly: assembler.DefaultConfig(),
		},
		Pool: PoolConfig{
			File:        "questions.json",
			IncludeBank: true,
		},
		Database: DatabaseConfig{
			Driver: store.DriverSQLite,
		},
		Server: ServerConfig{
			Addr: ":8080",
			CORS: CORSConfig{AllowedOrigins: []string{"*"}},
			RateLimit: RateLimitConfig{
				PerMinute: 30,
				Burst:     10,
			},
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		LLM: llm.DefaultConfig(),
	}
}

// listKeys replace their default wholesale when set instead of merging
// element by element.
var listKeys = []string{
	"exam.assembly.matching_quota",
	"exam.assembly.short_slots",
	"server.cors.allowed_origins",
}

// Load reads the config file at path, or nmt.yaml from the working
// directory and the user config directory when path is empty. A missing
// default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	def := Default()
	setDefaults(v, def)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("nmt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "nmt"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindSecrets(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := def
	for _, key := range listKeys {
		if v.IsSet(key) {
			clearList(&cfg, key)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindSecrets maps API keys to both the NMT_ names and the names the
// provider SDKs use themselves.
func bindSecrets(v *viper.Viper) {
	_ = v.BindEnv("llm.anthropic.api_key", "NMT_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.openai.api_key", "NMT_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.gemini.api_key", "NMT_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.openrouter.api_key", "NMT_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	_ = v.BindEnv("database.dsn", "NMT_DATABASE_DSN", "DATABASE_URL")
}

// setDefaults registers every scalar key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("exam.duration", d.Exam.Duration)
	v.SetDefault("exam.max_score", d.Exam.MaxScore)
	v.SetDefault("exam.variant", d.Exam.Variant)
	v.SetDefault("exam.assembly.single", d.Exam.Assembly.Single)
	v.SetDefault("exam.assembly.matching", d.Exam.Assembly.Matching)
	v.SetDefault("exam.assembly.short", d.Exam.Assembly.Short)

	v.SetDefault("pool.file", d.Pool.File)
	v.SetDefault("pool.include_bank", d.Pool.IncludeBank)
	v.SetDefault("remote.url", d.Remote.URL)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.dsn", d.Database.DSN)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.rate_limit.per_minute", d.Server.RateLimit.PerMinute)
	v.SetDefault("server.rate_limit.burst", d.Server.RateLimit.Burst)

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", d.LLM.OpenAI.BaseURL)
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.retry.max_attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)
}

func clearList(cfg *Config, key string) {
	switch key {
	case "exam.assembly.matching_quota":
		cfg.Exam.Assembly.MatchingQuota = nil
	case "exam.assembly.short_slots":
		cfg.Exam.Assembly.ShortSlots = nil
	case "server.cors.allowed_origins":
		cfg.Server.CORS.AllowedOrigins = nil
	}
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.Exam.Duration <= 0 {
		return fmt.Errorf("exam.duration must be positive, got %s", c.Exam.Duration)
	}
	if c.Exam.MaxScore <= 0 {
		return fmt.Errorf("exam.max_score must be positive, got %d", c.Exam.MaxScore)
	}
	switch c.Exam.Variant {
	case "", assembler.VariantBalanced, assembler.VariantShuffled:
	default:
		return fmt.Errorf("exam.variant: unknown variant %q", c.Exam.Variant)
	}
	if err := c.Exam.Assembly.Validate(); err != nil {
		return fmt.Errorf("exam.assembly: %w", err)
	}
	switch c.Database.Driver {
	case "", store.DriverSQLite, store.DriverPostgres, "postgres":
	default:
		return fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver)
	}
	if c.Database.Driver != store.DriverSQLite && c.Database.Driver != "" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the %s driver", c.Database.Driver)
	}
	return nil
}

// DatabaseDSN returns the configured DSN, falling back to the default
// SQLite file.
func (c Config) DatabaseDSN() (string, error) {
	if c.Database.DSN != "" {
		return c.Database.DSN, nil
	}
	return store.DefaultDBPath()
}
