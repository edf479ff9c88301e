package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type PasswordScheme string

const (
	PasswordSchemePlain  PasswordScheme = "plain"  // Plaintext equality, kept for compatibility with existing rows
	PasswordSchemeBcrypt PasswordScheme = "bcrypt" // bcrypt hashes
)

// ErrDatabaseURLRequired is returned by Validate when no connection string is configured.
var ErrDatabaseURLRequired = errors.New("DATABASE_URL is not set: provide a postgres:// URL or a SQLite file path")

type (
	Config struct {
		HTTP
		Global
		Log
		Database
		Auth
		Seed
		Translate
		Dictionary
		Enrichment
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // json or console
	}
	Database struct {
		URL             string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
	}
	Auth struct {
		SessionSecret   string
		SessionLifetime time.Duration
		SecureCookies   bool // Set to false for local dev without HTTPS
		PasswordScheme  PasswordScheme
		BcryptCost      int
	}
	Seed struct {
		Usernames []string // Demo accounts created at startup when missing
		Password  string   // Shared placeholder password for the demo accounts
	}
	Translate struct {
		URL        string
		SourceLang string
		TargetLang string
	}
	Dictionary struct {
		URL         string
		MinInterval time.Duration // Minimum gap between dictionary requests
	}
	Enrichment struct {
		ExternalTimeout time.Duration // Deadline for each translation or dictionary call
		Workers         int           // Parallel enrichments per batch
	}
)

// Validate reports configuration that makes the service unable to start.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrDatabaseURLRequired
	}
	switch c.Auth.PasswordScheme {
	case PasswordSchemePlain, PasswordSchemeBcrypt:
	default:
		return errors.New("AUTH_PASSWORD_SCHEME must be 'plain' or 'bcrypt'")
	}
	return nil
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func NewConfig() *Config {
	// A missing .env file is fine, the environment wins anyway.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// Database pool defaults
	v.SetDefault("database_url", "")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", "30m")

	// Auth defaults
	v.SetDefault("session_secret", "") // Generated per process when empty
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("secure_cookies", true)
	v.SetDefault("auth_password_scheme", string(PasswordSchemePlain))
	v.SetDefault("bcrypt_cost", 12)

	v.SetDefault("seed_users", "demo")
	v.SetDefault("seed_password", "changeme")

	// External services
	v.SetDefault("translate_url", DefaultTranslateURL)
	v.SetDefault("translate_source_lang", "en")
	v.SetDefault("translate_target_lang", "hi")
	v.SetDefault("dictionary_url", DefaultDictionaryURL)
	v.SetDefault("dictionary_min_interval", "250ms")
	v.SetDefault("external_timeout", "5s")
	v.SetDefault("enrich_workers", 1)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Database: Database{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Auth: Auth{
			SessionSecret:   v.GetString("SESSION_SECRET"),
			SessionLifetime: v.GetDuration("SESSION_LIFETIME"),
			SecureCookies:   v.GetBool("SECURE_COOKIES"),
			PasswordScheme:  PasswordScheme(strings.ToLower(v.GetString("AUTH_PASSWORD_SCHEME"))),
			BcryptCost:      v.GetInt("BCRYPT_COST"),
		},
		Seed: Seed{
			Usernames: splitList(v.GetString("SEED_USERS")),
			Password:  v.GetString("SEED_PASSWORD"),
		},
		Translate: Translate{
			URL:        v.GetString("TRANSLATE_URL"),
			SourceLang: v.GetString("TRANSLATE_SOURCE_LANG"),
			TargetLang: v.GetString("TRANSLATE_TARGET_LANG"),
		},
		Dictionary: Dictionary{
			URL:         v.GetString("DICTIONARY_URL"),
			MinInterval: v.GetDuration("DICTIONARY_MIN_INTERVAL"),
		},
		Enrichment: Enrichment{
			ExternalTimeout: v.GetDuration("EXTERNAL_TIMEOUT"),
			Workers:         v.GetInt("ENRICH_WORKERS"),
		},
	}
}
