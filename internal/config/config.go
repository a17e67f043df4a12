// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN; required for cmd/server, cmd/seed, and cmd/migrate.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// AuthUsers is a comma-separated list of username:bcrypt-hash pairs for the fixed account set.
	// Credentials are never hardcoded in source; set via env or .env.
	AuthUsers string `mapstructure:"AUTH_USERS"`
	// BcryptCost is the bcrypt cost factor (4–31) used when generating AUTH_USERS hashes
	// (go run ./cmd/seed -hash <password>); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// SessionTTL is the server-side session lifetime (e.g. "12h").
	SessionTTL string `mapstructure:"SESSION_TTL"`
	// SessionMaxPerUser caps live sessions per user; a login beyond the cap evicts that user's oldest session.
	SessionMaxPerUser int `mapstructure:"SESSION_MAX_PER_USER"`
	// SessionCookieName is the name of the session cookie (default milestone_session).
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`
	// SessionCookieSecure sets the Secure flag on the session cookie. Must stay true when the
	// frontend is served over HTTPS from another origin (SameSite=None requires Secure).
	SessionCookieSecure bool `mapstructure:"SESSION_COOKIE_SECURE"`
	// CORSAllowedOrigin is the single origin allowed to call the API with credentials
	// (e.g. https://app.example.com). Empty disables cross-origin access.
	CORSAllowedOrigin string `mapstructure:"CORS_ALLOWED_ORIGIN"`
	// SupabaseURL is the Supabase project URL used for object storage (e.g. https://xyz.supabase.co).
	SupabaseURL string `mapstructure:"SUPABASE_URL"`
	// SupabaseServiceKey is the service-role key for the storage API.
	SupabaseServiceKey string `mapstructure:"SUPABASE_SERVICE_KEY"`
	// StorageBucket is the bucket uploads go to (default media).
	StorageBucket string `mapstructure:"STORAGE_BUCKET"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("AUTH_USERS", "")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("SESSION_MAX_PER_USER", 2)
	v.SetDefault("SESSION_COOKIE_NAME", "milestone_session")
	v.SetDefault("SESSION_COOKIE_SECURE", true)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_SERVICE_KEY", "")
	v.SetDefault("STORAGE_BUCKET", "media")
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	if cfg.SessionMaxPerUser < 1 {
		return nil, errors.New("config: SESSION_MAX_PER_USER must be at least 1")
	}

	if _, err := parseAuthUsers(cfg.AuthUsers); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SessionTTLDuration parses SessionTTL as a time.Duration. Returns 12h if unset or invalid.
func (c *Config) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}

// AuthUserTable returns the configured accounts as a username → bcrypt-hash map.
// Load has already validated the format, so parse errors cannot occur here.
func (c *Config) AuthUserTable() map[string]string {
	users, _ := parseAuthUsers(c.AuthUsers)
	return users
}

func parseAuthUsers(raw string) (map[string]string, error) {
	users := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return users, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, hash, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		hash = strings.TrimSpace(hash)
		if !ok || name == "" || hash == "" {
			return nil, fmt.Errorf("config: AUTH_USERS entry %q must be username:bcrypt-hash", pair)
		}
		if !strings.HasPrefix(hash, "$2") {
			return nil, fmt.Errorf("config: AUTH_USERS hash for %q is not a bcrypt hash", name)
		}
		users[name] = hash
	}
	return users, nil
}
