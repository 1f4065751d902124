package config

import (
	"os"
	"time"
)

// Config holds the environment-driven settings of the server process.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// DBPath is the directory of the Badger store.
	DBPath string
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// AdminUser and AdminPasswordHash (bcrypt) are the credentials the
	// login endpoint accepts. With no hash configured, login always fails.
	AdminUser         string
	AdminPasswordHash string
	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development.
func Load() *Config {
	cfg := &Config{
		Addr:              getenv("INKWELL_ADDR", ":8080"),
		DBPath:            getenv("INKWELL_DB_PATH", "data/badger"),
		JWTSecret:         getenv("INKWELL_JWT_SECRET", ""),
		AdminUser:         getenv("INKWELL_ADMIN_USER", "admin"),
		AdminPasswordHash: getenv("INKWELL_ADMIN_PASSWORD_HASH", ""),
		TokenTTL:          24 * time.Hour,
	}
	if ttl := os.Getenv("INKWELL_TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
