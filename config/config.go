package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. It is read once and
// passed explicitly into each component.
type Config struct {
	Port        string `env:"PORT" env-default:"8000"`
	DatabaseURL string `env:"DATABASE_URL" env-default:"sqlite://admin_portal.db"`

	// Signing key for access tokens.
	SecretKey       string `env:"SECRET_KEY" env-default:"your-secret-key-change-in-production"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"1440"`

	// Key for source database passwords at rest. Falls back to SecretKey.
	CredentialsKey string `env:"SOURCE_CREDENTIALS_KEY"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://127.0.0.1:3000"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	LogDev   bool   `env:"LOG_DEV" env-default:"false"`
}

// LoadConfig reads a .env file if one exists and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if cfg.TokenTTLMinutes <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", cfg.TokenTTLMinutes)
	}
	return cfg, nil
}

// EncryptionKey returns the key used for stored source credentials.
func (c Config) EncryptionKey() string {
	if c.CredentialsKey != "" {
		return c.CredentialsKey
	}
	return c.SecretKey
}
