package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string

	// AdminPassword is the shared secret the admin surface is gated on.
	// When AdminPasswordHashed is set it holds a bcrypt hash instead of
	// the plaintext secret.
	AdminPassword       string
	AdminPasswordHashed bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		DBPath:        os.Getenv("DB_PATH"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	if cfg.Port == "" {
		cfg.Port = "5001"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "fish.db"
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASHED"); v == "1" || strings.EqualFold(v, "true") {
		cfg.AdminPasswordHashed = true
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("env ADMIN_PASSWORD must be set")
	}
	return cfg, nil
}
