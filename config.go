package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// config is read once at startup from the environment (optionally seeded
// from .env by godotenv).
type config struct {
	Port            string
	Env             string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// loadConfig reads config from env vars, applying defaults for unset values.
func loadConfig() (config, error) {
	cfg := config{
		Port:            getenvDefault("PORT", "3000"),
		Env:             os.Getenv("ENV"),
		AllowedOrigins:  splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: 10 * time.Second,
	}
	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", raw)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitList splits a comma-separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
