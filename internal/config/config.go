// Package config holds server configuration sourced from environment
// variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath = "./batchreq.db"
	defaultPort   = "8080"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath string
	Port   string
}

// Load reads environment variables and returns a populated Config. A local
// .env file is loaded first when present; production should use real env
// injection.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBPath: os.Getenv("BATCHREQ_DB_PATH"),
		Port:   os.Getenv("BATCHREQ_PORT"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return cfg
}
