package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Base URL of the GoBarber API, without trailing slash
	APIBaseURL string
	// Timeout applied to every outgoing HTTP request
	HTTPTimeout time.Duration
	// Path of the on-device SQLite store holding the persisted session
	StateDBPath string
}

func LoadConfig() (*Config, error) {
	// .env is only effective locally; ignored when the file does not exist
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  strings.TrimRight(getEnv("GOBARBER_API_URL", "http://localhost:3333"), "/"),
		HTTPTimeout: time.Duration(getEnvInt("GOBARBER_HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		StateDBPath: getEnv("GOBARBER_STATE_DB", ""),
	}

	if cfg.StateDBPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.Println("WARNING: cannot resolve user config dir, using working directory for state")
			dir = "."
		}
		cfg.StateDBPath = filepath.Join(dir, "gobarber", "state.db")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
