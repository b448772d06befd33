package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DataDir       string
	CatalogPath   string
	AllowOrigins  []string
	LogFile       string
	PublicBaseURL string
}

// Load reads configuration from the environment, with an optional .env
// file. Every value has a local-first default; nothing is required.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:          getenv("PORT", "8080"),
		DataDir:       getenv("DATA_DIR", "./data"),
		CatalogPath:   getenv("CATALOG_PATH", ""),
		AllowOrigins:  splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogFile:       getenv("LOG_FILE", ""),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
