package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress  string
	DatabaseURL string
	AdminAPIURL string
	AdminAuth   string
	IngestKey   string
}

// New reads configuration from flags and the environment. DATABASE_URL is
// checked by the caller; ADMIN_API_JSON and ADMIN_AUTH are only needed for
// ingestion and are validated when an ingest is actually requested.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", ":8080", "server address and port")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.AdminAPIURL = getEnv("ADMIN_API_JSON", "")
	// Full Authorization header value, including the "Bearer " prefix.
	cfg.AdminAuth = getEnv("ADMIN_AUTH", "")
	cfg.IngestKey = getEnv("INGEST_KEY", "")

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
