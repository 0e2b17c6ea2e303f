package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	DBPath          string
	MigrationsPath  string
	JWTSecret       string
	StripeSecretKey string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source.
func Load() *Config {
	// Missing .env is fine; environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		Port:            getenv("PORT", ":8080"),
		DBPath:          getenv("DB_PATH", "./data/gympass.db"),
		MigrationsPath:  getenv("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:       getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
