package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	JWTSecret  string
	ServerPort string
	SeedDemo   bool
}

func Load() *Config {
	// a missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		SeedDemo:   getEnv("SEED_DEMO", "true") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
