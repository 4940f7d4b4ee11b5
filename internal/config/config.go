package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the development fallback for token signing. It is
// well-known and must never be used in production; Validate rejects it there.
const DefaultSecretKey = "your-secret-key-change-in-production"

type Config struct {
	DatabaseURL              string
	Port                     string
	Environment              string   // "development" or "production"
	SecretKey                string   // Symmetric secret for JWT token signing
	Algorithm                string   // JWT signing algorithm
	AccessTokenExpireMinutes int      // JWT token expiration time in minutes
	HasherSchemes            []string // Password hashing schemes, preference order
	CORSOrigins              []string // Allowed CORS origins
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		SecretKey:                getEnv("SECRET_KEY", DefaultSecretKey),
		Algorithm:                getEnv("ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		HasherSchemes:            getEnvSlice("HASHER_SCHEMES", []string{"argon2id", "bcrypt"}),
		CORSOrigins:              getEnvSlice("CORS_ORIGINS", []string{"*"}),
	}
}

// Validate checks the options that must fail fast at startup. It also logs
// the known-insecure defaults so they are never trusted silently.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.SecretKey == DefaultSecretKey {
		if c.Environment == "production" {
			return errors.New("SECRET_KEY must be changed from its default in production")
		}
		log.Println("WARNING: using the default SECRET_KEY; set SECRET_KEY before deploying")
	}
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			log.Println("WARNING: CORS allows all origins; set CORS_ORIGINS before deploying")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
