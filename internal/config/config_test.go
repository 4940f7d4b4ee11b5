package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("HASHER_SCHEMES", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, []string{"argon2id", "bcrypt"}, cfg.HasherSchemes)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")
	t.Setenv("SECRET_KEY", "a-real-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("HASHER_SCHEMES", "bcrypt, argon2id")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")

	cfg := Load()

	assert.Equal(t, "postgres://localhost/accounts", cfg.DatabaseURL)
	assert.Equal(t, "a-real-secret", cfg.SecretKey)
	assert.Equal(t, 15, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, []string{"bcrypt", "argon2id"}, cfg.HasherSchemes)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins)
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := &Config{SecretKey: "s", Environment: "development"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidateRejectsEmptySecret(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/accounts", Environment: "development"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/accounts",
		SecretKey:   DefaultSecretKey,
		Environment: "production",
	}

	assert.Error(t, cfg.Validate())
}

func TestValidateAllowsDefaultSecretInDevelopment(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/accounts",
		SecretKey:   DefaultSecretKey,
		Environment: "development",
	}

	assert.NoError(t, cfg.Validate())
}
