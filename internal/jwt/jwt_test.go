package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func decodeClaims(t *testing.T, token string) gojwt.MapClaims {
	t.Helper()

	claims := gojwt.MapClaims{}
	parsed, err := gojwt.ParseWithClaims(token, claims, func(*gojwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestIssueSetsExpiry(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)

	before := time.Now()
	token, err := svc.Issue(map[string]any{"sub": "user@example.com"}, time.Hour)
	require.NoError(t, err)

	claims := decodeClaims(t, token)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)

	// Expiry is issuance time + requested TTL, within scheduling jitter
	assert.WithinDuration(t, before.Add(time.Hour), exp.Time, 5*time.Second)
}

func TestIssueDefaultTTL(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)

	before := time.Now()
	token, err := svc.Issue(map[string]any{"sub": "user@example.com"})
	require.NoError(t, err)

	claims := decodeClaims(t, token)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)

	assert.WithinDuration(t, before.Add(30*time.Minute), exp.Time, 5*time.Second)
}

func TestIssueCarriesClaims(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testSecret, "HS256", time.Minute)
	require.NoError(t, err)

	token, err := svc.Issue(map[string]any{"sub": "user@example.com", "role": "tester"})
	require.NoError(t, err)

	claims := decodeClaims(t, token)
	assert.Equal(t, "user@example.com", claims["sub"])
	assert.Equal(t, "tester", claims["role"])
}

func TestIssueDoesNotMutateCallerClaims(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testSecret, "HS256", time.Minute)
	require.NoError(t, err)

	claims := map[string]any{"sub": "user@example.com"}
	_, err = svc.Issue(claims)
	require.NoError(t, err)

	_, hasExp := claims["exp"]
	assert.False(t, hasExp)
}

func TestNewJWTServiceUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testSecret, "HS9000", time.Minute)
	assert.Error(t, err)
}
