package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService issues signed, time-limited access tokens
type JWTService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewJWTService creates a JWT service. The algorithm name is resolved
// against the jwt library's registry (e.g. "HS256").
func NewJWTService(secret, algorithm string, ttl time.Duration) (*JWTService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", algorithm)
	}

	return &JWTService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue signs the given claims with an expiry of now + ttl. When ttl is
// omitted the configured default applies. The claims map is copied, so the
// caller's map is never mutated; claim content (including the subject) is
// the caller's responsibility.
func (s *JWTService) Issue(claims map[string]any, ttl ...time.Duration) (string, error) {
	expireIn := s.ttl
	if len(ttl) > 0 {
		expireIn = ttl[0]
	}

	toEncode := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		toEncode[k] = v
	}
	toEncode["exp"] = jwt.NewNumericDate(time.Now().Add(expireIn))

	token, err := jwt.NewWithClaims(s.method, toEncode).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}
