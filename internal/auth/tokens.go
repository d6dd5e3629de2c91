// Package auth guards the API with a static API key and short-lived
// HMAC-signed access tokens.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Header carrying the static API key
const APIKeyHeader = "X-API-Key"

var (
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Manager issues and verifies credentials
type Manager struct {
	secretKey     []byte
	signingMethod jwt.SigningMethod
	tokenTTL      time.Duration
}

// Config configures the auth manager
type Config struct {
	SecretKey string
	// Algorithm names the HMAC signing method (HS256, HS384, HS512)
	Algorithm string
	TokenTTL  time.Duration
}

// NewManager creates an auth manager for the configured algorithm
func NewManager(cfg Config) (*Manager, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}

	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", cfg.Algorithm)
	}

	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}

	return &Manager{
		secretKey:     []byte(cfg.SecretKey),
		signingMethod: method,
		tokenTTL:      ttl,
	}, nil
}

// TokenTTL returns the configured access-token lifetime
func (m *Manager) TokenTTL() time.Duration { return m.tokenTTL }

// CheckAPIKey compares the presented key against the configured secret
func (m *Manager) CheckAPIKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), m.secretKey) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

// IssueToken creates a signed access token for the subject
func (m *Manager) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		Issuer:    "content-studio",
	}

	token := jwt.NewWithClaims(m.signingMethod, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a signed token and returns its subject
func (m *Manager) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != m.signingMethod.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return m.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
