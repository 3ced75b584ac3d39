package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken token is malformed or has a bad signature
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken token is past its expiry
	ErrExpiredToken = errors.New("expired token")
)

// AdminClaims - payload of the admin session token.
// The session is a time-limited marker, not a user identity:
// there is a single shared admin password and no user accounts.
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Manager issues and verifies HS256 admin session tokens
type Manager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewManager creates a token manager with the given secret and token lifetime
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secretKey: []byte(secret),
		ttl:       ttl,
	}
}

// Generate creates a signed session token valid for the manager's TTL
func (m *Manager) Generate() (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify parses and validates a session token
func (m *Manager) Verify(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// TTL returns the configured token lifetime
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
