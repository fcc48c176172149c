package formtoken

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid form token")
	ErrExpiredToken = errors.New("form token has expired")
)

// FormClaims identify one rendered instance of the application form
type FormClaims struct {
	Form string `json:"form"`
	jwt.RegisteredClaims
}

// InstanceID is the unique id of the rendered form
func (c *FormClaims) InstanceID() string {
	return c.ID
}

// Manager issues and validates form tokens
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewManager creates a Manager. An empty secret is replaced with a random
// per-process one, so tokens do not survive a restart.
func NewManager(secret, issuer string, ttl time.Duration) (*Manager, error) {
	key := []byte(secret)
	if len(key) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate form token secret: %w", err)
		}
		key = []byte(hex.EncodeToString(buf))
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Manager{secret: key, issuer: issuer, ttl: ttl}, nil
}

// Issue creates a token for a freshly rendered form
func (m *Manager) Issue(form string) (string, error) {
	now := time.Now()
	claims := FormClaims{
		Form: form,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign form token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims
func (m *Manager) Validate(tokenString string) (*FormClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &FormClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*FormClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
