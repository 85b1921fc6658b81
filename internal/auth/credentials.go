// Package auth supplies the credentials header for Lockstep API requests.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/golang-jwt/jwt/v5"
)

// expiryBuffer is how long before its expiry a token stops being sent.
const expiryBuffer = 30 * time.Second

// Credentials applies authentication to an outgoing request.
type Credentials interface {
	Apply(ctx context.Context, header http.Header) error
}

// APIKey authenticates with the Api-Key header.
type APIKey struct {
	key string
}

// NewAPIKey returns API key credentials.
func NewAPIKey(key string) (*APIKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("api key: %w", constants.ErrEmptyCredential)
	}

	return &APIKey{key: key}, nil
}

// Apply implements Credentials.
func (a *APIKey) Apply(_ context.Context, header http.Header) error {
	header.Set(constants.HeaderAPIKey, a.key)

	return nil
}

// Token is a bearer token with an optional expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token can still be sent. A token without an
// expiry is always valid.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(expiryBuffer).Before(t.ExpiresAt)
}

// BearerToken authenticates with "Authorization: Bearer".
type BearerToken struct {
	token *Token
}

// NewBearerToken returns bearer credentials. When raw is a JWT carrying an
// exp claim, the expiry is checked before each request.
func NewBearerToken(raw string) (*BearerToken, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("bearer token: %w", constants.ErrEmptyCredential)
	}

	token := &Token{AccessToken: raw}

	expiresAt, err := ParseJWTExpiry(raw)
	if err == nil {
		token.ExpiresAt = expiresAt
	}

	return &BearerToken{token: token}, nil
}

// Token returns the underlying token.
func (b *BearerToken) Token() *Token {
	return b.token
}

// Apply implements Credentials.
func (b *BearerToken) Apply(_ context.Context, header http.Header) error {
	if !b.token.Valid() {
		return fmt.Errorf("%w (expired at %s)", constants.ErrTokenExpired, b.token.ExpiresAt.Format(time.RFC3339))
	}

	header.Set(constants.HeaderAuthorization, "Bearer "+b.token.AccessToken)

	return nil
}

// ParseJWTExpiry reads the exp claim of a JWT without verifying its signature.
func ParseJWTExpiry(raw string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}

	_, _, err := parser.ParseUnverified(raw, claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", constants.ErrInvalidJWTFormat, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", constants.ErrInvalidJWTFormat, err)
	}

	if exp == nil {
		return time.Time{}, constants.ErrNoExpirationClaim
	}

	return exp.Time, nil
}
