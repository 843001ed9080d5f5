// Package jwtmw provides JWT issuance, validation and the gin authorization guard.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation failure modes. Each one surfaces as 401 at the HTTP boundary;
// they stay distinct so the guard can log the actual cause.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("malformed token")

	// ErrTokenExpired is returned when the embedded expiry has elapsed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for signature mismatches and any other
	// verification failure.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrMissingSubject is returned when a verified token carries no usable
	// subject claim.
	ErrMissingSubject = errors.New("token has no subject claim")
)

// TokenService issues and validates signed bearer tokens. The secret and TTL
// are fixed at construction; rotating the secret invalidates every
// outstanding token at once.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the provided secret and token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed HS256 token whose subject is the user ID, along
// with the absolute expiry embedded in it.
func (s *TokenService) Issue(userID uint) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate verifies the signature and expiry of a token and extracts the
// subject user ID. Signature comparison is constant time inside golang-jwt's
// HMAC method.
func (s *TokenService) Validate(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrMissingSubject
	}
	return uint(sub), nil
}
