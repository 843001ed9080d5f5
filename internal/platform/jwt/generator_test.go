package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		ttl    time.Duration
	}{
		{"basic user", 1, time.Hour},
		{"large user id", 999999, 24 * time.Hour},
		{"short ttl", 42, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewTokenService("test-secret", tt.ttl)
			token, expiresAt, err := svc.Issue(tt.userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token == "" {
				t.Fatal("expected non-empty token")
			}

			// Expiry is absolute and roughly now+ttl
			wantExpiry := time.Now().Add(tt.ttl)
			if expiresAt.Before(wantExpiry.Add(-5*time.Second)) || expiresAt.After(wantExpiry.Add(5*time.Second)) {
				t.Errorf("expected expiry near %v, got %v", wantExpiry, expiresAt)
			}

			got, err := svc.Validate(token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.userID {
				t.Errorf("expected subject %d, got %d", tt.userID, got)
			}
		})
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	t.Parallel()

	// Negative TTL issues a token that is already past its expiry
	svc := NewTokenService("test-secret", -time.Minute)
	token, _, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("secret-a", time.Hour)
	token, _, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A rotated secret must reject every previously issued token
	validator := NewTokenService("secret-b", time.Hour)
	_, err = validator.Validate(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			if !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("expected ErrTokenMalformed, got %v", err)
			}
		})
	}
}

func TestTokenService_Validate_MissingSubject(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	// Well-signed token with no sub claim
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrMissingSubject) {
		t.Errorf("expected ErrMissingSubject, got %v", err)
	}
}

func TestTokenService_Validate_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("test-secret", time.Hour)

	// alg=none must never validate
	claims := jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Error("expected validation to fail for alg=none token")
	}
}
