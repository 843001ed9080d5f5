// Package security provides one-way password hashing and verification.
package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyDigest is a valid bcrypt digest of a throwaway password. Login flows
// compare against it when the user does not exist so that the work factor is
// paid on every attempt, keeping response timing uniform.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns a salted bcrypt digest of the plaintext password.
// cost outside the valid bcrypt range falls back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword checks a candidate password against a stored digest.
// A mismatch returns (false, nil); a non-nil error means the stored digest
// itself is malformed and should be treated as data corruption, not as a
// failed login.
func VerifyPassword(digest, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("corrupt password digest: %w", err)
}
