// Package security wraps the credential primitives: password hashing and
// opaque session token generation.
package security

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTLDays is the session lifetime used when config leaves it unset.
const DefaultTokenTTLDays = 7

// HashPassword hashes a plaintext password with bcrypt. A cost of 0 picks
// the bcrypt default.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken returns a new opaque session token. The value carries no
// claims; validity lives in the session_token table.
func IssueToken() string {
	raw := uuid.NewString() + uuid.NewString()
	return strings.ReplaceAll(raw, "-", "")
}

// TokenExpiry returns the expiry timestamp for a token issued now.
func TokenExpiry(days int) time.Time {
	if days <= 0 {
		days = DefaultTokenTTLDays
	}
	return time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)
}
