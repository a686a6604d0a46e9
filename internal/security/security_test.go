package security

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the plaintext password")
	}

	if !VerifyPassword("s3cret", hash) {
		t.Error("correct password did not verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password verified")
	}
}

func TestIssueToken(t *testing.T) {
	a := IssueToken()
	b := IssueToken()

	if a == b {
		t.Error("two issued tokens are identical")
	}
	if strings.Contains(a, "-") {
		t.Errorf("token contains separators: %q", a)
	}
	if len(a) != 64 {
		t.Errorf("token length = %d, want 64", len(a))
	}
}

func TestTokenExpiry(t *testing.T) {
	now := time.Now().UTC()

	exp := TokenExpiry(7)
	if d := exp.Sub(now); d < 6*24*time.Hour || d > 8*24*time.Hour {
		t.Errorf("expiry %v not about 7 days out", d)
	}

	// Zero and negative fall back to the default lifetime.
	for _, days := range []int{0, -3} {
		exp := TokenExpiry(days)
		if !exp.After(now) {
			t.Errorf("TokenExpiry(%d) = %v, want future", days, exp)
		}
	}
}
