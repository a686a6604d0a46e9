package handler

import (
	"testing"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"bearer scheme", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"bare token", "abc123", "abc123"},
		{"padded token", "Bearer  abc123 ", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bearerToken(tt.header); got != tt.want {
				t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseDateParam(t *testing.T) {
	t.Run("empty is absent", func(t *testing.T) {
		got, err := parseDateParam("")
		if err != nil || got != nil {
			t.Errorf("parseDateParam(\"\") = (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("valid date", func(t *testing.T) {
		got, err := parseDateParam("2025-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.Format(dateLayout) != "2025-03-15" {
			t.Errorf("parseDateParam = %v, want 2025-03-15", got)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		if _, err := parseDateParam("15/03/2025"); err == nil {
			t.Error("expected error for malformed date")
		}
	})
}
