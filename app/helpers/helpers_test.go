package helpers_test

import (
	"testing"

	"github.com/yilmazatalay/go-catalog/app/helpers"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Blue Shirt", "blue-shirt"},
		{"turkish characters", "Yün Çorap", "yun-corap"},
		{"extra whitespace", "  Denim   Jacket ", "denim-jacket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := helpers.GenerateSlug(tt.in); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash := helpers.HashPassword("s3cret")
	if hash == "" || hash == "s3cret" {
		t.Fatalf("HashPassword returned %q", hash)
	}
	if !helpers.PasswordCompare(hash, []byte("s3cret")) {
		t.Error("PasswordCompare rejected the original password")
	}
	if helpers.PasswordCompare(hash, []byte("wrong")) {
		t.Error("PasswordCompare accepted a wrong password")
	}
}
