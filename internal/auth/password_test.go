package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid password", password: "a-long-enough-password", wantErr: nil},
		{name: "too short", password: "short", wantErr: ErrPasswordTooShort},
		{name: "too long", password: strings.Repeat("x", 73), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, 10)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("HashPassword() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HashPassword() unexpected error: %v", err)
			}
			if hash == tt.password {
				t.Error("hash equals plaintext")
			}
			if err := CheckPassword(tt.password, hash); err != nil {
				t.Errorf("CheckPassword() failed on valid password: %v", err)
			}
		})
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("a-long-enough-password", 10)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}

	if err := CheckPassword("a-different-password", hash); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrInvalidPassword)
	}
}

func TestGenerateAPIToken(t *testing.T) {
	plaintext, hash, err := GenerateAPIToken()
	if err != nil {
		t.Fatalf("GenerateAPIToken() failed: %v", err)
	}
	if len(plaintext) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(plaintext))
	}
	if hash != HashToken(plaintext) {
		t.Error("returned hash does not match HashToken(plaintext)")
	}

	other, _, err := GenerateAPIToken()
	if err != nil {
		t.Fatalf("GenerateAPIToken() failed: %v", err)
	}
	if other == plaintext {
		t.Error("two generated tokens are identical")
	}
}
