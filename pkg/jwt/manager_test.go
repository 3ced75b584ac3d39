package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", 8*time.Hour)

	token, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role admin, got %q", claims.Role)
	}
	if claims.Subject != "admin" {
		t.Errorf("expected subject admin, got %q", claims.Subject)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := NewManager("secret-a", 8*time.Hour)
	other := NewManager("secret-b", 8*time.Hour)

	token, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := other.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := m.Verify(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", 8*time.Hour)

	if _, err := m.Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
