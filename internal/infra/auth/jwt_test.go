package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	token, err := manager.Issue(42, "trader", "premium", "session-abc")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "trader" {
		t.Errorf("Username = %q", claims.Username)
	}
	if claims.PlanType != "premium" {
		t.Errorf("PlanType = %q", claims.PlanType)
	}
	if claims.SessionID != "session-abc" {
		t.Errorf("SessionID = %q", claims.SessionID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-one", time.Hour)
	verifier, _ := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue(1, "trader", "premium", "s1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected verification failure with different secret")
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
