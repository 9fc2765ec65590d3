package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	ti := NewTokenIssuer("test-secret", 12*time.Hour)
	accountID := uuid.New()

	tok, err := ti.Issue(accountID, RolePatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ti.Verify(tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("account id = %v, want %v", claims.AccountID, accountID)
	}
	if claims.Role != RolePatient {
		t.Errorf("role = %q, want patient", claims.Role)
	}
}

func TestTokenIssuer_InvalidRole(t *testing.T) {
	ti := NewTokenIssuer("test-secret", 12*time.Hour)
	if _, err := ti.Issue(uuid.New(), "admin"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	ti := NewTokenIssuer("test-secret", -time.Hour)
	tok, err := ti.Issue(uuid.New(), RolePhysician)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ti.Verify(tok); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	tok, _ := ti.Issue(uuid.New(), RolePatient)

	other := NewTokenIssuer("other-secret", time.Hour)
	if _, err := other.Verify(tok); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}
