package portalclient

import (
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	s.SetToken(RolePatient, "pt")
	s.SetToken(RolePhysician, "dt")

	if s.Token(RolePatient) != "pt" || s.Token(RolePhysician) != "dt" {
		t.Fatal("tokens not stored independently")
	}

	s.Clear(RolePatient)
	if s.Token(RolePatient) != "" {
		t.Error("patient token should be cleared")
	}
	if s.Token(RolePhysician) != "dt" {
		t.Error("physician token must survive a patient-only clear")
	}

	s.ClearAll()
	if s.Token(RolePhysician) != "" {
		t.Error("ClearAll must drop both tokens")
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)

	if err := s.SetToken(RolePatient, "pt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetToken(RolePhysician, "dt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh store on the same file sees the persisted tokens.
	s2 := NewFileStore(path)
	if s2.Token(RolePatient) != "pt" || s2.Token(RolePhysician) != "dt" {
		t.Error("tokens did not survive reload")
	}

	s2.ClearAll()
	if NewFileStore(path).Token(RolePatient) != "" {
		t.Error("ClearAll must persist")
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "session.json"))
	if s.Token(RolePatient) != "" {
		t.Error("missing file should read as empty")
	}
	if err := s.SetToken(RolePatient, "pt"); err != nil {
		t.Fatalf("store should create its directory: %v", err)
	}
}
