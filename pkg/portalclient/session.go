// Package portalclient is the Go client for the MediFlow portal API. It
// carries the session rules the portal frontends share: one bearer token per
// role, token selection by URL prefix, global logout on any 401, and the
// client-side views over appointments, health records and activity logs.
package portalclient

import (
	"sync"
)

type Role string

const (
	RolePatient   Role = "patient"
	RolePhysician Role = "physician"
)

func (r Role) Valid() bool { return r == RolePatient || r == RolePhysician }

// CredentialStore holds at most one token per role. Both roles may be signed
// in at once; they never share a token.
type CredentialStore interface {
	Token(role Role) string
	SetToken(role Role, token string) error
	Clear(role Role) error
	// ClearAll removes both roles' tokens. Used on global logout, where a
	// stale credential for either role must not survive.
	ClearAll() error
}

// MemoryStore is the in-process CredentialStore.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[Role]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[Role]string)}
}

func (s *MemoryStore) Token(role Role) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[role]
}

func (s *MemoryStore) SetToken(role Role, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[role] = token
	return nil
}

func (s *MemoryStore) Clear(role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, role)
	return nil
}

func (s *MemoryStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[Role]string)
	return nil
}
