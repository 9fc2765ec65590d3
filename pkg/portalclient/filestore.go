package portalclient

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists tokens as a JSON file so sessions survive process
// restarts. Writes go through a temp file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() map[Role]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[Role]string{}
	}
	tokens := map[Role]string{}
	if err := json.Unmarshal(data, &tokens); err != nil {
		return map[Role]string{}
	}
	return tokens
}

func (s *FileStore) save(tokens map[Role]string) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Token(role Role) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[role]
}

func (s *FileStore) SetToken(role Role, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens := s.load()
	tokens[role] = token
	return s.save(tokens)
}

func (s *FileStore) Clear(role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens := s.load()
	delete(tokens, role)
	return s.save(tokens)
}

func (s *FileStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(map[Role]string{})
}
