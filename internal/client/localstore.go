package client

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Storage keys mirroring the browser local storage the UI uses. All three
// are cleared together on logout.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
	KeyCart      = "cart"
)

// LocalStore is a durable key-value cache backed by a single JSON file. It
// holds the session token, the user snapshot, and the local cart mirror.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

// NewLocalStore creates a LocalStore persisting to the given file path. The
// file is created on first write.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{
		path: path,
	}
}

func (s *LocalStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read local store: %w", err)
	}
	entries := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode local store: %w", err)
		}
	}
	return entries, nil
}

// save writes via a temp file and rename so a crash never leaves a
// half-written store.
func (s *LocalStore) save(entries map[string]json.RawMessage) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write local store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace local store: %w", err)
	}
	return nil
}

// Set stores a value under the given key.
func (s *LocalStore) Set(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}
	entries[key] = raw
	return s.save(entries)
}

// Get decodes the value stored under key into out. Returns false when the
// key is absent.
func (s *LocalStore) Get(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return false, err
	}
	raw, ok := entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode value for key %q: %w", key, err)
	}
	return true, nil
}

// Remove deletes the given keys. Missing keys are ignored.
func (s *LocalStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(entries, key)
	}
	return s.save(entries)
}
