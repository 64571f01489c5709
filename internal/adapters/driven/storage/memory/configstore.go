package memory

import (
	"sync"

	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps configuration values in memory. It backs the settings
// service in tests and anywhere no config file should be touched.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get retrieves a raw value and whether the key is present.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// GetString retrieves a string value, "" for absent or non-string keys.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	str, _ := s.values[key].(string)
	return str
}

// GetBool retrieves a boolean value, false for absent or non-bool keys.
func (s *ConfigStore) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, _ := s.values[key].(bool)
	return b
}

// Set stores a value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save is a no-op; values only live in memory.
func (s *ConfigStore) Save() error {
	return nil
}

// Load is a no-op; values only live in memory.
func (s *ConfigStore) Load() error {
	return nil
}

// Path names the store for display.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
