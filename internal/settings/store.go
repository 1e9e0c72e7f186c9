package settings

import (
	"encoding/json"
	"fmt"

	"github.com/asalkapakli/ykscountdown/internal/logging"
)

// Store owns the committed configuration and its persisted copy.
type Store struct {
	backend Backend
	key     string
	logger  *logging.Logger
	current Configuration
}

// NewStore creates a store over backend. An empty key selects StorageKey.
// The store starts with the defaults until Load is called.
func NewStore(backend Backend, key string, logger *logging.Logger) *Store {
	if key == "" {
		key = StorageKey
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		backend: backend,
		key:     key,
		logger:  logger,
		current: Defaults(),
	}
}

// Key returns the storage key.
func (s *Store) Key() string {
	return s.key
}

// Load reads and migrates the persisted blob. Missing, unreadable or
// malformed data yields the defaults; Load never fails.
func (s *Store) Load() Configuration {
	s.current = s.read()
	return s.current.Clone()
}

func (s *Store) read() Configuration {
	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		s.logger.LogSettingsEvent("load", s.key, err)
		return Defaults()
	}
	if !ok {
		s.logger.Verbose("no stored settings under %s, using defaults", s.key)
		return Defaults()
	}
	cfg, err := MigrateBytes(data)
	if err != nil {
		s.logger.LogSettingsEvent("load", s.key, err)
		return Defaults()
	}
	s.logger.LogSettingsEvent("load", s.key, nil)
	return cfg
}

// Current returns a copy of the committed configuration.
func (s *Store) Current() Configuration {
	return s.current.Clone()
}

// Save persists cfg without changing the committed snapshot.
func (s *Store) Save(cfg Configuration) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := s.backend.Set(s.key, data); err != nil {
		s.logger.LogSettingsEvent("save", s.key, err)
		return err
	}
	s.logger.LogSettingsEvent("save", s.key, nil)
	return nil
}

// Replace persists cfg and then makes it the committed snapshot. When the
// write fails the previous snapshot and blob stay in place.
func (s *Store) Replace(cfg Configuration) error {
	next := cfg.Clone()
	if err := s.Save(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

// Reset restores and persists the built-in defaults. The defaults are
// returned even when persisting them fails.
func (s *Store) Reset() (Configuration, error) {
	def := Defaults()
	if err := s.Replace(def); err != nil {
		return def, err
	}
	s.logger.Info("settings reset to defaults")
	return def.Clone(), nil
}

// Import migrates an exported blob and commits it. Unlike Load, a malformed
// blob is reported to the caller.
func (s *Store) Import(data []byte) (Configuration, error) {
	cfg, err := MigrateBytes(data)
	if err != nil {
		return Configuration{}, err
	}
	if err := s.Replace(cfg); err != nil {
		return Configuration{}, err
	}
	return cfg.Clone(), nil
}

// Export returns the committed configuration as indented JSON.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}

// Encode serializes a configuration in the persisted format.
func Encode(cfg Configuration) ([]byte, error) {
	data, err := json.Marshal(cfg.Clone())
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}
