package editor

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set of generated entry ids.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of characters in a generated id.
var Length = 10

// maxAttempts bounds the retry loop when a generated id collides.
const maxAttempts = 16

// IDSource hands out entry ids that are never repeated within a session,
// including ids of entries that were since deleted.
type IDSource struct {
	seen map[string]struct{}
}

// NewIDSource returns an empty id source.
func NewIDSource() *IDSource {
	return &IDSource{seen: make(map[string]struct{})}
}

// Reserve marks ids as used.
func (s *IDSource) Reserve(ids ...string) {
	for _, id := range ids {
		s.seen[id] = struct{}{}
	}
}

// Next returns a fresh id.
func (s *IDSource) Next() (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id, err := nanoid.Generate(Alphabet, Length)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		if _, dup := s.seen[id]; dup {
			continue
		}
		s.seen[id] = struct{}{}
		return id, nil
	}
	return "", fmt.Errorf("generate id: %d collisions in a row", maxAttempts)
}
