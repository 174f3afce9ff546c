// Package photostore resolves uploaded photo content to stable opaque
// references. Orders only ever carry the references; the content itself
// never enters the order store.
package photostore

import (
	"context"
	"fmt"
	"sync"

	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"

	"github.com/google/uuid"
)

// MemoryPhotoStore keeps uploaded content in memory keyed by a generated
// reference. References are unique for the lifetime of the store.
type MemoryPhotoStore struct {
	mu     sync.RWMutex
	photos map[string][]byte
}

// NewMemoryPhotoStore creates an empty photo store.
func NewMemoryPhotoStore() *MemoryPhotoStore {
	return &MemoryPhotoStore{
		photos: make(map[string][]byte),
	}
}

// Resolve stores the content and returns its reference.
func (s *MemoryPhotoStore) Resolve(_ context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", errs.NewValueIsRequiredError("photo content")
	}

	ref := fmt.Sprintf("photo-%s", uuid.NewString())

	s.mu.Lock()
	s.photos[ref] = content
	s.mu.Unlock()

	return ref, nil
}

// Load returns the content behind a reference.
func (s *MemoryPhotoStore) Load(ref string) ([]byte, bool) {
	s.mu.RLock()
	content, ok := s.photos[ref]
	s.mu.RUnlock()
	return content, ok
}

var _ ports.PhotoStorage = (*MemoryPhotoStore)(nil)
