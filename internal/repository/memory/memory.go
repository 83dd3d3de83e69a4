// Package memory is an in-process DocumentRepository used by tests and
// by runs without a DATABASE_URL. Documents survive only for the life
// of the process.
package memory

import (
	"context"
	"sync"
)

type Repository struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func New() *Repository {
	return &Repository{docs: make(map[string][]byte)}
}

func (r *Repository) Load(_ context.Context, name string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.docs[name]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (r *Repository) Save(_ context.Context, name string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	r.docs[name] = stored
	return nil
}
