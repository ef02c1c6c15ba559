// Package memory provides an in-process Storage backend. It is the default
// for development and the substrate fake used throughout the tests.
package memory

import (
	"context"
	"sync"
)

// Storage is a string-keyed blob store held in a map. A mutex guards the map
// because the chat watcher reads concurrently with request handlers.
type Storage struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func New() *Storage {
	return &Storage{blobs: make(map[string]string)}
}

func (s *Storage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[key]
	return v, ok, nil
}

func (s *Storage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
