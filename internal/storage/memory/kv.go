// Package memory provides in-process implementations of the storage ports.
package memory

import (
	"context"
	"sync"
)

// KV is a map-backed domain.KVStore, the in-process stand-in for browser
// local storage.
type KV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewKV() *KV { return &KV{m: map[string]string{}} }

func (s *KV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *KV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
	return nil
}

func (s *KV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}
