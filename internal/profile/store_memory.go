// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"sync"
)

// MemoryStore keeps both blobs in process memory, encoded the same way the
// durable stores encode them. It implements [UserStore] and [SessionStore].
type MemoryStore struct {
	mu      sync.Mutex
	users   string
	session string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadUsers decodes the users blob.
func (store *MemoryStore) LoadUsers(_ context.Context) (*Directory, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return decodeDirectory(store.users)
}

// SaveUsers encodes and replaces the users blob.
func (store *MemoryStore) SaveUsers(_ context.Context, directory *Directory) error {
	value, err := encodeDirectory(directory)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.users = value
	return nil
}

// LoadSession returns the session pointer.
func (store *MemoryStore) LoadSession(_ context.Context) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.session, nil
}

// SaveSession sets the session pointer.
func (store *MemoryStore) SaveSession(_ context.Context, identity string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.session = identity
	return nil
}

// ClearSession removes the session pointer.
func (store *MemoryStore) ClearSession(_ context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.session = ""
	return nil
}
