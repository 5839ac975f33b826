// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"fmt"
)

// SessionPointer is the process-wide "who is signed in" state.
//
// # Lifecycle
//
//   - Init: whatever the session blob holds, usually nothing.
//   - Set: on registration and successful authentication.
//   - Clear: on logout, or when a read finds it pointing at a missing record.
//
// There is exactly one SessionPointer per process. It is constructed by the
// composition root and handed to the [Repository] by reference.
type SessionPointer struct {
	store SessionStore
}

// NewSessionPointer wraps the session blob store.
func NewSessionPointer(store SessionStore) *SessionPointer {
	return &SessionPointer{store: store}
}

// raw returns the stored identity without checking that it resolves.
func (pointer *SessionPointer) raw(context context.Context) (string, error) {
	identity, err := pointer.store.LoadSession(context)
	if err != nil {
		return "", fmt.Errorf("profile_session_load_failed: %w", err)
	}
	return identity, nil
}

func (pointer *SessionPointer) set(context context.Context, identity string) error {
	if err := pointer.store.SaveSession(context, identity); err != nil {
		return fmt.Errorf("profile_session_save_failed: %w", err)
	}
	return nil
}

func (pointer *SessionPointer) clear(context context.Context) error {
	if err := pointer.store.ClearSession(context); err != nil {
		return fmt.Errorf("profile_session_clear_failed: %w", err)
	}
	return nil
}
