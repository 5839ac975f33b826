// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/platform/sqlite"
	"github.com/taibuivan/biolink/internal/profile"
)

type notice struct {
	message string
	kind    profile.NoticeKind
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (notifier *recordingNotifier) Notify(_ context.Context, message string, kind profile.NoticeKind) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.notices = append(notifier.notices, notice{message, kind})
}

func (notifier *recordingNotifier) last() notice {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.notices) == 0 {
		return notice{}
	}
	return notifier.notices[len(notifier.notices)-1]
}

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryRepository(t *testing.T, options ...profile.RepositoryOption) (*profile.Repository, *profile.MemoryStore) {
	t.Helper()

	store := profile.NewMemoryStore()
	options = append([]profile.RepositoryOption{profile.WithClock(func() time.Time { return fixedNow })}, options...)
	repository := profile.NewRepository(store, profile.NewSessionPointer(store), discardLogger(), options...)
	return repository, store
}

func newSQLiteRepository(t *testing.T, options ...profile.RepositoryOption) (*profile.Repository, *profile.SQLiteStore) {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "biolink.db"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := profile.NewSQLiteStore(db)
	options = append([]profile.RepositoryOption{profile.WithClock(func() time.Time { return fixedNow })}, options...)
	repository := profile.NewRepository(store, profile.NewSessionPointer(store), discardLogger(), options...)
	return repository, store
}

// brokenSession is a memory store whose session writes fail once armed.
type brokenSession struct {
	*profile.MemoryStore
	armed bool
}

func (store *brokenSession) SaveSession(context context.Context, identity string) error {
	if store.armed {
		return errors.New("session store offline")
	}
	return store.MemoryStore.SaveSession(context, identity)
}
