// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/profile"
)

// blobStore is what every backend implements.
type blobStore interface {
	profile.UserStore
	profile.SessionStore
}

/*
checkBlobContract exercises the two-blob contract every backend must honor.
store must start empty.
*/
func checkBlobContract(t *testing.T, store blobStore) {
	t.Helper()
	ctx := context.Background()

	// ── Empty store ──────────────────────────────────────────────────────

	directory, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, directory.Len())

	session, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, session)

	// ── Users keep storage order and contents ────────────────────────────

	written := profile.NewDirectory()
	for i, identity := range []string{"zed", "amy", "mia"} {
		written.Put(&profile.Record{Identity: identity, SequentialID: i + 1, BioLines: []string{"hi " + identity}})
	}
	require.NoError(t, store.SaveUsers(ctx, written))

	directory, err = store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zed", "amy", "mia"}, identities(directory))
	amy, ok := directory.Get("amy")
	require.True(t, ok)
	assert.Equal(t, []string{"hi amy"}, amy.BioLines)

	// Saving replaces the whole blob.
	directory.Rekey("zed", "zoe")
	require.NoError(t, store.SaveUsers(ctx, directory))
	directory, err = store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zoe", "amy", "mia"}, identities(directory))

	// ── Session pointer ──────────────────────────────────────────────────

	require.NoError(t, store.SaveSession(ctx, "amy"))
	require.NoError(t, store.SaveSession(ctx, "mia"))
	session, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mia", session)

	require.NoError(t, store.ClearSession(ctx))
	require.NoError(t, store.ClearSession(ctx))
	session, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, session)
}

/*
TestStores_BlobContract runs the contract on the backends available without
external servers. Postgres and Redis run it under the integration tag.
*/
func TestStores_BlobContract(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		checkBlobContract(t, profile.NewMemoryStore())
	})

	t.Run("sqlite", func(t *testing.T) {
		_, store := newSQLiteRepository(t)
		checkBlobContract(t, store)
	})
}
