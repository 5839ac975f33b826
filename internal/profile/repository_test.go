// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/profile"
)

/*
TestRepository_RegisterThenLogin runs the register/login flow against the
SQLite store, by identity and by contact.
*/
func TestRepository_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	repository, _ := newSQLiteRepository(t)

	record, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, 1, record.SequentialID)
	assert.Equal(t, fixedNow.Year(), record.JoinedYear)
	assert.GreaterOrEqual(t, record.ViewCount, 3)
	assert.Less(t, record.ViewCount, 18)
	assert.Equal(t, "nova", record.Display.Name)
	assert.Equal(t, profile.DefaultBioLines(), record.BioLines)

	current, ok, err := repository.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nova", current)

	require.NoError(t, repository.ClearSession(ctx))

	tests := []struct {
		name  string
		login string
	}{
		{"identity", "nova"},
		{"identity_mixed_case", "  NoVa "},
		{"contact", "a@b.com"},
		{"contact_mixed_case", "A@B.COM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := repository.Authenticate(ctx, tt.login, "secret1")
			require.NoError(t, err)
			assert.Equal(t, "nova", identity)
		})
	}

	_, err = repository.Authenticate(ctx, "nova", "SECRET1")
	assert.True(t, apperr.IsNotFound(err))

	_, err = repository.Authenticate(ctx, "ghost", "secret1")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRepository_SequentialIDsAcrossRenames verifies N registrations get
exactly 1..N even when renames are interleaved.
*/
func TestRepository_SequentialIDsAcrossRenames(t *testing.T) {
	ctx := context.Background()
	repository, _ := newSQLiteRepository(t)

	var ids []int
	for i := 1; i <= 5; i++ {
		identity := fmt.Sprintf("user%d", i)

		next, err := repository.NextSequentialID(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, next)

		record, err := repository.Create(ctx, identity, identity+"@mail.com", "secret1")
		require.NoError(t, err)
		ids = append(ids, record.SequentialID)

		if i%2 == 0 {
			require.NoError(t, repository.Rename(ctx, identity, fmt.Sprintf("renamed%d", i)))
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)

	renamed, err := repository.Load(ctx, "renamed4")
	require.NoError(t, err)
	assert.Equal(t, 4, renamed.SequentialID)
}

/*
TestRepository_Rename covers the rename contract.
*/
func TestRepository_Rename(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		to       string
		check    func(error) bool
		newOwner string
	}{
		{"same_identity_is_noop", "nova", nil, "nova"},
		{"fresh_identity", "stella", nil, "stella"},
		{"taken_by_other", "luna", apperr.IsConflict, "nova"},
		{"too_short", "no", apperr.IsValidation, "nova"},
		{"bad_charset", "No Va", apperr.IsValidation, "nova"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, _ := newMemoryRepository(t)

			_, err := repository.Create(ctx, "luna", "l@b.com", "secret1")
			require.NoError(t, err)
			_, err = repository.Create(ctx, "nova", "a@b.com", "secret1")
			require.NoError(t, err)

			err = repository.Rename(ctx, "nova", tt.to)
			if tt.check != nil {
				assert.True(t, tt.check(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
			}

			record, err := repository.Load(ctx, tt.newOwner)
			require.NoError(t, err)
			assert.Equal(t, 2, record.SequentialID)

			current, ok, err := repository.CurrentSession(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.newOwner, current)

			stats, err := repository.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, stats.Users)
		})
	}
}

/*
TestRepository_RenameLeavesOtherSessionAlone verifies only a session pointing
at the renamed identity follows it.
*/
func TestRepository_RenameLeavesOtherSessionAlone(t *testing.T) {
	ctx := context.Background()
	repository, _ := newMemoryRepository(t)

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)
	_, err = repository.Create(ctx, "luna", "l@b.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, repository.Rename(ctx, "nova", "stella"))

	current, _, err := repository.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "luna", current)
}

/*
TestRepository_Uniqueness verifies create and allocate reject taken handles.
*/
func TestRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	repository, _ := newMemoryRepository(t)

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)

	_, err = repository.Create(ctx, "nova", "other@b.com", "secret2")
	assert.True(t, apperr.IsConflict(err))

	_, err = repository.AllocateIdentity(ctx, " NOVA ")
	assert.True(t, apperr.IsConflict(err))

	identity, err := repository.AllocateIdentity(ctx, "Stella Ñight!")
	require.NoError(t, err)
	assert.Equal(t, "stellanight", identity)

	_, err = repository.AllocateIdentity(ctx, "!!")
	assert.True(t, apperr.IsValidation(err))

	stats, err := repository.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Users)
}

/*
TestRepository_DuplicateContactFirstMatchWins verifies login by a shared
contact resolves to the earliest record in storage order.
*/
func TestRepository_DuplicateContactFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repository, _ := newMemoryRepository(t)

	_, err := repository.Create(ctx, "first", "same@b.com", "secret1")
	require.NoError(t, err)
	_, err = repository.Create(ctx, "second", "same@b.com", "secret1")
	require.NoError(t, err)

	identity, err := repository.Authenticate(ctx, "same@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "first", identity)

	// A rename moves "first" behind "second" in storage order.
	require.NoError(t, repository.Rename(ctx, "first", "third"))

	identity, err = repository.Authenticate(ctx, "same@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "second", identity)
}

/*
TestRepository_DanglingSessionSelfHeals verifies a session pointing at a
missing record reads as "no session" and is cleared.
*/
func TestRepository_DanglingSessionSelfHeals(t *testing.T) {
	ctx := context.Background()
	repository, store := newMemoryRepository(t)

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)

	// The record disappears outside the process.
	require.NoError(t, store.SaveUsers(ctx, profile.NewDirectory()))

	_, ok, err := repository.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	raw, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, raw)

	next, err := repository.NextSequentialID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

/*
TestRepository_SetSessionRequiresRecord verifies the pointer only targets
existing records.
*/
func TestRepository_SetSessionRequiresRecord(t *testing.T) {
	ctx := context.Background()
	repository, _ := newMemoryRepository(t)

	assert.True(t, apperr.IsNotFound(repository.SetSession(ctx, "ghost")))

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, repository.ClearSession(ctx))
	require.NoError(t, repository.ClearSession(ctx))

	require.NoError(t, repository.SetSession(ctx, "nova"))
	current, ok, err := repository.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nova", current)
}

/*
TestRepository_ViewsAndStats verifies view counting and the live counters.
*/
func TestRepository_ViewsAndStats(t *testing.T) {
	ctx := context.Background()
	repository, _ := newSQLiteRepository(t, profile.WithViewSeed(func() int { return 5 }))

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)
	_, err = repository.Create(ctx, "luna", "l@b.com", "secret1")
	require.NoError(t, err)

	record, err := repository.IncrementViews(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, 6, record.ViewCount)

	_, err = repository.IncrementViews(ctx, "ghost")
	assert.True(t, apperr.IsNotFound(err))

	stats, err := repository.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.Stats{Users: 2, TotalViews: 11, TotalLinks: 2 * len(profile.DefaultLinks())}, stats)
}

/*
TestRepository_LoadReturnsCopies verifies callers cannot mutate stored state.
*/
func TestRepository_LoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repository, _ := newMemoryRepository(t)

	created, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)

	created.Links[0].Title = "mutated"
	created.BioLines = nil

	loaded, err := repository.Load(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultLinks(), loaded.Links)
	assert.Equal(t, profile.DefaultBioLines(), loaded.BioLines)

	_, err = repository.Load(ctx, "ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRepository_RenameSurvivesSessionWriteFailure verifies a committed rename
is reported as success even when the session pointer cannot follow it.
*/
func TestRepository_RenameSurvivesSessionWriteFailure(t *testing.T) {
	ctx := context.Background()
	store := &brokenSession{MemoryStore: profile.NewMemoryStore()}
	repository := profile.NewRepository(store, profile.NewSessionPointer(store), discardLogger())

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)

	store.armed = true
	require.NoError(t, repository.Rename(ctx, "nova", "stella"))

	_, err = repository.Load(ctx, "stella")
	require.NoError(t, err)

	// The pointer still names the old key and reads as signed out.
	_, ok, err := repository.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

/*
TestRepository_UpdateIsAtomic runs concurrent read-modify-write edits and
checks none is lost, and that a failing change writes nothing.
*/
func TestRepository_UpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	repository, _ := newMemoryRepository(t)

	_, err := repository.Create(ctx, "nova", "a@b.com", "secret1")
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repository.Update(ctx, "nova", func(record *profile.Record) error {
				record.Links = append(record.Links, profile.NewLink())
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	record, err := repository.Load(ctx, "nova")
	require.NoError(t, err)
	assert.Len(t, record.Links, len(profile.DefaultLinks())+writers)

	_, err = repository.Update(ctx, "nova", func(record *profile.Record) error {
		record.Links = nil
		return apperr.ValidationError("nope")
	})
	assert.True(t, apperr.IsValidation(err))

	record, err = repository.Load(ctx, "nova")
	require.NoError(t, err)
	assert.Len(t, record.Links, len(profile.DefaultLinks())+writers)

	_, err = repository.Update(ctx, "ghost", func(*profile.Record) error { return nil })
	assert.True(t, apperr.IsNotFound(err))
}
