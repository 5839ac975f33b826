// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/platform/validate"
	"github.com/taibuivan/biolink/pkg/handle"
)

// Registration seeds the view counter uniformly in [minSeedViews, maxSeedViews).
const (
	minSeedViews = 3
	maxSeedViews = 18
)

// # Repository

// Repository is the durable identity -> [Record] mapping plus the session
// pointer.
//
// # Consistency
//
// Every call re-reads the users blob, so records removed or edited outside
// the process are observed. Every mutation writes the full snapshot before
// returning. A mutex gives all calls a total order.
type Repository struct {
	mu      sync.Mutex
	users   UserStore
	session *SessionPointer
	logger  *slog.Logger

	now       func() time.Time
	seedViews func() int
}

// RepositoryOption customizes a [Repository].
type RepositoryOption func(*Repository)

// WithClock overrides the wall clock used for JoinedYear.
func WithClock(now func() time.Time) RepositoryOption {
	return func(repository *Repository) { repository.now = now }
}

// WithViewSeed overrides the initial view count generator.
func WithViewSeed(seed func() int) RepositoryOption {
	return func(repository *Repository) { repository.seedViews = seed }
}

// NewRepository constructs a [Repository] over the given stores.
func NewRepository(users UserStore, session *SessionPointer, logger *slog.Logger, options ...RepositoryOption) *Repository {
	repository := &Repository{
		users:   users,
		session: session,
		logger:  logger,
		now:     time.Now,
		seedViews: func() int {
			return minSeedViews + rand.IntN(maxSeedViews-minSeedViews)
		},
	}
	for _, option := range options {
		option(repository)
	}
	return repository
}

// # Identity Allocation

/*
AllocateIdentity normalizes candidate and checks that it is free.

Parameters:
  - context: context.Context
  - candidate: string (free-form user input)

Returns:
  - string: The normalized identity
  - error: VALIDATION_ERROR for a bad handle, CONFLICT when taken
*/
func (repository *Repository) AllocateIdentity(context context.Context, candidate string) (string, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	identity := handle.From(candidate)
	if err := checkIdentity(identity); err != nil {
		return "", err
	}

	directory, err := repository.load(context)
	if err != nil {
		return "", err
	}

	if directory.Has(identity) {
		return "", errIdentityTaken
	}

	return identity, nil
}

// NextSequentialID returns max(existing)+1, or 1 for an empty store. It is
// recomputed from storage on every call.
func (repository *Repository) NextSequentialID(context context.Context) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	directory, err := repository.load(context)
	if err != nil {
		return 0, err
	}
	return directory.MaxSequentialID() + 1, nil
}

// # Lifecycle

/*
Create registers a new profile and signs it in.

Description: Builds the record from defaults, assigns the next sequential ID,
persists the users blob and then points the session at the new identity.

Parameters:
  - context: context.Context
  - identity: string (already normalized)
  - contact: string
  - secret: string

Returns:
  - *Record: A copy of the stored record
  - error: VALIDATION_ERROR, CONFLICT or storage failures
*/
func (repository *Repository) Create(context context.Context, identity, contact, secret string) (*Record, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := checkIdentity(identity); err != nil {
		return nil, err
	}

	directory, err := repository.load(context)
	if err != nil {
		return nil, err
	}

	if directory.Has(identity) {
		return nil, errIdentityTaken
	}

	record := newRecord(
		identity,
		contact,
		secret,
		directory.MaxSequentialID()+1,
		repository.now().Year(),
		repository.seedViews(),
	)
	directory.Put(record)

	if err := repository.save(context, directory); err != nil {
		return nil, err
	}

	if err := repository.session.set(context, identity); err != nil {
		return nil, err
	}

	repository.logger.Info("profile_created",
		slog.String("identity", identity),
		slog.Int("sequential_id", record.SequentialID),
	)

	return record.Clone(), nil
}

/*
Authenticate resolves a login by identity or contact and signs it in.

Description: The input is trimmed. It matches a record when it equals the
identity (compared lowercased) or the contact (compared case-insensitively).
The secret must be equal byte for byte. The first match in storage order wins.

Parameters:
  - context: context.Context
  - login: string
  - secret: string

Returns:
  - string: The signed-in identity
  - error: NOT_FOUND when nothing matches
*/
func (repository *Repository) Authenticate(context context.Context, login, secret string) (string, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	login = strings.TrimSpace(login)
	lowered := strings.ToLower(login)

	directory, err := repository.load(context)
	if err != nil {
		return "", err
	}

	for _, record := range directory.Records() {
		matchesLogin := record.Identity == lowered ||
			(record.Credentials.Contact != "" && strings.EqualFold(record.Credentials.Contact, login))

		if matchesLogin && record.Credentials.Secret == secret {
			if err := repository.session.set(context, record.Identity); err != nil {
				return "", err
			}
			repository.logger.Info("profile_authenticated", slog.String("identity", record.Identity))
			return record.Identity, nil
		}
	}

	return "", apperr.NotFoundMessage("Invalid login or password")
}

/*
Rename re-keys a profile atomically.

Description: The new identity must already satisfy the handle rule. Renaming
to the same identity is a successful no-op. The old and new keys change in a
single snapshot write. A session pointing at the old identity follows it; if
moving the pointer fails the rename still succeeds and the stale pointer
self-heals to no session.

Parameters:
  - context: context.Context
  - oldIdentity: string
  - newIdentity: string

Returns:
  - error: VALIDATION_ERROR, CONFLICT, NOT_FOUND or storage failures
*/
func (repository *Repository) Rename(context context.Context, oldIdentity, newIdentity string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := checkIdentity(newIdentity); err != nil {
		return err
	}

	directory, err := repository.load(context)
	if err != nil {
		return err
	}

	if !directory.Has(oldIdentity) {
		return apperr.NotFound("Profile")
	}

	if newIdentity == oldIdentity {
		return nil
	}

	if directory.Has(newIdentity) {
		return errIdentityTaken
	}

	directory.Rekey(oldIdentity, newIdentity)

	if err := repository.save(context, directory); err != nil {
		return err
	}

	// The rename is committed. A pointer left behind reads as no session.
	if err := repository.followRename(context, oldIdentity, newIdentity); err != nil {
		repository.logger.Error("session_follow_failed",
			slog.String("from", oldIdentity),
			slog.String("to", newIdentity),
			slog.Any("error", err),
		)
	}

	repository.logger.Info("profile_renamed",
		slog.String("from", oldIdentity),
		slog.String("to", newIdentity),
	)

	return nil
}

// # Reads & Patches

// Load returns a copy of the record for identity, or NOT_FOUND.
func (repository *Repository) Load(context context.Context, identity string) (*Record, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	directory, err := repository.load(context)
	if err != nil {
		return nil, err
	}

	record, ok := directory.Get(identity)
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return record.Clone(), nil
}

/*
Patch shallow-merges partial into the stored record.

Parameters:
  - context: context.Context
  - identity: string
  - partial: Patch

Returns:
  - *Record: A copy of the updated record
  - error: VALIDATION_ERROR, NOT_FOUND or storage failures
*/
func (repository *Repository) Patch(context context.Context, identity string, partial Patch) (*Record, error) {
	return repository.mutate(context, identity, "profile_patched", func(record *Record) error {
		return partial.applyTo(record)
	})
}

/*
Update applies change to the stored record under the repository lock.

Description: The record change sees is the stored one, so read-modify-write
edits such as toggles or appends cannot lose concurrent updates. If change
fails nothing is written.

Parameters:
  - context: context.Context
  - identity: string
  - change: func(*Record) error

Returns:
  - *Record: A copy of the updated record
  - error: NOT_FOUND, the error of change, or storage failures
*/
func (repository *Repository) Update(context context.Context, identity string, change func(*Record) error) (*Record, error) {
	return repository.mutate(context, identity, "profile_updated", change)
}

// IncrementViews adds one to the view counter of identity.
func (repository *Repository) IncrementViews(context context.Context, identity string) (*Record, error) {
	return repository.mutate(context, identity, "", func(record *Record) error {
		record.ViewCount++
		return nil
	})
}

// Stats aggregates the live counters over all records.
func (repository *Repository) Stats(context context.Context) (Stats, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	directory, err := repository.load(context)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Users: directory.Len()}
	for _, record := range directory.Records() {
		stats.TotalViews += record.ViewCount
		stats.TotalLinks += len(record.Links)
	}
	return stats, nil
}

// # Session

/*
CurrentSession resolves the session pointer.

Description: A pointer at a record that no longer exists is cleared and
reported as no session. This is not an error.

Returns:
  - string: The identity
  - bool: Whether a resolvable session exists
  - error: Storage failures only
*/
func (repository *Repository) CurrentSession(context context.Context) (string, bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	identity, err := repository.session.raw(context)
	if err != nil || identity == "" {
		return "", false, err
	}

	directory, err := repository.load(context)
	if err != nil {
		return "", false, err
	}

	if !directory.Has(identity) {
		if err := repository.session.clear(context); err != nil {
			return "", false, err
		}
		repository.logger.Warn("session_cleared_dangling", slog.String("identity", identity))
		return "", false, nil
	}

	return identity, true, nil
}

// Current implements the HTTP session resolver contract.
func (repository *Repository) Current(context context.Context) (string, bool, error) {
	return repository.CurrentSession(context)
}

// SetSession points the session at identity, which must exist.
func (repository *Repository) SetSession(context context.Context, identity string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	directory, err := repository.load(context)
	if err != nil {
		return err
	}
	if !directory.Has(identity) {
		return apperr.NotFound("Profile")
	}
	return repository.session.set(context, identity)
}

// ClearSession signs out. Clearing an empty session is a no-op.
func (repository *Repository) ClearSession(context context.Context) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if err := repository.session.clear(context); err != nil {
		return err
	}
	repository.logger.Info("session_cleared")
	return nil
}

// # Internals

var errIdentityTaken = apperr.Conflict("This username is already taken")

func checkIdentity(identity string) error {
	v := &validate.Validator{}
	return v.Identity("username", identity).Err()
}

func (repository *Repository) mutate(context context.Context, identity, event string, change func(*Record) error) (*Record, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	directory, err := repository.load(context)
	if err != nil {
		return nil, err
	}

	record, ok := directory.Get(identity)
	if !ok {
		return nil, apperr.NotFound("Profile")
	}

	if err := change(record); err != nil {
		return nil, err
	}

	if err := repository.save(context, directory); err != nil {
		return nil, err
	}

	if event != "" {
		repository.logger.Info(event, slog.String("identity", identity))
	}

	return record.Clone(), nil
}

// followRename moves a session pointing at oldIdentity to newIdentity.
func (repository *Repository) followRename(context context.Context, oldIdentity, newIdentity string) error {
	current, err := repository.session.raw(context)
	if err != nil || current != oldIdentity {
		return err
	}
	return repository.session.set(context, newIdentity)
}

func (repository *Repository) load(context context.Context) (*Directory, error) {
	directory, err := repository.users.LoadUsers(context)
	if err != nil {
		return nil, fmt.Errorf("profile_repository_load_failed: %w", err)
	}
	return directory, nil
}

func (repository *Repository) save(context context.Context, directory *Directory) error {
	if err := repository.users.SaveUsers(context, directory); err != nil {
		return fmt.Errorf("profile_repository_save_failed: %w", err)
	}
	return nil
}
