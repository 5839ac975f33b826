// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/biolink/internal/platform/database/schema"
)

// PostgresStore keeps both blobs in biolink.store. It implements [UserStore]
// and [SessionStore].
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL implementation of the blob stores.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// LoadUsers reads the users blob.
//
// # Returns
//
// An empty [Directory] when the row does not exist yet.
func (store *PostgresStore) LoadUsers(context context.Context) (*Directory, error) {
	value, err := store.get(context, usersKey)
	if err != nil {
		return nil, fmt.Errorf("postgres_store_load_users_failed: %w", err)
	}
	directory, err := decodeDirectory(value)
	if err != nil {
		return nil, fmt.Errorf("postgres_store_load_users_failed: %w", err)
	}
	return directory, nil
}

// SaveUsers replaces the users blob with a single UPSERT.
func (store *PostgresStore) SaveUsers(context context.Context, directory *Directory) error {
	value, err := encodeDirectory(directory)
	if err != nil {
		return err
	}
	if err := store.put(context, usersKey, value); err != nil {
		return fmt.Errorf("postgres_store_save_users_failed: %w", err)
	}
	return nil
}

// LoadSession reads the session pointer.
func (store *PostgresStore) LoadSession(context context.Context) (string, error) {
	value, err := store.get(context, sessionKey)
	if err != nil {
		return "", fmt.Errorf("postgres_store_load_session_failed: %w", err)
	}
	return value, nil
}

// SaveSession stores the session pointer.
func (store *PostgresStore) SaveSession(context context.Context, identity string) error {
	if err := store.put(context, sessionKey, identity); err != nil {
		return fmt.Errorf("postgres_store_save_session_failed: %w", err)
	}
	return nil
}

// ClearSession deletes the session pointer row.
func (store *PostgresStore) ClearSession(context context.Context) error {
	table := schema.PostgresStore
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.Key)

	if _, err := store.pool.Exec(context, query, sessionKey); err != nil {
		return fmt.Errorf("postgres_store_clear_session_failed: %w", err)
	}
	return nil
}

func (store *PostgresStore) get(context context.Context, key string) (string, error) {
	table := schema.PostgresStore
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.Value, table.Table, table.Key)

	var value string
	err := store.pool.QueryRow(context, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (store *PostgresStore) put(context context.Context, key, value string) error {
	table := schema.PostgresStore
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, now())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = now()`,
		table.Table, table.Key, table.Value, table.UpdatedAt,
		table.Key, table.Value, table.Value, table.UpdatedAt,
	)

	_, err := store.pool.Exec(context, query, key, value)
	return err
}
