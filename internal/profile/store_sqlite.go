// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/biolink/internal/platform/database/schema"
)

// SQLiteStore keeps both blobs in the embedded store table. It implements
// [UserStore] and [SessionStore].
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an opened, migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// LoadUsers reads the users blob.
func (store *SQLiteStore) LoadUsers(context context.Context) (*Directory, error) {
	value, _, err := store.get(context, usersKey)
	if err != nil {
		return nil, fmt.Errorf("sqlite_store_load_users_failed: %w", err)
	}
	directory, err := decodeDirectory(value)
	if err != nil {
		return nil, fmt.Errorf("sqlite_store_load_users_failed: %w", err)
	}
	return directory, nil
}

// SaveUsers replaces the users blob.
func (store *SQLiteStore) SaveUsers(context context.Context, directory *Directory) error {
	value, err := encodeDirectory(directory)
	if err != nil {
		return err
	}
	if err := store.put(context, usersKey, value); err != nil {
		return fmt.Errorf("sqlite_store_save_users_failed: %w", err)
	}
	return nil
}

// LoadSession reads the session pointer.
func (store *SQLiteStore) LoadSession(context context.Context) (string, error) {
	value, _, err := store.get(context, sessionKey)
	if err != nil {
		return "", fmt.Errorf("sqlite_store_load_session_failed: %w", err)
	}
	return value, nil
}

// SaveSession stores the session pointer.
func (store *SQLiteStore) SaveSession(context context.Context, identity string) error {
	if err := store.put(context, sessionKey, identity); err != nil {
		return fmt.Errorf("sqlite_store_save_session_failed: %w", err)
	}
	return nil
}

// ClearSession deletes the session pointer row.
func (store *SQLiteStore) ClearSession(context context.Context) error {
	table := schema.SQLiteStore
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table.Table, table.Key)

	if _, err := store.db.ExecContext(context, query, sessionKey); err != nil {
		return fmt.Errorf("sqlite_store_clear_session_failed: %w", err)
	}
	return nil
}

func (store *SQLiteStore) get(context context.Context, key string) (string, bool, error) {
	table := schema.SQLiteStore
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, table.Value, table.Table, table.Key)

	var value string
	err := store.db.QueryRowContext(context, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (store *SQLiteStore) put(context context.Context, key, value string) error {
	table := schema.SQLiteStore
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)
		ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s, %s = excluded.%s`,
		table.Table, table.Key, table.Value, table.UpdatedAt,
		table.Key, table.Value, table.Value, table.UpdatedAt, table.UpdatedAt,
	)

	_, err := store.db.ExecContext(context, query, key, value, time.Now().UnixMilli())
	return err
}
