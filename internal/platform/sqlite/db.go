// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens the embedded SQLite database used by the default
// STORE_DRIVER.
//
// The driver is modernc.org/sqlite, so the binary stays cgo-free.
package sqlite

import (
	stdctx "context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/taibuivan/biolink/internal/platform/migration"
)

const (
	pragmas     = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	pingTimeout = 2 * time.Second
)

// Open migrates and opens the SQLite file at path, creating parent
// directories as needed.
//
// # Parameters
//   - context: Context for the initial ping.
//   - path: Filesystem path of the database file.
//   - logger: Structured logger for connection events.
func Open(context stdctx.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create data dir: %w", err)
	}

	if err := migration.RunSQLite(cleanPath, logger); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cleanPath+pragmas)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// A single connection keeps writes serialized at the driver level too.
	db.SetMaxOpenConns(1)

	if err := Ping(context, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", cleanPath))

	return db, nil
}

// Ping verifies that the SQLite handle is usable.
func Ping(context stdctx.Context, db *sql.DB) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}
