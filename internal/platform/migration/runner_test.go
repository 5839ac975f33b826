// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestConvertToPgx5DSN rewrites postgres schemes only.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db/biolink", "pgx5://u:p@db/biolink"},
		{"postgresql://db/biolink", "pgx5://db/biolink"},
		{"pgx5://db/biolink", "pgx5://db/biolink"},
		{"host=db dbname=biolink", "host=db dbname=biolink"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
	}
}

/*
TestRunSQLite_Idempotent applies the embedded migrations twice.
*/
func TestRunSQLite_Idempotent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "biolink.db")

	require.NoError(t, RunSQLite(path, logger))
	require.NoError(t, RunSQLite(path, logger))
}
