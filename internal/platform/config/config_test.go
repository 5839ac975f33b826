// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/platform/config"
)

/*
TestLoad_Defaults verifies a bare environment boots on SQLite.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SESSION_DRIVER", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, config.DriverSQLite, cfg.SessionDriver)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.Uses(config.DriverSQLite))
	assert.False(t, cfg.Uses(config.DriverRedis))
}

/*
TestLoad_DriverRequirements checks driver-specific settings.
*/
func TestLoad_DriverRequirements(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"postgres_without_url", map[string]string{"STORE_DRIVER": "postgres"}, true},
		{"postgres_with_url", map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/biolink"}, false},
		{"redis_session_without_url", map[string]string{"SESSION_DRIVER": "redis"}, true},
		{"redis_session_with_url", map[string]string{"SESSION_DRIVER": "redis", "REDIS_URL": "redis://localhost:6379/0"}, false},
		{"memory_needs_nothing", map[string]string{"STORE_DRIVER": "memory"}, false},
		{"unknown_driver", map[string]string{"STORE_DRIVER": "mongo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"STORE_DRIVER", "SESSION_DRIVER", "DATABASE_URL", "REDIS_URL"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
