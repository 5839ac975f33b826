// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/api"
	"github.com/taibuivan/biolink/internal/platform/config"
	"github.com/taibuivan/biolink/internal/platform/constants"
	"github.com/taibuivan/biolink/internal/profile"
	"github.com/taibuivan/biolink/internal/web"
)

func newServer(t *testing.T, checks ...api.HealthCheck) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := profile.NewMemoryStore()
	repository := profile.NewRepository(store, profile.NewSessionPointer(store), logger)

	toasts := web.NewToastQueue(web.DefaultToastCapacity)
	service := profile.NewService(repository, toasts, logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{Checks: checks}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	server := api.NewServer(ctx, cfg, logger, repository, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Web:       web.NewHandler(service, toasts),
	})
	return server.Handler()
}

/*
TestServer_Health verifies liveness and the readiness aggregation.
*/
func TestServer_Health(t *testing.T) {
	tests := []struct {
		name   string
		checks []api.HealthCheck
		status int
		state  string
	}{
		{"no_checks", nil, http.StatusOK, "ready"},
		{"healthy", []api.HealthCheck{{Name: "sqlite", Check: func(context.Context) error { return nil }}}, http.StatusOK, "ready"},
		{"degraded", []api.HealthCheck{
			{Name: "sqlite", Check: func(context.Context) error { return nil }},
			{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
		}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newServer(t, tt.checks...)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, recorder.Code)

			recorder = httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.status, recorder.Code)

			var body struct {
				Data struct {
					Status string `json:"status"`
					Checks []struct {
						Name string `json:"name"`
						OK   bool   `json:"ok"`
					} `json:"checks"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.state, body.Data.Status)
			assert.Len(t, body.Data.Checks, len(tt.checks))
		})
	}
}

/*
TestServer_MiddlewareChain checks request IDs, CORS and the session resolver.
*/
func TestServer_MiddlewareChain(t *testing.T) {
	handler := newServer(t)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"username":"nova","email":"a@b.com","password":"secret1"}`))
	request.Header.Set(constants.HeaderOrigin, "http://localhost:3000")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "@nova!")

	request = httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set(constants.HeaderXRequestID, "req-123")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "req-123", recorder.Header().Get(constants.HeaderXRequestID))
}
