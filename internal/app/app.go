// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package app is the composition root shared by the HTTP server and the CLI.

It opens the configured stores, builds the single process-wide session
pointer and hands both to the profile repository and service.

# Startup Sequence

 1. Build the structured logger.
 2. Open the users and session stores (migrating SQL backends).
 3. Construct the repository and the service with the caller's notifiers.
*/
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/taibuivan/biolink/internal/platform/config"
	"github.com/taibuivan/biolink/internal/platform/constants"
	"github.com/taibuivan/biolink/internal/profile"
)

// App bundles the wired components.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Stores     *Stores
	Repository *profile.Repository
	Service    *profile.Service
}

// NewLogger returns the JSON logger every process uses, tagged with the app name.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

/*
New wires an [App] from configuration.

Parameters:
  - context: context.Context (bounds store connection)
  - cfg: *config.Config
  - logger: *slog.Logger
  - notifiers: Receivers of user-facing notices. The log notifier is always added.

Returns:
  - *App: Call Close when done
  - error: Store failures
*/
func New(context context.Context, cfg *config.Config, logger *slog.Logger, notifiers ...profile.Notifier) (*App, error) {
	stores, err := OpenStores(context, cfg, logger)
	if err != nil {
		return nil, err
	}

	session := profile.NewSessionPointer(stores.Session)
	repository := profile.NewRepository(stores.Users, session, logger)

	fanout := append(profile.Notifiers{profile.NewLogNotifier(logger)}, notifiers...)
	service := profile.NewService(repository, fanout, logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Stores:     stores,
		Repository: repository,
		Service:    service,
	}, nil
}

// Close releases the stores.
func (app *App) Close() {
	app.Stores.Close()
}
