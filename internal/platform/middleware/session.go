// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/biolink/internal/platform/ctxutil"
	"github.com/taibuivan/biolink/internal/platform/respond"
)

// SessionResolver resolves the process-wide session pointer.
//
// Current must self-heal: a pointer at a missing record reports no session.
type SessionResolver interface {
	Current(ctx context.Context) (identity string, ok bool, err error)
}

// Session resolves the signed-in identity once per request and stores it in
// the context. Requests without a session proceed anonymously.
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity, ok, err := resolver.Current(request.Context())
			if err != nil {
				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "session_resolve_failed",
					slog.Any("error", err),
				)
				respond.Error(writer, request, err)
				return
			}

			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			if carrier, isCarrier := writer.(identityCarrier); isCarrier {
				carrier.setIdentity(identity)
			}

			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession redirects anonymous requests to target.
//
// Used for HTML pages. JSON routes report NOT_FOUND through the handlers.
func RequireSession(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if ctxutil.GetIdentity(request.Context()) == "" {
				http.Redirect(writer, request, target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
