// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web contains the HTTP delivery layer for the profile use cases.

# Architecture

Handlers act as the gatekeepers to the system. They are responsible for:
  - JSON request decoding.
  - Mapping HTTP requests to [profile.Service] calls.
  - Projecting records through [render] before they leave the process.

They contain no business logic. Every outcome is already reported to the
notifier by the service; handlers only choose the status code.
*/
package web

import (
	"embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/biolink/internal/platform/middleware"
	requestutil "github.com/taibuivan/biolink/internal/platform/request"
	"github.com/taibuivan/biolink/internal/platform/respond"
	"github.com/taibuivan/biolink/internal/profile"
)

//go:embed static
var assets embed.FS

// Handler implements the JSON API and the HTML pages.
type Handler struct {
	service *profile.Service
	toasts  *ToastQueue
	now     func() time.Time
}

// HandlerOption customizes a [Handler].
type HandlerOption func(*Handler)

// WithNow overrides the clock used for greetings.
func WithNow(now func() time.Time) HandlerOption {
	return func(handler *Handler) { handler.now = now }
}

// NewHandler constructs a [Handler]. toasts must be one of the notifiers the
// service reports to, so GET /notices sees what the service emitted.
func NewHandler(service *profile.Service, toasts *ToastQueue, options ...HandlerOption) *Handler {
	handler := &Handler{
		service: service,
		toasts:  toasts,
		now:     time.Now,
	}
	for _, option := range options {
		option(handler)
	}
	return handler
}

// Routes returns the JSON API mounted under /api/v1.
//
// # Endpoints
//   - /auth     : register, login, logout.
//   - /me       : the signed-in profile and its editors.
//   - /profiles : public reads.
//   - /catalog  : badges, socials and templates.
//   - /stats    : live counters.
//   - /notices  : pending toasts.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", handler.register)
		auth.Post("/login", handler.login)
		auth.Post("/logout", handler.logout)
	})

	router.Route("/me", func(me chi.Router) {
		me.Use(signedIn)

		me.Get("/", handler.me)
		me.Get("/completion", handler.completion)
		me.Patch("/customize", handler.customize)

		me.Put("/username", handler.rename)
		me.Put("/email", handler.updateEmail)
		me.Put("/password", handler.updatePassword)
		me.Put("/avatar", handler.setAvatar)
		me.Put("/banner", handler.setBanner)
		me.Post("/template", handler.applyTemplate)

		me.Put("/links", handler.saveLinks)
		me.Post("/links", handler.addLink)
		me.Post("/links/{index}/glyph", handler.cycleLinkGlyph)

		me.Put("/socials/{network}", handler.saveSocial)
		me.Delete("/socials/{network}", handler.deleteSocial)

		me.Post("/badges/{badge}/toggle", handler.toggleBadge)

		me.Post("/discord", handler.connectDiscord)
		me.Delete("/discord", handler.disconnectDiscord)
	})

	router.Get("/profiles/{identity}", handler.profile)
	router.Get("/stats", handler.stats)

	router.Route("/catalog", func(catalog chi.Router) {
		catalog.Get("/badges", handler.badges)
		catalog.Get("/socials", handler.socials)
		catalog.Get("/templates", handler.templates)
	})

	router.Get("/notices", handler.notices)

	return router
}

// signedIn rejects /me requests without a resolvable session before any
// body is read.
func signedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, err := requestutil.RequiredIdentity(request); err != nil {
			respond.Error(writer, request, err)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// Pages returns the HTML routes mounted at the root.
//
// # Endpoints
//   - GET /              : redirects to the page the session resolves to.
//   - GET /auth          : sign-in forms.
//   - GET /dashboard     : the signed-in overview (303 to /auth without a session).
//   - GET /u/{identity}  : the public profile, counting one view.
//   - GET /static/*      : embedded stylesheet and script.
func (handler *Handler) Pages() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.home)
	router.Get("/auth", handler.authPage)
	router.With(middleware.RequireSession("/auth")).Get("/dashboard", handler.dashboardPage)
	router.Get("/u/{identity}", handler.publicPage)
	router.Handle("/static/*", http.FileServerFS(assets))

	return router
}
