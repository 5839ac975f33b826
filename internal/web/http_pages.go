// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"net/http"

	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/platform/constants"
	requestutil "github.com/taibuivan/biolink/internal/platform/request"
	"github.com/taibuivan/biolink/internal/platform/respond"
	"github.com/taibuivan/biolink/internal/render"
)

// home handles GET / by redirecting to the page the session resolves to.
func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ResolvePage(request.Context(), constants.PageDashboard)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	http.Redirect(writer, request, "/"+page, http.StatusSeeOther)
}

// authPage handles GET /auth.
func (handler *Handler) authPage(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body := render.AuthPage(render.AuthView{Users: stats.Users})
	respond.HTML(writer, request, http.StatusOK, render.Layout("Sign in", body))
}

// dashboardPage handles GET /dashboard. The route requires a session.
func (handler *Handler) dashboardPage(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Load ───────────────────────────────────────────────────────────

	record, err := handler.service.Me(request.Context())
	if apperr.IsNotFound(err) {
		http.Redirect(writer, request, "/"+constants.PageAuth, http.StatusSeeOther)
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Render ─────────────────────────────────────────────────────────

	view := render.ProjectDashboard(record, stats, handler.now())
	respond.HTML(writer, request, http.StatusOK, render.Layout("Dashboard", render.DashboardPage(view, record)))
}

// publicPage handles GET /u/{identity}. Every visit counts one view.
func (handler *Handler) publicPage(writer http.ResponseWriter, request *http.Request) {
	identity := requestutil.Param(request, "identity")

	record, err := handler.service.RecordView(request.Context(), identity)
	if apperr.IsNotFound(err) {
		respond.HTML(writer, request, http.StatusNotFound, render.Layout("Not found", render.NotFoundPage(identity)))
		return
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := render.ProjectPublic(record)
	respond.HTML(writer, request, http.StatusOK, render.Layout("@"+record.Identity, render.PublicPage(view)))
}
