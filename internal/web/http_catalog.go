// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"net/http"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/platform/respond"
)

// badges handles GET /api/v1/catalog/badges.
func (handler *Handler) badges(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, catalog.Badges())
}

// socials handles GET /api/v1/catalog/socials.
func (handler *Handler) socials(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, catalog.Socials())
}

// templates handles GET /api/v1/catalog/templates.
func (handler *Handler) templates(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, catalog.Templates())
}

// notices handles GET /api/v1/notices. Each notice is delivered once.
func (handler *Handler) notices(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.toasts.Drain())
}
