// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"net/http"

	requestutil "github.com/taibuivan/biolink/internal/platform/request"
	"github.com/taibuivan/biolink/internal/platform/respond"
	"github.com/taibuivan/biolink/internal/profile"
	"github.com/taibuivan/biolink/internal/render"
)

// sessionResponse reports who is signed in after register or login.
type sessionResponse struct {
	Identity string `json:"identity"`
}

// register handles POST /api/v1/auth/register requests.
//
// # Returns
//   - Writes HTTP 201 Created with the editor projection of the new profile.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the username is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input profile.RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Business Logic ─────────────────────────────────────────────────

	record, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Response Formatting ────────────────────────────────────────────

	respond.Created(writer, render.ProjectEditor(record))
}

// login handles POST /api/v1/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK with the signed-in identity.
//   - Writes HTTP 400 Bad Request for empty fields.
//   - Writes HTTP 404 Not Found when no profile matches.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input profile.LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	identity, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse{Identity: identity})
}

// logout handles POST /api/v1/auth/logout requests.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Logout(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
