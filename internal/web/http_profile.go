// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"context"
	"net/http"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/completion"
	requestutil "github.com/taibuivan/biolink/internal/platform/request"
	"github.com/taibuivan/biolink/internal/platform/respond"
	"github.com/taibuivan/biolink/internal/profile"
	"github.com/taibuivan/biolink/internal/render"
)

// valueRequest carries a single edited field.
type valueRequest struct {
	Value string `json:"value"`
}

// templateRequest names a catalog template.
type templateRequest struct {
	Name string `json:"name"`
}

// linksRequest carries the whole edited link list.
type linksRequest struct {
	Links []render.LinkRow `json:"links"`
}

// socialRequest carries one network URL. An empty URL removes the network.
type socialRequest struct {
	URL string `json:"url"`
}

// badgeResponse reports the outcome of a toggle.
type badgeResponse struct {
	Badge   catalog.BadgeID   `json:"badge"`
	Active  bool              `json:"active"`
	Profile render.EditorView `json:"profile"`
	Score   completion.Score  `json:"completion"`
}

// # Reads

// me handles GET /api/v1/me and returns the dashboard projection.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Me(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, render.ProjectDashboard(record, stats, handler.now()))
}

// completion handles GET /api/v1/me/completion.
func (handler *Handler) completion(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Me(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, completion.Evaluate(record))
}

// profile handles GET /api/v1/profiles/{identity}. It does not count a view.
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Profile(request.Context(), requestutil.Param(request, "identity"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, render.ProjectPublic(record))
}

// stats handles GET /api/v1/stats.
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

// # Customize

// customize handles PATCH /api/v1/me/customize.
//
// # Returns
//   - Writes HTTP 200 OK with the editor projection.
//   - Writes HTTP 400 Bad Request for malformed JSON.
//   - Writes HTTP 404 Not Found without a session.
func (handler *Handler) customize(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var form render.EditorForm
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Business Logic ─────────────────────────────────────────────────

	record, err := handler.service.SaveCustomize(request.Context(), render.CollectEditorPatch(form))

	// ── 3. Response Formatting ────────────────────────────────────────────

	handler.writeEditor(writer, request, record, err)
}

func (handler *Handler) setAvatar(writer http.ResponseWriter, request *http.Request) {
	handler.withValue(writer, request, handler.service.SetAvatar)
}

func (handler *Handler) setBanner(writer http.ResponseWriter, request *http.Request) {
	handler.withValue(writer, request, handler.service.SetBanner)
}

// applyTemplate handles POST /api/v1/me/template.
func (handler *Handler) applyTemplate(writer http.ResponseWriter, request *http.Request) {
	var input templateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.ApplyTemplate(request.Context(), input.Name)
	handler.writeEditor(writer, request, record, err)
}

// # Settings

func (handler *Handler) rename(writer http.ResponseWriter, request *http.Request) {
	handler.withValue(writer, request, handler.service.Rename)
}

func (handler *Handler) updateEmail(writer http.ResponseWriter, request *http.Request) {
	handler.withValue(writer, request, handler.service.UpdateEmail)
}

func (handler *Handler) updatePassword(writer http.ResponseWriter, request *http.Request) {
	handler.withValue(writer, request, handler.service.UpdatePassword)
}

func (handler *Handler) connectDiscord(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.ConnectDiscord(request.Context())
	handler.writeEditor(writer, request, record, err)
}

func (handler *Handler) disconnectDiscord(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.DisconnectDiscord(request.Context())
	handler.writeEditor(writer, request, record, err)
}

// # Links

// saveLinks handles PUT /api/v1/me/links. The body replaces the whole list.
func (handler *Handler) saveLinks(writer http.ResponseWriter, request *http.Request) {
	var input linksRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.SaveLinks(request.Context(), render.CollectLinksPatch(input.Links))
	handler.writeEditor(writer, request, record, err)
}

// addLink handles POST /api/v1/me/links and appends a default row.
func (handler *Handler) addLink(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.AddLink(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, render.ProjectEditor(record))
}

// cycleLinkGlyph handles POST /api/v1/me/links/{index}/glyph.
func (handler *Handler) cycleLinkGlyph(writer http.ResponseWriter, request *http.Request) {
	index, err := requestutil.IntParam(request, "index")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.CycleLinkGlyph(request.Context(), index)
	handler.writeEditor(writer, request, record, err)
}

// # Socials

// saveSocial handles PUT /api/v1/me/socials/{network}.
func (handler *Handler) saveSocial(writer http.ResponseWriter, request *http.Request) {
	var input socialRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	network := catalog.Network(requestutil.Param(request, "network"))
	record, err := handler.service.SaveSocial(request.Context(), network, input.URL)
	handler.writeEditor(writer, request, record, err)
}

// deleteSocial handles DELETE /api/v1/me/socials/{network}.
func (handler *Handler) deleteSocial(writer http.ResponseWriter, request *http.Request) {
	network := catalog.Network(requestutil.Param(request, "network"))
	record, err := handler.service.DeleteSocial(request.Context(), network)
	handler.writeEditor(writer, request, record, err)
}

// # Badges

// toggleBadge handles POST /api/v1/me/badges/{badge}/toggle.
//
// # Returns
//   - Writes HTTP 200 OK with the new badge state.
//   - Writes HTTP 400 Bad Request for unknown badges.
//   - Writes HTTP 403 Forbidden for locked badges.
func (handler *Handler) toggleBadge(writer http.ResponseWriter, request *http.Request) {
	id := catalog.BadgeID(requestutil.Param(request, "badge"))

	record, active, err := handler.service.ToggleBadge(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, badgeResponse{
		Badge:   id,
		Active:  active,
		Profile: render.ProjectEditor(record),
		Score:   completion.Evaluate(record),
	})
}

// # Helpers

// withValue decodes a [valueRequest] and hands the value to edit.
func (handler *Handler) withValue(writer http.ResponseWriter, request *http.Request, edit func(context.Context, string) (*profile.Record, error)) {
	var input valueRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := edit(request.Context(), input.Value)
	handler.writeEditor(writer, request, record, err)
}

func (handler *Handler) writeEditor(writer http.ResponseWriter, request *http.Request, record *profile.Record, err error) {
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, render.ProjectEditor(record))
}
