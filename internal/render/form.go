// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"strings"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/profile"
	"github.com/taibuivan/biolink/pkg/pointer"
)

// EditorForm is the editable subset of [EditorView], as submitted by the
// customize form.
type EditorForm struct {
	DisplayName        string `json:"display_name"`
	Bio                string `json:"bio"`
	AudioTitle         string `json:"audio_title"`
	AudioArtist        string `json:"audio_artist"`
	DiscordServerName  string `json:"discord_server_name"`
	DiscordMemberCount string `json:"discord_member_count"`
	DiscordInviteURL   string `json:"discord_invite_url"`
}

// LinkRow is one edited row of the links form.
type LinkRow struct {
	Glyph    string `json:"glyph"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Subtitle string `json:"subtitle"`
}

// CollectEditorPatch turns a submitted customize form into a patch. Every
// field is trimmed; the bio is split into lines and blank lines dropped.
func CollectEditorPatch(form EditorForm) profile.Patch {
	trimmed := func(value string) *string {
		return pointer.To(strings.TrimSpace(value))
	}

	bio := profile.NormalizeBioLines([]string{form.Bio})

	return profile.Patch{
		DisplayName:        trimmed(form.DisplayName),
		BioLines:           &bio,
		AudioTitle:         trimmed(form.AudioTitle),
		AudioArtist:        trimmed(form.AudioArtist),
		DiscordServerName:  trimmed(form.DiscordServerName),
		DiscordMemberCount: trimmed(form.DiscordMemberCount),
		DiscordInviteURL:   trimmed(form.DiscordInviteURL),
	}
}

// CollectLinksPatch builds the replacement link list from edited rows, in
// row order. An empty URL becomes "#"; an empty title stays empty.
func CollectLinksPatch(rows []LinkRow) []profile.Link {
	links := make([]profile.Link, 0, len(rows))
	for _, row := range rows {
		link := profile.Link{
			Glyph:    strings.TrimSpace(row.Glyph),
			Title:    strings.TrimSpace(row.Title),
			URL:      strings.TrimSpace(row.URL),
			Subtitle: strings.TrimSpace(row.Subtitle),
		}
		if link.Glyph == "" {
			link.Glyph = catalog.LinkGlyphs()[0]
		}
		if link.URL == "" {
			link.URL = fallbackInviteURL
		}
		links = append(links, link)
	}
	return links
}

// LinkRows projects stored links into editable rows.
func LinkRows(links []profile.Link) []LinkRow {
	rows := make([]LinkRow, 0, len(links))
	for _, link := range links {
		rows = append(rows, LinkRow(link))
	}
	return rows
}
