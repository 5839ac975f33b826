// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"github.com/taibuivan/biolink/internal/catalog"
)

// Default profile values applied at registration.
const (
	DefaultAvatarGlyph = "🐺"
	DefaultBannerStyle = "linear-gradient(135deg,#1e1033,#0f172a)"
	DefaultInviteURL   = "#"

	// NewLinkTitle is the title of a freshly appended link row.
	NewLinkTitle = "New link"
)

// DefaultBioLines are the bio lines of a new profile.
func DefaultBioLines() []string {
	return []string{
		"developer • designer • creator 🚀",
		"building cool stuff",
		"dm me to collab! 👾",
	}
}

// DefaultLinks are the links of a new profile.
func DefaultLinks() []Link {
	return []Link{
		{Glyph: "🌐", Title: "My Website", URL: "https://example.com", Subtitle: "example.com"},
		{Glyph: "📦", Title: "Projects", URL: "#", Subtitle: "Check out my work"},
		{Glyph: "☕", Title: "Buy me a coffee", URL: "#", Subtitle: "Support my work"},
	}
}

// NewLink returns the row appended by "add link".
func NewLink() Link {
	return Link{Glyph: catalog.LinkGlyphs()[0], Title: NewLinkTitle, URL: "https://"}
}

// newRecord builds a profile from defaults overridden by the registration fields.
func newRecord(identity, contact, secret string, sequentialID, joinedYear, views int) *Record {
	return &Record{
		Identity:     identity,
		SequentialID: sequentialID,
		Credentials:  Credentials{Contact: contact, Secret: secret},
		Display: Display{
			Name:        identity,
			AvatarGlyph: DefaultAvatarGlyph,
			BannerStyle: DefaultBannerStyle,
		},
		BioLines:    DefaultBioLines(),
		Badges:      []catalog.BadgeID{catalog.BadgeVerified},
		SocialLinks: map[catalog.Network]string{},
		Links:       DefaultLinks(),
		Discord:     DiscordMeta{InviteURL: DefaultInviteURL},
		ViewCount:   views,
		JoinedYear:  joinedYear,
	}
}
