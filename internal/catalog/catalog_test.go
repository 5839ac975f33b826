// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/catalog"
)

/*
TestBadges_LockedEntries verifies which badges the public toggle may touch.
*/
func TestBadges_LockedEntries(t *testing.T) {
	tests := []struct {
		id     catalog.BadgeID
		valid  bool
		locked bool
	}{
		{catalog.BadgeVerified, true, false},
		{catalog.BadgePremium, true, false},
		{catalog.BadgeOG, true, false},
		{catalog.BadgeStaff, true, true},
		{catalog.BadgeDev, true, true},
		{catalog.BadgeArtist, true, false},
		{catalog.BadgeID("admin"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.id.Valid())
			assert.Equal(t, tt.locked, tt.id.Locked())
		})
	}
}

/*
TestSocials_CatalogOrder pins the first entries and the glyph fallback.
*/
func TestSocials_CatalogOrder(t *testing.T) {
	socials := catalog.Socials()
	require.Len(t, socials, 34)

	assert.Equal(t, catalog.Snapchat, socials[0].Network)
	assert.Equal(t, catalog.YouTube, socials[1].Network)
	assert.Equal(t, catalog.Email, socials[len(socials)-1].Network)

	github, ok := catalog.LookupSocial(catalog.GitHub)
	require.True(t, ok)
	assert.Equal(t, "🐙", github.Glyph)

	reddit, ok := catalog.LookupSocial(catalog.Reddit)
	require.True(t, ok)
	assert.Equal(t, "🔗", reddit.Glyph)

	assert.False(t, catalog.Network("myspace").Valid())
}

/*
TestSocials_ReturnsCopy ensures callers cannot mutate the catalog.
*/
func TestSocials_ReturnsCopy(t *testing.T) {
	socials := catalog.Socials()
	socials[0].Label = "mutated"

	assert.Equal(t, "Snapchat", catalog.Socials()[0].Label)
}

/*
TestLookupTemplate is case-insensitive.
*/
func TestLookupTemplate(t *testing.T) {
	template, ok := catalog.LookupTemplate("  ocean blue ")
	require.True(t, ok)
	assert.Equal(t, "linear-gradient(135deg,#0f2027,#203a43,#2c5364)", template.Background)

	_, ok = catalog.LookupTemplate("Vaporwave")
	assert.False(t, ok)
}

/*
TestNextLinkGlyph cycles and wraps.
*/
func TestNextLinkGlyph(t *testing.T) {
	assert.Equal(t, "🌐", catalog.NextLinkGlyph("🔗"))
	assert.Equal(t, "🔗", catalog.NextLinkGlyph("🏆"))
	assert.Equal(t, "🌐", catalog.NextLinkGlyph("unknown"))
}
