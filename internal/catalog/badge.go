// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the closed, read-only catalogs a profile refers to:
badges, social networks, banner templates and link glyphs.

# Architecture

  - Closed sets: BadgeID and Network are string types whose valid values are
    the declared constants. Valid reports membership.
  - Read-only: accessors return copies, so callers cannot mutate the tables.
*/
package catalog

// BadgeID identifies an entry of the badge catalog.
type BadgeID string

// Badge catalog identifiers.
const (
	BadgeVerified BadgeID = "verified"
	BadgePremium  BadgeID = "premium"
	BadgeOG       BadgeID = "og"
	BadgeStaff    BadgeID = "staff"
	BadgeDev      BadgeID = "dev"
	BadgeArtist   BadgeID = "artist"
)

// Badge describes one catalog badge.
type Badge struct {
	ID    BadgeID `json:"id"`
	Emoji string  `json:"emoji"`
	// Name is shown in the badge picker.
	Name string `json:"name"`
	// Label is the chip text shown on the profile card.
	Label string `json:"label"`
	// Locked badges are granted by staff only and never by the public toggle.
	Locked bool `json:"locked"`
}

var badges = []Badge{
	{ID: BadgeVerified, Emoji: "✓", Name: "Verified", Label: "✓ Verified"},
	{ID: BadgePremium, Emoji: "★", Name: "Premium", Label: "★ Premium"},
	{ID: BadgeOG, Emoji: "👑", Name: "OG", Label: "OG"},
	{ID: BadgeStaff, Emoji: "🛡", Name: "Staff", Label: "Staff", Locked: true},
	{ID: BadgeDev, Emoji: "⚡", Name: "Developer", Label: "Dev", Locked: true},
	{ID: BadgeArtist, Emoji: "🎨", Name: "Artist", Label: "🎨 Artist"},
}

// Badges returns the badge catalog in display order.
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

// LookupBadge returns the catalog entry for id.
func LookupBadge(id BadgeID) (Badge, bool) {
	for _, badge := range badges {
		if badge.ID == id {
			return badge, true
		}
	}
	return Badge{}, false
}

// Valid reports whether id is a catalog badge.
func (id BadgeID) Valid() bool {
	_, ok := LookupBadge(id)
	return ok
}

// Locked reports whether id is a catalog badge reserved for privileged grants.
func (id BadgeID) Locked() bool {
	badge, ok := LookupBadge(id)
	return ok && badge.Locked
}
