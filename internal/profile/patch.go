// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/platform/apperr"
)

// Patch is a partial update of a [Record]. Nil fields are left untouched.
//
// Identity, SequentialID, ViewCount and JoinedYear are not patchable: rename,
// view counting and creation own them.
type Patch struct {
	DisplayName *string
	AvatarGlyph *string
	BannerStyle *string

	// BioLines replaces the whole list. Entries are split on line breaks,
	// trimmed, and blank entries are dropped.
	BioLines *[]string

	// Badges replaces the whole set. Unknown IDs are rejected; duplicates collapse.
	Badges *[]catalog.BadgeID

	// SocialLinks is merged per network. An empty URL removes the network.
	SocialLinks map[catalog.Network]string

	// Links replaces the whole list.
	Links *[]Link

	AudioTitle  *string
	AudioArtist *string

	DiscordServerName  *string
	DiscordMemberCount *string
	DiscordInviteURL   *string
	DiscordConnected   *bool

	Contact *string
	Secret  *string
}

// validate checks the patch against the catalogs without touching a record.
func (patch Patch) validate() error {
	if patch.Badges != nil {
		for _, id := range *patch.Badges {
			if !id.Valid() {
				return apperr.ValidationError(fmt.Sprintf("Unknown badge %q", id),
					apperr.FieldError{Field: "badges", Message: "Unknown badge"})
			}
		}
	}

	for network := range patch.SocialLinks {
		if !network.Valid() {
			return apperr.ValidationError(fmt.Sprintf("Unknown social network %q", network),
				apperr.FieldError{Field: "social_links", Message: "Unknown social network"})
		}
	}

	return nil
}

// applyTo merges the patch into record. The record is untouched when the
// patch is invalid.
func (patch Patch) applyTo(record *Record) error {
	if err := patch.validate(); err != nil {
		return err
	}

	setString(&record.Display.Name, patch.DisplayName)
	setString(&record.Display.AvatarGlyph, patch.AvatarGlyph)
	setString(&record.Display.BannerStyle, patch.BannerStyle)

	if patch.BioLines != nil {
		record.BioLines = NormalizeBioLines(*patch.BioLines)
	}

	if patch.Badges != nil {
		record.Badges = uniqueBadges(*patch.Badges)
	}

	if len(patch.SocialLinks) > 0 {
		if record.SocialLinks == nil {
			record.SocialLinks = map[catalog.Network]string{}
		}
		for network, url := range patch.SocialLinks {
			url = strings.TrimSpace(url)
			if url == "" {
				delete(record.SocialLinks, network)
				continue
			}
			record.SocialLinks[network] = url
		}
	}

	if patch.Links != nil {
		record.Links = slices.Clone(*patch.Links)
		if record.Links == nil {
			record.Links = []Link{}
		}
	}

	setString(&record.Audio.Title, patch.AudioTitle)
	setString(&record.Audio.Artist, patch.AudioArtist)

	setString(&record.Discord.ServerName, patch.DiscordServerName)
	setString(&record.Discord.MemberCountText, patch.DiscordMemberCount)
	setString(&record.Discord.InviteURL, patch.DiscordInviteURL)
	if patch.DiscordConnected != nil {
		record.Discord.Connected = *patch.DiscordConnected
	}

	setString(&record.Credentials.Contact, patch.Contact)
	setString(&record.Credentials.Secret, patch.Secret)

	return nil
}

// NormalizeBioLines splits entries on line breaks, trims them and drops blanks.
func NormalizeBioLines(lines []string) []string {
	out := []string{}
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func uniqueBadges(ids []catalog.BadgeID) []catalog.BadgeID {
	out := make([]catalog.BadgeID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func setString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
