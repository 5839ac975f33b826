// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render projects a profile record into the views the application
shows, and turns edited forms back into record patches.

# Architecture

  - Projections (view.go) are pure: record in, view model out. They resolve
    badge and social catalog entries and apply display fallbacks.
  - Components (html.go) write the view models as HTML. Every user-authored
    string passes through templ escaping before it reaches markup.
  - Reverse projections (form.go) build [profile.Patch] values from form input.
*/
package render

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/taibuivan/biolink/internal/animation"
	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/completion"
	"github.com/taibuivan/biolink/internal/profile"
)

// Display fallbacks for fields that may be empty in storage.
const (
	fallbackLinkTitle   = "Link"
	fallbackMemberCount = "0"
	fallbackInviteURL   = "#"
)

// # View Models

// BadgeChip is a resolved badge label.
type BadgeChip struct {
	ID    catalog.BadgeID `json:"id"`
	Label string          `json:"label"`
}

// SocialIcon is a connected network.
type SocialIcon struct {
	Network catalog.Network `json:"network"`
	Label   string          `json:"label"`
	Glyph   string          `json:"glyph"`
	Color   string          `json:"color"`
	URL     string          `json:"url"`
}

// LinkView is one rendered link row.
type LinkView struct {
	Glyph    string `json:"glyph"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Subtitle string `json:"subtitle"`
}

// DiscordWidget is present only when the profile names a server.
type DiscordWidget struct {
	ServerName      string `json:"server_name"`
	MemberCountText string `json:"member_count_text"`
	InviteURL       string `json:"invite_url"`
}

// AudioWidget is present only when the profile names a track.
type AudioWidget struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Progress float64 `json:"progress"`
	Display  string  `json:"display"`
}

// Card is the structure shared by the live preview and the public page.
type Card struct {
	Identity    string         `json:"identity"`
	DisplayName string         `json:"display_name"`
	AvatarGlyph string         `json:"avatar_glyph"`
	BannerStyle string         `json:"banner_style"`
	Badges      []BadgeChip    `json:"badges"`
	Socials     []SocialIcon   `json:"socials"`
	Discord     *DiscordWidget `json:"discord,omitempty"`
	Audio       *AudioWidget   `json:"audio,omitempty"`
	Links       []LinkView     `json:"links"`
	Views       int            `json:"views"`
	UID         string         `json:"uid"`
	JoinedYear  int            `json:"joined_year"`
}

// PreviewView is the dashboard live preview. It shows the first bio line only.
type PreviewView struct {
	Card
	BioLine string `json:"bio_line"`
}

// PublicView is the public profile page. The typewriter cycles BioLines.
type PublicView struct {
	Card
	BioLines []string `json:"bio_lines"`
}

// EditorView flattens a record into primitive form fields.
type EditorView struct {
	EditorForm
	Identity         string    `json:"identity"`
	Contact          string    `json:"contact"`
	AvatarGlyph      string    `json:"avatar_glyph"`
	BannerStyle      string    `json:"banner_style"`
	DiscordConnected bool      `json:"discord_connected"`
	Links            []LinkRow `json:"links"`
}

// DashboardView is everything the signed-in overview shows.
type DashboardView struct {
	Greeting   string           `json:"greeting"`
	Identity   string           `json:"identity"`
	UID        string           `json:"uid"`
	Percentile int              `json:"percentile"`
	Views      int              `json:"views"`
	Completion completion.Score `json:"completion"`
	Stats      profile.Stats    `json:"stats"`
	Preview    PreviewView      `json:"preview"`
	Editor     EditorView       `json:"editor"`
}

// # Projections

// ProjectCard builds the shared card structure.
func ProjectCard(record *profile.Record) Card {
	card := Card{
		Identity:    record.Identity,
		DisplayName: fallback(record.Display.Name, record.Identity),
		AvatarGlyph: fallback(record.Display.AvatarGlyph, profile.DefaultAvatarGlyph),
		BannerStyle: fallback(record.Display.BannerStyle, profile.DefaultBannerStyle),
		Badges:      []BadgeChip{},
		Socials:     []SocialIcon{},
		Links:       make([]LinkView, 0, len(record.Links)),
		Views:       record.ViewCount,
		UID:         FormatUID(record.SequentialID),
		JoinedYear:  record.JoinedYear,
	}

	for _, id := range record.Badges {
		if badge, ok := catalog.LookupBadge(id); ok {
			card.Badges = append(card.Badges, BadgeChip{ID: badge.ID, Label: badge.Label})
		}
	}

	for _, social := range catalog.Socials() {
		url := strings.TrimSpace(record.SocialURL(social.Network))
		if url == "" {
			continue
		}
		card.Socials = append(card.Socials, SocialIcon{
			Network: social.Network,
			Label:   social.Label,
			Glyph:   social.Glyph,
			Color:   social.Color,
			URL:     url,
		})
	}

	if record.Discord.ServerName != "" {
		card.Discord = &DiscordWidget{
			ServerName:      record.Discord.ServerName,
			MemberCountText: fallback(record.Discord.MemberCountText, fallbackMemberCount),
			InviteURL:       fallback(record.Discord.InviteURL, fallbackInviteURL),
		}
	}

	if record.Audio.Title != "" {
		initial := animation.InitialAudioState()
		card.Audio = &AudioWidget{
			Title:    record.Audio.Title,
			Artist:   record.Audio.Artist,
			Progress: initial.Progress,
			Display:  initial.Display,
		}
	}

	for _, link := range record.Links {
		card.Links = append(card.Links, LinkView{
			Glyph:    fallback(link.Glyph, catalog.LinkGlyphs()[0]),
			Title:    fallback(link.Title, fallbackLinkTitle),
			URL:      fallback(link.URL, fallbackInviteURL),
			Subtitle: link.Subtitle,
		})
	}

	return card
}

// ProjectPreview builds the live preview.
func ProjectPreview(record *profile.Record) PreviewView {
	view := PreviewView{Card: ProjectCard(record)}
	if len(record.BioLines) > 0 {
		view.BioLine = record.BioLines[0]
	}
	return view
}

// ProjectPublic builds the public profile page.
func ProjectPublic(record *profile.Record) PublicView {
	lines := make([]string, 0, len(record.BioLines))
	for _, line := range record.BioLines {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		lines = []string{animation.FallbackLine}
	}
	return PublicView{Card: ProjectCard(record), BioLines: lines}
}

// ProjectEditor builds the editor form. Values are raw: no display fallbacks,
// so collecting the form unchanged reproduces the record.
func ProjectEditor(record *profile.Record) EditorView {
	return EditorView{
		EditorForm: EditorForm{
			DisplayName:        record.Display.Name,
			Bio:                strings.Join(record.BioLines, "\n"),
			AudioTitle:         record.Audio.Title,
			AudioArtist:        record.Audio.Artist,
			DiscordServerName:  record.Discord.ServerName,
			DiscordMemberCount: record.Discord.MemberCountText,
			DiscordInviteURL:   record.Discord.InviteURL,
		},
		Identity:         record.Identity,
		Contact:          record.Credentials.Contact,
		AvatarGlyph:      record.Display.AvatarGlyph,
		BannerStyle:      record.Display.BannerStyle,
		DiscordConnected: record.Discord.Connected,
		Links:            LinkRows(record.Links),
	}
}

// ProjectDashboard builds the signed-in overview at instant now.
func ProjectDashboard(record *profile.Record, stats profile.Stats, now time.Time) DashboardView {
	return DashboardView{
		Greeting:   Greeting(now),
		Identity:   record.Identity,
		UID:        FormatUID(record.SequentialID),
		Percentile: Percentile(record.SequentialID, stats.Users),
		Views:      record.ViewCount,
		Completion: completion.Evaluate(record),
		Stats:      stats,
		Preview:    ProjectPreview(record),
		Editor:     ProjectEditor(record),
	}
}

// # Formatting

var uidPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUID groups digits the en-US way: 1234567 -> "1,234,567".
func FormatUID(uid int) string {
	return uidPrinter.Sprintf("%d", uid)
}

// Greeting picks the salutation for the local hour of now.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Percentile is the "among the first N%" figure for a sequential ID.
// The population is floored at 10 and the result capped at 99.
func Percentile(uid, users int) int {
	percent := int(math.Round(float64(uid) / float64(max(users, 10)) * 100))
	return min(percent, 99)
}

func fallback(value, otherwise string) string {
	if value == "" {
		return otherwise
	}
	return value
}
