// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile owns the link-in-bio profile record, the repository that
persists it keyed by identity, and the service that applies user edits.

# Architecture

  - Entities: Record and its value parts (Display, Link, AudioMeta, DiscordMeta).
  - Storage: two blobs, users (Directory) and session (identity string), behind
    UserStore and SessionStore. SQLite, PostgreSQL and Redis implementations live
    in the store_*.go files.
  - Concurrency: single writer. Repository serializes every operation, persists
    before returning, and re-reads storage on each call.
*/
package profile

import (
	"context"
	"maps"
	"slices"

	"github.com/taibuivan/biolink/internal/catalog"
)

// # Domain Entities

// Record is one user profile. It is owned by [Repository]; callers receive copies.
type Record struct {
	Identity     string                     `json:"identity"`
	SequentialID int                        `json:"sequential_id"`
	Credentials  Credentials                `json:"credentials"`
	Display      Display                    `json:"display"`
	BioLines     []string                   `json:"bio_lines"`
	Badges       []catalog.BadgeID          `json:"badges"`
	SocialLinks  map[catalog.Network]string `json:"social_links"`
	Links        []Link                     `json:"links"`
	Audio        AudioMeta                  `json:"audio"`
	Discord      DiscordMeta                `json:"discord"`
	ViewCount    int                        `json:"view_count"`
	JoinedYear   int                        `json:"joined_year"`
}

// Credentials are opaque comparison values. No hashing is applied.
type Credentials struct {
	Contact string `json:"contact"`
	Secret  string `json:"secret"`
}

// Display holds the visual identity of the profile card.
type Display struct {
	Name        string `json:"name"`
	AvatarGlyph string `json:"avatar_glyph"`
	BannerStyle string `json:"banner_style"`
}

// Link is one row of the link list.
type Link struct {
	Glyph    string `json:"glyph"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Subtitle string `json:"subtitle"`
}

// AudioMeta describes the now-playing widget. An empty Title hides it.
type AudioMeta struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// DiscordMeta describes the Discord server widget. An empty ServerName hides it.
type DiscordMeta struct {
	ServerName      string `json:"server_name"`
	MemberCountText string `json:"member_count_text"`
	InviteURL       string `json:"invite_url"`
	Connected       bool   `json:"connected"`
}

// HasBadge reports whether the record carries id.
func (record *Record) HasBadge(id catalog.BadgeID) bool {
	return slices.Contains(record.Badges, id)
}

// SocialURL returns the URL stored for network, or "".
func (record *Record) SocialURL(network catalog.Network) string {
	return record.SocialLinks[network]
}

// Clone returns a deep copy of the record.
func (record *Record) Clone() *Record {
	if record == nil {
		return nil
	}
	clone := *record
	clone.BioLines = slices.Clone(record.BioLines)
	clone.Badges = slices.Clone(record.Badges)
	clone.Links = slices.Clone(record.Links)
	clone.SocialLinks = maps.Clone(record.SocialLinks)
	if clone.SocialLinks == nil {
		clone.SocialLinks = map[catalog.Network]string{}
	}
	return &clone
}

// Stats are the live counters shown on the landing and dashboard pages.
type Stats struct {
	Users      int `json:"users"`
	TotalViews int `json:"total_views"`
	TotalLinks int `json:"total_links"`
}

// # Repository Contracts

// UserStore persists the users blob.
type UserStore interface {
	/*
		LoadUsers reads the full users document.

		Parameters:
		  - context: context.Context

		Returns:
		  - *Directory: The records in storage order (empty when nothing is stored)
		  - error: Storage failures
	*/
	LoadUsers(context context.Context) (*Directory, error)

	/*
		SaveUsers replaces the full users document.

		Parameters:
		  - context: context.Context
		  - directory: *Directory

		Returns:
		  - error: Storage failures
	*/
	SaveUsers(context context.Context, directory *Directory) error
}

// SessionStore persists the session blob.
type SessionStore interface {
	/*
		LoadSession reads the stored identity.

		Returns:
		  - string: The identity, or "" when absent
		  - error: Storage failures
	*/
	LoadSession(context context.Context) (string, error)

	// SaveSession stores identity as the session pointer.
	SaveSession(context context.Context, identity string) error

	// ClearSession removes the session pointer. Clearing an absent pointer is a no-op.
	ClearSession(context context.Context) error
}

// # Collaborators

// NoticeKind classifies a user-facing notification.
type NoticeKind string

// Notification kinds.
const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notifier receives user-facing messages. Delivery is fire-and-forget.
type Notifier interface {
	Notify(context context.Context, message string, kind NoticeKind)
}
