// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package completion derives the "profile completeness" checklist shown on
// the dashboard.
package completion

import (
	"strings"

	"github.com/taibuivan/biolink/internal/profile"
)

// CheckID names one checklist item.
type CheckID string

// Checklist items in display order.
const (
	CheckAvatar    CheckID = "avatar"
	CheckBio       CheckID = "bio"
	CheckDiscord   CheckID = "discord"
	CheckSocials   CheckID = "socials"
	CheckLinks     CheckID = "links"
	CheckTwoFactor CheckID = "two_factor"
)

// Item is one evaluated checklist row.
type Item struct {
	ID    CheckID `json:"id"`
	Label string  `json:"label"`
	Done  bool    `json:"done"`
}

// Score is the evaluated checklist and its percentage.
type Score struct {
	Percent   int              `json:"percent"`
	Checklist map[CheckID]bool `json:"checklist"`
	Items     []Item           `json:"items"`
}

type check struct {
	id    CheckID
	label string
	pass  func(*profile.Record) bool
}

var checks = []check{
	{CheckAvatar, "Add an avatar", func(record *profile.Record) bool {
		return strings.TrimSpace(record.Display.AvatarGlyph) != ""
	}},
	{CheckBio, "Write a bio", func(record *profile.Record) bool {
		for _, line := range record.BioLines {
			if strings.TrimSpace(line) != "" {
				return true
			}
		}
		return false
	}},
	{CheckDiscord, "Connect Discord", func(record *profile.Record) bool {
		return record.Discord.Connected
	}},
	{CheckSocials, "Add a social network", func(record *profile.Record) bool {
		for _, url := range record.SocialLinks {
			if strings.TrimSpace(url) != "" {
				return true
			}
		}
		return false
	}},
	{CheckLinks, "Add a link", func(record *profile.Record) bool {
		return len(record.Links) > 0
	}},
	// Two-factor authentication does not exist yet, so this never passes.
	{CheckTwoFactor, "Enable two-factor authentication", func(*profile.Record) bool {
		return false
	}},
}

// Evaluate scores record. Percent is rounded half up.
func Evaluate(record *profile.Record) Score {
	score := Score{
		Checklist: make(map[CheckID]bool, len(checks)),
		Items:     make([]Item, 0, len(checks)),
	}

	passed := 0
	for _, c := range checks {
		done := record != nil && c.pass(record)
		if done {
			passed++
		}
		score.Checklist[c.id] = done
		score.Items = append(score.Items, Item{ID: c.id, Label: c.label, Done: done})
	}

	score.Percent = (200*passed + len(checks)) / (2 * len(checks))
	return score
}
