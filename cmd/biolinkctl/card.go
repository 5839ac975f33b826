// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taibuivan/biolink/internal/animation"
	"github.com/taibuivan/biolink/internal/completion"
	"github.com/taibuivan/biolink/internal/render"
)

// Palette follows the default banner template.
var (
	accent = lipgloss.Color("#7c3aed")
	muted  = lipgloss.Color("#94a3b8")
	gold   = lipgloss.Color("#fbbf24")

	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	handleStyle = lipgloss.NewStyle().Foreground(muted)
	badgeStyle  = lipgloss.NewStyle().Foreground(gold)
	bioStyle    = lipgloss.NewStyle().Italic(true)
	linkStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f43f5e"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8"))
)

// progressWidth is the number of cells of the audio bar.
const progressWidth = 20

// renderCard draws the profile card. bio is omitted when empty.
func renderCard(card render.Card, bio string) string {
	lines := []string{
		card.AvatarGlyph + "  " + nameStyle.Render(card.DisplayName),
		handleStyle.Render("@" + card.Identity),
	}

	if len(card.Badges) > 0 {
		labels := make([]string, 0, len(card.Badges))
		for _, badge := range card.Badges {
			labels = append(labels, badgeStyle.Render(badge.Label))
		}
		lines = append(lines, strings.Join(labels, "  "))
	}

	if bio != "" {
		lines = append(lines, "", bioStyle.Render(bio))
	}

	lines = append(lines, "", handleStyle.Render(fmt.Sprintf("👁 %d views · UID #%s · joined %d", card.Views, card.UID, card.JoinedYear)))

	if len(card.Socials) > 0 {
		lines = append(lines, "")
		for _, social := range card.Socials {
			label := lipgloss.NewStyle().Foreground(lipgloss.Color(social.Color)).Render(social.Glyph + " " + social.Label)
			lines = append(lines, label+"  "+handleStyle.Render(social.URL))
		}
	}

	if card.Discord != nil {
		lines = append(lines, "", fmt.Sprintf("🎮 %s · %s members · %s", card.Discord.ServerName, card.Discord.MemberCountText, card.Discord.InviteURL))
	}

	if card.Audio != nil {
		lines = append(lines, "", fmt.Sprintf("♪ %s · %s  %s", card.Audio.Title, card.Audio.Artist, card.Audio.Display))
	}

	if len(card.Links) > 0 {
		lines = append(lines, "")
		for _, link := range card.Links {
			row := link.Glyph + " " + linkStyle.Render(link.Title) + "  " + handleStyle.Render(link.URL)
			if link.Subtitle != "" {
				row += handleStyle.Render(" · " + link.Subtitle)
			}
			lines = append(lines, row)
		}
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderFrame draws one animation frame on a single line.
func renderFrame(frame animation.Frame) string {
	line := bioStyle.Render(frame.Bio.Text) + "▍"
	if !frame.HasAudio {
		return line
	}

	filled := int(frame.Audio.Progress / 100 * progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
	return line + "   ♪ " + linkStyle.Render(bar) + " " + frame.Audio.Display
}

// renderScore draws the completion checklist.
func renderScore(score completion.Score) string {
	lines := []string{nameStyle.Render(fmt.Sprintf("Profile %d%% complete", score.Percent))}
	for _, item := range score.Items {
		mark := errorStyle.Render("✗")
		if item.Done {
			mark = successStyle.Render("✓")
		}
		lines = append(lines, mark+" "+item.Label)
	}
	return strings.Join(lines, "\n")
}
