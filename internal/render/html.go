// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/profile"
)

// # Markup Writer

// markup accumulates the first write error so components read top to bottom.
type markup struct {
	w   io.Writer
	err error
}

func (out *markup) raw(parts ...string) {
	for _, part := range parts {
		if out.err != nil {
			return
		}
		_, out.err = io.WriteString(out.w, part)
	}
}

// text writes user-authored content, escaped.
func (out *markup) text(value string) {
	out.raw(templ.EscapeString(value))
}

// href writes a sanitized, escaped URL attribute value.
func (out *markup) href(value string) {
	out.raw(templ.EscapeString(string(templ.URL(value))))
}

func (out *markup) child(context context.Context, component templ.Component) {
	if out.err != nil {
		return
	}
	out.err = component.Render(context, out.w)
}

// # Layout

// Layout wraps body in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(context context.Context, w io.Writer) error {
		out := &markup{w: w}
		out.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width,initial-scale=1">`,
			`<title>`)
		out.text(title)
		out.raw(` | biolink</title><link rel="stylesheet" href="/static/style.css">`,
			`<script src="/static/app.js" defer></script></head><body>`)
		out.child(context, body)
		out.raw(`<div id="toasts" data-source="/api/v1/notices"></div></body></html>`)
		return out.err
	})
}

// # Profile Card

func writeCard(out *markup, card Card, bio func()) {
	out.raw(`<div class="p-card"><div class="p-banner"><div class="p-banner-inner" style="background:`)
	out.text(card.BannerStyle)
	out.raw(`"></div></div><div class="p-content"><div class="p-avatar">`)
	out.text(card.AvatarGlyph)
	out.raw(`</div><div class="p-username"><span class="p-at">@</span>`)
	out.text(card.Identity)
	out.raw(`</div><div class="p-display-name">`)
	out.text(card.DisplayName)
	out.raw(`</div><div class="p-badges">`)
	for _, badge := range card.Badges {
		out.raw(`<span class="p-badge `, string(badge.ID), `">`)
		out.text(badge.Label)
		out.raw(`</span>`)
	}
	out.raw(`</div>`)

	bio()

	out.raw(`<div class="p-stats">`,
		`<div class="p-stat"><span class="p-stat-val">`, strconv.Itoa(card.Views), `</span><span class="p-stat-key">Views</span></div>`,
		`<div class="p-stat"><span class="p-stat-val">#`, card.UID, `</span><span class="p-stat-key">UID</span></div>`,
		`<div class="p-stat"><span class="p-stat-val">`, strconv.Itoa(card.JoinedYear), `</span><span class="p-stat-key">Joined</span></div>`,
		`</div></div></div>`)

	if len(card.Socials) > 0 {
		out.raw(`<div class="p-socials">`)
		for _, social := range card.Socials {
			out.raw(`<a class="p-sicon" target="_blank" rel="noopener" data-network="`, string(social.Network), `" href="`)
			out.href(social.URL)
			out.raw(`">`)
			out.text(social.Glyph)
			out.raw(`<span class="tip">`)
			out.text(social.Label)
			out.raw(`</span></a>`)
		}
		out.raw(`</div>`)
	}

	if card.Discord != nil {
		out.raw(`<div class="p-discord"><div class="p-dc-icon">🎮</div><div><div class="p-dc-name">`)
		out.text(card.Discord.ServerName)
		out.raw(`</div><div class="p-dc-status">`)
		out.text(card.Discord.MemberCountText)
		out.raw(` members</div></div><a class="p-dc-join" target="_blank" rel="noopener" href="`)
		out.href(card.Discord.InviteURL)
		out.raw(`">Join</a></div>`)
	}

	if card.Audio != nil {
		out.raw(`<div class="p-audio" data-progress="`, strconv.FormatFloat(card.Audio.Progress, 'f', -1, 64), `"><div class="p-audio-title">`)
		out.text(card.Audio.Title)
		out.raw(`</div><div class="p-audio-artist">`)
		out.text(card.Audio.Artist)
		out.raw(`</div><div class="p-audio-ctrl"><button class="p-audio-play">▶</button>`,
			`<div class="p-audio-track"><div class="p-audio-fill" style="width:`,
			strconv.FormatFloat(card.Audio.Progress, 'f', -1, 64),
			`%"></div></div><span class="p-audio-time">`)
		out.text(card.Audio.Display)
		out.raw(`</span></div></div>`)
	}

	out.raw(`<div class="p-links">`)
	for _, link := range card.Links {
		out.raw(`<a class="p-link-btn" target="_blank" rel="noopener" href="`)
		out.href(link.URL)
		out.raw(`"><span class="p-link-emoji">`)
		out.text(link.Glyph)
		out.raw(`</span><span class="p-link-title">`)
		out.text(link.Title)
		out.raw(`</span><span class="p-link-sub">`)
		out.text(link.Subtitle)
		out.raw(`</span><span class="p-link-arrow">›</span></a>`)
	}
	out.raw(`</div>`)
}

// PreviewCard renders the dashboard live preview with a static first bio line.
func PreviewCard(view PreviewView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &markup{w: w}
		out.raw(`<section class="live-preview">`)
		writeCard(out, view.Card, func() {
			out.raw(`<div class="p-bio">`)
			out.text(view.BioLine)
			out.raw(`</div>`)
		})
		out.raw(`<div class="p-view-row">👁 <span>`, strconv.Itoa(view.Views), `</span> profile views</div></section>`)
		return out.err
	})
}

// PublicPage renders the public profile. The first bio line is written into
// the page; app.js then types and cycles every line in data-bio-lines.
func PublicPage(view PublicView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		lines, err := json.Marshal(view.BioLines)
		if err != nil {
			return err
		}

		out := &markup{w: w}
		out.raw(`<main id="page-profile" class="profile-page">`)
		writeCard(out, view.Card, func() {
			out.raw(`<div class="p-bio" data-bio-lines="`)
			out.text(string(lines))
			out.raw(`"><span id="p-bio-text">`)
			if len(view.BioLines) > 0 {
				out.text(view.BioLines[0])
			}
			out.raw(`</span><span class="tw-cursor">|</span></div>`)
		})
		out.raw(`<div class="p-foot">Powered by <b>biolink</b></div></main>`)
		return out.err
	})
}

// # Dashboard

// EditorPanel renders the customize, links, socials and badges forms.
func EditorPanel(view EditorView, record *profile.Record) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &markup{w: w}
		field := func(name, label, value string) {
			out.raw(`<label class="field"><span>`, label, `</span><input class="input" name="`, name, `" value="`)
			out.text(value)
			out.raw(`"></label>`)
		}

		out.raw(`<form id="customize-form" method="post" action="/api/v1/me/customize" data-endpoint="/api/v1/me/customize" data-method="PATCH">`)
		field("display_name", "Display name", view.DisplayName)
		out.raw(`<label class="field"><span>Bio</span><textarea class="input" name="bio">`)
		out.text(view.Bio)
		out.raw(`</textarea></label>`)
		field("audio_title", "Song title", view.AudioTitle)
		field("audio_artist", "Artist", view.AudioArtist)
		field("discord_server_name", "Discord server", view.DiscordServerName)
		field("discord_member_count", "Members", view.DiscordMemberCount)
		field("discord_invite_url", "Invite URL", view.DiscordInviteURL)
		out.raw(`<button class="btn" type="submit">Save</button></form>`)

		out.raw(`<form id="links-form" method="post" action="/api/v1/me/links" data-endpoint="/api/v1/me/links" data-method="PUT"><div id="links-list">`)
		for i, row := range view.Links {
			index := strconv.Itoa(i)
			out.raw(`<div class="link-row"><button class="link-row-emoji" type="button" data-endpoint="/api/v1/me/links/`, index, `/glyph">`)
			out.text(row.Glyph)
			out.raw(`</button><input type="hidden" name="glyph" value="`)
			out.text(row.Glyph)
			out.raw(`">`)
			field("title", "Title", row.Title)
			field("url", "URL", row.URL)
			field("subtitle", "Subtitle", row.Subtitle)
			out.raw(`</div>`)
		}
		out.raw(`</div><button class="btn" type="button" id="add-link" data-endpoint="/api/v1/me/links">Add link</button>`,
			`<button class="btn" type="submit">Save links</button></form>`)

		out.raw(`<div id="socials-grid">`)
		for _, social := range catalog.Socials() {
			connected := ""
			if record.SocialURL(social.Network) != "" {
				connected = " connected"
			}
			out.raw(`<button class="social-icon`, connected, `" data-network="`, string(social.Network), `" title="`)
			out.text(social.Label)
			out.raw(`">`)
			out.text(social.Glyph)
			out.raw(`</button>`)
		}
		out.raw(`</div><div id="badges-grid">`)
		for _, badge := range catalog.Badges() {
			class := "badge-card"
			if badge.Locked {
				class += " locked-badge"
			}
			if record.HasBadge(badge.ID) {
				class += " active"
			}
			out.raw(`<div class="`, class, `" data-badge="`, string(badge.ID), `"><div class="badge-emoji">`)
			out.text(badge.Emoji)
			out.raw(`</div><div class="badge-name">`)
			out.text(badge.Name)
			out.raw(`</div></div>`)
		}
		out.raw(`</div>`)
		return out.err
	})
}

// DashboardPage renders the signed-in overview.
func DashboardPage(view DashboardView, record *profile.Record) templ.Component {
	return templ.ComponentFunc(func(context context.Context, w io.Writer) error {
		out := &markup{w: w}
		out.raw(`<main id="page-dashboard"><header class="ov-banner"><h1>`)
		out.text(view.Greeting)
		out.raw(`, @`)
		out.text(view.Identity)
		out.raw(`!</h1></header><section class="ov-stats">`,
			`<div class="ov-stat"><span>UID</span><b>`, view.UID, `</b><small>Among the first `, strconv.Itoa(view.Percentile), `%</small></div>`,
			`<div class="ov-stat"><span>Views</span><b>`, strconv.Itoa(view.Views), `</b></div>`,
			`<div class="ov-stat"><span>Completion</span><b>`, strconv.Itoa(view.Completion.Percent), `%</b></div>`,
			`<div class="ov-stat"><span>Users</span><b>`, FormatUID(view.Stats.Users), `</b></div>`,
			`</section><ul class="checklist">`)
		for _, item := range view.Completion.Items {
			done := ""
			if item.Done {
				done = ` class="done"`
			}
			out.raw(`<li`, done, ` data-check="`, string(item.ID), `">`)
			out.text(item.Label)
			out.raw(`</li>`)
		}
		out.raw(`</ul><div class="dash-grid"><div class="dash-editor">`)
		out.child(context, EditorPanel(view.Editor, record))
		out.raw(`</div>`)
		out.child(context, PreviewCard(view.Preview))
		out.raw(`</div></main>`)
		return out.err
	})
}

// # Auth

// AuthView feeds the sign-in page.
type AuthView struct {
	Users int
	Error string
}

// AuthPage renders the register and login forms.
func AuthPage(view AuthView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &markup{w: w}
		out.raw(`<main id="page-auth"><p class="auth-count">Join `, FormatUID(view.Users), ` creators</p>`)
		if view.Error != "" {
			out.raw(`<div class="auth-error">`)
			out.text(view.Error)
			out.raw(`</div>`)
		}
		out.raw(`<form id="register-form" method="post" action="/api/v1/auth/register" data-endpoint="/api/v1/auth/register">`,
			`<input class="input" name="username" placeholder="username" autocomplete="username">`,
			`<input class="input" name="email" type="email" placeholder="email">`,
			`<input class="input" name="password" type="password" placeholder="password">`,
			`<button class="btn" type="submit">Create account</button></form>`,
			`<form id="login-form" method="post" action="/api/v1/auth/login" data-endpoint="/api/v1/auth/login">`,
			`<input class="input" name="login" placeholder="username or email">`,
			`<input class="input" name="password" type="password" placeholder="password">`,
			`<button class="btn" type="submit">Sign in</button></form></main>`)
		return out.err
	})
}

// NotFoundPage renders the missing profile page.
func NotFoundPage(identity string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &markup{w: w}
		out.raw(`<main id="page-missing"><h1>Profile not found</h1><p>Nobody goes by @`)
		out.text(identity)
		out.raw(` yet.</p><a class="btn" href="/auth">Claim it</a></main>`)
		return out.err
	})
}
