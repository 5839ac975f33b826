// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "strings"

// Template is a shareable banner theme.
type Template struct {
	Name       string   `json:"name"`
	Author     string   `json:"author"`
	Uses       int      `json:"uses"`
	Stars      int      `json:"stars"`
	Trending   bool     `json:"trending"`
	Tags       []string `json:"tags"`
	Background string   `json:"background"`
	Accent     string   `json:"accent"`
}

var templates = []Template{
	{"Dark Purple", "@cisek", 121553, 12103, true, []string{"free", "bio", "dark"}, "linear-gradient(135deg,#1e1033,#0f172a)", "#7c3aed"},
	{"Ocean Blue", "@ak213", 99056, 8482, true, []string{"anime", "yourname", "4kedits"}, "linear-gradient(135deg,#0f2027,#203a43,#2c5364)", "#38bdf8"},
	{"Svart", "@yuez", 92393, 9815, true, []string{"#black", "#idk"}, "linear-gradient(135deg,#111,#222)", "#fff"},
	{"Crimson", "@reddev", 74200, 7100, false, []string{"dark", "red", "premium"}, "linear-gradient(135deg,#200122,#6f0000)", "#f43f5e"},
	{"Forest", "@treelover", 51000, 5300, false, []string{"nature", "green"}, "linear-gradient(135deg,#0a3d0a,#1a5c1a)", "#4ade80"},
	{"Royal", "@king99", 44800, 4900, true, []string{"purple", "royal", "premium"}, "linear-gradient(135deg,#1a0533,#3d0068)", "#c084fc"},
	{"Gold Rush", "@riches", 38900, 4200, false, []string{"gold", "luxury"}, "linear-gradient(135deg,#3d2900,#7a5200)", "#fbbf24"},
	{"Midnight", "@night_dev", 35400, 3800, false, []string{"dark", "minimal"}, "linear-gradient(135deg,#1a1a2e,#16213e)", "#6366f1"},
	{"Cosmic", "@spacex", 29100, 3100, true, []string{"space", "stars"}, "linear-gradient(135deg,#0d0221,#1a0547)", "#818cf8"},
}

// Templates returns the template catalog.
func Templates() []Template {
	out := make([]Template, len(templates))
	for i, template := range templates {
		template.Tags = append([]string(nil), template.Tags...)
		out[i] = template
	}
	return out
}

// LookupTemplate finds a template by name, ignoring case.
func LookupTemplate(name string) (Template, bool) {
	name = strings.TrimSpace(name)
	for _, template := range templates {
		if strings.EqualFold(template.Name, name) {
			template.Tags = append([]string(nil), template.Tags...)
			return template, true
		}
	}
	return Template{}, false
}

// # Link Glyphs

var linkGlyphs = []string{"🔗", "🌐", "📦", "☕", "🎮", "🎵", "📸", "🛒", "💼", "✉️", "🚀", "⭐", "🎨", "📚", "💡", "🏆"}

// LinkGlyphs returns the glyphs a link row cycles through.
func LinkGlyphs() []string {
	return append([]string(nil), linkGlyphs...)
}

// NextLinkGlyph returns the glyph after current, wrapping around. Unknown
// glyphs restart the cycle at the second entry, as if current were the first.
func NextLinkGlyph(current string) string {
	for i, glyph := range linkGlyphs {
		if glyph == current {
			return linkGlyphs[(i+1)%len(linkGlyphs)]
		}
	}
	return linkGlyphs[1]
}
