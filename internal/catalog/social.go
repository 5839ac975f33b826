// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// Network identifies an entry of the social network catalog.
type Network string

// Social network identifiers, in catalog order.
const (
	Snapchat     Network = "snapchat"
	YouTube      Network = "youtube"
	Discord      Network = "discord"
	Spotify      Network = "spotify"
	Instagram    Network = "instagram"
	Twitter      Network = "twitter"
	TikTok       Network = "tiktok"
	Telegram     Network = "telegram"
	SoundCloud   Network = "soundcloud"
	PayPal       Network = "paypal"
	GitHub       Network = "github"
	Roblox       Network = "roblox"
	CashApp      Network = "cashapp"
	AppleMusic   Network = "applemusic"
	GitLab       Network = "gitlab"
	Twitch       Network = "twitch"
	Reddit       Network = "reddit"
	VK           Network = "vk"
	Notion       Network = "notion"
	LinkedIn     Network = "linkedin"
	Steam        Network = "steam"
	Kick         Network = "kick"
	Pinterest    Network = "pinterest"
	LastFM       Network = "lastfm"
	KoFi         Network = "kofi"
	BuyMeACoffee Network = "buymeacoffee"
	Facebook     Network = "facebook"
	Threads      Network = "threads"
	Patreon      Network = "patreon"
	Signal       Network = "signal"
	Bitcoin      Network = "bitcoin"
	Ethereum     Network = "ethereum"
	Monero       Network = "monero"
	Email        Network = "email"
)

// defaultSocialGlyph is shown for networks without a dedicated glyph.
const defaultSocialGlyph = "🔗"

// Social describes one catalog network.
type Social struct {
	Network     Network `json:"network"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Placeholder string  `json:"placeholder"`
	Glyph       string  `json:"glyph"`
}

var socials = []Social{
	{Snapchat, "Snapchat", "#FFFC00", "https://snapchat.com/add/username", defaultSocialGlyph},
	{YouTube, "YouTube", "#FF0000", "https://youtube.com/@channel", "▶"},
	{Discord, "Discord", "#5865F2", "https://discord.gg/invite", "💬"},
	{Spotify, "Spotify", "#1DB954", "https://open.spotify.com/user/...", defaultSocialGlyph},
	{Instagram, "Instagram", "#E1306C", "https://instagram.com/username", "📷"},
	{Twitter, "Twitter / X", "#1DA1F2", "https://twitter.com/username", "𝕏"},
	{TikTok, "TikTok", "#010101", "https://tiktok.com/@username", "🎵"},
	{Telegram, "Telegram", "#26A5E4", "https://t.me/username", "✈"},
	{SoundCloud, "SoundCloud", "#FF5500", "https://soundcloud.com/username", defaultSocialGlyph},
	{PayPal, "PayPal", "#003087", "https://paypal.me/username", defaultSocialGlyph},
	{GitHub, "GitHub", "#181717", "https://github.com/username", "🐙"},
	{Roblox, "Roblox", "#FF0000", "https://roblox.com/users/...", defaultSocialGlyph},
	{CashApp, "Cash App", "#00D632", "https://cash.app/$username", defaultSocialGlyph},
	{AppleMusic, "Apple Music", "#FC3C44", "https://music.apple.com/...", defaultSocialGlyph},
	{GitLab, "GitLab", "#FC6D26", "https://gitlab.com/username", defaultSocialGlyph},
	{Twitch, "Twitch", "#9146FF", "https://twitch.tv/username", defaultSocialGlyph},
	{Reddit, "Reddit", "#FF4500", "https://reddit.com/u/username", defaultSocialGlyph},
	{VK, "VKontakte", "#4680C2", "https://vk.com/username", defaultSocialGlyph},
	{Notion, "Notion", "#000000", "https://notion.so/...", defaultSocialGlyph},
	{LinkedIn, "LinkedIn", "#0A66C2", "https://linkedin.com/in/username", defaultSocialGlyph},
	{Steam, "Steam", "#1b2838", "https://steamcommunity.com/id/...", "🎮"},
	{Kick, "Kick", "#53FC18", "https://kick.com/username", defaultSocialGlyph},
	{Pinterest, "Pinterest", "#BD081C", "https://pinterest.com/username", defaultSocialGlyph},
	{LastFM, "Last.fm", "#D51007", "https://last.fm/user/username", defaultSocialGlyph},
	{KoFi, "Ko-fi", "#FF5E5B", "https://ko-fi.com/username", defaultSocialGlyph},
	{BuyMeACoffee, "Buy Me Coffee", "#FFDD00", "https://buymeacoffee.com/username", defaultSocialGlyph},
	{Facebook, "Facebook", "#1877F2", "https://facebook.com/username", defaultSocialGlyph},
	{Threads, "Threads", "#000000", "https://threads.net/@username", defaultSocialGlyph},
	{Patreon, "Patreon", "#FF424D", "https://patreon.com/username", defaultSocialGlyph},
	{Signal, "Signal", "#3A76F0", "https://signal.me/#p/...", defaultSocialGlyph},
	{Bitcoin, "Bitcoin", "#F7931A", "https://...", defaultSocialGlyph},
	{Ethereum, "Ethereum", "#627EEA", "https://...", defaultSocialGlyph},
	{Monero, "Monero", "#FF6600", "https://...", defaultSocialGlyph},
	{Email, "Email", "#EA4335", "mailto:you@example.com", defaultSocialGlyph},
}

// Socials returns the network catalog in display order.
func Socials() []Social {
	out := make([]Social, len(socials))
	copy(out, socials)
	return out
}

// LookupSocial returns the catalog entry for network.
func LookupSocial(network Network) (Social, bool) {
	for _, social := range socials {
		if social.Network == network {
			return social, true
		}
	}
	return Social{}, false
}

// Valid reports whether network is a catalog network.
func (network Network) Valid() bool {
	_, ok := LookupSocial(network)
	return ok
}
