// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/platform/constants"
	"github.com/taibuivan/biolink/internal/platform/validate"
	"github.com/taibuivan/biolink/pkg/handle"
	"github.com/taibuivan/biolink/pkg/pointer"
)

// Input limits.
const (
	SecretMinLen      = 6
	DisplayNameMaxLen = 50
	BioLineMaxLen     = 160
	BioLinesMax       = 10
)

var errNotSignedIn = apperr.NotFoundMessage("Not signed in")

// Service implements the profile use cases on top of [Repository].
//
// # Notifications
//
// Every user-visible outcome is reported to the [Notifier]: a success or
// info message when the operation completes, the user-facing error message
// otherwise. The error is still returned so callers can pick a status code.
type Service struct {
	repository *Repository
	notifier   Notifier
	logger     *slog.Logger
}

// NewService constructs a [Service].
func NewService(repository *Repository, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		notifier:   notifier,
		logger:     logger,
	}
}

// Repository exposes the underlying repository for read paths such as
// rendering and health checks.
func (service *Service) Repository() *Repository {
	return service.repository
}

// # Authentication

// RegisterInput holds the three registration fields.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register validates the input, creates the profile and signs it in.

Description: The username is normalized to the handle charset first, so
"Nova!" registers as "nova".

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Record: The created profile
  - error: VALIDATION_ERROR, CONFLICT or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Record, error) {
	username := handle.From(input.Username)
	email := strings.TrimSpace(input.Email)

	validator := &validate.Validator{}
	validator.
		Required("username", username).
		Identity("username", username).
		Required("email", email).
		Contains("email", email, "@", "Enter a valid email").
		MinLen("password", input.Password, SecretMinLen)

	if err := validator.Err(); err != nil {
		return nil, service.fail(context, err)
	}

	identity, err := service.repository.AllocateIdentity(context, username)
	if err != nil {
		return nil, service.fail(context, err)
	}

	record, err := service.repository.Create(context, identity, email, input.Password)
	if err != nil {
		return nil, service.fail(context, err)
	}

	service.notifier.Notify(context, "Welcome to biolink! 🎉", NoticeSuccess)
	return record, nil
}

// LoginInput holds a login attempt. Login is either the username or the email.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login authenticates and points the session at the matched identity.
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {
	if strings.TrimSpace(input.Login) == "" || input.Password == "" {
		return "", service.fail(context, apperr.ValidationError("Fill in all fields"))
	}

	identity, err := service.repository.Authenticate(context, input.Login, input.Password)
	if err != nil {
		return "", service.fail(context, err)
	}

	service.notifier.Notify(context, "Welcome back! 👋", NoticeSuccess)
	return identity, nil
}

// Logout clears the session.
func (service *Service) Logout(context context.Context) error {
	if err := service.repository.ClearSession(context); err != nil {
		return service.fail(context, err)
	}
	service.notifier.Notify(context, "You have signed out", NoticeInfo)
	return nil
}

// Current returns the signed-in identity.
func (service *Service) Current(context context.Context) (string, bool, error) {
	return service.repository.CurrentSession(context)
}

// Me loads the signed-in profile.
func (service *Service) Me(context context.Context) (*Record, error) {
	identity, err := service.current(context)
	if err != nil {
		return nil, err
	}
	return service.repository.Load(context, identity)
}

/*
ResolvePage decides which page a navigation request lands on.

Description: The dashboard needs a resolvable session. Without one the
request resolves to the auth page. Every other page passes through.

Parameters:
  - context: context.Context
  - page: string (page token)

Returns:
  - string: The page to show
  - error: Storage failures only
*/
func (service *Service) ResolvePage(context context.Context, page string) (string, error) {
	if page != constants.PageDashboard {
		return page, nil
	}

	_, ok, err := service.repository.CurrentSession(context)
	if err != nil {
		return "", err
	}
	if !ok {
		return constants.PageAuth, nil
	}
	return page, nil
}

// # Settings

// Rename changes the signed-in username. The session follows the profile.
func (service *Service) Rename(context context.Context, candidate string) (*Record, error) {
	identity, err := service.current(context)
	if err != nil {
		return nil, service.fail(context, err)
	}

	next := handle.From(candidate)
	if err := service.repository.Rename(context, identity, next); err != nil {
		return nil, service.fail(context, err)
	}

	record, err := service.repository.Load(context, next)
	if err != nil {
		return nil, service.fail(context, err)
	}

	service.notifier.Notify(context, "Username updated!", NoticeSuccess)
	return record, nil
}

// UpdateEmail replaces the contact. It must contain "@".
func (service *Service) UpdateEmail(context context.Context, email string) (*Record, error) {
	email = strings.TrimSpace(email)

	validator := &validate.Validator{}
	if err := validator.Contains("email", email, "@", "Enter a valid email").Err(); err != nil {
		return nil, service.fail(context, err)
	}

	return service.update(context, Patch{Contact: &email}, "Email updated!")
}

// UpdatePassword replaces the secret. It must have at least [SecretMinLen] characters.
func (service *Service) UpdatePassword(context context.Context, password string) (*Record, error) {
	validator := &validate.Validator{}
	if err := validator.MinLen("password", password, SecretMinLen).Err(); err != nil {
		return nil, service.fail(context, err)
	}

	return service.update(context, Patch{Secret: &password}, "Password updated!")
}

// ConnectDiscord marks the Discord account as connected.
func (service *Service) ConnectDiscord(context context.Context) (*Record, error) {
	return service.update(context, Patch{DiscordConnected: pointer.To(true)}, "Discord connected")
}

// DisconnectDiscord marks the Discord account as disconnected.
func (service *Service) DisconnectDiscord(context context.Context) (*Record, error) {
	return service.updateKind(context, Patch{DiscordConnected: pointer.To(false)}, "Discord disconnected", NoticeInfo)
}

// # Customize

// SaveCustomize applies the editor form patch. The display name and every
// bio line are bounded in length; the bio holds at most [BioLinesMax] lines.
func (service *Service) SaveCustomize(context context.Context, patch Patch) (*Record, error) {
	validator := &validate.Validator{}
	if patch.DisplayName != nil {
		validator.MaxLen("display_name", *patch.DisplayName, DisplayNameMaxLen)
	}
	if patch.BioLines != nil {
		lines := NormalizeBioLines(*patch.BioLines)
		validator.Custom("bio", len(lines) > BioLinesMax, fmt.Sprintf("At most %d bio lines", BioLinesMax))
		for _, line := range lines {
			validator.MaxLen("bio", line, BioLineMaxLen)
		}
	}
	if err := validator.Err(); err != nil {
		return nil, service.fail(context, err)
	}

	return service.update(context, patch, "Profile saved! 🎉")
}

// SetAvatar replaces the avatar glyph.
func (service *Service) SetAvatar(context context.Context, glyph string) (*Record, error) {
	glyph = strings.TrimSpace(glyph)

	validator := &validate.Validator{}
	if err := validator.Required("avatar", glyph).Err(); err != nil {
		return nil, service.fail(context, err)
	}

	return service.update(context, Patch{AvatarGlyph: &glyph}, "Avatar updated")
}

// SetBanner replaces the banner style.
func (service *Service) SetBanner(context context.Context, style string) (*Record, error) {
	style = strings.TrimSpace(style)

	validator := &validate.Validator{}
	if err := validator.Required("banner", style).Err(); err != nil {
		return nil, service.fail(context, err)
	}

	return service.update(context, Patch{BannerStyle: &style}, "Banner updated")
}

// ApplyTemplate sets the banner style to the named template's background.
func (service *Service) ApplyTemplate(context context.Context, name string) (*Record, error) {
	template, ok := catalog.LookupTemplate(name)
	if !ok {
		return nil, service.fail(context, apperr.NotFound("Template"))
	}

	return service.update(context, Patch{BannerStyle: pointer.To(template.Background)}, "Template applied!")
}

// # Links

// SaveLinks replaces the whole link list.
func (service *Service) SaveLinks(context context.Context, links []Link) (*Record, error) {
	if links == nil {
		links = []Link{}
	}
	return service.update(context, Patch{Links: &links}, "Links saved! 🔗")
}

// AddLink appends a default link row.
func (service *Service) AddLink(context context.Context) (*Record, error) {
	return service.edit(context, "Link added", NoticeInfo, func(record *Record) error {
		record.Links = append(record.Links, NewLink())
		return nil
	})
}

// CycleLinkGlyph advances the glyph of the link at index through
// [catalog.LinkGlyphs].
func (service *Service) CycleLinkGlyph(context context.Context, index int) (*Record, error) {
	return service.edit(context, "Link icon changed", NoticeInfo, func(record *Record) error {
		validator := &validate.Validator{}
		if err := validator.Custom("index", index < 0 || index >= len(record.Links), "No such link").Err(); err != nil {
			return err
		}
		record.Links[index].Glyph = catalog.NextLinkGlyph(record.Links[index].Glyph)
		return nil
	})
}

// # Socials

// SaveSocial sets the URL of one network. An empty URL removes it.
func (service *Service) SaveSocial(context context.Context, network catalog.Network, url string) (*Record, error) {
	if !network.Valid() {
		return nil, service.fail(context, apperr.NotFound("Social network"))
	}

	patch := Patch{SocialLinks: map[catalog.Network]string{network: url}}
	return service.update(context, patch, "Social saved! 🔗")
}

// DeleteSocial removes one network.
func (service *Service) DeleteSocial(context context.Context, network catalog.Network) (*Record, error) {
	if !network.Valid() {
		return nil, service.fail(context, apperr.NotFound("Social network"))
	}

	patch := Patch{SocialLinks: map[catalog.Network]string{network: ""}}
	return service.updateKind(context, patch, "Social removed", NoticeInfo)
}

// # Badges

/*
ToggleBadge adds or removes a catalog badge.

Parameters:
  - context: context.Context
  - id: catalog.BadgeID

Returns:
  - *Record: The updated profile
  - bool: Whether the badge is now active
  - error: VALIDATION_ERROR for unknown badges, FORBIDDEN for locked ones
*/
func (service *Service) ToggleBadge(context context.Context, id catalog.BadgeID) (*Record, bool, error) {
	if !id.Valid() {
		return nil, false, service.fail(context, apperr.ValidationError("Unknown badge"))
	}
	if id.Locked() {
		return nil, false, service.fail(context, apperr.Forbidden("This badge requires special conditions"))
	}

	var active bool
	updated, err := service.edit(context, "", NoticeSuccess, func(record *Record) error {
		active = !record.HasBadge(id)
		badges := make([]catalog.BadgeID, 0, len(record.Badges)+1)
		for _, existing := range record.Badges {
			if existing != id {
				badges = append(badges, existing)
			}
		}
		if active {
			badges = append(badges, id)
		}
		record.Badges = badges
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if active {
		service.notifier.Notify(context, "Badge enabled!", NoticeSuccess)
	} else {
		service.notifier.Notify(context, "Badge disabled", NoticeSuccess)
	}
	return updated, active, nil
}

// # Public Reads

// Profile loads any profile by identity.
func (service *Service) Profile(context context.Context, identity string) (*Record, error) {
	return service.repository.Load(context, strings.ToLower(strings.TrimSpace(identity)))
}

// RecordView counts one public visit and returns the visited profile.
func (service *Service) RecordView(context context.Context, identity string) (*Record, error) {
	return service.repository.IncrementViews(context, strings.ToLower(strings.TrimSpace(identity)))
}

// Stats returns the live counters.
func (service *Service) Stats(context context.Context) (Stats, error) {
	return service.repository.Stats(context)
}

// # Internals

func (service *Service) current(context context.Context) (string, error) {
	identity, ok, err := service.repository.CurrentSession(context)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNotSignedIn
	}
	return identity, nil
}

func (service *Service) update(context context.Context, patch Patch, message string) (*Record, error) {
	return service.updateKind(context, patch, message, NoticeSuccess)
}

func (service *Service) updateKind(context context.Context, patch Patch, message string, kind NoticeKind) (*Record, error) {
	identity, err := service.current(context)
	if err != nil {
		return nil, service.fail(context, err)
	}

	record, err := service.repository.Patch(context, identity, patch)
	if err != nil {
		return nil, service.fail(context, err)
	}

	service.notifier.Notify(context, message, kind)
	return record, nil
}

// edit runs change on the signed-in record under the repository lock. An
// empty message leaves the success notice to the caller.
func (service *Service) edit(context context.Context, message string, kind NoticeKind, change func(*Record) error) (*Record, error) {
	identity, err := service.current(context)
	if err != nil {
		return nil, service.fail(context, err)
	}

	record, err := service.repository.Update(context, identity, change)
	if err != nil {
		return nil, service.fail(context, err)
	}

	if message != "" {
		service.notifier.Notify(context, message, kind)
	}
	return record, nil
}

// fail reports err to the notifier and returns it unchanged. Unclassified
// errors are logged since their message is replaced by a generic one.
func (service *Service) fail(context context.Context, err error) error {
	if apperr.As(err) == nil {
		service.logger.Error("profile_operation_failed", slog.Any("error", err))
	}
	service.notifier.Notify(context, apperr.UserMessage(err), NoticeError)
	return err
}
