// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/biolink/internal/catalog"
	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/platform/constants"
	"github.com/taibuivan/biolink/internal/profile"
	"github.com/taibuivan/biolink/pkg/pointer"
)

func newService(t *testing.T) (*profile.Service, *recordingNotifier) {
	t.Helper()

	repository, _ := newMemoryRepository(t)
	notifier := &recordingNotifier{}
	return profile.NewService(repository, notifier, discardLogger()), notifier
}

func registerNova(t *testing.T, service *profile.Service) *profile.Record {
	t.Helper()

	record, err := service.Register(context.Background(), profile.RegisterInput{
		Username: "nova", Email: "a@b.com", Password: "secret1",
	})
	require.NoError(t, err)
	return record
}

/*
TestService_RegisterValidation checks the registration field rules.
*/
func TestService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   profile.RegisterInput
		wantErr bool
		field   string
	}{
		{"valid", profile.RegisterInput{Username: "Nova", Email: "a@b.com", Password: "secret1"}, false, ""},
		{"normalized_too_short", profile.RegisterInput{Username: "n!!", Email: "a@b.com", Password: "secret1"}, true, "username"},
		{"missing_username", profile.RegisterInput{Username: "", Email: "a@b.com", Password: "secret1"}, true, "username"},
		{"email_without_at", profile.RegisterInput{Username: "nova", Email: "ab.com", Password: "secret1"}, true, "email"},
		{"short_password", profile.RegisterInput{Username: "nova", Email: "a@b.com", Password: "12345"}, true, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, notifier := newService(t)

			record, err := service.Register(context.Background(), tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "nova", record.Identity)
				assert.Equal(t, profile.NoticeSuccess, notifier.last().kind)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Equal(t, profile.NoticeError, notifier.last().kind)
		})
	}
}

/*
TestService_RegisterTakenUsername verifies the conflict is surfaced as an error notice.
*/
func TestService_RegisterTakenUsername(t *testing.T) {
	service, notifier := newService(t)
	registerNova(t, service)

	_, err := service.Register(context.Background(), profile.RegisterInput{
		Username: "NOVA", Email: "b@b.com", Password: "secret1",
	})
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, notice{"This username is already taken", profile.NoticeError}, notifier.last())
}

/*
TestService_LoginLogoutAndPageGuard runs the session lifecycle through the
navigation guard.
*/
func TestService_LoginLogoutAndPageGuard(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	registerNova(t, service)

	page, err := service.ResolvePage(ctx, constants.PageDashboard)
	require.NoError(t, err)
	assert.Equal(t, constants.PageDashboard, page)

	require.NoError(t, service.Logout(ctx))

	page, err = service.ResolvePage(ctx, constants.PageDashboard)
	require.NoError(t, err)
	assert.Equal(t, constants.PageAuth, page)

	page, err = service.ResolvePage(ctx, constants.PageProfile)
	require.NoError(t, err)
	assert.Equal(t, constants.PageProfile, page)

	_, err = service.Me(ctx)
	assert.True(t, apperr.IsNotFound(err))

	_, err = service.Login(ctx, profile.LoginInput{Login: "", Password: "secret1"})
	assert.True(t, apperr.IsValidation(err))

	identity, err := service.Login(ctx, profile.LoginInput{Login: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "nova", identity)
}

/*
TestService_Settings covers username, email and password changes.
*/
func TestService_Settings(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	registerNova(t, service)

	record, err := service.Rename(ctx, "Stella")
	require.NoError(t, err)
	assert.Equal(t, "stella", record.Identity)

	current, ok, err := service.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "stella", current)

	_, err = service.UpdateEmail(ctx, "nope")
	assert.True(t, apperr.IsValidation(err))

	record, err = service.UpdateEmail(ctx, " new@b.com ")
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", record.Credentials.Contact)

	_, err = service.UpdatePassword(ctx, "short")
	assert.True(t, apperr.IsValidation(err))

	_, err = service.UpdatePassword(ctx, "longer-secret")
	require.NoError(t, err)

	identity, err := service.Login(ctx, profile.LoginInput{Login: "stella", Password: "longer-secret"})
	require.NoError(t, err)
	assert.Equal(t, "stella", identity)
}

/*
TestService_ToggleBadge verifies locked badges are refused and others flip.
*/
func TestService_ToggleBadge(t *testing.T) {
	ctx := context.Background()
	service, notifier := newService(t)
	registerNova(t, service)

	record, active, err := service.ToggleBadge(ctx, catalog.BadgeOG)
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, record.HasBadge(catalog.BadgeOG))

	record, active, err = service.ToggleBadge(ctx, catalog.BadgeVerified)
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, []catalog.BadgeID{catalog.BadgeOG}, record.Badges)

	_, _, err = service.ToggleBadge(ctx, catalog.BadgeStaff)
	assert.True(t, apperr.IsForbidden(err))
	assert.Equal(t, profile.NoticeError, notifier.last().kind)

	_, _, err = service.ToggleBadge(ctx, catalog.BadgeID("admin"))
	assert.True(t, apperr.IsValidation(err))

	me, err := service.Me(ctx)
	require.NoError(t, err)
	assert.False(t, me.HasBadge(catalog.BadgeStaff))
}

/*
TestService_LinksAndSocials covers the link list and per-network edits.
*/
func TestService_LinksAndSocials(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	registerNova(t, service)

	record, err := service.AddLink(ctx)
	require.NoError(t, err)
	require.Len(t, record.Links, len(profile.DefaultLinks())+1)
	assert.Equal(t, profile.NewLink(), record.Links[len(record.Links)-1])

	record, err = service.SaveLinks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, record.Links)

	record, err = service.SaveSocial(ctx, catalog.GitHub, " https://github.com/nova ")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/nova", record.SocialURL(catalog.GitHub))

	record, err = service.DeleteSocial(ctx, catalog.GitHub)
	require.NoError(t, err)
	assert.Empty(t, record.SocialLinks)

	_, err = service.SaveSocial(ctx, catalog.Network("myspace"), "x")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Customize covers avatar, banner, template and Discord toggles.
*/
func TestService_Customize(t *testing.T) {
	ctx := context.Background()
	service, notifier := newService(t)
	registerNova(t, service)

	record, err := service.SetAvatar(ctx, "🦊")
	require.NoError(t, err)
	assert.Equal(t, "🦊", record.Display.AvatarGlyph)

	_, err = service.SetBanner(ctx, "  ")
	assert.True(t, apperr.IsValidation(err))

	record, err = service.ApplyTemplate(ctx, "ocean blue")
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(135deg,#0f2027,#203a43,#2c5364)", record.Display.BannerStyle)

	_, err = service.ApplyTemplate(ctx, "Nope")
	assert.True(t, apperr.IsNotFound(err))

	record, err = service.ConnectDiscord(ctx)
	require.NoError(t, err)
	assert.True(t, record.Discord.Connected)

	record, err = service.DisconnectDiscord(ctx)
	require.NoError(t, err)
	assert.False(t, record.Discord.Connected)
	assert.Equal(t, notice{"Discord disconnected", profile.NoticeInfo}, notifier.last())
}

/*
TestService_PublicReads verifies view counting is keyed by the visited profile.
*/
func TestService_PublicReads(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	created := registerNova(t, service)

	visited, err := service.RecordView(ctx, "NOVA")
	require.NoError(t, err)
	assert.Equal(t, created.ViewCount+1, visited.ViewCount)

	loaded, err := service.Profile(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, visited.ViewCount, loaded.ViewCount)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, loaded.ViewCount, stats.TotalViews)
}

/*
TestService_ConcurrentEditsKeepEveryChange toggles distinct badges and adds
links from many goroutines at once.
*/
func TestService_ConcurrentEditsKeepEveryChange(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	registerNova(t, service)

	toggled := []catalog.BadgeID{catalog.BadgePremium, catalog.BadgeOG, catalog.BadgeArtist}
	const additions = 8

	var wg sync.WaitGroup
	for _, id := range toggled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, active, err := service.ToggleBadge(ctx, id)
			assert.NoError(t, err)
			assert.True(t, active)
		}()
	}
	for range additions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AddLink(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	me, err := service.Me(ctx)
	require.NoError(t, err)
	for _, id := range append(toggled, catalog.BadgeVerified) {
		assert.True(t, me.HasBadge(id), "badge %s lost", id)
	}
	assert.Len(t, me.Links, len(profile.DefaultLinks())+additions)
}

/*
TestService_CycleLinkGlyph walks a link through the glyph list.
*/
func TestService_CycleLinkGlyph(t *testing.T) {
	ctx := context.Background()
	service, notifier := newService(t)
	registerNova(t, service)

	record, err := service.SaveLinks(ctx, []profile.Link{{Glyph: "🔗", Title: "Blog", URL: "#"}})
	require.NoError(t, err)
	require.Len(t, record.Links, 1)

	record, err = service.CycleLinkGlyph(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "🌐", record.Links[0].Glyph)
	assert.Equal(t, notice{"Link icon changed", profile.NoticeInfo}, notifier.last())

	glyphs := catalog.LinkGlyphs()
	for range len(glyphs) - 1 {
		record, err = service.CycleLinkGlyph(ctx, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, "🔗", record.Links[0].Glyph)

	for _, index := range []int{-1, 1} {
		_, err = service.CycleLinkGlyph(ctx, index)
		assert.True(t, apperr.IsValidation(err), "index %d", index)
	}
}

/*
TestService_CustomizeLimits bounds the display name and bio.
*/
func TestService_CustomizeLimits(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)
	registerNova(t, service)

	longName := strings.Repeat("n", profile.DisplayNameMaxLen+1)
	longLine := strings.Repeat("b", profile.BioLineMaxLen+1)
	manyLines := make([]string, profile.BioLinesMax+1)
	for i := range manyLines {
		manyLines[i] = fmt.Sprintf("line %d", i)
	}

	tests := []struct {
		name  string
		patch profile.Patch
		valid bool
	}{
		{"at_limits", profile.Patch{
			DisplayName: pointer.To(strings.Repeat("n", profile.DisplayNameMaxLen)),
			BioLines:    &[]string{strings.Repeat("b", profile.BioLineMaxLen)},
		}, true},
		{"long_name", profile.Patch{DisplayName: &longName}, false},
		{"long_line", profile.Patch{BioLines: &[]string{"ok", longLine}}, false},
		{"too_many_lines", profile.Patch{BioLines: &manyLines}, false},
		{"multibyte_counts_runes", profile.Patch{DisplayName: pointer.To(strings.Repeat("é", profile.DisplayNameMaxLen))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SaveCustomize(ctx, tt.patch)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperr.IsValidation(err), "unexpected error: %v", err)
			}
		})
	}

	me, err := service.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", profile.DisplayNameMaxLen), me.Display.Name)
}
