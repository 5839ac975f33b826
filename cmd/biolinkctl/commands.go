// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/taibuivan/biolink/internal/animation"
	"github.com/taibuivan/biolink/internal/completion"
	"github.com/taibuivan/biolink/internal/platform/apperr"
	"github.com/taibuivan/biolink/internal/platform/validate"
	"github.com/taibuivan/biolink/internal/profile"
	"github.com/taibuivan/biolink/internal/render"
)

// Views accepted by the render command.
const (
	viewPublic  = "public"
	viewPreview = "preview"
)

// # Session

func (c *cli) registerCommand() *cobra.Command {
	var input profile.RegisterInput

	command := &cobra.Command{
		Use:   "register",
		Short: "Create a profile and sign in",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			record, err := c.service().Register(command.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Signed in as @%s (UID #%s)\n", record.Identity, render.FormatUID(record.SequentialID))
			return nil
		},
	}

	command.Flags().StringVarP(&input.Username, "username", "u", "", "Username (normalized to a-z, 0-9 and _)")
	command.Flags().StringVarP(&input.Email, "email", "e", "", "Email address")
	command.Flags().StringVarP(&input.Password, "password", "p", "", "Password (at least 6 characters)")

	return command
}

func (c *cli) loginCommand() *cobra.Command {
	var password string

	command := &cobra.Command{
		Use:   "login <username-or-email>",
		Short: "Sign in with a username or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			identity, err := c.service().Login(command.Context(), profile.LoginInput{Login: args[0], Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Signed in as @%s\n", identity)
			return nil
		},
	}

	command.Flags().StringVarP(&password, "password", "p", "", "Password")
	return command
}

func (c *cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return c.service().Logout(command.Context())
		},
	}
}

func (c *cli) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in username",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			identity, ok, err := c.service().Current(command.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(c.out, "not signed in")
				return nil
			}
			fmt.Fprintf(c.out, "@%s\n", identity)
			return nil
		},
	}
}

// # Profiles

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <username>",
		Short: "Print a profile card",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			record, err := c.service().Profile(command.Context(), args[0])
			if err != nil {
				return err
			}
			preview := render.ProjectPreview(record)
			fmt.Fprintln(c.out, renderCard(preview.Card, preview.BioLine))
			fmt.Fprintln(c.out, handleStyle.Render(shareURL(c.app.Config.PublicBaseURL, record.Identity)))
			return nil
		},
	}
}

// shareURL is the public page address for identity.
func shareURL(base, identity string) string {
	return strings.TrimRight(base, "/") + "/u/" + identity
}

func (c *cli) renderCommand() *cobra.Command {
	var view string

	command := &cobra.Command{
		Use:   "render <username>",
		Short: "Write the HTML of a profile view to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			validator := &validate.Validator{}
			if err := validator.OneOf("view", view, viewPublic, viewPreview).Err(); err != nil {
				// Flag errors are not service notices; report them as plain errors.
				return fmt.Errorf("unknown view %q: %s", view, apperr.UserMessage(err))
			}

			record, err := c.service().Profile(command.Context(), args[0])
			if err != nil {
				return err
			}

			var body templ.Component
			if view == viewPreview {
				body = render.PreviewCard(render.ProjectPreview(record))
			} else {
				body = render.PublicPage(render.ProjectPublic(record))
			}

			return render.Layout("@"+record.Identity, body).Render(command.Context(), c.out)
		},
	}

	command.Flags().StringVar(&view, "view", viewPublic, "View to render: public or preview")
	return command
}

func (c *cli) scoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Print the completion checklist of the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			record, err := c.service().Me(command.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderScore(completion.Evaluate(record)))
			return nil
		},
	}
}

// # Animation

func (c *cli) playCommand() *cobra.Command {
	var duration time.Duration

	command := &cobra.Command{
		Use:   "play <username>",
		Short: "Visit a profile and play its bio and audio animation",
		Long: `Visit a profile and play its animations in the terminal.

The visit counts as a profile view. The bio lines are typed and deleted in
a loop, and the audio widget plays when the profile names a track.`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			record, err := c.service().RecordView(command.Context(), args[0])
			if err != nil {
				return err
			}

			preview := render.ProjectPreview(record)
			fmt.Fprintln(c.out, renderCard(preview.Card, ""))

			var mu sync.Mutex
			stage := animation.NewStage(c.scheduler, func(frame animation.Frame) {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprint(c.out, "\r\033[K"+renderFrame(frame))
			})

			stage.Enter(record)
			stage.TogglePlay()

			select {
			case <-time.After(duration):
			case <-command.Context().Done():
			}

			stage.Stop()

			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(c.out)
			return nil
		},
	}

	command.Flags().DurationVar(&duration, "for", 10*time.Second, "How long to play")
	return command
}
