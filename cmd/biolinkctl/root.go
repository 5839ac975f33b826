// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taibuivan/biolink/internal/animation"
	"github.com/taibuivan/biolink/internal/app"
	"github.com/taibuivan/biolink/internal/platform/config"
	"github.com/taibuivan/biolink/internal/platform/constants"
	"github.com/taibuivan/biolink/internal/profile"
)

// cli carries what every subcommand needs once the root has wired the app.
type cli struct {
	out    io.Writer
	errOut io.Writer

	verbose   bool
	app       *app.App
	scheduler animation.Scheduler
}

func (c *cli) service() *profile.Service {
	return c.app.Service
}

// newRootCommand builds the command tree writing to out and errOut.
func newRootCommand(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut, scheduler: animation.ClockScheduler{}}

	root := &cobra.Command{
		Use:   "biolinkctl",
		Short: "Manage biolink profiles",
		Long: `Manage biolink profiles from the terminal.

The store is selected with STORE_DRIVER (sqlite, postgres, redis, memory)
and SESSION_DRIVER, exactly like the HTTP server.`,
		Version:           constants.AppVersion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
		PersistentPostRun: func(*cobra.Command, []string) { c.close() },
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Write structured logs to stderr")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.showCommand(),
		c.renderCommand(),
		c.scoreCommand(),
		c.playCommand(),
	)

	return root
}

// open loads configuration and wires the app before any subcommand runs.
func (c *cli) open(command *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logWriter := io.Discard
	if c.verbose {
		logWriter = c.errOut
	}
	logger := app.NewLogger(logWriter, c.verbose)

	ctx, cancel := context.WithTimeout(command.Context(), constants.StartupTimeout)
	defer cancel()

	c.app, err = app.New(ctx, cfg, logger, &terminalNotifier{out: c.errOut})
	if err != nil {
		return fmt.Errorf("biolinkctl_open_failed: %w", err)
	}
	return nil
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
		c.app = nil
	}
}

// terminalNotifier prints notices as colored lines.
type terminalNotifier struct {
	out io.Writer
}

// Notify implements [profile.Notifier].
func (notifier *terminalNotifier) Notify(_ context.Context, message string, kind profile.NoticeKind) {
	style := infoStyle
	switch kind {
	case profile.NoticeSuccess:
		style = successStyle
	case profile.NoticeError:
		style = errorStyle
	}
	fmt.Fprintln(notifier.out, style.Render(message))
}
