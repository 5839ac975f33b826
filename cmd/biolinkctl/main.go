// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command biolinkctl manages biolink profiles from the terminal.
//
// It opens the same stores as the HTTP server, configured by the same
// environment variables, so a session started here is the session the web
// dashboard sees.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/taibuivan/biolink/internal/platform/apperr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		// Classified errors were already shown as notices.
		if apperr.As(err) == nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		}
		stop()
		os.Exit(1)
	}
}
