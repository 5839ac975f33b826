// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"log/slog"

	"github.com/taibuivan/biolink/internal/platform/ctxutil"
)

// LogNotifier writes notifications to the structured log. It is the default
// [Notifier] for processes without a toast surface, such as the CLI.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a [Notifier] backed by logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs message at a level matching kind.
func (notifier *LogNotifier) Notify(context context.Context, message string, kind NoticeKind) {
	level := slog.LevelInfo
	if kind == NoticeError {
		level = slog.LevelWarn
	}

	notifier.logger.LogAttrs(context, level, "notice",
		slog.String("kind", string(kind)),
		slog.String("message", message),
		slog.String("request_id", ctxutil.GetRequestID(context)),
	)
}

// Notifiers delivers every notification to each member in order.
type Notifiers []Notifier

// Notify implements [Notifier].
func (notifiers Notifiers) Notify(context context.Context, message string, kind NoticeKind) {
	for _, notifier := range notifiers {
		notifier.Notify(context, message, kind)
	}
}
