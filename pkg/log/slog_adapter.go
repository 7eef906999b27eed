package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level, or Error
// level for ActionError.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("walk_id", event.WalkID),
		slog.String("action", event.Action.String()),
	}
	if event.Group != "" {
		attrs = append(attrs, slog.String("group", event.Group))
	}
	if event.Node != "" {
		attrs = append(attrs,
			slog.String("node", event.Node),
			slog.String("kind", event.Kind.String()),
		)
	}

	level := slog.LevelDebug
	switch event.Action {
	case ActionSkip:
		attrs = append(attrs, slog.String("reason", event.Reason.String()))
	case ActionExpand:
		attrs = append(attrs, slog.Int("children", event.Count))
	case ActionEmit:
		attrs = append(attrs, slog.Int("occurrences", event.Count))
		if len(event.Selectors) > 0 {
			attrs = append(attrs,
				slog.Any("selectors", event.Selectors),
				slog.Int("combinations", event.Combinations),
			)
		}
	case ActionWalkEnd:
		attrs = append(attrs,
			slog.Int("occurrences", event.Count),
			slog.Duration("duration", event.Duration),
		)
	case ActionError:
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), level, "walk", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
