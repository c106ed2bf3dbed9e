package logging

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// SentryHandler forwards ERROR records to Sentry. It is a no-op until
// sentry.Init has bound a client to the hub.
type SentryHandler struct {
	hub   *sentry.Hub
	attrs []slog.Attr
	group string
}

func NewSentryHandler(hub *sentry.Hub) *SentryHandler {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryHandler{hub: hub}
}

func (h *SentryHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *SentryHandler) Handle(ctx context.Context, record slog.Record) error {
	hub := h.hub
	if ctxHub := sentry.GetHubFromContext(ctx); ctxHub != nil {
		hub = ctxHub
	}
	if hub.Client() == nil {
		return nil
	}

	details := sentry.Context{}
	for _, a := range h.attrs {
		details[h.key(a.Key)] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		details[h.key(a.Key)] = a.Value.String()
		return true
	})

	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Message = record.Message
	event.Timestamp = record.Time
	event.Contexts["log"] = details

	hub.CaptureEvent(event)
	return nil
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = h.key(name)
	return &next
}

func (h *SentryHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}
