package handler

import (
	"context"
	"log/slog"
	"time"
	"tzbot/src-server/model"
	"tzbot/src-server/render"
)

// The remote service storing the users' timezones.
type TimezoneBackend interface {
	GetTimezone(ctx context.Context, userID string) (model.TimezoneQueryResult, error)
	SetTimezone(ctx context.Context, userID, timezone string) error
}

type routeFunc func(ctx context.Context, event model.InteractionEvent) *model.Reply

// Router dispatches an InteractionEvent by kind and name. It keeps no state
// between events.
type Router struct {
	backend TimezoneBackend
	now     func() time.Time

	// keyed by command name
	cmdHandler map[string]routeFunc
	// keyed by component custom id
	msgComponentHandler map[string]routeFunc
}

// NewRouter wires all known commands and components. now defaults to
// time.Now.
func NewRouter(backend TimezoneBackend, now func() time.Time) *Router {
	if now == nil {
		now = time.Now
	}
	r := &Router{
		backend:             backend,
		now:                 now,
		cmdHandler:          make(map[string]routeFunc),
		msgComponentHandler: make(map[string]routeFunc),
	}

	myTimezone(r)
	setTimezone(r)
	userTimezone(r)
	timezoneSelect(r)

	return r
}

// Handle returns the reply for event, or nil when the event isn't one this
// bot answers.
func (r *Router) Handle(ctx context.Context, event model.InteractionEvent) *model.Reply {
	var handlers map[string]routeFunc
	switch event.Kind {
	case model.InteractionKindCommand:
		handlers = r.cmdHandler
	case model.InteractionKindMenuSelection:
		handlers = r.msgComponentHandler
	default:
		loggerFrom(ctx).Debug("ignoring interaction", "kind", event.Kind, "name", event.Name)
		return nil
	}

	if handler, ok := handlers[event.Name]; ok {
		return handler(ctx, event)
	}
	loggerFrom(ctx).Debug("someone used an unknown interaction", "kind", event.Kind, "name", event.Name, "user_id", event.UserID)
	return &model.Reply{
		Panel:     render.Unknown(event.Name),
		Ephemeral: true,
	}
}

type loggerCtxKeyType string

const loggerCtxKey loggerCtxKeyType = "logger"

func withLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
