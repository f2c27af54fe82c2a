package handler

import (
	"context"
	"errors"
	"fmt"
	"tzbot/src-server/backend"
	"tzbot/src-server/model"
	"tzbot/src-server/render"
)

const (
	CmdSetTimezone   = "settimezone"
	TimezoneSelectID = "timezone_select"

	// Discord's limit for a single select menu
	maxSelectMenuOptions = 25
)

// TimezoneOptions lists one Etc/GMT zone per whole-hour offset from -12 to
// +12. Etc/GMT names use the POSIX sign, so GMT+5:00 is Etc/GMT-5.
func TimezoneOptions() []model.SelectOption {
	options := make([]model.SelectOption, 0, maxSelectMenuOptions)
	for offset := -12; offset <= 12 && len(options) < maxSelectMenuOptions; offset++ {
		sign, abs := "-", offset
		if offset < 0 {
			sign, abs = "+", -offset
		}
		options = append(options, model.SelectOption{
			Label: fmt.Sprintf("GMT%+d:00", offset),
			Value: fmt.Sprintf("Etc/GMT%s%d", sign, abs),
		})
	}
	return options
}

func setTimezone(r *Router) {
	r.cmdHandler[CmdSetTimezone] = setTimezoneHandler(r)
}

// Only shows the menu, the backend is called once something is picked.
func setTimezoneHandler(r *Router) routeFunc {
	return func(ctx context.Context, event model.InteractionEvent) *model.Reply {
		return &model.Reply{
			Panel: render.SelectPrompt(),
			Menu: &model.SelectMenu{
				CustomID:    TimezoneSelectID,
				Placeholder: "Select your timezone",
				Options:     TimezoneOptions(),
			},
		}
	}
}

func timezoneSelect(r *Router) {
	r.msgComponentHandler[TimezoneSelectID] = timezoneSelectHandler(r)
}

func timezoneSelectHandler(r *Router) routeFunc {
	return func(ctx context.Context, event model.InteractionEvent) *model.Reply {
		if len(event.Values) == 0 {
			loggerFrom(ctx).Warn("timezone menu submitted without a value", "user_id", event.UserID)
			return &model.Reply{Panel: render.SetFailure("no timezone selected")}
		}
		timezone := event.Values[0]

		err := r.backend.SetTimezone(ctx, event.UserID, timezone)
		var setErr *backend.SetError
		switch {
		case err == nil:
			return &model.Reply{Panel: render.SetSuccess(timezone)}
		case errors.As(err, &setErr):
			loggerFrom(ctx).Warn("backend refused timezone", "user_id", event.UserID, "timezone", timezone, "error", err)
			return &model.Reply{Panel: render.SetFailure(setErr.Reason())}
		default:
			loggerFrom(ctx).Error("can't set timezone", "user_id", event.UserID, "timezone", timezone, "error", err)
			return &model.Reply{Panel: render.SetError()}
		}
	}
}
