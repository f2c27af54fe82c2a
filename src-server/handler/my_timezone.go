package handler

import (
	"context"
	"tzbot/src-server/model"
	"tzbot/src-server/render"
)

const CmdMyTimezone = "mytimezone"

func myTimezone(r *Router) {
	r.cmdHandler[CmdMyTimezone] = myTimezoneHandler(r)
}

func myTimezoneHandler(r *Router) routeFunc {
	return func(ctx context.Context, event model.InteractionEvent) *model.Reply {
		result, err := r.backend.GetTimezone(ctx, event.UserID)
		if err != nil {
			loggerFrom(ctx).Error("can't fetch timezone", "user_id", event.UserID, "error", err)
			return &model.Reply{Panel: render.FetchError(render.Subject{})}
		}
		return &model.Reply{Panel: render.Query(result, render.Subject{}, r.now())}
	}
}
