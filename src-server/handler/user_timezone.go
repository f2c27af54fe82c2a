package handler

import (
	"context"
	"regexp"
	"tzbot/src-server/model"
	"tzbot/src-server/render"

	"github.com/samber/mo"
)

const (
	CmdUserTimezone = "user_timezone"
	userTimezoneArg = "username"
)

var mentionPattern = regexp.MustCompile(`^<@(\d+)>$`)

// ExtractUserID returns the snowflake inside a "<@123>" mention.
func ExtractUserID(mention string) mo.Option[string] {
	match := mentionPattern.FindStringSubmatch(mention)
	if match == nil {
		return mo.None[string]()
	}
	return mo.Some(match[1])
}

func userTimezone(r *Router) {
	r.cmdHandler[CmdUserTimezone] = userTimezoneHandler(r)
}

func userTimezoneHandler(r *Router) routeFunc {
	return func(ctx context.Context, event model.InteractionEvent) *model.Reply {
		username := event.Arg(userTimezoneArg)
		subject := render.Subject{Display: username}

		// without an id there's nothing to look up
		targetID, ok := ExtractUserID(username).Get()
		if !ok {
			loggerFrom(ctx).Debug("username is not a mention", "username", username)
			return &model.Reply{Panel: render.Empty(subject)}
		}

		result, err := r.backend.GetTimezone(ctx, targetID)
		if err != nil {
			loggerFrom(ctx).Error("can't fetch user's timezone", "target_id", targetID, "error", err)
			return &model.Reply{Panel: render.FetchError(subject)}
		}
		return &model.Reply{Panel: render.Query(result, subject, r.now())}
	}
}
