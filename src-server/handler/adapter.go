package handler

import (
	"context"
	"log/slog"
	"tzbot/src-server/model"
	"tzbot/src-server/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// FromInteraction converts a discordgo interaction. Unsupported
// interaction types give InteractionKindUnknown.
func FromInteraction(i *discordgo.InteractionCreate) model.InteractionEvent {
	event := model.InteractionEvent{UserID: invokingUserID(i.Interaction)}

	switch i.Type {
	case discordgo.InteractionApplicationCommand: // slash commands
		cmdData := i.ApplicationCommandData()
		event.Kind = model.InteractionKindCommand
		event.Name = cmdData.Name
		event.Args = make(map[string]string, len(cmdData.Options))
		for _, opt := range cmdData.Options {
			if opt.Type == discordgo.ApplicationCommandOptionString {
				event.Args[opt.Name] = opt.StringValue()
			}
		}
	case discordgo.InteractionMessageComponent: // dropdowns
		componentData := i.MessageComponentData()
		if componentData.ComponentType != discordgo.SelectMenuComponent {
			event.Name = componentData.CustomID
			break
		}
		event.Kind = model.InteractionKindMenuSelection
		event.Name = componentData.CustomID
		event.Values = componentData.Values
	}
	return event
}

// In guilds the user sits in Member, in DMs it's User.
func invokingUserID(i *discordgo.Interaction) string {
	if i == nil {
		return ""
	}
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// Attach tells discordgo to send every interaction through the router.
func Attach(as *utils.AppState, router *Router) {
	as.DgSession.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		HandleInteraction(context.Background(), s, i, router, as.MetricChans)
	})
}

// HandleInteraction answers one interaction with at most one reply.
func HandleInteraction(ctx context.Context, s utils.InteractionResponder, i *discordgo.InteractionCreate, router *Router, metric *utils.Metric) {
	if i == nil || i.Interaction == nil {
		return
	}
	event := FromInteraction(i)
	logger := slog.Default().With("trace_id", uuid.NewString())
	if event.Kind == model.InteractionKindUnknown {
		logger.Debug("unsupported interaction type", "type", i.Type.String(), "name", event.Name)
		return
	}

	logger.Debug("interaction received", "kind", event.Kind, "name", event.Name, "user_id", event.UserID)
	reply := router.Handle(withLogger(ctx, logger), event)
	if reply == nil {
		return
	}
	if err := utils.InteractRespReply(s, i.Interaction, reply, metric); err != nil {
		logger.Warn("can't respond", "name", event.Name, "error", err)
	}
}
