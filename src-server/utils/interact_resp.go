package utils

import (
	"fmt"
	"time"
	"tzbot/src-server/model"

	"github.com/bwmarrin/discordgo"
)

// The part of *discordgo.Session used to answer interactions.
type InteractionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Send the reply to the interaction, timing the round trip into metric.
// metric may be nil.
func InteractRespReply(s InteractionResponder, i *discordgo.Interaction, reply *model.Reply, metric *Metric) error {
	startTimer := time.Now()
	if err := s.InteractionRespond(i, reply.ToInteractionResponse()); err != nil {
		return fmt.Errorf("InteractRespReply: can't respond: %w", err)
	}
	if metric != nil {
		metric.ObserveDiscordSendMessage(time.Since(startTimer))
	}
	return nil
}
