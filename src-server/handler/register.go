package handler

import (
	"fmt"
	"tzbot/src-server/catalog"
	"tzbot/src-server/model"

	"github.com/bwmarrin/discordgo"
)

// The part of *discordgo.Session used to register slash commands.
type CommandOverwriter interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

type RegistrationError struct {
	Err error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("can't register slash commands: %s", e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// RegisterAll replaces the application's command set with defs. Commands
// missing from defs are removed by Discord. An empty guildID registers
// global commands.
func RegisterAll(reg CommandOverwriter, appID, guildID string, defs []model.CommandDefinition) error {
	if _, err := reg.ApplicationCommandBulkOverwrite(
		appID,
		guildID,
		catalog.ToApplicationCommands(defs),
	); err != nil {
		return &RegistrationError{Err: err}
	}
	return nil
}
