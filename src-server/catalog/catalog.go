// Package catalog holds the static list of slash commands the bot exposes.
package catalog

import (
	_ "embed"
	"fmt"
	"tzbot/src-server/model"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

//go:embed commands.yaml
var commandsYAML []byte

type ConfigError struct {
	Index  int // -1 when the whole document is malformed
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := "catalog: " + e.Reason
	if e.Index >= 0 {
		msg = fmt.Sprintf("catalog: command #%d: %s", e.Index, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load parses the embedded command catalog.
func Load() ([]model.CommandDefinition, error) {
	return Parse(commandsYAML)
}

// Parse decodes and validates a YAML list of command definitions. Every
// problem found is reported, not just the first one.
func Parse(data []byte) ([]model.CommandDefinition, error) {
	var defs []model.CommandDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, &ConfigError{Index: -1, Reason: "malformed document", Err: err}
	}
	// registration replaces every command, an empty catalog would wipe them
	if len(defs) == 0 {
		return nil, &ConfigError{Index: -1, Reason: "no commands defined"}
	}

	var result *multierror.Error
	seen := make(map[string]int, len(defs))
	for idx, def := range defs {
		if def.Name == "" {
			result = multierror.Append(result, &ConfigError{Index: idx, Reason: "name is required"})
		}
		if def.Description == "" {
			result = multierror.Append(result, &ConfigError{Index: idx, Reason: "description is required"})
		}
		if prev, ok := seen[def.Name]; ok && def.Name != "" {
			result = multierror.Append(result, &ConfigError{
				Index:  idx,
				Reason: fmt.Sprintf("name %q already used by command #%d", def.Name, prev),
			})
		}
		seen[def.Name] = idx
		for optIdx, opt := range def.Options {
			if opt.Name == "" || opt.Description == "" {
				result = multierror.Append(result, &ConfigError{
					Index:  idx,
					Reason: fmt.Sprintf("option #%d needs both name and description", optIdx),
				})
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return defs, nil
}

// ToApplicationCommands converts the catalog into the shape discordgo
// sends to the bulk-overwrite endpoint. Order is preserved.
func ToApplicationCommands(defs []model.CommandDefinition) []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(defs))
	for _, def := range defs {
		cmd := &discordgo.ApplicationCommand{
			Type:        discordgo.ChatApplicationCommand,
			Name:        def.Name,
			Description: def.Description,
		}
		for _, opt := range def.Options {
			cmd.Options = append(cmd.Options, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        opt.Name,
				Description: opt.Description,
				Required:    opt.Required,
			})
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
