package model

import "github.com/bwmarrin/discordgo"

type PanelField struct {
	Name   string
	Value  string
	Inline bool
}

// A color-coded message panel, rendered as a Discord embed
type ResponsePanel struct {
	Title       string
	Description string // optional
	Color       int
	Fields      []PanelField // optional
	Footer      string
}

func (p ResponsePanel) ToDiscordEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       p.Title,
		Description: p.Description,
		Color:       p.Color,
	}
	if p.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}
	for _, field := range p.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return embed
}

type SelectOption struct {
	Label string
	Value string
}

type SelectMenu struct {
	CustomID    string
	Placeholder string
	Options     []SelectOption
}

func (m SelectMenu) ToDiscordComponent() discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(m.Options))
	for _, opt := range m.Options {
		options = append(options, discordgo.SelectMenuOption{
			Label: opt.Label,
			Value: opt.Value,
		})
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    m.CustomID,
				Placeholder: m.Placeholder,
				Options:     options,
			},
		},
	}
}

// Everything the bot sends back for one interaction: a panel, and
// optionally a selection menu underneath it.
type Reply struct {
	Panel     ResponsePanel
	Menu      *SelectMenu
	Ephemeral bool
}

func (r *Reply) ToInteractionResponse() *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{r.Panel.ToDiscordEmbed()},
	}
	if r.Menu != nil {
		data.Components = []discordgo.MessageComponent{r.Menu.ToDiscordComponent()}
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
