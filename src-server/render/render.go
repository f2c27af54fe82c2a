// Package render maps the outcome of an interaction to the panel the user
// sees. Nothing in here does I/O.
package render

import (
	"fmt"
	"time"
	"tzbot/src-server/model"
)

const (
	ColorRed     = 0xFF0000
	ColorOrange  = 0xED620C
	ColorGreen   = 0x00FF00
	ColorDarkRed = 0xF70A0A
	ColorBlue    = 0x0099FF

	Footer = "Timezone Bot"

	// time.Format layout of the "current time" field
	CurrentTimeLayout = "January 2, 2006 at 3:04 PM MST"
)

// Whose timezone a panel talks about. The zero value is the invoking user.
type Subject struct {
	// how the other user was written in the command, e.g. "<@999>"
	Display string
}

func (s Subject) isSelf() bool {
	return s.Display == ""
}

func newPanel(title, description string, color int, fields ...model.PanelField) model.ResponsePanel {
	return model.ResponsePanel{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      fields,
		Footer:      Footer,
	}
}

func Forbidden(message string) model.ResponsePanel {
	return newPanel("Forbidden", message, ColorRed)
}

func Empty(subject Subject) model.ResponsePanel {
	if subject.isSelf() {
		return newPanel("No Timezone Registered", "Use `/settimezone` to set your timezone.", ColorOrange)
	}
	return newPanel(
		"No Timezone Registered",
		fmt.Sprintf("%s has not registered their timezone yet.", subject.Display),
		ColorOrange,
	)
}

// Found renders a registered timezone. Identifiers the zone database can't
// resolve degrade to the InvalidTimezone panel.
func Found(timezone string, subject Subject, now time.Time) model.ResponsePanel {
	loc, ok := LoadZone(timezone)
	if !ok {
		return InvalidTimezone()
	}
	zoneLabel, timeLabel := "Your timezone:", "Your current time"
	if !subject.isSelf() {
		zoneLabel, timeLabel = "User's timezone:", "User's current time"
	}
	return newPanel("Timezone Data", "", ColorGreen,
		model.PanelField{Name: zoneLabel, Value: timezone},
		model.PanelField{Name: timeLabel, Value: CurrentTime(loc, now)},
	)
}

func InvalidTimezone() model.ResponsePanel {
	return newPanel("Invalid timezone provided", "", ColorDarkRed)
}

// Query renders the result of a timezone lookup.
func Query(result model.TimezoneQueryResult, subject Subject, now time.Time) model.ResponsePanel {
	switch result.Status {
	case model.TimezoneQueryForbidden:
		return Forbidden(result.Message)
	case model.TimezoneQueryFound:
		return Found(result.Timezone, subject, now)
	default:
		return Empty(subject)
	}
}

func FetchError(subject Subject) model.ResponsePanel {
	if subject.isSelf() {
		return newPanel("Error", "There was an error fetching the timezone data.", ColorRed)
	}
	return newPanel("Error", "There was an error fetching the user's timezone data.", ColorRed)
}

func SetSuccess(timezone string) model.ResponsePanel {
	return newPanel("Timezone Set", fmt.Sprintf("Your timezone has been set to: %s", timezone), ColorGreen)
}

func SetFailure(reason string) model.ResponsePanel {
	return newPanel("Failed to Set Timezone", fmt.Sprintf("Failed to set timezone: %s", reason), ColorRed)
}

func SetError() model.ResponsePanel {
	return newPanel("Error", "There was an error setting your timezone.", ColorRed)
}

func SelectPrompt() model.ResponsePanel {
	return newPanel("Select Your Timezone", "Please select your timezone from the dropdown below:", ColorBlue)
}

func Unknown(name string) model.ResponsePanel {
	return newPanel("Unknown Interaction", fmt.Sprintf("`%s` is not something this bot can handle.", name), ColorOrange)
}
