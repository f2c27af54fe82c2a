package render_test

import (
	"testing"
	"time"
	"tzbot/src-server/model"
	"tzbot/src-server/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.July, 4, 16, 30, 0, 0, time.UTC)

func TestQuery(t *testing.T) {
	self := render.Subject{}
	other := render.Subject{Display: "<@999>"}

	tests := []struct {
		name        string
		result      model.TimezoneQueryResult
		subject     render.Subject
		title       string
		description string
		color       int
	}{
		{"forbidden", model.NewForbiddenResult("blocked"), self, "Forbidden", "blocked", render.ColorRed},
		{"empty self", model.NewEmptyResult(), self, "No Timezone Registered", "Use `/settimezone` to set your timezone.", render.ColorOrange},
		{"empty other", model.NewEmptyResult(), other, "No Timezone Registered", "<@999> has not registered their timezone yet.", render.ColorOrange},
		{"invalid", model.NewFoundResult("Mars/Olympus_Mons"), self, "Invalid timezone provided", "", render.ColorDarkRed},
		{"blank", model.NewFoundResult(""), other, "Invalid timezone provided", "", render.ColorDarkRed},
		{"local", model.NewFoundResult("Local"), self, "Invalid timezone provided", "", render.ColorDarkRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := render.Query(tt.result, tt.subject, fixedNow)
			assert.Equal(t, tt.title, panel.Title)
			assert.Equal(t, tt.description, panel.Description)
			assert.Equal(t, tt.color, panel.Color)
			assert.Equal(t, render.Footer, panel.Footer)
			assert.Empty(t, panel.Fields)
		})
	}
}

func TestFound(t *testing.T) {
	// case: self, New York is UTC-4 in July
	func() {
		panel := render.Query(model.NewFoundResult("America/New_York"), render.Subject{}, fixedNow)
		assert.Equal(t, "Timezone Data", panel.Title)
		assert.Equal(t, render.ColorGreen, panel.Color)
		require.Len(t, panel.Fields, 2)
		assert.Equal(t, model.PanelField{Name: "Your timezone:", Value: "America/New_York"}, panel.Fields[0])
		assert.Equal(t, "Your current time", panel.Fields[1].Name)
		assert.Equal(t, "July 4, 2024 at 12:30 PM EDT", panel.Fields[1].Value)
	}()

	// case: other user, POSIX-style Etc zone
	func() {
		panel := render.Found("Etc/GMT-5", render.Subject{Display: "<@1>"}, fixedNow)
		require.Len(t, panel.Fields, 2)
		assert.Equal(t, "User's timezone:", panel.Fields[0].Name)
		assert.Equal(t, "User's current time", panel.Fields[1].Name)
		assert.Equal(t, "July 4, 2024 at 9:30 PM +05", panel.Fields[1].Value)
	}()
}

func TestLoadZone(t *testing.T) {
	for _, tz := range []string{"UTC", "Asia/Tokyo", "Europe/Berlin", "Etc/GMT+12", "Etc/GMT-12"} {
		loc, ok := render.LoadZone(tz)
		assert.True(t, ok, tz)
		assert.NotEmpty(t, render.CurrentTime(loc, fixedNow), tz)
	}
	// no fixed-offset names
	for _, tz := range []string{"", "Local", "Not/AZone", "../etc/passwd", "UTC+5"} {
		_, ok := render.LoadZone(tz)
		assert.False(t, ok, tz)
	}
}

func TestSetPanels(t *testing.T) {
	success := render.SetSuccess("Etc/GMT-5")
	assert.Equal(t, "Timezone Set", success.Title)
	assert.Contains(t, success.Description, "Etc/GMT-5")
	assert.Equal(t, render.ColorGreen, success.Color)

	failure := render.SetFailure("invalid timezone")
	assert.Equal(t, "Failed to Set Timezone", failure.Title)
	assert.Equal(t, "Failed to set timezone: invalid timezone", failure.Description)
	assert.Equal(t, render.ColorRed, failure.Color)

	assert.Equal(t, "Error", render.SetError().Title)
	assert.Equal(t, "Error", render.FetchError(render.Subject{}).Title)
	assert.NotEqual(t,
		render.FetchError(render.Subject{}).Description,
		render.FetchError(render.Subject{Display: "<@1>"}).Description,
	)
}
