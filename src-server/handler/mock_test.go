package handler_test

import (
	"context"
	"tzbot/src-server/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

type MockTimezoneBackend struct {
	mock.Mock
}

func (m *MockTimezoneBackend) GetTimezone(ctx context.Context, userID string) (model.TimezoneQueryResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.TimezoneQueryResult), args.Error(1)
}

func (m *MockTimezoneBackend) SetTimezone(ctx context.Context, userID, timezone string) error {
	args := m.Called(ctx, userID, timezone)
	return args.Error(0)
}

type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	args := m.Called(interaction, resp)
	return args.Error(0)
}

type MockCommandOverwriter struct {
	mock.Mock
}

func (m *MockCommandOverwriter) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	args := m.Called(appID, guildID, commands)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discordgo.ApplicationCommand), args.Error(1)
}
