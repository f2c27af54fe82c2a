package utils

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
	"tzbot/src-server/backend"

	"github.com/bwmarrin/discordgo"
)

type AppState struct {
	Config      *Config
	DgSession   *discordgo.Session
	Backend     *backend.Client
	MetricChans *Metric

	AppCloseSignalChan chan os.Signal

	startTime             time.Time
	gracefulShutdownMu    sync.Mutex
	gracefulShutdownChans []chan struct{}
}

func NewAppState(config *Config) (*AppState, error) {
	as := &AppState{
		Config:             config,
		MetricChans:        NewMetric(),
		AppCloseSignalChan: make(chan os.Signal, 1),
		startTime:          time.Now(),
	}

	var err error
	as.DgSession, err = discordgo.New("Bot " + config.GetDiscordAppToken())
	if err != nil {
		return nil, fmt.Errorf("NewAppState: can't create discord session: %w", err)
	}
	as.DgSession.Identify.Intents = discordgo.IntentsGuilds

	as.Backend = backend.New(
		config.GetBackendURL(),
		config.GetDiscordClientId(),
		config.GetDiscordAppToken(),
		&http.Client{},
		backend.WithLatencyObserver(as.MetricChans.ObserveBackendRequest),
	)

	return as, nil
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startTime).Truncate(time.Second)
}

// CreateGracefulShutdownChan returns a channel that's closed once
// GracefulShutdown runs.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMu.Lock()
	chans := as.gracefulShutdownChans
	as.gracefulShutdownChans = nil
	as.gracefulShutdownMu.Unlock()

	for _, ch := range chans {
		close(ch)
	}
	if as.DgSession != nil {
		if err := as.DgSession.Close(); err != nil {
			slog.Warn("can't close discord session", "error", err)
		}
	}
}
