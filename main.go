package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tzbot/src-server/catalog"
	"tzbot/src-server/handler"
	"tzbot/src-server/metric"
	"tzbot/src-server/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	setLogger(slog.LevelDebug)
}

func setLogger(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	config := utils.NewConfig()
	setLogger(config.GetLogLevel())

	as, err := utils.NewAppState(config)
	if err != nil {
		slog.Error("can't create app state", "error", err)
		os.Exit(1)
	}

	// a broken catalog is a deploy mistake, don't start half-configured
	cmds, err := catalog.Load()
	if err != nil {
		slog.Error("can't load command catalog", "error", err)
		os.Exit(1)
	}

	// tell discordgo how to handle interactions from Discord
	router := handler.NewRouter(as.Backend, time.Now)
	handler.Attach(as, router)

	// open a connection to Discord
	if err := as.DgSession.Open(); err != nil {
		slog.Error("can't open discord connection", "error", err)
		os.Exit(1)
	}

	// tell Discord what commands we have; commands from a previous run
	// keep working if this fails
	if err := handler.RegisterAll(
		as.DgSession,
		config.GetDiscordClientId(),
		config.GetDiscordGuildID(),
		cmds,
	); err != nil {
		slog.Error("can't create slash commands", "error", err)
	} else {
		slog.Info("slash commands registered", "count", len(cmds))
	}

	metric.Init(as)

	// http server
	go func() {
		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		muxer.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})
		if err := http.ListenAndServe(":"+config.GetPort(), muxer); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("number of guilds", "guilds", len(as.DgSession.State.Guilds))
	slog.Info("app is now running, press Ctrl+C to exit")

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan

	slog.Info("Gracefully shutting down...", "uptime", as.GetUptime())
	as.GracefulShutdown()
}
