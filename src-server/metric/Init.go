package metric

import (
	"log/slog"
	"time"
	"tzbot/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// registers the gauge, tolerating a previous registration of the same name
func register(registerer prometheus.Registerer, gauge prometheus.Gauge, name string) prometheus.Gauge {
	if err := registerer.Register(gauge); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			slog.Error("can't register metric", "metric", name, "error", err)
			return gauge
		}
		gauge = are.ExistingCollector.(prometheus.Gauge)
	}
	slog.Debug("metric registered", "metric", name)
	gauge.Set(0)
	return gauge
}

func unregister(registerer prometheus.Registerer, gauge prometheus.Gauge, name string) {
	switch registerer.Unregister(gauge) {
	case true:
		slog.Debug("metric unregistered", "metric", name)
	case false:
		slog.Warn("metric not registered", "metric", name)
	}
}

// channelGauge shows the latest sample from ch, and drops back to 0 when
// no sample arrived for clearTickerInterval.
func channelGauge(as *utils.AppState, registerer prometheus.Registerer, name, help string, ch <-chan float64, clearTickerInterval time.Duration) prometheus.Gauge {
	gauge := register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}), name)
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		clearTicker := time.NewTicker(clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				unregister(registerer, gauge, name)
				return
			case latency := <-ch:
				gauge.Set(latency)
				clearTicker.Reset(clearTickerInterval)
			case <-clearTicker.C:
				gauge.Set(0)
			}
		}
	}()
	return gauge
}

func discordHeartbeatLatency(as *utils.AppState, registerer prometheus.Registerer, tickerInterval time.Duration) {
	name := "tzbot_discord_heartbeat_latency_microsec"
	gauge := register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: "The latency of a discord heartbeat in microseconds",
	}), name)
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	go func() {
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				unregister(registerer, gauge, name)
				return
			case <-ticker.C:
				gauge.Set(float64(as.DgSession.HeartbeatLatency().Microseconds()))
			}
		}
	}()
}

// Init starts the collectors on the default registry. They stop on
// graceful shutdown.
func Init(as *utils.AppState) {
	InitWith(as, prometheus.DefaultRegisterer)
}

func InitWith(as *utils.AppState, registerer prometheus.Registerer) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := tickerInterval * 2

	channelGauge(as, registerer,
		"tzbot_backend_request_microsec",
		"The latency of a timezone backend request in microseconds",
		as.MetricChans.BackendRequest, clearTickerInterval,
	)
	channelGauge(as, registerer,
		"tzbot_discord_send_message_microsec",
		"The latency of a discord interaction response in microseconds",
		as.MetricChans.DiscordSendMessage, clearTickerInterval,
	)
	if as.DgSession != nil {
		discordHeartbeatLatency(as, registerer, tickerInterval)
	}
}
