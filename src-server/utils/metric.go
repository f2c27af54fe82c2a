package utils

import "time"

// Latency samples in microseconds, drained by the metric package.
type Metric struct {
	BackendRequest     chan float64
	DiscordSendMessage chan float64
}

func NewMetric() *Metric {
	return &Metric{
		BackendRequest:     make(chan float64, 16),
		DiscordSendMessage: make(chan float64, 16),
	}
}

func (m *Metric) ObserveBackendRequest(d time.Duration) {
	push(m.BackendRequest, d)
}

func (m *Metric) ObserveDiscordSendMessage(d time.Duration) {
	push(m.DiscordSendMessage, d)
}

// Drops the sample when nobody is collecting, so handlers never block on
// metrics.
func push(ch chan float64, d time.Duration) {
	select {
	case ch <- float64(d.Microseconds()):
	default:
	}
}
