package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	SessionsActive = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "playbill_sessions_active",
			Help: "Number of sessions currently occupying a device (active, paused or pending payment)",
		},
	)

	SessionsExpiredTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "playbill_sessions_expired_total",
			Help: "Total number of sessions moved to pending_payment by the expiry ticker",
		},
	)

	SessionCommandsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "playbill_session_commands_total",
			Help: "Total session commands processed, by command and result",
		},
		[]string{"command", "result"},
	)

	MinutesBilledTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "playbill_minutes_billed_total",
			Help: "Total minutes of play time sold (initial packages plus extensions)",
		},
	)

	ExpiryTickDuration = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playbill_expiry_tick_duration_ms",
			Help:    "Duration of expiry check ticks in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		},
	)

	AdminRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "playbill_admin_requests_total",
			Help: "Total admin API requests, by method and status",
		},
		[]string{"method", "status"},
	)
)

// Registry exposes the private registry for the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
