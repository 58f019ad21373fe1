package driftcord

import "github.com/prometheus/client_golang/prometheus"

var (
	driftcordEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driftcord_events_total",
			Help: "Count of gateway events received",
		},
		[]string{"identifier"},
	)

	driftcordDispatchEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driftcord_dispatch_events_by_type_total",
			Help: "Count of dispatch events by type",
		},
		[]string{"identifier", "type"},
	)

	driftcordGatewayLatency = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driftcord_discord_gateway_latency",
			Help: "Gateway heartbeat latency in milliseconds",
		},
		[]string{"identifier", "shard"},
	)

	driftcordReconnectCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driftcord_shard_reconnects_total",
			Help: "Count of shard reconnects",
		},
		[]string{"identifier", "shard"},
	)

	driftcordUnavailableGuildCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driftcord_unavailable_guilds_count",
			Help: "Count of guilds currently unavailable",
		},
		[]string{"identifier"},
	)
)

// RegisterMetrics registers the gateway collectors onto a registry.
func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(driftcordEventCount)
	registerer.MustRegister(driftcordDispatchEventCount)
	registerer.MustRegister(driftcordGatewayLatency)
	registerer.MustRegister(driftcordReconnectCount)
	registerer.MustRegister(driftcordUnavailableGuildCount)
}
