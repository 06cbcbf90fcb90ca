package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Federation metrics
	ClustersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "loom_clusters_total",
			Help: "Total number of registered clusters by status",
		},
		[]string{"status"},
	)

	HealthProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_health_probes_total",
			Help: "Total number of health probes by result",
		},
		[]string{"result"},
	)

	HealthProbeLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loom_health_probe_latency_seconds",
			Help:    "Health probe round-trip latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Agent metrics
	AgentsSpawned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_agents_spawned_total",
			Help: "Total number of agents spawned by backend",
		},
		[]string{"backend"},
	)

	AgentsKilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loom_agents_killed_total",
			Help: "Total number of agents killed",
		},
	)

	AgentsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "loom_agents_active",
			Help: "Number of agents currently routed by the proxy",
		},
	)

	SpawnFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loom_spawn_fallbacks_total",
			Help: "Total number of spawn attempts that fell back to another backend",
		},
	)

	// Migration metrics
	MigrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_migrations_total",
			Help: "Total number of migrations by outcome",
		},
		[]string{"outcome"},
	)

	MigrationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loom_migration_duration_seconds",
			Help:    "End-to-end migration duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Messaging metrics
	MessagesDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_messages_delivered_total",
			Help: "Total number of messages delivered by mode",
		},
		[]string{"mode"},
	)

	MailboxDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "loom_mailbox_depth",
			Help: "Current number of messages held per mailbox",
		},
		[]string{"agent_id"},
	)

	// Task graph metrics
	DecompositionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_decompositions_total",
			Help: "Total number of task decompositions by strategy",
		},
		[]string{"strategy"},
	)

	SubtasksPerDecomposition = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loom_subtasks_per_decomposition",
			Help:    "Number of subtasks produced per decomposition",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	// Task store metrics
	TaskStoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_taskstore_operations_total",
			Help: "Total number of task store operations by kind",
		},
		[]string{"op"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loom_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ClustersTotal)
	prometheus.MustRegister(HealthProbesTotal)
	prometheus.MustRegister(HealthProbeLatency)
	prometheus.MustRegister(AgentsSpawned)
	prometheus.MustRegister(AgentsKilled)
	prometheus.MustRegister(AgentsActive)
	prometheus.MustRegister(SpawnFallbacks)
	prometheus.MustRegister(MigrationsTotal)
	prometheus.MustRegister(MigrationDuration)
	prometheus.MustRegister(MessagesDelivered)
	prometheus.MustRegister(MailboxDepth)
	prometheus.MustRegister(DecompositionsTotal)
	prometheus.MustRegister(SubtasksPerDecomposition)
	prometheus.MustRegister(TaskStoreOps)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(ComponentUp)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
