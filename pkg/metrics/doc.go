/*
Package metrics provides Prometheus metrics collection and exposition for loom.

The metrics package defines and registers all loom metrics using the
Prometheus client library, providing observability into federation health,
agent placement, migrations, message delivery, and task decomposition.
Metrics are exposed via the HTTP endpoint the daemon serves on the metrics
address.

# Metric Families

Federation:
  - loom_clusters_total{status}: registered clusters by status
  - loom_health_probes_total{result}: probe outcomes
  - loom_health_probe_latency_seconds: probe round-trip latency

Agents:
  - loom_agents_spawned_total{backend}: spawns by backend (cluster id or "local")
  - loom_agents_killed_total, loom_agents_active
  - loom_spawn_fallbacks_total: capacity-driven fallback attempts

Migrations:
  - loom_migrations_total{outcome}: completed | failed | rolled_back
  - loom_migration_duration_seconds

Messaging:
  - loom_messages_delivered_total{mode}: direct | broadcast | role
  - loom_mailbox_depth{agent_id}

Planning:
  - loom_decompositions_total{strategy}, loom_subtasks_per_decomposition
  - loom_taskstore_operations_total{op}

API:
  - loom_api_requests_total{method,status}, loom_api_request_duration_seconds

Components:
  - loom_component_up{component}: 1 while a component reports healthy

The component gauge is fed by SetComponentHealth, which also keeps an
in-process board the /health endpoint reads.

# Usage

	import "github.com/loomctl/loom/pkg/metrics"

	metrics.AgentsSpawned.WithLabelValues("gpu-east").Inc()
	metrics.MigrationDuration.Observe(elapsed.Seconds())

	http.Handle("/metrics", metrics.Handler())
*/
package metrics
