package federation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// Monitor probes every registered cluster on a fixed interval and drives
// the health state machine in the registry. Probes within one cycle run
// in parallel, each bounded by the probe timeout.
type Monitor struct {
	registry *Registry
	broker   *events.Broker
	logger   zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewMonitor creates a health monitor over the registry
func NewMonitor(registry *Registry, broker *events.Broker) *Monitor {
	return &Monitor{
		registry: registry,
		broker:   broker,
		logger:   log.WithComponent("health"),
	}
}

// Start launches the probe loop. Calling Start on a running monitor is a
// no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	m.running = true

	go m.run(ctx)

	m.broker.Emit(events.EventHealthStarted, "Health monitoring started", nil)
	m.logger.Info().
		Dur("interval", m.registry.cfg.ProbeInterval).
		Dur("timeout", m.registry.cfg.ProbeTimeout).
		Msg("Health monitor started")
}

// Stop halts the probe loop and waits for the current cycle to finish
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.cancel()
	done := m.done
	m.running = false
	m.mu.Unlock()

	<-done
	m.broker.Emit(events.EventHealthStopped, "Health monitoring stopped", nil)
	m.logger.Info().Msg("Health monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.registry.cfg.ProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.runCycle(ctx)
		}
	}
}

// runCycle probes every cluster once, in parallel. Clusters parked in
// maintenance are skipped so operators can drain them without the
// monitor fighting the status back.
func (m *Monitor) runCycle(ctx context.Context) {
	clusters := m.registry.ListClusters()

	var wg sync.WaitGroup
	for _, cluster := range clusters {
		if cluster.Status == types.ClusterStatusMaintenance {
			continue
		}
		wg.Add(1)
		go func(c *types.Cluster) {
			defer wg.Done()
			m.probe(ctx, c.ID)
		}(cluster)
	}
	wg.Wait()

	m.broker.Emit(events.EventHealthCycleCompleted,
		fmt.Sprintf("Health cycle completed across %d clusters", len(clusters)),
		map[string]string{"clusters": fmt.Sprintf("%d", len(clusters))})
}

func (m *Monitor) probe(ctx context.Context, clusterID string) {
	client, err := m.registry.Client(clusterID)
	if err != nil {
		// Unregistered between list and probe
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, m.registry.cfg.ProbeTimeout)
	defer cancel()

	start := time.Now()
	caps, err := client.Heartbeat(probeCtx)
	latency := time.Since(start)

	if err != nil {
		metrics.HealthProbesTotal.WithLabelValues("failure").Inc()
		oldStatus, newStatus, purge, known := m.registry.recordProbeFailure(clusterID, err)
		if !known {
			return
		}
		m.broker.Emit(events.EventHealthCheckFailed,
			fmt.Sprintf("Health check failed for cluster %s: %v", clusterID, err),
			map[string]string{"cluster_id": clusterID, "error": err.Error()})
		m.logger.Warn().
			Err(err).
			Str("cluster_id", clusterID).
			Str("status", string(newStatus)).
			Msg("Health probe failed")
		if oldStatus != newStatus {
			m.registry.emitStatusChange(clusterID, oldStatus, newStatus)
		}
		if purge {
			m.purge(clusterID)
		}
		return
	}

	metrics.HealthProbesTotal.WithLabelValues("success").Inc()
	metrics.HealthProbeLatency.Observe(latency.Seconds())

	oldStatus, newStatus, known := m.registry.recordProbeSuccess(clusterID, latency, caps)
	if !known {
		return
	}
	m.broker.Emit(events.EventHealthChecked,
		fmt.Sprintf("Cluster %s healthy (%s)", clusterID, latency),
		map[string]string{"cluster_id": clusterID, "latency": latency.String()})
	if oldStatus != newStatus {
		m.registry.emitStatusChange(clusterID, oldStatus, newStatus)
	}
}

// purge removes a cluster that has been offline past the auto-remove
// window. Removal still refuses while routing shows live agents on the
// cluster; those need failover or manual cleanup first.
func (m *Monitor) purge(clusterID string) {
	if err := m.registry.Unregister(clusterID); err != nil {
		m.logger.Warn().
			Err(err).
			Str("cluster_id", clusterID).
			Msg("Auto-remove skipped")
		return
	}
	m.logger.Info().
		Str("cluster_id", clusterID).
		Msg("Auto-removed offline cluster")
}
