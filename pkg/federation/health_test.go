package federation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() federation.Config {
	return federation.Config{
		ProbeInterval:     20 * time.Millisecond,
		ProbeTimeout:      200 * time.Millisecond,
		DegradedThreshold: 2,
		OfflineThreshold:  3,
	}
}

func monitoredRegistry(t *testing.T, cfg federation.Config, fakes ...*federationtest.FakeCluster) (*federation.Registry, *federation.Monitor, *events.Broker) {
	t.Helper()
	broker := newTestBroker(t)
	registry := federation.NewRegistry(cfg, broker, federationtest.Factory(fakes...))
	monitor := federation.NewMonitor(registry, broker)
	return registry, monitor, broker
}

func TestMonitorProbesAndRecovers(t *testing.T) {
	fake := federationtest.NewFakeCluster("c1", types.ClusterCapabilities{
		MaxAgents: 8, AvailableAgents: 8,
	})
	registry, monitor, broker := monitoredRegistry(t, fastConfig(), fake)
	sub := broker.SubscribeTypes(events.EventHealthChecked)

	require.NoError(t, registry.Register(&types.Cluster{ID: "c1", Endpoint: "c1:1"}))
	monitor.Start()
	defer monitor.Stop()

	federationtest.WaitForEvent(t, sub, events.EventHealthChecked, time.Second)

	cluster, err := registry.Get("c1")
	require.NoError(t, err)
	assert.Equal(t, types.ClusterStatusActive, cluster.Status)
	// Capabilities merged from the heartbeat
	assert.Equal(t, 8, cluster.Capabilities.MaxAgents)

	health, err := registry.Health("c1")
	require.NoError(t, err)
	assert.False(t, health.LastHeartbeat.IsZero())
	assert.Zero(t, health.ConsecutiveFailures)
}

func TestMonitorDegradesThenOfflines(t *testing.T) {
	fake := federationtest.NewFakeCluster("c1", types.ClusterCapabilities{})
	fake.HeartbeatErr = errors.New("connection refused")
	registry, monitor, broker := monitoredRegistry(t, fastConfig(), fake)
	sub := broker.SubscribeTypes(events.EventClusterStatusChanged)

	require.NoError(t, registry.Register(&types.Cluster{ID: "c1", Endpoint: "c1:1"}))
	monitor.Start()
	defer monitor.Stop()

	event := federationtest.WaitForEvent(t, sub, events.EventClusterStatusChanged, 2*time.Second)
	assert.Equal(t, "degraded", event.Metadata["new_status"])

	event = federationtest.WaitForEvent(t, sub, events.EventClusterStatusChanged, 2*time.Second)
	assert.Equal(t, "offline", event.Metadata["new_status"])

	health, err := registry.Health("c1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, health.ConsecutiveFailures, 3)
	assert.Contains(t, health.Message, "connection refused")
}

func TestMonitorSlowProbeDegrades(t *testing.T) {
	cfg := fastConfig()
	cfg.ProbeTimeout = 60 * time.Millisecond

	fake := federationtest.NewFakeCluster("c1", types.ClusterCapabilities{})
	fake.HeartbeatDelay = 40 * time.Millisecond // over half the timeout
	registry, monitor, broker := monitoredRegistry(t, cfg, fake)
	sub := broker.SubscribeTypes(events.EventClusterStatusChanged)

	require.NoError(t, registry.Register(&types.Cluster{ID: "c1", Endpoint: "c1:1"}))
	monitor.Start()
	defer monitor.Stop()

	event := federationtest.WaitForEvent(t, sub, events.EventClusterStatusChanged, 2*time.Second)
	assert.Equal(t, "degraded", event.Metadata["new_status"])

	cluster, err := registry.Get("c1")
	require.NoError(t, err)
	assert.Equal(t, types.ClusterStatusDegraded, cluster.Status)
}

func TestMonitorSkipsMaintenance(t *testing.T) {
	fake := federationtest.NewFakeCluster("c1", types.ClusterCapabilities{})
	registry, monitor, broker := monitoredRegistry(t, fastConfig(), fake)
	sub := broker.SubscribeTypes(events.EventHealthCycleCompleted)

	require.NoError(t, registry.Register(&types.Cluster{
		ID: "c1", Endpoint: "c1:1", Status: types.ClusterStatusMaintenance,
	}))
	monitor.Start()
	defer monitor.Stop()

	federationtest.WaitForEvent(t, sub, events.EventHealthCycleCompleted, time.Second)
	federationtest.WaitForEvent(t, sub, events.EventHealthCycleCompleted, time.Second)

	assert.Zero(t, fake.Heartbeats())
}

func TestMonitorAutoRemovesOffline(t *testing.T) {
	cfg := fastConfig()
	cfg.AutoRemoveAfter = time.Millisecond

	fake := federationtest.NewFakeCluster("c1", types.ClusterCapabilities{})
	fake.HeartbeatErr = errors.New("unreachable")
	registry, monitor, broker := monitoredRegistry(t, cfg, fake)
	sub := broker.SubscribeTypes(events.EventClusterUnregistered)

	require.NoError(t, registry.Register(&types.Cluster{
		ID: "c1", Endpoint: "c1:1", RegisteredAt: time.Now().Add(-time.Hour),
	}))
	monitor.Start()
	defer monitor.Stop()

	federationtest.WaitForEvent(t, sub, events.EventClusterUnregistered, 2*time.Second)

	assert.Empty(t, registry.ListClusters())
}

func TestMonitorStartStopIdempotent(t *testing.T) {
	registry, monitor, broker := monitoredRegistry(t, fastConfig())
	sub := broker.SubscribeTypes(events.EventHealthStarted, events.EventHealthStopped)
	_ = registry

	monitor.Start()
	monitor.Start()
	federationtest.WaitForEvent(t, sub, events.EventHealthStarted, time.Second)

	monitor.Stop()
	monitor.Stop()
	federationtest.WaitForEvent(t, sub, events.EventHealthStopped, time.Second)
}
