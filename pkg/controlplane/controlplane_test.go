package controlplane

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomctl/loom/pkg/config"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/types"
)

// noopRuntime keeps the daemon from spawning real worker processes
type noopRuntime struct{}

func (noopRuntime) Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	return nil, errdefs.Wrap(errdefs.ErrNoCapacity, "", "local runtime disabled")
}

func (noopRuntime) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*runtime.ExecResult, error) {
	return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (noopRuntime) Kill(ctx context.Context, agentID string, force bool) error {
	return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (noopRuntime) List(ctx context.Context) ([]*types.Agent, error) { return nil, nil }

func (noopRuntime) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (noopRuntime) Close() error { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Server.ListenAddr = "127.0.0.1:0"
	cfg.Server.MetricsAddr = "127.0.0.1:0"
	cfg.Storage.Path = filepath.Join(dir, "loom.db")
	cfg.TaskStore.BasePath = filepath.Join(dir, "tasks")
	cfg.Gateway.Enabled = false
	return cfg
}

func strongCaps() *types.ClusterCapabilities {
	return &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 10, CostPerHour: 1}
}

func start(t *testing.T, cfg *config.Config, fakes ...*federationtest.FakeCluster) *ControlPlane {
	t.Helper()
	cp, err := New(cfg,
		WithRuntime(noopRuntime{}),
		WithClientFactory(federationtest.Factory(fakes...)),
	)
	require.NoError(t, err)
	require.NoError(t, cp.Start())
	return cp
}

func stop(t *testing.T, cp *ControlPlane) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, cp.Stop(ctx))
}

func TestStateSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	fake := federationtest.NewFakeCluster("a", *strongCaps())

	cp := start(t, cfg, fake)
	sub := cp.Broker().Subscribe()
	require.NoError(t, cp.Registry().Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))
	_, err := cp.Roles().Assign("w1", "worker", "test", "")
	require.NoError(t, err)

	// let the persistence loop write the cluster through
	federationtest.WaitForEvent(t, sub, events.EventClusterRegistered, time.Second)
	cp.Broker().Unsubscribe(sub)
	time.Sleep(100 * time.Millisecond)
	stop(t, cp)

	reopened := start(t, cfg, federationtest.NewFakeCluster("a", *strongCaps()))
	defer stop(t, reopened)

	clusters := reopened.Registry().ListClusters()
	require.Len(t, clusters, 1)
	assert.Equal(t, "a", clusters[0].ID)

	role, ok := reopened.Roles().RoleOf("w1")
	require.True(t, ok)
	assert.Equal(t, "worker", role)
}

func TestAgentLifecycleRegistersMailbox(t *testing.T) {
	cfg := testConfig(t)
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	cp := start(t, cfg, fake)
	defer stop(t, cp)

	require.NoError(t, cp.Registry().Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))

	agent, err := cp.Proxy().Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "a", agent.ClusterID)

	require.Eventually(t, func() bool { return cp.Bus().Registered() == 1 },
		2*time.Second, 10*time.Millisecond, "mailbox should follow spawn")

	require.NoError(t, cp.Proxy().Kill(context.Background(), agent.ID, false))
	require.Eventually(t, func() bool { return cp.Bus().Registered() == 0 },
		2*time.Second, 10*time.Millisecond, "mailbox should follow kill")
}

func TestRouteReplayKeepsAgentsReachable(t *testing.T) {
	cfg := testConfig(t)
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	cp := start(t, cfg, fake)

	require.NoError(t, cp.Registry().Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))
	agent, err := cp.Proxy().Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	stop(t, cp)

	// the fake backend keeps the agent across the restart
	reopened := start(t, cfg, fake)
	defer stop(t, reopened)

	clusterID, migrating, ok := reopened.Balancer().Lookup(agent.ID)
	require.True(t, ok)
	assert.Equal(t, "a", clusterID)
	assert.False(t, migrating)
	assert.Equal(t, 1, reopened.Bus().Registered())
}

func TestStartReportsComponentHealth(t *testing.T) {
	cfg := testConfig(t)
	cp := start(t, cfg)
	defer stop(t, cp)

	reported := metrics.ComponentHealth()
	for _, component := range []string{"storage", "registry", "balancer", "bus"} {
		state, ok := reported[component]
		require.True(t, ok, component)
		assert.True(t, state.Healthy, component)
	}
}

func TestUnregisterClusterRemovedFromStore(t *testing.T) {
	cfg := testConfig(t)
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	cp := start(t, cfg, fake)

	require.NoError(t, cp.Registry().Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, cp.Registry().Unregister("a"))
	time.Sleep(100 * time.Millisecond)
	stop(t, cp)

	reopened := start(t, cfg)
	defer stop(t, reopened)
	assert.Empty(t, reopened.Registry().ListClusters())
}
