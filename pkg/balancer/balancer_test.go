package balancer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLocal is an in-memory local runtime
type fakeLocal struct {
	mu       sync.Mutex
	agents   map[string]*types.Agent
	spawnErr error
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{agents: make(map[string]*types.Agent)}
}

func (f *fakeLocal) Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.spawnErr != nil {
		return nil, f.spawnErr
	}
	id := spec.AgentID
	if id == "" {
		id = "agent-" + uuid.New().String()
	}
	agent := &types.Agent{ID: id, Status: types.AgentStatusRunning, Model: spec.Model, StartedAt: time.Now()}
	f.agents[id] = agent
	copied := *agent
	return &copied, nil
}

func (f *fakeLocal) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*runtime.ExecResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.agents[agentID]; !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	return &runtime.ExecResult{Output: "ok"}, nil
}

func (f *fakeLocal) Kill(ctx context.Context, agentID string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.agents[agentID]; !ok {
		if force {
			return nil
		}
		return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	delete(f.agents, agentID)
	return nil
}

func (f *fakeLocal) List(ctx context.Context) ([]*types.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*types.Agent
	for _, a := range f.agents {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeLocal) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	agent, ok := f.agents[agentID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	return &types.AgentStatusInfo{Status: agent.Status, StartedAt: agent.StartedAt}, nil
}

func (f *fakeLocal) Close() error { return nil }

type fixture struct {
	balancer *Balancer
	registry *federation.Registry
	local    *fakeLocal
	broker   *events.Broker
}

func newFixture(t *testing.T, cfg Config, fakes ...*federationtest.FakeCluster) *fixture {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	registry := federation.NewRegistry(federation.DefaultConfig(), broker, federationtest.Factory(fakes...))
	local := newFakeLocal()
	b, err := New(cfg, registry, local, nil, broker)
	require.NoError(t, err)
	return &fixture{balancer: b, registry: registry, local: local, broker: broker}
}

func goodCaps() *types.ClusterCapabilities {
	return &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 10, CostPerHour: 1}
}

func TestSpawnPrefersStrongRemote(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *goodCaps())
	fx := newFixture(t, DefaultConfig(), fake)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: goodCaps()}))

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "a", agent.ClusterID)
	assert.True(t, fake.HasAgent(agent.ID))

	clusterID, migrating, ok := fx.balancer.Lookup(agent.ID)
	require.True(t, ok)
	assert.Equal(t, "a", clusterID)
	assert.False(t, migrating)
}

func TestSpawnFallsBackToLocalWithNoClusters(t *testing.T) {
	fx := newFixture(t, DefaultConfig())

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	assert.Empty(t, agent.ClusterID)

	clusterID, _, ok := fx.balancer.Lookup(agent.ID)
	require.True(t, ok)
	assert.Empty(t, clusterID)
}

func TestSpawnLocalFloor(t *testing.T) {
	// Weak cluster: high latency and cost keep its score under the floor
	weak := federationtest.NewFakeCluster("weak", types.ClusterCapabilities{
		MaxAgents: 10, AvailableAgents: 1, LatencyMs: 95, CostPerHour: 9,
	})
	cfg := DefaultConfig()
	cfg.LocalFloor = 50
	fx := newFixture(t, cfg, weak)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "weak", Endpoint: "weak:1", Capabilities: &types.ClusterCapabilities{
		MaxAgents: 10, AvailableAgents: 1, LatencyMs: 95, CostPerHour: 9,
	}}))

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	assert.Empty(t, agent.ClusterID)
}

func TestSpawnPreferLocalOverride(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *goodCaps())
	fx := newFixture(t, DefaultConfig(), fake)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: goodCaps()}))

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m", PreferLocal: true})
	require.NoError(t, err)
	assert.Empty(t, agent.ClusterID)
}

func TestSpawnCapacityFallback(t *testing.T) {
	full := federationtest.NewFakeCluster("full", *goodCaps())
	full.SpawnErr = errdefs.Wrap(errdefs.ErrCapacityExceeded, "full", "at capacity")
	fx := newFixture(t, DefaultConfig(), full)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "full", Endpoint: "full:1", Capabilities: goodCaps()}))

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	assert.Empty(t, agent.ClusterID)
}

func TestSpawnNoCapacity(t *testing.T) {
	full := federationtest.NewFakeCluster("full", *goodCaps())
	full.SpawnErr = errdefs.Wrap(errdefs.ErrCapacityExceeded, "full", "at capacity")
	fx := newFixture(t, DefaultConfig(), full)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "full", Endpoint: "full:1", Capabilities: goodCaps()}))
	fx.local.spawnErr = errdefs.Wrap(errdefs.ErrLocalResourceExhausted, "", "local full")

	_, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	assert.ErrorIs(t, err, errdefs.ErrNoCapacity)
}

func TestSpawnRejectsWhileDraining(t *testing.T) {
	fx := newFixture(t, DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fx.balancer.Stop(ctx))

	_, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	assert.ErrorIs(t, err, errdefs.ErrClusterUnavailable)
}

func TestKillRemovesRoute(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *goodCaps())
	fx := newFixture(t, DefaultConfig(), fake)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: goodCaps()}))

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)

	require.NoError(t, fx.balancer.Kill(context.Background(), agent.ID, false))
	assert.False(t, fake.HasAgent(agent.ID))
	_, _, ok := fx.balancer.Lookup(agent.ID)
	assert.False(t, ok)

	err = fx.balancer.Kill(context.Background(), agent.ID, false)
	assert.ErrorIs(t, err, errdefs.ErrAgentNotFound)
}

func migrationFixture(t *testing.T) (*fixture, *federationtest.FakeCluster, *federationtest.FakeCluster, string) {
	t.Helper()
	a := federationtest.NewFakeCluster("a", *goodCaps())
	b := federationtest.NewFakeCluster("b", *goodCaps())
	cfg := DefaultConfig()
	cfg.VerifyTimeout = time.Second
	cfg.VerifyInterval = 10 * time.Millisecond
	fx := newFixture(t, cfg, a, b)
	require.NoError(t, fx.registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: goodCaps()}))
	require.NoError(t, fx.registry.Register(&types.Cluster{
		ID: "b", Endpoint: "b:1",
		// Keep b's score below a's so the spawn lands on a
		Capabilities: &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 90, CostPerHour: 9},
	}))

	agent, err := fx.balancer.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	require.Equal(t, "a", agent.ClusterID)
	return fx, a, b, agent.ID
}

func TestMigrateHappyPath(t *testing.T) {
	fx, a, b, agentID := migrationFixture(t)
	sub := fx.broker.SubscribeTypes(events.EventMigrationStarted, events.EventMigrationCompleted)

	require.NoError(t, fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b"))

	assert.False(t, a.HasAgent(agentID))
	assert.True(t, b.HasAgent(agentID))

	clusterID, migrating, ok := fx.balancer.Lookup(agentID)
	require.True(t, ok)
	assert.Equal(t, "b", clusterID)
	assert.False(t, migrating)

	started := federationtest.WaitForEvent(t, sub, events.EventMigrationStarted, time.Second)
	assert.Equal(t, agentID, started.Metadata["agent_id"])
	completed := federationtest.WaitForEvent(t, sub, events.EventMigrationCompleted, time.Second)
	assert.Equal(t, "b", completed.Metadata["to_cluster"])
}

func TestMigrateRollbackOnImportFailure(t *testing.T) {
	fx, a, b, agentID := migrationFixture(t)
	b.ImportErr = errors.New("disk full")
	sub := fx.broker.SubscribeTypes(events.EventMigrationFailed)

	err := fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b")
	require.Error(t, err)

	// Routing stays at the source and no partial agent survives on b
	clusterID, migrating, ok := fx.balancer.Lookup(agentID)
	require.True(t, ok)
	assert.Equal(t, "a", clusterID)
	assert.False(t, migrating)
	assert.True(t, a.HasAgent(agentID))
	assert.False(t, b.HasAgent(agentID))

	failed := federationtest.WaitForEvent(t, sub, events.EventMigrationFailed, time.Second)
	assert.Equal(t, "import", failed.Metadata["step"])
}

func TestMigrateRollbackOnExportFailure(t *testing.T) {
	fx, a, b, agentID := migrationFixture(t)
	a.ExportErr = errors.New("snapshot failed")
	sub := fx.broker.SubscribeTypes(events.EventMigrationFailed)

	err := fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b")
	require.Error(t, err)
	assert.True(t, a.HasAgent(agentID))
	assert.False(t, b.HasAgent(agentID))

	failed := federationtest.WaitForEvent(t, sub, events.EventMigrationFailed, time.Second)
	assert.Equal(t, "export", failed.Metadata["step"])
}

func TestMigrateSourceKillFailureCompletes(t *testing.T) {
	fx, a, b, agentID := migrationFixture(t)
	a.KillErr = errors.New("kill refused")
	sub := fx.broker.SubscribeTypes(events.EventCleanupPending, events.EventMigrationCompleted)

	require.NoError(t, fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b"))

	clusterID, _, ok := fx.balancer.Lookup(agentID)
	require.True(t, ok)
	assert.Equal(t, "b", clusterID)
	assert.True(t, b.HasAgent(agentID))

	federationtest.WaitForEvent(t, sub, events.EventCleanupPending, time.Second)
	federationtest.WaitForEvent(t, sub, events.EventMigrationCompleted, time.Second)
	assert.Equal(t, 1, fx.balancer.janitor.Pending())
}

func TestMigrateValidation(t *testing.T) {
	fx, _, _, agentID := migrationFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, fx.balancer.MigrateAgent(ctx, agentID, "a", "a"), errdefs.ErrInvalidSpec)
	assert.ErrorIs(t, fx.balancer.MigrateAgent(ctx, agentID, "b", "a"), errdefs.ErrInvalidSpec)
	assert.ErrorIs(t, fx.balancer.MigrateAgent(ctx, "nope", "a", "b"), errdefs.ErrAgentNotFound)
	assert.ErrorIs(t, fx.balancer.MigrateAgent(ctx, agentID, "a", "missing"), errdefs.ErrClusterNotFound)
}

func TestMigrateConcurrentSameAgentRejected(t *testing.T) {
	fx, _, _, agentID := migrationFixture(t)

	fx.balancer.mu.Lock()
	fx.balancer.migrations[agentID] = true
	fx.balancer.mu.Unlock()

	err := fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b")
	assert.ErrorIs(t, err, errdefs.ErrMigrationInProgress)
}

func TestMigrateGlobalLimit(t *testing.T) {
	fx, _, _, agentID := migrationFixture(t)
	fx.balancer.cfg.MaxConcurrentMigrations = 0

	err := fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b")
	assert.ErrorIs(t, err, errdefs.ErrCapacityExceeded)
}

func TestFailoverCluster(t *testing.T) {
	fx, a, b, agentID := migrationFixture(t)

	migrated, err := fx.balancer.FailoverCluster(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 1, migrated)
	assert.False(t, a.HasAgent(agentID))
	assert.True(t, b.HasAgent(agentID))

	cluster, err := fx.registry.Get("a")
	require.NoError(t, err)
	assert.Equal(t, types.ClusterStatusMaintenance, cluster.Status)
}

func TestJanitorResolvesLeftovers(t *testing.T) {
	fx, a, _, agentID := migrationFixture(t)
	a.KillErr = errors.New("kill refused")
	require.NoError(t, fx.balancer.MigrateAgent(context.Background(), agentID, "a", "b"))
	require.Equal(t, 1, fx.balancer.janitor.Pending())

	sub := fx.broker.SubscribeTypes(events.EventCleanupResolved)
	a.KillErr = nil
	fx.balancer.janitor.interval = 10 * time.Millisecond
	fx.balancer.janitor.Start()
	defer fx.balancer.janitor.Stop()

	federationtest.WaitForEvent(t, sub, events.EventCleanupResolved, 2*time.Second)
	assert.Zero(t, fx.balancer.janitor.Pending())
	assert.False(t, a.HasAgent(agentID))
}

func TestStrategyFactory(t *testing.T) {
	for _, id := range []string{"", "round-robin", "least-connections", "weighted", "consistent-hash", "random", "least-loaded"} {
		s, err := NewStrategy(id)
		require.NoError(t, err, id)
		assert.NotNil(t, s)
	}
	_, err := NewStrategy("bogus")
	assert.Error(t, err)
}

func TestRoundRobinCycles(t *testing.T) {
	s, err := NewStrategy("round-robin")
	require.NoError(t, err)
	clusters := []*types.Cluster{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	seen := []string{}
	for i := 0; i < 6; i++ {
		seen = append(seen, s.Select("k", clusters).ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, seen)
}

func TestLeastConnectionsFollowsStats(t *testing.T) {
	s, err := NewStrategy("least-connections")
	require.NoError(t, err)
	clusters := []*types.Cluster{{ID: "a"}, {ID: "b"}}

	s.UpdateStats("a", 2)
	assert.Equal(t, "b", s.Select("k", clusters).ID)
	s.UpdateStats("b", 3)
	assert.Equal(t, "a", s.Select("k", clusters).ID)
}

func TestConsistentHashIsStable(t *testing.T) {
	s, err := NewStrategy("consistent-hash")
	require.NoError(t, err)
	clusters := []*types.Cluster{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	first := s.Select("agent-42", clusters).ID
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Select("agent-42", clusters).ID)
	}
}

func TestLeastLoadedPicksLowestRatio(t *testing.T) {
	s, err := NewStrategy("least-loaded")
	require.NoError(t, err)
	clusters := []*types.Cluster{
		{ID: "busy", Capabilities: &types.ClusterCapabilities{MaxAgents: 10, ActiveAgents: 9}},
		{ID: "idle", Capabilities: &types.ClusterCapabilities{MaxAgents: 10, ActiveAgents: 1}},
	}
	assert.Equal(t, "idle", s.Select("k", clusters).ID)
}
