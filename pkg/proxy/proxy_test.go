package proxy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/balancer"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocal struct {
	mu     sync.Mutex
	agents map[string]*types.Agent
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{agents: make(map[string]*types.Agent)}
}

func (f *fakeLocal) Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := spec.AgentID
	if id == "" {
		id = "agent-" + uuid.New().String()
	}
	agent := &types.Agent{ID: id, Status: types.AgentStatusRunning, Model: spec.Model, Labels: spec.Labels, StartedAt: time.Now()}
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
	return &runtime.ExecResult{Output: "local-output"}, nil
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

func strongCaps() *types.ClusterCapabilities {
	return &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 10, CostPerHour: 1}
}

func newProxy(t *testing.T, fakes ...*federationtest.FakeCluster) (*Proxy, *federation.Registry, *fakeLocal) {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	registry := federation.NewRegistry(federation.DefaultConfig(), broker, federationtest.Factory(fakes...))
	local := newFakeLocal()
	cfg := balancer.DefaultConfig()
	cfg.VerifyTimeout = time.Second
	cfg.VerifyInterval = 10 * time.Millisecond
	b, err := balancer.New(cfg, registry, local, nil, broker)
	require.NoError(t, err)
	return New(b, registry, local), registry, local
}

func TestSpawnAndStatusRemote(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	p, registry, _ := newProxy(t, fake)
	require.NoError(t, registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))

	agent, err := p.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	require.Equal(t, "a", agent.ClusterID)

	info, clusterID, err := p.Status(context.Background(), agent.ID)
	require.NoError(t, err)
	assert.Equal(t, types.AgentStatusRunning, info.Status)
	assert.Equal(t, "a", clusterID)
}

func TestExecRemoteCollectsChunks(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	fake.ExecChunks = []types.ExecChunk{{Output: "hel"}, {Output: "lo"}}
	p, registry, _ := newProxy(t, fake)
	require.NoError(t, registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))

	agent, err := p.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)

	result, err := p.Exec(context.Background(), agent.ID, "echo hello", nil, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Output)
	assert.Zero(t, result.ExitCode)
}

func TestExecStreamLocalDeliversFullOutput(t *testing.T) {
	p, _, _ := newProxy(t)

	agent, err := p.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	require.Empty(t, agent.ClusterID)

	var chunks []types.ExecChunk
	exit, err := p.ExecStream(context.Background(), agent.ID, "anything", nil, time.Second, func(chunk types.ExecChunk) {
		chunks = append(chunks, chunk)
	})
	require.NoError(t, err)
	assert.Zero(t, exit)

	// Non-streaming backend still produces at least one output chunk plus
	// the terminal exit chunk
	require.Len(t, chunks, 2)
	assert.Equal(t, "local-output", chunks[0].Output)
	require.NotNil(t, chunks[1].ExitCode)
	assert.Zero(t, *chunks[1].ExitCode)
}

func TestKillAndNotFoundFallthrough(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	p, registry, _ := newProxy(t, fake)
	require.NoError(t, registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))

	agent, err := p.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	require.NoError(t, p.Kill(context.Background(), agent.ID, false))

	_, _, err = p.Status(context.Background(), agent.ID)
	assert.ErrorIs(t, err, errdefs.ErrAgentNotFound)
	_, err = p.Exec(context.Background(), agent.ID, "x", nil, time.Second)
	assert.ErrorIs(t, err, errdefs.ErrAgentNotFound)
	assert.ErrorIs(t, p.Kill(context.Background(), agent.ID, false), errdefs.ErrAgentNotFound)
}

func TestMigrateRewritesRoute(t *testing.T) {
	a := federationtest.NewFakeCluster("a", *strongCaps())
	b := federationtest.NewFakeCluster("b", types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 90, CostPerHour: 9})
	p, registry, _ := newProxy(t, a, b)
	require.NoError(t, registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))
	require.NoError(t, registry.Register(&types.Cluster{
		ID: "b", Endpoint: "b:1",
		Capabilities: &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 90, CostPerHour: 9},
	}))

	agent, err := p.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)
	require.Equal(t, "a", agent.ClusterID)

	require.NoError(t, p.Migrate(context.Background(), agent.ID, "a", "b"))

	_, clusterID, err := p.Status(context.Background(), agent.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", clusterID)
	assert.True(t, b.HasAgent(agent.ID))
}

func TestListMergesBackendsWithWarnings(t *testing.T) {
	good := federationtest.NewFakeCluster("good", *strongCaps())
	bad := federationtest.NewFakeCluster("bad", *strongCaps())
	bad.ListErr = errors.New("listing broke")
	p, registry, local := newProxy(t, good, bad)
	require.NoError(t, registry.Register(&types.Cluster{ID: "good", Endpoint: "good:1", Capabilities: strongCaps()}))
	require.NoError(t, registry.Register(&types.Cluster{ID: "bad", Endpoint: "bad:1", Capabilities: strongCaps()}))

	_, err := good.SpawnAgent(context.Background(), &types.SpawnSpec{AgentID: "agent-remote", Model: "m"})
	require.NoError(t, err)
	_, err = local.Spawn(context.Background(), &types.SpawnSpec{AgentID: "agent-local", Model: "m"})
	require.NoError(t, err)

	agents, warnings, err := p.List(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "bad")

	byID := map[string]string{}
	for _, a := range agents {
		byID[a.ID] = a.ClusterID
	}
	assert.Equal(t, "good", byID["agent-remote"])
	assert.Equal(t, "", byID["agent-local"])
}

func TestListStatusFilter(t *testing.T) {
	p, _, local := newProxy(t)
	_, err := local.Spawn(context.Background(), &types.SpawnSpec{AgentID: "agent-x", Model: "m"})
	require.NoError(t, err)

	agents, _, err := p.List(context.Background(), types.AgentStatusRunning, nil)
	require.NoError(t, err)
	assert.Len(t, agents, 1)

	agents, _, err = p.List(context.Background(), types.AgentStatusPaused, nil)
	require.NoError(t, err)
	assert.Empty(t, agents)
}
