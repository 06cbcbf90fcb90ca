package api

import (
	"context"
	"testing"
	"time"

	"github.com/loomctl/loom/api/proto"
	"github.com/loomctl/loom/pkg/balancer"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/proxy"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// stubRuntime satisfies runtime.Runtime with no local agents; the server
// tests place everything on fake remote clusters.
type stubRuntime struct{}

func (stubRuntime) Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	return nil, errdefs.Wrap(errdefs.ErrNoCapacity, "", "local runtime disabled")
}

func (stubRuntime) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*runtime.ExecResult, error) {
	return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (stubRuntime) Kill(ctx context.Context, agentID string, force bool) error {
	return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (stubRuntime) List(ctx context.Context) ([]*types.Agent, error) { return nil, nil }

func (stubRuntime) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (stubRuntime) Close() error { return nil }

func strongCaps() *types.ClusterCapabilities {
	return &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 10, CostPerHour: 1}
}

func newTestServer(t *testing.T, fakes ...*federationtest.FakeCluster) (*Server, *federation.Registry, *events.Broker) {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	registry := federation.NewRegistry(federation.DefaultConfig(), broker, federationtest.Factory(fakes...))
	cfg := balancer.DefaultConfig()
	cfg.VerifyTimeout = time.Second
	cfg.VerifyInterval = 10 * time.Millisecond
	bal, err := balancer.New(cfg, registry, stubRuntime{}, nil, broker)
	require.NoError(t, err)
	px := proxy.New(bal, registry, stubRuntime{})

	return NewServer(DefaultConfig(), px, registry, bal, broker), registry, broker
}

func registerFake(t *testing.T, registry *federation.Registry, id string) {
	t.Helper()
	require.NoError(t, registry.Register(&types.Cluster{ID: id, Endpoint: id + ":1", Capabilities: strongCaps()}))
}

func TestSpawnKillAndStatus(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	s, registry, _ := newTestServer(t, fake)
	registerFake(t, registry, "a")

	spawned, err := s.SpawnAgent(context.Background(), &proto.SpawnRequest{Model: "m"})
	require.NoError(t, err)
	require.NotNil(t, spawned.Agent)
	assert.Equal(t, "a", spawned.Agent.ClusterId)

	info, err := s.GetAgentStatus(context.Background(), &proto.AgentStatusRequest{AgentId: spawned.Agent.AgentId})
	require.NoError(t, err)
	assert.Equal(t, string(types.AgentStatusRunning), info.Status)
	assert.Equal(t, "a", info.ClusterId)

	killed, err := s.KillAgent(context.Background(), &proto.KillRequest{AgentId: spawned.Agent.AgentId})
	require.NoError(t, err)
	assert.True(t, killed.Success)

	_, err = s.GetAgentStatus(context.Background(), &proto.AgentStatusRequest{AgentId: spawned.Agent.AgentId})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestKillUnknownAgentMapsToNotFound(t *testing.T) {
	s, _, _ := newTestServer(t)

	_, err := s.KillAgent(context.Background(), &proto.KillRequest{AgentId: "ghost"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListAgentsAcrossClusters(t *testing.T) {
	a := federationtest.NewFakeCluster("a", *strongCaps())
	b := federationtest.NewFakeCluster("b", *strongCaps())
	s, registry, _ := newTestServer(t, a, b)
	registerFake(t, registry, "a")
	registerFake(t, registry, "b")

	for i := 0; i < 3; i++ {
		_, err := s.SpawnAgent(context.Background(), &proto.SpawnRequest{Model: "m"})
		require.NoError(t, err)
	}

	resp, err := s.ListAgents(context.Background(), &proto.ListAgentsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Agents, 3)
	assert.Empty(t, resp.Warnings)
}

type execStream struct {
	grpc.ServerStream
	ctx    context.Context
	chunks []*proto.ExecuteCommandResponse
}

func (s *execStream) Context() context.Context { return s.ctx }

func (s *execStream) Send(resp *proto.ExecuteCommandResponse) error {
	s.chunks = append(s.chunks, resp)
	return nil
}

func TestExecAgentStreamsChunks(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	fake.ExecChunks = []types.ExecChunk{{Output: "hel"}, {Output: "lo"}}
	s, registry, _ := newTestServer(t, fake)
	registerFake(t, registry, "a")

	spawned, err := s.SpawnAgent(context.Background(), &proto.SpawnRequest{Model: "m"})
	require.NoError(t, err)

	stream := &execStream{ctx: context.Background()}
	err = s.ExecAgent(&proto.ExecRequest{AgentId: spawned.Agent.AgentId, Command: "echo hello"}, stream)
	require.NoError(t, err)

	var output string
	for _, chunk := range stream.chunks {
		output += chunk.Output
	}
	assert.Equal(t, "hello", output)
}

func TestRegisterGetAndListClusters(t *testing.T) {
	a := federationtest.NewFakeCluster("a", *strongCaps())
	s, _, _ := newTestServer(t, a)

	registered, err := s.RegisterCluster(context.Background(), &proto.RegisterClusterRequest{
		Cluster: &proto.Cluster{
			ClusterId:    "a",
			Name:         "alpha",
			Endpoint:     "a:1",
			Region:       "us-east",
			Capabilities: federation.CapabilitiesToProto(strongCaps()),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "a", registered.ClusterId)

	got, err := s.GetCluster(context.Background(), &proto.GetClusterRequest{ClusterId: "a"})
	require.NoError(t, err)
	require.NotNil(t, got.Cluster)
	assert.Equal(t, "alpha", got.Cluster.Name)

	listed, err := s.ListClusters(context.Background(), &proto.ListClustersRequest{})
	require.NoError(t, err)
	assert.Len(t, listed.Clusters, 1)

	filtered, err := s.ListClusters(context.Background(), &proto.ListClustersRequest{Region: "eu-west"})
	require.NoError(t, err)
	assert.Empty(t, filtered.Clusters)
}

func TestRegisterClusterRejectsEmpty(t *testing.T) {
	s, _, _ := newTestServer(t)

	_, err := s.RegisterCluster(context.Background(), &proto.RegisterClusterRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUnregisterUnknownCluster(t *testing.T) {
	s, _, _ := newTestServer(t)

	_, err := s.UnregisterCluster(context.Background(), &proto.UnregisterClusterRequest{ClusterId: "ghost"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

type watchStream struct {
	grpc.ServerStream
	ctx    context.Context
	events chan *proto.Event
}

func (s *watchStream) Context() context.Context { return s.ctx }

func (s *watchStream) Send(ev *proto.Event) error {
	s.events <- ev
	return nil
}

func TestWatchEventsDeliversAndStops(t *testing.T) {
	s, _, broker := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	stream := &watchStream{ctx: ctx, events: make(chan *proto.Event, 10)}

	done := make(chan error, 1)
	go func() {
		done <- s.WatchEvents(&proto.WatchEventsRequest{EventTypes: []string{string(events.EventClusterRegistered)}}, stream)
	}()

	// give the subscription a moment to attach before emitting
	time.Sleep(50 * time.Millisecond)
	broker.Emit(events.EventClusterRegistered, "cluster a joined", map[string]string{"cluster_id": "a"})

	select {
	case ev := <-stream.events:
		assert.Equal(t, string(events.EventClusterRegistered), ev.Type)
		assert.Equal(t, "a", ev.Metadata["cluster_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on context cancel")
	}
}

func TestSetDraining(t *testing.T) {
	s, _, _ := newTestServer(t)

	assert.False(t, s.draining.Load())
	s.SetDraining(true)
	assert.True(t, s.draining.Load())
	s.SetDraining(false)
	assert.False(t, s.draining.Load())
}
