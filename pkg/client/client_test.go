package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/loomctl/loom/pkg/api"
	"github.com/loomctl/loom/pkg/balancer"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/proxy"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/types"
)

type idleRuntime struct{}

func (idleRuntime) Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	return nil, errdefs.Wrap(errdefs.ErrNoCapacity, "", "local runtime disabled")
}

func (idleRuntime) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*runtime.ExecResult, error) {
	return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (idleRuntime) Kill(ctx context.Context, agentID string, force bool) error {
	return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (idleRuntime) List(ctx context.Context) ([]*types.Agent, error) { return nil, nil }

func (idleRuntime) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
}

func (idleRuntime) Close() error { return nil }

func strongCaps() *types.ClusterCapabilities {
	return &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 10, LatencyMs: 10, CostPerHour: 1}
}

// newClientServer serves a real API server over bufconn and returns a
// client dialed against it.
func newClientServer(t *testing.T, fakes ...*federationtest.FakeCluster) (*Client, *federation.Registry, *events.Broker) {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	registry := federation.NewRegistry(federation.DefaultConfig(), broker, federationtest.Factory(fakes...))
	cfg := balancer.DefaultConfig()
	cfg.VerifyTimeout = time.Second
	cfg.VerifyInterval = 10 * time.Millisecond
	bal, err := balancer.New(cfg, registry, idleRuntime{}, nil, broker)
	require.NoError(t, err)
	registry.SetOwnershipChecker(bal.OwnedBy)
	px := proxy.New(bal, registry, idleRuntime{})

	server := api.NewServer(api.DefaultConfig(), px, registry, bal, broker)
	lis := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	client := NewFromConn(conn)
	t.Cleanup(func() { client.Close() })
	return client, registry, broker
}

func TestSpawnStatusKillRoundTrip(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	c, registry, _ := newClientServer(t, fake)
	require.NoError(t, registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))

	agent, err := c.Spawn(context.Background(), &types.SpawnConfig{Model: "m", Labels: map[string]string{"team": "core"}})
	require.NoError(t, err)
	assert.Equal(t, "a", agent.ClusterID)
	assert.Equal(t, types.AgentStatusRunning, agent.Status)

	info, clusterID, err := c.Status(context.Background(), agent.ID)
	require.NoError(t, err)
	assert.Equal(t, types.AgentStatusRunning, info.Status)
	assert.Equal(t, "a", clusterID)

	require.NoError(t, c.Kill(context.Background(), agent.ID, false))

	_, _, err = c.Status(context.Background(), agent.ID)
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestExecDeliversChunksAndExitCode(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	fake.ExecChunks = []types.ExecChunk{{Output: "out"}, {Output: "put"}}
	fake.ExecExit = 3
	c, registry, _ := newClientServer(t, fake)
	require.NoError(t, registry.Register(&types.Cluster{ID: "a", Endpoint: "a:1", Capabilities: strongCaps()}))

	agent, err := c.Spawn(context.Background(), &types.SpawnConfig{Model: "m"})
	require.NoError(t, err)

	var output string
	code, err := c.Exec(context.Background(), agent.ID, "run", nil, time.Second, func(chunk types.ExecChunk) {
		output += chunk.Output
	})
	require.NoError(t, err)
	assert.Equal(t, "output", output)
	assert.Equal(t, 3, code)
}

func TestClusterAdministration(t *testing.T) {
	fake := federationtest.NewFakeCluster("a", *strongCaps())
	c, _, _ := newClientServer(t, fake)

	require.NoError(t, c.RegisterCluster(context.Background(), &types.Cluster{
		ID:           "a",
		Name:         "alpha",
		Endpoint:     "a:1",
		Region:       "us-east",
		Capabilities: strongCaps(),
	}))

	info, err := c.GetCluster(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "alpha", info.Cluster.Name)
	assert.Equal(t, types.Region("us-east"), info.Cluster.Region)

	clusters, err := c.ListClusters(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, clusters, 1)

	none, err := c.ListClusters(context.Background(), "eu-west", "")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, c.UnregisterCluster(context.Background(), "a"))
	_, err = c.GetCluster(context.Background(), "a")
	assert.True(t, errdefs.IsNotFound(err))
}

func TestErrorsCrossTheWire(t *testing.T) {
	c, _, _ := newClientServer(t)

	err := c.Kill(context.Background(), "ghost", false)
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))

	err = c.RegisterCluster(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrInvalidSpec)
}

func TestWatchEventsStreams(t *testing.T) {
	c, _, broker := newClientServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan *events.Event, 10)
	done := make(chan error, 1)
	go func() {
		done <- c.WatchEvents(ctx, []string{string(events.EventAgentSpawned)}, func(ev *events.Event) {
			received <- ev
		})
	}()

	time.Sleep(100 * time.Millisecond)
	broker.Emit(events.EventAgentSpawned, "agent up", map[string]string{"agent_id": "x"})

	select {
	case ev := <-received:
		assert.Equal(t, events.EventAgentSpawned, ev.Type)
		assert.Equal(t, "x", ev.Metadata["agent_id"])
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
