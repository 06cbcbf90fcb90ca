// Package federationtest provides an in-memory fake cluster for testing
// components that talk to remote clusters through the federation client
// interface. The fake keeps agents in a map and exposes knobs to script
// failures, latency, and exec output.
package federationtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/types"
)

// FakeCluster implements federation.ClusterClient without a network. All
// knobs are safe for concurrent use.
type FakeCluster struct {
	mu sync.Mutex

	id     string
	caps   types.ClusterCapabilities
	agents map[string]*types.Agent
	states map[string][]byte

	// Failure knobs; a non-nil error makes the operation fail.
	HeartbeatErr error
	SpawnErr     error
	KillErr      error
	ExportErr    error
	ImportErr    error
	StatusErr    error
	ListErr      error

	// HeartbeatDelay is added before every heartbeat response, to push a
	// cluster over the degraded-latency threshold in tests.
	HeartbeatDelay time.Duration

	// ExecChunks are replayed to ExecuteCommand callers; ExecExit is the
	// terminal exit code. With OmitExitChunk set the stream ends without a
	// terminal chunk.
	ExecChunks    []types.ExecChunk
	ExecExit      int
	OmitExitChunk bool

	heartbeats int
	spawns     int
	kills      int

	eventCh chan *federation.ClusterEvent
	closed  bool
}

// NewFakeCluster creates a fake with the given id and capabilities
func NewFakeCluster(id string, caps types.ClusterCapabilities) *FakeCluster {
	return &FakeCluster{
		id:      id,
		caps:    caps,
		agents:  make(map[string]*types.Agent),
		states:  make(map[string][]byte),
		eventCh: make(chan *federation.ClusterEvent, 16),
	}
}

// Factory returns a federation.ClientFactory that hands out the fakes by
// cluster id, so a registry under test dials fakes instead of the network.
func Factory(fakes ...*FakeCluster) federation.ClientFactory {
	byID := make(map[string]*FakeCluster, len(fakes))
	for _, f := range fakes {
		byID[f.id] = f
	}
	return func(cluster *types.Cluster) (federation.ClusterClient, error) {
		fake, ok := byID[cluster.ID]
		if !ok {
			return nil, fmt.Errorf("no fake for cluster %s", cluster.ID)
		}
		return fake, nil
	}
}

func (f *FakeCluster) ClusterID() string { return f.id }

func (f *FakeCluster) SpawnAgent(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spawns++
	if f.SpawnErr != nil {
		return nil, f.SpawnErr
	}
	if f.caps.AvailableAgents <= 0 {
		return nil, errdefs.Wrap(errdefs.ErrCapacityExceeded, f.id, "no capacity")
	}
	agent := &types.Agent{
		ID:        spec.AgentID,
		ClusterID: f.id,
		Status:    types.AgentStatusRunning,
		Model:     spec.Model,
		Labels:    spec.Labels,
		StartedAt: time.Now(),
	}
	f.agents[agent.ID] = agent
	f.caps.AvailableAgents--
	f.caps.ActiveAgents++
	copied := *agent
	return &copied, nil
}

func (f *FakeCluster) KillAgent(ctx context.Context, agentID string, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kills++
	if f.KillErr != nil {
		return f.KillErr
	}
	if _, ok := f.agents[agentID]; !ok {
		if force {
			return nil
		}
		return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	delete(f.agents, agentID)
	f.caps.AvailableAgents++
	f.caps.ActiveAgents--
	return nil
}

func (f *FakeCluster) ExecuteCommand(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration, onChunk func(types.ExecChunk)) (int, error) {
	f.mu.Lock()
	_, ok := f.agents[agentID]
	chunks := f.ExecChunks
	exit := f.ExecExit
	omit := f.OmitExitChunk
	f.mu.Unlock()

	if !ok {
		return 0, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	for _, chunk := range chunks {
		onChunk(chunk)
	}
	if omit {
		return 0, errdefs.Wrap(errdefs.ErrClusterUnavailable, f.id, "stream ended without exit code")
	}
	onChunk(types.ExecChunk{ExitCode: &exit})
	return exit, nil
}

func (f *FakeCluster) GetAgentStatus(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StatusErr != nil {
		return nil, f.StatusErr
	}
	agent, ok := f.agents[agentID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	return &types.AgentStatusInfo{
		Status:    agent.Status,
		StartedAt: agent.StartedAt,
		Metadata:  map[string]string{"model": agent.Model},
	}, nil
}

func (f *FakeCluster) ListAgents(ctx context.Context, statusFilter types.AgentStatus, labelSelector map[string]string) ([]*types.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []*types.Agent
	for _, agent := range f.agents {
		if statusFilter != "" && agent.Status != statusFilter {
			continue
		}
		match := true
		for k, v := range labelSelector {
			if agent.Labels[k] != v {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		copied := *agent
		out = append(out, &copied)
	}
	return out, nil
}

func (f *FakeCluster) Heartbeat(ctx context.Context) (*types.ClusterCapabilities, error) {
	f.mu.Lock()
	f.heartbeats++
	delay := f.HeartbeatDelay
	err := f.HeartbeatErr
	caps := f.caps
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, errdefs.Wrap(errdefs.ErrTimeout, f.id, "heartbeat timed out")
		}
	}
	if err != nil {
		return nil, err
	}
	return &caps, nil
}

func (f *FakeCluster) StreamEvents(ctx context.Context, sub federation.EventSubscription, handler func(*federation.ClusterEvent)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-f.eventCh:
			if !ok {
				return nil
			}
			handler(event)
		}
	}
}

func (f *FakeCluster) ExportAgent(ctx context.Context, agentID string, includeState bool) (*types.AgentSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ExportErr != nil {
		return nil, f.ExportErr
	}
	agent, ok := f.agents[agentID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "unknown agent")
	}
	snapshot := &types.AgentSnapshot{
		AgentID:       agentID,
		Metadata:      map[string]string{"model": agent.Model},
		CreatedAt:     time.Now(),
		SourceCluster: f.id,
	}
	if includeState {
		snapshot.State = f.states[agentID]
	}
	return snapshot, nil
}

func (f *FakeCluster) ImportAgent(ctx context.Context, snapshot *types.AgentSnapshot) (*types.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ImportErr != nil {
		return nil, f.ImportErr
	}
	if _, ok := f.agents[snapshot.AgentID]; ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentAlreadyExists, snapshot.AgentID, "already present")
	}
	agent := &types.Agent{
		ID:        snapshot.AgentID,
		ClusterID: f.id,
		Status:    types.AgentStatusRunning,
		Model:     snapshot.Metadata["model"],
		StartedAt: time.Now(),
	}
	f.agents[agent.ID] = agent
	f.states[agent.ID] = snapshot.State
	f.caps.AvailableAgents--
	f.caps.ActiveAgents++
	copied := *agent
	return &copied, nil
}

func (f *FakeCluster) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.eventCh)
	}
	return nil
}

// EmitEvent injects a cluster event into the fake's event stream
func (f *FakeCluster) EmitEvent(event *federation.ClusterEvent) {
	f.eventCh <- event
}

// HasAgent reports whether the fake currently hosts the agent
func (f *FakeCluster) HasAgent(agentID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.agents[agentID]
	return ok
}

// Heartbeats returns the number of heartbeat probes received
func (f *FakeCluster) Heartbeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.heartbeats
}

// Spawns returns the number of spawn attempts received
func (f *FakeCluster) Spawns() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spawns
}

// Closed reports whether Close was called
func (f *FakeCluster) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// SetCapabilities replaces the advertised capabilities
func (f *FakeCluster) SetCapabilities(caps types.ClusterCapabilities) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.caps = caps
}

// WaitForEvent blocks until the subscriber delivers an event of the given
// type, failing the test after the timeout.
func WaitForEvent(t *testing.T, sub events.Subscriber, eventType events.EventType, timeout time.Duration) *events.Event {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case event, ok := <-sub:
			if !ok {
				t.Fatalf("subscription closed while waiting for %s", eventType)
			}
			if event.Type == eventType {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %s", eventType)
		}
	}
}
