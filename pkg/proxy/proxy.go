package proxy

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/loomctl/loom/pkg/balancer"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// Proxy presents one per-agent operation surface over every backend. It
// keeps its own routing mirror and falls through to the balancer's
// directory, so callers never need to know which cluster owns an agent.
type Proxy struct {
	balancer *balancer.Balancer
	registry *federation.Registry
	local    runtime.Runtime
	logger   zerolog.Logger

	mu     sync.RWMutex
	routes map[string]string
}

// New creates a proxy over the balancer, registry, and local runtime
func New(b *balancer.Balancer, registry *federation.Registry, local runtime.Runtime) *Proxy {
	return &Proxy{
		balancer: b,
		registry: registry,
		local:    local,
		routes:   make(map[string]string),
		logger:   log.WithComponent("proxy"),
	}
}

// Spawn places an agent through the balancer and records the route
func (p *Proxy) Spawn(ctx context.Context, config *types.SpawnConfig) (*types.Agent, error) {
	agent, err := p.balancer.Spawn(ctx, config)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.routes[agent.ID] = agent.ClusterID
	p.mu.Unlock()
	return agent, nil
}

// resolve finds the owning backend for an agent: the proxy's mirror
// first, then the balancer's directory.
func (p *Proxy) resolve(agentID string) (clusterID string, migrating bool, err error) {
	p.mu.RLock()
	clusterID, ok := p.routes[agentID]
	p.mu.RUnlock()
	if ok {
		// The balancer knows about migration windows; honor them
		if ownerID, mig, known := p.balancer.Lookup(agentID); known {
			return ownerID, mig, nil
		}
		return clusterID, false, nil
	}
	if ownerID, mig, known := p.balancer.Lookup(agentID); known {
		return ownerID, mig, nil
	}
	return "", false, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "no route")
}

// Exec runs a command on the agent's backend and returns the collected
// output.
func (p *Proxy) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*runtime.ExecResult, error) {
	clusterID, _, err := p.resolve(agentID)
	if err != nil {
		return nil, err
	}
	if clusterID == "" {
		return p.local.Exec(ctx, agentID, command, env, timeout)
	}
	client, err := p.registry.Client(clusterID)
	if err != nil {
		return nil, err
	}
	var output strings.Builder
	exitCode, err := client.ExecuteCommand(ctx, agentID, command, env, timeout, func(chunk types.ExecChunk) {
		output.WriteString(chunk.Output)
	})
	if err != nil {
		return nil, err
	}
	return &runtime.ExecResult{Output: output.String(), ExitCode: exitCode}, nil
}

// ExecStream runs a command and surfaces output chunks incrementally.
// For the local runtime, which is not streaming, the handler is invoked
// once with the full output before the terminal chunk.
func (p *Proxy) ExecStream(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration, onChunk func(types.ExecChunk)) (int, error) {
	clusterID, _, err := p.resolve(agentID)
	if err != nil {
		return 0, err
	}
	if clusterID != "" {
		client, err := p.registry.Client(clusterID)
		if err != nil {
			return 0, err
		}
		return client.ExecuteCommand(ctx, agentID, command, env, timeout, onChunk)
	}

	result, err := p.local.Exec(ctx, agentID, command, env, timeout)
	if err != nil {
		return 0, err
	}
	if result.Output != "" {
		onChunk(types.ExecChunk{Output: result.Output, IsError: result.ExitCode != 0})
	}
	exit := result.ExitCode
	onChunk(types.ExecChunk{ExitCode: &exit})
	return exit, nil
}

// Kill terminates an agent and drops the route
func (p *Proxy) Kill(ctx context.Context, agentID string, force bool) error {
	if _, _, err := p.resolve(agentID); err != nil {
		return err
	}
	if err := p.balancer.Kill(ctx, agentID, force); err != nil {
		return err
	}
	p.mu.Lock()
	delete(p.routes, agentID)
	p.mu.Unlock()
	return nil
}

// Status reports an agent's state. Inside a migration window the status
// is migrating regardless of what the backends say.
func (p *Proxy) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, string, error) {
	clusterID, migrating, err := p.resolve(agentID)
	if err != nil {
		return nil, "", err
	}
	if migrating {
		return &types.AgentStatusInfo{Status: types.AgentStatusMigrating}, clusterID, nil
	}
	if clusterID == "" {
		info, err := p.local.Status(ctx, agentID)
		return info, "", err
	}
	client, err := p.registry.Client(clusterID)
	if err != nil {
		return nil, "", err
	}
	info, err := client.GetAgentStatus(ctx, agentID)
	return info, clusterID, err
}

// Migrate wraps the balancer's migration protocol and rewrites the
// proxy's own routing mirror on success.
func (p *Proxy) Migrate(ctx context.Context, agentID, fromCluster, toCluster string) error {
	if err := p.balancer.MigrateAgent(ctx, agentID, fromCluster, toCluster); err != nil {
		return err
	}
	p.mu.Lock()
	p.routes[agentID] = toCluster
	p.mu.Unlock()
	return nil
}

// List merges the local runtime's agents with listings from every active
// cluster, queried in parallel. A cluster whose listing fails becomes a
// warning, not an error; every returned agent carries its originating
// cluster id.
func (p *Proxy) List(ctx context.Context, statusFilter types.AgentStatus, labelSelector map[string]string) ([]*types.Agent, []string, error) {
	type result struct {
		clusterID string
		agents    []*types.Agent
		err       error
	}

	clusters := p.registry.ListByStatus(types.ClusterStatusActive)
	results := make(chan result, len(clusters)+1)

	go func() {
		agents, err := p.local.List(ctx)
		results <- result{agents: filterAgents(agents, statusFilter, labelSelector), err: err}
	}()
	for _, cluster := range clusters {
		go func(clusterID string) {
			client, err := p.registry.Client(clusterID)
			if err != nil {
				results <- result{clusterID: clusterID, err: err}
				return
			}
			agents, err := client.ListAgents(ctx, statusFilter, labelSelector)
			results <- result{clusterID: clusterID, agents: agents, err: err}
		}(cluster.ID)
	}

	var agents []*types.Agent
	var warnings []string
	for i := 0; i < len(clusters)+1; i++ {
		r := <-results
		if r.err != nil {
			source := r.clusterID
			if source == "" {
				source = "local"
			}
			warnings = append(warnings, fmt.Sprintf("listing %s failed: %v", source, r.err))
			p.logger.Warn().Err(r.err).Str("cluster_id", r.clusterID).Msg("Cluster listing failed")
			continue
		}
		for _, agent := range r.agents {
			agent.ClusterID = r.clusterID
			agents = append(agents, agent)
		}
	}
	return agents, warnings, nil
}

// RouteCount reports the size of the balancer's routing table
func (p *Proxy) RouteCount() int {
	return p.balancer.RouteCount()
}

func filterAgents(agents []*types.Agent, statusFilter types.AgentStatus, labelSelector map[string]string) []*types.Agent {
	var out []*types.Agent
	for _, agent := range agents {
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
		if match {
			out = append(out, agent)
		}
	}
	return out
}
