package balancer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/storage"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// Config tunes placement and migration
type Config struct {
	// DefaultPriority applies when a spawn request names none.
	DefaultPriority types.SelectionPriority
	// LocalFloor is the remote score below which the local runtime wins.
	LocalFloor float64
	// MaxSpawnAttempts bounds the capacity fallback chain.
	MaxSpawnAttempts int
	// MaxConcurrentMigrations caps outstanding migrations; beyond it new
	// requests fail fast.
	MaxConcurrentMigrations int
	// VerifyTimeout bounds migration step (d), polling every VerifyInterval.
	VerifyTimeout  time.Duration
	VerifyInterval time.Duration
	// JanitorInterval paces the cleanup retry loop.
	JanitorInterval time.Duration
	// Strategy names the balancing strategy used when a spawn carries no
	// explicit priority.
	Strategy string
}

// DefaultConfig returns the development profile
func DefaultConfig() Config {
	return Config{
		DefaultPriority:         types.PriorityAvailability,
		LocalFloor:              50,
		MaxSpawnAttempts:        3,
		MaxConcurrentMigrations: 5,
		VerifyTimeout:           10 * time.Second,
		VerifyInterval:          200 * time.Millisecond,
		JanitorInterval:         30 * time.Second,
	}
}

// route is one entry of the agent directory. Empty clusterID means the
// local runtime owns the agent.
type route struct {
	clusterID string
	migrating bool
}

// Balancer places agents on backends and owns the migration protocol. It
// is the authoritative agent directory: every agent it placed stays in
// the routing table until killed.
type Balancer struct {
	cfg      Config
	registry *federation.Registry
	local    runtime.Runtime
	store    storage.Store // nil disables persistence
	broker   *events.Broker
	strategy Strategy
	logger   zerolog.Logger

	mu         sync.RWMutex
	routes     map[string]*route
	migrations map[string]bool
	draining   bool

	migrationWG sync.WaitGroup
	janitor     *janitor
}

// New creates a balancer over the registry and the local runtime. The
// store may be nil for a non-persistent control plane.
func New(cfg Config, registry *federation.Registry, local runtime.Runtime, store storage.Store, broker *events.Broker) (*Balancer, error) {
	strategy, err := NewStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	b := &Balancer{
		cfg:        cfg,
		registry:   registry,
		local:      local,
		store:      store,
		broker:     broker,
		strategy:   strategy,
		routes:     make(map[string]*route),
		migrations: make(map[string]bool),
		logger:     log.WithComponent("balancer"),
	}
	b.janitor = newJanitor(cfg.JanitorInterval, registry, broker)
	return b, nil
}

// Start launches the cleanup janitor
func (b *Balancer) Start() {
	b.janitor.Start()
}

// Stop drains the balancer: new spawns are refused immediately, in-flight
// migrations get until ctx's deadline to finish (each rolls back on its
// own failure path), and the janitor halts.
func (b *Balancer) Stop(ctx context.Context) error {
	b.mu.Lock()
	b.draining = true
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.migrationWG.Wait()
		close(done)
	}()
	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = fmt.Errorf("shutdown deadline reached with migrations in flight: %w", ctx.Err())
	}
	b.janitor.Stop()
	return err
}

// Spawn places one agent per the spawn policy: translate the config into
// selection criteria, weigh the best remote against the local floor, then
// walk the candidate chain until a backend accepts.
func (b *Balancer) Spawn(ctx context.Context, config *types.SpawnConfig) (*types.Agent, error) {
	if config == nil || config.Model == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "spawn config requires a model")
	}
	b.mu.RLock()
	draining := b.draining
	b.mu.RUnlock()
	if draining {
		return nil, errdefs.Wrap(errdefs.ErrClusterUnavailable, "", "control plane is draining")
	}

	spec := &types.SpawnSpec{
		AgentID:        "agent-" + uuid.New().String(),
		Model:          config.Model,
		Labels:         config.Labels,
		TimeoutSeconds: config.TimeoutSeconds,
		GPUEnabled:     config.RequiresGPU,
		GPUType:        config.GPUType,
		EnvVars:        config.EnvVars,
	}

	candidates := b.candidateChain(spec.AgentID, config)
	var lastErr error
	attempts := 0
	for _, clusterID := range candidates {
		if attempts >= b.cfg.MaxSpawnAttempts {
			break
		}
		attempts++

		agent, err := b.spawnOn(ctx, clusterID, spec)
		if err == nil {
			b.recordRoute(agent.ID, clusterID)
			b.strategy.UpdateStats(clusterID, 1)
			metrics.AgentsSpawned.WithLabelValues(backendLabel(clusterID)).Inc()
			b.broker.Emit(events.EventAgentSpawned,
				fmt.Sprintf("Agent %s spawned on %s", agent.ID, backendLabel(clusterID)),
				map[string]string{"agent_id": agent.ID, "cluster_id": clusterID})
			b.logger.Info().
				Str("agent_id", agent.ID).
				Str("cluster_id", clusterID).
				Int("attempts", attempts).
				Msg("Spawned agent")
			return agent, nil
		}
		if !errdefs.IsCapacity(err) && !errdefs.IsRetryable(err) {
			return nil, err
		}
		lastErr = err
		metrics.SpawnFallbacks.Inc()
		b.logger.Warn().
			Err(err).
			Str("cluster_id", clusterID).
			Msg("Spawn attempt failed, trying next backend")
	}

	if lastErr != nil {
		return nil, errdefs.Wrapf(errdefs.ErrNoCapacity, spec.AgentID,
			"no backend accepted the agent after %d attempts: %v", attempts, lastErr)
	}
	return nil, errdefs.Wrap(errdefs.ErrNoCapacity, spec.AgentID, "no eligible backend")
}

// candidateChain orders the backends to try. Empty string is the local
// runtime.
func (b *Balancer) candidateChain(agentID string, config *types.SpawnConfig) []string {
	criteria := b.criteriaFor(config)
	ranked := b.registry.RankClusters(criteria)

	// Without an explicit priority the configured strategy reorders the
	// front of the chain; scoring still decides eligibility.
	if config.Priority == "" && len(ranked) > 1 {
		clusters := make([]*types.Cluster, len(ranked))
		for i, sc := range ranked {
			clusters[i] = sc.Cluster
		}
		if pick := b.strategy.Select(agentID, clusters); pick != nil && pick.ID != ranked[0].Cluster.ID {
			reordered := []federation.ScoredCluster{}
			for _, sc := range ranked {
				if sc.Cluster.ID == pick.ID {
					reordered = append([]federation.ScoredCluster{sc}, reordered...)
				} else {
					reordered = append(reordered, sc)
				}
			}
			ranked = reordered
		}
	}

	preferLocal := len(ranked) == 0 || ranked[0].Score < b.cfg.LocalFloor || config.PreferLocal

	var chain []string
	if preferLocal {
		chain = append(chain, "")
	}
	for _, sc := range ranked {
		chain = append(chain, sc.Cluster.ID)
	}
	if !preferLocal {
		chain = append(chain, "")
	}
	return chain
}

func (b *Balancer) criteriaFor(config *types.SpawnConfig) *types.Criteria {
	priority := config.Priority
	if priority == "" {
		priority = b.cfg.DefaultPriority
	}
	return &types.Criteria{
		Priority:    priority,
		MinAgents:   1,
		RequiresGPU: config.RequiresGPU,
		GPUType:     config.GPUType,
	}
}

func (b *Balancer) spawnOn(ctx context.Context, clusterID string, spec *types.SpawnSpec) (*types.Agent, error) {
	if clusterID == "" {
		return b.local.Spawn(ctx, spec)
	}
	client, err := b.registry.Client(clusterID)
	if err != nil {
		return nil, err
	}
	return client.SpawnAgent(ctx, spec)
}

// Kill terminates an agent on whichever backend owns it and drops the
// route. Killing an agent mid-migration is refused.
func (b *Balancer) Kill(ctx context.Context, agentID string, force bool) error {
	b.mu.RLock()
	rt, ok := b.routes[agentID]
	var clusterID string
	var migrating bool
	if ok {
		clusterID = rt.clusterID
		migrating = rt.migrating
	}
	b.mu.RUnlock()

	if !ok {
		return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "not in routing table")
	}
	if migrating {
		return errdefs.Wrap(errdefs.ErrMigrationInProgress, agentID, "agent is migrating")
	}

	var err error
	if clusterID == "" {
		err = b.local.Kill(ctx, agentID, force)
	} else {
		var client federation.ClusterClient
		client, err = b.registry.Client(clusterID)
		if err == nil {
			err = client.KillAgent(ctx, agentID, force)
		}
	}
	if err != nil && !(force && errdefs.IsNotFound(err)) {
		return err
	}

	b.dropRoute(agentID)
	b.strategy.UpdateStats(clusterID, -1)
	metrics.AgentsKilled.Inc()
	b.broker.Emit(events.EventAgentKilled,
		fmt.Sprintf("Agent %s killed", agentID),
		map[string]string{"agent_id": agentID, "cluster_id": clusterID})
	return nil
}

// Lookup resolves an agent to its owning backend. migrating reports
// whether the agent is inside a migration window.
func (b *Balancer) Lookup(agentID string) (clusterID string, migrating, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rt, ok := b.routes[agentID]
	if !ok {
		return "", false, false
	}
	return rt.clusterID, rt.migrating, true
}

// OwnedBy counts the agents routed to a cluster. The registry consults
// this before allowing unregistration.
func (b *Balancer) OwnedBy(clusterID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, rt := range b.routes {
		if rt.clusterID == clusterID {
			n++
		}
	}
	return n
}

// AgentsOn lists the agent ids routed to a cluster
func (b *Balancer) AgentsOn(clusterID string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var ids []string
	for id, rt := range b.routes {
		if rt.clusterID == clusterID {
			ids = append(ids, id)
		}
	}
	return ids
}

// RouteCount reports the size of the routing table
func (b *Balancer) RouteCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.routes)
}

// RestoreRoute reloads one persisted route at startup without emitting
// events or touching the store.
func (b *Balancer) RestoreRoute(agentID, clusterID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[agentID] = &route{clusterID: clusterID}
}

func (b *Balancer) recordRoute(agentID, clusterID string) {
	b.mu.Lock()
	b.routes[agentID] = &route{clusterID: clusterID}
	b.mu.Unlock()

	if b.store != nil {
		if err := b.store.SaveRoute(&storage.Route{AgentID: agentID, ClusterID: clusterID}); err != nil {
			b.logger.Error().Err(err).Str("agent_id", agentID).Msg("Failed to persist route")
		}
	}
}

func (b *Balancer) dropRoute(agentID string) {
	b.mu.Lock()
	delete(b.routes, agentID)
	b.mu.Unlock()

	if b.store != nil {
		if err := b.store.DeleteRoute(agentID); err != nil {
			b.logger.Error().Err(err).Str("agent_id", agentID).Msg("Failed to delete persisted route")
		}
	}
}

func backendLabel(clusterID string) string {
	if clusterID == "" {
		return "local"
	}
	return clusterID
}
