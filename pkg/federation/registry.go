package federation

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// Config tunes the registry's health probing
type Config struct {
	ProbeInterval     time.Duration
	ProbeTimeout      time.Duration
	DegradedThreshold int
	OfflineThreshold  int
	// AutoRemoveAfter purges clusters that stay offline this long; zero
	// disables purging.
	AutoRemoveAfter time.Duration
}

// DefaultConfig returns the development profile
func DefaultConfig() Config {
	return Config{
		ProbeInterval:     30 * time.Second,
		ProbeTimeout:      5 * time.Second,
		DegradedThreshold: 2,
		OfflineThreshold:  5,
	}
}

var clusterIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Registry holds the federation's cluster descriptors, their health
// state, and one client per cluster. All mutation goes through a single
// internal mutex; readers get copies.
type Registry struct {
	cfg      Config
	clusters map[string]*types.Cluster
	health   map[string]*types.ClusterHealth
	clients  map[string]ClusterClient
	order    []string // insertion order, the selection tie-break
	broker   *events.Broker
	dial     ClientFactory
	// ownedAgents reports how many agents a cluster currently owns; set by
	// the proxy so unregistration can refuse to orphan live agents.
	ownedAgents func(clusterID string) int
	mu          sync.RWMutex
	logger      zerolog.Logger
}

// NewRegistry creates a cluster registry. A nil factory uses the gRPC
// dialing default.
func NewRegistry(cfg Config, broker *events.Broker, factory ClientFactory) *Registry {
	if factory == nil {
		factory = func(cluster *types.Cluster) (ClusterClient, error) {
			return NewClient(cluster)
		}
	}
	return &Registry{
		cfg:      cfg,
		clusters: make(map[string]*types.Cluster),
		health:   make(map[string]*types.ClusterHealth),
		clients:  make(map[string]ClusterClient),
		broker:   broker,
		dial:     factory,
		logger:   log.WithComponent("registry"),
	}
}

// SetOwnershipChecker wires the callback unregistration uses to count an
// outgoing cluster's live agents.
func (r *Registry) SetOwnershipChecker(fn func(clusterID string) int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ownedAgents = fn
}

// Register validates a cluster descriptor, fills defaults, dials its
// client, and adds it to the federation. Registering an existing id
// updates the descriptor in place without creating a duplicate.
func (r *Registry) Register(cluster *types.Cluster) error {
	if cluster == nil || cluster.ID == "" {
		return errdefs.Wrap(errdefs.ErrInvalidSpec, "", "cluster id must not be empty")
	}
	if !clusterIDPattern.MatchString(cluster.ID) {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, cluster.ID, "cluster id %q is not a valid identifier", cluster.ID)
	}
	if cluster.Endpoint == "" {
		return errdefs.Wrap(errdefs.ErrInvalidSpec, cluster.ID, "cluster endpoint must not be empty")
	}

	// Defaults
	if cluster.Name == "" {
		cluster.Name = cluster.ID
	}
	if cluster.Status == "" {
		cluster.Status = types.ClusterStatusActive
	}
	if cluster.Capabilities == nil {
		cluster.Capabilities = &types.ClusterCapabilities{}
	}
	if cluster.Metadata == nil {
		cluster.Metadata = make(map[string]string)
	}
	if cluster.RegisteredAt.IsZero() {
		cluster.RegisteredAt = time.Now()
	}

	r.mu.Lock()
	existing, update := r.clusters[cluster.ID]

	// Keep or (re)build the client. A changed endpoint needs a fresh dial.
	var staleClient ClusterClient
	if update && existing.Endpoint != cluster.Endpoint {
		staleClient = r.clients[cluster.ID]
		delete(r.clients, cluster.ID)
	}
	if _, ok := r.clients[cluster.ID]; !ok {
		client, err := r.dial(cluster)
		if err != nil {
			r.mu.Unlock()
			return fmt.Errorf("failed to create client for cluster %s: %w", cluster.ID, err)
		}
		r.clients[cluster.ID] = client
	}

	copied := *cluster
	r.clusters[cluster.ID] = &copied
	if !update {
		r.order = append(r.order, cluster.ID)
		r.health[cluster.ID] = &types.ClusterHealth{
			Status:        cluster.Status,
			LastHeartbeat: cluster.LastHeartbeat,
		}
	}
	r.mu.Unlock()

	if staleClient != nil {
		_ = staleClient.Close()
	}

	eventType := events.EventClusterRegistered
	if update {
		eventType = events.EventClusterUpdated
	}
	r.broker.Emit(eventType, fmt.Sprintf("Cluster %s at %s", cluster.ID, cluster.Endpoint),
		map[string]string{"cluster_id": cluster.ID, "region": string(cluster.Region)})
	r.logger.Info().Str("cluster_id", cluster.ID).Bool("update", update).Msg("Registered cluster")
	return nil
}

// Unregister removes a cluster. It refuses while the cluster still owns
// live agents; migrate or kill them first.
func (r *Registry) Unregister(clusterID string) error {
	r.mu.Lock()
	if _, ok := r.clusters[clusterID]; !ok {
		r.mu.Unlock()
		return errdefs.Wrap(errdefs.ErrClusterNotFound, clusterID, "not registered")
	}
	if r.ownedAgents != nil {
		if n := r.ownedAgents(clusterID); n > 0 {
			r.mu.Unlock()
			return errdefs.Wrapf(errdefs.ErrInvalidSpec, clusterID,
				"cluster still owns %d live agents", n)
		}
	}

	client := r.clients[clusterID]
	delete(r.clusters, clusterID)
	delete(r.clients, clusterID)
	delete(r.health, clusterID)
	for i, id := range r.order {
		if id == clusterID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	if client != nil {
		_ = client.Close()
	}

	r.broker.Emit(events.EventClusterUnregistered, fmt.Sprintf("Cluster %s removed", clusterID),
		map[string]string{"cluster_id": clusterID})
	r.logger.Info().Str("cluster_id", clusterID).Msg("Unregistered cluster")
	return nil
}

// Get returns a copy of one cluster descriptor
func (r *Registry) Get(clusterID string) (*types.Cluster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cluster, ok := r.clusters[clusterID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrClusterNotFound, clusterID, "not registered")
	}
	copied := *cluster
	return &copied, nil
}

// Client returns the cluster's client
func (r *Registry) Client(clusterID string) (ClusterClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[clusterID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrClusterNotFound, clusterID, "not registered")
	}
	return client, nil
}

// Health returns a copy of one cluster's health record
func (r *Registry) Health(clusterID string) (*types.ClusterHealth, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	health, ok := r.health[clusterID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrClusterNotFound, clusterID, "not registered")
	}
	copied := *health
	return &copied, nil
}

// ListClusters returns copies of every cluster in insertion order
func (r *Registry) ListClusters() []*types.Cluster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clusters := make([]*types.Cluster, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.clusters[id]
		clusters = append(clusters, &copied)
	}
	return clusters
}

// ListByStatus returns clusters currently in the given status
func (r *Registry) ListByStatus(status types.ClusterStatus) []*types.Cluster {
	var out []*types.Cluster
	for _, c := range r.ListClusters() {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// ListByRegion returns clusters in the given region
func (r *Registry) ListByRegion(region types.Region) []*types.Cluster {
	var out []*types.Cluster
	for _, c := range r.ListClusters() {
		if c.Region == region {
			out = append(out, c)
		}
	}
	return out
}

// ListWithGPU returns clusters reporting GPU support
func (r *Registry) ListWithGPU() []*types.Cluster {
	var out []*types.Cluster
	for _, c := range r.ListClusters() {
		if c.Capabilities != nil && c.Capabilities.GPUEnabled {
			out = append(out, c)
		}
	}
	return out
}

// ListByFlag returns clusters whose capability flag is set true
func (r *Registry) ListByFlag(flag string) []*types.Cluster {
	var out []*types.Cluster
	for _, c := range r.ListClusters() {
		if c.Capabilities != nil && c.Capabilities.Flags[flag] {
			out = append(out, c)
		}
	}
	return out
}

// SetStatus transitions a cluster's status, emitting a status_changed
// event carrying the old and new values.
func (r *Registry) SetStatus(clusterID string, status types.ClusterStatus) error {
	r.mu.Lock()
	cluster, ok := r.clusters[clusterID]
	if !ok {
		r.mu.Unlock()
		return errdefs.Wrap(errdefs.ErrClusterNotFound, clusterID, "not registered")
	}
	old := cluster.Status
	cluster.Status = status
	if health, ok := r.health[clusterID]; ok {
		health.Status = status
	}
	r.mu.Unlock()

	if old != status {
		r.emitStatusChange(clusterID, old, status)
	}
	return nil
}

func (r *Registry) emitStatusChange(clusterID string, oldStatus, newStatus types.ClusterStatus) {
	r.broker.Emit(events.EventClusterStatusChanged,
		fmt.Sprintf("Cluster %s: %s -> %s", clusterID, oldStatus, newStatus),
		map[string]string{
			"cluster_id": clusterID,
			"old_status": string(oldStatus),
			"new_status": string(newStatus),
		})
	r.logger.Info().
		Str("cluster_id", clusterID).
		Str("old_status", string(oldStatus)).
		Str("new_status", string(newStatus)).
		Msg("Cluster status changed")
}

// recordProbeSuccess applies one successful probe to the health state and
// merges the reported capabilities. Returns the old and new status.
func (r *Registry) recordProbeSuccess(clusterID string, latency time.Duration, caps *types.ClusterCapabilities) (oldStatus, newStatus types.ClusterStatus, known bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cluster, ok := r.clusters[clusterID]
	health := r.health[clusterID]
	if !ok || health == nil {
		return "", "", false
	}

	latencyMs := float64(latency.Milliseconds())
	now := time.Now()

	health.ConsecutiveSuccesses++
	health.ConsecutiveFailures = 0
	health.LastHeartbeat = now
	health.LatencyMs = latencyMs
	health.Message = ""

	oldStatus = cluster.Status
	// A probe slower than half the timeout marks the cluster degraded
	if latency > r.cfg.ProbeTimeout/2 {
		newStatus = types.ClusterStatusDegraded
		health.Message = fmt.Sprintf("probe latency %s over threshold", latency)
	} else {
		newStatus = types.ClusterStatusActive
	}
	cluster.Status = newStatus
	health.Status = newStatus
	cluster.LastHeartbeat = now

	if caps != nil {
		merged := *caps
		if merged.Flags == nil && cluster.Capabilities != nil {
			merged.Flags = cluster.Capabilities.Flags
		}
		merged.LatencyMs = latencyMs
		cluster.Capabilities = &merged
	} else if cluster.Capabilities != nil {
		cluster.Capabilities.LatencyMs = latencyMs
	}

	return oldStatus, newStatus, true
}

// recordProbeFailure applies one failed probe. Returns the old and new
// status plus whether the cluster should be purged.
func (r *Registry) recordProbeFailure(clusterID string, probeErr error) (oldStatus, newStatus types.ClusterStatus, purge, known bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cluster, ok := r.clusters[clusterID]
	health := r.health[clusterID]
	if !ok || health == nil {
		return "", "", false, false
	}

	health.ConsecutiveFailures++
	health.ConsecutiveSuccesses = 0
	health.Message = probeErr.Error()

	oldStatus = cluster.Status
	newStatus = oldStatus
	switch {
	case health.ConsecutiveFailures >= r.cfg.OfflineThreshold:
		newStatus = types.ClusterStatusOffline
	case health.ConsecutiveFailures >= r.cfg.DegradedThreshold:
		newStatus = types.ClusterStatusDegraded
	}
	cluster.Status = newStatus
	health.Status = newStatus

	if r.cfg.AutoRemoveAfter > 0 && newStatus == types.ClusterStatusOffline {
		lastSeen := health.LastHeartbeat
		if lastSeen.IsZero() {
			lastSeen = cluster.RegisteredAt
		}
		purge = time.Since(lastSeen) > r.cfg.AutoRemoveAfter
	}

	return oldStatus, newStatus, purge, true
}

// Close releases every cluster client connection. The registry is not
// usable afterwards; the daemon calls this during shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	clients := make([]ClusterClient, 0, len(r.clients))
	for _, client := range r.clients {
		clients = append(clients, client)
	}
	r.clients = make(map[string]ClusterClient)
	r.mu.Unlock()

	for _, client := range clients {
		_ = client.Close()
	}
}
