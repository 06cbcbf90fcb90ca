package balancer

import (
	"context"
	"fmt"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/storage"
	"github.com/loomctl/loom/pkg/types"
)

// MigrateAgent moves one agent's state from source to target cluster.
// Steps run strictly ordered: mark migrating, export, import, verify,
// kill source, update routing. A failure in export/import/verify rolls
// the whole migration back; a failed source kill still completes with a
// cleanup:pending follow-up.
func (b *Balancer) MigrateAgent(ctx context.Context, agentID, fromCluster, toCluster string) error {
	if fromCluster == "" || toCluster == "" {
		return errdefs.Wrap(errdefs.ErrInvalidSpec, agentID, "migration requires source and target cluster ids")
	}
	if fromCluster == toCluster {
		return errdefs.Wrap(errdefs.ErrInvalidSpec, agentID, "source and target cluster are the same")
	}

	source, err := b.registry.Client(fromCluster)
	if err != nil {
		return err
	}
	target, err := b.registry.Client(toCluster)
	if err != nil {
		return err
	}

	if err := b.beginMigration(agentID, fromCluster); err != nil {
		return err
	}
	b.migrationWG.Add(1)
	defer func() {
		b.endMigration(agentID)
		b.migrationWG.Done()
	}()

	// Step (a) already marked the route; announce it.
	b.broker.Emit(events.EventMigrationStarted,
		fmt.Sprintf("Migrating agent %s: %s -> %s", agentID, fromCluster, toCluster),
		map[string]string{"agent_id": agentID, "from_cluster": fromCluster, "to_cluster": toCluster})
	timer := metrics.NewTimer()

	// Step (b): export
	snapshot, err := source.ExportAgent(ctx, agentID, true)
	if err != nil {
		return b.rollback(ctx, target, agentID, fromCluster, toCluster, "export", err)
	}

	// Step (c): import
	if _, err := target.ImportAgent(ctx, snapshot); err != nil {
		return b.rollback(ctx, target, agentID, fromCluster, toCluster, "import", err)
	}

	// Step (d): verify the target reports running
	if err := b.verifyRunning(ctx, target, agentID); err != nil {
		return b.rollback(ctx, target, agentID, fromCluster, toCluster, "verify", err)
	}

	// Step (e): kill the source. A failure here no longer fails the
	// migration; the target copy is live.
	if err := source.KillAgent(ctx, agentID, false); err != nil {
		b.logger.Warn().
			Err(err).
			Str("agent_id", agentID).
			Str("cluster_id", fromCluster).
			Msg("Source kill failed after migration, scheduling cleanup")
		b.broker.Emit(events.EventCleanupPending,
			fmt.Sprintf("Agent %s still present on source cluster %s", agentID, fromCluster),
			map[string]string{"agent_id": agentID, "cluster_id": fromCluster})
		b.janitor.Enqueue(fromCluster, agentID)
	}

	// Step (f): flip routing to the target
	b.mu.Lock()
	if rt, ok := b.routes[agentID]; ok {
		rt.clusterID = toCluster
		rt.migrating = false
	}
	b.mu.Unlock()
	b.persistRoute(agentID, toCluster)

	metrics.MigrationsTotal.WithLabelValues("completed").Inc()
	timer.ObserveDuration(metrics.MigrationDuration)
	b.broker.Emit(events.EventMigrationCompleted,
		fmt.Sprintf("Agent %s migrated: %s -> %s", agentID, fromCluster, toCluster),
		map[string]string{"agent_id": agentID, "from_cluster": fromCluster, "to_cluster": toCluster})
	b.broker.Emit(events.EventAgentMigrated,
		fmt.Sprintf("Agent %s now on cluster %s", agentID, toCluster),
		map[string]string{"agent_id": agentID, "cluster_id": toCluster})
	b.logger.Info().
		Str("agent_id", agentID).
		Str("from_cluster", fromCluster).
		Str("to_cluster", toCluster).
		Msg("Migration completed")
	return nil
}

// beginMigration is step (a): validate against the routing table, claim
// the per-agent and cluster-wide migration slots, and mark the route
// migrating under the writer lock.
func (b *Balancer) beginMigration(agentID, fromCluster string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.migrations[agentID] {
		return errdefs.Wrap(errdefs.ErrMigrationInProgress, agentID, "migration already running")
	}
	if len(b.migrations) >= b.cfg.MaxConcurrentMigrations {
		return errdefs.Wrapf(errdefs.ErrCapacityExceeded, agentID,
			"migration limit %d reached", b.cfg.MaxConcurrentMigrations)
	}
	rt, ok := b.routes[agentID]
	if !ok {
		return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "not in routing table")
	}
	if rt.migrating {
		return errdefs.Wrap(errdefs.ErrMigrationInProgress, agentID, "agent already mid-migration")
	}
	if rt.clusterID != fromCluster {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, agentID,
			"agent is on cluster %q, not %q", rt.clusterID, fromCluster)
	}

	b.migrations[agentID] = true
	rt.migrating = true
	return nil
}

func (b *Balancer) endMigration(agentID string) {
	b.mu.Lock()
	delete(b.migrations, agentID)
	b.mu.Unlock()
}

// verifyRunning polls the target until the imported agent reports
// running, bounded by the verify timeout.
func (b *Balancer) verifyRunning(ctx context.Context, target federation.ClusterClient, agentID string) error {
	deadline := time.Now().Add(b.cfg.VerifyTimeout)
	var lastErr error
	for time.Now().Before(deadline) {
		info, err := target.GetAgentStatus(ctx, agentID)
		if err == nil && info.Status == types.AgentStatusRunning {
			return nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("agent %s is %s on target", agentID, info.Status)
		}
		select {
		case <-ctx.Done():
			return errdefs.Wrap(errdefs.ErrTimeout, agentID, "verify cancelled")
		case <-time.After(b.cfg.VerifyInterval):
		}
	}
	return errdefs.Wrapf(errdefs.ErrTimeout, agentID, "target never reported running: %v", lastErr)
}

// rollback undoes a failed migration: any partial import on the target is
// force-killed, routing stays at the source, and the migrating mark is
// cleared.
func (b *Balancer) rollback(ctx context.Context, target federation.ClusterClient, agentID, fromCluster, toCluster, step string, cause error) error {
	if err := target.KillAgent(ctx, agentID, true); err != nil {
		b.logger.Warn().
			Err(err).
			Str("agent_id", agentID).
			Str("cluster_id", toCluster).
			Msg("Failed to clean partial import during rollback")
	}

	b.mu.Lock()
	if rt, ok := b.routes[agentID]; ok {
		rt.migrating = false
	}
	b.mu.Unlock()

	metrics.MigrationsTotal.WithLabelValues("failed").Inc()
	b.broker.Emit(events.EventMigrationFailed,
		fmt.Sprintf("Migration of agent %s failed at %s: %v", agentID, step, cause),
		map[string]string{
			"agent_id":     agentID,
			"from_cluster": fromCluster,
			"to_cluster":   toCluster,
			"step":         step,
		})
	b.logger.Error().
		Err(cause).
		Str("agent_id", agentID).
		Str("step", step).
		Msg("Migration rolled back")
	return fmt.Errorf("migration of agent %s failed at step %s: %w", agentID, step, cause)
}

func (b *Balancer) persistRoute(agentID, clusterID string) {
	if b.store == nil {
		return
	}
	if err := b.store.SaveRoute(&storage.Route{AgentID: agentID, ClusterID: clusterID}); err != nil {
		b.logger.Error().Err(err).Str("agent_id", agentID).Msg("Failed to persist route")
	}
}
