package balancer

import (
	"context"
	"errors"
	"fmt"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/types"
)

// FailoverCluster drains a cluster: it stops accepting new traffic by
// moving to maintenance, then migrates every agent it owns to a
// registry-selected destination. Agents with no viable destination are
// reported in the returned error; the rest still move.
func (b *Balancer) FailoverCluster(ctx context.Context, clusterID string) (int, error) {
	if _, err := b.registry.Get(clusterID); err != nil {
		return 0, err
	}
	if err := b.registry.SetStatus(clusterID, types.ClusterStatusMaintenance); err != nil {
		return 0, err
	}

	agents := b.AgentsOn(clusterID)
	b.logger.Info().
		Str("cluster_id", clusterID).
		Int("agents", len(agents)).
		Msg("Failing over cluster")

	migrated := 0
	var errs []error
	for _, agentID := range agents {
		// The source is in maintenance now, so selection can never pick it
		dest, _ := b.registry.SelectCluster(&types.Criteria{
			Priority:  b.cfg.DefaultPriority,
			MinAgents: 1,
		})
		if dest == nil {
			errs = append(errs, errdefs.Wrapf(errdefs.ErrNoCapacity, agentID,
				"no destination cluster for agent %s", agentID))
			continue
		}
		if err := b.MigrateAgent(ctx, agentID, clusterID, dest.ID); err != nil {
			errs = append(errs, fmt.Errorf("agent %s: %w", agentID, err))
			continue
		}
		migrated++
	}
	return migrated, errors.Join(errs...)
}
