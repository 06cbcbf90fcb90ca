package metrics

import (
	"time"

	"github.com/loomctl/loom/pkg/types"
)

// ClusterSource supplies the current cluster set for gauge updates
type ClusterSource interface {
	ListClusters() []*types.Cluster
}

// RouteSource supplies the number of agents currently routed
type RouteSource interface {
	RouteCount() int
}

// Collector periodically refreshes the gauges that mirror control-plane
// state rather than counting discrete events.
type Collector struct {
	clusters ClusterSource
	routes   RouteSource
	interval time.Duration
	stopCh   chan struct{}
}

// NewCollector creates a collector over the given sources
func NewCollector(clusters ClusterSource, routes RouteSource) *Collector {
	return &Collector{
		clusters: clusters,
		routes:   routes,
		interval: 15 * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	if c.clusters != nil {
		byStatus := make(map[types.ClusterStatus]int)
		for _, cluster := range c.clusters.ListClusters() {
			byStatus[cluster.Status]++
		}
		for _, status := range []types.ClusterStatus{
			types.ClusterStatusActive,
			types.ClusterStatusDegraded,
			types.ClusterStatusOffline,
			types.ClusterStatusMaintenance,
		} {
			ClustersTotal.WithLabelValues(string(status)).Set(float64(byStatus[status]))
		}
	}

	if c.routes != nil {
		AgentsActive.Set(float64(c.routes.RouteCount()))
	}
}
