package balancer

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"sync"

	"github.com/loomctl/loom/pkg/types"
)

// Strategy picks one cluster out of a candidate set. Select receives a
// routing key (the agent id) for strategies that hash; the others ignore
// it. UpdateStats feeds placement deltas back so connection-counting
// strategies stay current.
type Strategy interface {
	Select(key string, clusters []*types.Cluster) *types.Cluster
	UpdateStats(clusterID string, delta int)
}

// NewStrategy maps a strategy id to its implementation
func NewStrategy(id string) (Strategy, error) {
	switch id {
	case "", "round-robin":
		return &roundRobin{}, nil
	case "least-connections":
		return &leastConnections{counts: make(map[string]int)}, nil
	case "weighted":
		return &weighted{}, nil
	case "consistent-hash":
		return &consistentHash{}, nil
	case "random":
		return &randomPick{}, nil
	case "least-loaded":
		return &leastLoaded{}, nil
	default:
		return nil, fmt.Errorf("unknown balancing strategy %q", id)
	}
}

type roundRobin struct {
	mu   sync.Mutex
	next int
}

func (s *roundRobin) Select(_ string, clusters []*types.Cluster) *types.Cluster {
	if len(clusters) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cluster := clusters[s.next%len(clusters)]
	s.next++
	return cluster
}

func (s *roundRobin) UpdateStats(string, int) {}

// leastConnections tracks placements it has seen via UpdateStats and
// picks the cluster with the fewest.
type leastConnections struct {
	mu     sync.Mutex
	counts map[string]int
}

func (s *leastConnections) Select(_ string, clusters []*types.Cluster) *types.Cluster {
	if len(clusters) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	best := clusters[0]
	for _, c := range clusters[1:] {
		if s.counts[c.ID] < s.counts[best.ID] {
			best = c
		}
	}
	return best
}

func (s *leastConnections) UpdateStats(clusterID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[clusterID] += delta
	if s.counts[clusterID] < 0 {
		s.counts[clusterID] = 0
	}
}

// weighted picks randomly, weighting each cluster by its available agent
// slots.
type weighted struct{}

func (s *weighted) Select(_ string, clusters []*types.Cluster) *types.Cluster {
	if len(clusters) == 0 {
		return nil
	}
	total := 0
	for _, c := range clusters {
		total += clusterWeight(c)
	}
	if total == 0 {
		return clusters[0]
	}
	pick := rand.Intn(total)
	for _, c := range clusters {
		pick -= clusterWeight(c)
		if pick < 0 {
			return c
		}
	}
	return clusters[len(clusters)-1]
}

func (s *weighted) UpdateStats(string, int) {}

func clusterWeight(c *types.Cluster) int {
	if c.Capabilities == nil || c.Capabilities.AvailableAgents < 0 {
		return 0
	}
	return c.Capabilities.AvailableAgents
}

// consistentHash maps the routing key onto a sorted ring of cluster ids,
// so the same key lands on the same cluster while the set is stable.
type consistentHash struct{}

func (s *consistentHash) Select(key string, clusters []*types.Cluster) *types.Cluster {
	if len(clusters) == 0 {
		return nil
	}
	ids := make([]string, len(clusters))
	byID := make(map[string]*types.Cluster, len(clusters))
	for i, c := range clusters {
		ids[i] = c.ID
		byID[c.ID] = c
	}
	sort.Strings(ids)

	h := fnv.New32a()
	h.Write([]byte(key))
	return byID[ids[int(h.Sum32())%len(ids)]]
}

func (s *consistentHash) UpdateStats(string, int) {}

type randomPick struct{}

func (s *randomPick) Select(_ string, clusters []*types.Cluster) *types.Cluster {
	if len(clusters) == 0 {
		return nil
	}
	return clusters[rand.Intn(len(clusters))]
}

func (s *randomPick) UpdateStats(string, int) {}

// leastLoaded picks the cluster with the lowest active/max ratio as
// reported by its own capabilities.
type leastLoaded struct{}

func (s *leastLoaded) Select(_ string, clusters []*types.Cluster) *types.Cluster {
	if len(clusters) == 0 {
		return nil
	}
	best := clusters[0]
	bestRatio := loadRatio(best)
	for _, c := range clusters[1:] {
		if ratio := loadRatio(c); ratio < bestRatio {
			best = c
			bestRatio = ratio
		}
	}
	return best
}

func (s *leastLoaded) UpdateStats(string, int) {}

func loadRatio(c *types.Cluster) float64 {
	if c.Capabilities == nil || c.Capabilities.MaxAgents <= 0 {
		return 1
	}
	return float64(c.Capabilities.ActiveAgents) / float64(c.Capabilities.MaxAgents)
}
