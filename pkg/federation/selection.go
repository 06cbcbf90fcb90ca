package federation

import (
	"sort"

	"github.com/loomctl/loom/pkg/types"
)

// ScoredCluster pairs a candidate cluster with its selection score
type ScoredCluster struct {
	Cluster *types.Cluster
	Score   float64
}

// SelectCluster returns the best active cluster for the criteria and its
// score, or nil when no cluster survives the hard filters. Ties resolve
// to the earliest-registered survivor.
func (r *Registry) SelectCluster(criteria *types.Criteria) (*types.Cluster, float64) {
	ranked := r.RankClusters(criteria)
	if len(ranked) == 0 {
		return nil, 0
	}
	return ranked[0].Cluster, ranked[0].Score
}

// RankClusters returns every cluster passing the criteria's hard filters,
// best score first. The sort is stable over registration order, so equal
// scores keep the earliest-registered cluster ahead.
func (r *Registry) RankClusters(criteria *types.Criteria) []ScoredCluster {
	if criteria == nil {
		criteria = &types.Criteria{}
	}

	var ranked []ScoredCluster
	for _, cluster := range r.ListClusters() {
		if !matchesCriteria(cluster, criteria) {
			continue
		}
		ranked = append(ranked, ScoredCluster{Cluster: cluster, Score: scoreCluster(cluster, criteria)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// matchesCriteria applies the hard filters of cluster selection
func matchesCriteria(cluster *types.Cluster, criteria *types.Criteria) bool {
	if cluster.Status != types.ClusterStatusActive {
		return false
	}
	caps := cluster.Capabilities
	if caps == nil {
		return false
	}
	if caps.AvailableAgents < criteria.MinAgents {
		return false
	}
	if criteria.RequiresGPU && !caps.GPUEnabled {
		return false
	}
	if criteria.GPUType != "" && !containsString(caps.GPUTypes, criteria.GPUType) {
		return false
	}
	if criteria.MaxLatencyMs > 0 && caps.LatencyMs > criteria.MaxLatencyMs {
		return false
	}
	if criteria.MaxCostPerHour > 0 && caps.CostPerHour > criteria.MaxCostPerHour {
		return false
	}
	for _, region := range criteria.ExcludedRegions {
		if cluster.Region == region {
			return false
		}
	}
	for _, flag := range criteria.RequiredFlags {
		if !caps.Flags[flag] {
			return false
		}
	}
	return true
}

// scoreCluster computes the weighted selection score. The chosen priority
// axis carries weight 0.5, the remaining axes 0.3 and 0.2 in declaration
// order latency, cost, availability; without a priority all three weigh
// 0.3. GPU priority multiplies the GPU bonus fivefold.
func scoreCluster(cluster *types.Cluster, criteria *types.Criteria) float64 {
	caps := cluster.Capabilities

	latencyScore := 100 - caps.LatencyMs
	if latencyScore < 0 {
		latencyScore = 0
	}
	costScore := 100 - 10*caps.CostPerHour
	if costScore < 0 {
		costScore = 0
	}
	maxAgents := caps.MaxAgents
	if maxAgents < 1 {
		maxAgents = 1
	}
	availabilityScore := 100 * float64(caps.AvailableAgents) / float64(maxAgents)

	wLatency, wCost, wAvailability := 0.3, 0.3, 0.3
	switch criteria.Priority {
	case types.PriorityLatency:
		wLatency, wCost, wAvailability = 0.5, 0.3, 0.2
	case types.PriorityCost:
		wCost, wLatency, wAvailability = 0.5, 0.3, 0.2
	case types.PriorityAvailability:
		wAvailability, wLatency, wCost = 0.5, 0.3, 0.2
	}

	score := wLatency*latencyScore + wCost*costScore + wAvailability*availabilityScore

	gpuBonus := 0.0
	if caps.GPUEnabled {
		gpuBonus = 10
		if criteria.Priority == types.PriorityGPU {
			gpuBonus *= 5
		}
	}
	score += gpuBonus

	for _, region := range criteria.PreferredRegions {
		if cluster.Region == region {
			score += 15
			break
		}
	}

	return score
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
