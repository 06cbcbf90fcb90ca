package federation_test

import (
	"testing"

	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/federation/federationtest"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAll(t *testing.T, registry *federation.Registry, clusters ...*types.Cluster) {
	t.Helper()
	for _, c := range clusters {
		require.NoError(t, registry.Register(c))
	}
}

// Two clusters that trade off cost against latency: the winner flips with
// the priority axis.
func TestSelectClusterPriorityFlips(t *testing.T) {
	a := federationtest.NewFakeCluster("cheap", types.ClusterCapabilities{})
	b := federationtest.NewFakeCluster("fast", types.ClusterCapabilities{})
	registry, _ := testRegistry(t, a, b)
	registerAll(t, registry,
		&types.Cluster{ID: "cheap", Endpoint: "cheap:1", Capabilities: &types.ClusterCapabilities{
			MaxAgents: 10, AvailableAgents: 5, CostPerHour: 1, LatencyMs: 40,
		}},
		&types.Cluster{ID: "fast", Endpoint: "fast:1", Capabilities: &types.ClusterCapabilities{
			MaxAgents: 10, AvailableAgents: 5, CostPerHour: 3, LatencyMs: 10,
		}},
	)

	winner, score := registry.SelectCluster(&types.Criteria{Priority: types.PriorityCost})
	require.NotNil(t, winner)
	assert.Equal(t, "cheap", winner.ID)
	assert.InDelta(t, 73.0, score, 0.001)

	winner, score = registry.SelectCluster(&types.Criteria{Priority: types.PriorityLatency})
	require.NotNil(t, winner)
	assert.Equal(t, "fast", winner.ID)
	assert.InDelta(t, 76.0, score, 0.001)
}

func TestSelectClusterHardFilters(t *testing.T) {
	base := func(id string, mutate func(*types.Cluster)) *types.Cluster {
		c := &types.Cluster{
			ID:       id,
			Endpoint: id + ":1",
			Region:   types.RegionUSEast,
			Capabilities: &types.ClusterCapabilities{
				MaxAgents: 10, AvailableAgents: 5, LatencyMs: 20, CostPerHour: 2,
			},
		}
		if mutate != nil {
			mutate(c)
		}
		return c
	}

	tests := []struct {
		name     string
		mutate   func(*types.Cluster)
		criteria *types.Criteria
	}{
		{"degraded status", func(c *types.Cluster) { c.Status = types.ClusterStatusDegraded }, &types.Criteria{}},
		{"below min agents", nil, &types.Criteria{MinAgents: 6}},
		{"missing gpu", nil, &types.Criteria{RequiresGPU: true}},
		{"wrong gpu type", func(c *types.Cluster) {
			c.Capabilities.GPUEnabled = true
			c.Capabilities.GPUTypes = []string{"a100"}
		}, &types.Criteria{RequiresGPU: true, GPUType: "h100"}},
		{"too slow", nil, &types.Criteria{MaxLatencyMs: 10}},
		{"too expensive", nil, &types.Criteria{MaxCostPerHour: 1}},
		{"excluded region", nil, &types.Criteria{ExcludedRegions: []types.Region{types.RegionUSEast}}},
		{"missing flag", nil, &types.Criteria{RequiredFlags: []string{"compliance"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := federationtest.NewFakeCluster("only", types.ClusterCapabilities{})
			registry, _ := testRegistry(t, fake)
			registerAll(t, registry, base("only", tt.mutate))

			winner, _ := registry.SelectCluster(tt.criteria)
			assert.Nil(t, winner)
		})
	}
}

func TestSelectClusterGPUBonus(t *testing.T) {
	gpu := federationtest.NewFakeCluster("gpu", types.ClusterCapabilities{})
	plain := federationtest.NewFakeCluster("plain", types.ClusterCapabilities{})
	registry, _ := testRegistry(t, gpu, plain)
	registerAll(t, registry,
		// Identical except the GPU; the plain cluster leads on latency by
		// enough to beat the flat +10 bonus but not the gpu-priority x5.
		&types.Cluster{ID: "gpu", Endpoint: "gpu:1", Capabilities: &types.ClusterCapabilities{
			MaxAgents: 10, AvailableAgents: 5, LatencyMs: 80, GPUEnabled: true,
		}},
		&types.Cluster{ID: "plain", Endpoint: "plain:1", Capabilities: &types.ClusterCapabilities{
			MaxAgents: 10, AvailableAgents: 5, LatencyMs: 10,
		}},
	)

	winner, _ := registry.SelectCluster(&types.Criteria{})
	require.NotNil(t, winner)
	assert.Equal(t, "plain", winner.ID)

	winner, _ = registry.SelectCluster(&types.Criteria{Priority: types.PriorityGPU})
	require.NotNil(t, winner)
	assert.Equal(t, "gpu", winner.ID)
}

func TestSelectClusterPreferredRegion(t *testing.T) {
	east := federationtest.NewFakeCluster("east", types.ClusterCapabilities{})
	west := federationtest.NewFakeCluster("west", types.ClusterCapabilities{})
	registry, _ := testRegistry(t, east, west)
	registerAll(t, registry,
		&types.Cluster{ID: "east", Endpoint: "east:1", Region: types.RegionUSEast, Capabilities: &types.ClusterCapabilities{
			MaxAgents: 10, AvailableAgents: 5, LatencyMs: 20,
		}},
		&types.Cluster{ID: "west", Endpoint: "west:1", Region: types.RegionUSWest, Capabilities: &types.ClusterCapabilities{
			MaxAgents: 10, AvailableAgents: 5, LatencyMs: 10,
		}},
	)

	winner, _ := registry.SelectCluster(&types.Criteria{PreferredRegions: []types.Region{types.RegionUSEast}})
	require.NotNil(t, winner)
	assert.Equal(t, "east", winner.ID)
}

func TestSelectClusterTieBreakIsRegistrationOrder(t *testing.T) {
	first := federationtest.NewFakeCluster("first", types.ClusterCapabilities{})
	second := federationtest.NewFakeCluster("second", types.ClusterCapabilities{})
	registry, _ := testRegistry(t, first, second)

	caps := func() *types.ClusterCapabilities {
		return &types.ClusterCapabilities{MaxAgents: 10, AvailableAgents: 5, LatencyMs: 20}
	}
	registerAll(t, registry,
		&types.Cluster{ID: "first", Endpoint: "first:1", Capabilities: caps()},
		&types.Cluster{ID: "second", Endpoint: "second:1", Capabilities: caps()},
	)

	winner, _ := registry.SelectCluster(&types.Criteria{})
	require.NotNil(t, winner)
	assert.Equal(t, "first", winner.ID)
}

func TestSelectClusterEmptyFederation(t *testing.T) {
	registry, _ := testRegistry(t)
	winner, score := registry.SelectCluster(nil)
	assert.Nil(t, winner)
	assert.Zero(t, score)
}
