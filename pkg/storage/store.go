package storage

import (
	"github.com/loomctl/loom/pkg/types"
)

// Route is one persisted entry of the proxy routing map. An empty
// ClusterID routes to the local runtime.
type Route struct {
	AgentID   string `json:"agent_id"`
	ClusterID string `json:"cluster_id"`
}

// Store defines the interface for durable control-plane state. Health
// state is never persisted; the registry rebuilds it by probing after a
// restart.
type Store interface {
	// Clusters
	SaveCluster(cluster *types.Cluster) error
	GetCluster(id string) (*types.Cluster, error)
	ListClusters() ([]*types.Cluster, error)
	DeleteCluster(id string) error

	// User-defined roles (built-ins are never persisted)
	SaveRole(role *types.Role) error
	GetRole(id string) (*types.Role, error)
	ListRoles() ([]*types.Role, error)
	DeleteRole(id string) error

	// Role assignments, keyed by agent id
	SaveAssignment(assignment *types.RoleAssignment) error
	GetAssignment(agentID string) (*types.RoleAssignment, error)
	ListAssignments() ([]*types.RoleAssignment, error)
	DeleteAssignment(agentID string) error

	// Proxy routes, keyed by agent id
	SaveRoute(route *Route) error
	GetRoute(agentID string) (*Route, error)
	ListRoutes() ([]*Route, error)
	DeleteRoute(agentID string) error

	// Utility
	Close() error
}
