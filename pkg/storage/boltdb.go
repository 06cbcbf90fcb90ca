package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/types"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketClusters    = []byte("clusters")
	bucketRoles       = []byte("roles")
	bucketAssignments = []byte("assignments")
	bucketRoutes      = []byte("routes")
)

// BoltStore implements Store using bbolt
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database at path
func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketClusters,
			bucketRoles,
			bucketAssignments,
			bucketRoutes,
		}
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) put(bucket []byte, key string, v interface{}) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *BoltStore) delete(bucket []byte, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

// Cluster operations

func (s *BoltStore) SaveCluster(cluster *types.Cluster) error {
	return s.put(bucketClusters, cluster.ID, cluster)
}

func (s *BoltStore) GetCluster(id string) (*types.Cluster, error) {
	var cluster types.Cluster
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketClusters).Get([]byte(id))
		if data == nil {
			return errdefs.Wrap(errdefs.ErrClusterNotFound, id, "not in store")
		}
		return json.Unmarshal(data, &cluster)
	})
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

func (s *BoltStore) ListClusters() ([]*types.Cluster, error) {
	var clusters []*types.Cluster
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketClusters).ForEach(func(k, v []byte) error {
			var cluster types.Cluster
			if err := json.Unmarshal(v, &cluster); err != nil {
				return err
			}
			clusters = append(clusters, &cluster)
			return nil
		})
	})
	return clusters, err
}

func (s *BoltStore) DeleteCluster(id string) error {
	return s.delete(bucketClusters, id)
}

// Role operations

func (s *BoltStore) SaveRole(role *types.Role) error {
	return s.put(bucketRoles, role.ID, role)
}

func (s *BoltStore) GetRole(id string) (*types.Role, error) {
	var role types.Role
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRoles).Get([]byte(id))
		if data == nil {
			return errdefs.Wrap(errdefs.ErrInvalidRole, id, "role not in store")
		}
		return json.Unmarshal(data, &role)
	})
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *BoltStore) ListRoles() ([]*types.Role, error) {
	var roles []*types.Role
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRoles).ForEach(func(k, v []byte) error {
			var role types.Role
			if err := json.Unmarshal(v, &role); err != nil {
				return err
			}
			roles = append(roles, &role)
			return nil
		})
	})
	return roles, err
}

func (s *BoltStore) DeleteRole(id string) error {
	return s.delete(bucketRoles, id)
}

// Assignment operations

func (s *BoltStore) SaveAssignment(assignment *types.RoleAssignment) error {
	return s.put(bucketAssignments, assignment.AgentID, assignment)
}

func (s *BoltStore) GetAssignment(agentID string) (*types.RoleAssignment, error) {
	var assignment types.RoleAssignment
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketAssignments).Get([]byte(agentID))
		if data == nil {
			return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "no assignment in store")
		}
		return json.Unmarshal(data, &assignment)
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *BoltStore) ListAssignments() ([]*types.RoleAssignment, error) {
	var assignments []*types.RoleAssignment
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAssignments).ForEach(func(k, v []byte) error {
			var assignment types.RoleAssignment
			if err := json.Unmarshal(v, &assignment); err != nil {
				return err
			}
			assignments = append(assignments, &assignment)
			return nil
		})
	})
	return assignments, err
}

func (s *BoltStore) DeleteAssignment(agentID string) error {
	return s.delete(bucketAssignments, agentID)
}

// Route operations

func (s *BoltStore) SaveRoute(route *Route) error {
	return s.put(bucketRoutes, route.AgentID, route)
}

func (s *BoltStore) GetRoute(agentID string) (*Route, error) {
	var route Route
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRoutes).Get([]byte(agentID))
		if data == nil {
			return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "no route in store")
		}
		return json.Unmarshal(data, &route)
	})
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (s *BoltStore) ListRoutes() ([]*Route, error) {
	var routes []*Route
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRoutes).ForEach(func(k, v []byte) error {
			var route Route
			if err := json.Unmarshal(v, &route); err != nil {
				return err
			}
			routes = append(routes, &route)
			return nil
		})
	})
	return routes, err
}

func (s *BoltStore) DeleteRoute(agentID string) error {
	return s.delete(bucketRoutes, agentID)
}
