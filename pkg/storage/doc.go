/*
Package storage provides the durable control-plane state store.

The daemon persists the parts of its state that cannot be rebuilt by
observation: cluster registrations, user-defined roles, role assignments,
and the proxy routing map. Everything is stored in a single bbolt file with
one bucket per entity kind and JSON values keyed by id.

# Buckets

	clusters     types.Cluster keyed by cluster id
	roles        types.Role keyed by role id (built-in roles never stored)
	assignments  types.RoleAssignment keyed by agent id
	routes       storage.Route keyed by agent id

# What Is Not Stored

Health state is probe-derived and is rebuilt from scratch after a restart.
Mailbox contents are in-memory by design. Tasks and task lists live in the
file-per-entity task store (pkg/taskstore), not here.

# Usage

	store, err := storage.NewBoltStore("data/loom.db")
	if err != nil { ... }
	defer store.Close()

	err = store.SaveRoute(&storage.Route{AgentID: id, ClusterID: target})

All writes are upserts inside a single bbolt transaction; reads copy data
out of the transaction before returning.
*/
package storage
