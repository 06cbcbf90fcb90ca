// Package federation manages the set of remote clusters the control plane
// can place agents on.
//
// The Registry is the source of truth for cluster descriptors, their
// health records, and one gRPC client per cluster. Registration validates
// the descriptor, fills defaults, and dials the client; registering an
// existing id updates the descriptor in place, re-dialing only when the
// endpoint changed. Unregistration refuses while routing still shows live
// agents on the cluster.
//
// The Monitor drives the health state machine: every probe interval it
// heartbeats all non-maintenance clusters in parallel, each probe bounded
// by the probe timeout. Consecutive failures walk a cluster from active
// through degraded to offline; a single success walks it back. A probe
// slower than half the timeout marks the cluster degraded even though it
// answered. Clusters offline past the auto-remove window are purged.
//
// SelectCluster scores the active clusters that pass the request's hard
// filters. Each cluster gets latency, cost, and availability subscores on
// a 0-100 scale; the requested priority axis carries half the weight,
// GPU support and a preferred region add flat bonuses. Ties resolve to
// the earliest-registered cluster, so selection is deterministic for a
// fixed federation.
//
// The Client wraps the generated gRPC stub with bounded retry on
// transient errors, translation between wire and domain types, and the
// streaming protocols for command execution and cluster events.
package federation
