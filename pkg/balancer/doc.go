// Package balancer decides where agents run and moves them when that
// answer changes.
//
// Spawning translates the caller's config into selection criteria, asks
// the registry to rank the remote clusters, and weighs the best remote
// score against a local floor: weak remote offers, an empty federation,
// or an explicit prefer-local flag all route the spawn to the local
// runtime first. Capacity refusals walk the candidate chain until a
// backend accepts or the attempt budget runs out, which surfaces as
// NoCapacity. Every placement lands in the routing table, the balancer's
// authoritative agent directory.
//
// Migration runs a strictly ordered protocol: mark the route migrating,
// export the snapshot from the source, import it on the target, verify
// the target reports running, kill the source, flip the route. A failure
// in export, import, or verify rolls everything back, force-killing any
// partial import, so the at-most-one-owner invariant holds from the
// outside at every step. A failed source kill is the one tolerated
// partial outcome: the migration completes, a cleanup:pending event
// fires, and the janitor retries the force-kill with back-off until the
// leftover is gone.
//
// Failover drains a whole cluster by parking it in maintenance and
// migrating each of its agents to a registry-chosen destination.
//
// Placement strategies (round-robin, least-connections, weighted,
// consistent-hash, random, least-loaded) reorder the candidate chain for
// spawns that carry no explicit priority; a string id picks the strategy
// at construction.
package balancer
