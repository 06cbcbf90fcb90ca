// Package taskstore is the durable task database behind the planners:
// one JSON document per task and per list under a base path, an index of
// list ids, and cooperative file locks for multi-writer coordination.
//
// The store enforces the dependency invariants on every mutation:
// dependsOn and blocks stay exact duals, an edge that would close a
// cycle is rejected, completing a task stamps completedAt and opens any
// blocked dependent whose dependencies are now all done, and deleting a
// task rewrites its neighbors' edges and strips it from every list.
// Lists auto-complete when all their tasks are done and reactivate when
// work reopens.
//
// Locks are lease-based directories under .lock/ holding {pid,
// acquiredAt}; a lock older than 30 seconds is considered abandoned and
// may be stolen. Any atomic-create primitive would do; directories are
// the portable one.
//
// Hydration reads a human-authored markdown plan (H2 epics, "- [ ] ID:
// Subject" items, "blocked by" annotations) into tasks plus a list, and
// sync writes a list back out in the same shape. The in-place mode
// touches only checkbox characters so the author's prose survives.
package taskstore
