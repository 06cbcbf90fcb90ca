/*
Package types defines the core data structures used throughout loom.

This package contains all fundamental types of loom's domain model: the
federation of clusters, the agents placed on them, the role and messaging
primitives teams are built from, and the persisted task model. These types
are used by every other package for state management, wire conversion, and
orchestration logic.

# Core Types

Federation:
  - Cluster: one remote backend with endpoint, region, and status
  - ClusterCapabilities: live capacity report (agents, GPU, cost, latency)
  - ClusterHealth: probe-driven health state with consecutive counters
  - Criteria / SelectionPriority: hard filters and scoring hints for
    cluster selection

Agents:
  - Agent: a worker process owned by exactly one backend at a time; an
    empty ClusterID marks the local runtime
  - AgentSnapshot: the export/import transfer unit for migration
  - SpawnSpec / SpawnConfig: backend-level and caller-level spawn requests
  - ExecChunk / AgentStatusInfo: streamed exec output and status queries

Roles and messaging:
  - Role: permissions, tools, communication rights, and budgets
  - RoleAssignment: at most one active role per agent
  - AgentMessage: immutable after creation except for Read/ReadAt;
    expired messages are dropped on delivery

Tasks:
  - Subtask: one node of a decomposition DAG
  - Task / TaskList: the durable task model with symmetric
    DependsOn/Blocks edges

# Conventions

All enums are string-typed constants so they round-trip unchanged through
the wire protocol and JSON files. Cross-component references are by string
id, never by shared pointer; every component rebuilds whatever in-memory
graph it needs from ids.

# Integration Points

This package is imported by:

  - pkg/federation: cluster registry, health monitoring, selection
  - pkg/balancer, pkg/proxy: spawn placement, migration, routing
  - pkg/roles, pkg/mailbox: team composition and message delivery
  - pkg/taskgraph, pkg/taskstore: decomposition and persistence
  - pkg/api: proto conversion at the gRPC boundary
*/
package types
