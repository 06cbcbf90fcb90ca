/*
Package runtime provides the local agent backend.

The control plane treats the local host as just another backend: the same
spawn, exec, kill, list, and status surface a remote cluster offers, minus
the wire protocol. Agents produced here carry an empty cluster id, the
sentinel the routing map uses for "local".

ProcessRuntime launches one worker process per agent from a configured
argv, injecting the agent id, model, and spawn env vars into the process
environment. A reaper goroutine per agent records the terminal status when
the process exits.

Capacity exhaustion surfaces as LocalResourceExhausted, which the balancer
treats exactly like a remote CapacityExceeded when walking its fallback
chain.
*/
package runtime
