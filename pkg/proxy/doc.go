// Package proxy routes per-agent operations to whichever backend owns
// the agent.
//
// Callers address agents by id alone. The proxy resolves the owner
// through its routing mirror, falling through to the balancer's
// directory; an agent known to neither fails with AgentNotFound. Status
// reads inside a migration window report migrating rather than exposing
// the half-moved agent on either side.
//
// Listing fans out to the local runtime and every active cluster in
// parallel and merges the results; a cluster that fails to answer
// becomes a warning on the response instead of failing the whole call,
// and each agent is tagged with the cluster it came from.
//
// Exec comes in two shapes: Exec collects the full output, ExecStream
// hands chunks to the caller as they arrive. The local runtime is not a
// streaming transport, so its streamed form delivers the whole output in
// one chunk before the terminal exit chunk.
package proxy
