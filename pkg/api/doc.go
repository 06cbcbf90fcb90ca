/*
Package api implements the Loom gRPC control-plane service and the HTTP
health endpoints that run beside it.

The LoomAPI service is the front door of the daemon. Agent-scoped
calls (spawn, kill, exec, status, list, migrate) are delegated to the
transparent proxy, which resolves which cluster owns an agent and routes
the call there. Cluster administration calls (register, unregister, get,
list) operate on the federation registry directly. WatchEvents exposes
the in-process event broker as a server stream so external tooling can
follow control-plane activity live.

# Interceptors

Every RPC passes through a fixed chain before its handler runs:

  - Logging: records method, status code, and duration, and feeds the
    api_requests_total / api_request_duration_seconds metrics.
  - Rate limiting: one token bucket per caller address; callers over
    budget get ResourceExhausted.
  - Drain guard: while the daemon is shutting down, mutating RPCs are
    rejected with Unavailable so in-flight work can settle. Reads,
    watches, and exec streams keep working until the listener closes.

# Health endpoints

HealthServer serves three HTTP paths on a separate port:

  - /health: overall health, 200 while every component reported through
    metrics.SetComponentHealth is healthy, 503 once any fails
  - /ready: readiness, 503 until every registered ReadyCheck passes
  - /metrics: the Prometheus registry

Readiness checks are plain func() error values supplied at construction,
so the daemon decides what gates traffic (storage open, federation
registry loaded) without this package importing those components.

# Error mapping

Handlers return errors through errdefs.ToStatus, which maps the shared
sentinel errors onto gRPC codes (not-found to NotFound, capacity to
ResourceExhausted, and so on) while preserving the message. Clients can
switch on the code without parsing strings.
*/
package api
