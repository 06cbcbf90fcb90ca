/*
Package client is the Go client library for the control-plane API.

It wraps the generated gRPC bindings behind the domain types: callers
spawn, exec, and migrate agents, administer the federation membership,
and watch control-plane events without touching protobuf. Errors come
back through the shared taxonomy, so errdefs predicates like IsNotFound
work on both sides of the wire.

Dialing is insecure by default; pass WithTLS with the cluster's TLS
material for production deployments. Exec and WatchEvents are streaming
calls that deliver into caller-supplied callbacks until the stream ends
or the context is cancelled.
*/
package client
