/*
Package controlplane assembles the daemon.

New builds the component graph in dependency order: event broker, bbolt
state store, federation registry (with its health monitor), local
process runtime, balancer, transparent proxy, role registry, message
bus, task graph engine, task store, gRPC API server, health endpoints,
and the optional WebSocket gateway. Construction wires the cross-cutting
callbacks that keep the components honest — the registry asks the
balancer how many agents a cluster owns before allowing unregistration,
and the bus asks the role registry whether two roles may exchange
messages.

Start replays persisted state (clusters, user roles, assignments, proxy
routes) before the health monitor begins probing, so a restarted daemon
resumes with yesterday's membership instead of an empty registry. A
background loop then follows the event stream: cluster changes are
written through to the store, and agents get a mailbox registered on
spawn and dropped on kill.

Stop drains: the API flips into read-only mode, the balancer gets until
the context deadline to settle or roll back in-flight migrations, and
only then are the listeners, clients, and the store closed.
*/
package controlplane
