/*
Package gateway exposes the control-plane event feed over WebSocket.

The gRPC WatchEvents stream covers clients that already speak the
LoomAPI protocol; the gateway covers everything else (dashboards, shell
scripts, browser consoles). Each connection subscribes to the event
broker — optionally narrowed with a ?types=a,b query parameter — and
receives one JSON Frame per event.

Slow consumers cannot stall the control plane: the broker fans out
non-blocking into a bounded per-subscriber buffer, and each frame write
carries a deadline, so a client that stops reading is dropped rather
than waited on. Pings on a fixed cadence keep intermediate proxies from
reaping idle connections.
*/
package gateway
