/*
Package security provides TLS configuration for loom's gRPC surfaces.

The control plane has two TLS boundaries: the daemon's own API listener and
the per-cluster federation dials. This package loads credentials for both
from PEM material, enforcing TLS 1.3 as the floor.

# Server Side

The API server loads its key pair from the file paths in the server config.
Supplying a client CA file switches the listener to mTLS and rejects
connections without a verified client certificate:

	cfg, err := security.ServerTLSConfig(certFile, keyFile, clientCAFile)

# Client Side

Each registered cluster may carry PEM material on its descriptor. The
federation client turns that into dial credentials; clusters without
material dial insecure, which is the development default:

	creds, err := security.DialCredentials(cluster.TLS)
	conn, err := grpc.NewClient(cluster.Endpoint, grpc.WithTransportCredentials(creds))

Certificate issuance and rotation are outside the control plane; operators
provision PEM files and cluster material through configuration.
*/
package security
