package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/loomctl/loom/pkg/types"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// ServerTLSConfig loads the daemon's serving credentials from PEM files.
// clientCAFile is optional; when set, client certificates are required and
// verified against it (mTLS).
func ServerTLSConfig(certFile, keyFile, clientCAFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server key pair: %w", err)
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS13,
	}

	if clientCAFile != "" {
		caPEM, err := os.ReadFile(clientCAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read client CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no certificates found in client CA file %s", clientCAFile)
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return cfg, nil
}

// ClientTLSConfig builds the dial credentials for one cluster from the PEM
// material carried on its descriptor. CA-only material verifies the server
// without presenting a client certificate.
func ClientTLSConfig(material *types.TLSMaterial) (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS13,
	}

	if len(material.CAPEM) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(material.CAPEM) {
			return nil, fmt.Errorf("no certificates found in cluster CA material")
		}
		cfg.RootCAs = pool
	}

	if len(material.CertPEM) > 0 || len(material.KeyPEM) > 0 {
		cert, err := tls.X509KeyPair(material.CertPEM, material.KeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to load cluster client key pair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}

// DialCredentials returns the transport credentials for a cluster dial.
// Clusters without TLS material use insecure transport, the development
// default.
func DialCredentials(material *types.TLSMaterial) (credentials.TransportCredentials, error) {
	if material == nil {
		return insecure.NewCredentials(), nil
	}
	cfg, err := ClientTLSConfig(material)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(cfg), nil
}
