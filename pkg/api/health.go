package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/loomctl/loom/pkg/metrics"
)

// ReadyCheck probes one dependency; nil means ready
type ReadyCheck func() error

// HealthServer serves the HTTP liveness, readiness, and metrics
// endpoints next to the gRPC API.
type HealthServer struct {
	version string
	checks  map[string]ReadyCheck
	mux     *http.ServeMux
}

// NewHealthServer creates the health endpoint handler. Each named check
// gates readiness; a server with no checks reports not ready.
func NewHealthServer(version string, checks map[string]ReadyCheck) *HealthServer {
	mux := http.NewServeMux()
	hs := &HealthServer{
		version: version,
		checks:  checks,
		mux:     mux,
	}
	mux.HandleFunc("/health", hs.healthHandler)
	mux.HandleFunc("/ready", hs.readyHandler)
	mux.Handle("/metrics", metrics.Handler())
	return hs
}

// Start serves the health endpoints on addr. Blocks.
func (hs *HealthServer) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      hs.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Version    string            `json:"version,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}

// ReadyResponse is the /ready body
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// healthHandler reports overall process health: 200 while every reported
// component is healthy, 503 once any of them fails.
func (hs *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := "healthy"
	statusCode := http.StatusOK
	var components map[string]string
	if reported := metrics.ComponentHealth(); len(reported) > 0 {
		components = make(map[string]string, len(reported))
		for name, state := range reported {
			if state.Healthy {
				components[name] = "healthy"
				continue
			}
			components[name] = "unhealthy: " + state.Detail
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		}
	}

	response := HealthResponse{
		Status:     status,
		Timestamp:  time.Now(),
		Version:    hs.version,
		Components: components,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// readyHandler runs every registered check and reports 503 until all
// pass.
func (hs *HealthServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string, len(hs.checks))
	ready := len(hs.checks) > 0
	var message string
	if !ready {
		message = "no readiness checks registered"
	}

	names := make([]string, 0, len(hs.checks))
	for name := range hs.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := hs.checks[name](); err != nil {
			checks[name] = "error: " + err.Error()
			ready = false
			if message == "" {
				message = name + " not ready"
			}
			continue
		}
		checks[name] = "ok"
	}

	status := "ready"
	statusCode := http.StatusOK
	if !ready {
		status = "not ready"
		statusCode = http.StatusServiceUnavailable
	}

	response := ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// GetHandler exposes the mux for embedding in another server
func (hs *HealthServer) GetHandler() http.Handler {
	return hs.mux
}
