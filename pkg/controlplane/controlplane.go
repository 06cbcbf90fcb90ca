package controlplane

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/loomctl/loom/pkg/api"
	"github.com/loomctl/loom/pkg/balancer"
	"github.com/loomctl/loom/pkg/config"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/gateway"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/mailbox"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/proxy"
	"github.com/loomctl/loom/pkg/roles"
	"github.com/loomctl/loom/pkg/runtime"
	"github.com/loomctl/loom/pkg/security"
	"github.com/loomctl/loom/pkg/storage"
	"github.com/loomctl/loom/pkg/taskgraph"
	"github.com/loomctl/loom/pkg/taskstore"
	"github.com/loomctl/loom/pkg/telemetry"
	"github.com/loomctl/loom/pkg/types"
)

// Option adjusts construction; used by tests to inject fakes
type Option func(*options)

type options struct {
	version   string
	factory   federation.ClientFactory
	local     runtime.Runtime
	generator taskgraph.TextGenerator
}

// WithVersion sets the version string reported by the health endpoint
func WithVersion(version string) Option {
	return func(o *options) { o.version = version }
}

// WithClientFactory overrides how cluster clients are built
func WithClientFactory(factory federation.ClientFactory) Option {
	return func(o *options) { o.factory = factory }
}

// WithRuntime overrides the local agent runtime
func WithRuntime(local runtime.Runtime) Option {
	return func(o *options) { o.local = local }
}

// WithTextGenerator wires an LLM collaborator into the task graph engine
func WithTextGenerator(generator taskgraph.TextGenerator) Option {
	return func(o *options) { o.generator = generator }
}

// ControlPlane owns every component of the daemon and their lifecycle:
// construction, persisted-state replay, serving, and graceful drain.
type ControlPlane struct {
	cfg    *config.Config
	logger zerolog.Logger

	broker   *events.Broker
	store    storage.Store
	registry *federation.Registry
	monitor  *federation.Monitor
	local    runtime.Runtime
	balancer *balancer.Balancer
	proxy    *proxy.Proxy
	roles    *roles.Registry
	bus      *mailbox.Bus
	engine   *taskgraph.Engine
	tasks    *taskstore.Store
	server   *api.Server
	health   *http.Server
	gateway  *gateway.Gateway

	agentEvents events.Subscriber
	loopDone    chan struct{}
	ready       chan struct{}
}

// New builds the component graph from the configuration. Nothing is
// started; Start runs replay and brings the listeners up.
func New(cfg *config.Config, opts ...Option) (*ControlPlane, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.version == "" {
		o.version = "dev"
	}

	cp := &ControlPlane{
		cfg:      cfg,
		logger:   log.WithComponent("controlplane"),
		loopDone: make(chan struct{}),
		ready:    make(chan struct{}),
	}
	cp.broker = events.NewBroker()

	store, err := storage.NewBoltStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	cp.store = store

	factory := o.factory
	if factory == nil {
		var dialOpts []grpc.DialOption
		if cfg.Telemetry.Enabled {
			dialOpts = append(dialOpts, telemetry.DialOption())
		}
		factory = func(cluster *types.Cluster) (federation.ClusterClient, error) {
			return federation.NewClient(cluster, dialOpts...)
		}
	}
	cp.registry = federation.NewRegistry(federation.Config{
		ProbeInterval:     cfg.Registry.ProbeInterval,
		ProbeTimeout:      cfg.Registry.ProbeTimeout,
		DegradedThreshold: cfg.Registry.DegradedThreshold,
		OfflineThreshold:  cfg.Registry.OfflineThreshold,
		AutoRemoveAfter:   cfg.Registry.AutoRemoveAfter,
	}, cp.broker, factory)
	cp.monitor = federation.NewMonitor(cp.registry, cp.broker)

	cp.local = o.local
	if cp.local == nil {
		cp.local = runtime.NewProcessRuntime(runtime.Config{
			MaxAgents:     cfg.Runtime.MaxAgents,
			WorkerCommand: cfg.Runtime.WorkerCommand,
		})
	}

	balCfg := balancer.DefaultConfig()
	if cfg.Balancer.DefaultPriority != "" {
		balCfg.DefaultPriority = types.SelectionPriority(cfg.Balancer.DefaultPriority)
	}
	if cfg.Balancer.Strategy != "" {
		balCfg.Strategy = cfg.Balancer.Strategy
	}
	if cfg.Balancer.LocalFloor > 0 {
		balCfg.LocalFloor = cfg.Balancer.LocalFloor
	}
	if cfg.Balancer.MaxSpawnAttempts > 0 {
		balCfg.MaxSpawnAttempts = cfg.Balancer.MaxSpawnAttempts
	}
	if cfg.Balancer.MaxConcurrentMigrations > 0 {
		balCfg.MaxConcurrentMigrations = cfg.Balancer.MaxConcurrentMigrations
	}
	if cfg.Balancer.VerifyTimeout > 0 {
		balCfg.VerifyTimeout = cfg.Balancer.VerifyTimeout
	}
	bal, err := balancer.New(balCfg, cp.registry, cp.local, cp.store, cp.broker)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("building balancer: %w", err)
	}
	cp.balancer = bal
	cp.registry.SetOwnershipChecker(bal.OwnedBy)
	cp.proxy = proxy.New(bal, cp.registry, cp.local)

	cp.roles = roles.NewRegistry(cp.store, cp.broker)
	cp.bus = mailbox.NewBus(mailbox.Config{
		MaxMessages:   cfg.Messaging.MaxMessages,
		SweepInterval: cfg.Messaging.SweepInterval,
		TrackDelivery: cfg.Messaging.DeliveryTracking,
	}, cp.broker, cp.roles)

	cp.engine = taskgraph.NewEngine(taskgraph.DefaultConfig(), o.generator, cp.broker)

	tasks, err := taskstore.New(cfg.TaskStore.BasePath, cp.broker,
		taskstore.WithLockStaleness(cfg.TaskStore.LockStaleness))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("opening task store: %w", err)
	}
	cp.tasks = tasks

	serverOpts, err := cp.serverOptions()
	if err != nil {
		store.Close()
		return nil, err
	}
	cp.server = api.NewServer(api.Config{
		RatePerSecond: cfg.Server.RequestsPerSecond,
		RateBurst:     cfg.Server.Burst,
	}, cp.proxy, cp.registry, bal, cp.broker, serverOpts...)

	checks := map[string]api.ReadyCheck{
		"storage": func() error {
			_, err := store.ListClusters()
			return err
		},
		"control_plane": func() error {
			select {
			case <-cp.ready:
				return nil
			default:
				return fmt.Errorf("startup replay not finished")
			}
		},
	}
	cp.health = &http.Server{
		Addr:         cfg.Server.MetricsAddr,
		Handler:      api.NewHealthServer(o.version, checks).GetHandler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if cfg.Gateway.Enabled {
		cp.gateway = gateway.New(gateway.DefaultConfig(), cp.broker)
	}

	return cp, nil
}

func (cp *ControlPlane) serverOptions() ([]grpc.ServerOption, error) {
	var opts []grpc.ServerOption
	if cp.cfg.Server.TLSCertFile != "" && cp.cfg.Server.TLSKeyFile != "" {
		tlsCfg, err := security.ServerTLSConfig(cp.cfg.Server.TLSCertFile, cp.cfg.Server.TLSKeyFile, cp.cfg.Server.TLSClientCAFile)
		if err != nil {
			return nil, fmt.Errorf("loading server TLS material: %w", err)
		}
		opts = append(opts, grpc.Creds(credentials.NewTLS(tlsCfg)))
	}
	if cp.cfg.Telemetry.Enabled {
		opts = append(opts, telemetry.ServerOption())
	}
	return opts, nil
}

// Start replays persisted state, starts every background component, and
// brings the listeners up. It returns once the daemon is serving.
func (cp *ControlPlane) Start() error {
	cp.broker.Start()
	cp.agentEvents = cp.broker.SubscribeTypes(
		events.EventClusterRegistered,
		events.EventClusterUpdated,
		events.EventClusterUnregistered,
		events.EventAgentSpawned,
		events.EventAgentKilled,
	)
	go cp.eventLoop()

	if err := cp.replay(); err != nil {
		return err
	}
	close(cp.ready)

	// The monitor starts probing only after the membership is reloaded,
	// so a restart never misreads an empty registry as a healthy one.
	cp.monitor.Start()
	cp.balancer.Start()
	cp.bus.Start()

	for _, component := range []string{"storage", "registry", "balancer", "bus"} {
		metrics.SetComponentHealth(component, true, "")
	}

	go func() {
		if err := cp.server.Start(cp.cfg.Server.ListenAddr); err != nil {
			cp.logger.Error().Err(err).Msg("API server stopped")
		}
	}()
	go func() {
		if err := cp.health.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			cp.logger.Error().Err(err).Msg("Health server stopped")
		}
	}()
	if cp.gateway != nil {
		go func() {
			if err := cp.gateway.Start(cp.cfg.Gateway.ListenAddr); err != nil {
				cp.logger.Error().Err(err).Msg("Event gateway stopped")
			}
		}()
	}

	cp.logger.Info().
		Str("listen_addr", cp.cfg.Server.ListenAddr).
		Str("metrics_addr", cp.cfg.Server.MetricsAddr).
		Bool("gateway", cp.gateway != nil).
		Msg("Control plane started")
	return nil
}

// replay reloads clusters, user roles, assignments, and proxy routes
// from the state store. Health state is never persisted; the monitor
// rebuilds it by probing.
func (cp *ControlPlane) replay() error {
	clusters, err := cp.store.ListClusters()
	if err != nil {
		return fmt.Errorf("reloading clusters: %w", err)
	}
	for _, cluster := range clusters {
		if err := cp.registry.Register(cluster); err != nil {
			cp.logger.Warn().Err(err).Str("cluster_id", cluster.ID).Msg("Skipping persisted cluster")
		}
	}

	rolesList, err := cp.store.ListRoles()
	if err != nil {
		return fmt.Errorf("reloading roles: %w", err)
	}
	for _, role := range rolesList {
		cp.roles.RestoreRole(role)
	}

	assignments, err := cp.store.ListAssignments()
	if err != nil {
		return fmt.Errorf("reloading assignments: %w", err)
	}
	for _, assignment := range assignments {
		cp.roles.RestoreAssignment(assignment)
	}

	routes, err := cp.store.ListRoutes()
	if err != nil {
		return fmt.Errorf("reloading routes: %w", err)
	}
	for _, route := range routes {
		cp.balancer.RestoreRoute(route.AgentID, route.ClusterID)
		cp.bus.Register(route.AgentID)
	}

	cp.logger.Info().
		Int("clusters", len(clusters)).
		Int("roles", len(rolesList)).
		Int("assignments", len(assignments)).
		Int("routes", len(routes)).
		Msg("Replayed persisted state")
	return nil
}

// eventLoop keeps durable state and mailboxes in step with the event
// stream: cluster changes are persisted, and every agent gets a mailbox
// for its lifetime.
func (cp *ControlPlane) eventLoop() {
	defer close(cp.loopDone)
	for ev := range cp.agentEvents {
		switch ev.Type {
		case events.EventClusterRegistered, events.EventClusterUpdated:
			id := ev.Metadata["cluster_id"]
			cluster, err := cp.registry.Get(id)
			if err != nil {
				continue
			}
			if err := cp.store.SaveCluster(cluster); err != nil {
				cp.logger.Error().Err(err).Str("cluster_id", id).Msg("Persisting cluster failed")
				metrics.SetComponentHealth("storage", false, err.Error())
			} else {
				metrics.SetComponentHealth("storage", true, "")
			}
		case events.EventClusterUnregistered:
			id := ev.Metadata["cluster_id"]
			if err := cp.store.DeleteCluster(id); err != nil {
				cp.logger.Error().Err(err).Str("cluster_id", id).Msg("Removing persisted cluster failed")
				metrics.SetComponentHealth("storage", false, err.Error())
			} else {
				metrics.SetComponentHealth("storage", true, "")
			}
		case events.EventAgentSpawned:
			if id := ev.Metadata["agent_id"]; id != "" {
				cp.bus.Register(id)
			}
		case events.EventAgentKilled:
			if id := ev.Metadata["agent_id"]; id != "" {
				cp.bus.Unregister(id)
			}
		}
	}
}

// Stop drains and shuts the daemon down: no new mutations are accepted,
// in-flight migrations get until the context deadline to settle, then
// every component is stopped and state is flushed.
func (cp *ControlPlane) Stop(ctx context.Context) error {
	cp.server.SetDraining(true)

	if err := cp.balancer.Stop(ctx); err != nil {
		cp.logger.Warn().Err(err).Msg("Balancer drain incomplete")
	}
	cp.monitor.Stop()
	cp.bus.Stop()
	if cp.gateway != nil {
		cp.gateway.Stop()
	}

	cp.server.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cp.health.Shutdown(shutdownCtx); err != nil {
		cp.health.Close()
	}

	if err := cp.local.Close(); err != nil {
		cp.logger.Warn().Err(err).Msg("Local runtime close failed")
	}
	cp.registry.Close()

	cp.broker.Unsubscribe(cp.agentEvents)
	cp.broker.Stop()
	select {
	case <-cp.loopDone:
	case <-time.After(time.Second):
	}

	err := cp.store.Close()
	cp.logger.Info().Msg("Control plane stopped")
	return err
}

// Broker exposes the event broker
func (cp *ControlPlane) Broker() *events.Broker { return cp.broker }

// Registry exposes the federation registry
func (cp *ControlPlane) Registry() *federation.Registry { return cp.registry }

// Balancer exposes the load balancer
func (cp *ControlPlane) Balancer() *balancer.Balancer { return cp.balancer }

// Proxy exposes the transparent proxy
func (cp *ControlPlane) Proxy() *proxy.Proxy { return cp.proxy }

// Roles exposes the role registry
func (cp *ControlPlane) Roles() *roles.Registry { return cp.roles }

// Bus exposes the message bus
func (cp *ControlPlane) Bus() *mailbox.Bus { return cp.bus }

// Engine exposes the task decomposition engine
func (cp *ControlPlane) Engine() *taskgraph.Engine { return cp.engine }

// Tasks exposes the task store
func (cp *ControlPlane) Tasks() *taskstore.Store { return cp.tasks }

// Server exposes the gRPC API server
func (cp *ControlPlane) Server() *api.Server { return cp.server }
