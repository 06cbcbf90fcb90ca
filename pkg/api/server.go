package api

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/loomctl/loom/api/proto"
	"github.com/loomctl/loom/pkg/balancer"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/proxy"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Config tunes the control-plane API server
type Config struct {
	// RatePerSecond is the per-peer request budget
	RatePerSecond float64
	// RateBurst is the per-peer burst allowance
	RateBurst int
}

// DefaultConfig returns the API server defaults
func DefaultConfig() Config {
	return Config{
		RatePerSecond: 50,
		RateBurst:     100,
	}
}

// Server implements the LoomAPI gRPC service: per-agent operations routed
// through the transparent proxy, cluster administration against the
// registry, and the control-plane event feed.
type Server struct {
	proto.UnimplementedLoomAPIServer

	proxy    *proxy.Proxy
	registry *federation.Registry
	balancer *balancer.Balancer
	broker   *events.Broker
	logger   zerolog.Logger

	grpc     *grpc.Server
	guard    *rateGuard
	draining atomic.Bool
}

// NewServer wires the API server over the control-plane components.
// Extra grpc.ServerOptions (TLS credentials, otel handlers) append after
// the built-in interceptor chain.
func NewServer(cfg Config, px *proxy.Proxy, registry *federation.Registry, bal *balancer.Balancer, broker *events.Broker, opts ...grpc.ServerOption) *Server {
	s := &Server{
		proxy:    px,
		registry: registry,
		balancer: bal,
		broker:   broker,
		logger:   log.WithComponent("api"),
		guard:    newRateGuard(cfg.RatePerSecond, cfg.RateBurst),
	}

	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			LoggingUnaryInterceptor(s.logger),
			RateLimitUnaryInterceptor(s.guard),
			ReadOnlyUnaryInterceptor(&s.draining),
		),
		grpc.ChainStreamInterceptor(
			LoggingStreamInterceptor(s.logger),
			RateLimitStreamInterceptor(s.guard),
			ReadOnlyStreamInterceptor(&s.draining),
		),
	}, opts...)
	s.grpc = grpc.NewServer(serverOpts...)
	proto.RegisterLoomAPIServer(s.grpc, s)
	return s
}

// Start serves on addr until Stop. Blocks.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(lis)
}

// Serve runs the gRPC server on an existing listener. Blocks.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("API listening")
	return s.grpc.Serve(lis)
}

// SetDraining toggles read-only mode: mutating RPCs are rejected while
// the daemon drains.
func (s *Server) SetDraining(draining bool) {
	s.draining.Store(draining)
	s.logger.Info().Bool("draining", draining).Msg("Drain mode changed")
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.guard.cleanup()
	s.grpc.GracefulStop()
}

// SpawnAgent places a new agent somewhere in the federation
func (s *Server) SpawnAgent(ctx context.Context, req *proto.SpawnRequest) (*proto.SpawnResponse, error) {
	config := &types.SpawnConfig{
		Model:          req.Model,
		Labels:         req.Labels,
		RequiresGPU:    req.RequiresGpu,
		GPUType:        req.GpuType,
		PreferLocal:    req.PreferLocal,
		Priority:       types.SelectionPriority(req.Priority),
		TimeoutSeconds: int(req.TimeoutSeconds),
		EnvVars:        req.EnvVars,
	}
	agent, err := s.proxy.Spawn(ctx, config)
	if err != nil {
		return nil, errdefs.ToStatus(err)
	}
	return &proto.SpawnResponse{Agent: federation.AgentToProto(agent)}, nil
}

// KillAgent terminates an agent wherever it runs
func (s *Server) KillAgent(ctx context.Context, req *proto.KillRequest) (*proto.KillResponse, error) {
	if err := s.proxy.Kill(ctx, req.AgentId, req.Force); err != nil {
		return nil, errdefs.ToStatus(err)
	}
	return &proto.KillResponse{Success: true}, nil
}

// ExecAgent streams command output chunks back to the caller
func (s *Server) ExecAgent(req *proto.ExecRequest, stream proto.LoomAPI_ExecAgentServer) error {
	timeout := time.Duration(req.TimeoutSeconds) * time.Second
	var sendErr error
	_, err := s.proxy.ExecStream(stream.Context(), req.AgentId, req.Command, req.Env, timeout, func(chunk types.ExecChunk) {
		if sendErr != nil {
			return
		}
		out := &proto.ExecuteCommandResponse{
			Output:  chunk.Output,
			IsError: chunk.IsError,
		}
		if chunk.ExitCode != nil {
			code := int32(*chunk.ExitCode)
			out.ExitCode = &code
		}
		sendErr = stream.Send(out)
	})
	if err != nil {
		return errdefs.ToStatus(err)
	}
	return sendErr
}

// GetAgentStatus reports an agent's state and owning cluster
func (s *Server) GetAgentStatus(ctx context.Context, req *proto.AgentStatusRequest) (*proto.AgentStatusResponse, error) {
	info, clusterID, err := s.proxy.Status(ctx, req.AgentId)
	if err != nil {
		return nil, errdefs.ToStatus(err)
	}
	return &proto.AgentStatusResponse{
		Status:       string(info.Status),
		ClusterId:    clusterID,
		StartedAt:    timestamppb.New(info.StartedAt),
		LastActivity: timestamppb.New(info.LastActivity),
		Metadata:     info.Metadata,
	}, nil
}

// ListAgents merges agents across every backend. Clusters whose listing
// failed come back as warnings, not an error.
func (s *Server) ListAgents(ctx context.Context, req *proto.ListAgentsRequest) (*proto.ProxyListResponse, error) {
	agents, warnings, err := s.proxy.List(ctx, types.AgentStatus(req.StatusFilter), req.LabelSelector)
	if err != nil {
		return nil, errdefs.ToStatus(err)
	}
	resp := &proto.ProxyListResponse{Warnings: warnings}
	for _, agent := range agents {
		resp.Agents = append(resp.Agents, federation.AgentToProto(agent))
	}
	return resp, nil
}

// MigrateAgent moves a live agent between clusters
func (s *Server) MigrateAgent(ctx context.Context, req *proto.MigrateRequest) (*proto.MigrateResponse, error) {
	if err := s.proxy.Migrate(ctx, req.AgentId, req.FromCluster, req.ToCluster); err != nil {
		return nil, errdefs.ToStatus(err)
	}
	return &proto.MigrateResponse{
		Success:   true,
		AgentId:   req.AgentId,
		ClusterId: req.ToCluster,
	}, nil
}

// RegisterCluster adds or updates a federation member
func (s *Server) RegisterCluster(ctx context.Context, req *proto.RegisterClusterRequest) (*proto.RegisterClusterResponse, error) {
	if req.Cluster == nil {
		return nil, errdefs.ToStatus(errdefs.Wrap(errdefs.ErrInvalidSpec, "", "cluster must not be empty"))
	}
	cluster := federation.ClusterFromProto(req.Cluster)
	if err := s.registry.Register(cluster); err != nil {
		return nil, errdefs.ToStatus(err)
	}
	return &proto.RegisterClusterResponse{ClusterId: cluster.ID}, nil
}

// UnregisterCluster removes a federation member with no live agents
func (s *Server) UnregisterCluster(ctx context.Context, req *proto.UnregisterClusterRequest) (*proto.UnregisterClusterResponse, error) {
	if err := s.registry.Unregister(req.ClusterId); err != nil {
		return nil, errdefs.ToStatus(err)
	}
	return &proto.UnregisterClusterResponse{Success: true}, nil
}

// GetCluster returns one cluster plus its probe state
func (s *Server) GetCluster(ctx context.Context, req *proto.GetClusterRequest) (*proto.GetClusterResponse, error) {
	cluster, err := s.registry.Get(req.ClusterId)
	if err != nil {
		return nil, errdefs.ToStatus(err)
	}
	resp := &proto.GetClusterResponse{Cluster: federation.ClusterToProto(cluster)}
	if health, err := s.registry.Health(req.ClusterId); err == nil {
		resp.HealthStatus = string(health.Status)
		resp.ConsecutiveFailures = int32(health.ConsecutiveFailures)
	}
	return resp, nil
}

// ListClusters returns the federation membership, optionally filtered
func (s *Server) ListClusters(ctx context.Context, req *proto.ListClustersRequest) (*proto.ListClustersResponse, error) {
	resp := &proto.ListClustersResponse{}
	for _, cluster := range s.registry.ListClusters() {
		if req.Region != "" && string(cluster.Region) != req.Region {
			continue
		}
		if req.Status != "" && string(cluster.Status) != req.Status {
			continue
		}
		resp.Clusters = append(resp.Clusters, federation.ClusterToProto(cluster))
	}
	return resp, nil
}

// WatchEvents streams control-plane events to the caller until it hangs
// up. An empty type list subscribes to everything.
func (s *Server) WatchEvents(req *proto.WatchEventsRequest, stream proto.LoomAPI_WatchEventsServer) error {
	eventTypes := make([]events.EventType, 0, len(req.EventTypes))
	for _, t := range req.EventTypes {
		eventTypes = append(eventTypes, events.EventType(t))
	}
	sub := s.broker.SubscribeTypes(eventTypes...)
	defer s.broker.Unsubscribe(sub)

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case ev, ok := <-sub:
			if !ok {
				return nil
			}
			if err := stream.Send(eventToProto(ev)); err != nil {
				return err
			}
		}
	}
}

// Proto conversions

func eventToProto(ev *events.Event) *proto.Event {
	return &proto.Event{
		EventId:   ev.ID,
		Type:      string(ev.Type),
		Message:   ev.Message,
		Timestamp: timestamppb.New(ev.Timestamp),
		Metadata:  ev.Metadata,
	}
}
