package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"

	"github.com/loomctl/loom/api/proto"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/federation"
	"github.com/loomctl/loom/pkg/security"
	"github.com/loomctl/loom/pkg/types"
)

// Client is the Go client for the control-plane API. It translates
// between the domain types and the wire format, so callers never touch
// generated code.
type Client struct {
	conn *grpc.ClientConn
	api  proto.LoomAPIClient
}

// Option adjusts how the client dials
type Option func(*dialConfig)

type dialConfig struct {
	tls  *types.TLSMaterial
	opts []grpc.DialOption
}

// WithTLS dials with the given TLS material; without it the dial is
// insecure (development default).
func WithTLS(material *types.TLSMaterial) Option {
	return func(c *dialConfig) { c.tls = material }
}

// WithDialOptions appends raw gRPC dial options
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *dialConfig) { c.opts = append(c.opts, opts...) }
}

// New dials the control plane at addr
func New(addr string, opts ...Option) (*Client, error) {
	var cfg dialConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	creds, err := security.DialCredentials(cfg.tls)
	if err != nil {
		return nil, fmt.Errorf("building dial credentials: %w", err)
	}
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, cfg.opts...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return NewFromConn(conn), nil
}

// NewFromConn wraps an existing connection; used by tests to reach a
// bufconn-served API.
func NewFromConn(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn, api: proto.NewLoomAPIClient(conn)}
}

// Close releases the connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Spawn places a new agent somewhere in the federation
func (c *Client) Spawn(ctx context.Context, config *types.SpawnConfig) (*types.Agent, error) {
	if config == nil {
		config = &types.SpawnConfig{}
	}
	resp, err := c.api.SpawnAgent(ctx, &proto.SpawnRequest{
		Model:          config.Model,
		Labels:         config.Labels,
		RequiresGpu:    config.RequiresGPU,
		GpuType:        config.GPUType,
		PreferLocal:    config.PreferLocal,
		Priority:       string(config.Priority),
		TimeoutSeconds: int32(config.TimeoutSeconds),
		EnvVars:        config.EnvVars,
	})
	if err != nil {
		return nil, errdefs.FromStatus(err)
	}
	return federation.AgentFromProto(resp.Agent), nil
}

// Kill terminates an agent wherever it runs
func (c *Client) Kill(ctx context.Context, agentID string, force bool) error {
	_, err := c.api.KillAgent(ctx, &proto.KillRequest{AgentId: agentID, Force: force})
	return errdefs.FromStatus(err)
}

// Exec runs a command inside an agent, delivering output chunks to
// onChunk as they arrive. It returns the command's exit code.
func (c *Client) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration, onChunk func(types.ExecChunk)) (int, error) {
	stream, err := c.api.ExecAgent(ctx, &proto.ExecRequest{
		AgentId:        agentID,
		Command:        command,
		Env:            env,
		TimeoutSeconds: int32(timeout / time.Second),
	})
	if err != nil {
		return 0, errdefs.FromStatus(err)
	}

	exitCode := 0
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return exitCode, nil
		}
		if err != nil {
			return exitCode, errdefs.FromStatus(err)
		}
		chunk := types.ExecChunk{Output: resp.Output, IsError: resp.IsError}
		if resp.ExitCode != nil {
			code := int(*resp.ExitCode)
			chunk.ExitCode = &code
			exitCode = code
		}
		if onChunk != nil {
			onChunk(chunk)
		}
	}
}

// Status reports an agent's state and the cluster that owns it
func (c *Client) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, string, error) {
	resp, err := c.api.GetAgentStatus(ctx, &proto.AgentStatusRequest{AgentId: agentID})
	if err != nil {
		return nil, "", errdefs.FromStatus(err)
	}
	info := &types.AgentStatusInfo{
		Status:   types.AgentStatus(resp.Status),
		Metadata: resp.Metadata,
	}
	if resp.StartedAt != nil {
		info.StartedAt = resp.StartedAt.AsTime()
	}
	if resp.LastActivity != nil {
		info.LastActivity = resp.LastActivity.AsTime()
	}
	return info, resp.ClusterId, nil
}

// ListAgents returns agents across every backend plus per-cluster
// listing warnings.
func (c *Client) ListAgents(ctx context.Context, statusFilter types.AgentStatus, labelSelector map[string]string) ([]*types.Agent, []string, error) {
	resp, err := c.api.ListAgents(ctx, &proto.ListAgentsRequest{
		StatusFilter:  string(statusFilter),
		LabelSelector: labelSelector,
	})
	if err != nil {
		return nil, nil, errdefs.FromStatus(err)
	}
	agents := make([]*types.Agent, 0, len(resp.Agents))
	for _, a := range resp.Agents {
		agents = append(agents, federation.AgentFromProto(a))
	}
	return agents, resp.Warnings, nil
}

// Migrate moves a live agent between clusters
func (c *Client) Migrate(ctx context.Context, agentID, fromCluster, toCluster string) error {
	_, err := c.api.MigrateAgent(ctx, &proto.MigrateRequest{
		AgentId:     agentID,
		FromCluster: fromCluster,
		ToCluster:   toCluster,
	})
	return errdefs.FromStatus(err)
}

// RegisterCluster adds or updates a federation member
func (c *Client) RegisterCluster(ctx context.Context, cluster *types.Cluster) error {
	_, err := c.api.RegisterCluster(ctx, &proto.RegisterClusterRequest{Cluster: federation.ClusterToProto(cluster)})
	return errdefs.FromStatus(err)
}

// UnregisterCluster removes a federation member with no live agents
func (c *Client) UnregisterCluster(ctx context.Context, clusterID string) error {
	_, err := c.api.UnregisterCluster(ctx, &proto.UnregisterClusterRequest{ClusterId: clusterID})
	return errdefs.FromStatus(err)
}

// ClusterInfo is a cluster descriptor plus its probe state
type ClusterInfo struct {
	Cluster             *types.Cluster
	HealthStatus        types.ClusterStatus
	ConsecutiveFailures int
}

// GetCluster returns one cluster and its health
func (c *Client) GetCluster(ctx context.Context, clusterID string) (*ClusterInfo, error) {
	resp, err := c.api.GetCluster(ctx, &proto.GetClusterRequest{ClusterId: clusterID})
	if err != nil {
		return nil, errdefs.FromStatus(err)
	}
	return &ClusterInfo{
		Cluster:             federation.ClusterFromProto(resp.Cluster),
		HealthStatus:        types.ClusterStatus(resp.HealthStatus),
		ConsecutiveFailures: int(resp.ConsecutiveFailures),
	}, nil
}

// ListClusters returns the federation membership, optionally filtered by
// region and status.
func (c *Client) ListClusters(ctx context.Context, region, status string) ([]*types.Cluster, error) {
	resp, err := c.api.ListClusters(ctx, &proto.ListClustersRequest{Region: region, Status: status})
	if err != nil {
		return nil, errdefs.FromStatus(err)
	}
	clusters := make([]*types.Cluster, 0, len(resp.Clusters))
	for _, pc := range resp.Clusters {
		clusters = append(clusters, federation.ClusterFromProto(pc))
	}
	return clusters, nil
}

// WatchEvents follows the control-plane event stream until the context
// is cancelled or the server hangs up. An empty type list subscribes to
// everything.
func (c *Client) WatchEvents(ctx context.Context, eventTypes []string, handler func(*events.Event)) error {
	stream, err := c.api.WatchEvents(ctx, &proto.WatchEventsRequest{EventTypes: eventTypes})
	if err != nil {
		return errdefs.FromStatus(err)
	}
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errdefs.FromStatus(err)
		}
		event := &events.Event{
			ID:       ev.EventId,
			Type:     events.EventType(ev.Type),
			Message:  ev.Message,
			Metadata: ev.Metadata,
		}
		if ev.Timestamp != nil {
			event.Timestamp = ev.Timestamp.AsTime()
		}
		handler(event)
	}
}
