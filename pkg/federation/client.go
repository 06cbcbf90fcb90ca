package federation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/loomctl/loom/api/proto"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/security"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ClusterEvent is one event received from a cluster's event stream
type ClusterEvent struct {
	Type          string
	AgentID       string
	ClusterID     string
	SourceCluster string
	Payload       map[string]string
	Timestamp     time.Time
}

// EventSubscription filters a cluster event stream
type EventSubscription struct {
	EventTypes []string
	AgentIDs   []string
}

// ClusterClient is the typed per-cluster operation surface. One
// implementation wraps the federation gRPC contract; tests substitute
// in-memory fakes.
type ClusterClient interface {
	ClusterID() string
	SpawnAgent(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error)
	KillAgent(ctx context.Context, agentID string, force bool) error
	// ExecuteCommand streams output chunks through onChunk and returns the
	// terminal exit code. A stream that ends without a terminal chunk is an
	// error.
	ExecuteCommand(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration, onChunk func(types.ExecChunk)) (int, error)
	GetAgentStatus(ctx context.Context, agentID string) (*types.AgentStatusInfo, error)
	ListAgents(ctx context.Context, statusFilter types.AgentStatus, labelSelector map[string]string) ([]*types.Agent, error)
	Heartbeat(ctx context.Context) (*types.ClusterCapabilities, error)
	// StreamEvents delivers cluster events to handler in source order until
	// ctx is cancelled or the stream breaks.
	StreamEvents(ctx context.Context, sub EventSubscription, handler func(*ClusterEvent)) error
	ExportAgent(ctx context.Context, agentID string, includeState bool) (*types.AgentSnapshot, error)
	ImportAgent(ctx context.Context, snapshot *types.AgentSnapshot) (*types.Agent, error)
	Close() error
}

// ClientFactory builds a ClusterClient for a registered cluster. The
// default factory dials the cluster endpoint; tests inject bufconn-backed
// factories.
type ClientFactory func(cluster *types.Cluster) (ClusterClient, error)

// retryPolicy controls the in-client retry of transient transport errors
type retryPolicy struct {
	attempts int
	baseWait time.Duration
}

var defaultRetry = retryPolicy{attempts: 3, baseWait: 100 * time.Millisecond}

// Client is the gRPC-backed ClusterClient
type Client struct {
	clusterID string
	conn      *grpc.ClientConn
	client    proto.FederationClient
	retry     retryPolicy
	logger    zerolog.Logger
}

// NewClient dials a cluster endpoint and wraps the connection. TLS
// material on the descriptor enables a TLS dial; without it the dial is
// insecure (development default).
func NewClient(cluster *types.Cluster, opts ...grpc.DialOption) (*Client, error) {
	creds, err := security.DialCredentials(cluster.TLS)
	if err != nil {
		return nil, fmt.Errorf("failed to build dial credentials: %w", err)
	}

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, opts...)
	conn, err := grpc.NewClient(cluster.Endpoint, dialOpts...)
	if err != nil {
		return nil, errdefs.Wrapf(errdefs.ErrClusterUnavailable, cluster.ID,
			"failed to dial %s: %v", cluster.Endpoint, err)
	}

	return NewClientFromConn(conn, cluster.ID), nil
}

// NewClientFromConn wraps an existing connection; used by tests to serve
// the federation contract over bufconn.
func NewClientFromConn(conn *grpc.ClientConn, clusterID string) *Client {
	return &Client{
		clusterID: clusterID,
		conn:      conn,
		client:    proto.NewFederationClient(conn),
		retry:     defaultRetry,
		logger:    log.WithClusterID(clusterID),
	}
}

// ClusterID returns the cluster this client is bound to
func (c *Client) ClusterID() string {
	return c.clusterID
}

// Close closes the underlying connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// withRetry runs fn, retrying transient transport failures with
// exponential back-off until the attempts budget or the context deadline
// runs out.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	wait := c.retry.baseWait
	var err error
	for attempt := 0; attempt < c.retry.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(wait):
				wait *= 2
			case <-ctx.Done():
				return errdefs.Wrap(errdefs.ErrTimeout, c.clusterID, "deadline exceeded during retry wait")
			}
			c.logger.Debug().Int("attempt", attempt+1).Msg("Retrying cluster call")
		}
		if err = fn(); err == nil || !errdefs.IsRetryable(err) {
			return err
		}
	}
	return err
}

// SpawnAgent asks the cluster to start one agent
func (c *Client) SpawnAgent(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	var resp *proto.SpawnAgentResponse
	err := c.withRetry(ctx, func() error {
		var err error
		resp, err = c.client.SpawnAgent(ctx, &proto.SpawnAgentRequest{
			AgentId:        spec.AgentID,
			Model:          spec.Model,
			Labels:         spec.Labels,
			TimeoutSeconds: int32(spec.TimeoutSeconds),
			GpuEnabled:     spec.GPUEnabled,
			GpuType:        spec.GPUType,
			EnvVars:        spec.EnvVars,
		})
		return errdefs.FromStatus(err)
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("cluster %s rejected spawn: %s", c.clusterID, resp.Error)
	}

	return &types.Agent{
		ID:        resp.AgentId,
		ClusterID: c.clusterID,
		Status:    types.AgentStatus(resp.Status),
		Model:     spec.Model,
		StartedAt: time.Now(),
		Labels:    spec.Labels,
	}, nil
}

// KillAgent terminates an agent on the cluster. Not-found is swallowed
// when force is set.
func (c *Client) KillAgent(ctx context.Context, agentID string, force bool) error {
	err := c.withRetry(ctx, func() error {
		resp, err := c.client.KillAgent(ctx, &proto.KillAgentRequest{
			AgentId: agentID,
			Force:   force,
		})
		if err != nil {
			return errdefs.FromStatus(err)
		}
		if !resp.Success && resp.Error != "" {
			return fmt.Errorf("cluster %s failed to kill %s: %s", c.clusterID, agentID, resp.Error)
		}
		return nil
	})
	if force && errors.Is(err, errdefs.ErrAgentNotFound) {
		return nil
	}
	return err
}

// ExecuteCommand runs a command on an agent, forwarding every output
// chunk. The terminal chunk carries the exit code; a stream without one
// fails.
func (c *Client) ExecuteCommand(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration, onChunk func(types.ExecChunk)) (int, error) {
	stream, err := c.client.ExecuteCommand(ctx, &proto.ExecuteCommandRequest{
		AgentId:        agentID,
		Command:        command,
		Env:            env,
		TimeoutSeconds: int32(timeout / time.Second),
	})
	if err != nil {
		return 0, errdefs.FromStatus(err)
	}

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return 0, errdefs.Wrap(errdefs.ErrClusterUnavailable, agentID,
				"exec stream ended without terminal chunk")
		}
		if err != nil {
			return 0, errdefs.FromStatus(err)
		}

		chunk := types.ExecChunk{Output: resp.Output, IsError: resp.IsError}
		if resp.ExitCode != nil {
			code := int(*resp.ExitCode)
			chunk.ExitCode = &code
		}
		if onChunk != nil {
			onChunk(chunk)
		}
		if chunk.ExitCode != nil {
			return *chunk.ExitCode, nil
		}
	}
}

// GetAgentStatus queries one agent's lifecycle state
func (c *Client) GetAgentStatus(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	var resp *proto.GetAgentStatusResponse
	err := c.withRetry(ctx, func() error {
		var err error
		resp, err = c.client.GetAgentStatus(ctx, &proto.GetAgentStatusRequest{AgentId: agentID})
		return errdefs.FromStatus(err)
	})
	if err != nil {
		return nil, err
	}
	return StatusInfoFromProto(resp), nil
}

// ListAgents returns the cluster's agents, optionally filtered
func (c *Client) ListAgents(ctx context.Context, statusFilter types.AgentStatus, labelSelector map[string]string) ([]*types.Agent, error) {
	var resp *proto.ListAgentsResponse
	err := c.withRetry(ctx, func() error {
		var err error
		resp, err = c.client.ListAgents(ctx, &proto.ListAgentsRequest{
			StatusFilter:  string(statusFilter),
			LabelSelector: labelSelector,
		})
		return errdefs.FromStatus(err)
	})
	if err != nil {
		return nil, err
	}

	agents := make([]*types.Agent, 0, len(resp.Agents))
	for _, a := range resp.Agents {
		agent := AgentFromProto(a)
		if agent.ClusterID == "" {
			agent.ClusterID = c.clusterID
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// Heartbeat probes the cluster and returns its reported capabilities.
// Used by the health monitor; no retry, a slow probe is a failed probe.
func (c *Client) Heartbeat(ctx context.Context) (*types.ClusterCapabilities, error) {
	resp, err := c.client.Heartbeat(ctx, &proto.HeartbeatRequest{
		ClusterId: c.clusterID,
		Timestamp: timestamppb.Now(),
	})
	if err != nil {
		return nil, errdefs.FromStatus(err)
	}
	return CapabilitiesFromProto(resp.Capabilities), nil
}

// StreamEvents opens the bidirectional event stream, sends the
// subscription as the first message, and forwards events in source order.
func (c *Client) StreamEvents(ctx context.Context, sub EventSubscription, handler func(*ClusterEvent)) error {
	stream, err := c.client.StreamEvents(ctx)
	if err != nil {
		return errdefs.FromStatus(err)
	}

	if err := stream.Send(&proto.EventSubscription{
		ClusterId:     c.clusterID,
		EventTypes:    sub.EventTypes,
		AgentIdFilter: sub.AgentIDs,
	}); err != nil {
		return errdefs.FromStatus(err)
	}

	for {
		event, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errdefs.FromStatus(err)
		}
		handler(&ClusterEvent{
			Type:          event.Type,
			AgentID:       event.AgentId,
			ClusterID:     event.ClusterId,
			SourceCluster: event.SourceCluster,
			Payload:       event.Payload,
			Timestamp:     eventTimestamp(event.Timestamp),
		})
	}
}

// ExportAgent snapshots an agent for migration
func (c *Client) ExportAgent(ctx context.Context, agentID string, includeState bool) (*types.AgentSnapshot, error) {
	resp, err := c.client.ExportAgent(ctx, &proto.ExportAgentRequest{
		AgentId:      agentID,
		IncludeState: includeState,
	})
	if err != nil {
		return nil, errdefs.FromStatus(err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("cluster %s failed to export %s: %s", c.clusterID, agentID, resp.Error)
	}

	return &types.AgentSnapshot{
		AgentID:       resp.AgentId,
		State:         resp.StateData,
		Metadata:      resp.Metadata,
		CreatedAt:     time.Now(),
		SourceCluster: c.clusterID,
	}, nil
}

// ImportAgent restores a snapshot on this cluster. Importing an agent id
// the cluster already hosts is AgentAlreadyExists, not an upsert.
func (c *Client) ImportAgent(ctx context.Context, snapshot *types.AgentSnapshot) (*types.Agent, error) {
	resp, err := c.client.ImportAgent(ctx, &proto.ImportAgentRequest{
		AgentId:       snapshot.AgentID,
		StateData:     snapshot.State,
		Metadata:      snapshot.Metadata,
		TargetCluster: c.clusterID,
	})
	if err != nil {
		return nil, errdefs.FromStatus(err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("cluster %s failed to import %s: %s", c.clusterID, snapshot.AgentID, resp.Error)
	}

	return &types.Agent{
		ID:        resp.AgentId,
		ClusterID: c.clusterID,
		Status:    types.AgentStatusRunning,
		StartedAt: time.Now(),
	}, nil
}
