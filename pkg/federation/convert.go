package federation

import (
	"time"

	"github.com/loomctl/loom/api/proto"
	"github.com/loomctl/loom/pkg/types"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// AgentFromProto converts a wire agent into the domain type
func AgentFromProto(a *proto.Agent) *types.Agent {
	if a == nil {
		return nil
	}
	agent := &types.Agent{
		ID:        a.AgentId,
		ClusterID: a.ClusterId,
		Status:    types.AgentStatus(a.Status),
		Model:     a.Model,
		Labels:    a.Labels,
	}
	if a.StartedAt != nil {
		agent.StartedAt = a.StartedAt.AsTime()
	}
	return agent
}

// AgentToProto converts a domain agent into its wire form
func AgentToProto(a *types.Agent) *proto.Agent {
	if a == nil {
		return nil
	}
	pa := &proto.Agent{
		AgentId:   a.ID,
		ClusterId: a.ClusterID,
		Status:    string(a.Status),
		Model:     a.Model,
		Labels:    a.Labels,
	}
	if !a.StartedAt.IsZero() {
		pa.StartedAt = timestamppb.New(a.StartedAt)
	}
	return pa
}

// CapabilitiesFromProto converts wire capabilities into the domain type
func CapabilitiesFromProto(c *proto.ClusterCapabilities) *types.ClusterCapabilities {
	if c == nil {
		return nil
	}
	return &types.ClusterCapabilities{
		MaxAgents:       int(c.MaxAgents),
		AvailableAgents: int(c.AvailableAgents),
		ActiveAgents:    int(c.ActiveAgents),
		GPUEnabled:      c.GpuEnabled,
		GPUTypes:        c.GpuTypes,
		CostPerHour:     c.CostPerHour,
		LatencyMs:       c.LatencyMs,
		Flags:           c.Flags,
	}
}

// CapabilitiesToProto converts domain capabilities into their wire form
func CapabilitiesToProto(c *types.ClusterCapabilities) *proto.ClusterCapabilities {
	if c == nil {
		return nil
	}
	return &proto.ClusterCapabilities{
		MaxAgents:       int32(c.MaxAgents),
		AvailableAgents: int32(c.AvailableAgents),
		ActiveAgents:    int32(c.ActiveAgents),
		GpuEnabled:      c.GPUEnabled,
		GpuTypes:        c.GPUTypes,
		CostPerHour:     c.CostPerHour,
		LatencyMs:       c.LatencyMs,
		Flags:           c.Flags,
	}
}

// ClusterFromProto converts a wire cluster descriptor into the domain type
func ClusterFromProto(c *proto.Cluster) *types.Cluster {
	if c == nil {
		return nil
	}
	cluster := &types.Cluster{
		ID:           c.ClusterId,
		Name:         c.Name,
		Endpoint:     c.Endpoint,
		Region:       types.Region(c.Region),
		Status:       types.ClusterStatus(c.Status),
		Capabilities: CapabilitiesFromProto(c.Capabilities),
		Metadata:     c.Metadata,
	}
	if c.LastHeartbeat != nil {
		cluster.LastHeartbeat = c.LastHeartbeat.AsTime()
	}
	if c.RegisteredAt != nil {
		cluster.RegisteredAt = c.RegisteredAt.AsTime()
	}
	if c.Tls != nil {
		cluster.TLS = &types.TLSMaterial{
			CAPEM:   c.Tls.CaPem,
			CertPEM: c.Tls.CertPem,
			KeyPEM:  c.Tls.KeyPem,
		}
	}
	return cluster
}

// ClusterToProto converts a domain cluster descriptor into its wire form
func ClusterToProto(c *types.Cluster) *proto.Cluster {
	if c == nil {
		return nil
	}
	pc := &proto.Cluster{
		ClusterId:    c.ID,
		Name:         c.Name,
		Endpoint:     c.Endpoint,
		Region:       string(c.Region),
		Status:       string(c.Status),
		Capabilities: CapabilitiesToProto(c.Capabilities),
		Metadata:     c.Metadata,
	}
	if !c.LastHeartbeat.IsZero() {
		pc.LastHeartbeat = timestamppb.New(c.LastHeartbeat)
	}
	if !c.RegisteredAt.IsZero() {
		pc.RegisteredAt = timestamppb.New(c.RegisteredAt)
	}
	if c.TLS != nil {
		pc.Tls = &proto.TLSMaterial{
			CaPem:   c.TLS.CAPEM,
			CertPem: c.TLS.CertPEM,
			KeyPem:  c.TLS.KeyPEM,
		}
	}
	return pc
}

// StatusInfoFromProto converts a wire status response into the domain type
func StatusInfoFromProto(r *proto.GetAgentStatusResponse) *types.AgentStatusInfo {
	if r == nil {
		return nil
	}
	info := &types.AgentStatusInfo{
		Status:   types.AgentStatus(r.Status),
		Metadata: r.Metadata,
	}
	if r.StartedAt != nil {
		info.StartedAt = r.StartedAt.AsTime()
	}
	if r.LastActivity != nil {
		info.LastActivity = r.LastActivity.AsTime()
	}
	return info
}

// eventTimestamp returns the event time, falling back to now for clusters
// that omit it
func eventTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Now()
	}
	return ts.AsTime()
}
