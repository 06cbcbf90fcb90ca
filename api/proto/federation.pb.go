// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: federation.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Agent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ClusterId     string                 `protobuf:"bytes,2,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"` // empty = local runtime
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`                        // pending|running|paused|completed|failed|migrating|terminated
	Model         string                 `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	Labels        map[string]string      `protobuf:"bytes,6,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Agent) Reset() {
	*x = Agent{}
	mi := &file_federation_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Agent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Agent) ProtoMessage() {}

func (x *Agent) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Agent.ProtoReflect.Descriptor instead.
func (*Agent) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{0}
}

func (x *Agent) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *Agent) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *Agent) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Agent) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *Agent) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Agent) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

type ClusterCapabilities struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	MaxAgents       int32                  `protobuf:"varint,1,opt,name=max_agents,json=maxAgents,proto3" json:"max_agents,omitempty"`
	AvailableAgents int32                  `protobuf:"varint,2,opt,name=available_agents,json=availableAgents,proto3" json:"available_agents,omitempty"`
	ActiveAgents    int32                  `protobuf:"varint,3,opt,name=active_agents,json=activeAgents,proto3" json:"active_agents,omitempty"`
	GpuEnabled      bool                   `protobuf:"varint,4,opt,name=gpu_enabled,json=gpuEnabled,proto3" json:"gpu_enabled,omitempty"`
	GpuTypes        []string               `protobuf:"bytes,5,rep,name=gpu_types,json=gpuTypes,proto3" json:"gpu_types,omitempty"`
	CostPerHour     float64                `protobuf:"fixed64,6,opt,name=cost_per_hour,json=costPerHour,proto3" json:"cost_per_hour,omitempty"`
	LatencyMs       float64                `protobuf:"fixed64,7,opt,name=latency_ms,json=latencyMs,proto3" json:"latency_ms,omitempty"`
	Flags           map[string]bool        `protobuf:"bytes,8,rep,name=flags,proto3" json:"flags,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ClusterCapabilities) Reset() {
	*x = ClusterCapabilities{}
	mi := &file_federation_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClusterCapabilities) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClusterCapabilities) ProtoMessage() {}

func (x *ClusterCapabilities) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClusterCapabilities.ProtoReflect.Descriptor instead.
func (*ClusterCapabilities) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{1}
}

func (x *ClusterCapabilities) GetMaxAgents() int32 {
	if x != nil {
		return x.MaxAgents
	}
	return 0
}

func (x *ClusterCapabilities) GetAvailableAgents() int32 {
	if x != nil {
		return x.AvailableAgents
	}
	return 0
}

func (x *ClusterCapabilities) GetActiveAgents() int32 {
	if x != nil {
		return x.ActiveAgents
	}
	return 0
}

func (x *ClusterCapabilities) GetGpuEnabled() bool {
	if x != nil {
		return x.GpuEnabled
	}
	return false
}

func (x *ClusterCapabilities) GetGpuTypes() []string {
	if x != nil {
		return x.GpuTypes
	}
	return nil
}

func (x *ClusterCapabilities) GetCostPerHour() float64 {
	if x != nil {
		return x.CostPerHour
	}
	return 0
}

func (x *ClusterCapabilities) GetLatencyMs() float64 {
	if x != nil {
		return x.LatencyMs
	}
	return 0
}

func (x *ClusterCapabilities) GetFlags() map[string]bool {
	if x != nil {
		return x.Flags
	}
	return nil
}

type TLSMaterial struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CaPem         []byte                 `protobuf:"bytes,1,opt,name=ca_pem,json=caPem,proto3" json:"ca_pem,omitempty"`
	CertPem       []byte                 `protobuf:"bytes,2,opt,name=cert_pem,json=certPem,proto3" json:"cert_pem,omitempty"`
	KeyPem        []byte                 `protobuf:"bytes,3,opt,name=key_pem,json=keyPem,proto3" json:"key_pem,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TLSMaterial) Reset() {
	*x = TLSMaterial{}
	mi := &file_federation_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TLSMaterial) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TLSMaterial) ProtoMessage() {}

func (x *TLSMaterial) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TLSMaterial.ProtoReflect.Descriptor instead.
func (*TLSMaterial) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{2}
}

func (x *TLSMaterial) GetCaPem() []byte {
	if x != nil {
		return x.CaPem
	}
	return nil
}

func (x *TLSMaterial) GetCertPem() []byte {
	if x != nil {
		return x.CertPem
	}
	return nil
}

func (x *TLSMaterial) GetKeyPem() []byte {
	if x != nil {
		return x.KeyPem
	}
	return nil
}

type Cluster struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClusterId     string                 `protobuf:"bytes,1,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Endpoint      string                 `protobuf:"bytes,3,opt,name=endpoint,proto3" json:"endpoint,omitempty"`
	Region        string                 `protobuf:"bytes,4,opt,name=region,proto3" json:"region,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // active|degraded|offline|maintenance
	Capabilities  *ClusterCapabilities   `protobuf:"bytes,6,opt,name=capabilities,proto3" json:"capabilities,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,7,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	LastHeartbeat *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=last_heartbeat,json=lastHeartbeat,proto3" json:"last_heartbeat,omitempty"`
	RegisteredAt  *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=registered_at,json=registeredAt,proto3" json:"registered_at,omitempty"`
	Tls           *TLSMaterial           `protobuf:"bytes,10,opt,name=tls,proto3" json:"tls,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Cluster) Reset() {
	*x = Cluster{}
	mi := &file_federation_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Cluster) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Cluster) ProtoMessage() {}

func (x *Cluster) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Cluster.ProtoReflect.Descriptor instead.
func (*Cluster) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{3}
}

func (x *Cluster) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *Cluster) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Cluster) GetEndpoint() string {
	if x != nil {
		return x.Endpoint
	}
	return ""
}

func (x *Cluster) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Cluster) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Cluster) GetCapabilities() *ClusterCapabilities {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

func (x *Cluster) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *Cluster) GetLastHeartbeat() *timestamppb.Timestamp {
	if x != nil {
		return x.LastHeartbeat
	}
	return nil
}

func (x *Cluster) GetRegisteredAt() *timestamppb.Timestamp {
	if x != nil {
		return x.RegisteredAt
	}
	return nil
}

func (x *Cluster) GetTls() *TLSMaterial {
	if x != nil {
		return x.Tls
	}
	return nil
}

type SpawnAgentRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AgentId        string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Model          string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	Labels         map[string]string      `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	TimeoutSeconds int32                  `protobuf:"varint,4,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	GpuEnabled     bool                   `protobuf:"varint,5,opt,name=gpu_enabled,json=gpuEnabled,proto3" json:"gpu_enabled,omitempty"`
	GpuType        string                 `protobuf:"bytes,6,opt,name=gpu_type,json=gpuType,proto3" json:"gpu_type,omitempty"`
	EnvVars        map[string]string      `protobuf:"bytes,7,rep,name=env_vars,json=envVars,proto3" json:"env_vars,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SpawnAgentRequest) Reset() {
	*x = SpawnAgentRequest{}
	mi := &file_federation_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpawnAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpawnAgentRequest) ProtoMessage() {}

func (x *SpawnAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpawnAgentRequest.ProtoReflect.Descriptor instead.
func (*SpawnAgentRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{4}
}

func (x *SpawnAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *SpawnAgentRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *SpawnAgentRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *SpawnAgentRequest) GetTimeoutSeconds() int32 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

func (x *SpawnAgentRequest) GetGpuEnabled() bool {
	if x != nil {
		return x.GpuEnabled
	}
	return false
}

func (x *SpawnAgentRequest) GetGpuType() string {
	if x != nil {
		return x.GpuType
	}
	return ""
}

func (x *SpawnAgentRequest) GetEnvVars() map[string]string {
	if x != nil {
		return x.EnvVars
	}
	return nil
}

type SpawnAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ClusterId     string                 `protobuf:"bytes,2,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	Endpoint      string                 `protobuf:"bytes,3,opt,name=endpoint,proto3" json:"endpoint,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpawnAgentResponse) Reset() {
	*x = SpawnAgentResponse{}
	mi := &file_federation_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpawnAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpawnAgentResponse) ProtoMessage() {}

func (x *SpawnAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpawnAgentResponse.ProtoReflect.Descriptor instead.
func (*SpawnAgentResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{5}
}

func (x *SpawnAgentResponse) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *SpawnAgentResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *SpawnAgentResponse) GetEndpoint() string {
	if x != nil {
		return x.Endpoint
	}
	return ""
}

func (x *SpawnAgentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SpawnAgentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type KillAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Force         bool                   `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KillAgentRequest) Reset() {
	*x = KillAgentRequest{}
	mi := &file_federation_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KillAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KillAgentRequest) ProtoMessage() {}

func (x *KillAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KillAgentRequest.ProtoReflect.Descriptor instead.
func (*KillAgentRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{6}
}

func (x *KillAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *KillAgentRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type KillAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Error         string                 `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KillAgentResponse) Reset() {
	*x = KillAgentResponse{}
	mi := &file_federation_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KillAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KillAgentResponse) ProtoMessage() {}

func (x *KillAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KillAgentResponse.ProtoReflect.Descriptor instead.
func (*KillAgentResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{7}
}

func (x *KillAgentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *KillAgentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ExecuteCommandRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AgentId        string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Command        string                 `protobuf:"bytes,2,opt,name=command,proto3" json:"command,omitempty"`
	Env            map[string]string      `protobuf:"bytes,3,rep,name=env,proto3" json:"env,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	TimeoutSeconds int32                  `protobuf:"varint,4,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExecuteCommandRequest) Reset() {
	*x = ExecuteCommandRequest{}
	mi := &file_federation_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteCommandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteCommandRequest) ProtoMessage() {}

func (x *ExecuteCommandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteCommandRequest.ProtoReflect.Descriptor instead.
func (*ExecuteCommandRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{8}
}

func (x *ExecuteCommandRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ExecuteCommandRequest) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *ExecuteCommandRequest) GetEnv() map[string]string {
	if x != nil {
		return x.Env
	}
	return nil
}

func (x *ExecuteCommandRequest) GetTimeoutSeconds() int32 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

// One chunk of command output. The terminal chunk carries exit_code; a
// stream that ends without one is treated as failed by the receiver.
type ExecuteCommandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Output        string                 `protobuf:"bytes,1,opt,name=output,proto3" json:"output,omitempty"`
	IsError       bool                   `protobuf:"varint,2,opt,name=is_error,json=isError,proto3" json:"is_error,omitempty"`
	ExitCode      *int32                 `protobuf:"varint,3,opt,name=exit_code,json=exitCode,proto3,oneof" json:"exit_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteCommandResponse) Reset() {
	*x = ExecuteCommandResponse{}
	mi := &file_federation_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteCommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteCommandResponse) ProtoMessage() {}

func (x *ExecuteCommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteCommandResponse.ProtoReflect.Descriptor instead.
func (*ExecuteCommandResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{9}
}

func (x *ExecuteCommandResponse) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

func (x *ExecuteCommandResponse) GetIsError() bool {
	if x != nil {
		return x.IsError
	}
	return false
}

func (x *ExecuteCommandResponse) GetExitCode() int32 {
	if x != nil && x.ExitCode != nil {
		return *x.ExitCode
	}
	return 0
}

type GetAgentStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAgentStatusRequest) Reset() {
	*x = GetAgentStatusRequest{}
	mi := &file_federation_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAgentStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAgentStatusRequest) ProtoMessage() {}

func (x *GetAgentStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAgentStatusRequest.ProtoReflect.Descriptor instead.
func (*GetAgentStatusRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{10}
}

func (x *GetAgentStatusRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type GetAgentStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	LastActivity  *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=last_activity,json=lastActivity,proto3" json:"last_activity,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,4,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAgentStatusResponse) Reset() {
	*x = GetAgentStatusResponse{}
	mi := &file_federation_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAgentStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAgentStatusResponse) ProtoMessage() {}

func (x *GetAgentStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAgentStatusResponse.ProtoReflect.Descriptor instead.
func (*GetAgentStatusResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{11}
}

func (x *GetAgentStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetAgentStatusResponse) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *GetAgentStatusResponse) GetLastActivity() *timestamppb.Timestamp {
	if x != nil {
		return x.LastActivity
	}
	return nil
}

func (x *GetAgentStatusResponse) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type ListAgentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StatusFilter  string                 `protobuf:"bytes,1,opt,name=status_filter,json=statusFilter,proto3" json:"status_filter,omitempty"`
	LabelSelector map[string]string      `protobuf:"bytes,2,rep,name=label_selector,json=labelSelector,proto3" json:"label_selector,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAgentsRequest) Reset() {
	*x = ListAgentsRequest{}
	mi := &file_federation_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAgentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAgentsRequest) ProtoMessage() {}

func (x *ListAgentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAgentsRequest.ProtoReflect.Descriptor instead.
func (*ListAgentsRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{12}
}

func (x *ListAgentsRequest) GetStatusFilter() string {
	if x != nil {
		return x.StatusFilter
	}
	return ""
}

func (x *ListAgentsRequest) GetLabelSelector() map[string]string {
	if x != nil {
		return x.LabelSelector
	}
	return nil
}

type ListAgentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Agents        []*Agent               `protobuf:"bytes,1,rep,name=agents,proto3" json:"agents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAgentsResponse) Reset() {
	*x = ListAgentsResponse{}
	mi := &file_federation_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAgentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAgentsResponse) ProtoMessage() {}

func (x *ListAgentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAgentsResponse.ProtoReflect.Descriptor instead.
func (*ListAgentsResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{13}
}

func (x *ListAgentsResponse) GetAgents() []*Agent {
	if x != nil {
		return x.Agents
	}
	return nil
}

type HeartbeatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClusterId     string                 `protobuf:"bytes,1,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatRequest) Reset() {
	*x = HeartbeatRequest{}
	mi := &file_federation_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatRequest) ProtoMessage() {}

func (x *HeartbeatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatRequest.ProtoReflect.Descriptor instead.
func (*HeartbeatRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{14}
}

func (x *HeartbeatRequest) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *HeartbeatRequest) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

type HeartbeatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Capabilities  *ClusterCapabilities   `protobuf:"bytes,1,opt,name=capabilities,proto3" json:"capabilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatResponse) Reset() {
	*x = HeartbeatResponse{}
	mi := &file_federation_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatResponse) ProtoMessage() {}

func (x *HeartbeatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatResponse.ProtoReflect.Descriptor instead.
func (*HeartbeatResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{15}
}

func (x *HeartbeatResponse) GetCapabilities() *ClusterCapabilities {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

type EventSubscription struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClusterId     string                 `protobuf:"bytes,1,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	EventTypes    []string               `protobuf:"bytes,2,rep,name=event_types,json=eventTypes,proto3" json:"event_types,omitempty"`
	AgentIdFilter []string               `protobuf:"bytes,3,rep,name=agent_id_filter,json=agentIdFilter,proto3" json:"agent_id_filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EventSubscription) Reset() {
	*x = EventSubscription{}
	mi := &file_federation_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventSubscription) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventSubscription) ProtoMessage() {}

func (x *EventSubscription) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventSubscription.ProtoReflect.Descriptor instead.
func (*EventSubscription) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{16}
}

func (x *EventSubscription) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *EventSubscription) GetEventTypes() []string {
	if x != nil {
		return x.EventTypes
	}
	return nil
}

func (x *EventSubscription) GetAgentIdFilter() []string {
	if x != nil {
		return x.AgentIdFilter
	}
	return nil
}

type FederationEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	AgentId       string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ClusterId     string                 `protobuf:"bytes,3,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	Payload       map[string]string      `protobuf:"bytes,4,rep,name=payload,proto3" json:"payload,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	SourceCluster string                 `protobuf:"bytes,6,opt,name=source_cluster,json=sourceCluster,proto3" json:"source_cluster,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FederationEvent) Reset() {
	*x = FederationEvent{}
	mi := &file_federation_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FederationEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FederationEvent) ProtoMessage() {}

func (x *FederationEvent) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FederationEvent.ProtoReflect.Descriptor instead.
func (*FederationEvent) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{17}
}

func (x *FederationEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *FederationEvent) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *FederationEvent) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *FederationEvent) GetPayload() map[string]string {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *FederationEvent) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

func (x *FederationEvent) GetSourceCluster() string {
	if x != nil {
		return x.SourceCluster
	}
	return ""
}

type ExportAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	IncludeState  bool                   `protobuf:"varint,2,opt,name=include_state,json=includeState,proto3" json:"include_state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAgentRequest) Reset() {
	*x = ExportAgentRequest{}
	mi := &file_federation_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAgentRequest) ProtoMessage() {}

func (x *ExportAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAgentRequest.ProtoReflect.Descriptor instead.
func (*ExportAgentRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{18}
}

func (x *ExportAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ExportAgentRequest) GetIncludeState() bool {
	if x != nil {
		return x.IncludeState
	}
	return false
}

type ExportAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	AgentId       string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	StateData     []byte                 `protobuf:"bytes,3,opt,name=state_data,json=stateData,proto3" json:"state_data,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,4,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAgentResponse) Reset() {
	*x = ExportAgentResponse{}
	mi := &file_federation_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAgentResponse) ProtoMessage() {}

func (x *ExportAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAgentResponse.ProtoReflect.Descriptor instead.
func (*ExportAgentResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{19}
}

func (x *ExportAgentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ExportAgentResponse) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ExportAgentResponse) GetStateData() []byte {
	if x != nil {
		return x.StateData
	}
	return nil
}

func (x *ExportAgentResponse) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *ExportAgentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ImportAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	StateData     []byte                 `protobuf:"bytes,2,opt,name=state_data,json=stateData,proto3" json:"state_data,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,3,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	TargetCluster string                 `protobuf:"bytes,4,opt,name=target_cluster,json=targetCluster,proto3" json:"target_cluster,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportAgentRequest) Reset() {
	*x = ImportAgentRequest{}
	mi := &file_federation_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportAgentRequest) ProtoMessage() {}

func (x *ImportAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportAgentRequest.ProtoReflect.Descriptor instead.
func (*ImportAgentRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{20}
}

func (x *ImportAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ImportAgentRequest) GetStateData() []byte {
	if x != nil {
		return x.StateData
	}
	return nil
}

func (x *ImportAgentRequest) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *ImportAgentRequest) GetTargetCluster() string {
	if x != nil {
		return x.TargetCluster
	}
	return ""
}

type ImportAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	AgentId       string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ClusterId     string                 `protobuf:"bytes,3,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportAgentResponse) Reset() {
	*x = ImportAgentResponse{}
	mi := &file_federation_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportAgentResponse) ProtoMessage() {}

func (x *ImportAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportAgentResponse.ProtoReflect.Descriptor instead.
func (*ImportAgentResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{21}
}

func (x *ImportAgentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ImportAgentResponse) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ImportAgentResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *ImportAgentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type SpawnRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Model          string                 `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	Labels         map[string]string      `protobuf:"bytes,2,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	RequiresGpu    bool                   `protobuf:"varint,3,opt,name=requires_gpu,json=requiresGpu,proto3" json:"requires_gpu,omitempty"`
	GpuType        string                 `protobuf:"bytes,4,opt,name=gpu_type,json=gpuType,proto3" json:"gpu_type,omitempty"`
	PreferLocal    bool                   `protobuf:"varint,5,opt,name=prefer_local,json=preferLocal,proto3" json:"prefer_local,omitempty"`
	Priority       string                 `protobuf:"bytes,6,opt,name=priority,proto3" json:"priority,omitempty"` // latency|cost|availability|gpu
	TimeoutSeconds int32                  `protobuf:"varint,7,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	EnvVars        map[string]string      `protobuf:"bytes,8,rep,name=env_vars,json=envVars,proto3" json:"env_vars,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SpawnRequest) Reset() {
	*x = SpawnRequest{}
	mi := &file_federation_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpawnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpawnRequest) ProtoMessage() {}

func (x *SpawnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpawnRequest.ProtoReflect.Descriptor instead.
func (*SpawnRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{22}
}

func (x *SpawnRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *SpawnRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *SpawnRequest) GetRequiresGpu() bool {
	if x != nil {
		return x.RequiresGpu
	}
	return false
}

func (x *SpawnRequest) GetGpuType() string {
	if x != nil {
		return x.GpuType
	}
	return ""
}

func (x *SpawnRequest) GetPreferLocal() bool {
	if x != nil {
		return x.PreferLocal
	}
	return false
}

func (x *SpawnRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *SpawnRequest) GetTimeoutSeconds() int32 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

func (x *SpawnRequest) GetEnvVars() map[string]string {
	if x != nil {
		return x.EnvVars
	}
	return nil
}

type SpawnResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Agent         *Agent                 `protobuf:"bytes,1,opt,name=agent,proto3" json:"agent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpawnResponse) Reset() {
	*x = SpawnResponse{}
	mi := &file_federation_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpawnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpawnResponse) ProtoMessage() {}

func (x *SpawnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpawnResponse.ProtoReflect.Descriptor instead.
func (*SpawnResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{23}
}

func (x *SpawnResponse) GetAgent() *Agent {
	if x != nil {
		return x.Agent
	}
	return nil
}

type KillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Force         bool                   `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KillRequest) Reset() {
	*x = KillRequest{}
	mi := &file_federation_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KillRequest) ProtoMessage() {}

func (x *KillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KillRequest.ProtoReflect.Descriptor instead.
func (*KillRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{24}
}

func (x *KillRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *KillRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type KillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KillResponse) Reset() {
	*x = KillResponse{}
	mi := &file_federation_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KillResponse) ProtoMessage() {}

func (x *KillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KillResponse.ProtoReflect.Descriptor instead.
func (*KillResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{25}
}

func (x *KillResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type ExecRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AgentId        string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Command        string                 `protobuf:"bytes,2,opt,name=command,proto3" json:"command,omitempty"`
	Env            map[string]string      `protobuf:"bytes,3,rep,name=env,proto3" json:"env,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	TimeoutSeconds int32                  `protobuf:"varint,4,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExecRequest) Reset() {
	*x = ExecRequest{}
	mi := &file_federation_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecRequest) ProtoMessage() {}

func (x *ExecRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecRequest.ProtoReflect.Descriptor instead.
func (*ExecRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{26}
}

func (x *ExecRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ExecRequest) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *ExecRequest) GetEnv() map[string]string {
	if x != nil {
		return x.Env
	}
	return nil
}

func (x *ExecRequest) GetTimeoutSeconds() int32 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

type AgentStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentStatusRequest) Reset() {
	*x = AgentStatusRequest{}
	mi := &file_federation_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentStatusRequest) ProtoMessage() {}

func (x *AgentStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentStatusRequest.ProtoReflect.Descriptor instead.
func (*AgentStatusRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{27}
}

func (x *AgentStatusRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type AgentStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	ClusterId     string                 `protobuf:"bytes,2,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	LastActivity  *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=last_activity,json=lastActivity,proto3" json:"last_activity,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,5,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentStatusResponse) Reset() {
	*x = AgentStatusResponse{}
	mi := &file_federation_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentStatusResponse) ProtoMessage() {}

func (x *AgentStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentStatusResponse.ProtoReflect.Descriptor instead.
func (*AgentStatusResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{28}
}

func (x *AgentStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AgentStatusResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *AgentStatusResponse) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *AgentStatusResponse) GetLastActivity() *timestamppb.Timestamp {
	if x != nil {
		return x.LastActivity
	}
	return nil
}

func (x *AgentStatusResponse) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

// ProxyListResponse tags every agent with its owning cluster and reports
// clusters whose listing failed as warnings instead of failing the call.
type ProxyListResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Agents        []*Agent               `protobuf:"bytes,1,rep,name=agents,proto3" json:"agents,omitempty"`
	Warnings      []string               `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProxyListResponse) Reset() {
	*x = ProxyListResponse{}
	mi := &file_federation_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProxyListResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProxyListResponse) ProtoMessage() {}

func (x *ProxyListResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProxyListResponse.ProtoReflect.Descriptor instead.
func (*ProxyListResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{29}
}

func (x *ProxyListResponse) GetAgents() []*Agent {
	if x != nil {
		return x.Agents
	}
	return nil
}

func (x *ProxyListResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type MigrateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	FromCluster   string                 `protobuf:"bytes,2,opt,name=from_cluster,json=fromCluster,proto3" json:"from_cluster,omitempty"`
	ToCluster     string                 `protobuf:"bytes,3,opt,name=to_cluster,json=toCluster,proto3" json:"to_cluster,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MigrateRequest) Reset() {
	*x = MigrateRequest{}
	mi := &file_federation_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MigrateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MigrateRequest) ProtoMessage() {}

func (x *MigrateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MigrateRequest.ProtoReflect.Descriptor instead.
func (*MigrateRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{30}
}

func (x *MigrateRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *MigrateRequest) GetFromCluster() string {
	if x != nil {
		return x.FromCluster
	}
	return ""
}

func (x *MigrateRequest) GetToCluster() string {
	if x != nil {
		return x.ToCluster
	}
	return ""
}

type MigrateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	AgentId       string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ClusterId     string                 `protobuf:"bytes,3,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MigrateResponse) Reset() {
	*x = MigrateResponse{}
	mi := &file_federation_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MigrateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MigrateResponse) ProtoMessage() {}

func (x *MigrateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MigrateResponse.ProtoReflect.Descriptor instead.
func (*MigrateResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{31}
}

func (x *MigrateResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *MigrateResponse) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *MigrateResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

type RegisterClusterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cluster       *Cluster               `protobuf:"bytes,1,opt,name=cluster,proto3" json:"cluster,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterClusterRequest) Reset() {
	*x = RegisterClusterRequest{}
	mi := &file_federation_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterClusterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterClusterRequest) ProtoMessage() {}

func (x *RegisterClusterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterClusterRequest.ProtoReflect.Descriptor instead.
func (*RegisterClusterRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{32}
}

func (x *RegisterClusterRequest) GetCluster() *Cluster {
	if x != nil {
		return x.Cluster
	}
	return nil
}

type RegisterClusterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClusterId     string                 `protobuf:"bytes,1,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterClusterResponse) Reset() {
	*x = RegisterClusterResponse{}
	mi := &file_federation_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterClusterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterClusterResponse) ProtoMessage() {}

func (x *RegisterClusterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterClusterResponse.ProtoReflect.Descriptor instead.
func (*RegisterClusterResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{33}
}

func (x *RegisterClusterResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

type UnregisterClusterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClusterId     string                 `protobuf:"bytes,1,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnregisterClusterRequest) Reset() {
	*x = UnregisterClusterRequest{}
	mi := &file_federation_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnregisterClusterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnregisterClusterRequest) ProtoMessage() {}

func (x *UnregisterClusterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnregisterClusterRequest.ProtoReflect.Descriptor instead.
func (*UnregisterClusterRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{34}
}

func (x *UnregisterClusterRequest) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

type UnregisterClusterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnregisterClusterResponse) Reset() {
	*x = UnregisterClusterResponse{}
	mi := &file_federation_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnregisterClusterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnregisterClusterResponse) ProtoMessage() {}

func (x *UnregisterClusterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnregisterClusterResponse.ProtoReflect.Descriptor instead.
func (*UnregisterClusterResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{35}
}

func (x *UnregisterClusterResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetClusterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClusterId     string                 `protobuf:"bytes,1,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClusterRequest) Reset() {
	*x = GetClusterRequest{}
	mi := &file_federation_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClusterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClusterRequest) ProtoMessage() {}

func (x *GetClusterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClusterRequest.ProtoReflect.Descriptor instead.
func (*GetClusterRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{36}
}

func (x *GetClusterRequest) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

type GetClusterResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Cluster             *Cluster               `protobuf:"bytes,1,opt,name=cluster,proto3" json:"cluster,omitempty"`
	HealthStatus        string                 `protobuf:"bytes,2,opt,name=health_status,json=healthStatus,proto3" json:"health_status,omitempty"`
	ConsecutiveFailures int32                  `protobuf:"varint,3,opt,name=consecutive_failures,json=consecutiveFailures,proto3" json:"consecutive_failures,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GetClusterResponse) Reset() {
	*x = GetClusterResponse{}
	mi := &file_federation_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClusterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClusterResponse) ProtoMessage() {}

func (x *GetClusterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClusterResponse.ProtoReflect.Descriptor instead.
func (*GetClusterResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{37}
}

func (x *GetClusterResponse) GetCluster() *Cluster {
	if x != nil {
		return x.Cluster
	}
	return nil
}

func (x *GetClusterResponse) GetHealthStatus() string {
	if x != nil {
		return x.HealthStatus
	}
	return ""
}

func (x *GetClusterResponse) GetConsecutiveFailures() int32 {
	if x != nil {
		return x.ConsecutiveFailures
	}
	return 0
}

type ListClustersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Region        string                 `protobuf:"bytes,1,opt,name=region,proto3" json:"region,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClustersRequest) Reset() {
	*x = ListClustersRequest{}
	mi := &file_federation_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClustersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClustersRequest) ProtoMessage() {}

func (x *ListClustersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClustersRequest.ProtoReflect.Descriptor instead.
func (*ListClustersRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{38}
}

func (x *ListClustersRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *ListClustersRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListClustersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Clusters      []*Cluster             `protobuf:"bytes,1,rep,name=clusters,proto3" json:"clusters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClustersResponse) Reset() {
	*x = ListClustersResponse{}
	mi := &file_federation_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClustersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClustersResponse) ProtoMessage() {}

func (x *ListClustersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClustersResponse.ProtoReflect.Descriptor instead.
func (*ListClustersResponse) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{39}
}

func (x *ListClustersResponse) GetClusters() []*Cluster {
	if x != nil {
		return x.Clusters
	}
	return nil
}

type WatchEventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventTypes    []string               `protobuf:"bytes,1,rep,name=event_types,json=eventTypes,proto3" json:"event_types,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchEventsRequest) Reset() {
	*x = WatchEventsRequest{}
	mi := &file_federation_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchEventsRequest) ProtoMessage() {}

func (x *WatchEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchEventsRequest.ProtoReflect.Descriptor instead.
func (*WatchEventsRequest) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{40}
}

func (x *WatchEventsRequest) GetEventTypes() []string {
	if x != nil {
		return x.EventTypes
	}
	return nil
}

type Event struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventId       string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,5,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_federation_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_federation_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_federation_proto_rawDescGZIP(), []int{41}
}

func (x *Event) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *Event) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Event) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Event) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

func (x *Event) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

var File_federation_proto protoreflect.FileDescriptor

const file_federation_proto_rawDesc = "" +
	"\n" +
	"\x10federation.proto\x12\x12loom.federation.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xa4\x02\n" +
	"\x05Agent\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x02 \x01(\tR\tclusterId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\x129\n" +
	"\n" +
	"started_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12=\n" +
	"\x06labels\x18\x06 \x03(\v2%.loom.federation.v1.Agent.LabelsEntryR\x06labels\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x89\x03\n" +
	"\x13ClusterCapabilities\x12\x1d\n" +
	"\n" +
	"max_agents\x18\x01 \x01(\x05R\tmaxAgents\x12)\n" +
	"\x10available_agents\x18\x02 \x01(\x05R\x0favailableAgents\x12#\n" +
	"\ractive_agents\x18\x03 \x01(\x05R\factiveAgents\x12\x1f\n" +
	"\vgpu_enabled\x18\x04 \x01(\bR\n" +
	"gpuEnabled\x12\x1b\n" +
	"\tgpu_types\x18\x05 \x03(\tR\bgpuTypes\x12\"\n" +
	"\rcost_per_hour\x18\x06 \x01(\x01R\vcostPerHour\x12\x1d\n" +
	"\n" +
	"latency_ms\x18\a \x01(\x01R\tlatencyMs\x12H\n" +
	"\x05flags\x18\b \x03(\v22.loom.federation.v1.ClusterCapabilities.FlagsEntryR\x05flags\x1a8\n" +
	"\n" +
	"FlagsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\bR\x05value:\x028\x01\"X\n" +
	"\vTLSMaterial\x12\x15\n" +
	"\x06ca_pem\x18\x01 \x01(\fR\x05caPem\x12\x19\n" +
	"\bcert_pem\x18\x02 \x01(\fR\acertPem\x12\x17\n" +
	"\akey_pem\x18\x03 \x01(\fR\x06keyPem\"\x90\x04\n" +
	"\aCluster\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x01 \x01(\tR\tclusterId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bendpoint\x18\x03 \x01(\tR\bendpoint\x12\x16\n" +
	"\x06region\x18\x04 \x01(\tR\x06region\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12K\n" +
	"\fcapabilities\x18\x06 \x01(\v2'.loom.federation.v1.ClusterCapabilitiesR\fcapabilities\x12E\n" +
	"\bmetadata\x18\a \x03(\v2).loom.federation.v1.Cluster.MetadataEntryR\bmetadata\x12A\n" +
	"\x0elast_heartbeat\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\rlastHeartbeat\x12?\n" +
	"\rregistered_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\fregisteredAt\x121\n" +
	"\x03tls\x18\n" +
	" \x01(\v2\x1f.loom.federation.v1.TLSMaterialR\x03tls\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xba\x03\n" +
	"\x11SpawnAgentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\x12I\n" +
	"\x06labels\x18\x03 \x03(\v21.loom.federation.v1.SpawnAgentRequest.LabelsEntryR\x06labels\x12'\n" +
	"\x0ftimeout_seconds\x18\x04 \x01(\x05R\x0etimeoutSeconds\x12\x1f\n" +
	"\vgpu_enabled\x18\x05 \x01(\bR\n" +
	"gpuEnabled\x12\x19\n" +
	"\bgpu_type\x18\x06 \x01(\tR\agpuType\x12M\n" +
	"\benv_vars\x18\a \x03(\v22.loom.federation.v1.SpawnAgentRequest.EnvVarsEntryR\aenvVars\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1a:\n" +
	"\fEnvVarsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x98\x01\n" +
	"\x12SpawnAgentResponse\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x02 \x01(\tR\tclusterId\x12\x1a\n" +
	"\bendpoint\x18\x03 \x01(\tR\bendpoint\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"C\n" +
	"\x10KillAgentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"C\n" +
	"\x11KillAgentResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\"\xf3\x01\n" +
	"\x15ExecuteCommandRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x18\n" +
	"\acommand\x18\x02 \x01(\tR\acommand\x12D\n" +
	"\x03env\x18\x03 \x03(\v22.loom.federation.v1.ExecuteCommandRequest.EnvEntryR\x03env\x12'\n" +
	"\x0ftimeout_seconds\x18\x04 \x01(\x05R\x0etimeoutSeconds\x1a6\n" +
	"\bEnvEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"{\n" +
	"\x16ExecuteCommandResponse\x12\x16\n" +
	"\x06output\x18\x01 \x01(\tR\x06output\x12\x19\n" +
	"\bis_error\x18\x02 \x01(\bR\aisError\x12 \n" +
	"\texit_code\x18\x03 \x01(\x05H\x00R\bexitCode\x88\x01\x01B\f\n" +
	"\n" +
	"_exit_code\"2\n" +
	"\x15GetAgentStatusRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"\xbf\x02\n" +
	"\x16GetAgentStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x129\n" +
	"\n" +
	"started_at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12?\n" +
	"\rlast_activity\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\flastActivity\x12T\n" +
	"\bmetadata\x18\x04 \x03(\v28.loom.federation.v1.GetAgentStatusResponse.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xdb\x01\n" +
	"\x11ListAgentsRequest\x12#\n" +
	"\rstatus_filter\x18\x01 \x01(\tR\fstatusFilter\x12_\n" +
	"\x0elabel_selector\x18\x02 \x03(\v28.loom.federation.v1.ListAgentsRequest.LabelSelectorEntryR\rlabelSelector\x1a@\n" +
	"\x12LabelSelectorEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"G\n" +
	"\x12ListAgentsResponse\x121\n" +
	"\x06agents\x18\x01 \x03(\v2\x19.loom.federation.v1.AgentR\x06agents\"k\n" +
	"\x10HeartbeatRequest\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x01 \x01(\tR\tclusterId\x128\n" +
	"\ttimestamp\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp\"`\n" +
	"\x11HeartbeatResponse\x12K\n" +
	"\fcapabilities\x18\x01 \x01(\v2'.loom.federation.v1.ClusterCapabilitiesR\fcapabilities\"{\n" +
	"\x11EventSubscription\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x01 \x01(\tR\tclusterId\x12\x1f\n" +
	"\vevent_types\x18\x02 \x03(\tR\n" +
	"eventTypes\x12&\n" +
	"\x0fagent_id_filter\x18\x03 \x03(\tR\ragentIdFilter\"\xc8\x02\n" +
	"\x0fFederationEvent\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x03 \x01(\tR\tclusterId\x12J\n" +
	"\apayload\x18\x04 \x03(\v20.loom.federation.v1.FederationEvent.PayloadEntryR\apayload\x128\n" +
	"\ttimestamp\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp\x12%\n" +
	"\x0esource_cluster\x18\x06 \x01(\tR\rsourceCluster\x1a:\n" +
	"\fPayloadEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"T\n" +
	"\x12ExportAgentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12#\n" +
	"\rinclude_state\x18\x02 \x01(\bR\fincludeState\"\x8f\x02\n" +
	"\x13ExportAgentResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"state_data\x18\x03 \x01(\fR\tstateData\x12Q\n" +
	"\bmetadata\x18\x04 \x03(\v25.loom.federation.v1.ExportAgentResponse.MetadataEntryR\bmetadata\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x84\x02\n" +
	"\x12ImportAgentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"state_data\x18\x02 \x01(\fR\tstateData\x12P\n" +
	"\bmetadata\x18\x03 \x03(\v24.loom.federation.v1.ImportAgentRequest.MetadataEntryR\bmetadata\x12%\n" +
	"\x0etarget_cluster\x18\x04 \x01(\tR\rtargetCluster\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x7f\n" +
	"\x13ImportAgentResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x03 \x01(\tR\tclusterId\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"\xd1\x03\n" +
	"\fSpawnRequest\x12\x14\n" +
	"\x05model\x18\x01 \x01(\tR\x05model\x12D\n" +
	"\x06labels\x18\x02 \x03(\v2,.loom.federation.v1.SpawnRequest.LabelsEntryR\x06labels\x12!\n" +
	"\frequires_gpu\x18\x03 \x01(\bR\vrequiresGpu\x12\x19\n" +
	"\bgpu_type\x18\x04 \x01(\tR\agpuType\x12!\n" +
	"\fprefer_local\x18\x05 \x01(\bR\vpreferLocal\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\tR\bpriority\x12'\n" +
	"\x0ftimeout_seconds\x18\a \x01(\x05R\x0etimeoutSeconds\x12H\n" +
	"\benv_vars\x18\b \x03(\v2-.loom.federation.v1.SpawnRequest.EnvVarsEntryR\aenvVars\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1a:\n" +
	"\fEnvVarsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"@\n" +
	"\rSpawnResponse\x12/\n" +
	"\x05agent\x18\x01 \x01(\v2\x19.loom.federation.v1.AgentR\x05agent\">\n" +
	"\vKillRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"(\n" +
	"\fKillResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"\xdf\x01\n" +
	"\vExecRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x18\n" +
	"\acommand\x18\x02 \x01(\tR\acommand\x12:\n" +
	"\x03env\x18\x03 \x03(\v2(.loom.federation.v1.ExecRequest.EnvEntryR\x03env\x12'\n" +
	"\x0ftimeout_seconds\x18\x04 \x01(\x05R\x0etimeoutSeconds\x1a6\n" +
	"\bEnvEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"/\n" +
	"\x12AgentStatusRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"\xd8\x02\n" +
	"\x13AgentStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x02 \x01(\tR\tclusterId\x129\n" +
	"\n" +
	"started_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12?\n" +
	"\rlast_activity\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\flastActivity\x12Q\n" +
	"\bmetadata\x18\x05 \x03(\v25.loom.federation.v1.AgentStatusResponse.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"b\n" +
	"\x11ProxyListResponse\x121\n" +
	"\x06agents\x18\x01 \x03(\v2\x19.loom.federation.v1.AgentR\x06agents\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings\"m\n" +
	"\x0eMigrateRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12!\n" +
	"\ffrom_cluster\x18\x02 \x01(\tR\vfromCluster\x12\x1d\n" +
	"\n" +
	"to_cluster\x18\x03 \x01(\tR\ttoCluster\"e\n" +
	"\x0fMigrateResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x03 \x01(\tR\tclusterId\"O\n" +
	"\x16RegisterClusterRequest\x125\n" +
	"\acluster\x18\x01 \x01(\v2\x1b.loom.federation.v1.ClusterR\acluster\"8\n" +
	"\x17RegisterClusterResponse\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x01 \x01(\tR\tclusterId\"9\n" +
	"\x18UnregisterClusterRequest\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x01 \x01(\tR\tclusterId\"5\n" +
	"\x19UnregisterClusterResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"2\n" +
	"\x11GetClusterRequest\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x01 \x01(\tR\tclusterId\"\xa3\x01\n" +
	"\x12GetClusterResponse\x125\n" +
	"\acluster\x18\x01 \x01(\v2\x1b.loom.federation.v1.ClusterR\acluster\x12#\n" +
	"\rhealth_status\x18\x02 \x01(\tR\fhealthStatus\x121\n" +
	"\x14consecutive_failures\x18\x03 \x01(\x05R\x13consecutiveFailures\"E\n" +
	"\x13ListClustersRequest\x12\x16\n" +
	"\x06region\x18\x01 \x01(\tR\x06region\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"O\n" +
	"\x14ListClustersResponse\x127\n" +
	"\bclusters\x18\x01 \x03(\v2\x1b.loom.federation.v1.ClusterR\bclusters\"5\n" +
	"\x12WatchEventsRequest\x12\x1f\n" +
	"\vevent_types\x18\x01 \x03(\tR\n" +
	"eventTypes\"\x8c\x02\n" +
	"\x05Event\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x128\n" +
	"\ttimestamp\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp\x12C\n" +
	"\bmetadata\x18\x05 \x03(\v2'.loom.federation.v1.Event.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x012\xee\x06\n" +
	"\n" +
	"Federation\x12[\n" +
	"\n" +
	"SpawnAgent\x12%.loom.federation.v1.SpawnAgentRequest\x1a&.loom.federation.v1.SpawnAgentResponse\x12X\n" +
	"\tKillAgent\x12$.loom.federation.v1.KillAgentRequest\x1a%.loom.federation.v1.KillAgentResponse\x12i\n" +
	"\x0eExecuteCommand\x12).loom.federation.v1.ExecuteCommandRequest\x1a*.loom.federation.v1.ExecuteCommandResponse0\x01\x12g\n" +
	"\x0eGetAgentStatus\x12).loom.federation.v1.GetAgentStatusRequest\x1a*.loom.federation.v1.GetAgentStatusResponse\x12[\n" +
	"\n" +
	"ListAgents\x12%.loom.federation.v1.ListAgentsRequest\x1a&.loom.federation.v1.ListAgentsResponse\x12X\n" +
	"\tHeartbeat\x12$.loom.federation.v1.HeartbeatRequest\x1a%.loom.federation.v1.HeartbeatResponse\x12^\n" +
	"\fStreamEvents\x12%.loom.federation.v1.EventSubscription\x1a#.loom.federation.v1.FederationEvent(\x010\x01\x12^\n" +
	"\vExportAgent\x12&.loom.federation.v1.ExportAgentRequest\x1a'.loom.federation.v1.ExportAgentResponse\x12^\n" +
	"\vImportAgent\x12&.loom.federation.v1.ImportAgentRequest\x1a'.loom.federation.v1.ImportAgentResponse2\x92\b\n" +
	"\aLoomAPI\x12Q\n" +
	"\n" +
	"SpawnAgent\x12 .loom.federation.v1.SpawnRequest\x1a!.loom.federation.v1.SpawnResponse\x12N\n" +
	"\tKillAgent\x12\x1f.loom.federation.v1.KillRequest\x1a .loom.federation.v1.KillResponse\x12Z\n" +
	"\tExecAgent\x12\x1f.loom.federation.v1.ExecRequest\x1a*.loom.federation.v1.ExecuteCommandResponse0\x01\x12a\n" +
	"\x0eGetAgentStatus\x12&.loom.federation.v1.AgentStatusRequest\x1a'.loom.federation.v1.AgentStatusResponse\x12Z\n" +
	"\n" +
	"ListAgents\x12%.loom.federation.v1.ListAgentsRequest\x1a%.loom.federation.v1.ProxyListResponse\x12W\n" +
	"\fMigrateAgent\x12\".loom.federation.v1.MigrateRequest\x1a#.loom.federation.v1.MigrateResponse\x12j\n" +
	"\x0fRegisterCluster\x12*.loom.federation.v1.RegisterClusterRequest\x1a+.loom.federation.v1.RegisterClusterResponse\x12p\n" +
	"\x11UnregisterCluster\x12,.loom.federation.v1.UnregisterClusterRequest\x1a-.loom.federation.v1.UnregisterClusterResponse\x12[\n" +
	"\n" +
	"GetCluster\x12%.loom.federation.v1.GetClusterRequest\x1a&.loom.federation.v1.GetClusterResponse\x12a\n" +
	"\fListClusters\x12'.loom.federation.v1.ListClustersRequest\x1a(.loom.federation.v1.ListClustersResponse\x12R\n" +
	"\vWatchEvents\x12&.loom.federation.v1.WatchEventsRequest\x1a\x19.loom.federation.v1.Event0\x01B#Z!github.com/loomctl/loom/api/protob\x06proto3"

var (
	file_federation_proto_rawDescOnce sync.Once
	file_federation_proto_rawDescData []byte
)

func file_federation_proto_rawDescGZIP() []byte {
	file_federation_proto_rawDescOnce.Do(func() {
		file_federation_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_federation_proto_rawDesc), len(file_federation_proto_rawDesc)))
	})
	return file_federation_proto_rawDescData
}

var file_federation_proto_msgTypes = make([]protoimpl.MessageInfo, 58)
var file_federation_proto_goTypes = []any{
	(*Agent)(nil),                     // 0: loom.federation.v1.Agent
	(*ClusterCapabilities)(nil),       // 1: loom.federation.v1.ClusterCapabilities
	(*TLSMaterial)(nil),               // 2: loom.federation.v1.TLSMaterial
	(*Cluster)(nil),                   // 3: loom.federation.v1.Cluster
	(*SpawnAgentRequest)(nil),         // 4: loom.federation.v1.SpawnAgentRequest
	(*SpawnAgentResponse)(nil),        // 5: loom.federation.v1.SpawnAgentResponse
	(*KillAgentRequest)(nil),          // 6: loom.federation.v1.KillAgentRequest
	(*KillAgentResponse)(nil),         // 7: loom.federation.v1.KillAgentResponse
	(*ExecuteCommandRequest)(nil),     // 8: loom.federation.v1.ExecuteCommandRequest
	(*ExecuteCommandResponse)(nil),    // 9: loom.federation.v1.ExecuteCommandResponse
	(*GetAgentStatusRequest)(nil),     // 10: loom.federation.v1.GetAgentStatusRequest
	(*GetAgentStatusResponse)(nil),    // 11: loom.federation.v1.GetAgentStatusResponse
	(*ListAgentsRequest)(nil),         // 12: loom.federation.v1.ListAgentsRequest
	(*ListAgentsResponse)(nil),        // 13: loom.federation.v1.ListAgentsResponse
	(*HeartbeatRequest)(nil),          // 14: loom.federation.v1.HeartbeatRequest
	(*HeartbeatResponse)(nil),         // 15: loom.federation.v1.HeartbeatResponse
	(*EventSubscription)(nil),         // 16: loom.federation.v1.EventSubscription
	(*FederationEvent)(nil),           // 17: loom.federation.v1.FederationEvent
	(*ExportAgentRequest)(nil),        // 18: loom.federation.v1.ExportAgentRequest
	(*ExportAgentResponse)(nil),       // 19: loom.federation.v1.ExportAgentResponse
	(*ImportAgentRequest)(nil),        // 20: loom.federation.v1.ImportAgentRequest
	(*ImportAgentResponse)(nil),       // 21: loom.federation.v1.ImportAgentResponse
	(*SpawnRequest)(nil),              // 22: loom.federation.v1.SpawnRequest
	(*SpawnResponse)(nil),             // 23: loom.federation.v1.SpawnResponse
	(*KillRequest)(nil),               // 24: loom.federation.v1.KillRequest
	(*KillResponse)(nil),              // 25: loom.federation.v1.KillResponse
	(*ExecRequest)(nil),               // 26: loom.federation.v1.ExecRequest
	(*AgentStatusRequest)(nil),        // 27: loom.federation.v1.AgentStatusRequest
	(*AgentStatusResponse)(nil),       // 28: loom.federation.v1.AgentStatusResponse
	(*ProxyListResponse)(nil),         // 29: loom.federation.v1.ProxyListResponse
	(*MigrateRequest)(nil),            // 30: loom.federation.v1.MigrateRequest
	(*MigrateResponse)(nil),           // 31: loom.federation.v1.MigrateResponse
	(*RegisterClusterRequest)(nil),    // 32: loom.federation.v1.RegisterClusterRequest
	(*RegisterClusterResponse)(nil),   // 33: loom.federation.v1.RegisterClusterResponse
	(*UnregisterClusterRequest)(nil),  // 34: loom.federation.v1.UnregisterClusterRequest
	(*UnregisterClusterResponse)(nil), // 35: loom.federation.v1.UnregisterClusterResponse
	(*GetClusterRequest)(nil),         // 36: loom.federation.v1.GetClusterRequest
	(*GetClusterResponse)(nil),        // 37: loom.federation.v1.GetClusterResponse
	(*ListClustersRequest)(nil),       // 38: loom.federation.v1.ListClustersRequest
	(*ListClustersResponse)(nil),      // 39: loom.federation.v1.ListClustersResponse
	(*WatchEventsRequest)(nil),        // 40: loom.federation.v1.WatchEventsRequest
	(*Event)(nil),                     // 41: loom.federation.v1.Event
	nil,                               // 42: loom.federation.v1.Agent.LabelsEntry
	nil,                               // 43: loom.federation.v1.ClusterCapabilities.FlagsEntry
	nil,                               // 44: loom.federation.v1.Cluster.MetadataEntry
	nil,                               // 45: loom.federation.v1.SpawnAgentRequest.LabelsEntry
	nil,                               // 46: loom.federation.v1.SpawnAgentRequest.EnvVarsEntry
	nil,                               // 47: loom.federation.v1.ExecuteCommandRequest.EnvEntry
	nil,                               // 48: loom.federation.v1.GetAgentStatusResponse.MetadataEntry
	nil,                               // 49: loom.federation.v1.ListAgentsRequest.LabelSelectorEntry
	nil,                               // 50: loom.federation.v1.FederationEvent.PayloadEntry
	nil,                               // 51: loom.federation.v1.ExportAgentResponse.MetadataEntry
	nil,                               // 52: loom.federation.v1.ImportAgentRequest.MetadataEntry
	nil,                               // 53: loom.federation.v1.SpawnRequest.LabelsEntry
	nil,                               // 54: loom.federation.v1.SpawnRequest.EnvVarsEntry
	nil,                               // 55: loom.federation.v1.ExecRequest.EnvEntry
	nil,                               // 56: loom.federation.v1.AgentStatusResponse.MetadataEntry
	nil,                               // 57: loom.federation.v1.Event.MetadataEntry
	(*timestamppb.Timestamp)(nil),     // 58: google.protobuf.Timestamp
}
var file_federation_proto_depIdxs = []int32{
	58, // 0: loom.federation.v1.Agent.started_at:type_name -> google.protobuf.Timestamp
	42, // 1: loom.federation.v1.Agent.labels:type_name -> loom.federation.v1.Agent.LabelsEntry
	43, // 2: loom.federation.v1.ClusterCapabilities.flags:type_name -> loom.federation.v1.ClusterCapabilities.FlagsEntry
	1,  // 3: loom.federation.v1.Cluster.capabilities:type_name -> loom.federation.v1.ClusterCapabilities
	44, // 4: loom.federation.v1.Cluster.metadata:type_name -> loom.federation.v1.Cluster.MetadataEntry
	58, // 5: loom.federation.v1.Cluster.last_heartbeat:type_name -> google.protobuf.Timestamp
	58, // 6: loom.federation.v1.Cluster.registered_at:type_name -> google.protobuf.Timestamp
	2,  // 7: loom.federation.v1.Cluster.tls:type_name -> loom.federation.v1.TLSMaterial
	45, // 8: loom.federation.v1.SpawnAgentRequest.labels:type_name -> loom.federation.v1.SpawnAgentRequest.LabelsEntry
	46, // 9: loom.federation.v1.SpawnAgentRequest.env_vars:type_name -> loom.federation.v1.SpawnAgentRequest.EnvVarsEntry
	47, // 10: loom.federation.v1.ExecuteCommandRequest.env:type_name -> loom.federation.v1.ExecuteCommandRequest.EnvEntry
	58, // 11: loom.federation.v1.GetAgentStatusResponse.started_at:type_name -> google.protobuf.Timestamp
	58, // 12: loom.federation.v1.GetAgentStatusResponse.last_activity:type_name -> google.protobuf.Timestamp
	48, // 13: loom.federation.v1.GetAgentStatusResponse.metadata:type_name -> loom.federation.v1.GetAgentStatusResponse.MetadataEntry
	49, // 14: loom.federation.v1.ListAgentsRequest.label_selector:type_name -> loom.federation.v1.ListAgentsRequest.LabelSelectorEntry
	0,  // 15: loom.federation.v1.ListAgentsResponse.agents:type_name -> loom.federation.v1.Agent
	58, // 16: loom.federation.v1.HeartbeatRequest.timestamp:type_name -> google.protobuf.Timestamp
	1,  // 17: loom.federation.v1.HeartbeatResponse.capabilities:type_name -> loom.federation.v1.ClusterCapabilities
	50, // 18: loom.federation.v1.FederationEvent.payload:type_name -> loom.federation.v1.FederationEvent.PayloadEntry
	58, // 19: loom.federation.v1.FederationEvent.timestamp:type_name -> google.protobuf.Timestamp
	51, // 20: loom.federation.v1.ExportAgentResponse.metadata:type_name -> loom.federation.v1.ExportAgentResponse.MetadataEntry
	52, // 21: loom.federation.v1.ImportAgentRequest.metadata:type_name -> loom.federation.v1.ImportAgentRequest.MetadataEntry
	53, // 22: loom.federation.v1.SpawnRequest.labels:type_name -> loom.federation.v1.SpawnRequest.LabelsEntry
	54, // 23: loom.federation.v1.SpawnRequest.env_vars:type_name -> loom.federation.v1.SpawnRequest.EnvVarsEntry
	0,  // 24: loom.federation.v1.SpawnResponse.agent:type_name -> loom.federation.v1.Agent
	55, // 25: loom.federation.v1.ExecRequest.env:type_name -> loom.federation.v1.ExecRequest.EnvEntry
	58, // 26: loom.federation.v1.AgentStatusResponse.started_at:type_name -> google.protobuf.Timestamp
	58, // 27: loom.federation.v1.AgentStatusResponse.last_activity:type_name -> google.protobuf.Timestamp
	56, // 28: loom.federation.v1.AgentStatusResponse.metadata:type_name -> loom.federation.v1.AgentStatusResponse.MetadataEntry
	0,  // 29: loom.federation.v1.ProxyListResponse.agents:type_name -> loom.federation.v1.Agent
	3,  // 30: loom.federation.v1.RegisterClusterRequest.cluster:type_name -> loom.federation.v1.Cluster
	3,  // 31: loom.federation.v1.GetClusterResponse.cluster:type_name -> loom.federation.v1.Cluster
	3,  // 32: loom.federation.v1.ListClustersResponse.clusters:type_name -> loom.federation.v1.Cluster
	58, // 33: loom.federation.v1.Event.timestamp:type_name -> google.protobuf.Timestamp
	57, // 34: loom.federation.v1.Event.metadata:type_name -> loom.federation.v1.Event.MetadataEntry
	4,  // 35: loom.federation.v1.Federation.SpawnAgent:input_type -> loom.federation.v1.SpawnAgentRequest
	6,  // 36: loom.federation.v1.Federation.KillAgent:input_type -> loom.federation.v1.KillAgentRequest
	8,  // 37: loom.federation.v1.Federation.ExecuteCommand:input_type -> loom.federation.v1.ExecuteCommandRequest
	10, // 38: loom.federation.v1.Federation.GetAgentStatus:input_type -> loom.federation.v1.GetAgentStatusRequest
	12, // 39: loom.federation.v1.Federation.ListAgents:input_type -> loom.federation.v1.ListAgentsRequest
	14, // 40: loom.federation.v1.Federation.Heartbeat:input_type -> loom.federation.v1.HeartbeatRequest
	16, // 41: loom.federation.v1.Federation.StreamEvents:input_type -> loom.federation.v1.EventSubscription
	18, // 42: loom.federation.v1.Federation.ExportAgent:input_type -> loom.federation.v1.ExportAgentRequest
	20, // 43: loom.federation.v1.Federation.ImportAgent:input_type -> loom.federation.v1.ImportAgentRequest
	22, // 44: loom.federation.v1.LoomAPI.SpawnAgent:input_type -> loom.federation.v1.SpawnRequest
	24, // 45: loom.federation.v1.LoomAPI.KillAgent:input_type -> loom.federation.v1.KillRequest
	26, // 46: loom.federation.v1.LoomAPI.ExecAgent:input_type -> loom.federation.v1.ExecRequest
	27, // 47: loom.federation.v1.LoomAPI.GetAgentStatus:input_type -> loom.federation.v1.AgentStatusRequest
	12, // 48: loom.federation.v1.LoomAPI.ListAgents:input_type -> loom.federation.v1.ListAgentsRequest
	30, // 49: loom.federation.v1.LoomAPI.MigrateAgent:input_type -> loom.federation.v1.MigrateRequest
	32, // 50: loom.federation.v1.LoomAPI.RegisterCluster:input_type -> loom.federation.v1.RegisterClusterRequest
	34, // 51: loom.federation.v1.LoomAPI.UnregisterCluster:input_type -> loom.federation.v1.UnregisterClusterRequest
	36, // 52: loom.federation.v1.LoomAPI.GetCluster:input_type -> loom.federation.v1.GetClusterRequest
	38, // 53: loom.federation.v1.LoomAPI.ListClusters:input_type -> loom.federation.v1.ListClustersRequest
	40, // 54: loom.federation.v1.LoomAPI.WatchEvents:input_type -> loom.federation.v1.WatchEventsRequest
	5,  // 55: loom.federation.v1.Federation.SpawnAgent:output_type -> loom.federation.v1.SpawnAgentResponse
	7,  // 56: loom.federation.v1.Federation.KillAgent:output_type -> loom.federation.v1.KillAgentResponse
	9,  // 57: loom.federation.v1.Federation.ExecuteCommand:output_type -> loom.federation.v1.ExecuteCommandResponse
	11, // 58: loom.federation.v1.Federation.GetAgentStatus:output_type -> loom.federation.v1.GetAgentStatusResponse
	13, // 59: loom.federation.v1.Federation.ListAgents:output_type -> loom.federation.v1.ListAgentsResponse
	15, // 60: loom.federation.v1.Federation.Heartbeat:output_type -> loom.federation.v1.HeartbeatResponse
	17, // 61: loom.federation.v1.Federation.StreamEvents:output_type -> loom.federation.v1.FederationEvent
	19, // 62: loom.federation.v1.Federation.ExportAgent:output_type -> loom.federation.v1.ExportAgentResponse
	21, // 63: loom.federation.v1.Federation.ImportAgent:output_type -> loom.federation.v1.ImportAgentResponse
	23, // 64: loom.federation.v1.LoomAPI.SpawnAgent:output_type -> loom.federation.v1.SpawnResponse
	25, // 65: loom.federation.v1.LoomAPI.KillAgent:output_type -> loom.federation.v1.KillResponse
	9,  // 66: loom.federation.v1.LoomAPI.ExecAgent:output_type -> loom.federation.v1.ExecuteCommandResponse
	28, // 67: loom.federation.v1.LoomAPI.GetAgentStatus:output_type -> loom.federation.v1.AgentStatusResponse
	29, // 68: loom.federation.v1.LoomAPI.ListAgents:output_type -> loom.federation.v1.ProxyListResponse
	31, // 69: loom.federation.v1.LoomAPI.MigrateAgent:output_type -> loom.federation.v1.MigrateResponse
	33, // 70: loom.federation.v1.LoomAPI.RegisterCluster:output_type -> loom.federation.v1.RegisterClusterResponse
	35, // 71: loom.federation.v1.LoomAPI.UnregisterCluster:output_type -> loom.federation.v1.UnregisterClusterResponse
	37, // 72: loom.federation.v1.LoomAPI.GetCluster:output_type -> loom.federation.v1.GetClusterResponse
	39, // 73: loom.federation.v1.LoomAPI.ListClusters:output_type -> loom.federation.v1.ListClustersResponse
	41, // 74: loom.federation.v1.LoomAPI.WatchEvents:output_type -> loom.federation.v1.Event
	55, // [55:75] is the sub-list for method output_type
	35, // [35:55] is the sub-list for method input_type
	35, // [35:35] is the sub-list for extension type_name
	35, // [35:35] is the sub-list for extension extendee
	0,  // [0:35] is the sub-list for field type_name
}

func init() { file_federation_proto_init() }
func file_federation_proto_init() {
	if File_federation_proto != nil {
		return
	}
	file_federation_proto_msgTypes[9].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_federation_proto_rawDesc), len(file_federation_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   58,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_federation_proto_goTypes,
		DependencyIndexes: file_federation_proto_depIdxs,
		MessageInfos:      file_federation_proto_msgTypes,
	}.Build()
	File_federation_proto = out.File
	file_federation_proto_goTypes = nil
	file_federation_proto_depIdxs = nil
}
