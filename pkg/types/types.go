package types

import (
	"time"
)

// Cluster represents one remote backend registered with the federation
type Cluster struct {
	ID            string
	Name          string
	Endpoint      string
	Region        Region
	Status        ClusterStatus
	Capabilities  *ClusterCapabilities
	Metadata      map[string]string
	LastHeartbeat time.Time
	RegisteredAt  time.Time
	TLS           *TLSMaterial
}

// Region identifies where a cluster runs. RegionLocal is the synthetic
// region of the in-process runtime.
type Region string

const (
	RegionLocal       Region = "local"
	RegionUSEast      Region = "us-east"
	RegionUSWest      Region = "us-west"
	RegionEUWest      Region = "eu-west"
	RegionEUCentral   Region = "eu-central"
	RegionAPSouth     Region = "ap-south"
	RegionAPNortheast Region = "ap-northeast"
)

// ClusterStatus represents the current state of a cluster
type ClusterStatus string

const (
	ClusterStatusActive      ClusterStatus = "active"
	ClusterStatusDegraded    ClusterStatus = "degraded"
	ClusterStatusOffline     ClusterStatus = "offline"
	ClusterStatusMaintenance ClusterStatus = "maintenance"
)

// ClusterCapabilities tracks what a cluster can host right now.
// Invariant: ActiveAgents <= MaxAgents and AvailableAgents =
// MaxAgents - ActiveAgents unless the cluster reports otherwise.
type ClusterCapabilities struct {
	MaxAgents       int
	AvailableAgents int
	ActiveAgents    int
	GPUEnabled      bool
	GPUTypes        []string
	CostPerHour     float64
	LatencyMs       float64
	Flags           map[string]bool
}

// TLSMaterial carries optional PEM-encoded credentials for a cluster dial
type TLSMaterial struct {
	CAPEM   []byte
	CertPEM []byte
	KeyPEM  []byte
}

// ClusterHealth is the registry's per-cluster probe state
type ClusterHealth struct {
	Status               ClusterStatus
	LastHeartbeat        time.Time
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	LatencyMs            float64
	Message              string
}

// Agent is a long-running worker process owned by exactly one backend.
// An empty ClusterID means the local runtime owns it.
type Agent struct {
	ID        string
	ClusterID string
	Status    AgentStatus
	Model     string
	StartedAt time.Time
	Labels    map[string]string
}

// AgentStatus represents the lifecycle state of an agent
type AgentStatus string

const (
	AgentStatusPending    AgentStatus = "pending"
	AgentStatusRunning    AgentStatus = "running"
	AgentStatusPaused     AgentStatus = "paused"
	AgentStatusCompleted  AgentStatus = "completed"
	AgentStatusFailed     AgentStatus = "failed"
	AgentStatusMigrating  AgentStatus = "migrating"
	AgentStatusTerminated AgentStatus = "terminated"
)

// AgentSnapshot is the transfer unit for migration: an exported agent's
// opaque state plus enough metadata to re-import it elsewhere.
type AgentSnapshot struct {
	AgentID       string
	State         []byte
	Metadata      map[string]string
	CreatedAt     time.Time
	SourceCluster string
}

// AgentStatusInfo is the result of a status query against any backend
type AgentStatusInfo struct {
	Status       AgentStatus
	StartedAt    time.Time
	LastActivity time.Time
	Metadata     map[string]string
}

// ExecChunk is one unit of streamed command output. The terminal chunk
// carries ExitCode; a stream without one is treated as failed.
type ExecChunk struct {
	Output   string
	IsError  bool
	ExitCode *int
}

// SpawnSpec is the backend-level spawn request sent to one cluster or to
// the local runtime
type SpawnSpec struct {
	AgentID        string
	Model          string
	Labels         map[string]string
	TimeoutSeconds int
	GPUEnabled     bool
	GPUType        string
	EnvVars        map[string]string
}

// SpawnConfig is the caller-level spawn request the balancer translates
// into selection criteria plus a SpawnSpec
type SpawnConfig struct {
	Model          string
	Labels         map[string]string
	RequiresGPU    bool
	GPUType        string
	PreferLocal    bool
	Priority       SelectionPriority
	TimeoutSeconds int
	EnvVars        map[string]string
}

// SelectionPriority picks the scoring axis for cluster selection
type SelectionPriority string

const (
	PriorityLatency      SelectionPriority = "latency"
	PriorityCost         SelectionPriority = "cost"
	PriorityAvailability SelectionPriority = "availability"
	PriorityGPU          SelectionPriority = "gpu"
)

// Criteria are the hard filters and scoring hints for cluster selection
type Criteria struct {
	Priority         SelectionPriority
	MinAgents        int
	RequiresGPU      bool
	GPUType          string
	MaxLatencyMs     float64
	MaxCostPerHour   float64
	PreferredRegions []Region
	ExcludedRegions  []Region
	RequiredFlags    []string
}

// Permission is one token from the closed permission set
type Permission string

const (
	PermissionReadAll       Permission = "read_all"
	PermissionReadAssigned  Permission = "read_assigned"
	PermissionWriteAll      Permission = "write_all"
	PermissionWriteAssigned Permission = "write_assigned"
	PermissionDelegateTasks Permission = "delegate_tasks"
	PermissionManageAgents  Permission = "manage_agents"
	PermissionComment       Permission = "comment"
	PermissionApprove       Permission = "approve"
	PermissionReject        Permission = "reject"
	PermissionReadMetrics   Permission = "read_metrics"
	PermissionReadLogs      Permission = "read_logs"
	PermissionSendAlerts    Permission = "send_alerts"
	PermissionGitOperations Permission = "git_operations"
)

// AllPermissions is the closed set role validation checks against
var AllPermissions = []Permission{
	PermissionReadAll, PermissionReadAssigned,
	PermissionWriteAll, PermissionWriteAssigned,
	PermissionDelegateTasks, PermissionManageAgents,
	PermissionComment, PermissionApprove, PermissionReject,
	PermissionReadMetrics, PermissionReadLogs, PermissionSendAlerts,
	PermissionGitOperations,
}

// Role is a named bundle of permissions, tools, and communication rights
type Role struct {
	ID                 string
	Name               string
	Description        string
	SystemPrompt       string
	Tools              []string
	Permissions        []Permission
	MaxIterations      int
	AutoSubmit         bool
	RequireApproval    bool
	CanMessage         []string
	BroadcastChannels  []string
	Provider           string
	Model              string
	CostBudget         float64
	TimeoutMs          int
	MaxConcurrentTasks int
	Priority           int
	Tags               []string
	Metadata           map[string]string
}

// RoleAssignment binds one agent to one role. An agent has at most one
// active assignment.
type RoleAssignment struct {
	AgentID    string
	RoleID     string
	TeamID     string
	WorktreeID string
	AssignedAt time.Time
	AssignedBy string
	ExpiresAt  *time.Time
}

// MessageType classifies agent-to-agent messages
type MessageType string

const (
	MessageTypeTask     MessageType = "task"
	MessageTypeStatus   MessageType = "status"
	MessageTypeResult   MessageType = "result"
	MessageTypeAlert    MessageType = "alert"
	MessageTypeQuery    MessageType = "query"
	MessageTypeFeedback MessageType = "feedback"
	MessageTypeMessage  MessageType = "message"
	MessageTypeSystem   MessageType = "system"
	MessageTypeError    MessageType = "error"
)

// MessagePriority orders message urgency
type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityNormal MessagePriority = "normal"
	PriorityHigh   MessagePriority = "high"
	PriorityUrgent MessagePriority = "urgent"
)

// BroadcastRecipient is the To value that fans a message out to every
// registered mailbox except the sender's.
const BroadcastRecipient = "broadcast"

// RolePrefix marks a To value addressed to every holder of a role,
// e.g. "role:reviewer".
const RolePrefix = "role:"

// AgentMessage is one mailbox entry. Immutable after creation except for
// Read/ReadAt.
type AgentMessage struct {
	ID         string
	From       string
	To         string
	SenderRole string
	Type       MessageType
	Content    string
	Payload    map[string]interface{}
	Timestamp  time.Time
	Priority   MessagePriority
	Read       bool
	ReadAt     *time.Time
	ReplyTo    string
	ThreadID   string
	ExpiresAt  *time.Time
}

// Expired reports whether the message's ExpiresAt has passed
func (m *AgentMessage) Expired(now time.Time) bool {
	return m.ExpiresAt != nil && !m.ExpiresAt.After(now)
}

// Complexity grades a subtask or a whole decomposition
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Subtask is one node of a decomposition DAG. Dependencies reference
// subtask ids inside the same decomposition only.
type Subtask struct {
	ID           string
	Title        string
	Description  string
	Dependencies []string
	Complexity   Complexity
	Files        []string
	Component    string
	Domain       string
}

// TaskStatus represents the workflow state of a persisted task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority orders persisted tasks
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

// TaskType classifies persisted tasks
type TaskType string

const (
	TaskTypeFeature  TaskType = "feature"
	TaskTypeBug      TaskType = "bug"
	TaskTypeResearch TaskType = "research"
	TaskTypeChore    TaskType = "chore"
)

// Task is the durable unit of work. DependsOn and Blocks are exact duals:
// t in u.DependsOn iff u in t.Blocks.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	DependsOn   []string     `json:"depends_on,omitempty"`
	Blocks      []string     `json:"blocks,omitempty"`
	Assignee    string       `json:"assignee,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Type        TaskType     `json:"type"`
	Tags        []string     `json:"tags,omitempty"`
	Branch      string       `json:"branch,omitempty"`
	Commits     []string     `json:"commits,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Sessions    []string     `json:"sessions,omitempty"`
}

// TaskListStatus represents the lifecycle of a task list
type TaskListStatus string

const (
	TaskListStatusActive    TaskListStatus = "active"
	TaskListStatusCompleted TaskListStatus = "completed"
	TaskListStatusArchived  TaskListStatus = "archived"
)

// TaskList is a named ordered set of task ids
type TaskList struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	TaskIDs   []string       `json:"task_ids"`
	Status    TaskListStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
