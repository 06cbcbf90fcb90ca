package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// ExecResult is the outcome of a local command execution
type ExecResult struct {
	Output   string
	ExitCode int
}

// Runtime is the local backend contract the balancer and proxy consume.
// Agents it produces carry an empty cluster id.
type Runtime interface {
	Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error)
	Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*ExecResult, error)
	Kill(ctx context.Context, agentID string, force bool) error
	List(ctx context.Context) ([]*types.Agent, error)
	Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, error)
	Close() error
}

// Config configures the process runtime
type Config struct {
	// MaxAgents caps concurrent local agents; 0 means unlimited
	MaxAgents int
	// WorkerCommand is the argv launched per agent. The spawn spec's model
	// and env vars are injected into the process environment.
	WorkerCommand []string
}

type localAgent struct {
	agent        *types.Agent
	cmd          *exec.Cmd
	done         chan struct{}
	exitErr      error
	lastActivity time.Time
}

// ProcessRuntime runs agents as host processes. It satisfies the same
// operation surface as a remote cluster so the balancer can treat it as
// just another backend.
type ProcessRuntime struct {
	cfg    Config
	agents map[string]*localAgent
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewProcessRuntime creates a process-backed local runtime
func NewProcessRuntime(cfg Config) *ProcessRuntime {
	if len(cfg.WorkerCommand) == 0 {
		cfg.WorkerCommand = []string{"sleep", "infinity"}
	}
	return &ProcessRuntime{
		cfg:    cfg,
		agents: make(map[string]*localAgent),
		logger: log.WithComponent("runtime"),
	}
}

// Spawn starts one agent process. Capacity exhaustion surfaces as
// LocalResourceExhausted, which the balancer treats like CapacityExceeded.
func (r *ProcessRuntime) Spawn(ctx context.Context, spec *types.SpawnSpec) (*types.Agent, error) {
	if spec.Model == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, spec.AgentID, "model must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.MaxAgents > 0 && len(r.agents) >= r.cfg.MaxAgents {
		return nil, errdefs.Wrapf(errdefs.ErrLocalResourceExhausted, "",
			"local runtime at capacity (%d agents)", r.cfg.MaxAgents)
	}

	agentID := spec.AgentID
	if agentID == "" {
		agentID = "agent-" + uuid.New().String()
	}
	if _, exists := r.agents[agentID]; exists {
		return nil, errdefs.Wrap(errdefs.ErrAgentAlreadyExists, agentID, "already running locally")
	}

	cmd := exec.Command(r.cfg.WorkerCommand[0], r.cfg.WorkerCommand[1:]...)
	cmd.Env = append(cmd.Environ(),
		"LOOM_AGENT_ID="+agentID,
		"LOOM_MODEL="+spec.Model,
	)
	for k, v := range spec.EnvVars {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	if err := cmd.Start(); err != nil {
		return nil, errdefs.Wrapf(errdefs.ErrLocalResourceExhausted, agentID,
			"failed to start worker process: %v", err)
	}

	agent := &types.Agent{
		ID:        agentID,
		ClusterID: "", // local sentinel
		Status:    types.AgentStatusRunning,
		Model:     spec.Model,
		StartedAt: time.Now(),
		Labels:    spec.Labels,
	}

	la := &localAgent{
		agent:        agent,
		cmd:          cmd,
		done:         make(chan struct{}),
		lastActivity: time.Now(),
	}
	r.agents[agentID] = la

	go r.reap(la)

	r.logger.Info().Str("agent_id", agentID).Int("pid", cmd.Process.Pid).Msg("Spawned local agent")
	return agent, nil
}

// reap waits for the worker process and records its terminal status
func (r *ProcessRuntime) reap(la *localAgent) {
	err := la.cmd.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()

	la.exitErr = err
	switch la.agent.Status {
	case types.AgentStatusTerminated:
		// Killed on purpose; keep the status
	default:
		if err != nil {
			la.agent.Status = types.AgentStatusFailed
		} else {
			la.agent.Status = types.AgentStatusCompleted
		}
	}
	close(la.done)
}

// Exec runs a command on the host in the agent's context and returns the
// collected output with the exit code.
func (r *ProcessRuntime) Exec(ctx context.Context, agentID, command string, env map[string]string, timeout time.Duration) (*ExecResult, error) {
	r.mu.RLock()
	la, ok := r.agents[agentID]
	r.mu.RUnlock()
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "not running locally")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Env = cmd.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()

	r.mu.Lock()
	la.lastActivity = time.Now()
	r.mu.Unlock()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecResult{Output: buf.String(), ExitCode: exitErr.ExitCode()}, nil
		}
		if ctx.Err() != nil {
			return nil, errdefs.Wrap(errdefs.ErrTimeout, agentID, "exec deadline exceeded")
		}
		return nil, fmt.Errorf("failed to run command: %w", err)
	}

	return &ExecResult{Output: buf.String(), ExitCode: 0}, nil
}

// Kill terminates an agent process. Idempotent: a missing agent is only an
// error when force is false.
func (r *ProcessRuntime) Kill(ctx context.Context, agentID string, force bool) error {
	r.mu.Lock()
	la, ok := r.agents[agentID]
	if !ok {
		r.mu.Unlock()
		if force {
			return nil
		}
		return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "not running locally")
	}
	la.agent.Status = types.AgentStatusTerminated
	delete(r.agents, agentID)
	r.mu.Unlock()

	sig := syscall.SIGTERM
	if force {
		sig = syscall.SIGKILL
	}
	if la.cmd.Process != nil {
		// Process may already be gone; that still counts as killed
		_ = la.cmd.Process.Signal(sig)
	}

	select {
	case <-la.done:
	case <-time.After(5 * time.Second):
		if la.cmd.Process != nil {
			_ = la.cmd.Process.Kill()
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	r.logger.Info().Str("agent_id", agentID).Bool("force", force).Msg("Killed local agent")
	return nil
}

// List returns every live local agent
func (r *ProcessRuntime) List(ctx context.Context) ([]*types.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := make([]*types.Agent, 0, len(r.agents))
	for _, la := range r.agents {
		copied := *la.agent
		agents = append(agents, &copied)
	}
	return agents, nil
}

// Status reports one agent's lifecycle state
func (r *ProcessRuntime) Status(ctx context.Context, agentID string) (*types.AgentStatusInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	la, ok := r.agents[agentID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "not running locally")
	}

	return &types.AgentStatusInfo{
		Status:       la.agent.Status,
		StartedAt:    la.agent.StartedAt,
		LastActivity: la.lastActivity,
		Metadata: map[string]string{
			"pid":   fmt.Sprintf("%d", la.cmd.Process.Pid),
			"model": la.agent.Model,
		},
	}, nil
}

// Close kills every remaining agent
func (r *ProcessRuntime) Close() error {
	r.mu.Lock()
	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		_ = r.Kill(context.Background(), id, true)
	}
	return nil
}
