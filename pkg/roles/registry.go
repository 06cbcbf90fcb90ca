package roles

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/storage"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

var roleIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Registry is the role catalog plus the agent→role assignment table. It
// is seeded with the five built-ins; user-defined roles and assignments
// persist through the store when one is given.
type Registry struct {
	store  storage.Store // nil disables persistence
	broker *events.Broker
	logger zerolog.Logger

	mu          sync.RWMutex
	roles       map[string]*types.Role
	assignments map[string]*types.RoleAssignment
}

// NewRegistry creates a role registry seeded with the built-in roles
func NewRegistry(store storage.Store, broker *events.Broker) *Registry {
	r := &Registry{
		store:       store,
		broker:      broker,
		roles:       make(map[string]*types.Role),
		assignments: make(map[string]*types.RoleAssignment),
		logger:      log.WithComponent("roles"),
	}
	for _, role := range builtinRoles() {
		r.roles[role.ID] = role
	}
	return r
}

// Validate checks a role definition. Violations of the hard rules come
// back as the error; soft issues (unknown permission tokens, canMessage
// targets that do not exist yet) come back as warnings.
func (r *Registry) Validate(role *types.Role) ([]string, error) {
	if role == nil || role.ID == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidRole, "", "role id must not be empty")
	}
	if !roleIDPattern.MatchString(role.ID) {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidRole, role.ID, "role id %q must match [a-z0-9-]+", role.ID)
	}
	if role.SystemPrompt == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidRole, role.ID, "system prompt must not be empty")
	}
	if role.MaxIterations < 1 {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidRole, role.ID, "maxIterations must be >= 1, got %d", role.MaxIterations)
	}
	if role.CostBudget < 0 {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidRole, role.ID, "costBudget must be >= 0, got %f", role.CostBudget)
	}

	var warnings []string
	known := make(map[types.Permission]bool, len(types.AllPermissions))
	for _, p := range types.AllPermissions {
		known[p] = true
	}
	for _, p := range role.Permissions {
		if !known[p] {
			warnings = append(warnings, fmt.Sprintf("unknown permission %q", p))
		}
	}

	r.mu.RLock()
	for _, target := range role.CanMessage {
		if _, ok := r.roles[target]; !ok {
			warnings = append(warnings, fmt.Sprintf("canMessage target role %q does not exist", target))
		}
	}
	r.mu.RUnlock()

	return warnings, nil
}

// RegisterRole adds or updates a user-defined role. Built-in ids cannot
// be overridden. Returns validation warnings.
func (r *Registry) RegisterRole(role *types.Role) ([]string, error) {
	if role != nil && IsBuiltin(role.ID) {
		return nil, errdefs.Wrap(errdefs.ErrCannotOverrideBuiltinRole, role.ID, "built-in role")
	}
	warnings, err := r.Validate(role)
	if err != nil {
		return warnings, err
	}

	r.mu.Lock()
	_, update := r.roles[role.ID]
	copied := *role
	r.roles[role.ID] = &copied
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.SaveRole(role); err != nil {
			r.logger.Error().Err(err).Str("role_id", role.ID).Msg("Failed to persist role")
		}
	}

	eventType := events.EventRoleRegistered
	if update {
		eventType = events.EventRoleUpdated
	}
	r.broker.Emit(eventType, fmt.Sprintf("Role %s registered", role.ID),
		map[string]string{"role_id": role.ID})
	r.logger.Info().Str("role_id", role.ID).Bool("update", update).Strs("warnings", warnings).Msg("Registered role")
	return warnings, nil
}

// UnregisterRole removes a user-defined role. Built-ins and roles with
// live assignments are rejected.
func (r *Registry) UnregisterRole(roleID string) error {
	if IsBuiltin(roleID) {
		return errdefs.Wrap(errdefs.ErrCannotOverrideBuiltinRole, roleID, "built-in role")
	}

	r.mu.Lock()
	if _, ok := r.roles[roleID]; !ok {
		r.mu.Unlock()
		return errdefs.Wrap(errdefs.ErrInvalidRole, roleID, "role not registered")
	}
	live := 0
	for _, a := range r.assignments {
		if a.RoleID == roleID {
			live++
		}
	}
	if live > 0 {
		r.mu.Unlock()
		return errdefs.Wrapf(errdefs.ErrInvalidRole, roleID, "role has %d live assignments", live)
	}
	delete(r.roles, roleID)
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.DeleteRole(roleID); err != nil {
			r.logger.Error().Err(err).Str("role_id", roleID).Msg("Failed to delete persisted role")
		}
	}

	r.broker.Emit(events.EventRoleUnregistered, fmt.Sprintf("Role %s unregistered", roleID),
		map[string]string{"role_id": roleID})
	return nil
}

// GetRole returns a copy of one role
func (r *Registry) GetRole(roleID string) (*types.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[roleID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrInvalidRole, roleID, "role not registered")
	}
	copied := *role
	return &copied, nil
}

// ListRoles returns copies of every role, sorted by id
func (r *Registry) ListRoles() []*types.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*types.Role, 0, len(r.roles))
	for _, role := range r.roles {
		copied := *role
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Assign binds an agent to a role, replacing any previous assignment.
// The agent holds at most one active assignment.
func (r *Registry) Assign(agentID, roleID, assignedBy, teamID string) (*types.RoleAssignment, error) {
	if agentID == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "agent id must not be empty")
	}

	r.mu.Lock()
	if _, ok := r.roles[roleID]; !ok {
		r.mu.Unlock()
		return nil, errdefs.Wrap(errdefs.ErrInvalidRole, roleID, "role not registered")
	}
	assignment := &types.RoleAssignment{
		AgentID:    agentID,
		RoleID:     roleID,
		TeamID:     teamID,
		AssignedAt: time.Now(),
		AssignedBy: assignedBy,
	}
	r.assignments[agentID] = assignment
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.SaveAssignment(assignment); err != nil {
			r.logger.Error().Err(err).Str("agent_id", agentID).Msg("Failed to persist assignment")
		}
	}

	r.broker.Emit(events.EventAssignmentAssigned,
		fmt.Sprintf("Agent %s assigned role %s", agentID, roleID),
		map[string]string{"agent_id": agentID, "role_id": roleID})
	copied := *assignment
	return &copied, nil
}

// Unassign removes an agent's assignment
func (r *Registry) Unassign(agentID string) error {
	r.mu.Lock()
	assignment, ok := r.assignments[agentID]
	if !ok {
		r.mu.Unlock()
		return errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "no assignment")
	}
	delete(r.assignments, agentID)
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.DeleteAssignment(agentID); err != nil {
			r.logger.Error().Err(err).Str("agent_id", agentID).Msg("Failed to delete persisted assignment")
		}
	}

	r.broker.Emit(events.EventAssignmentUnassigned,
		fmt.Sprintf("Agent %s unassigned from role %s", agentID, assignment.RoleID),
		map[string]string{"agent_id": agentID, "role_id": assignment.RoleID})
	return nil
}

// GetAssignment returns a copy of an agent's assignment
func (r *Registry) GetAssignment(agentID string) (*types.RoleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assignment, ok := r.assignments[agentID]
	if !ok {
		return nil, errdefs.Wrap(errdefs.ErrAgentNotFound, agentID, "no assignment")
	}
	copied := *assignment
	return &copied, nil
}

// ListAssignments returns copies of every assignment, sorted by agent id
func (r *Registry) ListAssignments() []*types.RoleAssignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*types.RoleAssignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out
}

// AssignmentsByRole returns the agent ids currently holding a role
func (r *Registry) AssignmentsByRole(roleID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var agents []string
	for agentID, a := range r.assignments {
		if a.RoleID == roleID {
			agents = append(agents, agentID)
		}
	}
	sort.Strings(agents)
	return agents
}

// RoleOf returns the role id an agent holds, if any
func (r *Registry) RoleOf(agentID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assignments[agentID]
	if !ok {
		return "", false
	}
	return a.RoleID, true
}

// HasPermission reports whether the agent's assigned role grants the
// permission under implication: read_all implies read_assigned and
// write_all implies write_assigned.
func (r *Registry) HasPermission(agentID string, p types.Permission) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assignment, ok := r.assignments[agentID]
	if !ok {
		return false
	}
	role, ok := r.roles[assignment.RoleID]
	if !ok {
		return false
	}
	for _, granted := range role.Permissions {
		if granted == p {
			return true
		}
		if granted == types.PermissionReadAll && p == types.PermissionReadAssigned {
			return true
		}
		if granted == types.PermissionWriteAll && p == types.PermissionWriteAssigned {
			return true
		}
	}
	return false
}

// CanMessage reports whether fromRole may message toRole
func (r *Registry) CanMessage(fromRole, toRole string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[fromRole]
	if !ok {
		return false
	}
	for _, target := range role.CanMessage {
		if target == toRole {
			return true
		}
	}
	return false
}

// RestoreRole reloads one persisted role at startup without validation
// events or store writes. Built-in ids are ignored.
func (r *Registry) RestoreRole(role *types.Role) {
	if role == nil || IsBuiltin(role.ID) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *role
	r.roles[role.ID] = &copied
}

// RestoreAssignment reloads one persisted assignment at startup
func (r *Registry) RestoreAssignment(assignment *types.RoleAssignment) {
	if assignment == nil || assignment.AgentID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *assignment
	r.assignments[assignment.AgentID] = &copied
}
