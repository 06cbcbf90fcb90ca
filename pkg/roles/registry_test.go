package roles

import (
	"testing"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)
	return NewRegistry(nil, broker)
}

func validRole(id string) *types.Role {
	return &types.Role{
		ID:            id,
		Name:          id,
		SystemPrompt:  "do the thing",
		MaxIterations: 5,
		Permissions:   []types.Permission{types.PermissionReadAssigned},
	}
}

func TestBuiltinsSeeded(t *testing.T) {
	r := newTestRegistry(t)
	for _, id := range []string{RoleCoordinator, RoleWorker, RoleReviewer, RoleRefinery, RoleMonitor} {
		role, err := r.GetRole(id)
		require.NoError(t, err, id)
		assert.NotEmpty(t, role.SystemPrompt)
		assert.GreaterOrEqual(t, role.MaxIterations, 1)
	}
	assert.Len(t, r.ListRoles(), 5)
}

func TestBuiltinProtection(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.RegisterRole(validRole(RoleWorker))
	assert.ErrorIs(t, err, errdefs.ErrCannotOverrideBuiltinRole)

	err = r.UnregisterRole(RoleCoordinator)
	assert.ErrorIs(t, err, errdefs.ErrCannotOverrideBuiltinRole)
}

func TestRegisterRoleValidation(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name   string
		mutate func(*types.Role)
	}{
		{"empty id", func(role *types.Role) { role.ID = "" }},
		{"uppercase id", func(role *types.Role) { role.ID = "MyRole" }},
		{"empty prompt", func(role *types.Role) { role.SystemPrompt = "" }},
		{"zero iterations", func(role *types.Role) { role.MaxIterations = 0 }},
		{"negative budget", func(role *types.Role) { role.CostBudget = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := validRole("custom-role")
			tt.mutate(role)
			_, err := r.RegisterRole(role)
			assert.ErrorIs(t, err, errdefs.ErrInvalidRole)
		})
	}
}

func TestRegisterRoleWarnings(t *testing.T) {
	r := newTestRegistry(t)

	role := validRole("analyst")
	role.Permissions = append(role.Permissions, types.Permission("fly_to_moon"))
	role.CanMessage = []string{RoleWorker, "ghost-role"}

	warnings, err := r.RegisterRole(role)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "fly_to_moon")
	assert.Contains(t, warnings[1], "ghost-role")

	// Warnings do not block registration
	_, err = r.GetRole("analyst")
	assert.NoError(t, err)
}

func TestUnregisterRejectsLiveAssignments(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.RegisterRole(validRole("analyst"))
	require.NoError(t, err)
	_, err = r.Assign("agent-1", "analyst", "test", "")
	require.NoError(t, err)

	err = r.UnregisterRole("analyst")
	assert.ErrorIs(t, err, errdefs.ErrInvalidRole)

	require.NoError(t, r.Unassign("agent-1"))
	assert.NoError(t, r.UnregisterRole("analyst"))
}

func TestAssignmentLifecycle(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Assign("agent-1", "no-such-role", "test", "")
	assert.ErrorIs(t, err, errdefs.ErrInvalidRole)

	a, err := r.Assign("agent-1", RoleWorker, "test", "team-x")
	require.NoError(t, err)
	assert.Equal(t, RoleWorker, a.RoleID)
	assert.Equal(t, "team-x", a.TeamID)

	// Reassignment replaces, never duplicates
	_, err = r.Assign("agent-1", RoleReviewer, "test", "")
	require.NoError(t, err)
	got, err := r.GetAssignment("agent-1")
	require.NoError(t, err)
	assert.Equal(t, RoleReviewer, got.RoleID)
	assert.Len(t, r.ListAssignments(), 1)

	assert.Equal(t, []string{"agent-1"}, r.AssignmentsByRole(RoleReviewer))
	assert.Empty(t, r.AssignmentsByRole(RoleWorker))

	require.NoError(t, r.Unassign("agent-1"))
	assert.ErrorIs(t, r.Unassign("agent-1"), errdefs.ErrAgentNotFound)
}

func TestHasPermissionImplication(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Assign("coord", RoleCoordinator, "test", "")
	require.NoError(t, err)
	_, err = r.Assign("work", RoleWorker, "test", "")
	require.NoError(t, err)

	tests := []struct {
		agent string
		perm  types.Permission
		want  bool
	}{
		{"coord", types.PermissionReadAll, true},
		{"coord", types.PermissionReadAssigned, true}, // implied by read_all
		{"coord", types.PermissionWriteAll, false},
		{"work", types.PermissionWriteAssigned, true},
		{"work", types.PermissionWriteAll, false}, // implication is one-way
		{"work", types.PermissionReadAll, false},
		{"unassigned", types.PermissionReadAssigned, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.HasPermission(tt.agent, tt.perm), "%s %s", tt.agent, tt.perm)
	}
}

func TestCanMessage(t *testing.T) {
	r := newTestRegistry(t)
	assert.True(t, r.CanMessage(RoleWorker, RoleCoordinator))
	assert.False(t, r.CanMessage(RoleMonitor, RoleWorker))
	assert.False(t, r.CanMessage("ghost", RoleWorker))
}

func TestComposeTeam(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		reqs TeamRequirements
		want map[string]int
	}{
		{
			"low complexity small",
			TeamRequirements{Complexity: types.ComplexityLow, EstimatedSubtasks: 1},
			map[string]int{RoleCoordinator: 1, RoleWorker: 1, RoleReviewer: 0, RoleMonitor: 0, RoleRefinery: 0},
		},
		{
			"low complexity clamps to two workers",
			TeamRequirements{Complexity: types.ComplexityLow, EstimatedSubtasks: 9},
			map[string]int{RoleCoordinator: 1, RoleWorker: 2, RoleReviewer: 0, RoleMonitor: 0, RoleRefinery: 0},
		},
		{
			"medium caps at five and adds refinery",
			TeamRequirements{Complexity: types.ComplexityMedium, EstimatedSubtasks: 14},
			map[string]int{RoleCoordinator: 1, RoleWorker: 5, RoleReviewer: 0, RoleMonitor: 0, RoleRefinery: 1},
		},
		{
			"high security sensitive",
			TeamRequirements{Complexity: types.ComplexityHigh, EstimatedSubtasks: 6, RequiresReview: true, SecuritySensitive: true},
			map[string]int{RoleCoordinator: 1, RoleWorker: 3, RoleReviewer: 2, RoleMonitor: 1, RoleRefinery: 0},
		},
		{
			"integration forces refinery",
			TeamRequirements{Complexity: types.ComplexityMedium, EstimatedSubtasks: 2, RequiresIntegration: true},
			map[string]int{RoleCoordinator: 1, RoleWorker: 1, RoleReviewer: 0, RoleMonitor: 0, RoleRefinery: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proposal := r.ComposeTeam(tt.reqs)
			assert.Equal(t, tt.want, proposal.Counts)

			total := 0
			for _, n := range tt.want {
				total += n
			}
			assert.Len(t, proposal.Assignments, total)
			for _, a := range proposal.Assignments {
				assert.Empty(t, a.AgentID)
				assert.Equal(t, proposal.TeamID, a.TeamID)
			}
		})
	}
}

func TestComposeTeamBudget(t *testing.T) {
	r := newTestRegistry(t)
	proposal := r.ComposeTeam(TeamRequirements{Complexity: types.ComplexityHigh, EstimatedSubtasks: 6, SecuritySensitive: true})

	// 1 coordinator + 3 workers + 2 reviewers + 1 monitor
	coordinator, _ := r.GetRole(RoleCoordinator)
	worker, _ := r.GetRole(RoleWorker)
	reviewer, _ := r.GetRole(RoleReviewer)
	monitor, _ := r.GetRole(RoleMonitor)
	want := coordinator.CostBudget + 3*worker.CostBudget + 2*reviewer.CostBudget + monitor.CostBudget
	assert.InDelta(t, want, proposal.EstimatedBudget, 0.001)
}
