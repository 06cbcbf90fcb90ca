package roles

import "github.com/loomctl/loom/pkg/types"

// Built-in role ids. These can be neither overridden nor removed.
const (
	RoleCoordinator = "coordinator"
	RoleWorker      = "worker"
	RoleReviewer    = "reviewer"
	RoleRefinery    = "refinery"
	RoleMonitor     = "monitor"
)

// builtinRoles returns fresh copies of the five built-in definitions
func builtinRoles() []*types.Role {
	return []*types.Role{
		{
			ID:          RoleCoordinator,
			Name:        "Coordinator",
			Description: "Decomposes work, delegates subtasks to workers, and tracks team progress",
			SystemPrompt: "You coordinate a team of agents. Break the task into subtasks, " +
				"delegate each to a worker, track progress, and report completion. " +
				"Never implement subtasks yourself.",
			Permissions: []types.Permission{
				types.PermissionReadAll,
				types.PermissionDelegateTasks,
				types.PermissionManageAgents,
				types.PermissionComment,
			},
			MaxIterations:      50,
			CanMessage:         []string{RoleWorker, RoleReviewer, RoleRefinery, RoleMonitor},
			CostBudget:         10.0,
			MaxConcurrentTasks: 10,
			Priority:           10,
			Tags:               []string{"builtin"},
		},
		{
			ID:          RoleWorker,
			Name:        "Worker",
			Description: "Implements one assigned subtask end to end",
			SystemPrompt: "You implement the subtask assigned to you. Work only within your " +
				"assignment, report status to your coordinator, and hand off for review " +
				"when done.",
			Permissions: []types.Permission{
				types.PermissionReadAssigned,
				types.PermissionWriteAssigned,
				types.PermissionComment,
				types.PermissionGitOperations,
			},
			MaxIterations:      30,
			CanMessage:         []string{RoleCoordinator, RoleWorker},
			CostBudget:         5.0,
			MaxConcurrentTasks: 1,
			Priority:           5,
			Tags:               []string{"builtin"},
		},
		{
			ID:          RoleReviewer,
			Name:        "Reviewer",
			Description: "Reviews completed work for correctness and security",
			SystemPrompt: "You review completed subtasks. Check correctness, style, and " +
				"security implications. Approve or reject with actionable feedback; " +
				"never modify the work yourself.",
			Permissions: []types.Permission{
				types.PermissionReadAll,
				types.PermissionComment,
				types.PermissionApprove,
				types.PermissionReject,
			},
			MaxIterations:      20,
			RequireApproval:    true,
			CanMessage:         []string{RoleCoordinator, RoleWorker},
			CostBudget:         3.0,
			MaxConcurrentTasks: 5,
			Priority:           7,
			Tags:               []string{"builtin"},
		},
		{
			ID:          RoleRefinery,
			Name:        "Refinery",
			Description: "Integrates parallel work streams and resolves conflicts",
			SystemPrompt: "You merge the outputs of parallel workers into a coherent whole. " +
				"Resolve conflicts, unify style, and verify the integrated result builds.",
			Permissions: []types.Permission{
				types.PermissionReadAll,
				types.PermissionWriteAll,
				types.PermissionGitOperations,
				types.PermissionComment,
			},
			MaxIterations:      25,
			CanMessage:         []string{RoleCoordinator, RoleWorker},
			CostBudget:         4.0,
			MaxConcurrentTasks: 1,
			Priority:           6,
			Tags:               []string{"builtin"},
		},
		{
			ID:          RoleMonitor,
			Name:        "Monitor",
			Description: "Watches team health and raises alerts",
			SystemPrompt: "You observe the team's progress and resource usage. Raise alerts " +
				"on stalls, budget overruns, or failures. You never modify work products.",
			Permissions: []types.Permission{
				types.PermissionReadMetrics,
				types.PermissionReadLogs,
				types.PermissionSendAlerts,
			},
			MaxIterations:      100,
			CanMessage:         []string{RoleCoordinator},
			CostBudget:         1.0,
			MaxConcurrentTasks: 1,
			Priority:           3,
			Tags:               []string{"builtin"},
		},
	}
}

// IsBuiltin reports whether a role id names a built-in role
func IsBuiltin(id string) bool {
	switch id {
	case RoleCoordinator, RoleWorker, RoleReviewer, RoleRefinery, RoleMonitor:
		return true
	}
	return false
}
