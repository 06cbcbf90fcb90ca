package roles

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/types"
)

// TeamRequirements describe the work a team is composed for
type TeamRequirements struct {
	Task                string
	Complexity          types.Complexity
	EstimatedSubtasks   int
	SecuritySensitive   bool
	RequiresReview      bool
	RequiresMonitoring  bool
	RequiresIntegration bool
}

// TeamProposal is the composer's output: placeholder assignments (empty
// agent ids) the caller fills in by actually spawning agents.
type TeamProposal struct {
	TeamID          string
	Assignments     []*types.RoleAssignment
	Counts          map[string]int
	EstimatedBudget float64
}

// ComposeTeam derives a team shape from the requirements: exactly one
// coordinator, workers scaled by complexity and subtask estimate,
// reviewers for security or review demands, a monitor for high-stakes
// work, and a refinery when parallel streams need integrating.
func (r *Registry) ComposeTeam(reqs TeamRequirements) *TeamProposal {
	workers := workerCount(reqs.Complexity, reqs.EstimatedSubtasks)

	reviewers := 0
	switch {
	case reqs.SecuritySensitive:
		reviewers = 2
	case reqs.RequiresReview || reqs.Complexity == types.ComplexityHigh:
		reviewers = 1
	}

	monitors := 0
	if reqs.Complexity == types.ComplexityHigh || reqs.RequiresMonitoring {
		monitors = 1
	}

	refineries := 0
	if reqs.RequiresIntegration || workers > 3 {
		refineries = 1
	}

	counts := map[string]int{
		RoleCoordinator: 1,
		RoleWorker:      workers,
		RoleReviewer:    reviewers,
		RoleMonitor:     monitors,
		RoleRefinery:    refineries,
	}

	proposal := &TeamProposal{
		TeamID: "team-" + uuid.New().String(),
		Counts: counts,
	}
	now := time.Now()
	for _, roleID := range []string{RoleCoordinator, RoleWorker, RoleReviewer, RoleMonitor, RoleRefinery} {
		role, err := r.GetRole(roleID)
		if err != nil {
			continue
		}
		for i := 0; i < counts[roleID]; i++ {
			proposal.Assignments = append(proposal.Assignments, &types.RoleAssignment{
				RoleID:     roleID,
				TeamID:     proposal.TeamID,
				AssignedAt: now,
				AssignedBy: "composer",
			})
			proposal.EstimatedBudget += role.CostBudget
		}
	}
	return proposal
}

// workerCount scales workers with complexity: low keeps the team tiny,
// medium and high halve the subtask estimate under rising caps.
func workerCount(complexity types.Complexity, estimatedSubtasks int) int {
	switch complexity {
	case types.ComplexityLow:
		return clamp(estimatedSubtasks, 1, 2)
	case types.ComplexityHigh:
		return clamp(int(math.Ceil(float64(estimatedSubtasks)/2)), 1, 10)
	default:
		return clamp(int(math.Ceil(float64(estimatedSubtasks)/2)), 1, 5)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
