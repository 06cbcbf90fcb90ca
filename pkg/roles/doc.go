// Package roles is the role catalog and assignment table for cooperative
// agent teams.
//
// Five built-in roles ship with the registry: coordinator, worker,
// reviewer, refinery, and monitor. Built-ins can be neither overridden
// nor removed; user-defined roles pass validation (lowercase id,
// non-empty prompt, sane iteration and budget bounds) where hard rule
// violations are errors and soft issues, such as unknown permission
// tokens or messaging targets that do not exist yet, come back as
// warnings.
//
// Each agent holds at most one assignment. Permission checks apply
// implication: read_all covers read_assigned and write_all covers
// write_assigned; everything else is exact match. A role cannot be
// unregistered while agents still hold it.
//
// ComposeTeam turns task requirements into a team proposal: one
// coordinator, workers scaled by complexity and the subtask estimate,
// reviewers for security-sensitive or reviewed work, a monitor for
// high-complexity or watched work, and a refinery when enough parallel
// streams need integrating. The proposal carries placeholder
// assignments and a budget estimate; spawning the agents is the
// caller's job.
package roles
