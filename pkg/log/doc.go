/*
Package log provides structured logging for loom using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper
functions for common logging patterns. All logs include timestamps and
support filtering by severity level for production debugging.

# Usage

Initializing the logger (once, at daemon startup):

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Component-scoped child loggers:

	logger := log.WithComponent("balancer")
	logger.Info().Str("agent_id", id).Str("cluster_id", target).Msg("agent placed")

Quick helpers for simple messages:

	log.Info("health monitor started")
	log.Warn(fmt.Sprintf("probe failed for cluster %s", id))

# Field Conventions

  - component: the emitting subsystem (federation, balancer, proxy, ...)
  - cluster_id, agent_id, task_id: domain entity ids, via the
    WithClusterID / WithAgentID / WithTaskID helpers

Console output (human-readable, colored) is the default; JSONOutput
switches to machine-parseable lines for production.
*/
package log
