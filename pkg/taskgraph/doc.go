// Package taskgraph turns a natural-language task into a dependency DAG
// of subtasks ready for parallel execution by an agent team.
//
// Four strategies produce the raw subtask list: file-based groups the
// caller's files by directory, component-based (the default) extracts
// component nouns from the task text and applies fixed ordering rules,
// domain-based does the same over business domains, and llm-assisted
// delegates to an external text generator and falls back to
// component-based when the response cannot be parsed in time.
//
// Whatever the strategy produced is then clamped to the configured
// parallelism cap (higher-complexity subtasks survive), indexed into a
// DAG, checked for cycles with a three-color depth-first search, and
// layered topologically. Each layer can run in parallel; the
// parallelization ratio summarizes how much of the graph actually can.
package taskgraph
