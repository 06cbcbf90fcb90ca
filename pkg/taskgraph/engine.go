package taskgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// TextGenerator is the external collaborator behind the llm-assisted
// strategy. Implementations are expected to honour the context deadline.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config tunes the decomposition engine
type Config struct {
	// MaxParallelism caps how many subtasks one decomposition produces.
	// Zero means unbounded.
	MaxParallelism int
	// LLMTimeout bounds one text-generator invocation
	LLMTimeout time.Duration
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		MaxParallelism: 10,
		LLMTimeout:     30 * time.Second,
	}
}

// DecompositionResult is one complete decomposition: the subtasks, their
// dependency graph, the parallel execution layers, and summary scores.
type DecompositionResult struct {
	Subtasks             []*types.Subtask
	Graph                *DAG
	Levels               [][]string
	ParallelizationRatio float64
	Complexity           types.Complexity
	Strategy             Strategy
	CreatedAt            time.Time
}

// Engine turns a natural-language task into a validated subtask DAG
type Engine struct {
	cfg       Config
	generator TextGenerator // nil disables the llm-assisted strategy
	broker    *events.Broker
	logger    zerolog.Logger
}

// NewEngine creates a decomposition engine. The generator may be nil, in
// which case llm-assisted requests fall straight back to component-based.
func NewEngine(cfg Config, generator TextGenerator, broker *events.Broker) *Engine {
	return &Engine{
		cfg:       cfg,
		generator: generator,
		broker:    broker,
		logger:    log.WithComponent("taskgraph"),
	}
}

// Decompose runs one strategy over the task, clamps the result, builds
// and validates the DAG, and layers it for parallel execution. A cycle in
// the produced graph is a fatal decomposition error. A task with no
// recognizable structure, the empty string included, still yields a
// single-subtask fallback.
func (e *Engine) Decompose(ctx context.Context, task string, strategy Strategy, tctx TaskContext) (*DecompositionResult, error) {
	if strategy == "" {
		strategy = StrategyComponentBased
	}

	used := strategy
	var subtasks []*types.Subtask
	switch strategy {
	case StrategyFileBased:
		subtasks = decomposeFileBased(task, tctx)
	case StrategyComponentBased:
		subtasks = decomposeComponentBased(task, tctx)
	case StrategyDomainBased:
		subtasks = decomposeDomainBased(task, tctx)
	case StrategyLLMAssisted:
		var err error
		subtasks, err = e.decomposeLLM(ctx, task, tctx)
		if err != nil {
			e.logger.Warn().Err(err).Msg("LLM decomposition failed, falling back to component-based")
			subtasks = decomposeComponentBased(task, tctx)
			used = StrategyComponentBased
		}
	default:
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, string(strategy), "unknown strategy %q", strategy)
	}

	subtasks = clampSubtasks(subtasks, e.cfg.MaxParallelism)

	dag, err := BuildDAG(subtasks)
	if err != nil {
		return nil, err
	}
	if cycle := dag.DetectCycle(); cycle != nil {
		return nil, errdefs.Wrapf(errdefs.ErrCircularDependency, task,
			"decomposition produced a cycle: %s", strings.Join(cycle, " -> "))
	}
	levels := dag.Levels()

	result := &DecompositionResult{
		Subtasks:             subtasks,
		Graph:                dag,
		Levels:               levels,
		ParallelizationRatio: ParallelizationRatio(len(subtasks), len(levels)),
		Complexity:           aggregateComplexity(subtasks),
		Strategy:             used,
		CreatedAt:            time.Now(),
	}

	metrics.DecompositionsTotal.WithLabelValues(string(used)).Inc()
	metrics.SubtasksPerDecomposition.Observe(float64(len(subtasks)))
	if e.broker != nil {
		e.broker.Emit(events.EventTaskCreated,
			fmt.Sprintf("Decomposed task into %d subtasks across %d levels", len(subtasks), len(levels)),
			map[string]string{"strategy": string(used)})
	}
	e.logger.Info().
		Str("strategy", string(used)).
		Int("subtasks", len(subtasks)).
		Int("levels", len(levels)).
		Float64("ratio", result.ParallelizationRatio).
		Msg("Decomposition complete")
	return result, nil
}

// llmSubtask is the wire shape expected back from the text generator
type llmSubtask struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies"`
	Complexity   string   `json:"complexity"`
}

func (e *Engine) decomposeLLM(ctx context.Context, task string, tctx TaskContext) ([]*types.Subtask, error) {
	if e.generator == nil {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "no text generator configured")
	}

	timeout := e.cfg.LLMTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := e.generator.Generate(genCtx, llmPrompt(task, tctx))
	if err != nil {
		return nil, err
	}

	var parsed []llmSubtask
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parsing generator output: %w", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("generator produced no subtasks")
	}

	subtasks := make([]*types.Subtask, 0, len(parsed))
	for i, p := range parsed {
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("subtask-%d", i+1)
		}
		complexity := types.Complexity(p.Complexity)
		switch complexity {
		case types.ComplexityLow, types.ComplexityMedium, types.ComplexityHigh:
		default:
			complexity = types.ComplexityMedium
		}
		subtasks = append(subtasks, &types.Subtask{
			ID:           id,
			Title:        p.Title,
			Description:  p.Description,
			Dependencies: p.Dependencies,
			Complexity:   complexity,
		})
	}
	return subtasks, nil
}

func llmPrompt(task string, tctx TaskContext) string {
	var b strings.Builder
	b.WriteString("Decompose the following task into subtasks. Respond with a JSON array where each element has ")
	b.WriteString(`"id", "title", "description", "dependencies" (array of ids) and "complexity" (low|medium|high).`)
	b.WriteString("\n\nTask: ")
	b.WriteString(task)
	if len(tctx.Files) > 0 {
		b.WriteString("\nFiles: ")
		b.WriteString(strings.Join(tctx.Files, ", "))
	}
	if len(tctx.Components) > 0 {
		b.WriteString("\nComponents: ")
		b.WriteString(strings.Join(tctx.Components, ", "))
	}
	return b.String()
}

// extractJSONArray tolerates prose around the array in generator output
func extractJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}

var complexityRank = map[types.Complexity]int{
	types.ComplexityLow:    0,
	types.ComplexityMedium: 1,
	types.ComplexityHigh:   2,
}

// clampSubtasks keeps at most max subtasks, preferring higher-complexity
// ones while preserving the original relative order of the survivors.
// Dependencies on dropped subtasks are pruned.
func clampSubtasks(subtasks []*types.Subtask, max int) []*types.Subtask {
	if max <= 0 || len(subtasks) <= max {
		return subtasks
	}

	idx := make([]int, len(subtasks))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return complexityRank[subtasks[idx[a]].Complexity] > complexityRank[subtasks[idx[b]].Complexity]
	})

	keep := make(map[int]bool, max)
	for _, i := range idx[:max] {
		keep[i] = true
	}

	kept := make([]*types.Subtask, 0, max)
	surviving := make(map[string]bool, max)
	for i, st := range subtasks {
		if keep[i] {
			kept = append(kept, st)
			surviving[st.ID] = true
		}
	}
	for _, st := range kept {
		var deps []string
		for _, dep := range st.Dependencies {
			if surviving[dep] {
				deps = append(deps, dep)
			}
		}
		st.Dependencies = deps
	}
	return kept
}

// aggregateComplexity is the majority vote of subtask complexities with
// ties resolving upward.
func aggregateComplexity(subtasks []*types.Subtask) types.Complexity {
	counts := make(map[types.Complexity]int)
	for _, st := range subtasks {
		counts[st.Complexity]++
	}
	best := types.ComplexityLow
	bestCount := -1
	for _, c := range []types.Complexity{types.ComplexityLow, types.ComplexityMedium, types.ComplexityHigh} {
		if counts[c] >= bestCount && counts[c] > 0 {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}
