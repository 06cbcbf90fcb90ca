package taskgraph

import (
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/types"
)

// DAG is the dependency graph of one decomposition. Edges point from a
// dependency to its dependents, so work flows along edges; ReverseEdges
// hold each node's unmet dependencies.
type DAG struct {
	Nodes        map[string]*types.Subtask
	Edges        map[string][]string
	ReverseEdges map[string][]string

	order []string // insertion order for deterministic traversal
}

// BuildDAG indexes the subtasks and their dependency edges. Every
// dependency id must resolve inside the subtask set.
func BuildDAG(subtasks []*types.Subtask) (*DAG, error) {
	d := &DAG{
		Nodes:        make(map[string]*types.Subtask, len(subtasks)),
		Edges:        make(map[string][]string),
		ReverseEdges: make(map[string][]string),
	}
	for _, st := range subtasks {
		if st.ID == "" {
			return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "subtask id must not be empty")
		}
		if _, dup := d.Nodes[st.ID]; dup {
			return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, st.ID, "duplicate subtask id %q", st.ID)
		}
		d.Nodes[st.ID] = st
		d.order = append(d.order, st.ID)
	}
	for _, st := range subtasks {
		for _, dep := range st.Dependencies {
			if _, ok := d.Nodes[dep]; !ok {
				return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, st.ID,
					"subtask %q depends on unknown id %q", st.ID, dep)
			}
			d.Edges[dep] = append(d.Edges[dep], st.ID)
			d.ReverseEdges[st.ID] = append(d.ReverseEdges[st.ID], dep)
		}
	}
	return d, nil
}

const (
	colorWhite = iota
	colorGray
	colorBlack
)

// DetectCycle runs a three-color depth-first search over the dependency
// edges. It returns the first cycle found as a node path (first and last
// element equal), or nil when the graph is acyclic.
func (d *DAG) DetectCycle() []string {
	colors := make(map[string]int, len(d.Nodes))
	var stack []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = colorGray
		stack = append(stack, id)
		for _, next := range d.Edges[id] {
			switch colors[next] {
			case colorGray:
				// Back-edge: slice the gray stack from next onwards
				for i, n := range stack {
					if n == next {
						cycle = append(append([]string{}, stack[i:]...), next)
						return true
					}
				}
			case colorWhite:
				if visit(next) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		colors[id] = colorBlack
		return false
	}

	for _, id := range d.order {
		if colors[id] == colorWhite && visit(id) {
			return cycle
		}
	}
	return nil
}

// Levels returns the topological layering: level 0 is every node with no
// dependencies, each next level is what becomes dependency-free once the
// previous level is removed. Nodes within a level keep insertion order.
func (d *DAG) Levels() [][]string {
	indegree := make(map[string]int, len(d.Nodes))
	for id := range d.Nodes {
		indegree[id] = len(d.ReverseEdges[id])
	}

	remaining := len(d.Nodes)
	var levels [][]string
	for remaining > 0 {
		var level []string
		for _, id := range d.order {
			if deg, ok := indegree[id]; ok && deg == 0 {
				level = append(level, id)
			}
		}
		if len(level) == 0 {
			// Cyclic remainder; callers detect cycles before layering
			break
		}
		for _, id := range level {
			delete(indegree, id)
			remaining--
			for _, next := range d.Edges[id] {
				if _, ok := indegree[next]; ok {
					indegree[next]--
				}
			}
		}
		levels = append(levels, level)
	}
	return levels
}

// ParallelizationRatio scores how parallel the layering is: 0 is a
// strictly serial chain, 1 is a single fully-parallel layer.
func ParallelizationRatio(totalSubtasks, levels int) float64 {
	denom := totalSubtasks - 1
	if denom < 1 {
		denom = 1
	}
	return float64(totalSubtasks-levels) / float64(denom)
}
