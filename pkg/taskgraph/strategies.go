package taskgraph

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/loomctl/loom/pkg/types"
)

// Strategy names a decomposition approach
type Strategy string

const (
	StrategyFileBased      Strategy = "file-based"
	StrategyComponentBased Strategy = "component-based"
	StrategyDomainBased    Strategy = "domain-based"
	StrategyLLMAssisted    Strategy = "llm-assisted"
)

// TaskContext carries the optional hints a caller has about the task
type TaskContext struct {
	Files      []string
	Components []string
	Domains    []string
}

// componentOrder fixes detection and subtask emission order
var componentOrder = []string{"database", "api", "auth", "backend", "frontend", "tests"}

// componentKeywords maps each component to the task-text tokens that
// reveal it. Substring match on the lowercased task.
var componentKeywords = map[string][]string{
	"database": {"database", "db", "schema", "migration", "sql", "storage"},
	"api":      {"api", "endpoint", "rest", "grpc", "route"},
	"auth":     {"auth", "login", "oauth", "permission", "token", "session"},
	"backend":  {"backend", "server", "service", "worker"},
	"frontend": {"frontend", "ui", "page", "component", "form", "dashboard"},
	"tests":    {"test", "tests", "coverage", "e2e"},
}

// componentDeps are the fixed ordering rules between components. Tests
// depend on everything else and are handled separately.
var componentDeps = map[string][]string{
	"api":      {"database"},
	"auth":     {"database"},
	"frontend": {"api"},
}

// decomposeComponentBased extracts component nouns from the task text
// (plus any explicitly listed components) and wires the fixed dependency
// rules between them.
func decomposeComponentBased(task string, tctx TaskContext) []*types.Subtask {
	lowered := strings.ToLower(task)
	present := make(map[string]bool)
	for _, c := range componentOrder {
		for _, kw := range componentKeywords[c] {
			if strings.Contains(lowered, kw) {
				present[c] = true
				break
			}
		}
	}
	for _, c := range tctx.Components {
		c = strings.ToLower(c)
		for _, known := range componentOrder {
			if c == known {
				present[c] = true
			}
		}
	}

	if len(present) == 0 {
		return []*types.Subtask{{
			ID:          "subtask-1",
			Title:       task,
			Description: task,
			Complexity:  types.ComplexityMedium,
			Component:   "backend",
		}}
	}

	var subtasks []*types.Subtask
	ids := make(map[string]string)
	for _, c := range componentOrder {
		if !present[c] {
			continue
		}
		id := fmt.Sprintf("subtask-%d", len(subtasks)+1)
		ids[c] = id
		subtasks = append(subtasks, &types.Subtask{
			ID:          id,
			Title:       fmt.Sprintf("%s: %s", titleCase(c), task),
			Description: fmt.Sprintf("Handle the %s portion of: %s", c, task),
			Complexity:  componentComplexity(c),
			Component:   c,
		})
	}

	for _, st := range subtasks {
		if st.Component == "tests" {
			for _, other := range subtasks {
				if other.Component != "tests" {
					st.Dependencies = append(st.Dependencies, other.ID)
				}
			}
			continue
		}
		for _, dep := range componentDeps[st.Component] {
			if depID, ok := ids[dep]; ok {
				st.Dependencies = append(st.Dependencies, depID)
			}
		}
	}
	return subtasks
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func componentComplexity(component string) types.Complexity {
	switch component {
	case "tests":
		return types.ComplexityLow
	case "database", "auth":
		return types.ComplexityHigh
	default:
		return types.ComplexityMedium
	}
}

// domainOrder fixes detection and emission order for business domains
var domainOrder = []string{"user", "product", "cart", "order", "payment", "shipping"}

var domainKeywords = map[string][]string{
	"user":     {"user", "account", "profile", "customer"},
	"product":  {"product", "catalog", "inventory", "item"},
	"cart":     {"cart", "basket"},
	"order":    {"order", "checkout", "purchase"},
	"payment":  {"payment", "billing", "invoice"},
	"shipping": {"shipping", "delivery", "fulfillment"},
}

// domainDeps encode the business flow: orders need users and carts,
// carts need products, payment and shipping follow the order.
var domainDeps = map[string][]string{
	"cart":     {"product"},
	"order":    {"user", "cart"},
	"payment":  {"order"},
	"shipping": {"order"},
}

// decomposeDomainBased mirrors the component strategy over business
// domains with the domain flow ordering.
func decomposeDomainBased(task string, tctx TaskContext) []*types.Subtask {
	lowered := strings.ToLower(task)
	present := make(map[string]bool)
	for _, d := range domainOrder {
		for _, kw := range domainKeywords[d] {
			if strings.Contains(lowered, kw) {
				present[d] = true
				break
			}
		}
	}
	for _, d := range tctx.Domains {
		d = strings.ToLower(d)
		for _, known := range domainOrder {
			if d == known {
				present[d] = true
			}
		}
	}

	if len(present) == 0 {
		return []*types.Subtask{{
			ID:          "subtask-1",
			Title:       task,
			Description: task,
			Complexity:  types.ComplexityMedium,
		}}
	}

	var subtasks []*types.Subtask
	ids := make(map[string]string)
	for _, d := range domainOrder {
		if !present[d] {
			continue
		}
		id := fmt.Sprintf("subtask-%d", len(subtasks)+1)
		ids[d] = id
		subtasks = append(subtasks, &types.Subtask{
			ID:          id,
			Title:       fmt.Sprintf("%s domain: %s", titleCase(d), task),
			Description: fmt.Sprintf("Handle the %s domain for: %s", d, task),
			Complexity:  types.ComplexityMedium,
			Domain:      d,
		})
	}
	for _, st := range subtasks {
		for _, dep := range domainDeps[st.Domain] {
			if depID, ok := ids[dep]; ok {
				st.Dependencies = append(st.Dependencies, depID)
			}
		}
	}
	return subtasks
}

// decomposeFileBased groups the context files under their closest shared
// directory ancestor; each group becomes one subtask. Test groups depend
// on every implementation group.
func decomposeFileBased(task string, tctx TaskContext) []*types.Subtask {
	if len(tctx.Files) == 0 {
		return decomposeComponentBased(task, tctx)
	}

	groups := make(map[string][]string)
	for _, f := range tctx.Files {
		dir := path.Dir(f)
		groups[dir] = append(groups[dir], f)
	}
	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var subtasks []*types.Subtask
	ids := make(map[string]string)
	for i, dir := range dirs {
		id := fmt.Sprintf("subtask-%d", i+1)
		ids[dir] = id
		subtasks = append(subtasks, &types.Subtask{
			ID:          id,
			Title:       fmt.Sprintf("Update %s", dir),
			Description: fmt.Sprintf("%s (files: %s)", task, strings.Join(groups[dir], ", ")),
			Complexity:  groupComplexity(len(groups[dir])),
			Files:       groups[dir],
		})
	}

	// Tests come after implementation
	for _, st := range subtasks {
		if !isTestGroup(st.Files[0]) {
			continue
		}
		for _, other := range subtasks {
			if other.ID != st.ID && !isTestGroup(other.Files[0]) {
				st.Dependencies = append(st.Dependencies, other.ID)
			}
		}
	}
	return subtasks
}

func isTestGroup(file string) bool {
	dir := strings.ToLower(path.Dir(file))
	return strings.Contains(dir, "test") || strings.HasSuffix(strings.ToLower(file), "_test.go")
}

func groupComplexity(files int) types.Complexity {
	switch {
	case files <= 1:
		return types.ComplexityLow
	case files <= 3:
		return types.ComplexityMedium
	default:
		return types.ComplexityHigh
	}
}
