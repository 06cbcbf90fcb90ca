package taskstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/loomctl/loom/pkg/types"
)

var (
	headingPattern     = regexp.MustCompile(`^(#{1,2})\s+(.+?)\s*$`)
	checkboxPattern    = regexp.MustCompile(`^\s*- \[( |x|X)\] ([A-Za-z0-9_.-]+):\s*(.+?)\s*$`)
	relationPattern    = regexp.MustCompile(`(?:⚠\s*)?(?:blocked by|depends on)\s+(.+)$`)
	priorityTagPattern = regexp.MustCompile(`\s*\[(critical|high|medium|low)\]$`)
)

// HydrateOptions tune markdown hydration
type HydrateOptions struct {
	// ListName overrides the H1 title / file name as the list name
	ListName string
	// IncludeCompleted also creates tasks for checked items
	IncludeCompleted bool
}

// HydrateResult reports what one hydration produced
type HydrateResult struct {
	List    *types.TaskList
	Created []*types.Task
	Skipped int
}

// parsedItem is one checkbox line before task creation
type parsedItem struct {
	id        string
	subject   string
	epic      string
	completed bool
	priority  types.TaskPriority // explicit [priority] tag; empty means infer
	relations []string
}

// HydrateFile parses a human-authored markdown plan into tasks and a
// list. H2 headings become epics (kept as tags), checkbox lines of the
// form "- [ ] ID: Subject" become tasks, and "blocked by" / "depends on"
// annotations become dependency edges wired in a second pass once every
// item has a task id. Completed items are skipped unless opted in.
func (s *Store) HydrateFile(path string, opts HydrateOptions) (*HydrateResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	listName := opts.ListName
	epic := ""
	var items []*parsedItem
	skipped := 0

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			if m[1] == "#" {
				if listName == "" {
					listName = m[2]
				}
			} else {
				epic = m[2]
			}
			continue
		}
		if m := checkboxPattern.FindStringSubmatch(line); m != nil {
			item := &parsedItem{
				id:        m[2],
				subject:   m[3],
				epic:      epic,
				completed: m[1] != " ",
			}
			// A trailing "[high]" tag is an explicit priority, not part of
			// the subject or a dependency id. Strip it before relations.
			if pm := priorityTagPattern.FindStringSubmatchIndex(item.subject); pm != nil {
				item.priority = types.TaskPriority(item.subject[pm[2]:pm[3]])
				item.subject = strings.TrimSpace(item.subject[:pm[0]])
			}
			// Inline "⚠ blocked by A, B" suffix on the subject
			if rel := relationPattern.FindStringSubmatchIndex(item.subject); rel != nil {
				item.relations = splitIDs(item.subject[rel[2]:rel[3]])
				item.subject = strings.TrimSpace(strings.TrimSuffix(item.subject[:rel[0]], "⚠"))
			}
			if item.completed && !opts.IncludeCompleted {
				skipped++
				continue
			}
			items = append(items, item)
			continue
		}
		// Standalone annotation line attaches to the previous item
		trimmed := priorityTagPattern.ReplaceAllString(strings.TrimSpace(line), "")
		if m := relationPattern.FindStringSubmatch(trimmed); m != nil && len(items) > 0 {
			last := items[len(items)-1]
			last.relations = append(last.relations, splitIDs(m[1])...)
		}
	}

	if listName == "" {
		listName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no actionable items in %s", path)
	}

	// First pass: create every task and map item id -> task id
	idMap := make(map[string]string, len(items))
	var created []*types.Task
	for _, item := range items {
		priority := item.priority
		if priority == "" {
			priority = inferPriority(item.subject)
		}
		task := &types.Task{
			ID:       s.freeTaskID(item.id),
			Title:    item.subject,
			Priority: priority,
			Type:     inferType(item.subject),
		}
		if item.epic != "" {
			task.Tags = append(task.Tags, "epic:"+item.epic)
		}
		saved, err := s.CreateTask(task)
		if err != nil {
			return nil, fmt.Errorf("hydrating item %s: %w", item.id, err)
		}
		if item.completed {
			if saved, err = s.SetTaskStatus(saved.ID, types.TaskStatusDone); err != nil {
				return nil, err
			}
		}
		idMap[item.id] = saved.ID
		created = append(created, saved)
	}

	// Second pass: wire dependencies now that every id resolves
	for _, item := range items {
		for _, rel := range item.relations {
			depID, ok := idMap[rel]
			if !ok {
				// References an item that was skipped or never written
				s.logger.Warn().Str("item", item.id).Str("relation", rel).Msg("Dropping unresolvable dependency")
				continue
			}
			if err := s.AddDependency(idMap[item.id], depID); err != nil {
				return nil, fmt.Errorf("wiring %s -> %s: %w", item.id, rel, err)
			}
		}
	}

	taskIDs := make([]string, 0, len(created))
	for _, task := range created {
		taskIDs = append(taskIDs, task.ID)
	}
	list, err := s.CreateList(&types.TaskList{Name: listName, TaskIDs: taskIDs})
	if err != nil {
		return nil, err
	}

	// Re-read: dependency wiring may have flipped statuses
	for i, task := range created {
		if fresh, err := s.GetTask(task.ID); err == nil {
			created[i] = fresh
		}
	}
	s.logger.Info().Str("path", path).Int("tasks", len(created)).Int("skipped", skipped).Msg("Hydrated plan file")
	return &HydrateResult{List: list, Created: created, Skipped: skipped}, nil
}

// freeTaskID keeps the authored item id when it is not taken
func (s *Store) freeTaskID(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, taken := s.tasks[id]; !taken {
		return id
	}
	return "" // CreateTask generates one
}

func splitIDs(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func inferPriority(subject string) types.TaskPriority {
	lowered := strings.ToLower(subject)
	switch {
	case strings.Contains(lowered, "critical") || strings.Contains(lowered, "urgent"):
		return types.TaskPriorityCritical
	case strings.Contains(lowered, "important") || strings.Contains(lowered, "security"):
		return types.TaskPriorityHigh
	case strings.Contains(lowered, "nice to have") || strings.Contains(lowered, "someday"):
		return types.TaskPriorityLow
	default:
		return types.TaskPriorityMedium
	}
}

func inferType(subject string) types.TaskType {
	lowered := strings.ToLower(subject)
	switch {
	case strings.Contains(lowered, "bug") || strings.Contains(lowered, "fix") || strings.Contains(lowered, "crash"):
		return types.TaskTypeBug
	case strings.Contains(lowered, "research") || strings.Contains(lowered, "investigate") || strings.Contains(lowered, "explore"):
		return types.TaskTypeResearch
	case strings.Contains(lowered, "chore") || strings.Contains(lowered, "cleanup") || strings.Contains(lowered, "upgrade"):
		return types.TaskTypeChore
	default:
		return types.TaskTypeFeature
	}
}
