package taskstore

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/types"
)

const epicTagPrefix = "epic:"

// SyncToFile writes a list back out as a markdown plan: an H1 title, a
// generation stamp, a completion tally, and one H2 section per epic with
// checkbox lines carrying blocked-by and priority annotations.
func (s *Store) SyncToFile(listID, path string) error {
	list, err := s.GetList(listID)
	if err != nil {
		return err
	}

	tasks := make([]*types.Task, 0, len(list.TaskIDs))
	done := 0
	for _, id := range list.TaskIDs {
		task, err := s.GetTask(id)
		if err != nil {
			continue // deleted between reads
		}
		tasks = append(tasks, task)
		if task.Status == types.TaskStatusDone {
			done++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", list.Name)
	fmt.Fprintf(&b, "Generated at %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "%d/%d tasks complete\n", done, len(tasks))

	// Keep epics in first-appearance order
	var epics []string
	grouped := make(map[string][]*types.Task)
	for _, task := range tasks {
		epic := epicOf(task)
		if _, seen := grouped[epic]; !seen {
			epics = append(epics, epic)
		}
		grouped[epic] = append(grouped[epic], task)
	}

	for _, epic := range epics {
		heading := epic
		if heading == "" {
			heading = "Tasks"
		}
		fmt.Fprintf(&b, "\n## %s\n\n", heading)
		for _, task := range grouped[epic] {
			b.WriteString(taskLine(task))
			b.WriteString("\n")
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	metrics.TaskStoreOps.WithLabelValues("sync").Inc()
	s.logger.Info().Str("list_id", listID).Str("path", path).Int("tasks", len(tasks)).Msg("Synced list to plan file")
	return nil
}

func taskLine(task *types.Task) string {
	box := " "
	if task.Status == types.TaskStatusDone {
		box = "x"
	}
	line := fmt.Sprintf("- [%s] %s: %s", box, task.ID, task.Title)
	if len(task.DependsOn) > 0 {
		line += " ⚠ blocked by " + strings.Join(task.DependsOn, ", ")
	}
	if task.Priority != "" && task.Priority != types.TaskPriorityMedium {
		line += fmt.Sprintf(" [%s]", task.Priority)
	}
	return line
}

func epicOf(task *types.Task) string {
	for _, tag := range task.Tags {
		if strings.HasPrefix(tag, epicTagPrefix) {
			return strings.TrimPrefix(tag, epicTagPrefix)
		}
	}
	return ""
}

// UpdateFileInPlace rewrites only the checkbox characters of an existing
// plan file to match current task statuses, preserving every other byte
// of the author's prose.
func (s *Store) UpdateFileInPlace(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading plan file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	updated := 0
	for i, line := range lines {
		m := checkboxPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		task, err := s.GetTask(m[2])
		if err != nil {
			continue // not one of ours
		}
		want := " "
		if task.Status == types.TaskStatusDone {
			want = "x"
		}
		if m[1] == want || (m[1] == "X" && want == "x") {
			continue
		}
		idx := strings.Index(line, "[")
		lines[i] = line[:idx+1] + want + line[idx+2:]
		updated++
	}
	if updated == 0 {
		return nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	metrics.TaskStoreOps.WithLabelValues("sync_inplace").Inc()
	s.logger.Info().Str("path", path).Int("updated", updated).Msg("Updated checkboxes in place")
	return nil
}
