package taskstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// Store is the durable task database: one JSON document per task and per
// list under the base path, plus an index of list ids. All mutations are
// serialized on one mutex and written through to disk.
type Store struct {
	basePath      string
	broker        *events.Broker // nil disables events
	logger        zerolog.Logger
	lockStaleness time.Duration

	mu    sync.RWMutex
	tasks map[string]*types.Task
	lists map[string]*types.TaskList
}

// Option adjusts store behavior
type Option func(*Store)

// WithLockStaleness overrides how old a held lock must be before another
// writer may steal it.
func WithLockStaleness(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockStaleness = d
		}
	}
}

// New opens (or initializes) a task store at basePath and loads every
// persisted entity into memory.
func New(basePath string, broker *events.Broker, opts ...Option) (*Store, error) {
	s := &Store{
		basePath:      basePath,
		broker:        broker,
		logger:        log.WithComponent("taskstore"),
		lockStaleness: StaleLockAge,
		tasks:         make(map[string]*types.Task),
		lists:         make(map[string]*types.TaskList),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, dir := range []string{s.tasksDir(), s.listsDir(), filepath.Join(basePath, ".lock")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("initializing task store: %w", err)
		}
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	s.logger.Info().Str("path", basePath).Int("tasks", len(s.tasks)).Int("lists", len(s.lists)).Msg("Task store opened")
	return s, nil
}

func (s *Store) tasksDir() string { return filepath.Join(s.basePath, "tasks") }
func (s *Store) listsDir() string { return filepath.Join(s.basePath, "lists") }

func (s *Store) load() error {
	taskFiles, err := filepath.Glob(filepath.Join(s.tasksDir(), "*.json"))
	if err != nil {
		return err
	}
	for _, f := range taskFiles {
		var task types.Task
		if err := readJSON(f, &task); err != nil {
			s.logger.Warn().Err(err).Str("file", f).Msg("Skipping unreadable task file")
			continue
		}
		s.tasks[task.ID] = &task
	}

	listFiles, err := filepath.Glob(filepath.Join(s.listsDir(), "*.json"))
	if err != nil {
		return err
	}
	for _, f := range listFiles {
		var list types.TaskList
		if err := readJSON(f, &list); err != nil {
			s.logger.Warn().Err(err).Str("file", f).Msg("Skipping unreadable list file")
			continue
		}
		s.lists[list.ID] = &list
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON writes atomically via a temp file rename
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Store) persistTask(task *types.Task) error {
	return writeJSON(filepath.Join(s.tasksDir(), task.ID+".json"), task)
}

func (s *Store) persistList(list *types.TaskList) error {
	if err := writeJSON(filepath.Join(s.listsDir(), list.ID+".json"), list); err != nil {
		return err
	}
	return s.persistIndex()
}

// persistIndex rewrites index.json with the sorted list ids
func (s *Store) persistIndex() error {
	ids := make([]string, 0, len(s.lists))
	for id := range s.lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return writeJSON(filepath.Join(s.basePath, "index.json"), ids)
}

// CreateTask validates, defaults, and persists a new task. Declared
// dependencies must already exist; their blocks sets are updated to keep
// the edges dual.
func (s *Store) CreateTask(task *types.Task) (*types.Task, error) {
	if task == nil || strings.TrimSpace(task.Title) == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "task title must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *task
	if copied.ID == "" {
		copied.ID = "task-" + uuid.New().String()
	}
	if _, exists := s.tasks[copied.ID]; exists {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, copied.ID, "task %q already exists", copied.ID)
	}
	if copied.Status == "" {
		copied.Status = types.TaskStatusOpen
	}
	if copied.Priority == "" {
		copied.Priority = types.TaskPriorityMedium
	}
	if copied.Type == "" {
		copied.Type = types.TaskTypeFeature
	}
	now := time.Now()
	copied.CreatedAt = now
	copied.UpdatedAt = now
	copied.Blocks = nil

	deps := copied.DependsOn
	copied.DependsOn = nil
	for _, dep := range deps {
		if _, ok := s.tasks[dep]; !ok {
			return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, copied.ID, "dependency %q does not exist", dep)
		}
	}

	s.tasks[copied.ID] = &copied
	for _, dep := range deps {
		if err := s.addDependencyLocked(copied.ID, dep); err != nil {
			delete(s.tasks, copied.ID)
			return nil, err
		}
	}

	if err := s.persistTask(&copied); err != nil {
		delete(s.tasks, copied.ID)
		return nil, err
	}
	metrics.TaskStoreOps.WithLabelValues("create").Inc()
	s.emit(events.EventTaskCreated, fmt.Sprintf("Task %s created", copied.ID),
		map[string]string{"task_id": copied.ID})

	result := copied
	return &result, nil
}

// GetTask returns a copy of one task
func (s *Store) GetTask(id string) (*types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, id, "task %q not found", id)
	}
	copied := *task
	return &copied, nil
}

// ListTasks returns copies of every task, sorted by creation time then id
func (s *Store) ListTasks() []*types.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		copied := *task
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// UpdateTask overwrites a task's mutable fields. Status changes flow
// through the same completion/unblock logic as SetTaskStatus; the
// dependency edges themselves change only via AddDependency/DeleteTask.
func (s *Store) UpdateTask(task *types.Task) (*types.Task, error) {
	if task == nil || task.ID == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "task id must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[task.ID]
	if !ok {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, task.ID, "task %q not found", task.ID)
	}

	oldStatus := current.Status
	current.Title = task.Title
	current.Description = task.Description
	current.Assignee = task.Assignee
	current.Priority = task.Priority
	current.Type = task.Type
	current.Tags = task.Tags
	current.Branch = task.Branch
	current.Commits = task.Commits
	current.Sessions = task.Sessions
	current.UpdatedAt = time.Now()

	if task.Status != "" && task.Status != oldStatus {
		if err := s.setStatusLocked(current, task.Status); err != nil {
			return nil, err
		}
	} else if err := s.persistTask(current); err != nil {
		return nil, err
	}

	metrics.TaskStoreOps.WithLabelValues("update").Inc()
	s.emit(events.EventTaskUpdated, fmt.Sprintf("Task %s updated", current.ID),
		map[string]string{"task_id": current.ID})
	copied := *current
	return &copied, nil
}

// SetTaskStatus transitions one task
func (s *Store) SetTaskStatus(id string, status types.TaskStatus) (*types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, id, "task %q not found", id)
	}
	if task.Status == status {
		copied := *task
		return &copied, nil
	}
	task.UpdatedAt = time.Now()
	if err := s.setStatusLocked(task, status); err != nil {
		return nil, err
	}
	metrics.TaskStoreOps.WithLabelValues("status").Inc()
	copied := *task
	return &copied, nil
}

// setStatusLocked applies a status transition: completion stamps
// completedAt and sweeps the blocks set for tasks that can open up, and
// every transition may auto-complete containing lists.
func (s *Store) setStatusLocked(task *types.Task, status types.TaskStatus) error {
	old := task.Status
	task.Status = status

	if status == types.TaskStatusDone {
		now := time.Now()
		task.CompletedAt = &now
		if err := s.persistTask(task); err != nil {
			return err
		}
		s.unblockDependentsLocked(task)
	} else {
		if old == types.TaskStatusDone {
			task.CompletedAt = nil
		}
		if err := s.persistTask(task); err != nil {
			return err
		}
	}

	s.emit(events.EventTaskStatusChanged,
		fmt.Sprintf("Task %s: %s -> %s", task.ID, old, status),
		map[string]string{"task_id": task.ID, "old": string(old), "new": string(status)})
	s.refreshListsLocked(task.ID)
	return nil
}

// unblockDependentsLocked opens every blocked dependent whose
// dependencies are now all done.
func (s *Store) unblockDependentsLocked(task *types.Task) {
	for _, blockedID := range task.Blocks {
		dependent, ok := s.tasks[blockedID]
		if !ok || dependent.Status != types.TaskStatusBlocked {
			continue
		}
		ready := true
		for _, dep := range dependent.DependsOn {
			if d, ok := s.tasks[dep]; !ok || d.Status != types.TaskStatusDone {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		dependent.Status = types.TaskStatusOpen
		dependent.UpdatedAt = time.Now()
		if err := s.persistTask(dependent); err != nil {
			s.logger.Error().Err(err).Str("task_id", dependent.ID).Msg("Failed to persist unblocked task")
		}
		s.emit(events.EventTaskStatusChanged,
			fmt.Sprintf("Task %s: blocked -> open", dependent.ID),
			map[string]string{"task_id": dependent.ID, "old": string(types.TaskStatusBlocked), "new": string(types.TaskStatusOpen)})
	}
}

// DeleteTask removes a task, strips it from every list, and rewrites the
// dependency edges of its neighbors so duals stay exact.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, id, "task %q not found", id)
	}

	for _, dep := range task.DependsOn {
		if neighbor, ok := s.tasks[dep]; ok {
			neighbor.Blocks = removeID(neighbor.Blocks, id)
			neighbor.UpdatedAt = time.Now()
			if err := s.persistTask(neighbor); err != nil {
				s.logger.Error().Err(err).Str("task_id", neighbor.ID).Msg("Failed to persist edge rewrite")
			}
		}
	}
	for _, blocked := range task.Blocks {
		if neighbor, ok := s.tasks[blocked]; ok {
			neighbor.DependsOn = removeID(neighbor.DependsOn, id)
			neighbor.UpdatedAt = time.Now()
			if err := s.persistTask(neighbor); err != nil {
				s.logger.Error().Err(err).Str("task_id", neighbor.ID).Msg("Failed to persist edge rewrite")
			}
		}
	}

	delete(s.tasks, id)
	if err := os.Remove(filepath.Join(s.tasksDir(), id+".json")); err != nil && !os.IsNotExist(err) {
		return err
	}

	for _, list := range s.lists {
		before := len(list.TaskIDs)
		list.TaskIDs = removeID(list.TaskIDs, id)
		if len(list.TaskIDs) != before {
			list.UpdatedAt = time.Now()
			if err := s.persistList(list); err != nil {
				s.logger.Error().Err(err).Str("list_id", list.ID).Msg("Failed to persist list rewrite")
			}
			s.emit(events.EventListUpdated, fmt.Sprintf("List %s updated", list.ID),
				map[string]string{"list_id": list.ID})
		}
	}

	metrics.TaskStoreOps.WithLabelValues("delete").Inc()
	s.emit(events.EventTaskDeleted, fmt.Sprintf("Task %s deleted", id),
		map[string]string{"task_id": id})
	return nil
}

// AddDependency records that task depends on dependsOn, keeping the dual
// blocks edge and rejecting edges that would close a cycle. A task with
// an unfinished new dependency moves to blocked.
func (s *Store) AddDependency(taskID, dependsOnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.addDependencyLocked(taskID, dependsOnID); err != nil {
		return err
	}
	task := s.tasks[taskID]
	if err := s.persistTask(task); err != nil {
		return err
	}
	if err := s.persistTask(s.tasks[dependsOnID]); err != nil {
		return err
	}
	metrics.TaskStoreOps.WithLabelValues("dependency").Inc()
	s.emit(events.EventTaskUpdated, fmt.Sprintf("Task %s now depends on %s", taskID, dependsOnID),
		map[string]string{"task_id": taskID, "depends_on": dependsOnID})
	return nil
}

func (s *Store) addDependencyLocked(taskID, dependsOnID string) error {
	if taskID == dependsOnID {
		return errdefs.Wrap(errdefs.ErrCircularDependency, taskID, "task cannot depend on itself")
	}
	task, ok := s.tasks[taskID]
	if !ok {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, taskID, "task %q not found", taskID)
	}
	dep, ok := s.tasks[dependsOnID]
	if !ok {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, dependsOnID, "task %q not found", dependsOnID)
	}
	for _, existing := range task.DependsOn {
		if existing == dependsOnID {
			return nil
		}
	}
	if s.reachesLocked(dependsOnID, taskID) {
		return errdefs.Wrapf(errdefs.ErrCircularDependency, taskID,
			"%s -> %s would close a dependency cycle", taskID, dependsOnID)
	}

	task.DependsOn = append(task.DependsOn, dependsOnID)
	dep.Blocks = append(dep.Blocks, taskID)
	now := time.Now()
	task.UpdatedAt = now
	dep.UpdatedAt = now
	if dep.Status != types.TaskStatusDone && task.Status == types.TaskStatusOpen {
		task.Status = types.TaskStatusBlocked
	}
	return nil
}

// reachesLocked reports whether target is reachable from start by
// following dependsOn edges.
func (s *Store) reachesLocked(start, target string) bool {
	seen := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		if task, ok := s.tasks[id]; ok {
			stack = append(stack, task.DependsOn...)
		}
	}
	return false
}

// CreateList persists a new task list. Referenced tasks must exist.
func (s *Store) CreateList(list *types.TaskList) (*types.TaskList, error) {
	if list == nil || strings.TrimSpace(list.Name) == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "list name must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *list
	if copied.ID == "" {
		copied.ID = "list-" + uuid.New().String()
	}
	if _, exists := s.lists[copied.ID]; exists {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, copied.ID, "list %q already exists", copied.ID)
	}
	for _, taskID := range copied.TaskIDs {
		if _, ok := s.tasks[taskID]; !ok {
			return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, copied.ID, "task %q does not exist", taskID)
		}
	}
	if copied.Status == "" {
		copied.Status = types.TaskListStatusActive
	}
	now := time.Now()
	copied.CreatedAt = now
	copied.UpdatedAt = now

	s.lists[copied.ID] = &copied
	if err := s.persistList(&copied); err != nil {
		delete(s.lists, copied.ID)
		return nil, err
	}
	metrics.TaskStoreOps.WithLabelValues("create_list").Inc()
	s.emit(events.EventListUpdated, fmt.Sprintf("List %s created", copied.ID),
		map[string]string{"list_id": copied.ID})
	result := copied
	return &result, nil
}

// GetList returns a copy of one list
func (s *Store) GetList(id string) (*types.TaskList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[id]
	if !ok {
		return nil, errdefs.Wrapf(errdefs.ErrInvalidSpec, id, "list %q not found", id)
	}
	copied := *list
	copied.TaskIDs = append([]string(nil), list.TaskIDs...)
	return &copied, nil
}

// ListLists returns copies of every list, sorted by id
func (s *Store) ListLists() []*types.TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.TaskList, 0, len(s.lists))
	for _, list := range s.lists {
		copied := *list
		copied.TaskIDs = append([]string(nil), list.TaskIDs...)
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddTaskToList appends a task to a list
func (s *Store) AddTaskToList(listID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[listID]
	if !ok {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, listID, "list %q not found", listID)
	}
	if _, ok := s.tasks[taskID]; !ok {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, taskID, "task %q not found", taskID)
	}
	for _, existing := range list.TaskIDs {
		if existing == taskID {
			return nil
		}
	}
	list.TaskIDs = append(list.TaskIDs, taskID)
	list.UpdatedAt = time.Now()
	if list.Status == types.TaskListStatusCompleted {
		list.Status = types.TaskListStatusActive
	}
	if err := s.persistList(list); err != nil {
		return err
	}
	s.emit(events.EventListUpdated, fmt.Sprintf("List %s updated", listID),
		map[string]string{"list_id": listID, "task_id": taskID})
	return nil
}

// DeleteList removes a list; its tasks survive
func (s *Store) DeleteList(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[id]; !ok {
		return errdefs.Wrapf(errdefs.ErrInvalidSpec, id, "list %q not found", id)
	}
	delete(s.lists, id)
	if err := os.Remove(filepath.Join(s.listsDir(), id+".json")); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := s.persistIndex(); err != nil {
		return err
	}
	metrics.TaskStoreOps.WithLabelValues("delete_list").Inc()
	s.emit(events.EventListUpdated, fmt.Sprintf("List %s deleted", id),
		map[string]string{"list_id": id})
	return nil
}

// refreshListsLocked auto-completes (or reactivates) every list holding
// the task.
func (s *Store) refreshListsLocked(taskID string) {
	for _, list := range s.lists {
		holds := false
		for _, id := range list.TaskIDs {
			if id == taskID {
				holds = true
				break
			}
		}
		if !holds || list.Status == types.TaskListStatusArchived {
			continue
		}

		allDone := len(list.TaskIDs) > 0
		for _, id := range list.TaskIDs {
			task, ok := s.tasks[id]
			if !ok || task.Status != types.TaskStatusDone {
				allDone = false
				break
			}
		}

		var next types.TaskListStatus
		switch {
		case allDone && list.Status == types.TaskListStatusActive:
			next = types.TaskListStatusCompleted
		case !allDone && list.Status == types.TaskListStatusCompleted:
			next = types.TaskListStatusActive
		default:
			continue
		}
		list.Status = next
		list.UpdatedAt = time.Now()
		if err := s.persistList(list); err != nil {
			s.logger.Error().Err(err).Str("list_id", list.ID).Msg("Failed to persist list status")
		}
		s.emit(events.EventListUpdated, fmt.Sprintf("List %s now %s", list.ID, next),
			map[string]string{"list_id": list.ID, "status": string(next)})
	}
}

func (s *Store) emit(eventType events.EventType, message string, metadata map[string]string) {
	if s.broker != nil {
		s.broker.Emit(eventType, message, metadata)
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
