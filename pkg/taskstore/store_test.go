package taskstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func mustCreate(t *testing.T, s *Store, title string) *types.Task {
	t.Helper()
	task, err := s.CreateTask(&types.Task{Title: title})
	require.NoError(t, err)
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newTestStore(t)
	task := mustCreate(t, s, "Ship it")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, types.TaskStatusOpen, task.Status)
	assert.Equal(t, types.TaskPriorityMedium, task.Priority)
	assert.Equal(t, types.TaskTypeFeature, task.Type)
	assert.False(t, task.CreatedAt.IsZero())

	_, err := s.CreateTask(&types.Task{Title: "   "})
	assert.ErrorIs(t, err, errdefs.ErrInvalidSpec)

	_, err = s.CreateTask(&types.Task{ID: task.ID, Title: "duplicate"})
	assert.ErrorIs(t, err, errdefs.ErrInvalidSpec)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, nil)
	require.NoError(t, err)

	task := mustCreate(t, s, "Survive restarts")
	_, err = s.CreateList(&types.TaskList{Name: "plan", TaskIDs: []string{task.ID}})
	require.NoError(t, err)

	reopened, err := New(dir, nil)
	require.NoError(t, err)
	got, err := reopened.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Survive restarts", got.Title)
	assert.Len(t, reopened.ListLists(), 1)
}

func TestDependencyDuals(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")

	require.NoError(t, s.AddDependency(b.ID, a.ID))

	gotA, _ := s.GetTask(a.ID)
	gotB, _ := s.GetTask(b.ID)
	assert.Equal(t, []string{b.ID}, gotA.Blocks)
	assert.Equal(t, []string{a.ID}, gotB.DependsOn)
	// b now waits on unfinished a
	assert.Equal(t, types.TaskStatusBlocked, gotB.Status)

	// Duplicate edges are a no-op
	require.NoError(t, s.AddDependency(b.ID, a.ID))
	gotA, _ = s.GetTask(a.ID)
	assert.Len(t, gotA.Blocks, 1)
}

func TestCircularDependencyRejected(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")
	c := mustCreate(t, s, "c")

	require.NoError(t, s.AddDependency(b.ID, a.ID))
	require.NoError(t, s.AddDependency(c.ID, b.ID))

	assert.ErrorIs(t, s.AddDependency(a.ID, c.ID), errdefs.ErrCircularDependency)
	assert.ErrorIs(t, s.AddDependency(a.ID, a.ID), errdefs.ErrCircularDependency)

	// Rejected edge left no residue
	gotA, _ := s.GetTask(a.ID)
	assert.Empty(t, gotA.DependsOn)
}

func TestCompletionUnblocksDependents(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")
	c := mustCreate(t, s, "c")
	require.NoError(t, s.AddDependency(c.ID, a.ID))
	require.NoError(t, s.AddDependency(c.ID, b.ID))

	done, err := s.SetTaskStatus(a.ID, types.TaskStatusDone)
	require.NoError(t, err)
	assert.NotNil(t, done.CompletedAt)

	// c still waits on b
	gotC, _ := s.GetTask(c.ID)
	assert.Equal(t, types.TaskStatusBlocked, gotC.Status)

	_, err = s.SetTaskStatus(b.ID, types.TaskStatusDone)
	require.NoError(t, err)
	gotC, _ = s.GetTask(c.ID)
	assert.Equal(t, types.TaskStatusOpen, gotC.Status)
}

func TestDeleteTaskRewritesEdgesAndLists(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")
	c := mustCreate(t, s, "c")
	require.NoError(t, s.AddDependency(b.ID, a.ID))
	require.NoError(t, s.AddDependency(c.ID, b.ID))

	list, err := s.CreateList(&types.TaskList{Name: "plan", TaskIDs: []string{a.ID, b.ID, c.ID}})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(b.ID))

	gotA, _ := s.GetTask(a.ID)
	gotC, _ := s.GetTask(c.ID)
	assert.Empty(t, gotA.Blocks)
	assert.Empty(t, gotC.DependsOn)

	gotList, _ := s.GetList(list.ID)
	assert.Equal(t, []string{a.ID, c.ID}, gotList.TaskIDs)

	_, err = s.GetTask(b.ID)
	assert.Error(t, err)
}

func TestListAutoCompletion(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "a")
	b := mustCreate(t, s, "b")
	list, err := s.CreateList(&types.TaskList{Name: "plan", TaskIDs: []string{a.ID, b.ID}})
	require.NoError(t, err)

	_, err = s.SetTaskStatus(a.ID, types.TaskStatusDone)
	require.NoError(t, err)
	got, _ := s.GetList(list.ID)
	assert.Equal(t, types.TaskListStatusActive, got.Status)

	_, err = s.SetTaskStatus(b.ID, types.TaskStatusDone)
	require.NoError(t, err)
	got, _ = s.GetList(list.ID)
	assert.Equal(t, types.TaskListStatusCompleted, got.Status)

	// Reopening a task reactivates the list
	_, err = s.SetTaskStatus(b.ID, types.TaskStatusInProgress)
	require.NoError(t, err)
	got, _ = s.GetList(list.ID)
	assert.Equal(t, types.TaskListStatusActive, got.Status)
	reopened, _ := s.GetTask(b.ID)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUpdateTaskRefreshesTimestamp(t *testing.T) {
	s := newTestStore(t)
	task := mustCreate(t, s, "a")
	before := task.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	task.Description = "more detail"
	updated, err := s.UpdateTask(task)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestLocks(t *testing.T) {
	s := newTestStore(t)

	lock, err := s.AcquireLock("list-1", 100*time.Millisecond)
	require.NoError(t, err)

	_, err = s.AcquireLock("list-1", 50*time.Millisecond)
	assert.ErrorIs(t, err, errdefs.ErrLockHeld)

	// Different resource is independent
	other, err := s.AcquireLock("list-2", 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, s.ReleaseLock(other))

	require.NoError(t, s.ReleaseLock(lock))
	relocked, err := s.AcquireLock("list-1", 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, s.ReleaseLock(relocked))

	// Releasing twice is harmless
	require.NoError(t, s.ReleaseLock(relocked))
	require.NoError(t, s.ReleaseLock(nil))
}

func TestStaleLockStolen(t *testing.T) {
	s := newTestStore(t)
	lock, err := s.AcquireLock("list-1", 50*time.Millisecond)
	require.NoError(t, err)

	// Age the lock past the staleness horizon
	lock.AcquiredAt = time.Now().Add(-StaleLockAge - time.Second)
	require.NoError(t, writeJSON(filepath.Join(lock.Path, "meta.json"), lock))

	stolen, err := s.AcquireLock("list-1", 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, s.ReleaseLock(stolen))
}

func TestLockStalenessConfigurable(t *testing.T) {
	s, err := New(t.TempDir(), nil, WithLockStaleness(time.Millisecond))
	require.NoError(t, err)

	_, err = s.AcquireLock("list-1", 50*time.Millisecond)
	require.NoError(t, err)

	// With a millisecond horizon the held lock goes stale immediately
	time.Sleep(5 * time.Millisecond)
	stolen, err := s.AcquireLock("list-1", 500*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, s.ReleaseLock(stolen))
}

func TestHydrateFile(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "plan.md")
	content := `# Launch Plan

Some prose the parser ignores.

## Backend

- [ ] T1: Set up the database schema
- [ ] T2: Fix crash in login handler ⚠ blocked by T1
- [x] T3: Research critical auth providers

## Frontend

- [ ] T4: Build the dashboard
  depends on T2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := s.HydrateFile(path, HydrateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Launch Plan", result.List.Name)
	assert.Equal(t, 1, result.Skipped) // T3 is completed
	require.Len(t, result.Created, 3)

	t1, err := s.GetTask("T1")
	require.NoError(t, err)
	assert.Equal(t, types.TaskStatusOpen, t1.Status)
	assert.Contains(t, t1.Tags, "epic:Backend")

	t2, err := s.GetTask("T2")
	require.NoError(t, err)
	assert.Equal(t, types.TaskTypeBug, t2.Type)
	assert.Equal(t, "Fix crash in login handler", t2.Title)
	assert.Equal(t, []string{"T1"}, t2.DependsOn)
	assert.Equal(t, types.TaskStatusBlocked, t2.Status)

	t4, err := s.GetTask("T4")
	require.NoError(t, err)
	assert.Contains(t, t4.Tags, "epic:Frontend")
	assert.Equal(t, []string{"T2"}, t4.DependsOn)
}

func TestHydrateIncludeCompleted(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "plan.md")
	content := "# Plan\n\n- [x] T1: Ship critical fix\n- [ ] T2: Follow up\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := s.HydrateFile(path, HydrateOptions{IncludeCompleted: true})
	require.NoError(t, err)
	assert.Zero(t, result.Skipped)
	require.Len(t, result.Created, 2)

	t1, err := s.GetTask("T1")
	require.NoError(t, err)
	assert.Equal(t, types.TaskStatusDone, t1.Status)
	assert.NotNil(t, t1.CompletedAt)
	assert.Equal(t, types.TaskPriorityCritical, t1.Priority)
}

func TestSyncRoundTrip(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "plan.md")
	content := `# Plan

## Core

- [ ] T1: Set up database
- [ ] T2: Wire the api ⚠ blocked by T1 [high]
- [ ] T3: Polish docs [low]
`
	require.NoError(t, os.WriteFile(source, []byte(content), 0o644))

	result, err := s.HydrateFile(source, HydrateOptions{})
	require.NoError(t, err)

	_, err = s.SetTaskStatus("T1", types.TaskStatusDone)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.md")
	require.NoError(t, s.SyncToFile(result.List.ID, out))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(written)
	assert.Contains(t, text, "# Plan")
	assert.Contains(t, text, "1/3 tasks complete")
	assert.Contains(t, text, "## Core")
	assert.Contains(t, text, "- [x] T1: Set up database")
	assert.Contains(t, text, "- [ ] T2: Wire the api ⚠ blocked by T1 [high]")
	assert.Contains(t, text, "- [ ] T3: Polish docs [low]")

	// Hydrating the synced file into a fresh store reproduces the graph,
	// the titles, and the priorities
	s2 := newTestStore(t)
	result2, err := s2.HydrateFile(out, HydrateOptions{IncludeCompleted: true})
	require.NoError(t, err)
	require.Len(t, result2.Created, 3)
	t2, err := s2.GetTask("T2")
	require.NoError(t, err)
	assert.Equal(t, "Wire the api", t2.Title)
	assert.Equal(t, []string{"T1"}, t2.DependsOn)
	assert.Equal(t, types.TaskPriorityHigh, t2.Priority)
	t3, err := s2.GetTask("T3")
	require.NoError(t, err)
	assert.Equal(t, types.TaskPriorityLow, t3.Priority)
}

func TestUpdateFileInPlace(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.md")
	content := `# Plan

Intro prose stays exactly as written.

- [ ] T1: First thing
- [ ] T2: Second thing

Closing remarks also survive.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	_, err := s.HydrateFile(path, HydrateOptions{})
	require.NoError(t, err)

	_, err = s.SetTaskStatus("T1", types.TaskStatusDone)
	require.NoError(t, err)

	require.NoError(t, s.UpdateFileInPlace(path))
	updated, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(updated)
	assert.Contains(t, text, "- [x] T1: First thing")
	assert.Contains(t, text, "- [ ] T2: Second thing")
	assert.Contains(t, text, "Intro prose stays exactly as written.")
	assert.Contains(t, text, "Closing remarks also survive.")

	// No-op when nothing changed
	before, _ := os.ReadFile(path)
	require.NoError(t, s.UpdateFileInPlace(path))
	after, _ := os.ReadFile(path)
	assert.Equal(t, string(before), string(after))
}
