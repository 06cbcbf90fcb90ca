package taskstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
)

// StaleLockAge is the default age a held lock must reach before another
// writer may steal it. WithLockStaleness overrides it per store.
const StaleLockAge = 30 * time.Second

const lockRetryInterval = 50 * time.Millisecond

// Lock is one held cooperative lock
type Lock struct {
	ID         string
	Path       string
	PID        int       `json:"pid"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// AcquireLock takes the cooperative lock for an entity id, waiting up to
// timeout. Locks rely on atomic directory creation under the store's
// .lock/ sibling; a lock older than the store's staleness horizon is
// stolen.
func (s *Store) AcquireLock(id string, timeout time.Duration) (*Lock, error) {
	if id == "" {
		return nil, errdefs.Wrap(errdefs.ErrInvalidSpec, "", "lock id must not be empty")
	}
	dir := filepath.Join(s.basePath, ".lock", id)
	deadline := time.Now().Add(timeout)

	for {
		if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
			return nil, err
		}
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			lock := &Lock{
				ID:         id,
				Path:       dir,
				PID:        os.Getpid(),
				AcquiredAt: time.Now(),
			}
			data, merr := json.Marshal(lock)
			if merr == nil {
				merr = os.WriteFile(filepath.Join(dir, "meta.json"), data, 0o644)
			}
			if merr != nil {
				_ = os.RemoveAll(dir)
				return nil, merr
			}
			return lock, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}

		if s.stealIfStale(dir) {
			continue
		}
		if !time.Now().Before(deadline) {
			return nil, errdefs.Wrap(errdefs.ErrLockHeld, id, "lock held by another writer")
		}
		time.Sleep(lockRetryInterval)
	}
}

// stealIfStale removes the lock directory when its metadata is older than
// the staleness horizon or unreadable, returning true when a retry is
// worthwhile.
func (s *Store) stealIfStale(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		// Unreadable metadata: only steal once the directory itself aged out
		info, serr := os.Stat(dir)
		if serr != nil {
			return true // vanished between attempts
		}
		if time.Since(info.ModTime()) < s.lockStaleness {
			return false
		}
		s.logger.Warn().Str("lock", dir).Msg("Removing lock with unreadable metadata")
		return os.RemoveAll(dir) == nil
	}

	var held Lock
	if err := json.Unmarshal(data, &held); err != nil || time.Since(held.AcquiredAt) >= s.lockStaleness {
		s.logger.Warn().Str("lock", dir).Int("pid", held.PID).Msg("Stealing stale lock")
		return os.RemoveAll(dir) == nil
	}
	return false
}

// ReleaseLock drops a held lock. Releasing a lock that was stolen or
// already released is not an error.
func (s *Store) ReleaseLock(lock *Lock) error {
	if lock == nil || lock.Path == "" {
		return nil
	}
	return os.RemoveAll(lock.Path)
}
