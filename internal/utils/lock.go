package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileSuffix = ".lock"

// CacheLock serializes writers of the sqlite listing cache across
// processes.
type CacheLock struct {
	lock *flock.Flock
	path string
}

// NewCacheLock creates a lock file next to the cache database.
func NewCacheLock(dbPath string) *CacheLock {
	lockPath := dbPath + lockFileSuffix
	return &CacheLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}
}

// Lock acquires the cache lock, waiting if another process holds it. The
// lock is taken before the database is opened, so on a first run the
// cache directory does not exist yet; it is created here.
func (l *CacheLock) Lock() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory for %s: %w", l.path, err)
	}
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		fmt.Fprintf(os.Stderr, "Another gnsscope process is writing to the cache, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the cache lock.
func (l *CacheLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
