package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// First run: the cache directory does not exist yet when the lock is
// taken, since locking happens before the database is opened.
func TestCacheLockCreatesCacheDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), ".config", "gnsscope", "gnsscope.sqlite")

	l := NewCacheLock(dbPath)
	if err := l.Lock(); err != nil {
		t.Fatalf("first-run Lock() failed: %v", err)
	}
	if _, err := os.Stat(dbPath + ".lock"); err != nil {
		t.Fatalf("lock file not created: %v", err)
	}
	if err := l.Unlock(); err != nil {
		t.Fatal(err)
	}
}

func TestCacheLockRelock(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gnsscope.sqlite")

	l := NewCacheLock(dbPath)
	if err := l.Lock(); err != nil {
		t.Fatal(err)
	}
	if err := l.Unlock(); err != nil {
		t.Fatal(err)
	}
	if err := l.Lock(); err != nil {
		t.Fatalf("relock after unlock failed: %v", err)
	}
	if err := l.Unlock(); err != nil {
		t.Fatal(err)
	}
}
