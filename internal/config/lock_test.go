package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLock(t *testing.T) fileLock {
	t.Helper()
	return fileLock{
		path:    filepath.Join(t.TempDir(), ".verbsrc.lock"),
		timeout: 100 * time.Millisecond,
		stale:   time.Hour,
		poll:    10 * time.Millisecond,
	}
}

func TestFileLock_AcquireRelease(t *testing.T) {
	l := testLock(t)

	f, err := l.acquire()
	require.NoError(t, err)
	require.FileExists(t, l.path)

	l.release(f)
	require.NoFileExists(t, l.path)
}

func TestFileLock_Timeout(t *testing.T) {
	l := testLock(t)
	require.NoError(t, os.WriteFile(l.path, []byte("1"), 0600))

	_, err := l.acquire()
	require.ErrorIs(t, err, ErrLockTimeout)
}

func TestFileLock_Stale(t *testing.T) {
	l := testLock(t)
	require.NoError(t, os.WriteFile(l.path, []byte("1"), 0600))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(l.path, old, old))

	f, err := l.acquire()
	require.NoError(t, err)
	l.release(f)
}

func TestWithLock_PropagatesError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	boom := errors.New("boom")

	err := WithLock(func() error { return boom })
	require.ErrorIs(t, err, boom)
}
