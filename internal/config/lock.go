package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/verbs/internal/paths"
)

// ErrLockTimeout is returned when another process holds the rc lock for
// longer than the lock timeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an O_EXCL lock file next to the rc file. A lock older than
// stale is assumed abandoned and taken over.
type fileLock struct {
	path    string
	timeout time.Duration
	stale   time.Duration
	poll    time.Duration
}

var rcLock = fileLock{
	timeout: 5 * time.Second,
	stale:   30 * time.Second,
	poll:    50 * time.Millisecond,
}

// WithLock runs fn while holding the rc lock. Every read-modify-write of the
// rc file goes through it.
func WithLock(fn func() error) error {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	l := rcLock
	l.path = rc + ".lock"

	f, err := l.acquire()
	if err != nil {
		return err
	}
	defer l.release(f)

	return fn()
}

func (l fileLock) acquire() (*os.File, error) {
	deadline := time.Now().Add(l.timeout)
	for {
		if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
			_ = os.Remove(l.path)
		}

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		switch {
		case err == nil:
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		case !errors.Is(err, os.ErrExist):
			return nil, fmt.Errorf("config: lock %s: %w", l.path, err)
		case time.Now().After(deadline):
			return nil, ErrLockTimeout
		}
		time.Sleep(l.poll)
	}
}

func (l fileLock) release(f *os.File) {
	_ = f.Close()
	_ = os.Remove(l.path)
}
