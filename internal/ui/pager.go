// Package ui provides terminal output utilities including pager support.
//
// The pager runs whatever command the user configured (flag, config or
// $PAGER), the same way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/footprint-tools/verbs/internal/config"
)

const defaultPager = "less -FRSX"

var (
	pagerDisabled bool
	pagerOverride string
	quietMode     bool
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager globally (used by --no-pager).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation (used by --pager).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// EnableQuiet suppresses non-essential output (used by --quiet).
func EnableQuiet() {
	pagerMu.Lock()
	quietMode = true
	pagerMu.Unlock()
}

// IsQuiet returns true if quiet mode is enabled.
func IsQuiet() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return quietMode
}

// Printf prints formatted output unless quiet mode is enabled.
func Printf(format string, args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Printf(format, args...)
}

// Println prints a line unless quiet mode is enabled.
func Println(args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Println(args...)
}

func isPagerDisabled() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled
}

func getPagerOverride() string {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerOverride
}

// Pager shows content on stdout through the configured pager.
func Pager(content string) {
	NewWriter(WithConfigGetter(config.Get)).Pager(content)
}

// resolvePager picks the pager command.
//
// Precedence:
//  1. --pager=<cmd>
//  2. pager config key
//  3. $PAGER
//  4. less -FRSX
//
// It returns nil when the chosen pager is "cat", meaning print directly.
func resolvePager(override, configured, env string) []string {
	cmd := defaultPager
	for _, candidate := range []string{override, configured, env} {
		if strings.TrimSpace(candidate) != "" {
			cmd = candidate
			break
		}
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

// runPager pipes content through argv, falling back to out on failure.
func runPager(out io.Writer, argv []string, content string) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_, _ = fmt.Fprint(out, content)
	}
}
