// Package launch executes search results: opening programs, URLs, and
// files, or running history commands.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/google/shlex"
	"golang.org/x/sys/execabs"

	"github.com/runger/lume/internal/result"
)

// Test seams for process creation.
var (
	startProcess = func(cmd *exec.Cmd) error { return cmd.Start() }
	lookPath     = execabs.LookPath
)

// ErrNotInstalled is returned when a catalog entry without a homepage is
// launched: there is nothing to open for an uninstalled package.
var ErrNotInstalled = fmt.Errorf("package is not installed")

// Launcher opens search results with the platform's native mechanisms.
type Launcher struct {
	logger *slog.Logger
}

// New creates a Launcher. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{logger: logger}
}

// Launch opens the given result. The process is started detached; Launch
// returns once the process has been handed to the OS.
func (l *Launcher) Launch(ctx context.Context, res result.SearchResult) error {
	switch res.Kind {
	case result.KindInstalledProgram:
		return l.openPath(ctx, res.Path)
	case result.KindURLTarget:
		return l.openTarget(ctx, res.URL)
	case result.KindFileSystemEntry:
		return l.openTarget(ctx, res.Path)
	case result.KindHistoryCommand:
		return l.runCommand(ctx, res.Command)
	case result.KindCatalogEntry:
		if res.Homepage != "" {
			return l.openTarget(ctx, res.Homepage)
		}
		return ErrNotInstalled
	default:
		return fmt.Errorf("unknown result kind %d", res.Kind)
	}
}

// openPath opens an installed program bundle or executable.
func (l *Launcher) openPath(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("program has no path")
	}
	return l.openTarget(ctx, path)
}

// openTarget hands a path or URL to the platform opener.
func (l *Launcher) openTarget(ctx context.Context, target string) error {
	if target == "" {
		return fmt.Errorf("empty launch target")
	}
	name, args := openerCommand(target)
	cmd := exec.CommandContext(ctx, name, args...)
	l.logger.Debug("opening target", "target", target, "opener", name)
	if err := startProcess(cmd); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}

// runCommand executes a history command. The command is split with POSIX
// shlex rules and run as argv, no shell involved.
func (l *Launcher) runCommand(ctx context.Context, command string) error {
	argv, err := shlex.Split(command)
	if err != nil {
		return fmt.Errorf("splitting command: %w", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("command produced empty argv")
	}

	path, err := lookPath(argv[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", argv[0], err)
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	l.logger.Debug("running command", "argv0", path, "args", len(argv)-1)
	if err := startProcess(cmd); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}
