package desktop

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

var (
	// ErrCompanionStart means the companion exists on disk but could not be launched.
	ErrCompanionStart = errors.New("failed to start companion")
	// ErrCompanionWait means the OS could not report the companion's termination.
	ErrCompanionWait = errors.New("failed to wait for companion")
)

// Supervisor owns the companion server process for the lifetime of the tray.
type Supervisor struct {
	opts   Options
	logger *zap.SugaredLogger

	// replaced in tests
	executableDir func() (string, error)
	command       func(path string) *exec.Cmd

	child *exec.Cmd
}

// NewSupervisor creates a supervisor for opts.CompanionName.
func NewSupervisor(opts Options, logger *zap.SugaredLogger) *Supervisor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Supervisor{
		opts:          opts,
		logger:        logger.With("component", "supervisor"),
		executableDir: ExecutableDir,
		command: func(path string) *exec.Cmd {
			return exec.Command(path)
		},
	}
}

// Running reports whether a companion handle is held.
func (s *Supervisor) Running() bool {
	return s.child != nil
}

// Start launches the companion if it sits next to our executable.
// A missing companion is not an error; a companion that fails to launch is.
func (s *Supervisor) Start() error {
	dir, err := s.executableDir()
	if err != nil {
		s.logger.Debugw("cannot resolve own executable, not starting companion", "error", err)
		return nil
	}

	path := s.opts.CompanionPath(dir)
	if _, err := os.Stat(path); err != nil {
		s.logger.Infow("companion not found", "path", path)
		return nil
	}

	cmd := s.command(path)
	// nil streams are connected to the null device
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	applySysProcAttr(cmd, s.opts.SuppressConsole)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCompanionStart, path, err)
	}

	s.logger.Infow("companion started", "path", path, "pid", cmd.Process.Pid)
	s.child = cmd
	return nil
}

// Shutdown asks the companion to exit and blocks until it has.
// The handle is released on the first call; later calls return immediately.
func (s *Supervisor) Shutdown() error {
	cmd := s.child
	s.child = nil
	if cmd == nil {
		return nil
	}

	pid := cmd.Process.Pid
	s.logger.Infow("sending interrupt to companion", "pid", pid)
	if err := interruptProcess(cmd.Process); err != nil {
		// the child may already be gone; Wait below settles it either way
		s.logger.Warnw("interrupt not delivered", "pid", pid, "error", err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		s.logger.Infow("companion exited", "pid", pid)
	case errors.As(err, &exitErr):
		s.logger.Infow("companion exited", "pid", pid, "exit_code", exitErr.ExitCode())
	default:
		return fmt.Errorf("%w (pid %d): %w", ErrCompanionWait, pid, err)
	}
	return nil
}
