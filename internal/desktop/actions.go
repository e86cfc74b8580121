package desktop

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// ErrLogsDirCreate means the logs folder could not be created.
var ErrLogsDirCreate = errors.New("failed to create logs folder")

// Message is sent from menu callbacks to the app loop.
type Message int

const (
	// Exit asks the app loop to stop the companion and return.
	Exit Message = iota
)

func init() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Actions implements the tray menu entries.
type Actions struct {
	opts   Options
	logger *zap.SugaredLogger
	exitCh chan<- Message

	openURL    func(url string) error
	openFolder func(path string) error
	logsDir    func() (string, error)
	fatal      func(err error)
}

// NewActions creates the menu actions; Exit is delivered on exitCh.
func NewActions(opts Options, exitCh chan<- Message, logger *zap.SugaredLogger) *Actions {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	a := &Actions{
		opts:       opts,
		logger:     logger.With("component", "actions"),
		exitCh:     exitCh,
		openURL:    browser.OpenURL,
		openFolder: browser.OpenFile,
		logsDir:    opts.LogsDir,
	}
	a.fatal = func(err error) {
		a.logger.Fatalw("unrecoverable error", "error", err)
	}
	return a
}

// LaunchWebUI opens the web UI in the default browser. Failures are ignored.
func (a *Actions) LaunchWebUI() {
	if err := a.openURL(a.opts.WebUIURL); err != nil {
		a.logger.Debugw("failed to open web ui", "url", a.opts.WebUIURL, "error", err)
	}
}

// ShowLogs creates the logs folder if needed and opens it in the file browser.
func (a *Actions) ShowLogs() {
	dir, err := a.logsDir()
	if err != nil {
		a.logger.Debugw("logs folder unavailable", "error", err)
		return
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		a.fatal(fmt.Errorf("%w %s: %w", ErrLogsDirCreate, dir, err))
		return
	}

	if err := a.openFolder(dir); err != nil {
		a.logger.Debugw("failed to open logs folder", "path", dir, "error", err)
	}
}

// RequestExit signals the app loop without blocking.
// Only the first request matters; extra ones are dropped.
func (a *Actions) RequestExit() {
	select {
	case a.exitCh <- Exit:
	default:
		a.logger.Debug("exit already requested")
	}
}
