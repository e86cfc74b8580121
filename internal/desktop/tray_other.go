//go:build !windows

package desktop

import "go.uber.org/zap"

// TrayManager stub for non-Windows platforms; the app runs headless and
// exits on SIGINT/SIGTERM.
type TrayManager struct {
	done chan struct{}
}

// NewTrayManager creates a no-op tray manager
func NewTrayManager(_ *Actions, _ *zap.SugaredLogger) *TrayManager {
	return &TrayManager{done: make(chan struct{})}
}

// Start blocks until Stop, like the Windows tray loop
func (t *TrayManager) Start() {
	<-t.done
}

// Stop releases Start
func (t *TrayManager) Stop() {
	select {
	case <-t.done:
	default:
		close(t.done)
	}
}
