//go:build windows

package desktop

import (
	_ "embed"

	"github.com/getlantern/systray"
	"go.uber.org/zap"

	"github.com/ersatztv/ersatztv-windows/internal/version"
)

//go:embed ersatztv.ico
var iconData []byte

// TrayManager owns the notification area icon and its menu.
type TrayManager struct {
	actions *Actions
	logger  *zap.SugaredLogger
}

// NewTrayManager creates a tray whose entries call into actions.
func NewTrayManager(actions *Actions, logger *zap.SugaredLogger) *TrayManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TrayManager{
		actions: actions,
		logger:  logger.With("component", "tray"),
	}
}

// Start runs the tray loop; it blocks until Stop is called.
// The hidden window and its message pump must stay on one OS thread.
func (t *TrayManager) Start() {
	runOnLockedThread(func() {
		systray.Run(t.onReady, t.onExit)
	})
}

// Stop removes the icon and ends the tray loop.
func (t *TrayManager) Stop() {
	systray.Quit()
}

func (t *TrayManager) onReady() {
	t.logger.Debug("initializing system tray")

	systray.SetIcon(iconData)
	systray.SetTitle(TrayTitle)
	systray.SetTooltip(TrayTitle + " " + version.Info())

	for _, entry := range trayMenu {
		if entry.separator() {
			systray.AddSeparator()
			continue
		}
		item := systray.AddMenuItem(entry.Title, entry.Tooltip)
		go t.handleClicks(item, entry)
	}
}

func (t *TrayManager) onExit() {
	t.logger.Debug("system tray exited")
}

func (t *TrayManager) handleClicks(item *systray.MenuItem, entry menuEntry) {
	for range item.ClickedCh {
		t.logger.Debugw("menu item clicked", "item", entry.Title)
		entry.action(t.actions)
	}
}
