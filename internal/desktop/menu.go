package desktop

// TrayTitle is the title of the notification area icon.
const TrayTitle = "ErsatzTV"

// menuEntry is one row of the tray menu; a nil action marks a separator.
type menuEntry struct {
	Title   string
	Tooltip string
	action  func(*Actions)
}

func (e menuEntry) separator() bool {
	return e.action == nil
}

// trayMenu lists the tray entries in display order.
var trayMenu = []menuEntry{
	{Title: "Launch Web UI", Tooltip: "Open ErsatzTV in the browser", action: (*Actions).LaunchWebUI},
	{Title: "Show Logs", Tooltip: "Open the logs folder", action: (*Actions).ShowLogs},
	{},
	{Title: "Exit", Tooltip: "Stop ErsatzTV and exit", action: (*Actions).RequestExit},
}
