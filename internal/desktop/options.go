package desktop

// Options holds the fixed settings of the tray shim.
type Options struct {
	// WebUIURL is opened by "Launch Web UI"
	WebUIURL string
	// AppFolder and LogsFolder are joined under the local app data root
	AppFolder  string
	LogsFolder string
	// CompanionName is the server binary expected next to our own executable
	CompanionName string
	// SuppressConsole hides the console window of the companion
	SuppressConsole bool
}

// DefaultOptions returns the options used by the desktop binary.
func DefaultOptions() Options {
	return Options{
		WebUIURL:        "http://localhost:8409",
		AppFolder:       "ersatztv",
		LogsFolder:      "logs",
		CompanionName:   companionName,
		SuppressConsole: true,
	}
}
