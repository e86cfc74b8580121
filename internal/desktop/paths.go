package desktop

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoLocalAppData is returned when the per-user data root cannot be resolved.
var ErrNoLocalAppData = errors.New("local app data folder unavailable")

// ExecutableDir returns the directory holding the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// CompanionPath returns where the companion binary is expected for the given executable dir.
func (o Options) CompanionPath(exeDir string) string {
	return filepath.Join(exeDir, o.CompanionName)
}

// LogsDir returns <local app data>/<app folder>/<logs folder>.
func (o Options) LogsDir() (string, error) {
	root, err := localAppData()
	if err != nil {
		return "", err
	}
	if root == "" {
		return "", ErrNoLocalAppData
	}
	return filepath.Join(root, o.AppFolder, o.LogsFolder), nil
}
