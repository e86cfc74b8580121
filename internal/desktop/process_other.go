//go:build !windows

package desktop

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/adrg/xdg"
)

const companionName = "ErsatzTV"

// localAppData is the XDG data home, where ErsatzTV keeps its files outside
// Windows.
func localAppData() (string, error) {
	return xdg.DataHome, nil
}

// applySysProcAttr puts the child in its own process group so a terminal
// ctrl-c reaches it only through the supervisor.
func applySysProcAttr(cmd *exec.Cmd, suppressConsole bool) {
	if !suppressConsole {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

func interruptProcess(p *os.Process) error {
	return p.Signal(os.Interrupt)
}
