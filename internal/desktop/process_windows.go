//go:build windows

package desktop

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

const companionName = "ErsatzTV.exe"

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole         = kernel32.NewProc("AttachConsole")
	procFreeConsole           = kernel32.NewProc("FreeConsole")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

func localAppData() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
}

// applySysProcAttr keeps the companion from flashing a console window.
func applySysProcAttr(cmd *exec.Cmd, suppressConsole bool) {
	if !suppressConsole {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

// interruptProcess delivers CTRL_C_EVENT to the process.
// CTRL_C_EVENT only reaches process group 0 of the caller's console, and a
// windowsgui binary has none, so we borrow the child's console first.
func interruptProcess(p *os.Process) error {
	procFreeConsole.Call()
	if r, _, err := procAttachConsole.Call(uintptr(p.Pid)); r == 0 {
		return fmt.Errorf("attach console of pid %d: %w", p.Pid, err)
	}
	defer procFreeConsole.Call()

	// ignore the event we are about to broadcast on the shared console
	if r, _, err := procSetConsoleCtrlHandler.Call(0, 1); r == 0 {
		return fmt.Errorf("disable ctrl-c handling: %w", err)
	}
	return windows.GenerateConsoleCtrlEvent(windows.CTRL_C_EVENT, 0)
}
