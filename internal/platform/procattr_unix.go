//go:build !windows

package platform

import (
	"os/exec"
	"syscall"
)

// setDetachedProcAttr puts the child in a new session, independent of the updater
func setDetachedProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
