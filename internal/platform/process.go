package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// StartDetached starts the executable at path with no arguments and without
// waiting for it. The child runs in its own session or process group so it
// survives the updater exiting right after.
func StartDetached(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cmd := exec.Command(absPath)
	cmd.Dir = filepath.Dir(absPath)
	setDetachedProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", absPath, err)
	}

	// nobody waits on the child
	return cmd.Process.Release()
}
