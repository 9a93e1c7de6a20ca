package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	ExecutablePermissions = 0o755
)

// CreateFile opens path for writing, creating it or truncating an existing file.
// New files get executable permissions so the release can be started directly.
func CreateFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ExecutablePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	return f, nil
}

// MakeExecutable sets the executable bits on an already existing file.
// Windows has no such bits, so it is a no-op there.
func MakeExecutable(path string) error {
	if runtime.GOOS == OSWindows {
		return nil
	}
	if err := os.Chmod(path, ExecutablePermissions); err != nil {
		return fmt.Errorf("failed to set permissions on %q: %w", path, err)
	}
	return nil
}
