package platform

// Package platform contains OS integration: creating the destination file,
// marking the downloaded release executable, and starting it as a process that
// outlives the updater.
