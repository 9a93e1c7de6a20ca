package updater

// Package updater sequences an update run: a grace delay so the window can
// draw, the download, and then either the hand-off to the new release or the
// failure dialog.
