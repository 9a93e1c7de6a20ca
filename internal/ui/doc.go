package ui

// Package ui contains the Fyne-based updater window: a fixed-size window with a
// single progress bar that is redrawn from the shared progress cell on every
// frame, and the dialog shown when the download fails.
