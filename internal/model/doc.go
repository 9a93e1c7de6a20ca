package model

// Package model defines the updater's shared state: the progress cell read by the
// UI every frame and written by the downloader, and the phase enum driving the
// startup sequence.
