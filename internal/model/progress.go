package model

import (
	"math"
	"sync"
)

// Window titles shown while updating
const (
	TitleDownloading = "Downloading update..."
	TitleCompleted   = "Update completed! Launching KrampUI in 3 seconds..."
)

// UpdateProgress is the state cell shared by the downloader (writer) and the
// render loop (reader). Every method holds the lock for a single field access.
type UpdateProgress struct {
	mu            sync.Mutex
	value         float32 // 0.0 to 1.0
	title         string
	indeterminate bool // total size unknown
	completed     bool
}

// ProgressSnapshot is a copy of the cell taken under one lock acquisition
type ProgressSnapshot struct {
	Value         float32
	Title         string
	Indeterminate bool
}

// NewUpdateProgress creates the cell with its initial title and zero progress
func NewUpdateProgress() *UpdateProgress {
	return &UpdateProgress{title: TitleDownloading}
}

// SetValue replaces the progress fraction
func (p *UpdateProgress) SetValue(value float32) {
	p.mu.Lock()
	p.value = value
	p.mu.Unlock()
}

// SetIndeterminate switches the cell in or out of unknown-size mode
func (p *UpdateProgress) SetIndeterminate(indeterminate bool) {
	p.mu.Lock()
	p.indeterminate = indeterminate
	p.mu.Unlock()
}

// Complete sets the completion title. Only the first call changes anything;
// it reports whether this call performed the transition.
func (p *UpdateProgress) Complete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.completed {
		return false
	}
	p.completed = true
	p.title = TitleCompleted
	return true
}

// Value returns the current progress fraction
func (p *UpdateProgress) Value() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Title returns the current window title
func (p *UpdateProgress) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// Snapshot copies the whole cell
func (p *UpdateProgress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ProgressSnapshot{
		Value:         p.value,
		Title:         p.title,
		Indeterminate: p.indeterminate,
	}
}

// Finite reports whether Value is a usable fraction in [0, 1]
func (s ProgressSnapshot) Finite() bool {
	v := float64(s.Value)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 1
}

// Percent returns the progress as 0 to 100, or 0 when the value is unusable
func (s ProgressSnapshot) Percent() int {
	if !s.Finite() {
		return 0
	}
	return int(s.Value * 100)
}
