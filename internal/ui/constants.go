package ui

import "time"

// Failure dialog
const (
	FailureDialogTitle          = "Download failed!"
	FailureDialogButton         = "OK"
	FailureDialogWidth  float32 = 320
	FailureDialogHeight float32 = 120
)

// Fallback frame interval when no frame rate is configured
const (
	DefaultFrameInterval = time.Second / 60
)
