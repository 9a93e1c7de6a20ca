package model

// Phase represents the stage of the update sequence
type Phase string

const (
	// PhaseIdle means the window is up and the download has not started yet
	PhaseIdle Phase = "Idle"

	// PhaseDownloading means the release is being streamed to disk
	PhaseDownloading Phase = "Downloading"

	// PhaseSuccess means the release is on disk and the hand-off is pending
	PhaseSuccess Phase = "Success"

	// PhaseFailure means the download failed and the error dialog was shown
	PhaseFailure Phase = "Failure"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while the download is running
func (p Phase) IsActive() bool {
	return p == PhaseDownloading
}

// IsFinished returns true if the sequence reached a terminal phase
func (p Phase) IsFinished() bool {
	return p == PhaseSuccess || p == PhaseFailure
}
