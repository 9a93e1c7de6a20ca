package download

import (
	"context"
	"errors"
)

// Kind identifies where in the pipeline a download failed
type Kind int

const (
	KindRequest Kind = iota + 1
	KindCreate
	KindRead
	KindWrite
	KindFlush
	KindSync
)

// User-facing failure messages
const (
	MsgRequest = "Failed to download latest version"
	MsgCreate  = "Failed to open file for writing!"
	MsgRead    = "Downloading failed for unknown reason!"
	MsgWrite   = "Failed to write chunk!"
	MsgFlush   = "Failed to flush out the file content!"
	MsgSync    = "Failed to sync all the file content!"
)

// Message returns the fixed message shown to the user for this kind
func (k Kind) Message() string {
	switch k {
	case KindRequest:
		return MsgRequest
	case KindCreate:
		return MsgCreate
	case KindRead:
		return MsgRead
	case KindWrite:
		return MsgWrite
	case KindFlush:
		return MsgFlush
	case KindSync:
		return MsgSync
	default:
		return MsgRead
	}
}

// String returns a short name for logs
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindCreate:
		return "create"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindFlush:
		return "flush"
	case KindSync:
		return "sync"
	default:
		return "unknown"
	}
}

// Failure is the terminal outcome of a failed download. Error returns the
// user-facing message; the underlying cause is kept for logs and errors.Is.
type Failure struct {
	Kind Kind
	Err  error
}

func fail(kind Kind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

func (f *Failure) Error() string {
	return f.Kind.Message()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Canceled reports whether the download stopped because its context ended
func (f *Failure) Canceled() bool {
	return errors.Is(f.Err, context.Canceled) || errors.Is(f.Err, context.DeadlineExceeded)
}

// Result is what a download run reports to the orchestrator
type Result struct {
	Success bool
	Failure *Failure
}

// Message returns the user-facing failure message, if any
func (r Result) Message() (string, bool) {
	if r.Failure == nil {
		return "", false
	}
	return r.Failure.Error(), true
}
