package download

import (
	"context"
	"io"

	"github.com/pixeluted/krampui-updater/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Run streams the release to disk, publishing progress into state
	Run(ctx context.Context, state *model.UpdateProgress) Result
}

// File is the destination the release is written to.
type File interface {
	io.Writer
	Sync() error
	Close() error
}

// Destination creates the file the release is written to, truncating it if it exists.
type Destination interface {
	Create(path string) (File, error)
}

// DestinationFunc adapts a function to the Destination interface.
type DestinationFunc func(path string) (File, error)

// Create calls f(path)
func (f DestinationFunc) Create(path string) (File, error) {
	return f(path)
}
