package download

// Package download implements the update download pipeline: a single HTTP GET
// streamed chunk by chunk into the destination file, with every chunk
// publishing the progress fraction into the shared model.UpdateProgress cell.
// Each failure point maps to one fixed, user-facing message.
