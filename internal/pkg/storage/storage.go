package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded files live. The local
// implementation writes to disk; an object store would satisfy the same
// interface.
type FileStorage interface {
	// Upload stores the file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL returns a URL serving the stored file. expiry is advisory;
	// local storage serves static URLs and ignores it.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
