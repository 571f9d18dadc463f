package storage

import (
	"context"
	"io"
)

// Uploader stores a binary blob at a remote path and returns the public
// URL it is served from.
type Uploader interface {
	UploadFile(ctx context.Context, path string, file io.Reader, contentType string) (string, error)
}
