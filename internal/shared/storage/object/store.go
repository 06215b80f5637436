package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open and Delete for unknown keys.
var ErrNotFound = errors.New("object not found")

// ObjectStore saves and retrieves uploaded resume files.
type ObjectStore interface {
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}
