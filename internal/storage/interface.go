package storage

import (
	"context"
	"io"
)

// ObjectStorage is the blob store device photos are uploaded to.
// Implementations return a URL the mobile clients can render directly.
type ObjectStorage interface {
	// Upload stores the blob under key and returns its download URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
