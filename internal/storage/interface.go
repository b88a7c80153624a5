package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotExist is returned when a blob key has no object behind it.
// Both backends map their native not-found errors to it so callers can use
// errors.Is without knowing which store is configured.
var ErrObjectNotExist = errors.New("storage: object does not exist")

// BlobStorage is the document blob backend. Keys follow the
// `{application_id}/{token}_{type}.{ext}` convention set by the submission
// coordinator; List returns full keys under the given prefix.
type BlobStorage interface {
	// Save writes the object at key, creating any parent structure.
	Save(ctx context.Context, key string, r io.Reader) error

	// Open returns a reader for the object, or ErrObjectNotExist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks presence and returns the stored size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all keys under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
