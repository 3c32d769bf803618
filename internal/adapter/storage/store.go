package storage

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("blob not found")

// BlobStore is the key-value contract the classification store persists
// through. Put replaces the whole value; Delete of a missing key is not an
// error.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
