package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/its-jojoo/tabshelf/internal/core"
)

// DefaultKey names the blob holding all classifications.
const DefaultKey = "inactiveTabsModel"

// Repository loads and saves the whole classification map as a single blob.
// It is not synchronized; callers serialize load/mutate/save cycles.
type Repository struct {
	blob BlobStore
	key  string
	log  zerolog.Logger
}

func NewRepository(blob BlobStore, key string, logger zerolog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{
		blob: blob,
		key:  key,
		log:  logger.With().Str("component", "classification_store").Str("key", key).Logger(),
	}
}

// Get never fails: a missing, unreadable or corrupt blob yields an empty map.
func (r *Repository) Get(ctx context.Context) core.Classifications {
	data, err := r.blob.Get(ctx, r.key)
	switch {
	case errors.Is(err, ErrNotFound):
		r.log.Debug().Msg("no persisted classifications, starting fresh")
		return core.Classifications{}
	case err != nil:
		r.log.Warn().Err(err).Msg("failed to read classifications, starting fresh")
		return core.Classifications{}
	}

	c, err := core.DecodeClassifications(data)
	if err != nil {
		r.log.Warn().Err(err).Int("bytes", len(data)).Msg("discarding undecodable classifications")
		return core.Classifications{}
	}
	return c
}

// Save overwrites the persisted blob with c.
func (r *Repository) Save(ctx context.Context, c core.Classifications) error {
	data, err := core.EncodeClassifications(c)
	if err != nil {
		return errors.Wrap(err, "encode classifications")
	}
	if err := r.blob.Put(ctx, r.key, data); err != nil {
		return errors.Wrap(err, "write classifications")
	}
	r.log.Debug().Int("tabs", len(c)).Msg("saved classifications")
	return nil
}

// Clear deletes the persisted blob.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.blob.Delete(ctx, r.key); err != nil {
		return errors.Wrap(err, "clear classifications")
	}
	return nil
}

// Remove drops one tab's record. Unknown ids are a no-op.
func (r *Repository) Remove(ctx context.Context, tabID string) error {
	c := r.Get(ctx)
	if _, ok := c[tabID]; !ok {
		return nil
	}
	delete(c, tabID)
	return r.Save(ctx, c)
}
