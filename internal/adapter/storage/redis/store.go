package redis

import (
	"context"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/its-jojoo/tabshelf/internal/adapter/storage"
)

type Options struct {
	Addr     string
	Password string
	DB       int

	// Prefix is prepended to every key, e.g. "tabshelf:".
	Prefix string
}

// Store keeps blobs as plain redis string values.
type Store struct {
	client goredis.UniversalClient
	prefix string
}

func New(client goredis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Open connects and pings the server.
func Open(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "ping redis %s", opts.Addr)
	}
	return New(client, opts.Prefix), nil
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	return v, err
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
