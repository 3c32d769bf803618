package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/its-jojoo/tabshelf/internal/adapter/storage"
	"github.com/its-jojoo/tabshelf/internal/adapter/storage/memory"
	"github.com/its-jojoo/tabshelf/internal/adapter/storage/redis"
	"github.com/its-jojoo/tabshelf/internal/adapter/storage/sqlite"
	"github.com/its-jojoo/tabshelf/internal/config"
	"github.com/its-jojoo/tabshelf/internal/logging"
	"github.com/its-jojoo/tabshelf/internal/usecase/classify"
)

type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	repo  *storage.Repository
	svc   *classify.Service
	close func() error
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, err
	}

	blob, closeFn, err := openBlobStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("backend", cfg.Store.Backend).Str("key", cfg.Store.Key).Msg("store opened")
	logLastWrite(ctx, logger, blob, cfg.Store.Key)

	a := &app{
		cfg:   cfg,
		log:   logger,
		repo:  storage.NewRepository(blob, cfg.Store.Key, logger),
		close: closeFn,
	}
	a.svc = a.newService()
	return a, nil
}

// newService starts a fresh session: its first Refresh is a cold start.
func (a *app) newService() *classify.Service {
	return classify.New(a.repo, a.log, classify.Config{Windows: a.cfg.Windows.Windows()})
}

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// lastWriteReporter is implemented by stores that track write times.
type lastWriteReporter interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

func logLastWrite(ctx context.Context, logger zerolog.Logger, blob storage.BlobStore, key string) {
	r, ok := blob.(lastWriteReporter)
	if !ok {
		return
	}
	at, err := r.UpdatedAt(ctx, key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		logger.Debug().Str("key", key).Msg("no classifications persisted yet")
	case err != nil:
		logger.Warn().Err(err).Str("key", key).Msg("read store write time")
	default:
		logger.Debug().Str("key", key).Time("updated_at", at).Msg("classifications last written")
	}
}

func openBlobStore(ctx context.Context, sc config.StoreConfig) (storage.BlobStore, func() error, error) {
	switch sc.Backend {
	case config.BackendMemory:
		return memory.New(), nil, nil

	case config.BackendSQLite:
		st, err := sqlite.Open(sc.SQLitePath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open sqlite store %s", sc.SQLitePath)
		}
		return st, st.Close, nil

	case config.BackendRedis:
		st, err := redis.Open(ctx, redis.Options{
			Addr:     sc.Redis.Addr,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
			Prefix:   sc.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil

	default:
		return nil, nil, errors.Errorf("unknown store backend %q", sc.Backend)
	}
}
