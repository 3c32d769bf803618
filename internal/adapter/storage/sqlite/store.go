package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/its-jojoo/tabshelf/internal/adapter/storage"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	s := &Store{db: db, now: time.Now}

	// Sensible pragmas for desktop app
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL; PRAGMA busy_timeout=5000;`); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "set pragmas")
	}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate")
	}

	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS blobs (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at INTEGER NOT NULL
);
`)
	return err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key=?`, key)

	var v []byte
	switch err := row.Scan(&v); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, storage.ErrNotFound
	case err != nil:
		return nil, err
	}
	return v, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("blob key required")
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO blobs(key, value, updated_at)
VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value, s.now().UnixMilli())
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key=?`, key)
	return err
}

// UpdatedAt reports when key was last written.
func (s *Store) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	row := s.db.QueryRowContext(ctx, `SELECT updated_at FROM blobs WHERE key=?`, key)

	var ms int64
	switch err := row.Scan(&ms); {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, storage.ErrNotFound
	case err != nil:
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
