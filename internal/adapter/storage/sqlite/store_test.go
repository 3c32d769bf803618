package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/its-jojoo/tabshelf/internal/adapter/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	if _, err := st.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := st.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := st.Put(ctx, "k", []byte(`{"b":2}`)); err != nil {
		t.Fatal(err)
	}

	got, err := st.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"b":2}` {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("expected delete of missing key to succeed, got %v", err)
	}
	if _, err := st.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	st, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	fixed := time.UnixMilli(1_700_000_000_000)
	st.now = func() time.Time { return fixed }
	if err := st.Put(ctx, "k", []byte("kept")); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	got, err := st.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "kept" {
		t.Fatalf("unexpected value after reopen: %q", got)
	}

	at, err := st.UpdatedAt(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if !at.Equal(fixed) {
		t.Fatalf("expected updated_at %v, got %v", fixed, at)
	}
}

func TestSQLiteStore_RejectsEmptyKey(t *testing.T) {
	st := openTestStore(t)
	if err := st.Put(context.Background(), "", []byte("x")); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
