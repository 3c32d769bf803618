package classify

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/its-jojoo/tabshelf/internal/core"
)

// Repository persists the classification map as one unit.
type Repository interface {
	Get(ctx context.Context) core.Classifications
	Save(ctx context.Context, c core.Classifications) error
	Clear(ctx context.Context) error
	Remove(ctx context.Context, tabID string) error
}

type Config struct {
	Windows core.Windows
	Now     func() time.Time // optional, for tests
}

// Service runs the classification engine against a repository. Every
// load/mutate/save cycle holds one lock, so concurrent callers cannot lose
// each other's updates.
type Service struct {
	repo Repository
	cfg  Config
	log  zerolog.Logger

	mu          sync.Mutex
	coldStarted bool
	last        core.Classifications // nil until the first evaluation
	unsaved     bool                 // last differs from what the repository holds
}

func New(repo Repository, logger zerolog.Logger, cfg Config) *Service {
	if cfg.Windows.ActiveDays <= 0 || cfg.Windows.StaleDays <= cfg.Windows.ActiveDays {
		cfg.Windows = core.DefaultWindows
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  logger.With().Str("component", "classify").Logger(),
	}
}

// Evaluate reclassifies tabs with the caller's mode and persists the result.
// A save error is returned wrapped, but the new classification is kept in
// memory, served by CurrentBuckets, and used as the input of the next
// evaluation until a save succeeds.
func (s *Service) Evaluate(ctx context.Context, tabs []core.TabSnapshot, selectedID string, mode core.Mode) (core.Classifications, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluateLocked(ctx, tabs, selectedID, mode)
}

// Refresh evaluates as a cold start when nothing has been evaluated on this
// Service yet, and as same-session after any earlier evaluation.
func (s *Service) Refresh(ctx context.Context, tabs []core.TabSnapshot, selectedID string) (core.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := core.SameSession
	if !s.coldStarted {
		mode = core.ColdStart
	}
	store, err := s.evaluateLocked(ctx, tabs, selectedID, mode)
	return core.CurrentBuckets(tabs, store), err
}

func (s *Service) evaluateLocked(ctx context.Context, tabs []core.TabSnapshot, selectedID string, mode core.Mode) (core.Classifications, error) {
	var store core.Classifications
	if s.unsaved && s.last != nil {
		s.log.Warn().Msg("previous classification was not persisted, continuing from in-memory state")
		store = s.last.Clone()
	} else {
		store = s.repo.Get(ctx)
	}
	store = core.Evaluate(tabs, selectedID, mode, s.cfg.Now(), s.cfg.Windows, store)

	s.last = store
	s.coldStarted = true

	s.log.Debug().
		Str("mode", mode.String()).
		Int("tabs", len(tabs)).
		Int("records", len(store)).
		Msg("evaluated tabs")

	if err := s.repo.Save(ctx, store); err != nil {
		s.unsaved = true
		s.log.Warn().Err(err).Msg("classification not persisted, keeping in-memory result")
		return store.Clone(), errors.Wrap(err, "save classifications")
	}
	s.unsaved = false
	return store.Clone(), nil
}

// CurrentBuckets sorts tabs by their last computed classification, loading
// the persisted one if this Service has not evaluated yet.
func (s *Service) CurrentBuckets(ctx context.Context, tabs []core.TabSnapshot) core.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		s.last = s.repo.Get(ctx)
	}
	return core.CurrentBuckets(tabs, s.last)
}

// Classifications returns a copy of the current records.
func (s *Service) Classifications(ctx context.Context) core.Classifications {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		s.last = s.repo.Get(ctx)
	}
	return s.last.Clone()
}

// Remove forgets a permanently closed tab. Unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil {
		delete(s.last, tabID)
	}
	if err := s.repo.Remove(ctx, tabID); err != nil {
		return errors.Wrapf(err, "remove tab %s", tabID)
	}
	return nil
}

// Clear wipes all persisted classifications.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = core.Classifications{}
	if err := s.repo.Clear(ctx); err != nil {
		s.unsaved = true
		return errors.Wrap(err, "clear classifications")
	}
	s.unsaved = false
	s.log.Info().Msg("classifications cleared")
	return nil
}
