package catalog

import (
	"context"
	"sync"
	"time"

	"neuro-site/internal/domain"
	"neuro-site/internal/logger"

	"go.uber.org/zap"
)

// State is the lifecycle of one catalog activation.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "error"
)

// Snapshot is a consistent view of the store. Dataset is empty unless State is ready.
type Snapshot struct {
	State    State
	Dataset  domain.Dataset
	Err      error
	LoadedAt time.Time
}

// Store performs exactly one fetch of the exercise document and keeps the
// outcome for the lifetime of the activation. There is no retry.
type Store struct {
	source domain.CatalogSource

	once sync.Once
	done chan struct{}

	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(source domain.CatalogSource) *Store {
	return &Store{
		source: source,
		done:   make(chan struct{}),
		snap:   Snapshot{State: StateLoading},
	}
}

// Activate fetches the dataset. Only the first call does any work; later
// calls return immediately. It is safe to run in its own goroutine.
func (s *Store) Activate(ctx context.Context) {
	s.once.Do(func() {
		defer close(s.done)

		start := time.Now()
		ds, err := s.source.Fetch(ctx)
		if err == nil {
			err = ds.Validate()
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			logger.Get().Error("Exercise catalog activation failed",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
			)
			s.snap = Snapshot{State: StateFailed, Err: err}
			return
		}

		s.snap = Snapshot{State: StateReady, Dataset: Sanitize(ds), LoadedAt: time.Now()}
		logger.Get().Info("Exercise catalog loaded",
			zap.Int("categories", len(ds.Categories)),
			zap.Int("exercises", ds.Len()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Snapshot returns the current state without blocking.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Wait blocks until the activation settled or ctx is done.
func (s *Store) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-s.done:
		return s.Snapshot(), nil
	case <-ctx.Done():
		return s.Snapshot(), ctx.Err()
	}
}

// Done is closed once the activation settled.
func (s *Store) Done() <-chan struct{} {
	return s.done
}
