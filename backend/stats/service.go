package stats

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service is the thin orchestration layer the API handlers talk to.
type Service struct {
	cache *Cache
	store SnapshotStore
}

func NewService(cache *Cache, store SnapshotStore) *Service {
	return &Service{cache: cache, store: store}
}

func (s *Service) GetLatest(ctx context.Context, userID uint) (Snapshot, error) {
	return s.cache.GetLatest(ctx, userID)
}

func (s *Service) Refresh(ctx context.Context, userID uint) (Snapshot, error) {
	return s.cache.Refresh(ctx, userID)
}

func (s *Service) GetByDate(ctx context.Context, userID uint, date time.Time) (Snapshot, error) {
	return s.cache.GetByDate(ctx, userID, date)
}

// GetMonthly returns the previously persisted snapshots whose date falls in
// the given calendar month. Days without a stored snapshot are simply absent;
// nothing is recomputed.
func (s *Service) GetMonthly(ctx context.Context, userID uint, year int, month time.Month) ([]Snapshot, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.listRange(ctx, userID, from, to)
}

// GetYearly returns the persisted snapshots for the given calendar year,
// lookup-only like GetMonthly.
func (s *Service) GetYearly(ctx context.Context, userID uint, year int) ([]Snapshot, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.listRange(ctx, userID, from, to)
}

func (s *Service) listRange(ctx context.Context, userID uint, from, to time.Time) ([]Snapshot, error) {
	snaps, err := s.store.ListRange(ctx, userID, from, to)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return snaps, nil
}
