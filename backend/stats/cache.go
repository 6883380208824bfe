package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// RecordSource yields the daily progress records that exist for a user over a
// closed date range. Absent dates mean no reading that day.
type RecordSource interface {
	ListRecords(ctx context.Context, userID uint, from, to time.Time) ([]DailyRecord, error)
}

// SnapshotStore is the keyed snapshot storage injected into the cache. Get
// returns ErrSnapshotNotFound when nothing is stored under (userID, date).
type SnapshotStore interface {
	Get(ctx context.Context, userID uint, date time.Time) (*Snapshot, error)
	Put(ctx context.Context, snapshot *Snapshot) error
	Delete(ctx context.Context, userID uint, date time.Time) error
	ListRange(ctx context.Context, userID uint, from, to time.Time) ([]Snapshot, error)
}

// Cache provides get-or-compute / invalidate-and-recompute access to snapshots
// keyed by (user, day). Computation is delegated to Calculate over the trailing
// record window.
type Cache struct {
	source     RecordSource
	store      SnapshotStore
	windowDays int
	now        func() time.Time

	group singleflight.Group
}

func NewCache(source RecordSource, store SnapshotStore, windowDays int) *Cache {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Cache{
		source:     source,
		store:      store,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// GetLatest returns the stored snapshot for (userID, today), computing and
// persisting it first on a miss. A hit is returned unchanged even if the
// underlying records changed earlier the same day.
func (c *Cache) GetLatest(ctx context.Context, userID uint) (Snapshot, error) {
	today := DateOnly(c.now())

	snap, err := c.store.Get(ctx, userID, today)
	if err == nil {
		return *snap, nil
	}
	if !errors.Is(err, ErrSnapshotNotFound) {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return c.computeAndStore(ctx, userID, today)
}

// Refresh drops any snapshot stored for (userID, today) and recomputes.
func (c *Cache) Refresh(ctx context.Context, userID uint) (Snapshot, error) {
	today := DateOnly(c.now())

	if err := c.store.Delete(ctx, userID, today); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return c.computeAndStore(ctx, userID, today)
}

// GetByDate is lookup-only. Historical snapshots are durable facts: a missing
// one is reported as not found, never recomputed.
func (c *Cache) GetByDate(ctx context.Context, userID uint, date time.Time) (Snapshot, error) {
	snap, err := c.store.Get(ctx, userID, DateOnly(date))
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return *snap, nil
}

// computeAndStore runs the read-calculate-persist unit. Concurrent misses for
// the same key collapse into a single computation; duplicates would be safe
// (Calculate is pure) but waste record-source reads. Nothing is persisted on
// failure, and on a failed persist the computed snapshot is discarded rather
// than returned, so the caller never sees a value the cache does not hold.
func (c *Cache) computeAndStore(ctx context.Context, userID uint, asOfDate time.Time) (Snapshot, error) {
	key := fmt.Sprintf("%d:%s", userID, asOfDate.Format("2006-01-02"))

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		from := asOfDate.AddDate(0, 0, -(c.windowDays - 1))

		records, err := c.source.ListRecords(ctx, userID, from, asOfDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}

		snap, err := Calculate(userID, asOfDate, c.windowDays, records)
		if err != nil {
			return nil, err
		}

		if err := c.store.Put(ctx, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		return snap, nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}
