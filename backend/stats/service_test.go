package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, source *fakeSource, store *fakeStore, today string) *Service {
	t.Helper()
	return NewService(newTestCache(t, source, store, today), store)
}

func seedSnapshot(t *testing.T, store *fakeStore, userID uint, date string) {
	t.Helper()
	snap := Snapshot{UserID: userID, AsOfDate: day(t, date)}
	require.NoError(t, store.Put(context.Background(), &snap))
}

func TestServiceGetMonthlyFiltersByMonth(t *testing.T) {
	store := newFakeStore()
	seedSnapshot(t, store, 1, "2025-05-31")
	seedSnapshot(t, store, 1, "2025-06-01")
	seedSnapshot(t, store, 1, "2025-06-15")
	seedSnapshot(t, store, 1, "2025-07-01")
	seedSnapshot(t, store, 2, "2025-06-10") // another user

	svc := newTestService(t, &fakeSource{}, store, "2025-06-15")

	snaps, err := svc.GetMonthly(context.Background(), 1, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	for _, s := range snaps {
		assert.Equal(t, uint(1), s.UserID)
		assert.Equal(t, time.June, s.AsOfDate.Month())
	}
}

func TestServiceGetYearlyFiltersByYear(t *testing.T) {
	store := newFakeStore()
	seedSnapshot(t, store, 1, "2024-12-31")
	seedSnapshot(t, store, 1, "2025-01-01")
	seedSnapshot(t, store, 1, "2025-12-31")

	svc := newTestService(t, &fakeSource{}, store, "2025-06-15")

	snaps, err := svc.GetYearly(context.Background(), 1, 2025)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
}

func TestServiceMonthlyEmptyIsNotAnError(t *testing.T) {
	svc := newTestService(t, &fakeSource{}, newFakeStore(), "2025-06-15")

	snaps, err := svc.GetMonthly(context.Background(), 1, 2025, time.January)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestServiceListRangeStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("down")
	svc := newTestService(t, &fakeSource{}, store, "2025-06-15")

	_, err := svc.GetYearly(context.Background(), 1, 2025)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestServiceDelegatesToCache(t *testing.T) {
	source := &fakeSource{records: []DailyRecord{
		{UserID: 1, Date: day(t, "2025-06-15"), CompletedCount: 4, TotalCount: 4, ProgressPercent: 100},
	}}
	store := newFakeStore()
	svc := newTestService(t, source, store, "2025-06-15")

	snap, err := svc.GetLatest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalDaysRead)

	_, err = svc.GetByDate(context.Background(), 1, day(t, "2025-06-15"))
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, snap.TotalDaysRead, refreshed.TotalDaysRead)
	assert.Equal(t, 2, source.reads)
}
