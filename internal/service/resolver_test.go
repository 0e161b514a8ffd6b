package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/shenikar/dispatch_feed_sync/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewStalenessResolver_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		interval  time.Duration
		threshold time.Duration
	}{
		{name: "zero interval", interval: 0, threshold: time.Minute},
		{name: "negative threshold", interval: time.Minute, threshold: -time.Minute},
		{name: "zero threshold", interval: time.Minute, threshold: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStalenessResolver(nil, newTestLogger(), clockwork.NewFakeClock(), observability.NewMetricsForTesting(), tt.interval, tt.threshold)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestStalenessResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)
	clock := clockwork.NewFakeClockAt(fixedNow)

	resolver, err := NewStalenessResolver(repo, newTestLogger(), clock, observability.NewMetricsForTesting(), time.Minute, 5*time.Minute)
	require.NoError(t, err)

	cutoff := fixedNow.Add(-5 * time.Minute)
	repo.EXPECT().ResolveStaleIncidents(gomock.Any(), fixedNow, cutoff).Return(int64(2), nil)
	repo.EXPECT().RemoveStaleUnits(gomock.Any(), fixedNow, cutoff).Return(int64(5), nil)

	res, err := resolver.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ResolveResult{Incidents: 2, Units: 5}, res)
}

func TestStalenessResolver_Resolve_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)

	resolver, err := NewStalenessResolver(repo, newTestLogger(), clockwork.NewFakeClockAt(fixedNow), observability.NewMetricsForTesting(), time.Minute, time.Minute)
	require.NoError(t, err)

	dbErr := errors.New("connection refused")
	repo.EXPECT().ResolveStaleIncidents(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), dbErr)
	// Ошибка по инцидентам не мешает обработать подразделения
	repo.EXPECT().RemoveStaleUnits(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)

	res, err := resolver.Resolve(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, int64(3), res.Units)
	assert.Zero(t, res.Incidents)
}

func TestStalenessResolver_Resolve_NoOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)

	resolver, err := NewStalenessResolver(repo, newTestLogger(), clockwork.NewFakeClockAt(fixedNow), observability.NewMetricsForTesting(), time.Minute, time.Minute)
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().ResolveStaleIncidents(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time, time.Time) (int64, error) {
			close(entered)
			<-release
			return 0, nil
		})
	repo.EXPECT().RemoveStaleUnits(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = resolver.Resolve(context.Background())
	}()

	<-entered
	_, err = resolver.Resolve(context.Background())
	assert.ErrorIs(t, err, ErrPassInProgress)

	close(release)
	<-done
}

// Проход по таймеру: отметки времени берутся из часов, а разрешение монотонно
func TestStalenessResolver_Run(t *testing.T) {
	store := newMemStore()
	clock := clockwork.NewFakeClockAt(fixedNow)

	ctx := context.Background()
	require.NoError(t, store.UpsertIncident(ctx, incidentWith(1), "arcgis", fixedNow, true))
	_, err := store.UpsertUnits(ctx, 1, []models.LiveUnit{{ShortName: "E1"}}, fixedNow, true)
	require.NoError(t, err)

	resolver, err := NewStalenessResolver(store, newTestLogger(), clock, observability.NewMetricsForTesting(), time.Minute, 5*time.Minute)
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- resolver.Run(runCtx) }()

	// Первый проход сразу: ничего не устарело
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Nil(t, store.incident(1).ResolvedAt)

	for i := 0; i < 6; i++ {
		clock.Advance(time.Minute)
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
	}

	require.Eventually(t, func() bool { return store.incident(1).ResolvedAt != nil }, time.Second, 10*time.Millisecond)
	inc := store.incident(1)
	assert.True(t, inc.AutomaticallyResolved)
	unit := store.unit(1, "E1")
	require.NotNil(t, unit.RemovedAt)
	assert.True(t, unit.AutomaticallyRemoved)

	resolvedAt := *inc.ResolvedAt
	clock.Advance(time.Minute)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Equal(t, resolvedAt, *store.incident(1).ResolvedAt, "resolved_at is never rewritten")

	cancel()
	assert.NoError(t, <-done)
}
