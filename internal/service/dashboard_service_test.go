package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maintenance-service/internal/config"
	"github.com/spec-kit/maintenance-service/internal/domain"
	"github.com/spec-kit/maintenance-service/internal/events"
	"github.com/spec-kit/maintenance-service/internal/repository"
)

type fakeCache struct {
	entries map[string]string
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) GetString(_ context.Context, key string) (string, bool, error) {
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *fakeCache) SetString(_ context.Context, key, value string, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.deletes++
	delete(c.entries, key)
	return nil
}

func newDashboardFixture(cache Cache, repo *fakeTicketRepo, now time.Time) *DashboardService {
	return NewDashboardService(DashboardDependencies{
		TicketRepo: repo,
		Cache:      cache,
		Config: config.DashboardConfig{
			CacheTTLSeconds:      60,
			OverdueListLimit:     50,
			ResolutionWindowDays: 30,
		},
		Clock: func() time.Time { return now },
	})
}

func TestDashboardSLACompliance_CacheAside(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeTicketRepo()
	repo.slaCounts = repository.SLACounts{Total: 20, Met: 17, Breached: 3}
	cache := newFakeCache()
	svc := newDashboardFixture(cache, repo, now)

	first, err := svc.SLACompliance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, first.Total)
	assert.Equal(t, "85.00%", first.Percentage)
	assert.Equal(t, 1, repo.countCalls)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from cache; the store is not touched again.
	repo.slaCounts = repository.SLACounts{Total: 99, Met: 1, Breached: 98}
	second, err := svc.SLACompliance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.countCalls)
}

func TestDashboardSLACompliance_MalformedCacheEntryDiscarded(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeTicketRepo()
	repo.slaCounts = repository.SLACounts{Total: 7, Met: 5, Breached: 2}
	cache := newFakeCache()
	cache.entries["dashboard:sla_compliance"] = "{not json"
	svc := newDashboardFixture(cache, repo, now)

	got, err := svc.SLACompliance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "71.43%", got.Percentage)
	assert.Equal(t, 1, repo.countCalls)
}

func TestDashboardSLACompliance_NilCache(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeTicketRepo()
	svc := newDashboardFixture(nil, repo, now)

	got, err := svc.SLACompliance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00%", got.Percentage)
}

func TestDashboardInvalidation_OnClassificationEvent(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeTicketRepo()
	repo.slaCounts = repository.SLACounts{Total: 10, Met: 10}
	cache := newFakeCache()
	svc := newDashboardFixture(cache, repo, now)

	dispatcher := events.NewInMemoryDispatcher()
	svc.RegisterInvalidation(dispatcher)

	_, err := svc.SLACompliance(context.Background())
	require.NoError(t, err)
	assert.Contains(t, cache.entries, "dashboard:sla_compliance")

	err = dispatcher.Publish(context.Background(), events.Event{Type: events.EventGuaranteeClassified})
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, "dashboard:sla_compliance")
	assert.Equal(t, 1, cache.deletes)

	// The next read recomputes from the store.
	repo.slaCounts = repository.SLACounts{Total: 12, Met: 11, Breached: 1}
	refreshed, err := svc.SLACompliance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, refreshed.Total)
	assert.Equal(t, 2, repo.countCalls)
}

func TestDashboardOverdueTickets(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	pastDue := now.Add(-6 * time.Hour)
	futureDue := now.Add(2 * time.Hour)

	repo := newFakeTicketRepo()
	repo.overdue = []domain.Ticket{
		{ID: "t-1", Status: domain.TicketStatusOpen, SLADueAt: &pastDue},
		{ID: "t-2", Status: domain.TicketStatusInProgress, SLADueAt: &futureDue},
		{ID: "t-3", Status: domain.TicketStatusClosed, SLADueAt: &pastDue},
		{ID: "t-4", Status: domain.TicketStatusOpen},
	}
	svc := newDashboardFixture(nil, repo, now)

	got, err := svc.OverdueTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1, "only open tickets past their deadline qualify")
	assert.Equal(t, "t-1", got[0].Ticket.ID)
	assert.InDelta(t, 6, got[0].HoursOverdue, 0.0001)
}

func TestDashboardResolutionTimes(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	created := now.Add(-72 * time.Hour)
	closedFast := created.Add(12 * time.Hour)
	closedSlow := created.Add(36 * time.Hour)

	repo := newFakeTicketRepo()
	repo.resolved = []repository.ResolvedTicket{
		{ID: "t-1", CreatedAt: created, ClosedAt: &closedFast},
		{ID: "t-2", CreatedAt: created, ClosedAt: &closedSlow},
		{ID: "t-3", CreatedAt: created}, // still open, skipped
	}
	svc := newDashboardFixture(nil, repo, now)

	got, err := svc.ResolutionTimes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.ResolvedCount)
	require.NotNil(t, got.AverageHours)
	assert.InDelta(t, 24, *got.AverageHours, 0.0001)
}

func TestDashboardResolutionTimes_NoResolvedTickets(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeTicketRepo()
	svc := newDashboardFixture(nil, repo, now)

	got, err := svc.ResolutionTimes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.ResolvedCount)
	assert.Nil(t, got.AverageHours)
}

func TestDashboardTimeRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc := newDashboardFixture(nil, newFakeTicketRepo(), now)

	due := now.Add(8 * time.Hour)
	got := svc.TimeRemaining(&due)
	assert.Equal(t, domain.SLAHealthOK, got.Status)
	assert.InDelta(t, 8, got.HoursRemaining, 0.0001)

	assert.Equal(t, domain.SLAHealthNoSLA, svc.TimeRemaining(nil).Status)
}
