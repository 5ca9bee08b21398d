package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestCalculateCompliance(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		met            int
		breached       int
		wantRate       float64
		wantPercentage string
	}{
		{"no tickets", 0, 0, 0, 0, "0.00%"},
		{"all met", 10, 10, 0, 100, "100.00%"},
		{"all breached", 5, 0, 5, 0, "0.00%"},
		{"rounded to two decimals", 7, 5, 2, 71.43, "71.43%"},
		{"exact rate", 20, 17, 3, 85, "85.00%"},
		{"repeating decimal rounds down", 3, 1, 2, 33.33, "33.33%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCompliance(tt.total, tt.met, tt.breached)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.met, got.Met)
			assert.Equal(t, tt.breached, got.Breached)
			assert.InDelta(t, tt.wantRate, got.Rate, 0.0001)
			assert.Equal(t, tt.wantPercentage, got.Percentage)
		})
	}
}

func TestIsTicketOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	pastDue := now.Add(-6 * time.Hour)
	futureDue := now.Add(6 * time.Hour)

	tests := []struct {
		name        string
		slaDueAt    *time.Time
		status      domain.TicketStatus
		wantOverdue bool
		wantHours   float64
	}{
		{"no deadline", nil, domain.TicketStatusOpen, false, 0},
		{"before deadline", &futureDue, domain.TicketStatusInProgress, false, 0},
		{"exactly at deadline", &now, domain.TicketStatusOpen, false, 0},
		{"past deadline while open", &pastDue, domain.TicketStatusOpen, true, 6},
		{"past deadline while in progress", &pastDue, domain.TicketStatusInProgress, true, 6},
		{"closed tickets exempt", &pastDue, domain.TicketStatusClosed, false, 0},
		{"cancelled tickets exempt", &pastDue, domain.TicketStatusCancelled, false, 0},
		{"resolved tickets still tracked", &pastDue, domain.TicketStatusResolved, true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsTicketOverdue(tt.slaDueAt, tt.status, now)
			assert.Equal(t, tt.wantOverdue, got.IsOverdue)
			assert.InDelta(t, tt.wantHours, got.HoursOverdue, 0.0001)
		})
	}
}

func TestCalculateTimeRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no deadline", func(t *testing.T) {
		got := CalculateTimeRemaining(nil, now)
		assert.Equal(t, domain.SLAHealthNoSLA, got.Status)
		assert.False(t, got.IsBreached)
	})

	t.Run("comfortable headroom", func(t *testing.T) {
		got := CalculateTimeRemaining(timePtr(now.Add(24*time.Hour)), now)
		assert.Equal(t, domain.SLAHealthOK, got.Status)
		assert.InDelta(t, 24, got.HoursRemaining, 0.0001)
		assert.False(t, got.IsBreached)
	})

	t.Run("inside warning window", func(t *testing.T) {
		got := CalculateTimeRemaining(timePtr(now.Add(90*time.Minute)), now)
		assert.Equal(t, domain.SLAHealthWarning, got.Status)
		assert.InDelta(t, 1.5, got.HoursRemaining, 0.0001)
		assert.False(t, got.IsBreached)
	})

	t.Run("warning boundary is exclusive", func(t *testing.T) {
		got := CalculateTimeRemaining(timePtr(now.Add(4*time.Hour)), now)
		assert.Equal(t, domain.SLAHealthOK, got.Status)
	})

	t.Run("breached", func(t *testing.T) {
		got := CalculateTimeRemaining(timePtr(now.Add(-2*time.Hour)), now)
		assert.Equal(t, domain.SLAHealthBreached, got.Status)
		assert.True(t, got.IsBreached)
		assert.InDelta(t, -2, got.HoursRemaining, 0.0001)
	})
}

func TestCalculateResolutionTime(t *testing.T) {
	created := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	t.Run("unresolved ticket", func(t *testing.T) {
		got := CalculateResolutionTime(created, nil)
		assert.False(t, got.IsResolved)
		assert.Nil(t, got.Hours)
		assert.Nil(t, got.Days)
	})

	t.Run("resolved after thirty six hours", func(t *testing.T) {
		got := CalculateResolutionTime(created, timePtr(created.Add(36*time.Hour)))
		assert.True(t, got.IsResolved)
		require.NotNil(t, got.Hours)
		require.NotNil(t, got.Days)
		assert.InDelta(t, 36, *got.Hours, 0.0001)
		assert.InDelta(t, 1.5, *got.Days, 0.0001)
	})

	t.Run("negative elapsed passes through", func(t *testing.T) {
		got := CalculateResolutionTime(created, timePtr(created.Add(-2*time.Hour)))
		assert.True(t, got.IsResolved)
		require.NotNil(t, got.Hours)
		assert.InDelta(t, -2, *got.Hours, 0.0001)
	})
}
