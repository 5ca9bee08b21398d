package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/maintenance-service/internal/config"
	"github.com/spec-kit/maintenance-service/internal/domain"
	"github.com/spec-kit/maintenance-service/internal/events"
	"github.com/spec-kit/maintenance-service/internal/repository"
	"github.com/spec-kit/maintenance-service/internal/sla"
)

const slaComplianceCacheKey = "dashboard:sla_compliance"

// Cache is the cache-aside surface the dashboard uses; implemented by
// the Redis wrapper. A nil Cache disables caching.
type Cache interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// OverdueTicket pairs a ticket with its overdue evaluation.
type OverdueTicket struct {
	Ticket       domain.Ticket
	HoursOverdue float64
}

// ResolutionStats summarizes resolution times over a recent window.
type ResolutionStats struct {
	ResolvedCount int
	AverageHours  *float64
}

// DashboardService aggregates SLA figures for operational dashboards.
// It only feeds already-loaded ticket fields into the SLA calculators;
// the calculators themselves never touch the store.
type DashboardService struct {
	tickets repository.TicketRepository
	cache   Cache
	logger  *zap.Logger
	cfg     config.DashboardConfig
	now     func() time.Time
}

// DashboardDependencies bundles collaborators for the dashboard service.
type DashboardDependencies struct {
	TicketRepo repository.TicketRepository
	Cache      Cache
	Logger     *zap.Logger
	Config     config.DashboardConfig
	Clock      func() time.Time
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		tickets: deps.TicketRepo,
		cache:   deps.Cache,
		logger:  logger,
		cfg:     deps.Config,
		now:     clock,
	}
}

// RegisterInvalidation subscribes cache invalidation to classification
// events so the compliance summary never serves figures staler than the
// latest classification run.
func (s *DashboardService) RegisterInvalidation(dispatcher events.Dispatcher) {
	if dispatcher == nil || s.cache == nil {
		return
	}
	dispatcher.Subscribe(events.EventGuaranteeClassified, func(ctx context.Context, _ events.Event) error {
		return s.cache.Delete(ctx, slaComplianceCacheKey)
	})
}

// SLACompliance returns the aggregate compliance summary, served from
// cache when fresh.
func (s *DashboardService) SLACompliance(ctx context.Context) (domain.SLACompliance, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.GetString(ctx, slaComplianceCacheKey); err != nil {
			s.logger.Warn("sla compliance cache read failed", zap.Error(err))
		} else if ok {
			var compliance domain.SLACompliance
			if err := json.Unmarshal([]byte(cached), &compliance); err == nil {
				return compliance, nil
			}
			s.logger.Warn("discarding malformed sla compliance cache entry")
		}
	}

	counts, err := s.tickets.CountSLAOutcomes(ctx)
	if err != nil {
		return domain.SLACompliance{}, err
	}
	compliance := sla.CalculateCompliance(counts.Total, counts.Met, counts.Breached)

	if s.cache != nil && s.cfg.CacheTTL() > 0 {
		if encoded, err := json.Marshal(compliance); err == nil {
			if err := s.cache.SetString(ctx, slaComplianceCacheKey, string(encoded), s.cfg.CacheTTL()); err != nil {
				s.logger.Warn("sla compliance cache write failed", zap.Error(err))
			}
		}
	}
	return compliance, nil
}

// OverdueTickets lists open tickets past their SLA deadline.
func (s *DashboardService) OverdueTickets(ctx context.Context) ([]OverdueTicket, error) {
	now := s.now()
	candidates, err := s.tickets.ListOverdueCandidates(ctx, now, s.cfg.OverdueListLimit)
	if err != nil {
		return nil, err
	}

	result := make([]OverdueTicket, 0, len(candidates))
	for i := range candidates {
		check := sla.IsTicketOverdue(candidates[i].SLADueAt, candidates[i].Status, now)
		if !check.IsOverdue {
			continue
		}
		result = append(result, OverdueTicket{
			Ticket:       candidates[i],
			HoursOverdue: check.HoursOverdue,
		})
	}
	return result, nil
}

// ResolutionTimes reports the average resolution time over the
// configured recent window.
func (s *DashboardService) ResolutionTimes(ctx context.Context) (ResolutionStats, error) {
	windowDays := s.cfg.ResolutionWindowDays
	if windowDays <= 0 {
		windowDays = 30
	}
	since := s.now().AddDate(0, 0, -windowDays)

	resolved, err := s.tickets.ListResolvedSince(ctx, since, 0)
	if err != nil {
		return ResolutionStats{}, err
	}

	stats := ResolutionStats{}
	var totalHours float64
	for _, ticket := range resolved {
		resolution := sla.CalculateResolutionTime(ticket.CreatedAt, ticket.ClosedAt)
		if !resolution.IsResolved {
			continue
		}
		stats.ResolvedCount++
		totalHours += *resolution.Hours
	}
	if stats.ResolvedCount > 0 {
		avg := totalHours / float64(stats.ResolvedCount)
		stats.AverageHours = &avg
	}
	return stats, nil
}

// TimeRemaining evaluates SLA headroom for one already-loaded ticket.
func (s *DashboardService) TimeRemaining(slaDueAt *time.Time) domain.SLATimeRemaining {
	return sla.CalculateTimeRemaining(slaDueAt, s.now())
}
