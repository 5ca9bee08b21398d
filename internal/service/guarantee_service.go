package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/maintenance-service/internal/config"
	"github.com/spec-kit/maintenance-service/internal/domain"
	"github.com/spec-kit/maintenance-service/internal/events"
	"github.com/spec-kit/maintenance-service/internal/guarantee"
	"github.com/spec-kit/maintenance-service/internal/observability"
	"github.com/spec-kit/maintenance-service/internal/repository"
	apperrors "github.com/spec-kit/maintenance-service/pkg/util"
)

// GuaranteeService orchestrates guarantee classification: it loads the
// ticket and the project's guarantee policy, runs the pure decision
// functions, and writes the merged result back in a single statement.
// The run is idempotent; unchanged inputs reproduce the same output and
// the same persisted row.
type GuaranteeService struct {
	tickets    repository.TicketRepository
	periods    repository.GuaranteePeriodRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	defaults   config.GuaranteeConfig
	now        func() time.Time
}

// GuaranteeDependencies bundles collaborators for the guarantee service.
type GuaranteeDependencies struct {
	TicketRepo repository.TicketRepository
	PeriodRepo repository.GuaranteePeriodRepository
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Defaults   config.GuaranteeConfig
	Clock      func() time.Time
}

// GuaranteePeriodInput describes policy creation overrides; nil fields
// fall back to the configured defaults.
type GuaranteePeriodInput struct {
	InstallationGuaranteeDays       *int
	MaterialGuaranteeDays           *int
	ContractorLiableDuringGuarantee *bool
	AutoClassifyOutOfGuarantee      *bool
}

// NewGuaranteeService constructs the service.
func NewGuaranteeService(deps GuaranteeDependencies) *GuaranteeService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuaranteeService{
		tickets:    deps.TicketRepo,
		periods:    deps.PeriodRepo,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		defaults:   deps.Defaults,
		now:        clock,
	}
}

// ClassifyTicketGuarantee runs the full classification for one ticket
// and persists the result onto it. The guarantee policy is resolved
// strictly: a project without a configured period fails rather than
// silently defaulting.
func (s *GuaranteeService) ClassifyTicketGuarantee(ctx context.Context, ticketID string) (*domain.GuaranteeClassification, error) {
	if err := validateIdentifier("ticket_id", ticketID); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.GetCoreFields(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}
	if ticket.ProjectID == nil {
		return nil, apperrors.NewMissingProject(ticketID)
	}

	period, err := s.periods.GetByProject(ctx, *ticket.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPolicyNotConfigured(*ticket.ProjectID)
		}
		return nil, err
	}

	now := s.now()

	statusResult := guarantee.ClassifyStatus(guarantee.StatusInput{
		TicketID:                  ticketID,
		InstallationDate:          ticket.CreatedAt,
		TicketType:                ticket.TicketType,
		InstallationGuaranteeDays: period.InstallationGuaranteeDays,
		MaterialGuaranteeDays:     period.MaterialGuaranteeDays,
	}, now)

	billingResult := guarantee.DetermineBilling(statusResult.Status, ticket.FaultCause, period.ContractorLiableDuringGuarantee)
	liabilityResult := guarantee.AssessLiability(statusResult.Status, ticket.FaultCause, period.ContractorLiableDuringGuarantee)

	update := repository.ClassificationUpdate{
		GuaranteeStatus:       statusResult.Status,
		GuaranteeExpiresAt:    statusResult.ExpiresAt,
		IsBillable:            billingResult.IsBillable,
		BillingClassification: billingResult.Classification,
	}
	if err := s.tickets.PersistClassification(ctx, ticketID, update); err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}

	classification := &domain.GuaranteeClassification{
		TicketID:              ticketID,
		Status:                statusResult.Status,
		ExpiresAt:             statusResult.ExpiresAt,
		IsBillable:            billingResult.IsBillable,
		BillingClassification: billingResult.Classification,
		DaysRemaining:         statusResult.DaysRemaining,
		ContractorLiable:      liabilityResult.IsLiable,
		Reason:                fmt.Sprintf("%s | %s", statusResult.Reason, billingResult.Reason),
	}

	s.logger.Info("ticket guarantee classified",
		zap.String("ticket_id", ticketID),
		zap.String("guarantee_status", string(classification.Status)),
		zap.String("billing_classification", string(classification.BillingClassification)),
		zap.Bool("is_billable", classification.IsBillable),
		zap.Bool("contractor_liable", classification.ContractorLiable))

	s.metrics.RecordClassification(classification.Status, classification.BillingClassification)

	s.publishEvent(ctx, events.Event{
		Type:      events.EventGuaranteeClassified,
		TicketID:  ticketID,
		ProjectID: *ticket.ProjectID,
		Payload: events.GuaranteeClassifiedPayload{
			Status:                classification.Status,
			BillingClassification: classification.BillingClassification,
			IsBillable:            classification.IsBillable,
			ContractorLiable:      classification.ContractorLiable,
			ExpiresAt:             classification.ExpiresAt,
			FaultCause:            ticket.FaultCause,
		},
	})

	return classification, nil
}

// GetGuaranteePeriod returns the project's policy, failing with
// POLICY_NOT_CONFIGURED when none exists.
func (s *GuaranteeService) GetGuaranteePeriod(ctx context.Context, projectID string) (*domain.GuaranteePeriod, error) {
	if err := validateIdentifier("project_id", projectID); err != nil {
		return nil, err
	}
	period, err := s.periods.GetByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPolicyNotConfigured(projectID)
		}
		return nil, err
	}
	return period, nil
}

// GetOrCreateGuaranteePeriod returns the project's policy, creating it
// with the configured defaults on first use. Never fails on a missing
// policy.
func (s *GuaranteeService) GetOrCreateGuaranteePeriod(ctx context.Context, projectID string) (*domain.GuaranteePeriod, error) {
	if err := validateIdentifier("project_id", projectID); err != nil {
		return nil, err
	}

	period, err := s.periods.GetByProject(ctx, projectID)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	s.logger.Info("no guarantee period found, creating default", zap.String("project_id", projectID))
	return s.CreateGuaranteePeriod(ctx, projectID, GuaranteePeriodInput{})
}

// CreateGuaranteePeriod creates the project's policy, applying the
// configured defaults for fields the caller left unset.
func (s *GuaranteeService) CreateGuaranteePeriod(ctx context.Context, projectID string, input GuaranteePeriodInput) (*domain.GuaranteePeriod, error) {
	if err := validateIdentifier("project_id", projectID); err != nil {
		return nil, err
	}

	period := &domain.GuaranteePeriod{
		ProjectID:                       projectID,
		InstallationGuaranteeDays:       valueOr(input.InstallationGuaranteeDays, s.defaults.DefaultInstallationDays),
		MaterialGuaranteeDays:           valueOr(input.MaterialGuaranteeDays, s.defaults.DefaultMaterialDays),
		ContractorLiableDuringGuarantee: valueOr(input.ContractorLiableDuringGuarantee, s.defaults.DefaultContractorLiable),
		AutoClassifyOutOfGuarantee:      valueOr(input.AutoClassifyOutOfGuarantee, s.defaults.DefaultAutoClassifyExpired),
	}

	created, err := s.periods.Create(ctx, period)
	if err != nil {
		return nil, err
	}

	s.logger.Info("guarantee period created",
		zap.String("project_id", projectID),
		zap.Int("installation_days", created.InstallationGuaranteeDays),
		zap.Int("material_days", created.MaterialGuaranteeDays))

	s.publishEvent(ctx, events.Event{
		Type:      events.EventGuaranteePeriodCreated,
		ProjectID: projectID,
		Payload:   periodChangedPayload(created),
	})
	return created, nil
}

// UpdateGuaranteePeriod applies a partial policy edit.
func (s *GuaranteeService) UpdateGuaranteePeriod(ctx context.Context, projectID string, update repository.GuaranteePeriodUpdate) (*domain.GuaranteePeriod, error) {
	if err := validateIdentifier("project_id", projectID); err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}

	updated, err := s.periods.Update(ctx, projectID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPolicyNotConfigured(projectID)
		}
		return nil, err
	}

	s.logger.Info("guarantee period updated", zap.String("project_id", projectID))
	s.publishEvent(ctx, events.Event{
		Type:      events.EventGuaranteePeriodUpdated,
		ProjectID: projectID,
		Payload:   periodChangedPayload(updated),
	})
	return updated, nil
}

func (s *GuaranteeService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func periodChangedPayload(period *domain.GuaranteePeriod) events.GuaranteePeriodChangedPayload {
	return events.GuaranteePeriodChangedPayload{
		InstallationGuaranteeDays:       period.InstallationGuaranteeDays,
		MaterialGuaranteeDays:           period.MaterialGuaranteeDays,
		ContractorLiableDuringGuarantee: period.ContractorLiableDuringGuarantee,
		AutoClassifyOutOfGuarantee:      period.AutoClassifyOutOfGuarantee,
	}
}

func validateIdentifier(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return apperrors.NewInvalidIdentifier(field, value)
	}
	return nil
}

func valueOr[T any](val *T, fallback T) T {
	if val != nil {
		return *val
	}
	return fallback
}
