package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// ClassificationUpdate is the set of fields the classification engine
// writes back onto a ticket, applied in a single statement.
type ClassificationUpdate struct {
	GuaranteeStatus       domain.GuaranteeStatus
	GuaranteeExpiresAt    *time.Time
	IsBillable            bool
	BillingClassification domain.BillingClassification
}

// SLACounts aggregates SLA outcomes across tickets.
type SLACounts struct {
	Total    int
	Met      int
	Breached int
}

// ResolvedTicket pairs the timestamps needed for resolution-time stats.
type ResolvedTicket struct {
	ID        string
	CreatedAt time.Time
	ClosedAt  *time.Time
}

// TicketRepository encapsulates the engine's view of ticket persistence:
// one read of the classification inputs, one write of the result, plus
// the aggregate reads the SLA dashboard needs.
type TicketRepository interface {
	GetCoreFields(ctx context.Context, id string) (*domain.Ticket, error)
	PersistClassification(ctx context.Context, id string, update ClassificationUpdate) error
	CountSLAOutcomes(ctx context.Context) (SLACounts, error)
	ListOverdueCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Ticket, error)
	ListResolvedSince(ctx context.Context, since time.Time, limit int) ([]ResolvedTicket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) GetCoreFields(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, project_id, ticket_type, fault_cause, status, created_at, sla_due_at, closed_at,
               guarantee_status, guarantee_expires_at, is_billable, billing_classification, updated_at
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ProjectID,
		&ticket.TicketType,
		&ticket.FaultCause,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.SLADueAt,
		&ticket.ClosedAt,
		&ticket.GuaranteeStatus,
		&ticket.GuaranteeExpiresAt,
		&ticket.IsBillable,
		&ticket.BillingClassification,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) PersistClassification(ctx context.Context, id string, update ClassificationUpdate) error {
	const query = `
        UPDATE tickets SET guarantee_status=$1, guarantee_expires_at=$2, is_billable=$3,
            billing_classification=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		update.GuaranteeStatus,
		update.GuaranteeExpiresAt,
		update.IsBillable,
		update.BillingClassification,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) CountSLAOutcomes(ctx context.Context) (SLACounts, error) {
	const query = `
        SELECT
            COUNT(*) FILTER (WHERE sla_due_at IS NOT NULL),
            COUNT(*) FILTER (WHERE sla_due_at IS NOT NULL AND NOT sla_breached),
            COUNT(*) FILTER (WHERE sla_due_at IS NOT NULL AND sla_breached)
        FROM tickets`
	var counts SLACounts
	if err := r.pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Met, &counts.Breached); err != nil {
		return SLACounts{}, err
	}
	return counts, nil
}

func (r *ticketRepository) ListOverdueCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, project_id, ticket_type, fault_cause, status, created_at, sla_due_at, closed_at,
               guarantee_status, guarantee_expires_at, is_billable, billing_classification, updated_at
        FROM tickets
        WHERE sla_due_at IS NOT NULL
          AND sla_due_at < $1
          AND status NOT IN ($2, $3)
        ORDER BY sla_due_at ASC
        LIMIT $4`
	rows, err := r.pool.Query(ctx, query, now, domain.TicketStatusClosed, domain.TicketStatusCancelled, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.ProjectID,
			&ticket.TicketType,
			&ticket.FaultCause,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.SLADueAt,
			&ticket.ClosedAt,
			&ticket.GuaranteeStatus,
			&ticket.GuaranteeExpiresAt,
			&ticket.IsBillable,
			&ticket.BillingClassification,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) ListResolvedSince(ctx context.Context, since time.Time, limit int) ([]ResolvedTicket, error) {
	if limit <= 0 {
		limit = 500
	}
	const query = `
        SELECT id, created_at, closed_at
        FROM tickets
        WHERE closed_at IS NOT NULL AND closed_at >= $1
        ORDER BY closed_at DESC
        LIMIT $2`
	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ResolvedTicket
	for rows.Next() {
		var ticket ResolvedTicket
		if err := rows.Scan(&ticket.ID, &ticket.CreatedAt, &ticket.ClosedAt); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
