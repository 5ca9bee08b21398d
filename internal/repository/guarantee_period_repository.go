package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// GuaranteePeriodUpdate carries optional policy edits; nil fields are
// left untouched.
type GuaranteePeriodUpdate struct {
	InstallationGuaranteeDays       *int
	MaterialGuaranteeDays           *int
	ContractorLiableDuringGuarantee *bool
	AutoClassifyOutOfGuarantee      *bool
}

// IsEmpty reports whether the update carries no changes.
func (u GuaranteePeriodUpdate) IsEmpty() bool {
	return u.InstallationGuaranteeDays == nil &&
		u.MaterialGuaranteeDays == nil &&
		u.ContractorLiableDuringGuarantee == nil &&
		u.AutoClassifyOutOfGuarantee == nil
}

// GuaranteePeriodRepository manages per-project guarantee policies.
// The table carries a unique index on project_id; Create leans on it so
// concurrent inserts for one project converge on a single row.
type GuaranteePeriodRepository interface {
	GetByProject(ctx context.Context, projectID string) (*domain.GuaranteePeriod, error)
	Create(ctx context.Context, period *domain.GuaranteePeriod) (*domain.GuaranteePeriod, error)
	Update(ctx context.Context, projectID string, update GuaranteePeriodUpdate) (*domain.GuaranteePeriod, error)
}

type guaranteePeriodRepository struct {
	pool *pgxpool.Pool
}

// NewGuaranteePeriodRepository builds the repository.
func NewGuaranteePeriodRepository(pool *pgxpool.Pool) GuaranteePeriodRepository {
	return &guaranteePeriodRepository{pool: pool}
}

const guaranteePeriodColumns = `
        id, project_id, installation_guarantee_days, material_guarantee_days,
        contractor_liable_during_guarantee, auto_classify_out_of_guarantee, created_at, updated_at`

func (r *guaranteePeriodRepository) GetByProject(ctx context.Context, projectID string) (*domain.GuaranteePeriod, error) {
	const query = `
        SELECT` + guaranteePeriodColumns + `
        FROM guarantee_periods WHERE project_id=$1`
	return r.fetchSingle(ctx, query, projectID)
}

// Create inserts the policy, deferring to the unique index on conflict.
// If another writer won the race the existing row is re-read and
// returned, so callers always get the project's single policy row.
func (r *guaranteePeriodRepository) Create(ctx context.Context, period *domain.GuaranteePeriod) (*domain.GuaranteePeriod, error) {
	const query = `
        INSERT INTO guarantee_periods (
            project_id,
            installation_guarantee_days,
            material_guarantee_days,
            contractor_liable_during_guarantee,
            auto_classify_out_of_guarantee
        ) VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (project_id) DO NOTHING
        RETURNING` + guaranteePeriodColumns
	created, err := r.scanRow(r.pool.QueryRow(ctx, query,
		period.ProjectID,
		period.InstallationGuaranteeDays,
		period.MaterialGuaranteeDays,
		period.ContractorLiableDuringGuarantee,
		period.AutoClassifyOutOfGuarantee,
	))
	if err == nil {
		return created, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}
	return r.GetByProject(ctx, period.ProjectID)
}

func (r *guaranteePeriodRepository) Update(ctx context.Context, projectID string, update GuaranteePeriodUpdate) (*domain.GuaranteePeriod, error) {
	const query = `
        UPDATE guarantee_periods SET
            installation_guarantee_days = COALESCE($1, installation_guarantee_days),
            material_guarantee_days = COALESCE($2, material_guarantee_days),
            contractor_liable_during_guarantee = COALESCE($3, contractor_liable_during_guarantee),
            auto_classify_out_of_guarantee = COALESCE($4, auto_classify_out_of_guarantee),
            updated_at = NOW()
        WHERE project_id=$5
        RETURNING` + guaranteePeriodColumns
	return r.scanRow(r.pool.QueryRow(ctx, query,
		update.InstallationGuaranteeDays,
		update.MaterialGuaranteeDays,
		update.ContractorLiableDuringGuarantee,
		update.AutoClassifyOutOfGuarantee,
		projectID,
	))
}

func (r *guaranteePeriodRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.GuaranteePeriod, error) {
	return r.scanRow(r.pool.QueryRow(ctx, query, arg))
}

func (r *guaranteePeriodRepository) scanRow(row pgx.Row) (*domain.GuaranteePeriod, error) {
	var period domain.GuaranteePeriod
	if err := row.Scan(
		&period.ID,
		&period.ProjectID,
		&period.InstallationGuaranteeDays,
		&period.MaterialGuaranteeDays,
		&period.ContractorLiableDuringGuarantee,
		&period.AutoClassifyOutOfGuarantee,
		&period.CreatedAt,
		&period.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &period, nil
}
