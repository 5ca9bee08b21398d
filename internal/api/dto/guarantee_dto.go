package dto

import (
	"time"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// GuaranteeClassificationResponse is the result of a classification run.
type GuaranteeClassificationResponse struct {
	TicketID              string                       `json:"ticket_id"`
	Status                domain.GuaranteeStatus       `json:"guarantee_status"`
	ExpiresAt             *time.Time                   `json:"expires_at"`
	IsBillable            bool                         `json:"is_billable"`
	BillingClassification domain.BillingClassification `json:"billing_classification"`
	DaysRemaining         *int                         `json:"days_remaining"`
	ContractorLiable      bool                         `json:"contractor_liable"`
	Reason                string                       `json:"reason"`
}

// GuaranteePeriodResponse is the project policy representation.
type GuaranteePeriodResponse struct {
	ID                              string    `json:"id"`
	ProjectID                       string    `json:"project_id"`
	InstallationGuaranteeDays       int       `json:"installation_guarantee_days"`
	MaterialGuaranteeDays           int       `json:"material_guarantee_days"`
	ContractorLiableDuringGuarantee bool      `json:"contractor_liable_during_guarantee"`
	AutoClassifyOutOfGuarantee      bool      `json:"auto_classify_out_of_guarantee"`
	CreatedAt                       time.Time `json:"created_at"`
	UpdatedAt                       time.Time `json:"updated_at"`
}

// CreateGuaranteePeriodRequest carries optional policy overrides;
// omitted fields fall back to service defaults.
type CreateGuaranteePeriodRequest struct {
	InstallationGuaranteeDays       *int  `json:"installation_guarantee_days"`
	MaterialGuaranteeDays           *int  `json:"material_guarantee_days"`
	ContractorLiableDuringGuarantee *bool `json:"contractor_liable_during_guarantee"`
	AutoClassifyOutOfGuarantee      *bool `json:"auto_classify_out_of_guarantee"`
}

// UpdateGuaranteePeriodRequest carries a partial policy edit.
type UpdateGuaranteePeriodRequest struct {
	InstallationGuaranteeDays       *int  `json:"installation_guarantee_days"`
	MaterialGuaranteeDays           *int  `json:"material_guarantee_days"`
	ContractorLiableDuringGuarantee *bool `json:"contractor_liable_during_guarantee"`
	AutoClassifyOutOfGuarantee      *bool `json:"auto_classify_out_of_guarantee"`
}

// FaultCauseResponse exposes the static fault taxonomy.
type FaultCauseResponse struct {
	Value            domain.FaultCause `json:"value"`
	Label            string            `json:"label"`
	Description      string            `json:"description"`
	Examples         []string          `json:"examples"`
	ContractorLiable bool              `json:"contractor_liable"`
}
