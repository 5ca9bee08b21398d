package events

import (
	"time"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGuaranteeClassified    EventType = "guarantee_classified"
	EventGuaranteePeriodCreated EventType = "guarantee_period_created"
	EventGuaranteePeriodUpdated EventType = "guarantee_period_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	ProjectID string      `json:"project_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// GuaranteeClassifiedPayload payload.
type GuaranteeClassifiedPayload struct {
	Status                domain.GuaranteeStatus        `json:"guarantee_status"`
	BillingClassification domain.BillingClassification  `json:"billing_classification"`
	IsBillable            bool                          `json:"is_billable"`
	ContractorLiable      bool                          `json:"contractor_liable"`
	ExpiresAt             *time.Time                    `json:"expires_at,omitempty"`
	FaultCause            *domain.FaultCause            `json:"fault_cause,omitempty"`
}

// GuaranteePeriodChangedPayload payload for policy create/update events.
type GuaranteePeriodChangedPayload struct {
	InstallationGuaranteeDays       int  `json:"installation_guarantee_days"`
	MaterialGuaranteeDays           int  `json:"material_guarantee_days"`
	ContractorLiableDuringGuarantee bool `json:"contractor_liable_during_guarantee"`
	AutoClassifyOutOfGuarantee      bool `json:"auto_classify_out_of_guarantee"`
}
