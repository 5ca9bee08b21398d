package domain

import "time"

// GuaranteeStatus enumerates guarantee classification outcomes. A status is
// terminal for a given evaluation; classifications are recomputed from
// scratch, never mutated incrementally.
type GuaranteeStatus string

const (
	GuaranteeStatusUnder   GuaranteeStatus = "under_guarantee"
	GuaranteeStatusOut     GuaranteeStatus = "out_of_guarantee"
	GuaranteeStatusPending GuaranteeStatus = "pending_classification"
)

// BillingClassification enumerates who gets billed for a repair.
type BillingClassification string

const (
	BillingContractorUnderGuarantee BillingClassification = "contractor_under_guarantee"
	BillingClientOutOfGuarantee     BillingClassification = "client_out_of_guarantee"
	BillingClientDamage             BillingClassification = "client_damage"
	BillingThirdPartyDamage         BillingClassification = "third_party_damage"
	BillingWarrantyClaim            BillingClassification = "warranty_claim"
	BillingFreeOfCharge             BillingClassification = "free_of_charge"
	BillingPendingClassification    BillingClassification = "pending_classification"
)

// BillingImpact summarizes the financial direction of a liability decision.
type BillingImpact string

const (
	BillingImpactContractorPays BillingImpact = "contractor_pays"
	BillingImpactClientPays     BillingImpact = "client_pays"
	BillingImpactPending        BillingImpact = "pending"
)

// GuaranteePeriod is the per-project guarantee policy. Exactly one row
// exists per project; it is created lazily with defaults on first use.
type GuaranteePeriod struct {
	ID                              string
	ProjectID                       string
	InstallationGuaranteeDays       int
	MaterialGuaranteeDays           int
	ContractorLiableDuringGuarantee bool
	AutoClassifyOutOfGuarantee      bool
	CreatedAt                       time.Time
	UpdatedAt                       time.Time
}

// GuaranteeClassification is the merged result of a classification run.
// It is projected onto the ticket, not persisted as its own row.
type GuaranteeClassification struct {
	TicketID              string
	Status                GuaranteeStatus
	ExpiresAt             *time.Time
	IsBillable            bool
	BillingClassification BillingClassification
	DaysRemaining         *int
	ContractorLiable      bool
	Reason                string
}
