package guarantee

import (
	"github.com/spec-kit/maintenance-service/internal/domain"
)

// BillingResult is the outcome of billing determination.
type BillingResult struct {
	Classification domain.BillingClassification
	IsBillable     bool
	Reason         string
}

// DetermineBilling maps guarantee status and fault cause to a billing
// classification. Rules are evaluated top to bottom, first match wins:
// a pending guarantee status or an unknown fault cause short-circuits
// before any fault-specific rule, and an expired guarantee bills the
// client regardless of fault cause.
//
// The fault-cause switch must stay in sync with AssessLiability; the
// cross-consistency test covers every (status, cause) combination.
func DetermineBilling(status domain.GuaranteeStatus, faultCause *domain.FaultCause, contractorLiableDuringGuarantee bool) BillingResult {
	if status == domain.GuaranteeStatusPending {
		return BillingResult{
			Classification: domain.BillingPendingClassification,
			IsBillable:     false,
			Reason:         "Guarantee status pending classification",
		}
	}

	if faultCause == nil || *faultCause == domain.FaultCauseUnknown {
		return BillingResult{
			Classification: domain.BillingPendingClassification,
			IsBillable:     false,
			Reason:         "Unknown fault cause - requires investigation",
		}
	}

	if status == domain.GuaranteeStatusOut {
		return BillingResult{
			Classification: domain.BillingClientOutOfGuarantee,
			IsBillable:     true,
			Reason:         "Out of guarantee period - client liable",
		}
	}

	switch *faultCause {
	case domain.FaultCauseWorkmanship:
		if contractorLiableDuringGuarantee {
			return BillingResult{
				Classification: domain.BillingContractorUnderGuarantee,
				IsBillable:     false,
				Reason:         "Workmanship fault under guarantee - contractor liable",
			}
		}
		return BillingResult{
			Classification: domain.BillingFreeOfCharge,
			IsBillable:     false,
			Reason:         "Contractor not liable per project policy",
		}

	case domain.FaultCauseMaterialFailure:
		return BillingResult{
			Classification: domain.BillingWarrantyClaim,
			IsBillable:     false,
			Reason:         "Material warranty claim - supplier liable",
		}

	case domain.FaultCauseClientDamage:
		// Guarantee never covers self-inflicted damage.
		return BillingResult{
			Classification: domain.BillingClientDamage,
			IsBillable:     true,
			Reason:         "Client caused damage - client liable",
		}

	case domain.FaultCauseThirdParty:
		return BillingResult{
			Classification: domain.BillingThirdPartyDamage,
			IsBillable:     true,
			Reason:         "Third-party damage - third party liable",
		}

	case domain.FaultCauseEnvironmental:
		return BillingResult{
			Classification: domain.BillingFreeOfCharge,
			IsBillable:     false,
			Reason:         "Environmental damage - no party liable",
		}

	case domain.FaultCauseVandalism:
		return BillingResult{
			Classification: domain.BillingFreeOfCharge,
			IsBillable:     false,
			Reason:         "Vandalism - no party liable",
		}

	default:
		return BillingResult{
			Classification: domain.BillingPendingClassification,
			IsBillable:     false,
			Reason:         "Unknown fault cause - requires investigation",
		}
	}
}
