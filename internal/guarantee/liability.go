package guarantee

import (
	"github.com/spec-kit/maintenance-service/internal/domain"
)

// LiabilityResult is the outcome of a contractor liability assessment.
type LiabilityResult struct {
	IsLiable      bool
	Reason        string
	Status        domain.GuaranteeStatus
	FaultCause    *domain.FaultCause
	BillingImpact domain.BillingImpact
}

// AssessLiability determines contractor liability over the same inputs
// as DetermineBilling. The two tables are kept as independent functions
// on purpose: each must reach conclusions consistent with the other,
// and the cross-consistency test catches divergence when either changes.
func AssessLiability(status domain.GuaranteeStatus, faultCause *domain.FaultCause, contractorLiableDuringGuarantee bool) LiabilityResult {
	if status == domain.GuaranteeStatusPending {
		return LiabilityResult{
			IsLiable:      false,
			Reason:        "Guarantee status pending classification",
			Status:        status,
			FaultCause:    faultCause,
			BillingImpact: domain.BillingImpactPending,
		}
	}

	if faultCause == nil || *faultCause == domain.FaultCauseUnknown {
		return LiabilityResult{
			IsLiable:      false,
			Reason:        "Unknown fault cause - cannot determine liability",
			Status:        status,
			FaultCause:    faultCause,
			BillingImpact: domain.BillingImpactPending,
		}
	}

	if status == domain.GuaranteeStatusOut {
		return LiabilityResult{
			IsLiable:      false,
			Reason:        "Out of guarantee period - contractor not liable",
			Status:        status,
			FaultCause:    faultCause,
			BillingImpact: domain.BillingImpactClientPays,
		}
	}

	result := LiabilityResult{
		IsLiable:      false,
		Status:        status,
		FaultCause:    faultCause,
		BillingImpact: domain.BillingImpactClientPays,
	}

	switch *faultCause {
	case domain.FaultCauseWorkmanship:
		if contractorLiableDuringGuarantee {
			result.IsLiable = true
			result.Reason = "Workmanship fault under guarantee period"
			result.BillingImpact = domain.BillingImpactContractorPays
		} else {
			result.Reason = "Policy: contractor not liable during guarantee"
		}
	case domain.FaultCauseClientDamage:
		result.Reason = "Client damage - client liable"
	case domain.FaultCauseThirdParty:
		result.Reason = "Third-party damage - third party liable"
	case domain.FaultCauseMaterialFailure:
		result.Reason = "Material failure - supplier warranty applies"
	case domain.FaultCauseEnvironmental:
		result.Reason = "Environmental damage - force majeure"
	case domain.FaultCauseVandalism:
		result.Reason = "Vandalism - no contractor liability"
	default:
		result.Reason = "Unknown fault cause - cannot determine liability"
		result.BillingImpact = domain.BillingImpactPending
	}

	return result
}
