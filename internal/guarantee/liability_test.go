package guarantee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

func TestAssessLiability(t *testing.T) {
	tests := []struct {
		name             string
		status           domain.GuaranteeStatus
		cause            *domain.FaultCause
		contractorLiable bool
		wantLiable       bool
		wantImpact       domain.BillingImpact
		wantReason       string
	}{
		{
			name:             "pending status",
			status:           domain.GuaranteeStatusPending,
			cause:            causePtr(domain.FaultCauseWorkmanship),
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactPending,
			wantReason:       "Guarantee status pending classification",
		},
		{
			name:             "nil cause",
			status:           domain.GuaranteeStatusUnder,
			cause:            nil,
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactPending,
			wantReason:       "Unknown fault cause - cannot determine liability",
		},
		{
			name:             "unknown cause",
			status:           domain.GuaranteeStatusUnder,
			cause:            causePtr(domain.FaultCauseUnknown),
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactPending,
			wantReason:       "Unknown fault cause - cannot determine liability",
		},
		{
			name:             "out of guarantee",
			status:           domain.GuaranteeStatusOut,
			cause:            causePtr(domain.FaultCauseWorkmanship),
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactClientPays,
			wantReason:       "Out of guarantee period - contractor not liable",
		},
		{
			name:             "workmanship under guarantee with liability policy",
			status:           domain.GuaranteeStatusUnder,
			cause:            causePtr(domain.FaultCauseWorkmanship),
			contractorLiable: true,
			wantLiable:       true,
			wantImpact:       domain.BillingImpactContractorPays,
			wantReason:       "Workmanship fault under guarantee period",
		},
		{
			name:             "workmanship under guarantee without liability policy",
			status:           domain.GuaranteeStatusUnder,
			cause:            causePtr(domain.FaultCauseWorkmanship),
			contractorLiable: false,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactClientPays,
			wantReason:       "Policy: contractor not liable during guarantee",
		},
		{
			name:             "client damage under guarantee",
			status:           domain.GuaranteeStatusUnder,
			cause:            causePtr(domain.FaultCauseClientDamage),
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactClientPays,
			wantReason:       "Client damage - client liable",
		},
		{
			name:             "material failure under guarantee",
			status:           domain.GuaranteeStatusUnder,
			cause:            causePtr(domain.FaultCauseMaterialFailure),
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactClientPays,
			wantReason:       "Material failure - supplier warranty applies",
		},
		{
			name:             "environmental under guarantee",
			status:           domain.GuaranteeStatusUnder,
			cause:            causePtr(domain.FaultCauseEnvironmental),
			contractorLiable: true,
			wantLiable:       false,
			wantImpact:       domain.BillingImpactClientPays,
			wantReason:       "Environmental damage - force majeure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessLiability(tt.status, tt.cause, tt.contractorLiable)
			assert.Equal(t, tt.wantLiable, got.IsLiable)
			assert.Equal(t, tt.wantImpact, got.BillingImpact)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.cause, got.FaultCause)
		})
	}
}

// TestBillingLiabilityConsistency exercises both decision tables over the
// full (status, cause, policy) product and asserts the invariants that tie
// them together. If either table changes in isolation this test breaks.
func TestBillingLiabilityConsistency(t *testing.T) {
	statuses := []domain.GuaranteeStatus{
		domain.GuaranteeStatusUnder,
		domain.GuaranteeStatusOut,
		domain.GuaranteeStatusPending,
	}
	causes := []*domain.FaultCause{nil}
	for _, c := range domain.AllFaultCauses() {
		causes = append(causes, causePtr(c))
	}

	for _, status := range statuses {
		for _, cause := range causes {
			for _, policy := range []bool{true, false} {
				billing := DetermineBilling(status, cause, policy)
				liability := AssessLiability(status, cause, policy)

				label := func() string {
					c := "nil"
					if cause != nil {
						c = string(*cause)
					}
					return string(status) + "/" + c
				}()

				// Contractor liability and client billing are mutually
				// exclusive: the contractor pays or the client does.
				if liability.IsLiable {
					assert.False(t, billing.IsBillable, "%s: contractor liable but client billed", label)
					assert.Equal(t, domain.BillingImpactContractorPays, liability.BillingImpact, label)
					assert.Equal(t, domain.BillingContractorUnderGuarantee, billing.Classification, label)
				}

				// Billable work always falls to the client.
				if billing.IsBillable {
					assert.False(t, liability.IsLiable, label)
					assert.Equal(t, domain.BillingImpactClientPays, liability.BillingImpact, label)
				}

				// Pending outcomes agree across both tables.
				pendingBilling := billing.Classification == domain.BillingPendingClassification
				pendingLiability := liability.BillingImpact == domain.BillingImpactPending
				assert.Equal(t, pendingBilling, pendingLiability, "%s: pending outcomes diverge", label)
			}
		}
	}
}
