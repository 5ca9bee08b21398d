package guarantee

import (
	"fmt"
	"time"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// StatusInput carries the ticket timing and policy windows needed to
// classify guarantee status.
type StatusInput struct {
	TicketID                  string
	InstallationDate          *time.Time
	TicketType                *domain.TicketType
	InstallationGuaranteeDays int
	MaterialGuaranteeDays     int
}

// StatusResult is the outcome of guarantee status classification.
type StatusResult struct {
	TicketID      string
	Status        domain.GuaranteeStatus
	ExpiresAt     *time.Time
	DaysRemaining *int
	Reason        string
}

// ClassifyStatus determines whether a ticket's work is under guarantee.
// It is total: every input combination maps to exactly one of the three
// statuses, never an error. Missing data classifies as pending rather
// than failing.
func ClassifyStatus(in StatusInput, now time.Time) StatusResult {
	if in.InstallationDate == nil {
		return StatusResult{
			TicketID: in.TicketID,
			Status:   domain.GuaranteeStatusPending,
			Reason:   "No installation date available",
		}
	}

	var guaranteeDays int
	switch {
	case in.TicketType == nil:
		return StatusResult{
			TicketID: in.TicketID,
			Status:   domain.GuaranteeStatusPending,
			Reason:   "Unknown ticket type",
		}
	case *in.TicketType == domain.TicketTypeInstallation:
		guaranteeDays = in.InstallationGuaranteeDays
	case *in.TicketType == domain.TicketTypeMaterial:
		guaranteeDays = in.MaterialGuaranteeDays
	default:
		return StatusResult{
			TicketID: in.TicketID,
			Status:   domain.GuaranteeStatusPending,
			Reason:   "Unknown ticket type",
		}
	}

	expiry := CalculateExpiry(*in.InstallationDate, guaranteeDays, now)

	status := domain.GuaranteeStatusUnder
	reason := fmt.Sprintf("Guarantee valid for %d more days", expiry.DaysRemaining)
	if expiry.IsExpired {
		status = domain.GuaranteeStatusOut
		daysOverdue := DaysElapsed(*in.InstallationDate, now) - guaranteeDays
		if daysOverdue < 0 {
			daysOverdue = 0
		}
		reason = fmt.Sprintf("Guarantee expired %d days ago", daysOverdue)
	}

	expiresAt := expiry.ExpiresAt
	daysRemaining := expiry.DaysRemaining
	return StatusResult{
		TicketID:      in.TicketID,
		Status:        status,
		ExpiresAt:     &expiresAt,
		DaysRemaining: &daysRemaining,
		Reason:        reason,
	}
}
