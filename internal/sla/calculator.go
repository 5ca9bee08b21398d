// Package sla provides service-level-agreement calculations for
// dashboards and overdue tracking. The functions are pure; the caller
// supplies ticket fields it has already loaded and the evaluation time.
package sla

import (
	"fmt"
	"math"
	"time"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// warningWindowHours is the remaining-time threshold below which an SLA
// is flagged as at risk.
const warningWindowHours = 4

// CalculateCompliance derives a compliance rate from met/breached counts.
// A zero total yields a zero rate rather than a division fault.
func CalculateCompliance(total, met, breached int) domain.SLACompliance {
	result := domain.SLACompliance{
		Total:      total,
		Met:        met,
		Breached:   breached,
		Percentage: "0.00%",
	}
	if total == 0 {
		return result
	}

	rate := float64(met) / float64(total) * 100
	result.Rate = math.Round(rate*100) / 100
	result.Percentage = fmt.Sprintf("%.2f%%", result.Rate)
	return result
}

// IsTicketOverdue reports whether a ticket is past its SLA deadline.
// Tickets without a deadline are never overdue, and terminal tickets
// are exempt no matter how far past due they ran.
func IsTicketOverdue(slaDueAt *time.Time, currentStatus domain.TicketStatus, now time.Time) domain.OverdueCheck {
	if slaDueAt == nil {
		return domain.OverdueCheck{}
	}
	if currentStatus.Terminal() {
		return domain.OverdueCheck{}
	}
	if !now.After(*slaDueAt) {
		return domain.OverdueCheck{}
	}

	hours := now.Sub(*slaDueAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return domain.OverdueCheck{
		IsOverdue:    true,
		HoursOverdue: hours,
	}
}

// CalculateTimeRemaining reports the SLA headroom for a ticket.
func CalculateTimeRemaining(slaDueAt *time.Time, now time.Time) domain.SLATimeRemaining {
	if slaDueAt == nil {
		return domain.SLATimeRemaining{Status: domain.SLAHealthNoSLA}
	}

	hours := slaDueAt.Sub(now).Hours()
	result := domain.SLATimeRemaining{HoursRemaining: hours}
	switch {
	case hours < 0:
		result.IsBreached = true
		result.Status = domain.SLAHealthBreached
	case hours < warningWindowHours:
		result.Status = domain.SLAHealthWarning
	default:
		result.Status = domain.SLAHealthOK
	}
	return result
}

// CalculateResolutionTime reports elapsed time between creation and
// closure. Negative elapsed time (closed before created, a data-entry
// error) passes through unmodified; rejecting it is an upstream concern.
func CalculateResolutionTime(createdAt time.Time, closedAt *time.Time) domain.ResolutionTime {
	if closedAt == nil {
		return domain.ResolutionTime{}
	}

	hours := closedAt.Sub(createdAt).Hours()
	days := hours / 24
	return domain.ResolutionTime{
		Hours:      &hours,
		Days:       &days,
		IsResolved: true,
	}
}
