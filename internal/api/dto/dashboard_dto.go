package dto

import (
	"time"

	"github.com/spec-kit/maintenance-service/internal/domain"
)

// SLAComplianceResponse summarizes SLA outcomes across tickets.
type SLAComplianceResponse struct {
	TotalTickets         int     `json:"total_tickets"`
	SLAMet               int     `json:"sla_met"`
	SLABreached          int     `json:"sla_breached"`
	ComplianceRate       float64 `json:"compliance_rate"`
	CompliancePercentage string  `json:"compliance_percentage"`
}

// OverdueTicketResponse describes one overdue ticket.
type OverdueTicketResponse struct {
	ID           string              `json:"id"`
	ProjectID    *string             `json:"project_id"`
	Status       domain.TicketStatus `json:"status"`
	SLADueAt     *time.Time          `json:"sla_due_at"`
	HoursOverdue float64             `json:"hours_overdue"`
}

// OverdueTicketsResponse lists overdue tickets with a count.
type OverdueTicketsResponse struct {
	Count   int                     `json:"count"`
	Tickets []OverdueTicketResponse `json:"tickets"`
}

// ResolutionStatsResponse summarizes resolution times.
type ResolutionStatsResponse struct {
	ResolvedCount int      `json:"resolved_count"`
	AverageHours  *float64 `json:"average_hours"`
}
