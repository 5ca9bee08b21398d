package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-service/internal/api/dto"
	"github.com/spec-kit/maintenance-service/internal/service"
)

// DashboardHandler exposes SLA dashboard endpoints.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// SLACompliance GET /dashboard/sla-compliance.
func (h *DashboardHandler) SLACompliance(c *fiber.Ctx) error {
	compliance, err := h.service.SLACompliance(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SLAComplianceResponse{
		TotalTickets:         compliance.Total,
		SLAMet:               compliance.Met,
		SLABreached:          compliance.Breached,
		ComplianceRate:       compliance.Rate,
		CompliancePercentage: compliance.Percentage,
	}})
}

// OverdueTickets GET /dashboard/overdue.
func (h *DashboardHandler) OverdueTickets(c *fiber.Ctx) error {
	overdue, err := h.service.OverdueTickets(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.OverdueTicketResponse, 0, len(overdue))
	for _, entry := range overdue {
		items = append(items, dto.OverdueTicketResponse{
			ID:           entry.Ticket.ID,
			ProjectID:    entry.Ticket.ProjectID,
			Status:       entry.Ticket.Status,
			SLADueAt:     entry.Ticket.SLADueAt,
			HoursOverdue: entry.HoursOverdue,
		})
	}
	return c.JSON(fiber.Map{"data": dto.OverdueTicketsResponse{
		Count:   len(items),
		Tickets: items,
	}})
}

// ResolutionStats GET /dashboard/resolution-times.
func (h *DashboardHandler) ResolutionStats(c *fiber.Ctx) error {
	stats, err := h.service.ResolutionTimes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ResolutionStatsResponse{
		ResolvedCount: stats.ResolvedCount,
		AverageHours:  stats.AverageHours,
	}})
}
