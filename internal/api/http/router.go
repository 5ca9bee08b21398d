package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-service/internal/api/http/handlers"
	"github.com/spec-kit/maintenance-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Guarantee *handlers.GuaranteeHandler
	Dashboard *handlers.DashboardHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	app.Get("/fault-causes", cfg.Guarantee.ListFaultCauses)
	app.Post("/tickets/:id/classify-guarantee", cfg.Guarantee.ClassifyTicket)

	projects := app.Group("/projects/:projectId")
	projects.Get("/guarantee-period", cfg.Guarantee.GetGuaranteePeriod)
	projects.Post("/guarantee-period", cfg.Guarantee.CreateGuaranteePeriod)
	projects.Post("/guarantee-period/ensure", cfg.Guarantee.EnsureGuaranteePeriod)
	projects.Patch("/guarantee-period", cfg.Guarantee.UpdateGuaranteePeriod)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/sla-compliance", cfg.Dashboard.SLACompliance)
	dashboard.Get("/overdue", cfg.Dashboard.OverdueTickets)
	dashboard.Get("/resolution-times", cfg.Dashboard.ResolutionStats)
}
