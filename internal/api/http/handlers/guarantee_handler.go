package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-service/internal/api/dto"
	"github.com/spec-kit/maintenance-service/internal/domain"
	"github.com/spec-kit/maintenance-service/internal/repository"
	"github.com/spec-kit/maintenance-service/internal/service"
	apperrors "github.com/spec-kit/maintenance-service/pkg/util"
)

// GuaranteeHandler exposes classification and guarantee policy endpoints.
type GuaranteeHandler struct {
	service *service.GuaranteeService
}

// NewGuaranteeHandler constructs handler.
func NewGuaranteeHandler(guaranteeService *service.GuaranteeService) *GuaranteeHandler {
	return &GuaranteeHandler{service: guaranteeService}
}

// ClassifyTicket POST /tickets/:id/classify-guarantee.
func (h *GuaranteeHandler) ClassifyTicket(c *fiber.Ctx) error {
	classification, err := h.service.ClassifyTicketGuarantee(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": classificationResponse(classification)})
}

// GetGuaranteePeriod GET /projects/:projectId/guarantee-period.
func (h *GuaranteeHandler) GetGuaranteePeriod(c *fiber.Ctx) error {
	period, err := h.service.GetGuaranteePeriod(c.UserContext(), c.Params("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": guaranteePeriodResponse(period)})
}

// EnsureGuaranteePeriod POST /projects/:projectId/guarantee-period/ensure.
// Returns the existing policy or creates one with defaults.
func (h *GuaranteeHandler) EnsureGuaranteePeriod(c *fiber.Ctx) error {
	period, err := h.service.GetOrCreateGuaranteePeriod(c.UserContext(), c.Params("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": guaranteePeriodResponse(period)})
}

// CreateGuaranteePeriod POST /projects/:projectId/guarantee-period.
func (h *GuaranteeHandler) CreateGuaranteePeriod(c *fiber.Ctx) error {
	var req dto.CreateGuaranteePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateWindowDays(req.InstallationGuaranteeDays, req.MaterialGuaranteeDays); err != nil {
		return err
	}

	period, err := h.service.CreateGuaranteePeriod(c.UserContext(), c.Params("projectId"), service.GuaranteePeriodInput{
		InstallationGuaranteeDays:       req.InstallationGuaranteeDays,
		MaterialGuaranteeDays:           req.MaterialGuaranteeDays,
		ContractorLiableDuringGuarantee: req.ContractorLiableDuringGuarantee,
		AutoClassifyOutOfGuarantee:      req.AutoClassifyOutOfGuarantee,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": guaranteePeriodResponse(period)})
}

// UpdateGuaranteePeriod PATCH /projects/:projectId/guarantee-period.
func (h *GuaranteeHandler) UpdateGuaranteePeriod(c *fiber.Ctx) error {
	var req dto.UpdateGuaranteePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateWindowDays(req.InstallationGuaranteeDays, req.MaterialGuaranteeDays); err != nil {
		return err
	}

	period, err := h.service.UpdateGuaranteePeriod(c.UserContext(), c.Params("projectId"), repository.GuaranteePeriodUpdate{
		InstallationGuaranteeDays:       req.InstallationGuaranteeDays,
		MaterialGuaranteeDays:           req.MaterialGuaranteeDays,
		ContractorLiableDuringGuarantee: req.ContractorLiableDuringGuarantee,
		AutoClassifyOutOfGuarantee:      req.AutoClassifyOutOfGuarantee,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": guaranteePeriodResponse(period)})
}

// ListFaultCauses GET /fault-causes.
func (h *GuaranteeHandler) ListFaultCauses(c *fiber.Ctx) error {
	causes := domain.AllFaultCauses()
	items := make([]dto.FaultCauseResponse, 0, len(causes))
	for _, cause := range causes {
		meta := cause.Metadata()
		items = append(items, dto.FaultCauseResponse{
			Value:            cause,
			Label:            meta.Label,
			Description:      meta.Description,
			Examples:         meta.Examples,
			ContractorLiable: meta.ContractorLiable,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func validateWindowDays(installation, material *int) error {
	if installation != nil && *installation < 0 {
		return apperrors.NewValidationError("installation_guarantee_days must be non-negative", nil)
	}
	if material != nil && *material < 0 {
		return apperrors.NewValidationError("material_guarantee_days must be non-negative", nil)
	}
	return nil
}

func classificationResponse(classification *domain.GuaranteeClassification) dto.GuaranteeClassificationResponse {
	return dto.GuaranteeClassificationResponse{
		TicketID:              classification.TicketID,
		Status:                classification.Status,
		ExpiresAt:             classification.ExpiresAt,
		IsBillable:            classification.IsBillable,
		BillingClassification: classification.BillingClassification,
		DaysRemaining:         classification.DaysRemaining,
		ContractorLiable:      classification.ContractorLiable,
		Reason:                classification.Reason,
	}
}

func guaranteePeriodResponse(period *domain.GuaranteePeriod) dto.GuaranteePeriodResponse {
	return dto.GuaranteePeriodResponse{
		ID:                              period.ID,
		ProjectID:                       period.ProjectID,
		InstallationGuaranteeDays:       period.InstallationGuaranteeDays,
		MaterialGuaranteeDays:           period.MaterialGuaranteeDays,
		ContractorLiableDuringGuarantee: period.ContractorLiableDuringGuarantee,
		AutoClassifyOutOfGuarantee:      period.AutoClassifyOutOfGuarantee,
		CreatedAt:                       period.CreatedAt,
		UpdatedAt:                       period.UpdatedAt,
	}
}
