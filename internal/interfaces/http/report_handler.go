package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/application/reports"
)

// ReportHandler gère le tableau de bord (protégé).
type ReportHandler struct {
	uc *reports.DashboardUseCase
}

// NewReportHandler construit le handler.
func NewReportHandler(uc *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Synthèse d'activité
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "AAAA-MM-JJ (inclus)"
// @Param        to    query  string  false  "AAAA-MM-JJ (inclus)"
// @Success      200   {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	var in dto.DashboardRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Dashboard(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
