package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/application/entreprise"
)

// EntrepriseHandler gère l'identité fiscale du showroom (protégé).
type EntrepriseHandler struct {
	uc *entreprise.UseCase
}

// NewEntrepriseHandler construit le handler.
func NewEntrepriseHandler(uc *entreprise.UseCase) *EntrepriseHandler {
	return &EntrepriseHandler{uc: uc}
}

// Get godoc
// @Summary      Identité fiscale du showroom
// @Tags         entreprise
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entreprise [get]
func (h *EntrepriseHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour l'identité fiscale (admin)
// @Tags         entreprise
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEntrepriseRequest  true  "Identité fiscale"
// @Success      200   {object}  dto.EntrepriseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entreprise [put]
func (h *EntrepriseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntrepriseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
