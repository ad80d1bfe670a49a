package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/application/sales"
)

// PaymentHandler gère les versements sur les ventes (protégé).
type PaymentHandler struct {
	uc *sales.PaymentUseCase
}

// NewPaymentHandler construit le handler.
func NewPaymentHandler(uc *sales.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Record godoc
// @Summary      Enregistrer un versement
// @Description  Ajoute le montant au cumul de la vente; le cumul ne peut jamais dépasser le TTC.
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la vente"
// @Param        body  body  dto.RecordPaymentRequest  true  "montant"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/payments [post]
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordPayment(c.Context(), c.Params("id"), GetUserID(c), in.Amount)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListBySale godoc
// @Summary      Versements d'une vente
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vente"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/payments [get]
func (h *PaymentHandler) ListBySale(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListOutstanding godoc
// @Summary      Ventes à solder
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.SaleResponse
// @Router       /api/sales/outstanding [get]
func (h *PaymentHandler) ListOutstanding(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ListOutstanding(c.Context(), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
