package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/application/stock"
)

// StockHandler gère le registre d'entrées de stock et la consultation du
// disponible (protégé).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Enregistrer une entrée d'achat
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterStockEntryRequest  true  "produit, quantité, coût"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterEntry(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Availability godoc
// @Summary      Stock disponible d'un produit
// @Description  Dérivé à la demande: somme(entrées) − somme(quantités vendues).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productID  path  string  true  "ID du produit"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productID} [get]
func (h *StockHandler) Availability(c *fiber.Ctx) error {
	out, err := h.uc.Availability(c.Context(), c.Params("productID"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListEntries godoc
// @Summary      Historique des entrées d'un produit
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productID  path   string  true   "ID du produit"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/stock/{productID}/entries [get]
func (h *StockHandler) ListEntries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ListEntries(c.Context(), c.Params("productID"), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
