package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/application/sales"
)

// SaleHandler gère la validation des ventes, l'historique et la facture PDF
// (protégé).
type SaleHandler struct {
	checkout *sales.CheckoutUseCase
	history  *sales.HistoryUseCase
	pdf      *sales.PDFUseCase
}

// NewSaleHandler construit le handler.
func NewSaleHandler(checkout *sales.CheckoutUseCase, history *sales.HistoryUseCase, pdf *sales.PDFUseCase) *SaleHandler {
	return &SaleHandler{checkout: checkout, history: history, pdf: pdf}
}

// Checkout godoc
// @Summary      Valider un panier (tout ou rien)
// @Description  Vérifie le stock de chaque ligne, calcule les totaux fiscaux, attribue le numéro de facture si demandé et persiste le tout dans une seule transaction.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "client, lignes, versement"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.checkout.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historique des ventes
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  false  "AAAA-MM-JJ (inclus)"
// @Param        to        query  string  false  "AAAA-MM-JJ (inclus)"
// @Param        customer  query  string  false  "Filtre sur le nom client"
// @Param        limit     query  int     false  "Limite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.ListSalesRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.history.List(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Détail d'une vente
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vente"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.history.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Télécharger la facture PDF
// @Description  Disponible seulement si la vente porte un numéro de facture.
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la vente"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
