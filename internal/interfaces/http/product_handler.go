package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/catalog"
	"github.com/redshowroom/pos-api/internal/application/dto"
)

// ProductHandler gère les requêtes HTTP du catalogue (protégé).
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler construit le handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Données du produit"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un produit par ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetUnitPrice godoc
// @Summary      Prix unitaire courant d'un produit
// @Description  Un produit hors catalogue n'est pas une erreur: prix zéro et found=false.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.UnitPriceResponse
// @Router       /api/products/{id}/price [get]
func (h *ProductHandler) GetUnitPrice(c *fiber.Ctx) error {
	out, err := h.uc.GetUnitPrice(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister le catalogue
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        brand     query  string  false  "Marque"
// @Param        category  query  string  false  "Catégorie"
// @Param        family    query  string  false  "Famille"
// @Param        search    query  string  false  "Recherche sur le nom"
// @Param        limit     query  int     false  "Limite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour un produit
// @Description  Le nouveau prix ne s'applique qu'aux ventes futures.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du produit"
// @Param        body  body  dto.UpdateProductRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
