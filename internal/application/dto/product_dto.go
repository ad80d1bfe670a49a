package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body pour POST /api/products.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Category  string          `json:"category,omitempty"`
	Family    string          `json:"family,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest body pour PUT /api/products/:id.
type UpdateProductRequest struct {
	Name      string           `json:"name,omitempty"`
	Brand     string           `json:"brand,omitempty"`
	Category  string           `json:"category,omitempty"`
	Family    string           `json:"family,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// ListProductsRequest filtres de taxonomie pour GET /api/products.
type ListProductsRequest struct {
	PageRequest
	Brand    string `query:"brand"`
	Category string `query:"category"`
	Family   string `query:"family"`
	Search   string `query:"search"`
}

// ProductResponse produit dans les réponses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Category  string          `json:"category,omitempty"`
	Family    string          `json:"family,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UnitPriceResponse réponse de GET /api/products/:id/price.
// Found vaut false quand le produit est absent du catalogue: le prix retourné
// est alors zéro et l'appelant affiche un avertissement, pas une erreur.
type UnitPriceResponse struct {
	ProductID string          `json:"product_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Found     bool            `json:"found"`
}
