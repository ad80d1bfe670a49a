package dto

import "github.com/shopspring/decimal"

// RegisterStockEntryRequest body pour POST /api/stock/entries.
type RegisterStockEntryRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// StockMovementResponse entrée de stock dans les réponses.
type StockMovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Date      string          `json:"date"`
}

// AvailabilityResponse stock disponible dérivé pour GET /api/stock/:productID.
type AvailabilityResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Entered     int64           `json:"entered"`   // somme des entrées
	Sold        int64           `json:"sold"`      // somme des quantités vendues
	Available   int64           `json:"available"` // entered − sold
	AverageCost decimal.Decimal `json:"average_cost"`
}
