package dto

import "github.com/shopspring/decimal"

// DashboardRequest période du tableau de bord.
type DashboardRequest struct {
	From string `query:"from"` // AAAA-MM-JJ
	To   string `query:"to"`
}

// DashboardResponse synthèse d'activité.
type DashboardResponse struct {
	SalesCount       int64                `json:"sales_count"`
	TotalHT          decimal.Decimal      `json:"total_ht"`
	TotalTTC         decimal.Decimal      `json:"total_ttc"`
	TotalVerse       decimal.Decimal      `json:"total_verse"`
	TotalOutstanding decimal.Decimal      `json:"total_outstanding"`
	TopProducts      []TopProductResponse `json:"top_products"`
}

// TopProductResponse entrée du classement des meilleures ventes.
type TopProductResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	TotalHT     decimal.Decimal `json:"total_ht"`
}
