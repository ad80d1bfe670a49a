package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary agrège l'activité d'une période pour le tableau de bord.
type SalesSummary struct {
	SalesCount       int64
	TotalHT          decimal.Decimal
	TotalTTC         decimal.Decimal
	TotalVerse       decimal.Decimal
	TotalOutstanding decimal.Decimal // somme des restes à payer
}

// ProductSales est une entrée du classement des produits les plus vendus.
type ProductSales struct {
	ProductID   string
	ProductName string
	Quantity    int64
	TotalHT     decimal.Decimal
}

// ReportRepository exécute les agrégations SQL du tableau de bord; les
// calculs lourds restent côté base.
type ReportRepository interface {
	SalesSummary(from, to *time.Time) (*SalesSummary, error)
	TopProducts(from, to *time.Time, limit int) ([]*ProductSales, error)
}
