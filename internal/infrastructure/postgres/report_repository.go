package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redshowroom/pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agrégations SQL du tableau de bord. Les sommes restent côté
// base; Go ne fait que le transport.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary agrège l'activité de la période: nombre de ventes, totaux et
// restes à payer.
func (r *ReportRepo) SalesSummary(from, to *time.Time) (*repository.SalesSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_ht), 0),
		       COALESCE(SUM(total_ttc), 0),
		       COALESCE(SUM(montant_verse), 0),
		       COALESCE(SUM(total_ttc - montant_verse), 0)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)`
	var s repository.SalesSummary
	err := r.q.QueryRow(context.Background(), query, from, to).Scan(
		&s.SalesCount, &s.TotalHT, &s.TotalTTC, &s.TotalVerse, &s.TotalOutstanding,
	)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &s, nil
}

// TopProducts retourne le classement des produits les plus vendus sur la
// période, par quantité décroissante.
func (r *ReportRepo) TopProducts(from, to *time.Time, limit int) ([]*repository.ProductSales, error) {
	query := `
		SELECT l.product_id, l.product_name,
		       COALESCE(SUM(l.quantity), 0),
		       COALESCE(SUM(l.total_ht), 0)
		FROM sale_lines l
		JOIN sales s ON s.id = l.sale_id
		WHERE ($1::timestamptz IS NULL OR s.date >= $1)
		  AND ($2::timestamptz IS NULL OR s.date <= $2)
		GROUP BY l.product_id, l.product_name
		ORDER BY SUM(l.quantity) DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductSales
	for rows.Next() {
		var p repository.ProductSales
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Quantity, &p.TotalHT); err != nil {
			return nil, fmt.Errorf("scan product sales: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
