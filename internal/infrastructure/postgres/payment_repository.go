package postgres

import (
	"context"
	"fmt"

	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implémentation du journal des versements sur PostgreSQL
// (utilisable avec pool ou tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un versement.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, sale_id, amount, date, created_by)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.Amount, payment.Date,
		nullIfEmpty(payment.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListBySale retourne les versements d'une vente, du premier au dernier.
func (r *PaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, sale_id, amount, date, COALESCE(created_by, '')
		FROM payments WHERE sale_id = $1 ORDER BY date, id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.SaleID, &p.Amount, &p.Date, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
