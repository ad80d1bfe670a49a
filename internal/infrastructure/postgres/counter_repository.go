package postgres

import (
	"context"
	"fmt"

	"github.com/redshowroom/pos-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo compteur atomique de numéros de facture par année. L'upsert
// incrémental sérialise les allocations concurrentes au niveau de la base.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// NextInvoiceNumber incrémente le compteur de l'année et retourne la nouvelle
// valeur (1 pour la première facture de l'année).
func (r *CounterRepo) NextInvoiceNumber(year int) (int, error) {
	query := `
		INSERT INTO invoice_counters (year, last_number)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_number = invoice_counters.last_number + 1
		RETURNING last_number`
	var n int
	if err := r.q.QueryRow(context.Background(), query, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}
