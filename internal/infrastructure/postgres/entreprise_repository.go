package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

var _ repository.EntrepriseRepository = (*EntrepriseRepo)(nil)

// EntrepriseRepo identité fiscale du showroom: ligne unique, id figé.
type EntrepriseRepo struct {
	q Querier
}

// NewEntrepriseRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewEntrepriseRepository(q Querier) *EntrepriseRepo {
	return &EntrepriseRepo{q: q}
}

const entrepriseID = "entreprise"

// Get retourne l'identité fiscale, nil si jamais renseignée.
func (r *EntrepriseRepo) Get() (*entity.Entreprise, error) {
	query := `
		SELECT id, name, address, phone, email, rc, nif, art, ai, capital, created_at, updated_at
		FROM entreprise WHERE id = $1`
	var e entity.Entreprise
	err := r.q.QueryRow(context.Background(), query, entrepriseID).Scan(
		&e.ID, &e.Name, &e.Address, &e.Phone, &e.Email,
		&e.RC, &e.NIF, &e.ART, &e.AI, &e.Capital,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entreprise: %w", err)
	}
	return &e, nil
}

// Upsert crée ou remplace la ligne unique.
func (r *EntrepriseRepo) Upsert(e *entity.Entreprise) error {
	e.ID = entrepriseID
	query := `
		INSERT INTO entreprise (id, name, address, phone, email, rc, nif, art, ai, capital, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
			email = EXCLUDED.email, rc = EXCLUDED.rc, nif = EXCLUDED.nif,
			art = EXCLUDED.art, ai = EXCLUDED.ai, capital = EXCLUDED.capital,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Address, e.Phone, e.Email,
		e.RC, e.NIF, e.ART, e.AI, e.Capital,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert entreprise: %w", err)
	}
	return nil
}
