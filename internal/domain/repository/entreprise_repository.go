package repository

import "github.com/redshowroom/pos-api/internal/domain/entity"

// EntrepriseRepository donne accès à l'identité fiscale du showroom
// (ligne unique, imprimée sur les factures).
type EntrepriseRepository interface {
	Get() (*entity.Entreprise, error)
	Upsert(e *entity.Entreprise) error
}
