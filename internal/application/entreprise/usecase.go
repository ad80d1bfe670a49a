package entreprise

import (
	"context"
	"time"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// UseCase gère l'identité fiscale du showroom (ligne unique, imprimée sur
// chaque facture).
type UseCase struct {
	repo repository.EntrepriseRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.EntrepriseRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get retourne l'identité fiscale courante.
func (uc *UseCase) Get(ctx context.Context) (*dto.EntrepriseResponse, error) {
	e, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(e), nil
}

// Update remplace l'identité fiscale (réservé aux admins via le routeur).
func (uc *UseCase) Update(ctx context.Context, in dto.UpdateEntrepriseRequest) (*dto.EntrepriseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Entreprise{
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		RC:        in.RC,
		NIF:       in.NIF,
		ART:       in.ART,
		AI:        in.AI,
		Capital:   in.Capital,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

func toResponse(e *entity.Entreprise) *dto.EntrepriseResponse {
	return &dto.EntrepriseResponse{
		Name:    e.Name,
		Address: e.Address,
		Phone:   e.Phone,
		Email:   e.Email,
		RC:      e.RC,
		NIF:     e.NIF,
		ART:     e.ART,
		AI:      e.AI,
		Capital: e.Capital,
	}
}
