package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
	"github.com/redshowroom/pos-api/pkg/logger"
)

// UseCase gère le catalogue: création, mise à jour, liste filtrée par
// taxonomie et résolution du prix unitaire d'un produit.
type UseCase struct {
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewUseCase construit le cas d'usage.
func NewUseCase(productRepo repository.ProductRepository, log *logger.Logger) *UseCase {
	return &UseCase{productRepo: productRepo, log: log}
}

// Create ajoute un produit au catalogue. Le nom est unique.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Brand:     in.Brand,
		Category:  in.Category,
		Family:    in.Family,
		UnitPrice: in.UnitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

// Update modifie un produit existant (champs non vides uniquement).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Brand != "" {
		product.Brand = in.Brand
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Family != "" {
		product.Family = in.Family
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toResponse(product), nil
}

// List retourne les produits filtrés par taxonomie.
func (uc *UseCase) List(ctx context.Context, in dto.ListProductsRequest) ([]*dto.ProductResponse, error) {
	in.DefaultPage()
	products, err := uc.productRepo.List(repository.ProductFilter{
		Brand:    in.Brand,
		Category: in.Category,
		Family:   in.Family,
		Search:   in.Search,
	}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	return out, nil
}

// GetByID retourne un produit.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(product), nil
}

// GetUnitPrice résout le prix unitaire d'un produit. Un produit absent du
// catalogue n'est pas une erreur: prix zéro, Found à false et un
// avertissement en journal: l'appelant affiche le message à l'utilisateur.
func (uc *UseCase) GetUnitPrice(ctx context.Context, productID string) (*dto.UnitPriceResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		uc.log.Warn().Str("product_id", productID).Msg("prix demandé pour un produit hors catalogue")
		return &dto.UnitPriceResponse{ProductID: productID, UnitPrice: decimal.Zero, Found: false}, nil
	}
	return &dto.UnitPriceResponse{ProductID: productID, UnitPrice: product.UnitPrice, Found: true}, nil
}

func toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Family:    p.Family,
		UnitPrice: p.UnitPrice,
	}
}
