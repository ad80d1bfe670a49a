package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/inventory"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// UseCase gère le registre d'entrées de stock et la dérivation du disponible.
type UseCase struct {
	movementRepo repository.StockMovementRepository
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{movementRepo: movementRepo, saleRepo: saleRepo, productRepo: productRepo}
}

// RegisterEntry enregistre une entrée d'achat dans le registre.
func (uc *UseCase) RegisterEntry(ctx context.Context, userID string, in dto.RegisterStockEntryRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Date:      now,
		CreatedAt: now,
		CreatedBy: userID,
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// Availability dérive le stock disponible d'un produit:
// somme(entrées) − somme(quantités vendues), recalculé à la demande.
// Le coût moyen pondéré est rejoué depuis l'historique des entrées.
func (uc *UseCase) Availability(ctx context.Context, productID string) (*dto.AvailabilityResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entered, err := uc.movementRepo.SumQuantityByProduct(productID)
	if err != nil {
		return nil, err
	}
	sold, err := uc.saleRepo.SumQuantityByProduct(productID)
	if err != nil {
		return nil, err
	}

	avgCost, err := uc.averageCost(productID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailabilityResponse{
		ProductID:   productID,
		ProductName: product.Name,
		Entered:     entered,
		Sold:        sold,
		Available:   inventory.Available(entered, sold),
		AverageCost: avgCost,
	}, nil
}

// averageCost rejoue les entrées dans l'ordre pour obtenir le coût moyen
// pondéré courant.
func (uc *UseCase) averageCost(productID string) (decimal.Decimal, error) {
	const batch = 500
	qty := decimal.Zero
	cost := decimal.Zero
	for offset := 0; ; offset += batch {
		movements, err := uc.movementRepo.ListByProduct(productID, batch, offset)
		if err != nil {
			return decimal.Zero, err
		}
		for _, m := range movements {
			q := decimal.NewFromInt(m.Quantity)
			cost = inventory.CoutMoyenPondere(qty, cost, q, m.UnitCost)
			qty = qty.Add(q)
		}
		if len(movements) < batch {
			break
		}
	}
	return cost.Round(2), nil
}

// ListEntries retourne l'historique des entrées d'un produit.
func (uc *UseCase) ListEntries(ctx context.Context, productID string, page dto.PageRequest) ([]*dto.StockMovementResponse, error) {
	page.DefaultPage()
	movements, err := uc.movementRepo.ListByProduct(productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Date:      m.Date.Format("2006-01-02 15:04"),
	}
}
