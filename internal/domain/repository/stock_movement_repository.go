package repository

import "github.com/redshowroom/pos-api/internal/domain/entity"

// StockMovementRepository définit le port de persistance du registre
// d'entrées de stock (append-only).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	// SumQuantityByProduct retourne le total des quantités entrées d'un
	// produit (côté entrées de la dérivation du stock).
	SumQuantityByProduct(productID string) (int64, error)
}
