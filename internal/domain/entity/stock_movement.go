package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement représente une entrée d'achat dans le registre de stock
// (append-only). Le stock disponible n'est jamais stocké comme compteur:
// il se re-dérive à chaque lecture comme
// somme(entrées) − somme(quantités vendues).
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal // coût d'achat unitaire
	Date      time.Time
	CreatedAt time.Time
	CreatedBy string // UserID
}
