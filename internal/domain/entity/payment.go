package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment est un versement (initial ou complément) rattaché à une vente.
// Le cumul des versements d'une vente est répliqué dans Sale.MontantVerse
// et mis à jour dans la même transaction que l'insertion du versement.
type Payment struct {
	ID        string
	SaleID    string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedBy string // UserID
}
