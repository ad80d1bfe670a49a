package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/domain/entity"
)

// SaleFilter restreint l'historique des ventes.
type SaleFilter struct {
	From     *time.Time
	To       *time.Time
	Customer string // sous-chaîne sur le nom client
}

// SaleRepository définit le port de persistance des ventes et de leurs lignes.
// Une vente persistée n'est plus jamais modifiée, à l'exception du cumul des
// versements (UpdatePayment).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate verrouille la ligne (SELECT FOR UPDATE) pour
	// sérialiser les versements concurrents sur la même vente.
	GetByIDForUpdate(id string) (*entity.Sale, error)
	GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error)
	List(filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
	// ListOutstanding retourne les ventes avec un reste à payer positif.
	ListOutstanding(limit, offset int) ([]*entity.Sale, error)
	UpdatePayment(saleID string, montantVerse decimal.Decimal, updatedAt time.Time) error
	// ListInvoiceNumbers retourne les numéros de facture non vides de
	// l'année (pour la dérivation par balayage).
	ListInvoiceNumbers(year int) ([]string, error)
	// SumQuantityByProduct retourne le total des quantités déjà vendues d'un
	// produit (côté sorties de la dérivation du stock).
	SumQuantityByProduct(productID string) (int64, error)
}
