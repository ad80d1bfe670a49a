package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/domain"
)

// Sale représente une vente validée (immuable après persistance, à la seule
// exception du suivi des versements). Le numéro de facture est optionnel:
// il n'est attribué que si le client demande une facture.
//
// Cycle de vie: panier vide → lignes ajoutées → stock validé → validée
// (persistée, numéro attribué) → [partiellement payée → soldée].
// Aucune transition retour après validation.
type Sale struct {
	ID            string
	Customer      Customer
	Date          time.Time
	NumeroFacture string // "NNN/YYYY", vide si aucune facture demandée

	TotalHT      decimal.Decimal
	TotalTVA     decimal.Decimal
	Timbre       decimal.Decimal
	TotalTTC     decimal.Decimal
	MontantVerse decimal.Decimal // cumul des versements

	PolicyLabel string // politique fiscale appliquée, pour traçabilité

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string // UserID du vendeur
}

// SaleLine est une ligne de vente figée: le prix unitaire est celui capturé
// à l'ajout au panier, pas le prix catalogue courant.
type SaleLine struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalHT     decimal.Decimal // UnitPrice × Quantity, exact
}

// ResteAPayer recalcule le solde depuis le cumul versé, jamais depuis le
// dernier versement: c'est ce qui rend RecordPayment idempotent par montant.
func (s *Sale) ResteAPayer() decimal.Decimal {
	return s.TotalTTC.Sub(s.MontantVerse)
}

// FullyPaid indique si la vente est soldée.
func (s *Sale) FullyPaid() bool {
	return s.MontantVerse.GreaterThanOrEqual(s.TotalTTC)
}

// RecordPayment ajoute un versement au cumul. Le montant ne peut pas être
// négatif (zéro est toléré, sans effet) et le cumul ne doit jamais dépasser
// le TTC.
func (s *Sale) RecordPayment(amount decimal.Decimal) error {
	if amount.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if s.MontantVerse.Add(amount).GreaterThan(s.TotalTTC) {
		return domain.ErrPaymentExceedsTotal
	}
	s.MontantVerse = s.MontantVerse.Add(amount)
	return nil
}
