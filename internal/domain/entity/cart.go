package entity

import (
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/domain"
)

// CartLine est une ligne du panier en cours. Le prix unitaire est figé à
// l'ajout; TotalHT = UnitPrice × Quantity sans aucun arrondi intermédiaire.
type CartLine struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// TotalHT retourne le montant hors taxes exact de la ligne.
func (l *CartLine) TotalHT() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart est le panier mutable d'une vente non encore validée. Un seul vendeur
// écrit dedans; sa durée de vie est celle de la vente en cours et il est vidé
// après validation. Jamais partagé entre deux ventes.
type Cart struct {
	Customer Customer
	Lines    []*CartLine
}

// NewCart crée un panier pour le client donné.
func NewCart(customer Customer) *Cart {
	return &Cart{Customer: customer}
}

// AddLine ajoute une ligne au panier. Préconditions: quantité ≥ 1, produit
// renseigné, et nom + téléphone client déjà saisis pour la vente en cours.
func (c *Cart) AddLine(productID, productName string, quantity int64, unitPrice decimal.Decimal) (*CartLine, error) {
	if !c.Customer.RequiredFieldsPresent() {
		return nil, domain.ErrInvalidInput
	}
	if productID == "" || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	line := &CartLine{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// UpdateQuantity modifie en place la quantité d'une ligne existante.
func (c *Cart) UpdateQuantity(productID string, quantity int64) error {
	if quantity < 1 {
		return domain.ErrInvalidInput
	}
	for _, l := range c.Lines {
		if l.ProductID == productID {
			l.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveLine retire une ligne du panier.
func (c *Cart) RemoveLine(productID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

// Clear vide le panier (après validation de la vente).
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty indique si le panier ne contient aucune ligne.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalHT retourne la somme exacte des HT de toutes les lignes.
func (c *Cart) TotalHT() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.TotalHT())
	}
	return total
}
