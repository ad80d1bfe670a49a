package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product représente un article du catalogue du showroom.
// La taxonomie (marque/catégorie/famille) ne sert qu'au filtrage des listes,
// jamais au calcul. Le prix unitaire est le prix de vente courant; chaque ligne
// de vente fige son propre prix au moment de l'ajout au panier.
type Product struct {
	ID        string
	Name      string
	Brand     string
	Category  string
	Family    string
	UnitPrice decimal.Decimal // prix de vente HT en dinars
	CreatedAt time.Time
	UpdatedAt time.Time
}
