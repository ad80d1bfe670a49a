// Package inventory porte les services de domaine du registre de stock.
package inventory

import (
	"github.com/shopspring/decimal"
)

// Available dérive le stock disponible d'un produit depuis les deux côtés du
// registre: somme des quantités entrées moins somme des quantités déjà
// vendues. Invariant recalculé à chaque lecture, jamais stocké comme
// compteur; toute vérification de suffisance doit passer par cette
// dérivation.
func Available(entered, sold int64) int64 {
	return entered - sold
}

// Sufficient indique si la quantité demandée tient dans le disponible,
// borne incluse: demander exactement le disponible passe.
func Sufficient(requested, available int64) bool {
	return requested <= available
}

// CoutMoyenPondere calcule le coût d'achat moyen pondéré après une entrée:
// ((StockActuel × CoutActuel) + (Entrée × CoutEntrée)) / (StockActuel + Entrée).
func CoutMoyenPondere(stockActuel, coutActuel, entree, coutEntree decimal.Decimal) decimal.Decimal {
	sum := stockActuel.Add(entree)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActuel.Mul(coutActuel).Add(entree.Mul(coutEntree))
	return num.Div(sum)
}
