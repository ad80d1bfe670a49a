// Package facture implémente le schéma de numérotation des factures
// "NNN/YYYY": croissant dans l'année, remis à 1 chaque année.
package facture

import (
	"fmt"
	"strconv"
	"strings"
)

// Format met en forme un numéro de facture: 8 → "008/2025".
func Format(n, year int) string {
	return fmt.Sprintf("%03d/%d", n, year)
}

// Parse extrait le préfixe numérique et l'année d'un numéro "NNN/YYYY".
// ok vaut false pour toute entrée vide ou malformée.
func Parse(raw string) (n, year int, ok bool) {
	raw = strings.TrimSpace(raw)
	numPart, yearPart, found := strings.Cut(raw, "/")
	if !found {
		return 0, 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(numPart))
	if err != nil || n < 0 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(strings.TrimSpace(yearPart))
	if err != nil {
		return 0, 0, false
	}
	return n, year, true
}

// Next dérive le prochain numéro pour l'année cible en balayant les numéros
// déjà attribués: maximum des préfixes numériques de l'année + 1, ou 001 si
// aucun. Les entrées malformées sont ignorées plutôt que de faire échouer la
// dérivation (le registre historique en contient).
//
// Cette dérivation n'est pas atomique: deux ventes simultanées peuvent
// obtenir le même numéro. Le résultat est à traiter comme indicatif sauf si
// l'allocation se fait via le compteur atomique du dépôt de persistance.
func Next(existing []string, targetYear int) string {
	max := 0
	for _, raw := range existing {
		n, year, ok := Parse(raw)
		if !ok || year != targetYear {
			continue
		}
		if n > max {
			max = n
		}
	}
	return Format(max+1, targetYear)
}
