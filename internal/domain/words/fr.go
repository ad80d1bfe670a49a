// Package words convertit un montant en toutes lettres pour la mention
// légale du pied de facture («Arrêtée la présente facture à la somme de…»).
// Orthographe traditionnelle: «soixante et onze», «quatre-vingts»,
// «deux cents» mais «deux cent mille».
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var petits = []string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
	"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

var dizaines = map[int64]string{
	2: "vingt", 3: "trente", 4: "quarante", 5: "cinquante", 6: "soixante",
}

// final indique si le nombre termine le mot composé: le «s» de
// «quatre-vingts» et «cents» tombe quand un autre mot suit.
func below100(n int64, final bool) string {
	switch {
	case n < 17:
		return petits[n]
	case n < 20:
		return "dix-" + petits[n-10]
	case n < 70:
		t, r := n/10, n%10
		switch r {
		case 0:
			return dizaines[t]
		case 1:
			return dizaines[t] + " et un"
		default:
			return dizaines[t] + "-" + petits[r]
		}
	case n == 71:
		return "soixante et onze"
	case n < 80:
		return "soixante-" + below100(n-60, final)
	case n == 80:
		if final {
			return "quatre-vingts"
		}
		return "quatre-vingt"
	default:
		return "quatre-vingt-" + below100(n-80, final)
	}
}

func below1000(n int64, final bool) string {
	h, r := n/100, n%100
	if h == 0 {
		return below100(r, final)
	}
	var cent string
	switch {
	case h == 1:
		cent = "cent"
	case r == 0 && final:
		cent = petits[h] + " cents"
	default:
		cent = petits[h] + " cent"
	}
	if r == 0 {
		return cent
	}
	return cent + " " + below100(r, final)
}

// Lettres écrit un entier positif en toutes lettres (jusqu'aux milliards).
func Lettres(n int64) string {
	if n == 0 {
		return "zéro"
	}
	var parts []string
	appendGroup := func(count int64, singular, plural string) {
		if count == 0 {
			return
		}
		if count == 1 {
			parts = append(parts, "un "+singular)
			return
		}
		parts = append(parts, below1000(count, false)+" "+plural)
	}

	appendGroup(n/1_000_000_000, "milliard", "milliards")
	n %= 1_000_000_000
	appendGroup(n/1_000_000, "million", "millions")
	n %= 1_000_000

	if milliers := n / 1000; milliers > 0 {
		// «mille» est invariable et ne prend pas «un» devant
		if milliers == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, below1000(milliers, false)+" mille")
		}
	}
	if reste := n % 1000; reste > 0 {
		parts = append(parts, below1000(reste, true))
	}
	return strings.Join(parts, " ")
}

// Montant écrit un montant TTC en dinars algériens, centimes inclus s'il y en
// a: «trois mille cinq cent soixante-dix dinars algériens et cinquante
// centimes».
func Montant(d decimal.Decimal) string {
	d = d.Round(2).Abs()
	dinars := d.IntPart()
	centimes := d.Sub(decimal.NewFromInt(dinars)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	s := Lettres(dinars)
	if dinars > 1 {
		s += " dinars algériens"
	} else {
		s += " dinar algérien"
	}
	if centimes > 0 {
		s += " et " + Lettres(centimes)
		if centimes > 1 {
			s += " centimes"
		} else {
			s += " centime"
		}
	}
	return s
}
