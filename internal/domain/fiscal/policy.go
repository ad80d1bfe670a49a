// Package fiscal implémente le calcul des totaux d'une vente: TVA 19%,
// timbre fiscal par paliers et TTC. La formule exacte (avec ou sans timbre,
// assiette du timbre, moment de l'arrondi) varie selon le déploiement, donc
// tout passe par un objet Policy configurable plutôt que par des branches
// en dur dans le moteur de vente.
package fiscal

import (
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/domain"
)

// Mode de calcul des taxes.
type Mode string

const (
	// ModeTVAOnly: TTC = HT + TVA, pas de timbre.
	ModeTVAOnly Mode = "tva-only"
	// ModeTVATimbre: TTC = HT + TVA + timbre par paliers.
	ModeTVATimbre Mode = "tva-timbre"
)

// StampBase est l'assiette du timbre fiscal.
type StampBase string

const (
	StampBaseHT    StampBase = "ht"     // timbre calculé sur le HT seul
	StampBaseHTTVA StampBase = "ht+tva" // timbre calculé sur HT + TVA
)

// Rounding fixe le moment de l'arrondi à 2 décimales.
type Rounding string

const (
	// RoundTotal: les intermédiaires restent exacts, seuls les totaux finaux
	// sont arrondis. Évite le cumul d'erreurs d'arrondi.
	RoundTotal Rounding = "total"
	// RoundLine: chaque ligne est arrondie avant sommation (comportement de
	// certains déploiements historiques).
	RoundLine Rounding = "line"
)

// TauxTVA est le taux de TVA algérien, fixe à 19%.
var TauxTVA = decimal.NewFromFloat(0.19)

// Paliers du timbre fiscal, bornes hautes incluses:
// assiette ≤ 30 000 → 1% ; 30 000 < assiette ≤ 100 000 → 1,5% ; au-delà → 2%.
var (
	stampTier1Limit = decimal.NewFromInt(30_000)
	stampTier2Limit = decimal.NewFromInt(100_000)
	stampRate1      = decimal.NewFromFloat(0.01)
	stampRate2      = decimal.NewFromFloat(0.015)
	stampRate3      = decimal.NewFromFloat(0.02)
)

// StampRate retourne le taux de timbre applicable à l'assiette donnée.
func StampRate(base decimal.Decimal) decimal.Decimal {
	switch {
	case base.LessThanOrEqual(stampTier1Limit):
		return stampRate1
	case base.LessThanOrEqual(stampTier2Limit):
		return stampRate2
	default:
		return stampRate3
	}
}

// Amounts regroupe les totaux dérivés d'une vente.
type Amounts struct {
	HT     decimal.Decimal
	TVA    decimal.Decimal
	Timbre decimal.Decimal
	TTC    decimal.Decimal
}

// Policy est l'objet-valeur choisi à la création de la vente.
type Policy struct {
	Mode      Mode
	StampBase StampBase
	Rounding  Rounding
}

// Default retourne la politique du déploiement de référence:
// TVA + timbre sur HT+TVA, arrondi sur les totaux uniquement.
func Default() Policy {
	return Policy{Mode: ModeTVATimbre, StampBase: StampBaseHTTVA, Rounding: RoundTotal}
}

// Validate rejette toute combinaison inconnue.
func (p Policy) Validate() error {
	switch p.Mode {
	case ModeTVAOnly, ModeTVATimbre:
	default:
		return domain.ErrInvalidInput
	}
	switch p.StampBase {
	case StampBaseHT, StampBaseHTTVA, "":
	default:
		return domain.ErrInvalidInput
	}
	switch p.Rounding {
	case RoundTotal, RoundLine, "":
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// Label retourne l'identifiant de la politique, stocké sur la vente pour
// traçabilité.
func (p Policy) Label() string {
	if p.Mode == ModeTVAOnly {
		return string(ModeTVAOnly)
	}
	base := p.StampBase
	if base == "" {
		base = StampBaseHTTVA
	}
	return string(p.Mode) + "/" + string(base)
}

// Compute dérive TVA, timbre et TTC d'un montant HT. Les calculs
// intermédiaires restent exacts; l'arrondi à 2 décimales n'est appliqué
// qu'aux montants retournés.
func (p Policy) Compute(totalHT decimal.Decimal) Amounts {
	tva := totalHT.Mul(TauxTVA)
	timbre := decimal.Zero

	if p.Mode == ModeTVATimbre {
		base := totalHT
		if p.StampBase != StampBaseHT {
			base = totalHT.Add(tva)
		}
		timbre = base.Mul(StampRate(base))
	}

	ttc := totalHT.Add(tva).Add(timbre)
	return Amounts{
		HT:     totalHT.Round(2),
		TVA:    tva.Round(2),
		Timbre: timbre.Round(2),
		TTC:    ttc.Round(2),
	}
}

// ComputeLines calcule les totaux d'un panier multi-lignes en respectant la
// politique d'arrondi: en RoundLine chaque HT de ligne est arrondi avant
// sommation, en RoundTotal la somme reste exacte jusqu'au calcul final.
func (p Policy) ComputeLines(lineTotalsHT []decimal.Decimal) Amounts {
	sum := decimal.Zero
	for _, ht := range lineTotalsHT {
		if p.Rounding == RoundLine {
			ht = ht.Round(2)
		}
		sum = sum.Add(ht)
	}
	return p.Compute(sum)
}
