package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshowroom/pos-api/internal/domain/fiscal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Paliers du timbre fiscal: les bornes hautes sont incluses dans le palier
// inférieur: 30 000,00 est encore à 1%, 30 000,01 bascule à 1,5%, etc.
// ──────────────────────────────────────────────────────────────────────────────

func TestStampRate_Paliers(t *testing.T) {
	cases := []struct {
		name string
		base string
		rate string
	}{
		{"sous le premier palier", "15000.00", "0.01"},
		{"borne 30000 incluse à 1%", "30000.00", "0.01"},
		{"juste au-dessus de 30000", "30000.01", "0.015"},
		{"milieu du deuxième palier", "65000.00", "0.015"},
		{"borne 100000 incluse à 1.5%", "100000.00", "0.015"},
		{"juste au-dessus de 100000", "100000.01", "0.02"},
		{"grand montant", "2500000.00", "0.02"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fiscal.StampRate(d(tc.base))
			assert.True(t, d(tc.rate).Equal(got),
				"taux attendu %s pour assiette %s, obtenu %s", tc.rate, tc.base, got)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mode TVA seule: TTC = HT × 1,19 arrondi à 2 décimales, timbre nul.
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_TVASeule(t *testing.T) {
	p := fiscal.Policy{Mode: fiscal.ModeTVAOnly, Rounding: fiscal.RoundTotal}

	a := p.Compute(d("3000"))
	assert.True(t, d("3000.00").Equal(a.HT), "HT: %s", a.HT)
	assert.True(t, d("570.00").Equal(a.TVA), "TVA: %s", a.TVA)
	assert.True(t, a.Timbre.IsZero(), "pas de timbre en mode TVA seule")
	assert.True(t, d("3570.00").Equal(a.TTC), "TTC: %s", a.TTC)
}

// Scénario de bout en bout du cahier des charges: prix unitaire 1000,
// quantité 3, TVA seule → HT 3000,00 / TVA 570,00 / TTC 3570,00.
func TestCompute_TVASeule_ScenarioReference(t *testing.T) {
	p := fiscal.Policy{Mode: fiscal.ModeTVAOnly}

	unitPrice := d("1000")
	qty := decimal.NewFromInt(3)
	a := p.Compute(unitPrice.Mul(qty))

	assert.Equal(t, "3000.00", a.HT.StringFixed(2))
	assert.Equal(t, "570.00", a.TVA.StringFixed(2))
	assert.Equal(t, "3570.00", a.TTC.StringFixed(2))
}

// Un montant non rond ne doit être arrondi qu'une fois, sur le total final.
func TestCompute_TVASeule_ArrondiUnique(t *testing.T) {
	p := fiscal.Policy{Mode: fiscal.ModeTVAOnly}

	// 33,33 × 1,19 = 39,6627 → 39,66 une fois arrondi
	a := p.Compute(d("33.33"))
	assert.Equal(t, "6.33", a.TVA.StringFixed(2))
	assert.Equal(t, "39.66", a.TTC.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mode TVA + timbre: assiette configurable (HT seul ou HT+TVA).
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_TimbreSurHT(t *testing.T) {
	p := fiscal.Policy{Mode: fiscal.ModeTVATimbre, StampBase: fiscal.StampBaseHT}

	// HT 10 000 → TVA 1 900, assiette timbre = 10 000 (1%) → timbre 100
	a := p.Compute(d("10000"))
	assert.Equal(t, "1900.00", a.TVA.StringFixed(2))
	assert.Equal(t, "100.00", a.Timbre.StringFixed(2))
	assert.Equal(t, "12000.00", a.TTC.StringFixed(2))
}

func TestCompute_TimbreSurHTTVA(t *testing.T) {
	p := fiscal.Policy{Mode: fiscal.ModeTVATimbre, StampBase: fiscal.StampBaseHTTVA}

	// HT 30 000 → TVA 5 700, assiette timbre = 35 700 (> 30 000 → 1,5%)
	// timbre = 535,50; TTC = 36 235,50
	a := p.Compute(d("30000"))
	assert.Equal(t, "5700.00", a.TVA.StringFixed(2))
	assert.Equal(t, "535.50", a.Timbre.StringFixed(2))
	assert.Equal(t, "36235.50", a.TTC.StringFixed(2))
}

// La même assiette HT bascule de palier selon la base choisie: sur HT seul
// 30 000 reste à 1%, sur HT+TVA l'assiette 35 700 passe à 1,5%.
func TestCompute_AssietteChangeLePalier(t *testing.T) {
	ht := d("30000")

	surHT := fiscal.Policy{Mode: fiscal.ModeTVATimbre, StampBase: fiscal.StampBaseHT}.Compute(ht)
	surTTC := fiscal.Policy{Mode: fiscal.ModeTVATimbre, StampBase: fiscal.StampBaseHTTVA}.Compute(ht)

	assert.Equal(t, "300.00", surHT.Timbre.StringFixed(2), "1%% de 30 000")
	assert.Equal(t, "535.50", surTTC.Timbre.StringFixed(2), "1,5%% de 35 700")
}

// ──────────────────────────────────────────────────────────────────────────────
// Politique d'arrondi: ligne par ligne contre total global.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLines_ArrondiTotalContreLigne(t *testing.T) {
	lines := []decimal.Decimal{d("10.004"), d("10.004"), d("10.004")}

	porTotal := fiscal.Policy{Mode: fiscal.ModeTVAOnly, Rounding: fiscal.RoundTotal}.ComputeLines(lines)
	porLigne := fiscal.Policy{Mode: fiscal.ModeTVAOnly, Rounding: fiscal.RoundLine}.ComputeLines(lines)

	// En arrondi total: somme exacte 30,012 → HT arrondi 30,01
	assert.Equal(t, "30.01", porTotal.HT.StringFixed(2))
	// En arrondi ligne: 10,00 × 3 = 30,00
	assert.Equal(t, "30.00", porLigne.HT.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validation et libellé de la politique.
// ──────────────────────────────────────────────────────────────────────────────

func TestPolicy_Validate(t *testing.T) {
	require.NoError(t, fiscal.Default().Validate())
	require.NoError(t, fiscal.Policy{Mode: fiscal.ModeTVAOnly}.Validate())

	assert.Error(t, fiscal.Policy{Mode: "forfait"}.Validate())
	assert.Error(t, fiscal.Policy{Mode: fiscal.ModeTVATimbre, StampBase: "ttc"}.Validate())
	assert.Error(t, fiscal.Policy{Mode: fiscal.ModeTVAOnly, Rounding: "bancaire"}.Validate())
}

func TestPolicy_Label(t *testing.T) {
	assert.Equal(t, "tva-only", fiscal.Policy{Mode: fiscal.ModeTVAOnly}.Label())
	assert.Equal(t, "tva-timbre/ht+tva", fiscal.Default().Label())
	assert.Equal(t, "tva-timbre/ht",
		fiscal.Policy{Mode: fiscal.ModeTVATimbre, StampBase: fiscal.StampBaseHT}.Label())
}
