package words_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/redshowroom/pos-api/internal/domain/words"
)

func TestLettres(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{16, "seize"},
		{17, "dix-sept"},
		{21, "vingt et un"},
		{45, "quarante-cinq"},
		{70, "soixante-dix"},
		{71, "soixante et onze"},
		{77, "soixante-dix-sept"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{91, "quatre-vingt-onze"},
		{100, "cent"},
		{101, "cent un"},
		{200, "deux cents"},
		{245, "deux cent quarante-cinq"},
		{1000, "mille"},
		{1001, "mille un"},
		{2025, "deux mille vingt-cinq"},
		{3570, "trois mille cinq cent soixante-dix"},
		{80_000, "quatre-vingt mille"},
		{200_000, "deux cent mille"},
		{1_000_000, "un million"},
		{2_500_000, "deux millions cinq cent mille"},
		{1_000_000_000, "un milliard"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, words.Lettres(tc.n), "n=%d", tc.n)
	}
}

func TestMontant(t *testing.T) {
	assert.Equal(t,
		"trois mille cinq cent soixante-dix dinars algériens",
		words.Montant(decimal.NewFromFloat(3570.00)))

	assert.Equal(t,
		"mille cinq cent soixante-dix dinars algériens",
		words.Montant(decimal.NewFromFloat(1570)))

	assert.Equal(t,
		"un dinar algérien et cinquante centimes",
		words.Montant(decimal.NewFromFloat(1.50)))

	assert.Equal(t,
		"douze dinars algériens et un centime",
		words.Montant(decimal.NewFromFloat(12.01)))

	assert.Equal(t,
		"zéro dinar algérien",
		words.Montant(decimal.Zero))
}
