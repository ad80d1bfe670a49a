package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/redshowroom/pos-api/internal/domain/inventory"
)

func TestAvailable_DeriveEntreesMoinsVentes(t *testing.T) {
	assert.Equal(t, int64(11), inventory.Available(15, 4))
	assert.Equal(t, int64(2), inventory.Available(3, 1))
	assert.Equal(t, int64(0), inventory.Available(0, 0))
	// Un registre incohérent peut rendre un disponible négatif: il n'est
	// jamais masqué, la vérification de suffisance refusera toute vente.
	assert.Equal(t, int64(-2), inventory.Available(5, 7))
}

// La borne est incluse: demander exactement le disponible passe,
// une unité de plus échoue.
func TestSufficient_BorneIncluse(t *testing.T) {
	assert.True(t, inventory.Sufficient(11, 11))
	assert.False(t, inventory.Sufficient(12, 11))
	assert.True(t, inventory.Sufficient(0, 0))
}

func TestCoutMoyenPondere(t *testing.T) {
	// 10 unités à 100 + 5 unités à 130 → (1000 + 650) / 15 = 110
	got := inventory.CoutMoyenPondere(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(5), decimal.NewFromInt(130),
	)
	assert.Equal(t, "110", got.String())

	// Stock de départ nul → le coût moyen est celui de l'entrée
	got = inventory.CoutMoyenPondere(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(4), decimal.NewFromInt(250),
	)
	assert.Equal(t, "250", got.String())

	// Aucune quantité: pas de division par zéro
	got = inventory.CoutMoyenPondere(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, got.IsZero())
}
