package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
)

func testCustomer() entity.Customer {
	return entity.Customer{Name: "Karim B.", Phone: "0550 12 34 56"}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddLine: préconditions et calcul HT exact.
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_AddLine_CalculeHTExact(t *testing.T) {
	cart := entity.NewCart(testCustomer())

	line, err := cart.AddLine("tv-55", "TV LED 55\"", 3, decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.Equal(t, "3000", line.TotalHT().String(), "HT = prix × quantité, exact")
	assert.Equal(t, "3000", cart.TotalHT().String())
	assert.False(t, cart.IsEmpty())
}

// Un prix non rond ne subit aucun arrondi intermédiaire au niveau ligne.
func TestCart_AddLine_PasDArrondiIntermediaire(t *testing.T) {
	cart := entity.NewCart(testCustomer())

	price, _ := decimal.NewFromString("33.335")
	line, err := cart.AddLine("cable", "Câble HDMI", 3, price)
	require.NoError(t, err)

	assert.Equal(t, "100.005", line.TotalHT().String())
}

func TestCart_AddLine_Preconditions(t *testing.T) {
	price := decimal.NewFromInt(500)

	t.Run("client sans téléphone", func(t *testing.T) {
		cart := entity.NewCart(entity.Customer{Name: "Karim B."})
		_, err := cart.AddLine("tv-55", "TV", 1, price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("client sans nom", func(t *testing.T) {
		cart := entity.NewCart(entity.Customer{Phone: "0550 12 34 56"})
		_, err := cart.AddLine("tv-55", "TV", 1, price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("quantité nulle", func(t *testing.T) {
		cart := entity.NewCart(testCustomer())
		_, err := cart.AddLine("tv-55", "TV", 0, price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("quantité négative", func(t *testing.T) {
		cart := entity.NewCart(testCustomer())
		_, err := cart.AddLine("tv-55", "TV", -2, price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("produit vide", func(t *testing.T) {
		cart := entity.NewCart(testCustomer())
		_, err := cart.AddLine("", "", 1, price)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("prix négatif", func(t *testing.T) {
		cart := entity.NewCart(testCustomer())
		_, err := cart.AddLine("tv-55", "TV", 1, decimal.NewFromInt(-10))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCart_UpdateRemoveClear(t *testing.T) {
	cart := entity.NewCart(testCustomer())
	_, err := cart.AddLine("tv-55", "TV", 2, decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = cart.AddLine("frigo", "Réfrigérateur", 1, decimal.NewFromInt(80000))
	require.NoError(t, err)

	require.NoError(t, cart.UpdateQuantity("tv-55", 5))
	assert.Equal(t, "85000", cart.TotalHT().String())

	assert.ErrorIs(t, cart.UpdateQuantity("tv-55", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.UpdateQuantity("inconnu", 2), domain.ErrNotFound)

	cart.RemoveLine("frigo")
	assert.Len(t, cart.Lines, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.TotalHT().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordPayment: le reste à payer se recalcule toujours depuis le cumul.
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_RecordPayment_Cumul(t *testing.T) {
	sale := &entity.Sale{TotalTTC: decimal.NewFromFloat(3570.00)}

	require.NoError(t, sale.RecordPayment(decimal.NewFromInt(2000)))
	assert.Equal(t, "1570.00", sale.ResteAPayer().StringFixed(2))
	assert.False(t, sale.FullyPaid())

	require.NoError(t, sale.RecordPayment(decimal.NewFromInt(1570)))
	assert.True(t, sale.ResteAPayer().IsZero())
	assert.True(t, sale.FullyPaid())
}

// Re-verser le même montant n'est pas idempotent sur le cumul: le deuxième
// versement identique est rejeté dès qu'il ferait dépasser le TTC.
func TestSale_RecordPayment_DepassementRejete(t *testing.T) {
	sale := &entity.Sale{TotalTTC: decimal.NewFromInt(3000)}

	require.NoError(t, sale.RecordPayment(decimal.NewFromInt(2000)))
	err := sale.RecordPayment(decimal.NewFromInt(2000))
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsTotal)
	assert.Equal(t, "1000", sale.ResteAPayer().String(), "le cumul reste inchangé après rejet")
}

func TestSale_RecordPayment_MontantNegatifRejete(t *testing.T) {
	sale := &entity.Sale{TotalTTC: decimal.NewFromInt(3000)}
	assert.ErrorIs(t, sale.RecordPayment(decimal.NewFromInt(-50)), domain.ErrInvalidInput)
}

// Un versement de zéro est toléré (aucun effet): le client peut valider une
// vente entièrement à crédit.
func TestSale_RecordPayment_Zero(t *testing.T) {
	sale := &entity.Sale{TotalTTC: decimal.NewFromInt(3000)}
	require.NoError(t, sale.RecordPayment(decimal.Zero))
	assert.Equal(t, "3000", sale.ResteAPayer().String())
}
