package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redshowroom/pos-api/internal/application/sales"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
)

func seedSale(store *memStore, id string, ttc, verse int64) {
	store.sales = append(store.sales, &entity.Sale{
		ID:           id,
		Customer:     entity.Customer{Name: "Benali Karim", Phone: "0550123456"},
		Date:         time.Now(),
		TotalTTC:     decimal.NewFromInt(ttc),
		MontantVerse: decimal.NewFromInt(verse),
	})
}

func newPaymentUseCase(store *memStore) *sales.PaymentUseCase {
	return sales.NewPaymentUseCase(&memTxRunner{s: store}, &memSaleRepo{s: store}, &memPaymentRepo{s: store})
}

func TestRecordPayment_Cumulative(t *testing.T) {
	// Vente à 3570 DA, acompte initial de 2000 déjà enregistré.
	store := newMemStore()
	seedSale(store, "sale-1", 3570, 2000)
	uc := newPaymentUseCase(store)
	ctx := context.Background()

	resp, err := uc.RecordPayment(ctx, "sale-1", "user-1", decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, "3000", resp.MontantVerse.String())
	assert.Equal(t, "570", resp.ResteAPayer.String())

	// Solde exact: reste à zéro.
	resp, err = uc.RecordPayment(ctx, "sale-1", "user-1", decimal.NewFromInt(570))
	require.NoError(t, err)
	assert.True(t, resp.ResteAPayer.IsZero())
	assert.Len(t, store.payments, 2)
}

func TestRecordPayment_RejectsOverflow(t *testing.T) {
	store := newMemStore()
	seedSale(store, "sale-1", 3570, 2000)
	uc := newPaymentUseCase(store)

	_, err := uc.RecordPayment(context.Background(), "sale-1", "user-1", decimal.NewFromInt(2000))
	require.ErrorIs(t, err, domain.ErrPaymentExceedsTotal)

	// Le cumul et l'historique restent intacts.
	assert.Equal(t, "2000", store.sales[0].MontantVerse.String())
	assert.Empty(t, store.payments)
}

// Un versement de zéro est toléré: aucun effet sur le cumul et aucune ligne
// de versement écrite.
func TestRecordPayment_ZeroIsNoOp(t *testing.T) {
	store := newMemStore()
	seedSale(store, "sale-1", 3570, 2000)
	uc := newPaymentUseCase(store)

	resp, err := uc.RecordPayment(context.Background(), "sale-1", "user-1", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "2000", resp.MontantVerse.String())
	assert.Equal(t, "1570", resp.ResteAPayer.String())
	assert.Empty(t, store.payments)
}

func TestRecordPayment_RejectsNegative(t *testing.T) {
	store := newMemStore()
	seedSale(store, "sale-1", 3570, 0)
	uc := newPaymentUseCase(store)

	_, err := uc.RecordPayment(context.Background(), "sale-1", "user-1", decimal.NewFromInt(-50))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordPayment_SaleNotFound(t *testing.T) {
	store := newMemStore()
	uc := newPaymentUseCase(store)

	_, err := uc.RecordPayment(context.Background(), "absente", "user-1", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOutstanding_OnlyUnpaidSales(t *testing.T) {
	store := newMemStore()
	seedSale(store, "payee", 3570, 3570)
	seedSale(store, "partielle", 3570, 2000)
	seedSale(store, "credit", 1190, 0)
	uc := newPaymentUseCase(store)

	out, err := uc.ListOutstanding(context.Background(), pageRequest())
	require.NoError(t, err)
	require.Len(t, out, 2)
	ids := []string{out[0].ID, out[1].ID}
	assert.Contains(t, ids, "partielle")
	assert.Contains(t, ids, "credit")
}

func TestListPayments(t *testing.T) {
	store := newMemStore()
	seedSale(store, "sale-1", 3570, 0)
	uc := newPaymentUseCase(store)
	ctx := context.Background()

	_, err := uc.RecordPayment(ctx, "sale-1", "user-1", decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = uc.RecordPayment(ctx, "sale-1", "user-1", decimal.NewFromInt(500))
	require.NoError(t, err)

	payments, err := uc.ListPayments(ctx, "sale-1")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "1000", payments[0].Amount.String())
	assert.Equal(t, "500", payments[1].Amount.String())

	_, err = uc.ListPayments(ctx, "absente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
