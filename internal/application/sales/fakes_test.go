package sales_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

func pageRequest() dto.PageRequest {
	return dto.PageRequest{Limit: 50, Offset: 0}
}

// memStore simule le dépôt de persistance en mémoire. Le TxRunner associé
// restaure un instantané en cas d'erreur, ce qui reproduit le rollback.
type memStore struct {
	products  map[string]*entity.Product
	sales     []*entity.Sale
	lines     []*entity.SaleLine
	payments  []*entity.Payment
	movements []*entity.StockMovement
	counters  map[int]int
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		counters: make(map[int]int),
	}
}

func (s *memStore) addProduct(id, name string, price int64) {
	s.products[id] = &entity.Product{ID: id, Name: name, UnitPrice: decimal.NewFromInt(price)}
}

func (s *memStore) addStock(productID string, qty int64) {
	s.movements = append(s.movements, &entity.StockMovement{ProductID: productID, Quantity: qty})
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales = append(r.s.sales, sale)
	return nil
}

func (r *memSaleRepo) CreateLine(line *entity.SaleLine) error {
	r.s.lines = append(r.s.lines, line)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.ID == id {
			return sale, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *memSaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range r.s.lines {
		if l.SaleID == saleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memSaleRepo) List(_ repository.SaleFilter, _, _ int) ([]*entity.Sale, error) {
	return r.s.sales, nil
}

func (r *memSaleRepo) ListOutstanding(_, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.ResteAPayer().GreaterThan(decimal.Zero) {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (r *memSaleRepo) UpdatePayment(saleID string, montantVerse decimal.Decimal, updatedAt time.Time) error {
	for _, sale := range r.s.sales {
		if sale.ID == saleID {
			sale.MontantVerse = montantVerse
			sale.UpdatedAt = updatedAt
		}
	}
	return nil
}

func (r *memSaleRepo) ListInvoiceNumbers(year int) ([]string, error) {
	var out []string
	for _, sale := range r.s.sales {
		if sale.NumeroFacture != "" && strings.HasSuffix(sale.NumeroFacture, "/"+itoa(year)) {
			out = append(out, sale.NumeroFacture)
		}
	}
	return out, nil
}

func (r *memSaleRepo) SumQuantityByProduct(productID string) (int64, error) {
	var sum int64
	for _, l := range r.s.lines {
		if l.ProductID == productID {
			sum += l.Quantity
		}
	}
	return sum, nil
}

func itoa(n int) string {
	return time.Date(n, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *memStockRepo) ListByProduct(productID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memStockRepo) SumQuantityByProduct(productID string) (int64, error) {
	var sum int64
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			sum += m.Quantity
		}
	}
	return sum, nil
}

// ── PaymentRepository ─────────────────────────────────────────────────────────

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(p *entity.Payment) error {
	r.s.payments = append(r.s.payments, p)
	return nil
}

func (r *memPaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.s.payments {
		if p.SaleID == saleID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ── CounterRepository ─────────────────────────────────────────────────────────

type memCounterRepo struct{ s *memStore }

func (r *memCounterRepo) NextInvoiceNumber(year int) (int, error) {
	r.s.counters[year]++
	return r.s.counters[year], nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *memProductRepo) List(_ repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (tr *memTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockMovementRepository,
	paymentRepo repository.PaymentRepository,
	counterRepo repository.CounterRepository,
) error) error {
	// Instantané avant la transaction; restauré sur erreur (rollback).
	sales, lines := len(tr.s.sales), len(tr.s.lines)
	payments, movements := len(tr.s.payments), len(tr.s.movements)
	counters := make(map[int]int, len(tr.s.counters))
	for k, v := range tr.s.counters {
		counters[k] = v
	}

	err := fn(&memSaleRepo{tr.s}, &memStockRepo{tr.s}, &memPaymentRepo{tr.s}, &memCounterRepo{tr.s})
	if err != nil {
		tr.s.sales = tr.s.sales[:sales]
		tr.s.lines = tr.s.lines[:lines]
		tr.s.payments = tr.s.payments[:payments]
		tr.s.movements = tr.s.movements[:movements]
		tr.s.counters = counters
		return err
	}
	return nil
}
