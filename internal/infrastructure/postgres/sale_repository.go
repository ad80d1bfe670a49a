package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implémentation du port SaleRepository sur PostgreSQL (utilisable
// avec pool ou tx). L'instantané client est dénormalisé dans la table sales.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construit l'adaptateur des ventes. Passer pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	id, customer_name, customer_phone, customer_email, customer_rc, customer_nif,
	customer_art, customer_address, date, numero_facture,
	total_ht, total_tva, timbre, total_ttc, montant_verse, policy_label,
	created_at, updated_at, created_by`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var email, rc, nif, art, address, numero, createdBy *string
	err := row.Scan(
		&s.ID, &s.Customer.Name, &s.Customer.Phone, &email, &rc, &nif,
		&art, &address, &s.Date, &numero,
		&s.TotalHT, &s.TotalTVA, &s.Timbre, &s.TotalTTC, &s.MontantVerse, &s.PolicyLabel,
		&s.CreatedAt, &s.UpdatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	s.Customer.Email = orEmpty(email)
	s.Customer.RC = orEmpty(rc)
	s.Customer.NIF = orEmpty(nif)
	s.Customer.ART = orEmpty(art)
	s.Customer.Address = orEmpty(address)
	s.NumeroFacture = orEmpty(numero)
	s.CreatedBy = orEmpty(createdBy)
	return &s, nil
}

// Create persiste l'entête de la vente.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_name, customer_phone, customer_email, customer_rc,
			customer_nif, customer_art, customer_address, date, numero_facture,
			total_ht, total_tva, timbre, total_ttc, montant_verse, policy_label,
			created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Customer.Name, sale.Customer.Phone,
		nullIfEmpty(sale.Customer.Email), nullIfEmpty(sale.Customer.RC),
		nullIfEmpty(sale.Customer.NIF), nullIfEmpty(sale.Customer.ART),
		nullIfEmpty(sale.Customer.Address), sale.Date, nullIfEmpty(sale.NumeroFacture),
		sale.TotalHT, sale.TotalTVA, sale.Timbre, sale.TotalTTC, sale.MontantVerse,
		sale.PolicyLabel, sale.CreatedAt, sale.UpdatedAt, nullIfEmpty(sale.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			// index unique partiel sur numero_facture
			return domain.ErrConflict
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste une ligne de vente.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (id, sale_id, product_id, product_name, quantity, unit_price, total_ht)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ProductID, line.ProductName,
		line.Quantity, line.UnitPrice, line.TotalHT,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID retourne une vente par ID, nil si absente.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetByIDForUpdate verrouille la ligne le temps de la transaction pour
// sérialiser deux encaissements simultanés sur la même vente.
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale for update: %w", err)
	}
	return s, nil
}

// GetLinesBySaleID retourne les lignes d'une vente.
func (r *SaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, total_ht
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.TotalHT); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List retourne l'historique filtré par période et client, du plus récent au
// plus ancien.
func (r *SaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		  AND ($3 = '' OR customer_name ILIKE '%' || $3 || '%')
		ORDER BY date DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.From, filter.To, filter.Customer, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListOutstanding retourne les ventes dont le cumul versé est inférieur au TTC.
func (r *SaleRepo) ListOutstanding(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE montant_verse < total_ttc
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outstanding sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdatePayment remplace le cumul versé. Seule mutation autorisée après
// validation.
func (r *SaleRepo) UpdatePayment(saleID string, montantVerse decimal.Decimal, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET montant_verse = $2, updated_at = $3 WHERE id = $1`,
		saleID, montantVerse, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListInvoiceNumbers retourne les numéros de facture non vides de l'année.
func (r *SaleRepo) ListInvoiceNumbers(year int) ([]string, error) {
	query := `
		SELECT numero_facture FROM sales
		WHERE numero_facture IS NOT NULL AND numero_facture LIKE '%/' || $1::text`
	rows, err := r.q.Query(context.Background(), query, year)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// SumQuantityByProduct retourne le total vendu d'un produit, toutes ventes
// confondues (côté sorties de la dérivation du stock).
func (r *SaleRepo) SumQuantityByProduct(productID string) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM sale_lines WHERE product_id = $1`,
		productID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum sold quantity: %w", err)
	}
	return sum, nil
}
