package sales

import (
	"context"
	"time"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// HistoryUseCase liste l'historique des ventes et le détail d'une vente.
type HistoryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewHistoryUseCase construit le cas d'usage.
func NewHistoryUseCase(saleRepo repository.SaleRepository) *HistoryUseCase {
	return &HistoryUseCase{saleRepo: saleRepo}
}

// parseDay interprète une date "AAAA-MM-JJ"; endOfDay pousse la borne à la
// fin de journée pour que le filtre "to" soit inclusif.
func parseDay(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// List retourne les ventes de la période, les plus récentes d'abord.
func (uc *HistoryUseCase) List(ctx context.Context, in dto.ListSalesRequest) ([]*dto.SaleResponse, error) {
	in.DefaultPage()
	from, err := parseDay(in.From, false)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(in.To, true)
	if err != nil {
		return nil, err
	}
	salesList, err := uc.saleRepo.List(repository.SaleFilter{
		From:     from,
		To:       to,
		Customer: in.Customer,
	}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(salesList))
	for _, s := range salesList {
		out = append(out, toSaleResponse(s, nil))
	}
	return out, nil
}

// Get retourne une vente avec toutes ses lignes.
func (uc *HistoryUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}
