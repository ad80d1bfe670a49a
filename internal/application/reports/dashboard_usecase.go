package reports

import (
	"context"
	"time"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// DashboardUseCase agrège l'activité du showroom sur une période:
// chiffre d'affaires, encaissements, restes à payer et meilleures ventes.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

const topProductsLimit = 5

// Dashboard retourne la synthèse de la période (bornes optionnelles).
func (uc *DashboardUseCase) Dashboard(ctx context.Context, in dto.DashboardRequest) (*dto.DashboardResponse, error) {
	from, err := parseDay(in.From, false)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(in.To, true)
	if err != nil {
		return nil, err
	}

	summary, err := uc.reportRepo.SalesSummary(from, to)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		SalesCount:       summary.SalesCount,
		TotalHT:          summary.TotalHT,
		TotalTTC:         summary.TotalTTC,
		TotalVerse:       summary.TotalVerse,
		TotalOutstanding: summary.TotalOutstanding,
	}
	for _, p := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			TotalHT:     p.TotalHT,
		})
	}
	return resp, nil
}

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
