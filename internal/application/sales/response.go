package sales

import (
	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain/entity"
)

func toSaleResponse(s *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:   s.ID,
		Date: s.Date.Format("2006-01-02 15:04"),
		Customer: dto.CustomerDTO{
			Name:    s.Customer.Name,
			Phone:   s.Customer.Phone,
			Email:   s.Customer.Email,
			RC:      s.Customer.RC,
			NIF:     s.Customer.NIF,
			ART:     s.Customer.ART,
			Address: s.Customer.Address,
		},
		NumeroFacture: s.NumeroFacture,
		TotalHT:       s.TotalHT,
		TotalTVA:      s.TotalTVA,
		Timbre:        s.Timbre,
		TotalTTC:      s.TotalTTC,
		MontantVerse:  s.MontantVerse,
		ResteAPayer:   s.ResteAPayer(),
		Policy:        s.PolicyLabel,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalHT:     l.TotalHT,
		})
	}
	return resp
}
