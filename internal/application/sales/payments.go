package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// PaymentUseCase enregistre les compléments de versement sur une vente déjà
// validée et liste les ventes à solder. C'est la seule mutation autorisée
// après validation.
type PaymentUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentRepository
}

// NewPaymentUseCase construit le cas d'usage. saleRepo et paymentRepo servent
// aux lectures hors transaction.
func NewPaymentUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, saleRepo: saleRepo, paymentRepo: paymentRepo}
}

// RecordPayment ajoute un versement au cumul de la vente. La ligne est
// verrouillée (SELECT FOR UPDATE) le temps de la transaction pour sérialiser
// deux encaissements simultanés sur la même vente; le solde est toujours
// recalculé depuis le cumul, jamais depuis le dernier versement.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, saleID, userID string, amount decimal.Decimal) (*dto.SaleResponse, error) {
	if amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.StockMovementRepository,
		paymentRepo repository.PaymentRepository,
		_ repository.CounterRepository,
	) error {
		var err error
		sale, err = saleRepo.GetByIDForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if err := sale.RecordPayment(amount); err != nil {
			return err
		}
		now := time.Now()
		if amount.GreaterThan(decimal.Zero) {
			payment := &entity.Payment{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				Amount:    amount,
				Date:      now,
				CreatedBy: userID,
			}
			if err := paymentRepo.Create(payment); err != nil {
				return err
			}
		}
		return saleRepo.UpdatePayment(saleID, sale.MontantVerse, now)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, nil), nil
}

// ListOutstanding retourne les ventes avec un reste à payer positif.
func (uc *PaymentUseCase) ListOutstanding(ctx context.Context, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	salesList, err := uc.saleRepo.ListOutstanding(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(salesList))
	for _, s := range salesList {
		out = append(out, toSaleResponse(s, nil))
	}
	return out, nil
}

// ListPayments retourne les versements d'une vente, du premier au dernier.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, saleID string) ([]*dto.PaymentResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, &dto.PaymentResponse{
			ID:     p.ID,
			SaleID: p.SaleID,
			Amount: p.Amount,
			Date:   p.Date.Format("2006-01-02 15:04"),
		})
	}
	return out, nil
}
