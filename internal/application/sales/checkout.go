package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/redshowroom/pos-api/internal/application/dto"
	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/fiscal"
	"github.com/redshowroom/pos-api/internal/domain/inventory"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// CheckoutUseCase valide un panier complet et le persiste en une seule
// transaction. Si une seule ligne échoue à la vérification de stock, aucune
// ligne n'est écrite.
type CheckoutUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	allocator   InvoiceNumberAllocator
	policy      fiscal.Policy // politique fiscale du déploiement
}

// NewCheckoutUseCase construit le cas d'usage.
func NewCheckoutUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	allocator InvoiceNumberAllocator,
	policy fiscal.Policy,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		allocator:   allocator,
		policy:      policy,
	}
}

// resolvePolicy part de la politique du déploiement et applique la surcharge
// éventuelle de la requête.
func (uc *CheckoutUseCase) resolvePolicy(override *dto.FiscalPolicyDTO) (fiscal.Policy, error) {
	p := uc.policy
	if override != nil {
		if override.Mode != "" {
			p.Mode = fiscal.Mode(override.Mode)
		}
		if override.StampBase != "" {
			p.StampBase = fiscal.StampBase(override.StampBase)
		}
		if override.Rounding != "" {
			p.Rounding = fiscal.Rounding(override.Rounding)
		}
	}
	if err := p.Validate(); err != nil {
		return fiscal.Policy{}, err
	}
	return p, nil
}

// Checkout exécute la validation de la vente.
//
// Hors transaction: résolution des produits et des prix (lecture seule),
// construction du panier avec ses préconditions. Dans la transaction:
// re-dérivation du disponible pour chaque ligne, calcul des totaux fiscaux,
// attribution du numéro de facture si demandé, écriture entête + lignes +
// versement initial. Le TxRunner fait rollback sur toute erreur.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Versement.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	policy, err := uc.resolvePolicy(in.Policy)
	if err != nil {
		return nil, err
	}

	customer := entity.Customer{
		Name:    in.Customer.Name,
		Phone:   in.Customer.Phone,
		Email:   in.Customer.Email,
		RC:      in.Customer.RC,
		NIF:     in.Customer.NIF,
		ART:     in.Customer.ART,
		Address: in.Customer.Address,
	}
	cart := entity.NewCart(customer)
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("résolution produit %s: %w", item.ProductID, err)
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		price := item.UnitPrice
		if price.IsZero() {
			price = product.UnitPrice
		}
		if _, err := cart.AddLine(product.ID, product.Name, item.Quantity, price); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale
	var lines []*entity.SaleLine

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockMovementRepository,
		paymentRepo repository.PaymentRepository,
		counterRepo repository.CounterRepository,
	) error {
		// 1) Toutes les lignes passent la vérification de stock avant la
		// moindre écriture. Le disponible est re-dérivé ici, dans la
		// transaction, jamais lu d'un compteur.
		for _, l := range cart.Lines {
			entered, err := stockRepo.SumQuantityByProduct(l.ProductID)
			if err != nil {
				return fmt.Errorf("dérivation stock %s: %w", l.ProductID, err)
			}
			sold, err := saleRepo.SumQuantityByProduct(l.ProductID)
			if err != nil {
				return fmt.Errorf("dérivation ventes %s: %w", l.ProductID, err)
			}
			available := inventory.Available(entered, sold)
			if !inventory.Sufficient(l.Quantity, available) {
				return fmt.Errorf("%w: %s (disponible %d, demandé %d)",
					domain.ErrInsufficientStock, l.ProductName, available, l.Quantity)
			}
		}

		// 2) Totaux fiscaux selon la politique de la vente.
		lineTotals := make([]decimal.Decimal, 0, len(cart.Lines))
		for _, l := range cart.Lines {
			lineTotals = append(lineTotals, l.TotalHT())
		}
		amounts := policy.ComputeLines(lineTotals)

		// 3) Le versement initial ne peut pas dépasser le TTC.
		if in.Versement.GreaterThan(amounts.TTC) {
			return domain.ErrPaymentExceedsTotal
		}

		// 4) Numéro de facture, seulement si le client en demande une.
		numero := ""
		if in.WithInvoice {
			numero, err = uc.allocator.Next(saleRepo, counterRepo, now.Year())
			if err != nil {
				return err
			}
		}

		// 5) Persistance: entête, lignes, versement initial.
		sale = &entity.Sale{
			ID:            saleID,
			Customer:      customer,
			Date:          now,
			NumeroFacture: numero,
			TotalHT:       amounts.HT,
			TotalTVA:      amounts.TVA,
			Timbre:        amounts.Timbre,
			TotalTTC:      amounts.TTC,
			MontantVerse:  in.Versement,
			PolicyLabel:   policy.Label(),
			CreatedAt:     now,
			UpdatedAt:     now,
			CreatedBy:     userID,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		lines = lines[:0]
		for _, l := range cart.Lines {
			line := &entity.SaleLine{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				TotalHT:     l.TotalHT(),
			}
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
			lines = append(lines, line)
		}
		if in.Versement.GreaterThan(decimal.Zero) {
			payment := &entity.Payment{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				Amount:    in.Versement,
				Date:      now,
				CreatedBy: userID,
			}
			if err := paymentRepo.Create(payment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cart.Clear()
	return toSaleResponse(sale, lines), nil
}
