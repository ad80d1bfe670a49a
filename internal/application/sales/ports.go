package sales

import (
	"context"

	"github.com/redshowroom/pos-api/internal/domain/entity"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction du dépôt de persistance,
// avec des dépôts liés à cette transaction. C'est la frontière transactionnelle
// du moteur de vente: la validation du stock, l'attribution du numéro de
// facture et l'écriture de l'entête, des lignes et du versement initial
// aboutissent ensemble ou pas du tout.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockMovementRepository,
		paymentRepo repository.PaymentRepository,
		counterRepo repository.CounterRepository,
	) error) error
}

// InvoiceNumberAllocator attribue le prochain numéro de facture de l'année.
// Les deux implémentations (balayage historique, compteur atomique) sont
// interchangeables; voir allocator.go.
type InvoiceNumberAllocator interface {
	Next(saleRepo repository.SaleRepository, counterRepo repository.CounterRepository, year int) (string, error)
}

// InvoicePDFGenerator produit la facture imprimable d'une vente validée.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, sale *entity.Sale, entreprise *entity.Entreprise, lines []*entity.SaleLine) ([]byte, error)
}
