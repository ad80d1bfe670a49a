package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/redshowroom/pos-api/internal/domain"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// PDFUseCase génère la facture imprimable d'une vente validée.
// Le PDF n'est disponible que si un numéro de facture a été attribué.
type PDFUseCase struct {
	saleRepo       repository.SaleRepository
	entrepriseRepo repository.EntrepriseRepository
	generator      InvoicePDFGenerator
}

// NewPDFUseCase construit le cas d'usage.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	entrepriseRepo repository.EntrepriseRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, entrepriseRepo: entrepriseRepo, generator: generator}
}

// DownloadInvoicePDF retourne les octets du PDF et un nom de fichier.
//
//   - domain.ErrNotFound      si la vente n'existe pas.
//   - domain.ErrInvalidInput  si la vente n'a pas de numéro de facture.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger la vente: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	if sale.NumeroFacture == "" {
		return nil, "", fmt.Errorf("%w: aucune facture demandée pour cette vente", domain.ErrInvalidInput)
	}

	entreprise, err := uc.entrepriseRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger l'entreprise: %w", err)
	}
	if entreprise == nil {
		return nil, "", fmt.Errorf("%w: identité de l'entreprise non renseignée", domain.ErrConflict)
	}

	lines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger les lignes: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, sale, entreprise, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération: %w", err)
	}

	// "007/2025" → facture_007-2025.pdf
	filename = "facture_" + strings.ReplaceAll(sale.NumeroFacture, "/", "-") + ".pdf"
	return pdfBytes, filename, nil
}
