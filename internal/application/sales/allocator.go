package sales

import (
	"fmt"

	"github.com/redshowroom/pos-api/internal/domain/facture"
	"github.com/redshowroom/pos-api/internal/domain/repository"
)

// ScanAllocator dérive le prochain numéro en balayant les numéros déjà
// enregistrés (max de l'année + 1). C'est la sémantique historique du
// système, conservée par défaut pour compatibilité: elle n'est PAS atomique
// et deux ventes simultanées peuvent obtenir le même numéro.
type ScanAllocator struct{}

func (ScanAllocator) Next(saleRepo repository.SaleRepository, _ repository.CounterRepository, year int) (string, error) {
	existing, err := saleRepo.ListInvoiceNumbers(year)
	if err != nil {
		return "", fmt.Errorf("allocation numéro facture: %w", err)
	}
	return facture.Next(existing, year), nil
}

// SequenceAllocator s'appuie sur le compteur atomique du dépôt de
// persistance (upsert incrémental) et ferme la fenêtre de collision.
// Activable par configuration; le balayage reste le défaut documenté.
type SequenceAllocator struct{}

func (SequenceAllocator) Next(_ repository.SaleRepository, counterRepo repository.CounterRepository, year int) (string, error) {
	n, err := counterRepo.NextInvoiceNumber(year)
	if err != nil {
		return "", fmt.Errorf("allocation numéro facture: %w", err)
	}
	return facture.Format(n, year), nil
}

// AllocatorFromName retourne l'allocateur configuré ("scan" par défaut).
func AllocatorFromName(name string) InvoiceNumberAllocator {
	if name == "sequence" {
		return SequenceAllocator{}
	}
	return ScanAllocator{}
}
