package repository

// CounterRepository expose le compteur atomique de numéros de facture côté
// dépôt de persistance. Alternative à la dérivation par balayage: l'upsert
// incrémental ferme la fenêtre de collision entre deux ventes simultanées.
type CounterRepository interface {
	// NextInvoiceNumber incrémente le compteur de l'année et retourne la
	// nouvelle valeur (1 pour la première facture de l'année).
	NextInvoiceNumber(year int) (int, error)
}
