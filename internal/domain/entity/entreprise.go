package entity

import "time"

// Entreprise porte l'identité fiscale fixe du showroom, imprimée sur chaque
// facture. Une seule ligne en base; les champs sont ceux exigés par la
// réglementation algérienne.
type Entreprise struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	RC        string // registre de commerce
	NIF       string // numéro d'identification fiscale
	ART       string // article d'imposition
	AI        string // agrément / identifiant complémentaire
	Capital   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
