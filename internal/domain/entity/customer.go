package entity

// Customer est l'instantané client embarqué dans une vente.
// Nom et téléphone sont obligatoires; les identifiants fiscaux (RC, NIF, ART)
// et l'adresse ne sont renseignés que pour les clients professionnels.
// Il n'y a pas de table clients: chaque vente porte sa propre copie.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	RC      string // registre de commerce
	NIF     string // numéro d'identification fiscale
	ART     string // article d'imposition
	Address string
}

// RequiredFieldsPresent vérifie que nom et téléphone sont renseignés.
func (c Customer) RequiredFieldsPresent() bool {
	return c.Name != "" && c.Phone != ""
}
