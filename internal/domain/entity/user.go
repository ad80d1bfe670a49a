package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin      = "admin"
	RoleVendeur    = "vendeur"
	RoleMagasinier = "magasinier"
)

// User est un membre du personnel autorisé à utiliser la caisse.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         string // voir constantes Role*
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
