package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound            = errors.New("ressource introuvable")
	ErrUserNotFound        = errors.New("utilisateur introuvable")
	ErrInvalidInput        = errors.New("saisie invalide")
	ErrDuplicate           = errors.New("ressource dupliquée")
	ErrUnauthorized        = errors.New("non autorisé")
	ErrForbidden           = errors.New("accès refusé")
	ErrConflict            = errors.New("conflit avec l'état actuel")
	ErrInsufficientStock   = errors.New("stock insuffisant")
	ErrPaymentExceedsTotal = errors.New("versement supérieur au montant TTC")
)
