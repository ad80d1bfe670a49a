package repository

import "github.com/redshowroom/pos-api/internal/domain/entity"

// PaymentRepository définit le port de persistance des versements.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListBySale(saleID string) ([]*entity.Payment, error)
}
