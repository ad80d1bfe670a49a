package repository

import "github.com/redshowroom/pos-api/internal/domain/entity"

// UserRepository définit le port de persistance du personnel.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
