package repository

import "github.com/redshowroom/pos-api/internal/domain/entity"

// ProductFilter restreint une liste catalogue par taxonomie; Search filtre sur
// le nom (sous-chaîne, insensible à la casse). Champs vides = pas de filtre.
type ProductFilter struct {
	Brand    string
	Category string
	Family   string
	Search   string
}

// ProductRepository définit le port de persistance du catalogue (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
