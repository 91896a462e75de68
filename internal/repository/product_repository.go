package repository

import (
	"ecommerce-backend/internal/domain"
)

type ProductRepository interface {
	FindByID(id uint) (*domain.Product, error)
	FindBySlug(slug string) (*domain.Product, error)
	FindBySKU(sku string) (*domain.Product, error)
	FindAll() ([]domain.Product, error)
	Create(product *domain.Product) error
	Save(product *domain.Product) error
	Delete(id uint) error
}
