package repository

import (
	"ecommerce-backend/internal/domain"
)

type CategoryRepository interface {
	FindByID(id uint) (*domain.Category, error)
	FindBySlug(slug string) (*domain.Category, error)
	FindByName(name string) (*domain.Category, error)
	FindAll() ([]domain.Category, error)
	Create(category *domain.Category) error
	Save(category *domain.Category) error
	Delete(id uint) error
}
