package services

import (
	"context"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"github.com/gosimple/slug"
)

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, description, image string) (*domain.Category, error) {
	existing, err := s.categories.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.E(domain.KindDuplicateField, "a category with this name already exists")
	}

	category := &domain.Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
		Image:       image,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll()
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, categorySlug string) (*domain.Category, error) {
	category, err := s.categories.FindBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.E(domain.KindNotFound, "category not found")
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID uint, name, description, image *string) (*domain.Category, error) {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.E(domain.KindNotFound, "category not found")
	}

	if name != nil && *name != category.Name {
		existing, err := s.categories.FindByName(*name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.E(domain.KindDuplicateField, "a category with this name already exists")
		}
		category.Name = *name
		category.Slug = slug.Make(*name)
	}
	if description != nil {
		category.Description = *description
	}
	if image != nil {
		category.Image = *image
	}

	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID uint) error {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.E(domain.KindNotFound, "category not found")
	}
	return s.categories.Delete(categoryID)
}
