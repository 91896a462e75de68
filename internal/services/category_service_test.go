package services

import (
	"context"
	"testing"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Run("derives the slug", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("FindByName", "Kitchen Appliances").Return(nil, nil)
		categoryRepo.On("Create", mock.AnythingOfType("*domain.Category")).Return(nil)

		service := NewCategoryService(categoryRepo)
		category, err := service.CreateCategory(context.Background(), "Kitchen Appliances", "Things for the kitchen", "")

		assert.NoError(t, err)
		assert.Equal(t, "kitchen-appliances", category.Slug)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("FindByName", "Shoes").Return(&domain.Category{ID: 2, Name: "Shoes"}, nil)

		service := NewCategoryService(categoryRepo)
		_, err := service.CreateCategory(context.Background(), "Shoes", "", "")

		assert.Error(t, err)
		assert.Equal(t, domain.KindDuplicateField, domain.KindOf(err))
		categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("renaming to a taken name fails", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("FindByID", uint(1)).Return(&domain.Category{ID: 1, Name: "Shoes", Slug: "shoes"}, nil)
		categoryRepo.On("FindByName", "Boots").Return(&domain.Category{ID: 2, Name: "Boots"}, nil)

		name := "Boots"
		service := NewCategoryService(categoryRepo)
		_, err := service.UpdateCategory(context.Background(), 1, &name, nil, nil)

		assert.Error(t, err)
		assert.Equal(t, domain.KindDuplicateField, domain.KindOf(err))
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("rename recomputes the slug", func(t *testing.T) {
		categoryRepo := new(mocks.MockCategoryRepository)
		categoryRepo.On("FindByID", uint(1)).Return(&domain.Category{ID: 1, Name: "Shoes", Slug: "shoes"}, nil)
		categoryRepo.On("FindByName", "Winter Boots").Return(nil, nil)
		categoryRepo.On("Save", mock.AnythingOfType("*domain.Category")).Return(nil)

		name := "Winter Boots"
		service := NewCategoryService(categoryRepo)
		category, err := service.UpdateCategory(context.Background(), 1, &name, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, "winter-boots", category.Slug)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	categoryRepo.On("FindByID", uint(404)).Return(nil, nil)

	service := NewCategoryService(categoryRepo)
	err := service.DeleteCategory(context.Background(), 404)

	assert.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
