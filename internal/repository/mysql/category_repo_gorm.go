package mysql

import (
	"errors"
	"log"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) findOne(query string, arg any) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.Where(query, arg).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("category lookup error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindByID(id uint) (*domain.Category, error) {
	return r.findOne("id = ?", id)
}

func (r *categoryRepo) FindBySlug(slug string) (*domain.Category, error) {
	return r.findOne("slug = ?", slug)
}

func (r *categoryRepo) FindByName(name string) (*domain.Category, error) {
	return r.findOne("name = ?", name)
}

func (r *categoryRepo) FindAll() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		log.Printf("category FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) Create(category *domain.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.WrapErr(domain.KindDuplicateField, "category name already exists", err)
		}
		return err
	}
	return nil
}

func (r *categoryRepo) Save(category *domain.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.WrapErr(domain.KindDuplicateField, "category name already exists", err)
		}
		return err
	}
	return nil
}

func (r *categoryRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Category{}, id).Error
}
