package mysql

import (
	"errors"
	"log"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) findOne(query string, arg any) (*domain.Product, error) {
	var p domain.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where(query, arg).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("product lookup error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByID(id uint) (*domain.Product, error) {
	return r.findOne("id = ?", id)
}

func (r *productRepo) FindBySlug(slug string) (*domain.Product, error) {
	return r.findOne("slug = ?", slug)
}

func (r *productRepo) FindBySKU(sku string) (*domain.Product, error) {
	return r.findOne("sku = ?", sku)
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("product FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Create(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.WrapErr(domain.KindDuplicateField, "product slug or SKU already exists", err)
		}
		return err
	}
	return nil
}

func (r *productRepo) Save(product *domain.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.WrapErr(domain.KindDuplicateField, "product slug or SKU already exists", err)
		}
		return err
	}
	return nil
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}
