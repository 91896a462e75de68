package mysql

import (
	"errors"
	"log"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUser(userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("cart FindByUser error: %v", err)
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) Create(cart *domain.Cart) error {
	if err := r.db.Create(cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.WrapErr(domain.KindDuplicateField, "cart already exists for user", err)
		}
		return err
	}
	return nil
}

// Save writes the subtotal and reconciles cart_items against cart.Items:
// upsert what is present, delete what is not.
func (r *cartRepo) Save(cart *domain.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Cart{}).Where("id = ?", cart.ID).Update("subtotal", cart.Subtotal).Error; err != nil {
			return err
		}

		keep := make([]uint, 0, len(cart.Items))
		for i := range cart.Items {
			item := &cart.Items[i]
			item.CartID = cart.ID
			if err := tx.Save(item).Error; err != nil {
				return err
			}
			keep = append(keep, item.ID)
		}

		q := tx.Where("cart_id = ?", cart.ID)
		if len(keep) > 0 {
			q = q.Where("id NOT IN ?", keep)
		}
		return q.Delete(&domain.CartItem{}).Error
	})
}

func (r *cartRepo) Clear(cartID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Cart{}).Where("id = ?", cartID).Update("subtotal", 0).Error
	})
}
