package mysql

import (
	"context"
	"errors"
	"log"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Place runs the whole placement write inside one transaction: order insert,
// conditional stock decrements, cart wipe. The `stock >= ?` guard makes
// concurrent placements against the same product serialize on the row lock,
// so combined quantities can never drive stock negative.
func (r *orderRepo) Place(ctx context.Context, order *domain.Order, cartID uint, decrements []repository.StockDecrement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.WrapErr(domain.KindDuplicateField, "order number already exists", err)
			}
			log.Printf("Place: order insert error: %v", err)
			return err
		}

		for _, d := range decrements {
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", d.ProductID, d.Quantity).
				UpdateColumns(map[string]any{
					"stock":     gorm.Expr("stock - ?", d.Quantity),
					"purchases": gorm.Expr("purchases + ?", d.Quantity),
				})
			if res.Error != nil {
				log.Printf("Place: stock decrement error for product %d: %v", d.ProductID, res.Error)
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.Ef(domain.KindInsufficientStock, "insufficient stock for product %d", d.ProductID)
			}
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Cart{}).Where("id = ?", cartID).Update("subtotal", decimal.Zero).Error
	})
}

func (r *orderRepo) FindByID(id uint) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(userID uint) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("FindByUser error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Save(order *domain.Order) error {
	return r.db.Save(order).Error
}
