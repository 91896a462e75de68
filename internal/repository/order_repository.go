package repository

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// StockDecrement is one product-level stock adjustment applied during order
// placement.
type StockDecrement struct {
	ProductID uint
	Quantity  int
}

type OrderRepository interface {
	// Place creates the order, applies every stock decrement (with a
	// matching purchases increment) and empties the cart as one atomic
	// unit. Either everything commits or nothing does. A decrement that
	// would drive stock below zero aborts the whole transaction with an
	// INSUFFICIENT_STOCK error; a duplicate order number aborts it with a
	// DUPLICATE_FIELD error.
	Place(ctx context.Context, order *domain.Order, cartID uint, decrements []StockDecrement) error
	FindByID(id uint) (*domain.Order, error)
	FindByUser(userID uint) ([]domain.Order, error)
	FindAll() ([]domain.Order, error)
	Save(order *domain.Order) error
}
