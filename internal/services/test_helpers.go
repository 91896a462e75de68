package services

import (
	"ecommerce-backend/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func CreateMockProduct(id uint, name, price string, stock int) *domain.Product {
	return &domain.Product{
		ID:         id,
		Name:       name,
		Slug:       name,
		Price:      dec(price),
		SKU:        "SKU-TEST",
		Stock:      stock,
		CategoryID: 1,
	}
}

func CreateMockCart(id, userID uint, items ...domain.CartItem) *domain.Cart {
	cart := &domain.Cart{
		ID:       id,
		UserID:   userID,
		Items:    items,
		Subtotal: decimal.Zero,
	}
	cart.Recalculate()
	return cart
}

const (
	TestUserID    = uint(1)
	TestCartID    = uint(1)
	TestProductID = uint(1)
	TestOrderID   = uint(1)
)
