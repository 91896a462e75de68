package repository

import (
	"ecommerce-backend/internal/domain"
)

type CartRepository interface {
	// FindByUser returns the user's cart with items loaded, or (nil, nil)
	// when the user has no cart yet.
	FindByUser(userID uint) (*domain.Cart, error)
	Create(cart *domain.Cart) error
	// Save persists the cart's subtotal and its full item set: new items are
	// inserted, changed items updated, and items no longer present deleted.
	Save(cart *domain.Cart) error
	// Clear deletes all items of the cart and zeroes its subtotal.
	Clear(cartID uint) error
}
