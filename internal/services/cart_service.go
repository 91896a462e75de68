package services

import (
	"context"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// getOrCreateCart returns the user's cart, creating an empty one on first
// access. Existing carts are returned untouched.
func (s *CartService) getOrCreateCart(userID uint) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID, Subtotal: decimal.Zero}
		if err := s.carts.Create(cart); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*domain.Cart, error) {
	return s.getOrCreateCart(userID)
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line with the product's current price. Stock is checked
// against the merged quantity.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.E(domain.KindInvalidArgument, "quantity must be at least 1")
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.E(domain.KindNotFound, "product not found")
	}

	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	if existing := cart.FindItemByProduct(productID); existing != nil {
		newQuantity := existing.Quantity + quantity
		if product.Stock < newQuantity {
			return nil, domain.Ef(domain.KindInsufficientStock, "insufficient stock for %s", product.Name)
		}
		existing.Quantity = newQuantity
	} else {
		if product.Stock < quantity {
			return nil, domain.Ef(domain.KindInsufficientStock, "insufficient stock for %s", product.Name)
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	cart.Recalculate()
	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemQuantity replaces (not merges) the quantity of an existing line
// item after re-checking the referenced product's current stock.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.E(domain.KindInvalidArgument, "quantity must be at least 1")
	}

	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(itemID)
	if item == nil {
		return nil, domain.E(domain.KindNotFound, "item not found in cart")
	}

	product, err := s.products.FindByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.E(domain.KindNotFound, "product not found")
	}
	if product.Stock < quantity {
		return nil, domain.Ef(domain.KindInsufficientStock, "insufficient stock for %s", product.Name)
	}

	item.Quantity = quantity
	cart.Recalculate()
	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (*domain.Cart, error) {
	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(itemID) {
		return nil, domain.E(domain.KindNotFound, "item not found in cart")
	}

	cart.Recalculate()
	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart empties the cart unconditionally. Clearing an already-empty
// cart is a no-op.
func (s *CartService) ClearCart(ctx context.Context, userID uint) (*domain.Cart, error) {
	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) > 0 {
		if err := s.carts.Clear(cart.ID); err != nil {
			return nil, err
		}
	}
	cart.Items = nil
	cart.Subtotal = decimal.Zero
	return cart, nil
}
