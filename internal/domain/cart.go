package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the single mutable cart belonging to a user. Subtotal is a cache
// refolded from the items after every mutation, never carried forward.
type Cart struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint            `json:"userId" gorm:"not null;uniqueIndex"`
	Items     []CartItem      `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// CartItem holds the price captured when the item was added, not the live
// product price.
type CartItem struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    uint            `json:"-" gorm:"not null;index"`
	ProductID uint            `json:"productId" gorm:"not null;index"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
}

// Recalculate refolds the subtotal from the current items.
func (c *Cart) Recalculate() {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.Subtotal = subtotal
}

// FindItem returns the line item with the given id, or nil.
func (c *Cart) FindItem(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByProduct returns the line item referencing productID, or nil.
func (c *Cart) FindItemByProduct(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem drops the line item with the given id and reports whether it
// was present.
func (c *Cart) RemoveItem(itemID uint) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
