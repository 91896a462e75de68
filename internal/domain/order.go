package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPaid      OrderStatus = "Paid"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the five known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	Street  string `json:"street" gorm:"size:255;not null"`
	City    string `json:"city" gorm:"size:100;not null"`
	State   string `json:"state" gorm:"size:100"`
	Zip     string `json:"zip" gorm:"size:20"`
	Country string `json:"country" gorm:"size:100;not null"`
}

// Order is an immutable snapshot of a placed cart; only Status and its
// companion timestamps change after creation.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          uint            `json:"userId" gorm:"not null;index"`
	OrderNumber     string          `json:"orderNumber" gorm:"size:32;not null;uniqueIndex"`
	Items           []OrderItem     `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Tax             decimal.Decimal `json:"tax" gorm:"type:decimal(12,2);not null;default:0"`
	Shipping        decimal.Decimal `json:"shipping" gorm:"type:decimal(12,2);not null;default:0"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"size:16;not null;default:'Pending';index"`
	PaymentID       string          `json:"paymentId,omitempty" gorm:"size:128;index"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	ShippedAt       *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderItem captures product id, name, price and image at placement time,
// independent of later product mutation.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint            `json:"-" gorm:"not null;index"`
	ProductID uint            `json:"productId" gorm:"not null"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Image     string          `json:"image" gorm:"size:512"`
}
