package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderCreatedEvent struct {
	OrderID     uint            `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	UserID      uint            `json:"userId"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"itemCount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID     uint        `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	Status      OrderStatus `json:"status"`
	ChangedAt   time.Time   `json:"changedAt"`
}
