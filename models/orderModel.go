package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status      string          `gorm:"size:32;not null" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is written once with its order; PriceAtTime is the product price
// at the moment the order was placed.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null;index" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_at_time"`
}

type OrderItemCreate struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// OrderCreate.TotalAmount is what the client believes the order costs. It is
// compared against the server-side total but never persisted.
type OrderCreate struct {
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []OrderItemCreate `json:"items" binding:"required,min=1,dive"`
}

type OrderPlacedEvent struct {
	OrderID     uint                   `json:"order_id"`
	UserID      uint                   `json:"user_id"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Items       []OrderPlacedEventItem `json:"items"`
	PlacedAt    time.Time              `json:"placed_at"`
}

type OrderPlacedEventItem struct {
	ProductID   uint            `json:"product_id"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
}
