package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:1024;not null;default:''" json:"image_url"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	SellerID    uint            `gorm:"not null;index" json:"seller_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ProductCreate struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category" binding:"required"`
	Stock       int             `json:"stock" binding:"gte=0"`
}

type ProductQuery struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=100" binding:"gte=0,lte=100"`
}
