package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:100;not null"`
	Slug        string          `json:"slug" gorm:"size:120;not null;uniqueIndex"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	SKU         string          `json:"sku" gorm:"column:sku;size:64;not null;uniqueIndex"`
	Stock       int             `json:"stock" gorm:"not null"`
	CategoryID  uint            `json:"categoryId" gorm:"not null;index"`
	Images      []ProductImage  `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	Featured    bool            `json:"featured" gorm:"default:false"`
	Rating      float64         `json:"rating" gorm:"default:0"`
	ReviewCount int             `json:"reviewCount" gorm:"default:0"`
	Views       int64           `json:"views" gorm:"default:0"`
	Purchases   int64           `json:"purchases" gorm:"default:0"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint   `json:"-" gorm:"not null;index"`
	URL       string `json:"url" gorm:"size:512;not null"`
	Position  int    `json:"position" gorm:"default:0"`
}

// FirstImage returns the URL of the first image, or "" when the product has
// none. Order items snapshot this at placement time.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
