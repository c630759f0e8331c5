package models

import (
	"time"

	"github.com/lipagate/lipagate/internal/shared/constants"
)

// ProductModel represents the database persistence model for catalog products.
type ProductModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: prod_xxx"`
	MerchantID  uint   `gorm:"not null;index:idx_merchant_product"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"size:1000"`
	Active      bool   `gorm:"not null;default:true;index:idx_product_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}

// PriceModel represents the database persistence model for product prices.
// Amounts are minor units.
type PriceModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: price_xxx"`
	ProductID uint   `gorm:"not null;index:idx_product_price"`
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"not null;size:3"`
	Interval  string `gorm:"not null;size:20"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PriceModel) TableName() string {
	return constants.TablePrices
}
